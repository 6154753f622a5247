package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpm/ghbot/internal/plugin"
)

func newGhCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gh [user/repo] [issue-number]",
		Short: "Run one !gh command and print the reply",
		Long: `Runs the !gh chat command locally.

  ghbot gh                    link to the default repository
  ghbot gh 42                 summary of issue or PR 42 in the default repository
  ghbot gh alice/octo         link to alice/octo
  ghbot gh alice/octo 7       summary of alice/octo#7
  ghbot gh alice octo 7       summary of alice/octo#7

Arguments starting with "-" are read as flags; put them after "--":

  ghbot gh -- -3              link to the repository "-3"`,
		RunE: runGh,
	}
}

func runGh(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reply, err := a.plugin.Handle(ctx, plugin.CommandName, args)
	a.logRateLimit()
	if err != nil {
		return fmt.Errorf("!gh failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}
