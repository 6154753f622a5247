package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpm/ghbot/internal/config"
)

var (
	version = "dev"
	cfgFile string
	rootCmd *cobra.Command
)

func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "ghbot",
		Short: "GitHub links and issue summaries for chat",
		Long: `ghbot answers the !gh chat command.

It turns short commands into repository links or one-line summaries of
issues and pull requests, e.g. "[PR 42] <merged> Add feature <url>".`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.ghbot/config.yaml)")
	rootCmd.PersistentFlags().String("user", "", "default GitHub user or organization (github-user)")
	rootCmd.PersistentFlags().String("repo", "", "default GitHub repository (github-repo)")

	// Bind flags to viper
	viper.BindPFlag(config.KeyGitHubUser, rootCmd.PersistentFlags().Lookup("user"))
	viper.BindPFlag(config.KeyGitHubRepo, rootCmd.PersistentFlags().Lookup("repo"))

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGhCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning: could not find home directory:", err)
			return
		}

		// Search for config in ~/.ghbot/
		viper.AddConfigPath(home + "/.ghbot")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	config.BindEnv(viper.GetViper())

	// Read config file (ignore if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Warning: error reading config:", err)
		}
	}
}

func Execute() error {
	return rootCmd.Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ghbot", version)
		},
	}
}
