package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mpm/ghbot/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the chat command endpoint",
		Long: `Start the HTTP endpoint chat gateways post commands to.

POST /command with {"text": "!gh 42"} or {"command": "gh", "args": ["42"]}
and the reply comes back as {"reply": "..."}.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "127.0.0.1", "Address to listen on")
	cmd.Flags().Int("port", 8080, "Port to listen on")
	viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	srv := server.New(a.plugin, a.cfg.Server, a.log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	a.log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
