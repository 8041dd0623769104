package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/csvrepl/pkg/log"
	"github.com/sandevgo/csvrepl/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REPL over HTTP and Telegram",
	Long:  `Starts every enabled transport (web page, Telegram bot) with one session per user, until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx, nil)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting csvrepl services")

		appCfg := loadConfig(ctx)
		services := NewServices(ctx, appCfg)

		// Start services
		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("csvrepl has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
