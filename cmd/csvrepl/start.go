package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/sandevgo/csvrepl/internal/config"
	"github.com/sandevgo/csvrepl/internal/service/session"
	"github.com/sandevgo/csvrepl/internal/transport/cli"
	"github.com/sandevgo/csvrepl/internal/transport/tui"
	"github.com/sandevgo/csvrepl/pkg/log"
	"github.com/spf13/cobra"
)

var plain bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the interactive REPL",
	Long:  `Opens the full-screen terminal UI, or a line-mode shell with --plain. Logs go to the runtime log file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		runtimePath := config.GetRuntimePath()
		if err := os.MkdirAll(runtimePath, 0o755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}
		logFile, err := os.OpenFile(config.LogPath(runtimePath), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx, logFile)
		defer flushLog()

		logger := log.FromCtx(ctx)
		appCfg := loadConfig(ctx)

		mode, err := session.ParseMode(appCfg.GetOutputMode())
		if err != nil {
			return err
		}

		repl := newSession(appCfg, "local")
		logger.Info().Bool("plain", plain).Str("mode", string(mode)).Msg("starting repl")

		if plain {
			shell, err := cli.NewReadLine(repl, mode)
			if err != nil {
				return err
			}
			defer shell.Shutdown(ctx)
			return shell.Start(ctx)
		}

		return tui.Run(ctx, repl, mode, appCfg.IsLoginRequired())
	},
}

func init() {
	startCmd.Flags().BoolVar(&plain, "plain", false, "use a line-mode shell instead of the full-screen UI")
	rootCmd.AddCommand(startCmd)
}
