package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/sandevgo/csvrepl/internal/config"
	"github.com/sandevgo/csvrepl/pkg/env"
	"github.com/sandevgo/csvrepl/pkg/log"
	"github.com/spf13/cobra"
)

const defaultHTTPTimeout = 10 * time.Second

var force bool

var initCmd = &cobra.Command{
	Use:           "init",
	Short:         "Write a default .env into the runtime directory",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), nil)
		defer flushLog()

		logger := log.FromCtx(ctx)
		runtimePath := config.GetRuntimePath()
		envPath := config.EnvPath(runtimePath)

		if _, err := os.Stat(envPath); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite", envPath)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if err := os.MkdirAll(runtimePath, 0o755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}

		appCfg, webCfg, err := defaultConfigs()
		if err != nil {
			return err
		}
		if err := env.Write(envPath, appCfg, webCfg); err != nil {
			return err
		}

		logger.Info().Str("path", envPath).Msg("initialized runtime directory")
		logger.Info().Msg("You can now run 'csvrepl start' or 'csvrepl serve'.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing .env")
	rootCmd.AddCommand(initCmd)
}

// defaultConfigs returns the current config with a fresh cookie key.
func defaultConfigs() (*config.AppConfig, *config.WebConfig, error) {
	appCfg, err := config.ParseAppConfig()
	if err != nil {
		return nil, nil, err
	}
	// The .env lives inside the runtime path, so it never names it
	appCfg.RuntimePath = ""

	webCfg := &config.WebConfig{
		Addr:         ":8080",
		SessionKey:   hex.EncodeToString(securecookie.GenerateRandomKey(32)),
		ReadTimeout:  defaultHTTPTimeout,
		WriteTimeout: defaultHTTPTimeout,
	}
	if addr := os.Getenv("CSVREPL_HTTP_ADDR"); addr != "" {
		webCfg.Addr = addr
	}
	return appCfg, webCfg, nil
}
