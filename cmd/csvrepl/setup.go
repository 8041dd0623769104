package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/csvrepl/internal/config"
	"github.com/sandevgo/csvrepl/internal/service/session"
	"github.com/sandevgo/csvrepl/internal/transport/telegram"
	"github.com/sandevgo/csvrepl/internal/transport/web"
	"github.com/sandevgo/csvrepl/pkg/log"
	"github.com/sandevgo/csvrepl/pkg/srv"
)

// loadConfig loads the runtime .env file and parses the application config.
func loadConfig(ctx context.Context) *config.AppConfig {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}
	return config.NewAppConfig(ctx)
}

// newSession builds a standalone session for single-user shells.
func newSession(appCfg *config.AppConfig, id string) *session.Session {
	return session.NewFactory(appCfg)(id)
}

func NewServices(ctx context.Context, appCfg *config.AppConfig) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	sessions := session.NewManager(
		session.NewFactory(appCfg),
		session.WithIdleTimeout(appCfg.GetSessionIdle()),
	)
	// Registered first so it shuts down after every transport
	services = append(services, sessions)

	if appCfg.IsWebSelected() {
		webCfg := config.NewWebConfig(ctx)
		server, err := web.NewServer(ctx, appCfg, webCfg, sessions)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize web server")
		}
		services = append(services, server)
	}

	if appCfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, appCfg, sessions)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram bot")
		}
		services = append(services, bot)
	}

	return services
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := config.EnvPath(runtimePath)

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
