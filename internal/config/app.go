package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/csvrepl/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"CSVREPL_RUNTIME_PATH"`
	// Logical directory prefix for load_file; no real files are read
	DataDir    string `env:"CSVREPL_DATA_DIR" envDefault:"data/"`
	OutputMode string `env:"CSVREPL_OUTPUT_MODE" envDefault:"brief"`
	QuotedArgs bool   `env:"CSVREPL_QUOTED_ARGS" envDefault:"false"`

	RequireLogin bool `env:"CSVREPL_REQUIRE_LOGIN" envDefault:"true"`

	// Sessions of multi-user transports unused this long are dropped; 0 keeps them
	SessionIdle time.Duration `env:"CSVREPL_SESSION_IDLE" envDefault:"30m"`

	// Transport Flags
	EnableWeb      bool `env:"CSVREPL_ENABLE_WEB" envDefault:"true"`
	EnableTelegram bool `env:"CSVREPL_ENABLE_TELEGRAM" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c, err := ParseAppConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	// Relative runtime paths live under the home directory
	c.RuntimePath = GetRuntimePath()
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDataDir() string {
	return c.DataDir
}

func (c AppConfig) GetOutputMode() string {
	return c.OutputMode
}

func (c AppConfig) IsQuotedArgs() bool {
	return c.QuotedArgs
}

func (c AppConfig) IsLoginRequired() bool {
	return c.RequireLogin
}

func (c AppConfig) IsWebSelected() bool {
	return c.EnableWeb
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) GetSessionIdle() time.Duration {
	return c.SessionIdle
}
