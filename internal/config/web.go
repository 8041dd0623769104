package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/csvrepl/pkg/log"
)

type WebConfig struct {
	Addr         string        `env:"CSVREPL_HTTP_ADDR" envDefault:":8080"`
	SessionKey   string        `env:"CSVREPL_SESSION_KEY,required,notEmpty"`
	ReadTimeout  time.Duration `env:"CSVREPL_HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"CSVREPL_HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

func NewWebConfig(ctx context.Context) *WebConfig {
	c := &WebConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Web config")
	}
	return c
}

func (c WebConfig) GetAddr() string {
	return c.Addr
}

func (c WebConfig) GetSessionKey() []byte {
	return []byte(c.SessionKey)
}
