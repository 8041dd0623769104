package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/csvrepl/pkg/log"
)

type TelegramConfig struct {
	Token   string `env:"CSVREPL_TELEGRAM_TOKEN,required,notEmpty"`
	OwnerID int64  `env:"CSVREPL_TELEGRAM_OWNER_ID,required"`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}

func (c TelegramConfig) GetTelegramToken() string {
	return c.Token
}

func (c TelegramConfig) GetTelegramOwnerID() int64 {
	return c.OwnerID
}
