package config

import (
	"errors"
	"fmt"
	"github.com/kelseyhightower/envconfig"
	"strings"
	"time"
)

var ErrTokenMissing = errors.New("bot token is missing")
var ErrReplyTextMissing = errors.New("auto reply text is missing")

type Config struct {
	Api struct {
		Http struct {
			// 0 disables the health endpoint
			Port uint16 `envconfig:"API_HTTP_PORT" default:"0"`
		}
		Telegram TelegramConfig
	}
	Log struct {
		Level int `envconfig:"LOG_LEVEL" default:"0" required:"true"`
	}
	Reply ReplyConfig
}

type TelegramConfig struct {
	Url         string        `envconfig:"TELEGRAM_API_URL" default:"https://api.telegram.org" required:"true"`
	Token       string        `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`
	PollTimeout time.Duration `envconfig:"TELEGRAM_POLL_TIMEOUT" default:"10s" required:"true"`
	InitBackoff BackoffConfig
}

// ReplyConfig is everything the message routing needs, it's never modified after the startup.
type ReplyConfig struct {
	// AdminUserId is 0 when no admin is configured.
	AdminUserId   int64  `envconfig:"ADMIN_USER_ID" default:"0"`
	AutoReplyText string `envconfig:"AUTO_REPLY_TEXT" default:"Thanks for your message! I'll get back to you soon." required:"true"`
}

type BackoffConfig struct {
	Init       time.Duration `envconfig:"TELEGRAM_INIT_BACKOFF_INIT" default:"1s" required:"true"`
	Factor     float64       `envconfig:"TELEGRAM_INIT_BACKOFF_FACTOR" default:"2" required:"true"`
	LimitTotal time.Duration `envconfig:"TELEGRAM_INIT_BACKOFF_LIMIT_TOTAL" default:"1m" required:"true"`
}

func (rc ReplyConfig) AdminEnabled() bool {
	return rc.AdminUserId != 0
}

// NewConfigFromEnv fails also when a required value is set but blank, envconfig accepts these.
func NewConfigFromEnv() (cfg Config, err error) {
	err = envconfig.Process("", &cfg)
	if err == nil && strings.TrimSpace(cfg.Api.Telegram.Token) == "" {
		err = fmt.Errorf("%w: set TELEGRAM_BOT_TOKEN", ErrTokenMissing)
	}
	if err == nil && strings.TrimSpace(cfg.Reply.AutoReplyText) == "" {
		err = fmt.Errorf("%w: set AUTO_REPLY_TEXT or leave it unset for the default", ErrReplyTextMissing)
	}
	return
}
