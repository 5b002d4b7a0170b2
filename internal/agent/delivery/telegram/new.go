package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/agent"
	pkgLog "travel-assistant/pkg/log"
	pkgTelegram "travel-assistant/pkg/telegram"
)

// Handler receives Telegram webhook updates.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config tunes the Telegram delivery.
type Config struct {
	// ProcessTimeout bounds the processing of one message.
	ProcessTimeout time.Duration
	// SecretToken, when set, must match HeaderSecretToken on every update.
	SecretToken string
}

type handler struct {
	l       pkgLog.Logger
	uc      agent.UseCase
	bot     *pkgTelegram.Bot
	timeout time.Duration
	secret  string
}

func New(l pkgLog.Logger, uc agent.UseCase, bot *pkgTelegram.Bot, cfg Config) Handler {
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = DefaultProcessTimeout
	}
	return &handler{l: l, uc: uc, bot: bot, timeout: cfg.ProcessTimeout, secret: cfg.SecretToken}
}
