package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	pkgLog "travel-assistant/pkg/log"
	pkgResponse "travel-assistant/pkg/response"
	pkgTelegram "travel-assistant/pkg/telegram"
)

// HandleWebhook acknowledges the update immediately and answers in the background;
// Telegram retries webhooks that take more than a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.verify(c.GetHeader(pkgTelegram.HeaderSecretToken)) {
		h.l.Warnf(ctx, "telegram handler: %v", errBadSignature)
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		pctx, cancel := context.WithTimeout(bgCtx, h.timeout)
		defer cancel()
		if err := h.processMessage(pctx, msg); err != nil {
			h.l.Errorf(pctx, "telegram handler: processMessage failed: %v", err)
			_ = h.bot.SendMessage(pctx, msg.Chat.ID, MsgFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if strings.TrimSpace(msg.Text) == "" {
		return nil
	}

	switch msg.Command() {
	case CommandStart:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, MsgWelcome, pkgTelegram.ParseModeMarkdown)
	case CommandHelp:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, MsgHelp, pkgTelegram.ParseModeMarkdown)
	}

	sc, err := scopeOf(msg)
	if err != nil {
		return err
	}
	ctx = pkgLog.WithUserID(ctx, sc.UserID)

	if msg.Command() == CommandClear {
		n, err := h.uc.ClearHistory(ctx, sc, agent.HistoryInput{})
		if err != nil {
			return fmt.Errorf("uc.ClearHistory: %w", err)
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, fmt.Sprintf(MsgCleared, n))
	}

	if err := h.bot.SendMessage(ctx, msg.Chat.ID, MsgWorking); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send ack message: %v", err)
	}

	env, err := h.uc.HandleQuery(ctx, agent.Query{Text: msg.Text, UserID: sc.UserID})
	if err != nil {
		return fmt.Errorf("uc.HandleQuery: %w", err)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, fmt.Sprintf(MsgReply, env.Category.Label(), env.Text))
}

func (h *handler) verify(token string) bool {
	if h.secret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

func scopeOf(msg *pkgTelegram.Message) (model.Scope, error) {
	if msg.From == nil {
		return model.Scope{}, errNoSender
	}
	return model.Scope{
		UserID:   fmt.Sprintf("%s%d", userIDPrefix, msg.From.ID),
		Username: msg.From.Username,
	}, nil
}
