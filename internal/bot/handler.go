package bot

import (
	"context"

	tg "github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/bot/makeclient"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// incomingHandler records every user message as a make_requests row and
// forwards it to the Make webhook. The Make scenario answers later via
// POST /make/callback with the same correlation id.
type incomingHandler struct {
	db     *gorm.DB
	client *makeclient.Client
	log    *zap.Logger
}

func (h *incomingHandler) handle(ctx context.Context, _ *tg.Bot, update *tgmodels.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	msg := update.Message

	req := models.MakeRequest{
		CorrelationID: uuid.NewString(),
		ChatID:        msg.Chat.ID,
		UserID:        msg.From.ID,
		MessageID:     &msg.ID,
		Status:        models.MakeRequestCreated,
	}

	if err := h.db.WithContext(ctx).Create(&req).Error; err != nil {
		h.log.Error("failed to record make request", zap.Error(err))
		return
	}

	payload := makeclient.IncomingMessage{
		CorrelationID: req.CorrelationID,
		ChatID:        msg.Chat.ID,
		UserID:        msg.From.ID,
		Username:      msg.From.Username,
		MessageID:     msg.ID,
		Text:          msg.Text,
	}

	if err := h.client.SendIncomingMessage(ctx, payload); err != nil {
		h.log.Warn("failed to forward message to make",
			zap.String("correlation_id", req.CorrelationID),
			zap.Error(err))

		h.db.WithContext(ctx).
			Model(&req).
			Updates(map[string]any{
				"status":     models.MakeRequestFailed,
				"last_error": truncate(err.Error(), 500),
			})
		return
	}

	h.db.WithContext(ctx).
		Model(&req).
		Update("status", models.MakeRequestSent)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
