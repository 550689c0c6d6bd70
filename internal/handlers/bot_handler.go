package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/bot"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BotHandler struct {
	db      *gorm.DB
	manager *bot.Manager
	log     *zap.Logger
}

func NewBotHandler(db *gorm.DB, manager *bot.Manager, log *zap.Logger) *BotHandler {
	return &BotHandler{db: db, manager: manager, log: log}
}

// ======================================================
// REQUESTS
// ======================================================

type BotTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type BotEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// ======================================================
// STATUS / SETTINGS
// ======================================================

func (h *BotHandler) Status(c *gin.Context) {
	st := h.manager.State()

	out := gin.H{
		"status":   string(st.Status),
		"username": st.BotUsername,
	}
	if st.StartedAt != nil {
		out["started_at"] = st.StartedAt
	}
	if st.ErrorMessage != "" {
		out["error"] = st.ErrorMessage
	}

	httpresp.OK(c, out)
}

func (h *BotHandler) GetSettings(c *gin.Context) {
	s, err := h.manager.Settings(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "settings_failed", "Failed to load bot settings.")
		return
	}

	// no row yet: defaults plus the config fallback token
	enabled := true
	hasToken := false
	if s != nil {
		enabled = s.IsEnabled
		hasToken = strings.TrimSpace(s.BotToken) != ""
	}

	httpresp.OK(c, gin.H{
		"enabled":   enabled,
		"has_token": hasToken,
	})
}

func (h *BotHandler) UpdateToken(c *gin.Context) {
	var req BotTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ctx := c.Request.Context()

	if err := h.manager.UpdateToken(ctx, strings.TrimSpace(req.Token)); err != nil {
		httperr.Internal(c, "token_update_failed", "Failed to save bot token.")
		return
	}

	// Restart so the new token takes effect immediately. A failed start is
	// reported in the state, not as a request error.
	if err := h.manager.Restart(ctx); err != nil {
		h.log.Warn("bot restart after token update failed", zap.Error(err))
	}

	h.Status(c)
}

func (h *BotHandler) SetEnabled(c *gin.Context) {
	var req BotEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ctx := c.Request.Context()

	if err := h.manager.SetEnabled(ctx, *req.Enabled); err != nil {
		httperr.Internal(c, "settings_failed", "Failed to save bot settings.")
		return
	}

	if *req.Enabled {
		if err := h.manager.Start(ctx); err != nil {
			h.log.Warn("bot start failed", zap.Error(err))
		}
	} else {
		h.manager.Stop()
	}

	h.Status(c)
}

// ======================================================
// LOGS
// ======================================================

func (h *BotHandler) ListLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "50"))
	if perPage < 1 || perPage > 200 {
		perPage = 50
	}

	q := h.db.WithContext(c.Request.Context()).Model(&models.BotLog{})
	if level := c.Query("level"); level != "" {
		q = q.Where("level = ?", level)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "logs_failed", "Failed to count bot logs.")
		return
	}

	var logs []models.BotLog
	if err := q.
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "logs_failed", "Failed to list bot logs.")
		return
	}

	httpresp.OK(c, gin.H{
		"items":    logs,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}
