package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/bot"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucbooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// COLLABORATORS
// ======================================================

// MakeRequestStore tracks the forwarded-message rows the callback
// endpoint resolves correlation ids against.
type MakeRequestStore interface {
	FindByCorrelationID(ctx context.Context, correlationID string) (*models.MakeRequest, error)
	MarkCompleted(ctx context.Context, mr *models.MakeRequest) error
}

// ReplyDelivery pushes a callback reply to the originating chat.
type ReplyDelivery interface {
	DeliverReply(ctx context.Context, chatID int64, text string) error
}

// ======================================================
// HANDLER
// ======================================================

// MakeHandler serves the endpoints called by the Make workflow: the
// booking API and the reply callback.
type MakeHandler struct {
	db           *gorm.DB
	createUC     *ucbooking.CreateAppointment
	rescheduleUC *ucbooking.RescheduleAppointment
	cancelUC     *ucbooking.CancelAppointment
	listUC       *ucbooking.ListAppointments
	masters      *cache.Masters
	storage      *media.Storage
	makeRequests MakeRequestStore
	delivery     ReplyDelivery
	log          *zap.Logger
}

func NewMakeHandler(
	db *gorm.DB,
	createUC *ucbooking.CreateAppointment,
	rescheduleUC *ucbooking.RescheduleAppointment,
	cancelUC *ucbooking.CancelAppointment,
	listUC *ucbooking.ListAppointments,
	masters *cache.Masters,
	storage *media.Storage,
	makeRequests MakeRequestStore,
	delivery ReplyDelivery,
	log *zap.Logger,
) *MakeHandler {
	return &MakeHandler{
		db:           db,
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		listUC:       listUC,
		masters:      masters,
		storage:      storage,
		makeRequests: makeRequests,
		delivery:     delivery,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	MasterID           uint      `json:"master_id" binding:"required"`
	CustomerTelegramID int64     `json:"customer_telegram_id" binding:"required"`
	StartAt            time.Time `json:"start_at" binding:"required"`
	EndAt              time.Time `json:"end_at" binding:"required"`
}

type RescheduleAppointmentRequest struct {
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
}

type CallbackRequest struct {
	CorrelationID string `json:"correlation_id" binding:"required,min=8,max=64"`
	Text          string `json:"text" binding:"required"`
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *MakeHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateAppointmentInput{
		MasterID:           req.MasterID,
		CustomerTelegramID: req.CustomerTelegramID,
		StartAt:            req.StartAt,
		EndAt:              req.EndAt,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, dto.AppointmentFromModel(ap))
}

func (h *MakeHandler) RescheduleAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), uint(id), req.StartAt, req.EndAt)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, dto.AppointmentFromModel(ap))
}

func (h *MakeHandler) CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, dto.AppointmentFromModel(ap))
}

func (h *MakeHandler) ListAppointments(c *gin.Context) {
	filter, ok := parseAppointmentFilter(c)
	if !ok {
		return
	}

	aps, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "list_failed", "Failed to list appointments.")
		return
	}

	out := make([]dto.AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, dto.AppointmentFromModel(&aps[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// MASTERS
// ======================================================

func (h *MakeHandler) ListMasters(c *gin.Context) {
	ctx := c.Request.Context()

	if payload := h.masters.Get(ctx); payload != nil {
		c.Data(200, "application/json", payload)
		return
	}

	var ms []models.Master
	if err := h.db.WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		httperr.Internal(c, "masters_failed", "Failed to list masters.")
		return
	}

	out := make([]dto.MasterDTO, 0, len(ms))
	for i := range ms {
		out = append(out, dto.MasterFromModel(&ms[i], h.photoURL(&ms[i])))
	}

	payload, err := json.Marshal(out)
	if err != nil {
		httperr.Internal(c, "masters_failed", "Failed to list masters.")
		return
	}

	h.masters.Set(ctx, payload)
	c.Data(200, "application/json", payload)
}

func (h *MakeHandler) photoURL(m *models.Master) string {
	if m.PhotoPath == "" {
		return ""
	}
	return h.storage.PublicURL(m.PhotoPath)
}

func (h *MakeHandler) GetWorkingHours(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid master id.")
		return
	}

	var rows []models.WorkingHours
	if err := h.db.WithContext(c.Request.Context()).
		Where("master_id = ?", uint(id)).
		Order("day_of_week ASC, start_time ASC").
		Find(&rows).Error; err != nil {
		httperr.Internal(c, "working_hours_failed", "Failed to load working hours.")
		return
	}

	out := make([]dto.WorkingHoursDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.WorkingHoursDTO{
			DayOfWeek: r.DayOfWeek,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// CALLBACK
// ======================================================

// Callback delivers the Make scenario's reply back to the Telegram chat
// that originated the correlation id.
func (h *MakeHandler) Callback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ctx := c.Request.Context()

	mr, err := h.makeRequests.FindByCorrelationID(ctx, req.CorrelationID)
	if err != nil {
		httperr.Internal(c, "callback_failed", "Failed to resolve correlation_id.")
		return
	}
	if mr == nil {
		httperr.NotFound(c, "unknown_correlation_id", "Unknown correlation_id.")
		return
	}

	if err := h.delivery.DeliverReply(ctx, mr.ChatID, req.Text); err != nil {
		if errors.Is(err, bot.ErrBotNotRunning) {
			httperr.Write(c, 503, "bot_not_running", "Bot is not running.")
			return
		}
		h.log.Warn("callback delivery failed",
			zap.String("correlation_id", req.CorrelationID),
			zap.Error(err))
		httperr.Internal(c, "delivery_failed", "Failed to deliver message.")
		return
	}

	// The reply is already in the chat; a failed completion stamp must
	// not make Make retry the delivery.
	if err := h.makeRequests.MarkCompleted(ctx, mr); err != nil {
		h.log.Warn("failed to mark make request completed",
			zap.String("correlation_id", req.CorrelationID),
			zap.Error(err))
	}

	httpresp.OK(c, gin.H{"ok": true})
}
