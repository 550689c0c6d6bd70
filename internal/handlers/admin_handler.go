package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucbooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db       *gorm.DB
	cfg      *config.Config
	masters  *cache.Masters
	storage  *media.Storage
	listUC   *ucbooking.ListAppointments
	cancelUC *ucbooking.CancelAppointment
	log      *zap.Logger
}

func NewAdminHandler(
	db *gorm.DB,
	cfg *config.Config,
	masters *cache.Masters,
	storage *media.Storage,
	listUC *ucbooking.ListAppointments,
	cancelUC *ucbooking.CancelAppointment,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		db:       db,
		cfg:      cfg,
		masters:  masters,
		storage:  storage,
		listUC:   listUC,
		cancelUC: cancelUC,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type MasterRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	ExperienceYears *int   `json:"experience_years" binding:"omitempty,gte=0,lte=80"`
	IsActive        *bool  `json:"is_active"`
}

type WorkingHoursInput struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ======================================================
// AUTH
// ======================================================

func (h *AdminHandler) Login(c *gin.Context) {
	if h.cfg.AdminPanelPasswordHash == "" {
		httperr.Internal(c, "password_not_configured", "ADMIN_PANEL_PASSWORD_HASH is not configured.")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(h.cfg.AdminPanelPasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_password", "Invalid password.")
		return
	}

	token, err := middleware.IssueAdminSession(h.cfg)
	if err != nil {
		httperr.Internal(c, "session_failed", "Failed to issue session.")
		return
	}

	c.SetCookie(
		middleware.AdminSessionCookie,
		token,
		middleware.SessionCookieMaxAge(),
		"/",
		"",
		h.cfg.Env == "production",
		true,
	)

	httpresp.OK(c, gin.H{"ok": true})
}

func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminSessionCookie, "", -1, "/", "", h.cfg.Env == "production", true)
	httpresp.OK(c, gin.H{"ok": true})
}

func (h *AdminHandler) Me(c *gin.Context) {
	httpresp.OK(c, gin.H{"ok": true})
}

// ======================================================
// MASTERS
// ======================================================

func (h *AdminHandler) ListMasters(c *gin.Context) {
	var ms []models.Master
	if err := h.db.WithContext(c.Request.Context()).Order("id ASC").Find(&ms).Error; err != nil {
		httperr.Internal(c, "masters_failed", "Failed to list masters.")
		return
	}

	out := make([]dto.MasterDTO, 0, len(ms))
	for i := range ms {
		out = append(out, dto.MasterFromModel(&ms[i], h.photoURL(&ms[i])))
	}

	httpresp.List(c, out)
}

func (h *AdminHandler) CreateMaster(c *gin.Context) {
	var req MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	m := models.Master{
		Name:            req.Name,
		Description:     req.Description,
		ExperienceYears: req.ExperienceYears,
		IsActive:        true,
	}
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&m).Error; err != nil {
		httperr.Internal(c, "master_create_failed", "Failed to create master.")
		return
	}

	h.masters.Invalidate(c.Request.Context())
	httpresp.Created(c, dto.MasterFromModel(&m, ""))
}

func (h *AdminHandler) UpdateMaster(c *gin.Context) {
	m, ok := h.loadMaster(c)
	if !ok {
		return
	}

	var req MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	m.Name = req.Name
	m.Description = req.Description
	m.ExperienceYears = req.ExperienceYears
	if req.IsActive != nil {
		m.IsActive = *req.IsActive
	}

	if err := h.db.WithContext(c.Request.Context()).Save(m).Error; err != nil {
		httperr.Internal(c, "master_update_failed", "Failed to update master.")
		return
	}

	h.masters.Invalidate(c.Request.Context())
	httpresp.OK(c, dto.MasterFromModel(m, h.photoURL(m)))
}

func (h *AdminHandler) DeleteMaster(c *gin.Context) {
	m, ok := h.loadMaster(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	// best-effort photo cleanup
	if m.PhotoPath != "" {
		if err := h.storage.Delete(ctx, m.PhotoPath); err != nil {
			h.log.Warn("failed to delete master photo", zap.Uint("master_id", m.ID), zap.Error(err))
		}
	}

	if err := h.db.WithContext(ctx).Delete(m).Error; err != nil {
		httperr.Internal(c, "master_delete_failed", "Failed to delete master.")
		return
	}

	h.masters.Invalidate(ctx)
	httpresp.OK(c, gin.H{"ok": true})
}

// ======================================================
// MASTER PHOTO
// ======================================================

func (h *AdminHandler) UploadMasterPhoto(c *gin.Context) {
	m, ok := h.loadMaster(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "File is required.")
		return
	}
	if file.Size > media.MaxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "File is too large.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to read upload.")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, media.MaxUploadBytes+1))
	if err != nil || len(raw) == 0 {
		httperr.BadRequest(c, "empty_file", "Empty file.")
		return
	}
	if len(raw) > media.MaxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "File is too large.")
		return
	}

	compressed, err := media.CompressPhoto(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "File must be a valid image.")
		return
	}

	ctx := c.Request.Context()
	key := media.PhotoKey(m.ID)

	if err := h.storage.Put(ctx, key, compressed, "image/webp"); err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store photo.")
		return
	}

	m.PhotoPath = key
	if err := h.db.WithContext(ctx).Save(m).Error; err != nil {
		httperr.Internal(c, "upload_failed", "Failed to save photo path.")
		return
	}

	h.masters.Invalidate(ctx)
	httpresp.OK(c, dto.MasterFromModel(m, h.photoURL(m)))
}

func (h *AdminHandler) DeleteMasterPhoto(c *gin.Context) {
	m, ok := h.loadMaster(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if m.PhotoPath != "" {
		if err := h.storage.Delete(ctx, m.PhotoPath); err != nil {
			h.log.Warn("failed to delete master photo", zap.Uint("master_id", m.ID), zap.Error(err))
		}

		m.PhotoPath = ""
		if err := h.db.WithContext(ctx).Save(m).Error; err != nil {
			httperr.Internal(c, "photo_delete_failed", "Failed to clear photo path.")
			return
		}
		h.masters.Invalidate(ctx)
	}

	httpresp.OK(c, gin.H{"ok": true})
}

// ======================================================
// WORKING HOURS
// ======================================================

func (h *AdminHandler) GetWorkingHours(c *gin.Context) {
	m, ok := h.loadMaster(c)
	if !ok {
		return
	}

	var rows []models.WorkingHours
	if err := h.db.WithContext(c.Request.Context()).
		Where("master_id = ?", m.ID).
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

// SetWorkingHours replaces the whole weekly calendar of a master as one
// unit (delete-then-insert), per the calendar ownership contract.
func (h *AdminHandler) SetWorkingHours(c *gin.Context) {
	m, ok := h.loadMaster(c)
	if !ok {
		return
	}

	var req []WorkingHoursInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	for _, wh := range req {
		if err := validators.ValidateWindow(wh.StartTime, wh.EndTime); err != nil {
			httperr.Unprocessable(c, "invalid_window", err.Error())
			return
		}
	}

	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("master_id = ?", m.ID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(req) == 0 {
			return nil
		}

		rows := make([]models.WorkingHours, 0, len(req))
		for _, wh := range req {
			rows = append(rows, models.WorkingHours{
				MasterID:  m.ID,
				DayOfWeek: wh.DayOfWeek,
				StartTime: wh.StartTime,
				EndTime:   wh.EndTime,
			})
		}

		return tx.Create(&rows).Error
	})
	if err != nil {
		httperr.Internal(c, "working_hours_failed", "Failed to save working hours.")
		return
	}

	httpresp.OK(c, gin.H{"ok": true})
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
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

func (h *AdminHandler) CancelAppointment(c *gin.Context) {
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

// ======================================================
// HELPERS
// ======================================================

func (h *AdminHandler) loadMaster(c *gin.Context) (*models.Master, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid master id.")
		return nil, false
	}

	var m models.Master
	if err := h.db.WithContext(c.Request.Context()).First(&m, uint(id)).Error; err != nil {
		httperr.NotFound(c, "master_not_found", "Master not found.")
		return nil, false
	}

	return &m, true
}

func (h *AdminHandler) photoURL(m *models.Master) string {
	if m.PhotoPath == "" {
		return ""
	}
	return h.storage.PublicURL(m.PhotoPath)
}
