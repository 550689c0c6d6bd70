package bot

import (
	"context"
	"errors"
	"sync"
	"time"

	tg "github.com/go-telegram/bot"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/bot/makeclient"
	"github.com/BruksfildServices01/salon-scheduler/internal/botlog"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Status string

const (
	StatusStopped  Status = "stopped"
	StatusStarting Status = "starting"
	StatusRunning  Status = "running"
	StatusStopping Status = "stopping"
	StatusError    Status = "error"
)

type State struct {
	Status       Status     `json:"status"`
	StartedAt    *time.Time `json:"started_at"`
	ErrorMessage string     `json:"error_message,omitempty"`
	BotUsername  string     `json:"bot_username,omitempty"`
}

// Manager owns the Telegram bot lifecycle: token resolution from the
// bot_settings row (config fallback), validation, long polling, restart
// after token changes.
type Manager struct {
	cfg    *config.Config
	db     *gorm.DB
	events *botlog.Dispatcher
	log    *zap.Logger

	mu     sync.Mutex
	b      *tg.Bot
	cancel context.CancelFunc
	state  State
}

func NewManager(
	cfg *config.Config,
	db *gorm.DB,
	events *botlog.Dispatcher,
	log *zap.Logger,
) *Manager {
	return &Manager{
		cfg:    cfg,
		db:     db,
		events: events,
		log:    log,
		state:  State{Status: StatusStopped},
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Bot returns the running bot instance, or nil when stopped.
func (m *Manager) Bot() *tg.Bot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.b
}

// ErrBotNotRunning reports a delivery attempt while the bot is stopped.
var ErrBotNotRunning = errors.New("bot is not running")

// DeliverReply sends a text message through the running bot.
func (m *Manager) DeliverReply(ctx context.Context, chatID int64, text string) error {
	b := m.Bot()
	if b == nil {
		return ErrBotNotRunning
	}
	return SendText(ctx, b, chatID, text)
}

// Settings returns the singleton bot_settings row, or nil if absent.
func (m *Manager) Settings(ctx context.Context) (*models.BotSettings, error) {
	var s models.BotSettings
	err := m.db.WithContext(ctx).First(&s, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *Manager) token(ctx context.Context) (string, error) {
	s, err := m.Settings(ctx)
	if err != nil {
		return "", err
	}
	if s != nil && s.BotToken != "" {
		return s.BotToken, nil
	}
	return m.cfg.BotToken, nil
}

// UpdateToken stores a new bot token; the caller restarts the bot to pick
// it up.
func (m *Manager) UpdateToken(ctx context.Context, token string) error {
	if err := m.upsertSettings(ctx, func(s *models.BotSettings) {
		s.BotToken = token
	}); err != nil {
		return err
	}

	m.events.Info("bot token updated", "")
	return nil
}

func (m *Manager) SetEnabled(ctx context.Context, enabled bool) error {
	return m.upsertSettings(ctx, func(s *models.BotSettings) {
		s.IsEnabled = enabled
	})
}

func (m *Manager) upsertSettings(ctx context.Context, mutate func(*models.BotSettings)) error {
	s, err := m.Settings(ctx)
	if err != nil {
		return err
	}
	if s == nil {
		s = &models.BotSettings{ID: 1, IsEnabled: true}
	}

	mutate(s)
	return m.db.WithContext(ctx).Save(s).Error
}

// Start brings the bot up. Safe to call when already running.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Status == StatusRunning {
		return nil
	}

	m.state = State{Status: StatusStarting}

	token, err := m.token(ctx)
	if err != nil {
		m.state = State{Status: StatusError, ErrorMessage: err.Error()}
		return err
	}
	if token == "" {
		m.state = State{Status: StatusStopped, ErrorMessage: "no bot token configured"}
		m.events.Warning("bot start failed: no token configured", "")
		return errors.New("no bot token configured")
	}

	settings, err := m.Settings(ctx)
	if err != nil {
		m.state = State{Status: StatusError, ErrorMessage: err.Error()}
		return err
	}
	if settings != nil && !settings.IsEnabled {
		m.state = State{Status: StatusStopped, ErrorMessage: "bot is disabled"}
		m.events.Info("bot start skipped: disabled in settings", "")
		return errors.New("bot is disabled")
	}

	handler := &incomingHandler{
		db: m.db,
		client: makeclient.New(makeclient.Config{
			WebhookURL:  m.cfg.MakeWebhookURL,
			BearerToken: m.cfg.MakeOutgoingBearerToken,
		}),
		log: m.log,
	}

	b, err := tg.New(token, tg.WithDefaultHandler(handler.handle))
	if err != nil {
		m.state = State{Status: StatusError, ErrorMessage: err.Error()}
		m.events.Error("bot start failed: invalid token", err.Error())
		return err
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		m.state = State{Status: StatusError, ErrorMessage: "invalid token: " + err.Error()}
		m.events.Error("bot start failed: invalid token", err.Error())
		return err
	}

	pollCtx, cancel := context.WithCancel(context.Background())
	go b.Start(pollCtx)

	now := time.Now()
	m.b = b
	m.cancel = cancel
	m.state = State{
		Status:      StatusRunning,
		StartedAt:   &now,
		BotUsername: me.Username,
	}

	m.events.Info("bot started", "username: @"+me.Username)
	m.log.Info("bot started", zap.String("username", me.Username))
	return nil
}

// Stop shuts polling down. Safe to call when not running.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Status != StatusRunning && m.state.Status != StatusStarting {
		return
	}

	m.state.Status = StatusStopping
	if m.cancel != nil {
		m.cancel()
	}

	m.b = nil
	m.cancel = nil
	m.state = State{Status: StatusStopped}

	m.events.Info("bot stopped", "")
}

// Restart is used after a token change.
func (m *Manager) Restart(ctx context.Context) error {
	m.Stop()
	return m.Start(ctx)
}
