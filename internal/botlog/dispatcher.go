package botlog

import (
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Event struct {
	Level   string
	Message string
	Details string
}

// Dispatcher persists bot lifecycle events off the hot path. Events go
// through a buffered channel to a single worker; when the buffer is full
// the event is dropped rather than blocking the caller.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev.Level, ev.Message, ev.Details); err != nil {
			d.log.Warn("bot log write failed", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("bot log queue full, dropping event",
			zap.String("message", ev.Message))
	}
}

func (d *Dispatcher) Info(message, details string) {
	d.Dispatch(Event{Level: models.BotLogInfo, Message: message, Details: details})
}

func (d *Dispatcher) Warning(message, details string) {
	d.Dispatch(Event{Level: models.BotLogWarning, Message: message, Details: details})
}

func (d *Dispatcher) Error(message, details string) {
	d.Dispatch(Event{Level: models.BotLogError, Message: message, Details: details})
}
