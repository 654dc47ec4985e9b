package creation

import (
	"log/slog"
	"time"

	"github.com/udisondev/charcreate/internal/model"
)

// Messenger delivers localized messages to an entity.
type Messenger interface {
	SendLocalized(e *model.Entity, messageID int32)
}

// Scheduler runs f once after d, without blocking the caller.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler schedules with time.AfterFunc.
type TimerScheduler struct{}

// AfterFunc implements Scheduler.
func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// LogMessenger writes localized messages to a logger. Used when no client
// connection is attached, e.g. by the CLI.
type LogMessenger struct {
	Log *slog.Logger
}

// SendLocalized implements Messenger.
func (m LogMessenger) SendLocalized(e *model.Entity, messageID int32) {
	log := m.Log
	if log == nil {
		log = slog.Default()
	}
	log.Info("localized message", "serial", e.Serial(), "name", e.Name(), "message_id", messageID)
}
