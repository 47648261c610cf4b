// Package notify is the global sink for transient user-facing messages.
// Load failures and auth events end up here instead of crashing anything;
// consumers (the REST gateway, the CLI renderer) read the recent history.
package notify

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Severity labels how loud a notification should be displayed.
type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Notification is a single transient message.
type Notification struct {
	Severity Severity  `json:"severity"`
	Summary  string    `json:"summary"`
	Detail   string    `json:"detail"`
	Time     time.Time `json:"time"`
}

// Publisher is the write side of the sink.
type Publisher interface {
	Publish(n Notification)
}

// Handler is a callback invoked for every published notification.
type Handler func(Notification)

// Sink fans published notifications out to subscribed handlers and keeps a
// bounded history of the most recent ones. Subscribe before Publish.
type Sink struct {
	mu       sync.RWMutex
	handlers []Handler
	history  *history
}

// NewSink creates a Sink retaining up to historySize recent notifications.
func NewSink(historySize uint) *Sink {
	return &Sink{
		history: newHistory(historySize),
	}
}

// Subscribe registers h to be called for every notification published after
// this call.
func (s *Sink) Subscribe(h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers = append(s.handlers, h)
}

// Publish records n in the history and delivers it to all subscribers
// synchronously. Each handler is guarded by panic recovery so a misbehaving
// subscriber cannot take the explorer down.
func (s *Sink) Publish(n Notification) {
	if n.Time.IsZero() {
		n.Time = time.Now()
	}

	s.mu.Lock()
	s.history.push(n)
	handlers := s.handlers
	s.mu.Unlock()

	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("summary", n.Summary).Errorf("notification handler panicked: %v", r)
				}
			}()
			h(n)
		}()
	}

	publishedNotifications.WithLabelValues(string(n.Severity)).Inc()
}

// Recent returns the retained notifications, oldest first.
func (s *Sink) Recent() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.history.items()
}

// LogHandler returns a Handler that mirrors notifications to the given logger
// at a level matching their severity.
func LogHandler(logger *logrus.Logger) Handler {
	return func(n Notification) {
		entry := logger.WithFields(logrus.Fields{
			"summary": n.Summary,
			"detail":  n.Detail,
		})
		switch n.Severity {
		case SeverityError:
			entry.Error("Notification")
		case SeverityWarn:
			entry.Warn("Notification")
		default:
			entry.Info("Notification")
		}
	}
}
