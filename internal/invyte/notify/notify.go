// Package notify delivers invitation and RSVP notifications drained from the
// outbox. Senders make one attempt per message; retries are not their job.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
)

// Template variable names carried in Message.Vars.
const (
	VarInviter = "inviter"
	VarEvent   = "event"
	VarLink    = "link"
	VarGuest   = "guest"
	VarRSVP    = "rsvp"
)

// Message is one notification ready for delivery. Vars holds the template
// variables keyed by name (inviter, event, link, guest, rsvp).
type Message struct {
	ID        string                  `json:"id"`
	Kind      domain.NotificationKind `json:"kind"`
	Recipient string                  `json:"recipient"`
	Vars      map[string]string       `json:"vars"`
}

// Sender delivers a message or reports why it could not.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	Close() error
}

// Config selects and configures a Sender.
type Config struct {
	Driver string // sms, nats or log

	SMS  SMSConfig
	NATS NATSConfig
}

// New builds the Sender named by cfg.Driver.
func New(cfg Config, logger *slog.Logger) (Sender, error) {
	switch cfg.Driver {
	case "", "log":
		return &LogSender{Logger: logger}, nil
	case "sms":
		return NewSMSSender(cfg.SMS)
	case "nats":
		return NewNATSSender(cfg.NATS)
	default:
		return nil, fmt.Errorf("notify: unknown driver %q", cfg.Driver)
	}
}

// FromNotification converts an outbox row into a Message.
func FromNotification(n domain.Notification) Message {
	return Message{
		ID:        n.ID,
		Kind:      n.Kind,
		Recipient: n.Recipient,
		Vars:      n.Payload,
	}
}

// LogSender writes messages to the log instead of delivering them. It is
// the development default.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "notification",
		slog.String("notification_id", msg.ID),
		slog.String("kind", string(msg.Kind)),
		slog.String("recipient", msg.Recipient),
		slog.Any("vars", msg.Vars),
	)
	return nil
}

func (s *LogSender) Close() error { return nil }
