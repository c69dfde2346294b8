package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const flushTimeout = 5 * time.Second

// NATSConfig configures the NATS sender. Messages go to Subject.<kind>.
type NATSConfig struct {
	URL     string
	Subject string
}

// NATSSender publishes JSON messages for an external delivery worker.
type NATSSender struct {
	conn    *nats.Conn
	subject string
}

func NewNATSSender(cfg NATSConfig, opts ...nats.Option) (*NATSSender, error) {
	if cfg.Subject == "" {
		cfg.Subject = "invyte.notifications"
	}
	defaults := []nats.Option{
		nats.Name("invyte-dispatcher"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}
	nc, err := nats.Connect(cfg.URL, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", cfg.URL, err)
	}
	return &NATSSender{conn: nc, subject: cfg.Subject}, nil
}

func (s *NATSSender) Send(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling notification: %w", err)
	}
	if err := s.conn.Publish(s.subject+"."+string(msg.Kind), data); err != nil {
		return err
	}
	// Flush so a dead connection is reported as a failed send. FlushWithContext
	// insists on a deadline.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flushTimeout)
		defer cancel()
	}
	return s.conn.FlushWithContext(ctx)
}

func (s *NATSSender) Close() error {
	s.conn.Close()
	return nil
}
