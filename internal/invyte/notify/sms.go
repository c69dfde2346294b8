package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
)

// SMSConfig configures a JSON template SMS gateway.
type SMSConfig struct {
	URL            string
	APIKey         string
	CountryCode    string
	InviteTemplate string
	RSVPTemplate   string
	Timeout        time.Duration
}

// SMSSender posts template messages to an SMS gateway. Each request carries
// the template id in sid and up to three template variables.
type SMSSender struct {
	cfg    SMSConfig
	client *http.Client
}

var ErrSMSNotConfigured = errors.New("notify: sms url and api key are required")

func NewSMSSender(cfg SMSConfig) (*SMSSender, error) {
	if cfg.URL == "" || cfg.APIKey == "" {
		return nil, ErrSMSNotConfigured
	}
	if cfg.CountryCode == "" {
		cfg.CountryCode = "91"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &SMSSender{cfg: cfg, client: &http.Client{Timeout: cfg.Timeout}}, nil
}

type smsRequest struct {
	CountryCode string `json:"country_code"`
	Mobile      string `json:"mobile"`
	SID         string `json:"sid"`
	Var1        string `json:"var1,omitempty"`
	Var2        string `json:"var2,omitempty"`
	Var3        string `json:"var3,omitempty"`
}

func (s *SMSSender) request(msg Message) (smsRequest, error) {
	req := smsRequest{CountryCode: s.cfg.CountryCode, Mobile: msg.Recipient}
	switch msg.Kind {
	case domain.NotificationInvite:
		req.SID = s.cfg.InviteTemplate
		req.Var1, req.Var2, req.Var3 = msg.Vars[VarInviter], msg.Vars[VarEvent], msg.Vars[VarLink]
	case domain.NotificationRSVP:
		req.SID = s.cfg.RSVPTemplate
		req.Var1, req.Var2, req.Var3 = msg.Vars[VarGuest], msg.Vars[VarRSVP], msg.Vars[VarEvent]
	default:
		return smsRequest{}, fmt.Errorf("notify: sms cannot send %q", msg.Kind)
	}
	return req, nil
}

func (s *SMSSender) Send(ctx context.Context, msg Message) error {
	payload, err := s.request(msg)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: sms gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notify: sms gateway returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (s *SMSSender) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
