package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/notify"
	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"
)

func inviteMessage() notify.Message {
	return notify.Message{
		ID:        "n1",
		Kind:      domain.NotificationInvite,
		Recipient: "9990001111",
		Vars:      map[string]string{"inviter": "Asha", "event": "Birthday", "link": "https://invyte.test/abc"},
	}
}

func TestSMSSender(t *testing.T) {
	var (
		gotAuth string
		gotBody map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"LogID":"1"}`))
	}))
	defer srv.Close()

	s, err := notify.NewSMSSender(notify.SMSConfig{
		URL:            srv.URL,
		APIKey:         "secret",
		InviteTemplate: "33191",
		RSVPTemplate:   "33200",
	})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Send(context.Background(), inviteMessage()))
	require.Equal(t, "Basic secret", gotAuth)
	require.Equal(t, "91", gotBody["country_code"])
	require.Equal(t, "9990001111", gotBody["mobile"])
	require.Equal(t, "33191", gotBody["sid"])
	require.Equal(t, "Asha", gotBody["var1"])
	require.Equal(t, "Birthday", gotBody["var2"])
	require.Equal(t, "https://invyte.test/abc", gotBody["var3"])

	rsvp := notify.Message{
		Kind:      domain.NotificationRSVP,
		Recipient: "1110000000",
		Vars:      map[string]string{"guest": "Ben", "rsvp": "yes", "event": "Birthday"},
	}
	require.NoError(t, s.Send(context.Background(), rsvp))
	require.Equal(t, "33200", gotBody["sid"])
	require.Equal(t, "Ben", gotBody["var1"])
	require.Equal(t, "yes", gotBody["var2"])
}

func TestSMSSenderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad template", http.StatusBadRequest)
	}))
	defer srv.Close()

	s, err := notify.NewSMSSender(notify.SMSConfig{URL: srv.URL, APIKey: "secret"})
	require.NoError(t, err)

	err = s.Send(context.Background(), inviteMessage())
	require.Error(t, err)
	require.Contains(t, err.Error(), "400")
}

func TestSMSSenderRequiresConfig(t *testing.T) {
	_, err := notify.NewSMSSender(notify.SMSConfig{})
	require.ErrorIs(t, err, notify.ErrSMSNotConfigured)

	_, err = notify.New(notify.Config{Driver: "sms"}, nil)
	require.ErrorIs(t, err, notify.ErrSMSNotConfigured)

	_, err = notify.New(notify.Config{Driver: "pigeon"}, nil)
	require.Error(t, err)
}

func startTestNATS(t *testing.T) string {
	t.Helper()
	srv, err := natsserver.NewServer(&natsserver.Options{Host: "127.0.0.1", Port: -1})
	require.NoError(t, err)
	srv.Start()
	t.Cleanup(srv.Shutdown)
	require.True(t, srv.ReadyForConnections(5*time.Second), "embedded NATS not ready")
	return srv.ClientURL()
}

func TestNATSSender(t *testing.T) {
	url := startTestNATS(t)

	nc, err := nats.Connect(url)
	require.NoError(t, err)
	defer nc.Close()

	ch := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe("invyte.notifications.>", ch)
	require.NoError(t, err)
	defer sub.Unsubscribe() //nolint:errcheck
	require.NoError(t, nc.Flush())

	s, err := notify.New(notify.Config{Driver: "nats", NATS: notify.NATSConfig{URL: url}}, nil)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Send(context.Background(), inviteMessage()))

	select {
	case msg := <-ch:
		require.Equal(t, "invyte.notifications.invite", msg.Subject)
		var got notify.Message
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		require.Equal(t, "9990001111", got.Recipient)
		require.Equal(t, "Birthday", got.Vars["event"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published notification")
	}
}

func TestLogSender(t *testing.T) {
	s, err := notify.New(notify.Config{}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Send(context.Background(), inviteMessage()))
	require.NoError(t, s.Close())
}
