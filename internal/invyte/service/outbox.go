package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/notify"
	"github.com/aussiebroadwan/invyte/internal/invyte/store"
	"github.com/aussiebroadwan/invyte/pkg/idx"
	"github.com/aussiebroadwan/invyte/pkg/slogx"
)

// Outbox records notifications for the dispatcher. Enqueue failures are
// logged and never returned; the mutation that triggered them stands.
// A nil *Outbox drops everything.
type Outbox struct {
	Store         store.Store
	InviteBaseURL string
}

// InviteLink renders the public link for an event's invite token.
func (o *Outbox) InviteLink(token string) string {
	if o == nil || o.InviteBaseURL == "" {
		return token
	}
	return strings.TrimRight(o.InviteBaseURL, "/") + "/" + token
}

// EnqueueInvite queues an invitation to recipient.
func (o *Outbox) EnqueueInvite(ctx context.Context, recipient, inviter string, event domain.Event) {
	o.enqueue(ctx, domain.NotificationInvite, recipient, map[string]string{
		notify.VarInviter: inviter,
		notify.VarEvent:   event.Title,
		notify.VarLink:    o.InviteLink(event.InviteLink),
	})
}

// EnqueueRSVP queues a reply notification to the host.
func (o *Outbox) EnqueueRSVP(ctx context.Context, hostPhone, guestName string, rsvp domain.RSVPStatus, event domain.Event) {
	o.enqueue(ctx, domain.NotificationRSVP, hostPhone, map[string]string{
		notify.VarGuest: guestName,
		notify.VarRSVP:  string(rsvp),
		notify.VarEvent: event.Title,
	})
}

func (o *Outbox) enqueue(ctx context.Context, kind domain.NotificationKind, recipient string, vars map[string]string) {
	if o == nil || o.Store == nil {
		return
	}
	log := slogx.FromContext(ctx)

	n := domain.Notification{
		ID:        idx.New().String(),
		Kind:      kind,
		Recipient: recipient,
		Payload:   vars,
		Status:    domain.NotificationPending,
	}
	if err := o.Store.Notifications().CreateNotification(ctx, n); err != nil {
		log.Error("failed to enqueue notification",
			slog.String("kind", string(kind)),
			slog.String("recipient", recipient),
			slog.Any("error", err),
		)
		return
	}
	log.Debug("notification enqueued",
		slog.String("notification_id", n.ID),
		slog.String("kind", string(kind)),
	)
}

// displayName falls back to the phone number when a user has no name yet.
func displayName(u domain.User) string {
	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		return *u.Name
	}
	return u.PhoneNumber
}
