package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
)

const guestColumns = `id, event_id, phone_number, name, invite_status, rsvp_status,
	gift_option, wishlist_item_id, invited_at, responded_at, created_at, updated_at`

type guestsRepo struct {
	db dbtx
}

func scanGuest(row scanner) (domain.Guest, error) {
	var (
		g            domain.Guest
		inviteStatus string
		rsvpStatus   string
		giftOption   sql.NullString
		itemID       sql.NullString
		respondedAt  sql.NullTime
	)
	err := row.Scan(&g.ID, &g.EventID, &g.PhoneNumber, &g.Name, &inviteStatus, &rsvpStatus,
		&giftOption, &itemID, &g.InvitedAt, &respondedAt, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return domain.Guest{}, err
	}
	g.InviteStatus = domain.InviteStatus(inviteStatus)
	g.RSVPStatus = domain.RSVPStatus(rsvpStatus)
	if giftOption.Valid {
		opt := domain.GiftOption(giftOption.String)
		g.GiftOption = &opt
	}
	g.WishlistItemID = mapNullStringPtr(itemID)
	g.RespondedAt = mapNullTimePtr(respondedAt)
	return g, nil
}

func (r *guestsRepo) ListGuestsByEvent(ctx context.Context, eventID string) ([]domain.Guest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+guestColumns+` FROM event_guests WHERE event_id = ? ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanGuest)
}

func (r *guestsRepo) GetGuestByPhone(ctx context.Context, eventID, phone string) (domain.Guest, error) {
	g, err := scanGuest(r.db.QueryRowContext(ctx,
		`SELECT `+guestColumns+` FROM event_guests WHERE event_id = ? AND phone_number = ?`,
		eventID, phone))
	if err != nil {
		return domain.Guest{}, mapNotFound(err)
	}
	return g, nil
}

func (r *guestsRepo) CreateGuest(ctx context.Context, g domain.Guest) error {
	now := time.Now().UTC()
	invitedAt := g.InvitedAt
	if invitedAt.IsZero() {
		invitedAt = now
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO event_guests (id, event_id, phone_number, name, invite_status, rsvp_status,
			invited_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.EventID, g.PhoneNumber, g.Name, string(g.InviteStatus), string(g.RSVPStatus),
		invitedAt.UTC(), now, now,
	)
	return mapConstraint(err)
}

func (r *guestsRepo) UpdateGuestName(ctx context.Context, id, name string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE event_guests SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UTC(), id,
	))
}

func (r *guestsRepo) SetGuestInviteStatus(
	ctx context.Context,
	id string,
	status domain.InviteStatus,
	at time.Time,
) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE event_guests
		SET invite_status = ?,
		    invited_at = CASE WHEN ? = 'invited' THEN ? ELSE invited_at END,
		    updated_at = ?
		WHERE id = ?`,
		string(status), string(status), at.UTC(), at.UTC(), id,
	))
}

func (r *guestsRepo) UpdateGuestResponse(ctx context.Context, g domain.Guest) error {
	var giftOption sql.NullString
	if g.GiftOption != nil {
		giftOption = sql.NullString{String: string(*g.GiftOption), Valid: true}
	}
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE event_guests
		SET rsvp_status = ?, invite_status = ?, gift_option = ?, wishlist_item_id = ?,
		    responded_at = ?, updated_at = ?
		WHERE id = ?`,
		string(g.RSVPStatus), string(g.InviteStatus), giftOption,
		mapOptionalString(g.WishlistItemID), mapOptionalTime(g.RespondedAt),
		time.Now().UTC(), g.ID,
	))
}
