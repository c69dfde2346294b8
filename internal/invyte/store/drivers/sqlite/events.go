package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
)

const eventColumns = `e.id, e.host_id, e.title, e.description, e.venue, e.theme,
	e.event_date, e.status, e.invite_link, e.created_at, e.updated_at`

type eventsRepo struct {
	db dbtx
}

func scanEvent(row scanner) (domain.Event, error) {
	var (
		e      domain.Event
		date   sql.NullTime
		status string
	)
	err := row.Scan(&e.ID, &e.HostID, &e.Title, &e.Description, &e.Venue, &e.Theme,
		&date, &status, &e.InviteLink, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Event{}, err
	}
	e.EventDate = mapNullTimePtr(date)
	e.Status = domain.EventStatus(status)
	return e, nil
}

func (r *eventsRepo) GetEventByID(ctx context.Context, id string) (domain.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events e WHERE e.id = ?`, id))
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	return e, nil
}

func (r *eventsRepo) GetEventByInviteLink(ctx context.Context, link string) (domain.Event, error) {
	e, err := scanEvent(r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events e WHERE e.invite_link = ?`, link))
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	return e, nil
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO events (id, host_id, title, description, venue, theme, event_date,
			status, invite_link, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.HostID, e.Title, e.Description, e.Venue, e.Theme, mapOptionalTime(e.EventDate),
		string(e.Status), e.InviteLink, now, now,
	)
	return mapConstraint(err)
}

func (r *eventsRepo) UpdateEvent(ctx context.Context, e domain.Event) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE events
		SET title = ?, description = ?, venue = ?, theme = ?, event_date = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		e.Title, e.Description, e.Venue, e.Theme, mapOptionalTime(e.EventDate),
		string(e.Status), time.Now().UTC(), e.ID,
	))
}

func (r *eventsRepo) ListEventsByHost(ctx context.Context, hostID string) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events e WHERE e.host_id = ? ORDER BY e.id DESC`, hostID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanEvent)
}

func (r *eventsRepo) ListEventsByGuestPhone(ctx context.Context, phone string) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events e
		JOIN event_guests g ON g.event_id = e.id
		WHERE g.phone_number = ? AND g.invite_status <> 'removed'
		ORDER BY e.id DESC`, phone)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanEvent)
}
