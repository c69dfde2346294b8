package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
)

const itemColumns = `id, host_id, event_id, name, url, image_url, is_claimed, claimed_by,
	claim_status, claimed_at, confirmed_at, released_at, created_at, updated_at`

type wishlistRepo struct {
	db dbtx
}

func scanItem(row scanner) (domain.WishlistItem, error) {
	var (
		w           domain.WishlistItem
		eventID     sql.NullString
		claimedBy   sql.NullString
		claimStatus string
		claimedAt   sql.NullTime
		confirmedAt sql.NullTime
		releasedAt  sql.NullTime
	)
	err := row.Scan(&w.ID, &w.HostID, &eventID, &w.Name, &w.URL, &w.ImageURL, &w.IsClaimed,
		&claimedBy, &claimStatus, &claimedAt, &confirmedAt, &releasedAt, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return domain.WishlistItem{}, err
	}
	w.EventID = mapNullStringPtr(eventID)
	w.ClaimedBy = mapNullStringPtr(claimedBy)
	w.ClaimStatus = domain.ClaimStatus(claimStatus)
	w.ClaimedAt = mapNullTimePtr(claimedAt)
	w.ConfirmedAt = mapNullTimePtr(confirmedAt)
	w.ReleasedAt = mapNullTimePtr(releasedAt)
	return w, nil
}

func (r *wishlistRepo) GetItemByID(ctx context.Context, id string) (domain.WishlistItem, error) {
	w, err := scanItem(r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM wishlist_items WHERE id = ?`, id))
	if err != nil {
		return domain.WishlistItem{}, mapNotFound(err)
	}
	return w, nil
}

func (r *wishlistRepo) ListItemsByEvent(ctx context.Context, eventID string) ([]domain.WishlistItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM wishlist_items WHERE event_id = ? ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanItem)
}

func (r *wishlistRepo) ListPersonalItems(ctx context.Context, userID string) ([]domain.WishlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM wishlist_items
		WHERE host_id = ? AND event_id IS NULL
		ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanItem)
}

func (r *wishlistRepo) ListClaimedEventItemsByHost(ctx context.Context, hostID string) ([]domain.WishlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM wishlist_items
		WHERE host_id = ? AND event_id IS NOT NULL AND is_claimed = 1
		ORDER BY claimed_at DESC, id DESC`, hostID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanItem)
}

func (r *wishlistRepo) ListClaimsByUser(ctx context.Context, eventID, userID string) ([]domain.WishlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM wishlist_items
		WHERE event_id = ? AND claimed_by = ? AND is_claimed = 1
		ORDER BY claimed_at DESC, id DESC`, eventID, userID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanItem)
}

func (r *wishlistRepo) CreateItem(ctx context.Context, item domain.WishlistItem) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlist_items (id, host_id, event_id, name, url, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.HostID, mapOptionalString(item.EventID), item.Name, item.URL, item.ImageURL,
		now, now,
	)
	return mapConstraint(err)
}

func (r *wishlistRepo) UpdateItemDetails(ctx context.Context, id, name, url, imageURL string) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE wishlist_items SET name = ?, url = ?, image_url = ?, updated_at = ? WHERE id = ?`,
		name, url, imageURL, time.Now().UTC(), id,
	))
}

func (r *wishlistRepo) DeleteItem(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM wishlist_items WHERE id = ?`, id))
}

func (r *wishlistRepo) ClaimItem(ctx context.Context, id, userID string, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE wishlist_items
		SET is_claimed = 1, claimed_by = ?, claim_status = 'pending', claimed_at = ?, updated_at = ?
		WHERE id = ?`,
		userID, at.UTC(), at.UTC(), id,
	))
}

func (r *wishlistRepo) ReleaseItem(ctx context.Context, id string, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE wishlist_items
		SET is_claimed = 0, claimed_by = NULL, claim_status = 'pending', released_at = ?, updated_at = ?
		WHERE id = ?`,
		at.UTC(), at.UTC(), id,
	))
}
