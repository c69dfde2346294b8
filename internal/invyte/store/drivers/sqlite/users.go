package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
)

const userColumns = `id, phone_number, name, created_at, updated_at`

type usersRepo struct {
	db dbtx
}

func scanUser(row scanner) (domain.User, error) {
	var (
		u    domain.User
		name sql.NullString
	)
	if err := row.Scan(&u.ID, &u.PhoneNumber, &name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return domain.User{}, err
	}
	u.Name = mapNullStringPtr(name)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByPhone(ctx context.Context, phone string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone_number = ?`, phone))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, phone_number, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.PhoneNumber, mapOptionalString(u.Name), now, now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateUserName(ctx context.Context, id string, name string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UTC(), id,
	))
}
