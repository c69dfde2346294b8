package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/store"
	"github.com/aussiebroadwan/invyte/pkg/idx"
	"github.com/aussiebroadwan/invyte/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// FindOrCreateByPhone returns the user with phone, creating a nameless one
// on first sight.
func (s *UserService) FindOrCreateByPhone(ctx context.Context, phone string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return domain.User{}, ErrInvalidUser
	}

	u, err := s.Store.Users().GetUserByPhone(ctx, phone)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.User{}, err
	}

	u = domain.User{ID: idx.New().String(), PhoneNumber: phone}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		// Lost a race with another first login.
		if errors.Is(err, store.ErrAlreadyExists) {
			return s.Store.Users().GetUserByPhone(ctx, phone)
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}
	log.Info("user created", slog.String("user_id", u.ID))

	return s.Store.Users().GetUserByID(ctx, u.ID)
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

// UpdateName sets the user's display name.
func (s *UserService) UpdateName(ctx context.Context, userID, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.User{}, ErrInvalidUser
	}

	if err := s.Store.Users().UpdateUserName(ctx, userID, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		slogx.FromContext(ctx).Error("failed to update user name", slog.Any("error", err))
		return domain.User{}, err
	}
	return s.Get(ctx, userID)
}
