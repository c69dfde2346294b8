package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/domain"
	"github.com/aussiebroadwan/invyte/internal/invyte/store"
	"github.com/aussiebroadwan/invyte/pkg/idx"
	"github.com/aussiebroadwan/invyte/pkg/slogx"
)

// ItemInput describes a wishlist item as submitted by a user.
type ItemInput struct {
	Name     string
	URL      string
	ImageURL string
}

func (in ItemInput) normalize() ItemInput {
	return ItemInput{
		Name:     strings.TrimSpace(in.Name),
		URL:      strings.TrimSpace(in.URL),
		ImageURL: strings.TrimSpace(in.ImageURL),
	}
}

// ClaimRecord is the claim state written by a successful Claim.
type ClaimRecord struct {
	ItemID      string
	EventID     string
	ClaimedBy   string
	ClaimStatus domain.ClaimStatus
	ClaimedAt   time.Time
}

// WishlistService owns the claim fields of wishlist items. Nothing else
// writes is_claimed, claimed_by or claim_status.
type WishlistService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *WishlistService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Claim assigns itemID to userID. The item must belong to eventID. The write
// is unconditional: a second claimant overwrites the first.
func (s *WishlistService) Claim(ctx context.Context, userID, eventID, itemID string) (ClaimRecord, error) {
	log := slogx.FromContext(ctx)

	item, err := s.Store.Wishlist().GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClaimRecord{}, ErrItemNotFound
		}
		log.Error("failed to fetch wishlist item", slog.String("item_id", itemID), slog.Any("error", err))
		return ClaimRecord{}, err
	}
	if item.EventID == nil || *item.EventID != eventID {
		log.Warn("claim for item outside event",
			slog.String("item_id", itemID),
			slog.String("event_id", eventID),
		)
		return ClaimRecord{}, ErrItemNotFound
	}

	if item.Claimed() && *item.ClaimedBy != userID {
		log.Warn("overwriting existing claim",
			slog.String("item_id", itemID),
			slog.String("previous_claimant", *item.ClaimedBy),
		)
	}

	at := s.now()
	if err := s.Store.Wishlist().ClaimItem(ctx, itemID, userID, at); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ClaimRecord{}, ErrItemNotFound
		}
		log.Error("failed to claim wishlist item", slog.String("item_id", itemID), slog.Any("error", err))
		return ClaimRecord{}, err
	}

	log.Info("wishlist item claimed", slog.String("item_id", itemID), slog.String("event_id", eventID))

	return ClaimRecord{
		ItemID:      itemID,
		EventID:     eventID,
		ClaimedBy:   userID,
		ClaimStatus: domain.ClaimStatusPending,
		ClaimedAt:   at,
	}, nil
}

// Release clears the claimant of itemID. Releasing an unclaimed item is a
// no-op apart from the released_at stamp.
func (s *WishlistService) Release(ctx context.Context, itemID string) (domain.WishlistItem, error) {
	log := slogx.FromContext(ctx)

	if err := s.Store.Wishlist().ReleaseItem(ctx, itemID, s.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.WishlistItem{}, ErrItemNotFound
		}
		log.Error("failed to release wishlist item", slog.String("item_id", itemID), slog.Any("error", err))
		return domain.WishlistItem{}, err
	}

	item, err := s.Store.Wishlist().GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.WishlistItem{}, ErrItemNotFound
		}
		return domain.WishlistItem{}, err
	}

	log.Info("wishlist item released", slog.String("item_id", itemID))
	return item, nil
}

// ListForEvent returns the event's items in creation order.
func (s *WishlistService) ListForEvent(ctx context.Context, eventID string) ([]domain.WishlistItem, error) {
	if _, err := s.event(ctx, eventID); err != nil {
		return nil, err
	}
	return s.Store.Wishlist().ListItemsByEvent(ctx, eventID)
}

// AddToEvent creates event-scoped items owned by the event host. Every name
// is checked before anything is written.
func (s *WishlistService) AddToEvent(ctx context.Context, eventID string, items []ItemInput) ([]domain.WishlistItem, error) {
	normalized, err := validateItems(items)
	if err != nil {
		return nil, err
	}

	event, err := s.event(ctx, eventID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.WishlistItem, 0, len(normalized))
	for _, in := range normalized {
		item, err := s.createEventItem(ctx, event, in)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// ReplaceEventWishlist makes the event's items match items by
// case-insensitive name. Dropped items are released and deleted, new names
// are added, and existing items keep their claims. An empty list deletes
// everything.
func (s *WishlistService) ReplaceEventWishlist(ctx context.Context, eventID string, items []ItemInput) ([]domain.WishlistItem, error) {
	log := slogx.FromContext(ctx)

	normalized, err := validateItems(items)
	if err != nil {
		return nil, err
	}

	event, err := s.event(ctx, eventID)
	if err != nil {
		return nil, err
	}

	current, err := s.Store.Wishlist().ListItemsByEvent(ctx, eventID)
	if err != nil {
		log.Error("failed to list event wishlist", slog.String("event_id", eventID), slog.Any("error", err))
		return nil, err
	}

	wanted := make(map[string]struct{}, len(normalized))
	for _, in := range normalized {
		wanted[itemKey(in.Name)] = struct{}{}
	}

	existing := make(map[string]struct{}, len(current))
	for _, item := range current {
		key := itemKey(item.Name)
		if _, keep := wanted[key]; keep {
			existing[key] = struct{}{}
			continue
		}
		if item.Claimed() {
			if _, err := s.Release(ctx, item.ID); err != nil && !errors.Is(err, ErrItemNotFound) {
				return nil, err
			}
		}
		if err := s.Store.Wishlist().DeleteItem(ctx, item.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to delete wishlist item", slog.String("item_id", item.ID), slog.Any("error", err))
			return nil, err
		}
	}

	for _, in := range normalized {
		key := itemKey(in.Name)
		if _, ok := existing[key]; ok {
			continue
		}
		if _, err := s.createEventItem(ctx, event, in); err != nil {
			return nil, err
		}
		existing[key] = struct{}{}
	}

	return s.Store.Wishlist().ListItemsByEvent(ctx, eventID)
}

// ListPersonal returns the user's personal items, unclaimed first and then
// newest first. Each item is annotated with the events whose copy of it
// (same name, any case) is currently claimed.
func (s *WishlistService) ListPersonal(ctx context.Context, userID string) ([]domain.PersonalWishlistItem, error) {
	log := slogx.FromContext(ctx)

	items, err := s.Store.Wishlist().ListPersonalItems(ctx, userID)
	if err != nil {
		log.Error("failed to list personal wishlist", slog.Any("error", err))
		return nil, err
	}

	claimed, err := s.Store.Wishlist().ListClaimedEventItemsByHost(ctx, userID)
	if err != nil {
		log.Error("failed to list claimed event items", slog.Any("error", err))
		return nil, err
	}

	byName := make(map[string][]string)
	for _, c := range claimed {
		key := itemKey(c.Name)
		byName[key] = append(byName[key], *c.EventID)
	}

	out := make([]domain.PersonalWishlistItem, 0, len(items))
	for _, item := range items {
		events := byName[itemKey(item.Name)]
		p := domain.PersonalWishlistItem{
			WishlistItem:    item,
			ClaimedCount:    len(events),
			ClaimedInEvents: events,
		}
		if p.ClaimedInEvents == nil {
			p.ClaimedInEvents = []string{}
		}
		p.IsClaimed = item.IsClaimed || len(events) > 0
		out = append(out, p)
	}

	// Stable keeps the newest-first order from the store within each group.
	slices.SortStableFunc(out, func(a, b domain.PersonalWishlistItem) int {
		switch {
		case a.IsClaimed == b.IsClaimed:
			return 0
		case a.IsClaimed:
			return 1
		default:
			return -1
		}
	})

	return out, nil
}

// AddPersonal adds items to the user's personal wishlist. Blank names are
// skipped; a submission with no usable name fails.
func (s *WishlistService) AddPersonal(ctx context.Context, userID string, items []ItemInput) ([]domain.WishlistItem, error) {
	log := slogx.FromContext(ctx)

	out := make([]domain.WishlistItem, 0, len(items))
	for _, raw := range items {
		in := raw.normalize()
		if in.Name == "" {
			continue
		}
		item := domain.WishlistItem{
			ID:       idx.New().String(),
			HostID:   userID,
			Name:     in.Name,
			URL:      in.URL,
			ImageURL: in.ImageURL,
		}
		if err := s.Store.Wishlist().CreateItem(ctx, item); err != nil {
			log.Error("failed to create personal wishlist item", slog.Any("error", err))
			return nil, err
		}
		created, err := s.Store.Wishlist().GetItemByID(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}

	if len(out) == 0 {
		return nil, ErrInvalidItem
	}
	return out, nil
}

// UpdatePersonal replaces the details of one of the user's personal items.
func (s *WishlistService) UpdatePersonal(ctx context.Context, userID, itemID string, in ItemInput) (domain.WishlistItem, error) {
	in = in.normalize()
	if in.Name == "" {
		return domain.WishlistItem{}, ErrInvalidItem
	}

	if _, err := s.personalItem(ctx, userID, itemID); err != nil {
		return domain.WishlistItem{}, err
	}

	if err := s.Store.Wishlist().UpdateItemDetails(ctx, itemID, in.Name, in.URL, in.ImageURL); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.WishlistItem{}, ErrItemNotFound
		}
		return domain.WishlistItem{}, err
	}
	return s.Store.Wishlist().GetItemByID(ctx, itemID)
}

// DeletePersonal removes one of the user's personal items. Event copies are
// independent and stay.
func (s *WishlistService) DeletePersonal(ctx context.Context, userID, itemID string) error {
	if _, err := s.personalItem(ctx, userID, itemID); err != nil {
		return err
	}
	if err := s.Store.Wishlist().DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

// ShareToEvent copies the user's personal items into an event they host.
// Copies are matched by name case-insensitively, so sharing an item the
// event already has returns the existing event item. Ids that are not the
// user's personal items are skipped.
func (s *WishlistService) ShareToEvent(ctx context.Context, userID, eventID string, itemIDs []string) ([]domain.WishlistItem, error) {
	log := slogx.FromContext(ctx)

	event, err := s.event(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.HostID != userID {
		return nil, ErrEventNotFound
	}

	current, err := s.Store.Wishlist().ListItemsByEvent(ctx, eventID)
	if err != nil {
		log.Error("failed to list event wishlist", slog.String("event_id", eventID), slog.Any("error", err))
		return nil, err
	}
	byName := make(map[string]domain.WishlistItem, len(current))
	for _, item := range current {
		key := itemKey(item.Name)
		if _, ok := byName[key]; !ok {
			byName[key] = item
		}
	}

	out := make([]domain.WishlistItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		personal, err := s.personalItem(ctx, userID, id)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				log.Debug("skipping item not on personal wishlist", slog.String("item_id", id))
				continue
			}
			return nil, err
		}

		key := itemKey(personal.Name)
		if existing, ok := byName[key]; ok {
			out = append(out, existing)
			continue
		}

		item, err := s.createEventItem(ctx, event, ItemInput{
			Name:     personal.Name,
			URL:      personal.URL,
			ImageURL: personal.ImageURL,
		})
		if err != nil {
			return nil, err
		}
		byName[key] = item
		out = append(out, item)
	}
	return out, nil
}

// itemKey folds an item name for matching within one event. Folding stays in
// Go because sqlite's lower() only handles ASCII.
func itemKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *WishlistService) event(ctx context.Context, eventID string) (domain.Event, error) {
	event, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, ErrEventNotFound
		}
		slogx.FromContext(ctx).Error("failed to fetch event", slog.String("event_id", eventID), slog.Any("error", err))
		return domain.Event{}, err
	}
	return event, nil
}

func (s *WishlistService) personalItem(ctx context.Context, userID, itemID string) (domain.WishlistItem, error) {
	item, err := s.Store.Wishlist().GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.WishlistItem{}, ErrItemNotFound
		}
		return domain.WishlistItem{}, err
	}
	if !item.Personal() || item.HostID != userID {
		return domain.WishlistItem{}, ErrItemNotFound
	}
	return item, nil
}

func (s *WishlistService) createEventItem(ctx context.Context, event domain.Event, in ItemInput) (domain.WishlistItem, error) {
	eventID := event.ID
	item := domain.WishlistItem{
		ID:       idx.New().String(),
		HostID:   event.HostID,
		EventID:  &eventID,
		Name:     in.Name,
		URL:      in.URL,
		ImageURL: in.ImageURL,
	}
	if err := s.Store.Wishlist().CreateItem(ctx, item); err != nil {
		slogx.FromContext(ctx).Error("failed to create event wishlist item",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
		return domain.WishlistItem{}, err
	}
	return s.Store.Wishlist().GetItemByID(ctx, item.ID)
}

// validateItems trims every item and rejects the batch if any name is blank.
func validateItems(items []ItemInput) ([]ItemInput, error) {
	out := make([]ItemInput, 0, len(items))
	for _, raw := range items {
		in := raw.normalize()
		if in.Name == "" {
			return nil, ErrInvalidItem
		}
		out = append(out, in)
	}
	return out, nil
}
