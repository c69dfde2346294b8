package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/notify"
	"github.com/aussiebroadwan/invyte/internal/invyte/store"
)

// DispatchService drains the notification outbox on a ticker. Each pending
// notification gets exactly one delivery attempt and is marked sent or
// failed; failures are logged and never retried. Delivered rows older than
// Retention are purged.
type DispatchService struct {
	Store     store.Store
	Sender    notify.Sender
	Logger    *slog.Logger
	Interval  time.Duration
	BatchSize int
	Retention time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewDispatchService fills in defaults for non-positive settings: a 5s
// interval, batches of 50 and a week of retention.
func NewDispatchService(
	store store.Store,
	sender notify.Sender,
	logger *slog.Logger,
	interval time.Duration,
	batchSize int,
	retention time.Duration,
) *DispatchService {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	if retention <= 0 {
		retention = 7 * 24 * time.Hour
	}

	return &DispatchService{
		Store:     store,
		Sender:    sender,
		Logger:    logger,
		Interval:  interval,
		BatchSize: batchSize,
		Retention: retention,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop() to shut it down.
func (s *DispatchService) Start() {
	go s.run()
	s.Logger.Info("dispatch service started",
		"interval", s.Interval,
		"batch_size", s.BatchSize,
	)
}

// Stop shuts the worker down, waiting for an in-flight batch to finish.
func (s *DispatchService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("dispatch service stopped")
}

func (s *DispatchService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	ctx := context.Background()
	s.tick(ctx)

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-s.stopCh:
			return
		}
	}
}

func (s *DispatchService) tick(ctx context.Context) {
	s.RunOnce(ctx)
	s.purge(ctx)
}

// RunOnce sends up to BatchSize pending notifications and reports how many
// were delivered and how many failed.
func (s *DispatchService) RunOnce(ctx context.Context) (sent, failed int) {
	pending, err := s.Store.Notifications().ListPendingNotifications(ctx, s.BatchSize)
	if err != nil {
		s.Logger.Error("failed to list pending notifications", "error", err)
		return 0, 0
	}

	for _, n := range pending {
		log := s.Logger.With(
			slog.String("notification_id", n.ID),
			slog.String("kind", string(n.Kind)),
		)

		if err := s.Sender.Send(ctx, notify.FromNotification(n)); err != nil {
			failed++
			log.Warn("notification delivery failed", slog.Any("error", err))
			if err := s.Store.Notifications().MarkNotificationFailed(ctx, n.ID, err.Error()); err != nil {
				log.Error("failed to mark notification failed", slog.Any("error", err))
			}
			continue
		}

		sent++
		if err := s.Store.Notifications().MarkNotificationSent(ctx, n.ID, time.Now().UTC()); err != nil {
			log.Error("failed to mark notification sent", slog.Any("error", err))
		}
	}

	if len(pending) > 0 {
		s.Logger.Info("dispatched notifications", "sent", sent, "failed", failed)
	}
	return sent, failed
}

func (s *DispatchService) purge(ctx context.Context) {
	n, err := s.Store.Notifications().DeleteSentNotificationsBefore(ctx, time.Now().Add(-s.Retention))
	if err != nil {
		s.Logger.Error("failed to purge sent notifications", "error", err)
		return
	}
	if n > 0 {
		s.Logger.Debug("purged sent notifications", "deleted", n)
	}
}
