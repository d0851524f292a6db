package coins

import (
	"context"
	"log/slog"
	"time"

	"github.com/mratw/zombie-defense/internal/dependencies/clock"
	"github.com/mratw/zombie-defense/internal/model"
	"github.com/mratw/zombie-defense/internal/storage"
)

// Jakarta is the fixed civil timezone for the daily coin reset.
// The boundary is a calendar-date change in UTC+7, not a 24h interval.
var Jakarta = time.FixedZone("WIB", 7*60*60)

// Service manages the per-user daily coin allowance
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new coin allowance service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// needsReset reports whether lastReset falls on an earlier UTC+7 civil
// date than now. A zero lastReset always needs a reset.
func needsReset(lastReset, now time.Time) bool {
	if lastReset.IsZero() {
		return true
	}
	ly, lm, ld := lastReset.In(Jakarta).Date()
	ny, nm, nd := now.In(Jakarta).Date()
	return ly != ny || lm != nm || ld != nd
}

// refresh applies the daily reset to a user in place. Returns true if
// the balance was reset.
func (s *Service) refresh(user *model.User, now time.Time) bool {
	if !needsReset(user.LastCoinReset, now) {
		return false
	}
	user.Coins = model.MaxCoins
	user.LastCoinReset = now.UTC()
	return true
}

// Refresh tops the user's balance up to the daily allowance if a UTC+7
// civil-day boundary has passed since the last reset. Idempotent within
// a civil day.
func (s *Service) Refresh(ctx context.Context, address string) (*model.User, error) {
	now := s.clock.Now()
	user, err := s.storage.UpdateUser(ctx, model.NormalizeAddress(address), func(u *model.User) error {
		if s.refresh(u, now) {
			s.logger.Info("coins reset",
				slog.String("address", u.Address),
				slog.Time("reset_at", now),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Use refreshes and then consumes one coin as a single atomic
// read-modify-write. Returns model.ErrNoCoins, with state unchanged,
// when the balance is empty after the refresh.
func (s *Service) Use(ctx context.Context, address string) (*model.User, error) {
	now := s.clock.Now()
	user, err := s.storage.UpdateUser(ctx, model.NormalizeAddress(address), func(u *model.User) error {
		s.refresh(u, now)
		if u.Coins <= 0 {
			return model.ErrNoCoins
		}
		u.Coins--
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("coin used",
		slog.String("address", user.Address),
		slog.Int("remaining", user.Coins),
	)
	return user, nil
}
