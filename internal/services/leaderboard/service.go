package leaderboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mratw/zombie-defense/internal/dependencies/clock"
	"github.com/mratw/zombie-defense/internal/model"
	"github.com/mratw/zombie-defense/internal/services/coins"
	"github.com/mratw/zombie-defense/internal/storage"
)

const (
	// archiveSize caps the number of scores snapshotted at rollover.
	archiveSize = 100

	// maxTopLimit bounds leaderboard reads.
	maxTopLimit = 100

	// maxArchiveResults bounds archive listings.
	maxArchiveResults = 10

	// rolloverWindow is how long after UTC+7 Monday midnight the
	// rollover may still fire.
	rolloverWindow = 5 * time.Minute

	// minDaysBetweenResets guards against firing twice in one week.
	minDaysBetweenResets = 6
)

// Service manages the global high-score table and its weekly rollover
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	// checkOnce throttles the lazy rollover check to one per process.
	// It is a throttle, not a correctness mechanism: the transactional
	// archive-and-clear makes concurrent first readers idempotent.
	checkOnce sync.Once
}

// New creates a new leaderboard service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// TopScores returns the current ranked scores, best first. The limit is
// clamped to [1, 100]. The first call in a process runs the weekly
// rollover check; a failed check is logged and the read proceeds
// against pre-rollover data.
func (s *Service) TopScores(ctx context.Context, limit int) ([]*model.HighScore, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	s.checkOnce.Do(func() {
		if _, err := s.CheckWeeklyRollover(ctx); err != nil {
			s.logger.Error("weekly rollover check failed",
				slog.String("error", err.Error()),
			)
		}
	})

	return s.storage.TopHighScores(ctx, limit)
}

// Submit appends one score record for a completed game.
func (s *Service) Submit(ctx context.Context, address string, score int) error {
	address = model.NormalizeAddress(address)

	name := "Anonymous"
	user, err := s.storage.GetUserByAddress(ctx, address)
	if err == nil {
		name = user.DisplayName()
	}

	record := &model.HighScore{
		Address:  address,
		Name:     name,
		Score:    score,
		GameDate: s.clock.Now().UTC(),
	}
	if err := s.storage.AddHighScore(ctx, record); err != nil {
		return err
	}

	s.logger.Info("score submitted",
		slog.String("address", address),
		slog.Int("score", score),
	)
	return nil
}

// ListArchives returns archived weekly snapshots, newest first,
// optionally filtered by year and ISO week number.
func (s *Service) ListArchives(ctx context.Context, year, week *int) ([]*model.LeaderboardArchive, error) {
	archives, err := s.storage.ListArchives(ctx, year, week)
	if err != nil {
		return nil, err
	}
	if len(archives) > maxArchiveResults {
		archives = archives[:maxArchiveResults]
	}
	return archives, nil
}

// CheckWeeklyRollover archives and clears the leaderboard when the
// firing predicate holds: in UTC+7 it is Monday, within five minutes
// after midnight, and at least six civil days have passed since the
// last recorded reset. Returns whether a rollover was performed.
//
// The last-reset timestamp is only advanced on full success, so a
// failed rollover is retried in whole on the next eligible check.
func (s *Service) CheckWeeklyRollover(ctx context.Context) (bool, error) {
	now := s.clock.Now()

	lastReset, err := s.lastResetTime(ctx)
	if err != nil {
		return false, err
	}
	if lastReset.IsZero() {
		// First run: record now and never roll over immediately
		s.logger.Info("initializing leaderboard reset timestamp")
		if err := s.storage.SetConfigValue(ctx, model.ConfigKeyLastLeaderboardReset, now.UTC().Format(time.RFC3339Nano)); err != nil {
			return false, err
		}
		return false, nil
	}

	if !shouldRollover(lastReset, now) {
		return false, nil
	}

	s.logger.Info("performing weekly leaderboard rollover")

	top, err := s.storage.TopHighScores(ctx, archiveSize)
	if err != nil {
		return false, err
	}

	local := now.In(coins.Jakarta)
	year, week := local.ISOWeek()

	archive := &model.LeaderboardArchive{
		WeekNumber: week,
		Year:       year,
		Scores:     make([]model.ArchivedScore, 0, len(top)),
		CreatedAt:  now.UTC(),
	}
	for _, score := range top {
		archive.Scores = append(archive.Scores, model.ArchivedScore{
			Name:  score.Name,
			Score: score.Score,
			Date:  score.GameDate,
		})
	}

	if err := s.storage.ArchiveAndClearScores(ctx, archive, model.ConfigKeyLastLeaderboardReset, now); err != nil {
		return false, err
	}

	s.logger.Info("weekly leaderboard rollover complete",
		slog.Int("year", year),
		slog.Int("week", week),
		slog.Int("archived_scores", len(archive.Scores)),
	)
	return true, nil
}

func (s *Service) lastResetTime(ctx context.Context) (time.Time, error) {
	value, err := s.storage.GetConfigValue(ctx, model.ConfigKeyLastLeaderboardReset)
	if err != nil {
		if errors.Is(err, model.ErrConfigNotFound) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, value)
}

// shouldRollover is the exact firing predicate. Note the Monday AND
// six-day conditions can skip a week under clock drift; that behavior
// is intended.
func shouldRollover(lastReset, now time.Time) bool {
	local := now.In(coins.Jakarta)
	isMonday := local.Weekday() == time.Monday
	inWindow := local.Hour() == 0 && time.Duration(local.Minute())*time.Minute < rolloverWindow
	return isMonday && inWindow && civilDaysBetween(lastReset, now) >= minDaysBetweenResets
}

// civilDaysBetween counts UTC+7 calendar-date boundaries between a and b.
func civilDaysBetween(a, b time.Time) int {
	ay, am, ad := a.In(coins.Jakarta).Date()
	by, bm, bd := b.In(coins.Jakarta).Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da) / (24 * time.Hour))
}
