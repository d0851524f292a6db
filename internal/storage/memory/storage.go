package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/mratw/zombie-defense/internal/model"
	"github.com/mratw/zombie-defense/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users    map[string]*model.User
	scores   []*model.HighScore
	archives []*model.LeaderboardArchive
	config   map[string]string
	nextID   int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:  make(map[string]*model.User),
		config: make(map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *user
	s.users[user.Address] = &copied
	return nil
}

func (s *Storage) GetUserByAddress(ctx context.Context, address string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[address]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *Storage) UpdateUser(ctx context.Context, address string, fn func(*model.User) error) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[address]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	// fn runs on a copy under the write lock so a failed update never
	// leaves partial mutations behind.
	copied := *user
	if err := fn(&copied); err != nil {
		return nil, err
	}
	s.users[address] = &copied
	result := copied
	return &result, nil
}

// High score operations

func (s *Storage) AddHighScore(ctx context.Context, score *model.HighScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *score
	if copied.ID == "" {
		s.nextID++
		copied.ID = "hs-" + strconv.Itoa(s.nextID)
	}
	s.scores = append(s.scores, &copied)
	return nil
}

func (s *Storage) TopHighScores(ctx context.Context, limit int) ([]*model.HighScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]*model.HighScore, len(s.scores))
	copy(sorted, s.scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	result := make([]*model.HighScore, len(sorted))
	for i, sc := range sorted {
		copied := *sc
		result[i] = &copied
	}
	return result, nil
}

// Archive operations

func (s *Storage) ListArchives(ctx context.Context, year, week *int) ([]*model.LeaderboardArchive, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.LeaderboardArchive
	for _, a := range s.archives {
		if year != nil && a.Year != *year {
			continue
		}
		if week != nil && a.WeekNumber != *week {
			continue
		}
		copied := *a
		result = append(result, &copied)
	}
	// Newest first
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].WeekNumber > result[j].WeekNumber
	})
	return result, nil
}

// System config operations

func (s *Storage) GetConfigValue(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.config[key]
	if !ok {
		return "", model.ErrConfigNotFound
	}
	return value, nil
}

func (s *Storage) SetConfigValue(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config[key] = value
	return nil
}

// ArchiveAndClearScores archives, clears and advances the reset
// timestamp under a single write lock.
func (s *Storage) ArchiveAndClearScores(ctx context.Context, archive *model.LeaderboardArchive, configKey string, resetAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *archive
	if copied.ID == "" {
		s.nextID++
		copied.ID = "arch-" + strconv.Itoa(s.nextID)
	}
	s.archives = append(s.archives, &copied)
	s.scores = nil
	s.config[configKey] = resetAt.UTC().Format(time.RFC3339Nano)
	return nil
}
