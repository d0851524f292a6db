package storage

import (
	"context"
	"time"

	"github.com/mratw/zombie-defense/internal/model"
)

// Storage defines the interface for data persistence.
//
// UpdateUser and ArchiveAndClearScores are atomic: concurrent callers
// must never observe a partially applied coin decrement or a rollover
// that archived without clearing. Implementations use a lock or a
// storage-level transaction to guarantee this.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUserByAddress(ctx context.Context, address string) (*model.User, error)

	// UpdateUser applies fn to the stored user as a single
	// read-modify-write. fn may mutate the user in place; returning an
	// error aborts the update and leaves the stored state unchanged.
	UpdateUser(ctx context.Context, address string, fn func(*model.User) error) (*model.User, error)

	// High score operations
	AddHighScore(ctx context.Context, score *model.HighScore) error
	TopHighScores(ctx context.Context, limit int) ([]*model.HighScore, error)

	// Archive operations
	ListArchives(ctx context.Context, year, week *int) ([]*model.LeaderboardArchive, error)

	// System config operations
	GetConfigValue(ctx context.Context, key string) (string, error)
	SetConfigValue(ctx context.Context, key, value string) error

	// ArchiveAndClearScores persists the archive, deletes all current
	// high scores, and records resetAt under configKey, all as one
	// critical section. On error nothing is applied.
	ArchiveAndClearScores(ctx context.Context, archive *model.LeaderboardArchive, configKey string, resetAt time.Time) error
}
