package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mratw/zombie-defense/internal/model"
	"github.com/mratw/zombie-defense/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.MaxTxRetries <= 0 {
		cfg.MaxTxRetries = DefaultConfig().MaxTxRetries
	}
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.Address), data, 0).Err()
}

func (s *Storage) GetUserByAddress(ctx context.Context, address string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(address)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser performs an optimistic WATCH transaction: the user key is
// watched, fn is applied to the current value, and the write commits
// only if no other client touched the key. Retried a bounded number of
// times before reporting a conflict.
func (s *Storage) UpdateUser(ctx context.Context, address string, fn func(*model.User) error) (*model.User, error) {
	key := userKey(address)

	var updated *model.User
	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrUserNotFound
			}
			return err
		}

		var user model.User
		if err := json.Unmarshal(data, &user); err != nil {
			return err
		}

		if err := fn(&user); err != nil {
			return err
		}

		newData, err := json.Marshal(&user)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, newData, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &user
		return nil
	}

	for i := 0; i < s.cfg.MaxTxRetries; i++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, model.ErrUpdateConflict
}

// High score operations

func (s *Storage) AddHighScore(ctx context.Context, score *model.HighScore) error {
	record := *score
	if record.ID == "" {
		seq, err := s.client.Incr(ctx, scoreCounterKey()).Result()
		if err != nil {
			return err
		}
		record.ID = "hs-" + strconv.FormatInt(seq, 10)
	}

	data, err := json.Marshal(&record)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, scoreKey(record.ID), data, 0)
		pipe.ZAdd(ctx, scoreRankKey(), redis.Z{
			Score:  float64(record.Score),
			Member: record.ID,
		})
		return nil
	})
	return err
}

func (s *Storage) TopHighScores(ctx context.Context, limit int) ([]*model.HighScore, error) {
	if limit <= 0 {
		limit = -1
	}
	ids, err := s.client.ZRevRange(ctx, scoreRankKey(), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = scoreKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]*model.HighScore, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			// Record deleted between the range and the fetch
			continue
		}
		var score model.HighScore
		if err := json.Unmarshal([]byte(str), &score); err != nil {
			return nil, err
		}
		scores = append(scores, &score)
	}
	return scores, nil
}

// Archive operations

func (s *Storage) ListArchives(ctx context.Context, year, week *int) ([]*model.LeaderboardArchive, error) {
	// Newest first: the index scores archives by year*100+week
	keys, err := s.client.ZRevRange(ctx, archiveIndexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	var archives []*model.LeaderboardArchive
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var archive model.LeaderboardArchive
		if err := json.Unmarshal([]byte(str), &archive); err != nil {
			return nil, err
		}
		if year != nil && archive.Year != *year {
			continue
		}
		if week != nil && archive.WeekNumber != *week {
			continue
		}
		archives = append(archives, &archive)
	}
	return archives, nil
}

// System config operations

func (s *Storage) GetConfigValue(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, configKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrConfigNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Storage) SetConfigValue(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, configKey(key), value, 0).Err()
}

// ArchiveAndClearScores watches the score ranking so a score submitted
// mid-rollover aborts the transaction; archive write, score deletion
// and the reset-timestamp advance all commit together or not at all.
func (s *Storage) ArchiveAndClearScores(ctx context.Context, archive *model.LeaderboardArchive, cfgKey string, resetAt time.Time) error {
	rankKey := scoreRankKey()

	record := *archive
	if record.ID == "" {
		record.ID = fmt.Sprintf("arch-%d-%d", record.Year, record.WeekNumber)
	}

	data, err := json.Marshal(&record)
	if err != nil {
		return err
	}

	txn := func(tx *redis.Tx) error {
		ids, err := tx.ZRange(ctx, rankKey, 0, -1).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			aKey := archiveKey(record.Year, record.WeekNumber)
			pipe.Set(ctx, aKey, data, 0)
			pipe.ZAdd(ctx, archiveIndexKey(), redis.Z{
				Score:  float64(record.Year*100 + record.WeekNumber),
				Member: aKey,
			})
			for _, id := range ids {
				pipe.Del(ctx, scoreKey(id))
			}
			pipe.Del(ctx, rankKey)
			pipe.Set(ctx, configKey(cfgKey), resetAt.UTC().Format(time.RFC3339Nano), 0)
			return nil
		})
		return err
	}

	for i := 0; i < s.cfg.MaxTxRetries; i++ {
		err := s.client.Watch(ctx, txn, rankKey)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return model.ErrUpdateConflict
}
