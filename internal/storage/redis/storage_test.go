package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mratw/zombie-defense/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		Address:       "0xabc",
		Username:      "alice",
		Coins:         3,
		LastCoinReset: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUserByAddress(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(user.Address, retrieved.Address)
	s.Equal(user.Username, retrieved.Username)
	s.Equal(3, retrieved.Coins)
	s.True(user.LastCoinReset.Equal(retrieved.LastCoinReset))
}

func (s *StorageSuite) TestGetUnknownUser() {
	_, err := s.storage.GetUserByAddress(s.ctx, "0xmissing")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUpdateUser() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{Address: "0xabc", Coins: 3}))

	updated, err := s.storage.UpdateUser(s.ctx, "0xabc", func(u *model.User) error {
		u.Coins--
		return nil
	})
	s.Require().NoError(err)
	s.Equal(2, updated.Coins)

	stored, err := s.storage.GetUserByAddress(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(2, stored.Coins)
}

func (s *StorageSuite) TestUpdateUserErrorLeavesStateUnchanged() {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{Address: "0xabc", Coins: 3}))

	_, err := s.storage.UpdateUser(s.ctx, "0xabc", func(u *model.User) error {
		u.Coins = 0
		return model.ErrNoCoins
	})
	s.ErrorIs(err, model.ErrNoCoins)

	stored, err := s.storage.GetUserByAddress(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(3, stored.Coins)
}

func (s *StorageSuite) TestUpdateUserUnknown() {
	_, err := s.storage.UpdateUser(s.ctx, "0xmissing", func(u *model.User) error { return nil })
	s.ErrorIs(err, model.ErrUserNotFound)
}

// High score tests

func (s *StorageSuite) TestTopHighScoresOrderedDescending() {
	for _, sc := range []int{20, 50, 10} {
		s.Require().NoError(s.storage.AddHighScore(s.ctx, &model.HighScore{
			Address: "0xabc",
			Name:    "alice",
			Score:   sc,
		}))
	}

	top, err := s.storage.TopHighScores(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(50, top[0].Score)
	s.Equal(20, top[1].Score)
}

func (s *StorageSuite) TestTopHighScoresEmpty() {
	top, err := s.storage.TopHighScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(top)
}

// Config tests

func (s *StorageSuite) TestConfigRoundTrip() {
	_, err := s.storage.GetConfigValue(s.ctx, "k")
	s.ErrorIs(err, model.ErrConfigNotFound)

	s.Require().NoError(s.storage.SetConfigValue(s.ctx, "k", "v"))

	value, err := s.storage.GetConfigValue(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("v", value)
}

// Archive tests

func (s *StorageSuite) TestArchiveAndClearScores() {
	s.Require().NoError(s.storage.AddHighScore(s.ctx, &model.HighScore{Name: "alice", Score: 42}))

	resetAt := time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC)
	archive := &model.LeaderboardArchive{
		WeekNumber: 23,
		Year:       2025,
		Scores:     []model.ArchivedScore{{Name: "alice", Score: 42}},
		CreatedAt:  resetAt,
	}

	err := s.storage.ArchiveAndClearScores(s.ctx, archive, model.ConfigKeyLastLeaderboardReset, resetAt)
	s.Require().NoError(err)

	top, err := s.storage.TopHighScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(top)

	archives, err := s.storage.ListArchives(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(archives, 1)
	s.Equal(23, archives[0].WeekNumber)
	s.Require().Len(archives[0].Scores, 1)
	s.Equal("alice", archives[0].Scores[0].Name)

	value, err := s.storage.GetConfigValue(s.ctx, model.ConfigKeyLastLeaderboardReset)
	s.Require().NoError(err)
	stored, err := time.Parse(time.RFC3339Nano, value)
	s.Require().NoError(err)
	s.True(stored.Equal(resetAt))
}

func (s *StorageSuite) TestListArchivesNewestFirstWithFilters() {
	for _, a := range []*model.LeaderboardArchive{
		{WeekNumber: 1, Year: 2024},
		{WeekNumber: 2, Year: 2024},
		{WeekNumber: 1, Year: 2025},
	} {
		s.Require().NoError(s.storage.ArchiveAndClearScores(s.ctx, a, model.ConfigKeyLastLeaderboardReset, time.Now()))
	}

	archives, err := s.storage.ListArchives(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(archives, 3)
	s.Equal(2025, archives[0].Year)

	year := 2024
	week := 2
	archives, err = s.storage.ListArchives(s.ctx, &year, &week)
	s.Require().NoError(err)
	s.Require().Len(archives, 1)
	s.Equal(2, archives[0].WeekNumber)
}
