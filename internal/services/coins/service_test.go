package coins

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mratw/zombie-defense/internal/dependencies/mocks"
	"github.com/mratw/zombie-defense/internal/model"
	"github.com/mratw/zombie-defense/internal/storage/memory"
	"github.com/mratw/zombie-defense/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	// 12:00 UTC = 19:00 WIB
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) saveUser(coins int, lastReset time.Time) {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{
		Address:       "0xabc",
		Coins:         coins,
		LastCoinReset: lastReset,
	}))
}

func (s *ServiceSuite) TestRefreshFirstTime() {
	s.saveUser(0, time.Time{})

	user, err := s.service.Refresh(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(model.MaxCoins, user.Coins)
	s.True(user.LastCoinReset.Equal(s.clock.CurrentTime))
}

func (s *ServiceSuite) TestRefreshIdempotentWithinCivilDay() {
	s.saveUser(0, time.Time{})

	first, err := s.service.Refresh(s.ctx, "0xabc")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)
	first.Coins = 1
	s.Require().NoError(s.storage.SaveUser(s.ctx, first))

	second, err := s.service.Refresh(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(1, second.Coins)
	s.True(second.LastCoinReset.Equal(first.LastCoinReset))
}

func (s *ServiceSuite) TestRefreshAcrossCivilDayBoundary() {
	// Last reset 23:59 WIB June 1 = 16:59 UTC June 1
	lastReset := time.Date(2025, 6, 1, 16, 59, 0, 0, time.UTC)
	s.saveUser(0, lastReset)

	// Now 00:01 WIB June 2 = 17:01 UTC June 1; under an hour elapsed
	s.clock.Set(time.Date(2025, 6, 1, 17, 1, 0, 0, time.UTC))

	user, err := s.service.Refresh(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(model.MaxCoins, user.Coins)
}

func (s *ServiceSuite) TestRefreshNormalizesAddress() {
	s.saveUser(0, time.Time{})

	user, err := s.service.Refresh(s.ctx, "0xABC")
	s.Require().NoError(err)
	s.Equal(model.MaxCoins, user.Coins)
}

func (s *ServiceSuite) TestUseDecrements() {
	s.saveUser(3, s.clock.CurrentTime)

	user, err := s.service.Use(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(2, user.Coins)
}

func (s *ServiceSuite) TestUseRefreshesFirst() {
	// Balance exhausted yesterday; a new civil day grants a fresh 3
	// before consuming.
	s.saveUser(0, time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))

	user, err := s.service.Use(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(2, user.Coins)
}

func (s *ServiceSuite) TestUseFailsWhenExhausted() {
	s.saveUser(0, s.clock.CurrentTime)

	_, err := s.service.Use(s.ctx, "0xabc")
	s.ErrorIs(err, model.ErrNoCoins)

	stored, err := s.storage.GetUserByAddress(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(0, stored.Coins)
}

func (s *ServiceSuite) TestUseUnknownUser() {
	_, err := s.service.Use(s.ctx, "0xmissing")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestBalanceNeverExceedsCap() {
	s.saveUser(3, time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC))

	user, err := s.service.Refresh(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(model.MaxCoins, user.Coins)
}
