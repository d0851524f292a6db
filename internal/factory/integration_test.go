package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mratw/zombie-defense/internal/audio"
	"github.com/mratw/zombie-defense/internal/game"
	"github.com/mratw/zombie-defense/internal/model"
	"github.com/mratw/zombie-defense/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) newSession(address string) *game.Session {
	return game.NewSession(800, 600, address,
		s.app.MockRandom,
		s.app.CoinService,
		s.app.LeaderboardService,
		audio.Nop{},
		testutil.NopLogger())
}

// Test: full player journey from wallet sign-in to a submitted score
func (s *IntegrationSuite) TestCompletePlayerFlow() {
	// Step 1: sign in with a wallet
	user, err := s.app.AccountService.UpsertByWallet(s.ctx, "0xPlayer", "slayer")
	s.Require().NoError(err)
	s.Equal(model.MaxCoins, user.Coins)

	// Step 2: start a run, which charges a coin
	sess := s.newSession("0xPlayer")
	s.Require().NoError(sess.Start(s.ctx))

	charged, err := s.app.AccountService.GetByAddress(s.ctx, "0xplayer")
	s.Require().NoError(err)
	s.Equal(model.MaxCoins-1, charged.Coins)

	// Step 3: let the horde win. With no shots fired, zombies walk
	// the field and the run ends after three crossings.
	for sim := time.Duration(0); sim < 5*time.Minute && sess.State() != game.StateGameOver; sim += 100 * time.Millisecond {
		sess.Advance(100 * time.Millisecond)
	}
	s.Require().Equal(game.StateGameOver, sess.State())

	// Step 4: submit the score and see it on the board
	s.Require().NoError(sess.SubmitScore(s.ctx))

	scores, err := s.app.LeaderboardService.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal("slayer", scores[0].Name)
	s.Equal("0xplayer", scores[0].Address)
}

// Test: the daily allowance runs out after three runs and refuses a
// fourth until the next civil day in UTC+7
func (s *IntegrationSuite) TestAllowanceExhaustionAndRefresh() {
	_, err := s.app.AccountService.UpsertByWallet(s.ctx, "0xabc", "")
	s.Require().NoError(err)

	for i := 0; i < model.MaxCoins; i++ {
		_, err := s.app.CoinService.Use(s.ctx, "0xabc")
		s.Require().NoError(err)
	}

	_, err = s.app.CoinService.Use(s.ctx, "0xabc")
	s.Require().ErrorIs(err, model.ErrNoCoins)

	// 17:00 UTC is midnight in UTC+7
	s.app.MockClock.Set(time.Date(2025, 6, 3, 17, 1, 0, 0, time.UTC))
	refreshed, err := s.app.CoinService.Use(s.ctx, "0xabc")
	s.Require().NoError(err)
	s.Equal(model.MaxCoins-1, refreshed.Coins)
}

// Test: the Monday rollover archives and clears the live board
func (s *IntegrationSuite) TestWeeklyRolloverArchivesBoard() {
	_, err := s.app.AccountService.UpsertByWallet(s.ctx, "0xabc", "champ")
	s.Require().NoError(err)
	s.Require().NoError(s.app.LeaderboardService.Submit(s.ctx, "0xabc", 250))

	// First check initializes the reset marker without firing
	fired, err := s.app.LeaderboardService.CheckWeeklyRollover(s.ctx)
	s.Require().NoError(err)
	s.False(fired)

	// Move to Monday 00:01 in UTC+7, more than six civil days on
	s.app.MockClock.Set(time.Date(2025, 6, 15, 17, 1, 0, 0, time.UTC))
	fired, err = s.app.LeaderboardService.CheckWeeklyRollover(s.ctx)
	s.Require().NoError(err)
	s.True(fired)

	scores, err := s.app.LeaderboardService.TopScores(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(scores, "live board is cleared by the rollover")

	archives, err := s.app.LeaderboardService.ListArchives(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.Require().Len(archives, 1)
	s.Require().Len(archives[0].Scores, 1)
	s.Equal("champ", archives[0].Scores[0].Name)
	s.Equal(250, archives[0].Scores[0].Score)
}
