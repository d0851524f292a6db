package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mratw/zombie-defense/internal/audio"
	"github.com/mratw/zombie-defense/internal/dependencies/random"
	"github.com/mratw/zombie-defense/internal/model"
)

// State is the session lifecycle phase
type State int

const (
	// StateIdle is the pre-game phase, before the first start
	StateIdle State = iota
	// StateActive means the simulation is running
	StateActive
	// StateGameOver means the run ended; the score may be submitted
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CoinGate charges a play coin for an account. Starting a run consumes
// a coin atomically; model.ErrNoCoins means the account is out for the
// civil day.
type CoinGate interface {
	Use(ctx context.Context, address string) (*model.User, error)
}

// Submitter records a finished run's score
type Submitter interface {
	Submit(ctx context.Context, address string, score int) error
}

// Session wraps an Engine with the meta-game: lives, score, the coin
// charge on start, the delayed game-over transition and the one-shot
// score submission. A session with an empty address is a guest run:
// no coin charge, no submission identity beyond the anonymous name.
type Session struct {
	mu sync.Mutex

	engine  *Engine
	state   State
	address string

	score     int
	lives     int
	highScore int

	gameOverPending bool
	gameOverIn      time.Duration
	submitted       bool

	coins     CoinGate
	submitter Submitter
	player    audio.Player
	logger    *slog.Logger
}

// NewSession builds a session and its engine. The player's wallet
// address may be empty for a guest run.
func NewSession(
	width, height float64,
	address string,
	rnd random.Random,
	coins CoinGate,
	submitter Submitter,
	player audio.Player,
	logger *slog.Logger,
) *Session {
	s := &Session{
		state:     StateIdle,
		address:   model.NormalizeAddress(address),
		coins:     coins,
		submitter: submitter,
		player:    player,
		logger:    logger,
	}
	s.engine = NewEngine(width, height, rnd, Callbacks{
		OnScoreDelta: s.addScore,
		OnLifeLost:   s.loseLife,
		OnShot:       player.PlayShot,
		OnHit:        player.PlayHit,
	})
	return s
}

// Engine exposes the underlying engine for rendering and input
func (s *Session) Engine() *Engine { return s.engine }

// State returns the current lifecycle phase
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Score returns the current run's score
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Lives returns the remaining lives
func (s *Session) Lives() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lives
}

// HighScore returns the best score across this session's runs
func (s *Session) HighScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highScore
}

// Start begins a run. For wallet sessions a coin is charged first and
// the start fails with model.ErrNoCoins when the daily allowance is
// spent; guest runs start unconditionally. Start restarts from
// game-over too, charging a fresh coin each time.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateActive {
		return nil
	}
	if s.address != "" {
		user, err := s.coins.Use(ctx, s.address)
		if err != nil {
			return err
		}
		s.logger.InfoContext(ctx, "coin charged for run",
			slog.String("address", s.address),
			slog.Int("coins_left", user.Coins))
	}

	s.engine.Reset()
	s.state = StateActive
	s.score = 0
	s.lives = StartingLives
	s.gameOverPending = false
	s.submitted = false
	s.player.StartMusic()
	return nil
}

// Advance steps the session by dt of simulated time
func (s *Session) Advance(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateActive {
		return
	}
	s.engine.Advance(dt)
	if s.gameOverPending {
		s.gameOverIn -= dt
		if s.gameOverIn <= 0 {
			s.finish()
		}
	}
}

// finish moves to game-over. Caller holds the lock.
func (s *Session) finish() {
	s.state = StateGameOver
	s.gameOverPending = false
	s.engine.Pause()
	s.player.StopMusic()
	if s.score > s.highScore {
		s.highScore = s.score
	}
	s.logger.Info("run finished",
		slog.String("address", s.address),
		slog.Int("score", s.score))
}

// addScore is the engine score callback. It runs inside Advance, so
// the lock is already held.
func (s *Session) addScore(delta int) {
	s.score += delta
}

// loseLife is the engine callback for a zombie crossing the bottom.
// Runs inside Advance with the lock held. The last life arms the
// delayed game-over rather than ending the run immediately, so the
// final frames still play out.
func (s *Session) loseLife() {
	if s.lives <= 0 {
		return
	}
	s.lives--
	if s.lives == 0 && !s.gameOverPending {
		s.gameOverPending = true
		s.gameOverIn = GameOverDelay
	}
}

// AimAt forwards a pointer move to the engine while a run is active
func (s *Session) AimAt(x, y float64) {
	if s.State() == StateActive {
		s.engine.AimAt(x, y)
	}
}

// Fire forwards a shot to the engine while a run is active
func (s *Session) Fire(x, y float64) {
	if s.State() == StateActive {
		s.engine.Fire(x, y)
	}
}

// Pause suspends an active run
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateActive {
		s.engine.Pause()
		s.player.StopMusic()
	}
}

// Resume continues a paused run
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateActive && s.engine.Paused() {
		s.engine.Resume()
		s.player.StartMusic()
	}
}

// SetMuted toggles sound for the session
func (s *Session) SetMuted(muted bool) {
	s.player.SetMuted(muted)
}

// SubmitScore records the finished run on the leaderboard. It only
// works in the game-over phase and submits at most once per run;
// repeat calls are a no-op so a retrying client cannot double-post.
func (s *Session) SubmitScore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateGameOver || s.submitted {
		return nil
	}
	if err := s.submitter.Submit(ctx, s.address, s.score); err != nil {
		return err
	}
	s.submitted = true
	return nil
}
