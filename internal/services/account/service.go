package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mratw/zombie-defense/internal/dependencies/clock"
	"github.com/mratw/zombie-defense/internal/dependencies/random"
	"github.com/mratw/zombie-defense/internal/model"
	"github.com/mratw/zombie-defense/internal/storage"
)

// Errors
var (
	ErrAddressRequired = errors.New("wallet address is required")
)

// Service manages wallet-identified user accounts
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new account service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// UpsertByWallet creates a user for the given wallet address or updates
// the existing one. New users start with a full coin balance. Optional
// fields on an existing user are only overwritten by non-empty input.
func (s *Service) UpsertByWallet(ctx context.Context, address, username string) (*model.User, error) {
	return s.upsert(ctx, address, username, 0, "")
}

// LinkFarcaster attaches a Farcaster identity to the user for the given
// wallet address, creating the user if needed.
func (s *Service) LinkFarcaster(ctx context.Context, address string, fid int64, fcastUsername string) (*model.User, error) {
	return s.upsert(ctx, address, "", fid, fcastUsername)
}

func (s *Service) upsert(ctx context.Context, address, username string, fid int64, fcastUsername string) (*model.User, error) {
	if address == "" {
		return nil, ErrAddressRequired
	}
	address = model.NormalizeAddress(address)

	existing, err := s.storage.GetUserByAddress(ctx, address)
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	now := s.clock.Now()

	if existing == nil {
		user := &model.User{
			Address:       address,
			Username:      username,
			FarcasterFID:  fid,
			FcastUsername: fcastUsername,
			Coins:         model.MaxCoins,
			LastCoinReset: now,
			CreatedAt:     now,
		}
		if err := s.storage.SaveUser(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("user created",
			slog.String("address", address),
			slog.Bool("farcaster", fid != 0),
		)
		return user, nil
	}

	if username != "" {
		existing.Username = username
	}
	if fid != 0 {
		existing.FarcasterFID = fid
	}
	if fcastUsername != "" {
		existing.FcastUsername = fcastUsername
	}
	if err := s.storage.SaveUser(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// GetByAddress retrieves a user by wallet address (case-insensitive)
func (s *Service) GetByAddress(ctx context.Context, address string) (*model.User, error) {
	if address == "" {
		return nil, ErrAddressRequired
	}
	return s.storage.GetUserByAddress(ctx, model.NormalizeAddress(address))
}

// CreateAnonymous creates a throwaway account for a guest score
// submission. The synthetic address never collides with a wallet.
func (s *Service) CreateAnonymous(ctx context.Context, name string) (*model.User, error) {
	address := "anon_" + s.random.String(12, "abcdefghijklmnopqrstuvwxyz0123456789")
	now := s.clock.Now()
	user := &model.User{
		Address:       address,
		Username:      name,
		Coins:         model.MaxCoins,
		LastCoinReset: now,
		CreatedAt:     now,
	}
	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
