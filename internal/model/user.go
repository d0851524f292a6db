package model

import (
	"strings"
	"time"
)

// MaxCoins is the daily play-allowance cap per user.
const MaxCoins = 3

// User represents a wallet-identified account.
// Address is the unique key and is always stored lowercased.
type User struct {
	Address       string
	Username      string // optional display name
	FarcasterFID  int64  // 0 when no Farcaster identity is linked
	FcastUsername string
	Coins         int
	LastCoinReset time.Time // stored in UTC; zero value means never reset
	CreatedAt     time.Time
}

// NormalizeAddress lowercases a wallet address for use as a storage key.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}

// DisplayName returns the best available name for leaderboard display.
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if u.FcastUsername != "" {
		return u.FcastUsername
	}
	return "Anonymous"
}
