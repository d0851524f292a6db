package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Coin errors
	ErrNoCoins = errors.New("no coins available")

	// Config errors
	ErrConfigNotFound = errors.New("config key not found")

	// Storage errors
	ErrUpdateConflict = errors.New("concurrent update conflict")
)
