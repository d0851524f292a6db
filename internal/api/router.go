package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mratw/zombie-defense/internal/api/handler"
	"github.com/mratw/zombie-defense/internal/api/middleware"
	"github.com/mratw/zombie-defense/internal/services/account"
	"github.com/mratw/zombie-defense/internal/services/coins"
	"github.com/mratw/zombie-defense/internal/services/leaderboard"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AccountService     *account.Service
	CoinService        *coins.Service
	LeaderboardService *leaderboard.Service
	Frame              handler.FrameConfig
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AccountService)
	userHandler := handler.NewUserHandler(cfg.AccountService)
	coinHandler := handler.NewCoinHandler(cfg.CoinService)
	highScoreHandler := handler.NewHighScoreHandler(cfg.LeaderboardService, cfg.AccountService)
	frameHandler := handler.NewFrameHandler(cfg.Frame)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes: sign-in is an upsert keyed on the wallet address
	api.HandleFunc("/auth/wallet", authHandler.Wallet).Methods(http.MethodPost)
	api.HandleFunc("/auth/farcaster", authHandler.Farcaster).Methods(http.MethodPost)

	// Account routes
	api.HandleFunc("/users/{address}", userHandler.Get).Methods(http.MethodGet)

	// Coin allowance
	api.HandleFunc("/coins/use", coinHandler.Use).Methods(http.MethodPost)

	// Leaderboard routes
	api.HandleFunc("/highscores", highScoreHandler.Top).Methods(http.MethodGet)
	api.HandleFunc("/highscores", highScoreHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/highscores/archives", highScoreHandler.Archives).Methods(http.MethodGet)

	// Farcaster frame document
	api.HandleFunc("/frame", frameHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Farcaster manifest lives at the well-known root path
	r.HandleFunc("/.well-known/farcaster.json", frameHandler.Manifest).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
