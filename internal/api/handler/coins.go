package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mratw/zombie-defense/internal/api/apierr"
	"github.com/mratw/zombie-defense/internal/api/request"
	"github.com/mratw/zombie-defense/internal/api/response"
	"github.com/mratw/zombie-defense/internal/services/coins"
)

// CoinHandler serves the daily play-allowance endpoint
type CoinHandler struct {
	coins *coins.Service
}

// NewCoinHandler creates a new CoinHandler
func NewCoinHandler(coins *coins.Service) *CoinHandler {
	return &CoinHandler{coins: coins}
}

// Use handles POST /coins/use. The allowance refreshes lazily at the
// first use of a new civil day, so a stale balance never blocks a
// legitimate play.
func (h *CoinHandler) Use(w http.ResponseWriter, r *http.Request) {
	var req request.UseCoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Address == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("address is required"))
		return
	}

	user, err := h.coins.Use(r.Context(), req.Address)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UseCoinResponse{
		Success: true,
		Coins:   user.Coins,
	})
}
