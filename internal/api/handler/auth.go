package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mratw/zombie-defense/internal/api/apierr"
	"github.com/mratw/zombie-defense/internal/api/request"
	"github.com/mratw/zombie-defense/internal/api/response"
	"github.com/mratw/zombie-defense/internal/services/account"
)

// AuthHandler handles wallet and Farcaster sign-in
type AuthHandler struct {
	accounts *account.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accounts *account.Service) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Wallet handles POST /auth/wallet. Sign-in is an upsert: unknown
// addresses get a fresh account with a full coin allowance.
func (h *AuthHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	var req request.WalletAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Address == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("address is required"))
		return
	}

	user, err := h.accounts.UpsertByWallet(r.Context(), req.Address, req.Username)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// Farcaster handles POST /auth/farcaster, linking a Farcaster identity
// to the wallet account
func (h *AuthHandler) Farcaster(w http.ResponseWriter, r *http.Request) {
	var req request.FarcasterAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Address == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("address is required"))
		return
	}
	if req.FID <= 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("fid must be positive"))
		return
	}

	user, err := h.accounts.LinkFarcaster(r.Context(), req.Address, req.FID, req.Username)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}
