package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mratw/zombie-defense/internal/api/apierr"
	"github.com/mratw/zombie-defense/internal/api/response"
	"github.com/mratw/zombie-defense/internal/services/account"
)

// UserHandler serves account lookups
type UserHandler struct {
	accounts *account.Service
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(accounts *account.Service) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// Get handles GET /users/{address}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	if address == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("address is required"))
		return
	}

	user, err := h.accounts.GetByAddress(r.Context(), address)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}
