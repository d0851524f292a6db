package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mratw/zombie-defense/internal/api/apierr"
	"github.com/mratw/zombie-defense/internal/api/request"
	"github.com/mratw/zombie-defense/internal/api/response"
	"github.com/mratw/zombie-defense/internal/services/account"
	"github.com/mratw/zombie-defense/internal/services/leaderboard"
)

const defaultTopLimit = 10

// HighScoreHandler serves the leaderboard endpoints
type HighScoreHandler struct {
	leaderboard *leaderboard.Service
	accounts    *account.Service
}

// NewHighScoreHandler creates a new HighScoreHandler
func NewHighScoreHandler(leaderboard *leaderboard.Service, accounts *account.Service) *HighScoreHandler {
	return &HighScoreHandler{leaderboard: leaderboard, accounts: accounts}
}

// Top handles GET /highscores. Reads piggyback the weekly rollover
// check, so the board rolls over lazily on the first Monday read.
func (h *HighScoreHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("limit must be an integer"))
			return
		}
		limit = parsed
	}

	scores, err := h.leaderboard.TopScores(r.Context(), limit)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HighScoresFromModel(scores))
}

// Submit handles POST /highscores. A request without an address is an
// anonymous entry: a throwaway account is created so the record still
// has an owner.
func (h *HighScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Score < 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("score must not be negative"))
		return
	}

	address := req.Address
	if address == "" {
		user, err := h.accounts.CreateAnonymous(r.Context(), req.Name)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		address = user.Address
	}

	if err := h.leaderboard.Submit(r.Context(), address, req.Score); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SubmitScoreResponse{Success: true})
}

// Archives handles GET /highscores/archives with optional year and
// week filters
func (h *HighScoreHandler) Archives(w http.ResponseWriter, r *http.Request) {
	var year, week *int
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("year must be an integer"))
			return
		}
		year = &parsed
	}
	if raw := r.URL.Query().Get("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apierr.WriteError(w, apierr.NewInvalidRequestError("week must be an integer"))
			return
		}
		week = &parsed
	}

	archives, err := h.leaderboard.ListArchives(r.Context(), year, week)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	out := response.ArchivesResponse{Archives: make([]response.Archive, len(archives))}
	for i, a := range archives {
		out.Archives[i] = response.ArchiveFromModel(a)
	}
	response.JSON(w, http.StatusOK, out)
}
