package response

import (
	"time"

	"github.com/mratw/zombie-defense/internal/model"
)

// User represents an account in API responses
type User struct {
	Address       string    `json:"address"`
	Username      string    `json:"username,omitempty"`
	FarcasterFID  int64     `json:"farcaster_fid,omitempty"`
	FcastUsername string    `json:"fcast_username,omitempty"`
	Coins         int       `json:"coins"`
	LastCoinReset time.Time `json:"last_coin_reset"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		Address:       u.Address,
		Username:      u.Username,
		FarcasterFID:  u.FarcasterFID,
		FcastUsername: u.FcastUsername,
		Coins:         u.Coins,
		LastCoinReset: u.LastCoinReset,
		CreatedAt:     u.CreatedAt,
	}
}

// UseCoinResponse is the response after spending a play coin
type UseCoinResponse struct {
	Success bool `json:"success"`
	Coins   int  `json:"coins"`
}

// HighScoreEntry is one ranked leaderboard entry
type HighScoreEntry struct {
	Rank     int       `json:"rank"`
	Name     string    `json:"name"`
	Score    int       `json:"score"`
	GameDate time.Time `json:"game_date"`
}

// HighScoresResponse is the current leaderboard
type HighScoresResponse struct {
	Scores []HighScoreEntry `json:"scores"`
}

// HighScoresFromModel converts ranked model scores, assigning 1-based
// ranks in the given order
func HighScoresFromModel(scores []*model.HighScore) HighScoresResponse {
	entries := make([]HighScoreEntry, len(scores))
	for i, hs := range scores {
		entries[i] = HighScoreEntry{
			Rank:     i + 1,
			Name:     hs.Name,
			Score:    hs.Score,
			GameDate: hs.GameDate,
		}
	}
	return HighScoresResponse{Scores: entries}
}

// Archive is one weekly leaderboard snapshot
type Archive struct {
	ID         string                `json:"id"`
	WeekNumber int                   `json:"week_number"`
	Year       int                   `json:"year"`
	Scores     []model.ArchivedScore `json:"scores"`
	CreatedAt  time.Time             `json:"created_at"`
}

// ArchiveFromModel converts model.LeaderboardArchive
func ArchiveFromModel(a *model.LeaderboardArchive) Archive {
	return Archive{
		ID:         a.ID,
		WeekNumber: a.WeekNumber,
		Year:       a.Year,
		Scores:     a.Scores,
		CreatedAt:  a.CreatedAt,
	}
}

// ArchivesResponse is a list of weekly snapshots, newest first
type ArchivesResponse struct {
	Archives []Archive `json:"archives"`
}

// SubmitScoreResponse acknowledges a score submission
type SubmitScoreResponse struct {
	Success bool `json:"success"`
}
