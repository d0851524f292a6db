package model

import "time"

// HighScore is one completed-game score record.
// Records are append-only within a week and bulk-cleared by the
// weekly rollover.
type HighScore struct {
	ID       string
	Address  string // owning user, lowercased
	Name     string // display name at submission time
	Score    int
	GameDate time.Time
}

// ArchivedScore is one ranked entry inside a leaderboard archive.
type ArchivedScore struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// LeaderboardArchive is an immutable weekly snapshot of the top scores,
// keyed by ISO week number and year.
type LeaderboardArchive struct {
	ID         string
	WeekNumber int
	Year       int
	Scores     []ArchivedScore
	CreatedAt  time.Time
}

// ConfigKeyLastLeaderboardReset is the system config key holding the
// timestamp of the last weekly rollover, as RFC 3339.
const ConfigKeyLastLeaderboardReset = "lastLeaderboardReset"
