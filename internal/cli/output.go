package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case CoinResult:
		o.printCoinResult(v)
	case HighScores:
		o.printHighScores(v)
	case Archives:
		o.printArchives(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	Address       string    `json:"address"`
	Username      string    `json:"username,omitempty"`
	FarcasterFID  int64     `json:"farcaster_fid,omitempty"`
	FcastUsername string    `json:"fcast_username,omitempty"`
	Coins         int       `json:"coins"`
	LastCoinReset time.Time `json:"last_coin_reset"`
	CreatedAt     time.Time `json:"created_at"`
}

// CoinResult response type
type CoinResult struct {
	Success bool `json:"success"`
	Coins   int  `json:"coins"`
}

// HighScoreEntry response type
type HighScoreEntry struct {
	Rank     int       `json:"rank"`
	Name     string    `json:"name"`
	Score    int       `json:"score"`
	GameDate time.Time `json:"game_date"`
}

// HighScores response type
type HighScores struct {
	Scores []HighScoreEntry `json:"scores"`
}

// ArchivedScore response type
type ArchivedScore struct {
	Name  string    `json:"name"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// Archive response type
type Archive struct {
	ID         string          `json:"id"`
	WeekNumber int             `json:"week_number"`
	Year       int             `json:"year"`
	Scores     []ArchivedScore `json:"scores"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Archives response type
type Archives struct {
	Archives []Archive `json:"archives"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	name := u.Username
	if name == "" {
		name = u.FcastUsername
	}
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Printf("User: %s (%s)\n", name, u.Address)
	if u.FarcasterFID != 0 {
		fmt.Printf("Farcaster: %s (fid %d)\n", u.FcastUsername, u.FarcasterFID)
	}
	fmt.Printf("Coins: %d\n", u.Coins)
	if !u.LastCoinReset.IsZero() {
		fmt.Printf("Last Reset: %s\n", u.LastCoinReset.Format(time.RFC3339))
	}
}

func (o *Output) printCoinResult(c CoinResult) {
	fmt.Printf("Coin spent. Remaining today: %d\n", c.Coins)
}

func (o *Output) printHighScores(h HighScores) {
	if len(h.Scores) == 0 {
		fmt.Println("No scores yet")
		return
	}
	fmt.Printf("Leaderboard (%d):\n", len(h.Scores))
	for _, e := range h.Scores {
		fmt.Printf("  %2d. %-20s %6d  (%s)\n", e.Rank, e.Name, e.Score, e.GameDate.Format("2006-01-02"))
	}
}

func (o *Output) printArchives(a Archives) {
	if len(a.Archives) == 0 {
		fmt.Println("No archives yet")
		return
	}
	for _, arch := range a.Archives {
		fmt.Printf("Week %d, %d (%d entries):\n", arch.WeekNumber, arch.Year, len(arch.Scores))
		for i, e := range arch.Scores {
			fmt.Printf("  %2d. %-20s %6d\n", i+1, e.Name, e.Score)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
