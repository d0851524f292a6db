package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mratw/zombie-defense/internal/api"
	"github.com/mratw/zombie-defense/internal/api/handler"
	"github.com/mratw/zombie-defense/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath  string
	serverURL   string
	addressFile string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "zdefense-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/zdefense")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp address file
	addressFile := filepath.Join(t.TempDir(), "address")

	return &cliRunner{
		binaryPath:  binaryPath,
		serverURL:   serverURL,
		addressFile: addressFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--address-file", r.addressFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AccountService:     app.AccountService,
		CoinService:        app.CoinService,
		LeaderboardService: app.LeaderboardService,
		Frame:              handler.DefaultFrameConfig(),
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type userResponse struct {
	Address       string `json:"address"`
	Username      string `json:"username"`
	FarcasterFID  int64  `json:"farcaster_fid"`
	FcastUsername string `json:"fcast_username"`
	Coins         int    `json:"coins"`
}

type coinResponse struct {
	Success bool `json:"success"`
	Coins   int  `json:"coins"`
}

type highScoresResponse struct {
	Scores []struct {
		Rank  int    `json:"rank"`
		Name  string `json:"name"`
		Score int    `json:"score"`
	} `json:"scores"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_AuthAndUserCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Sign in with a wallet
	output, err := cli.run("auth", "wallet", "0xE2ETester", "--username", "Alice")
	require.NoError(t, err, "output: %s", output)

	var user userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &user))
	assert.Equal(t, "0xe2etester", user.Address)
	assert.Equal(t, "Alice", user.Username)
	assert.Equal(t, 3, user.Coins)

	// The address is saved, so user get needs no argument
	output, err = cli.run("user", "get")
	require.NoError(t, err, "output: %s", output)

	var fetched userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Equal(t, user.Address, fetched.Address)

	// Link a Farcaster identity
	output, err = cli.run("auth", "farcaster", "0xE2ETester", "--fid", "777", "--username", "alice.eth")
	require.NoError(t, err, "output: %s", output)

	var linked userResponse
	require.NoError(t, json.Unmarshal([]byte(output), &linked))
	assert.Equal(t, int64(777), linked.FarcasterFID)
	assert.Equal(t, "alice.eth", linked.FcastUsername)
}

func TestCLI_CoinCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "wallet", "0xCoins")
	require.NoError(t, err, "output: %s", output)

	// Spend the full allowance
	for want := 2; want >= 0; want-- {
		output, err = cli.run("coins", "use")
		require.NoError(t, err, "output: %s", output)

		var resp coinResponse
		require.NoError(t, json.Unmarshal([]byte(output), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, want, resp.Coins)
	}

	// A fourth spend fails
	output, err = cli.run("coins", "use")
	require.Error(t, err)
	assert.Contains(t, output, "NO_COINS")
}

func TestCLI_LeaderboardCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "wallet", "0xBoard", "--username", "Bob")
	require.NoError(t, err, "output: %s", output)

	// Submit for the signed-in account
	output, err = cli.run("leaderboard", "submit", "150")
	require.NoError(t, err, "output: %s", output)

	// Submit anonymously
	output, err = cli.run("leaderboard", "submit", "90", "--name", "Ghost")
	require.NoError(t, err, "output: %s", output)

	// The board ranks both entries
	output, err = cli.run("leaderboard", "top", "--limit", "10")
	require.NoError(t, err, "output: %s", output)

	var board highScoresResponse
	require.NoError(t, json.Unmarshal([]byte(output), &board))
	require.Len(t, board.Scores, 2)
	assert.Equal(t, "Bob", board.Scores[0].Name)
	assert.Equal(t, 150, board.Scores[0].Score)
	assert.Equal(t, "Ghost", board.Scores[1].Name)

	// No rollover has happened, so there are no archives
	output, err = cli.run("leaderboard", "archives")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "archives")
}
