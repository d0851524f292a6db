package request

// WalletAuthRequest is the request body for wallet sign-in
type WalletAuthRequest struct {
	Address  string `json:"address"`
	Username string `json:"username,omitempty"`
}

// FarcasterAuthRequest is the request body for Farcaster sign-in
type FarcasterAuthRequest struct {
	Address  string `json:"address"`
	FID      int64  `json:"fid"`
	Username string `json:"username,omitempty"`
}

// UseCoinRequest is the request body for spending a play coin
type UseCoinRequest struct {
	Address string `json:"address"`
}

// SubmitScoreRequest is the request body for posting a finished run's
// score. Address identifies a wallet account; when it is empty, Name
// labels a one-off anonymous entry instead.
type SubmitScoreRequest struct {
	Address string `json:"address,omitempty"`
	Name    string `json:"name,omitempty"`
	Score   int    `json:"score"`
}
