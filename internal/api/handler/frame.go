package handler

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/mratw/zombie-defense/internal/api/apierr"
	"github.com/mratw/zombie-defense/internal/api/response"
)

// FrameConfig holds the values baked into the Farcaster frame document
type FrameConfig struct {
	BaseURL     string
	AppName     string
	ButtonTitle string
}

// DefaultFrameConfig returns sensible defaults for the frame document
func DefaultFrameConfig() FrameConfig {
	return FrameConfig{
		BaseURL:     "http://localhost:8080",
		AppName:     "Zombie Defense",
		ButtonTitle: "Play Now",
	}
}

// frameEmbed is the fc:frame meta tag payload
type frameEmbed struct {
	Version  string      `json:"version"`
	ImageURL string      `json:"imageUrl"`
	Button   frameButton `json:"button"`
}

type frameButton struct {
	Title  string      `json:"title"`
	Action frameAction `json:"action"`
}

type frameAction struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Splash  string `json:"splashImageUrl"`
	BgColor string `json:"splashBackgroundColor"`
}

var frameTemplate = template.Must(template.New("frame").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.AppName}}</title>
<meta property="og:title" content="{{.AppName}}">
<meta property="og:image" content="{{.ImageURL}}">
<meta name="fc:frame" content="{{.Embed}}">
</head>
<body>
<h1>{{.AppName}}</h1>
<p><a href="{{.PlayURL}}">{{.ButtonTitle}}</a></p>
</body>
</html>
`))

// FrameHandler serves the Farcaster frame metadata document
type FrameHandler struct {
	config FrameConfig
}

// NewFrameHandler creates a new FrameHandler
func NewFrameHandler(config FrameConfig) *FrameHandler {
	return &FrameHandler{config: config}
}

// Get handles GET /frame
func (h *FrameHandler) Get(w http.ResponseWriter, r *http.Request) {
	imageURL := h.config.BaseURL + "/og-image.png"
	embed := frameEmbed{
		Version:  "next",
		ImageURL: imageURL,
		Button: frameButton{
			Title: h.config.ButtonTitle,
			Action: frameAction{
				Type:    "launch_frame",
				Name:    h.config.AppName,
				URL:     h.config.BaseURL,
				Splash:  h.config.BaseURL + "/splash.png",
				BgColor: "#1a1a1a",
			},
		},
	}
	embedJSON, err := json.Marshal(embed)
	if err != nil {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = frameTemplate.Execute(w, map[string]any{
		"AppName":     h.config.AppName,
		"ImageURL":    imageURL,
		"Embed":       string(embedJSON),
		"PlayURL":     h.config.BaseURL,
		"ButtonTitle": h.config.ButtonTitle,
	})
}

// frameManifest is the /.well-known/farcaster.json payload. The
// account-association block is custody-signed material minted by the
// wallet provider, so it is not generated here.
type frameManifest struct {
	Frame manifestFrame `json:"frame"`
}

type manifestFrame struct {
	Version   string `json:"version"`
	Name      string `json:"name"`
	IconURL   string `json:"iconUrl"`
	HomeURL   string `json:"homeUrl"`
	ImageURL  string `json:"imageUrl"`
	SplashURL string `json:"splashImageUrl"`
	BgColor   string `json:"splashBackgroundColor"`
}

// Manifest handles GET /.well-known/farcaster.json
func (h *FrameHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, frameManifest{
		Frame: manifestFrame{
			Version:   "next",
			Name:      h.config.AppName,
			IconURL:   h.config.BaseURL + "/icon.png",
			HomeURL:   h.config.BaseURL,
			ImageURL:  h.config.BaseURL + "/og-image.png",
			SplashURL: h.config.BaseURL + "/splash.png",
			BgColor:   "#1a1a1a",
		},
	})
}
