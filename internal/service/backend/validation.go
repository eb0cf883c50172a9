package backend

import (
	"net/url"
	"strings"

	"github.com/chynybekuuludastan/adstudio/internal/models"
)

var youtubeHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
	"youtu.be":        true,
}

// ValidateAnalysisRequest checks a YouTube URL before it is sent to /analyze/
func ValidateAnalysisRequest(req models.AnalysisRequest) error {
	raw := strings.TrimSpace(req.URL)
	if raw == "" {
		return validationError("Please enter a YouTube URL")
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return validationError("Please enter a valid URL starting with http:// or https://")
	}

	if !youtubeHosts[strings.ToLower(u.Hostname())] {
		return validationError("Invalid YouTube URL provided")
	}

	return nil
}

// ValidateLocalVideoRequest checks a file path before it is sent to /process-local-video/
func ValidateLocalVideoRequest(req models.LocalVideoRequest) error {
	if strings.TrimSpace(req.FilePath) == "" {
		return validationError("Please enter the path of a video file")
	}
	return nil
}
