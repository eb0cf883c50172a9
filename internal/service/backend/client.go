package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/chynybekuuludastan/adstudio/internal/models"
)

const (
	// DefaultTimeout bounds a single backend call; video processing is slow
	DefaultTimeout = 10 * time.Minute
	// DefaultRateLimit is the number of outbound calls per second
	DefaultRateLimit = 2

	maxBodyBytes = 10 << 20

	pathAnalyze           = "/analyze/"
	pathProcessLocalVideo = "/process-local-video/"
	pathDownload          = "/download/"
	pathStream            = "/stream/"
	pathHealth            = "/health"
)

// Client talks to the video processing backend
type Client struct {
	baseURL    string
	publicURL  string
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
}

// ClientOption is a function that configures a Client
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for backend calls
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithPublicURL sets the backend address used in links handed to browsers
func WithPublicURL(publicURL string) ClientOption {
	return func(c *Client) {
		if publicURL != "" {
			c.publicURL = strings.TrimRight(publicURL, "/")
		}
	}
}

// WithTimeout sets the per-call timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRateLimit sets the rate limit for backend calls; rps <= 0 disables it
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		burst := int(rps * 2)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a backend client rooted at baseURL
func NewClient(baseURL string, options ...ClientOption) *Client {
	base := strings.TrimRight(baseURL, "/")
	client := &Client{
		baseURL:    base,
		publicURL:  base,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit*2),
		timeout:    DefaultTimeout,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// Analyze sends a YouTube URL to /analyze/
func (c *Client) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if err := ValidateAnalysisRequest(req); err != nil {
		return nil, err
	}
	req.URL = strings.TrimSpace(req.URL)
	return postJSON[models.AnalysisResult](ctx, c, pathAnalyze, req)
}

// ProcessLocalVideo sends a local file path to /process-local-video/
func (c *Client) ProcessLocalVideo(ctx context.Context, req models.LocalVideoRequest) (*models.AdCreativeResult, error) {
	if err := ValidateLocalVideoRequest(req); err != nil {
		return nil, err
	}
	req.FilePath = strings.TrimSpace(req.FilePath)
	return postJSON[models.AdCreativeResult](ctx, c, pathProcessLocalVideo, req)
}

// Health checks that the backend answers its health endpoint
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathHealth, nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: MessageNetwork, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Message: serverMessage(resp.StatusCode)}
	}
	return nil
}

// DownloadURL returns the browser link that downloads a generated clip
func (c *Client) DownloadURL(clipPath string) string {
	return c.clipURL(pathDownload, clipPath)
}

// StreamURL returns the browser link that previews a generated clip
func (c *Client) StreamURL(clipPath string) string {
	return c.clipURL(pathStream, clipPath)
}

func (c *Client) clipURL(endpoint, clipPath string) string {
	if clipPath == "" {
		return ""
	}
	return c.publicURL + endpoint + "?" + url.Values{"path": []string{clipPath}}.Encode()
}

func postJSON[T any](ctx context.Context, c *Client, path string, payload any) (*T, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", path, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &Error{Kind: KindNetwork, Message: MessageNetwork, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: MessageNetwork, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Status: resp.StatusCode, Message: MessageNetwork, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeServerError(resp.StatusCode, data)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &Error{Kind: KindDecode, Status: resp.StatusCode, Message: MessageDecode, Err: errors.New("empty response body")}
	}

	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, &Error{Kind: KindDecode, Status: resp.StatusCode, Message: MessageDecode, Err: err}
	}
	return &out, nil
}

// decodeServerError extracts the "detail" field of an error body. Validation
// failures carry a list of {msg} objects instead of a string.
func decodeServerError(status int, data []byte) *Error {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}

	message := ""
	if err := json.Unmarshal(data, &payload); err == nil && len(payload.Detail) > 0 {
		message = detailMessage(payload.Detail)
	}
	if message == "" {
		message = serverMessage(status)
	}

	return &Error{
		Kind:    KindServer,
		Status:  status,
		Message: message,
		Err:     errors.New(strings.TrimSpace(string(data))),
	}
}

func detailMessage(raw json.RawMessage) string {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return ""
}
