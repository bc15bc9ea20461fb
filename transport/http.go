package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/broady/guildhttp/request"
)

const (
	defaultBaseURL   = "https://discord.com/api/v9"
	defaultUserAgent = "DiscordBot (https://github.com/broady/guildhttp, 0.1)"
)

// Interface compliance check.
var _ Transport = (*HTTP)(nil)

// HTTP sends requests with a net/http client, authenticating with a bot
// token.
type HTTP struct {
	token      string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures an HTTP transport.
type Option func(*HTTP)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(t *HTTP) { t.baseURL = strings.TrimSuffix(url, "/") }
}

// WithHTTPClient sets a custom HTTP client. Timeouts configured on it apply
// to every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(t *HTTP) { t.httpClient = hc }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(t *HTTP) { t.userAgent = ua }
}

// WithLogger sets the logger used for transport diagnostics.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *HTTP) { t.logger = logger }
}

// NewHTTP creates an HTTP transport. A token without a "Bot " or "Bearer "
// prefix is treated as a bot token. An empty token sends unauthenticated
// requests.
func NewHTTP(token string, opts ...Option) *HTTP {
	if token != "" && !strings.HasPrefix(token, "Bot ") && !strings.HasPrefix(token, "Bearer ") {
		token = "Bot " + token
	}
	t := &HTTP{
		token:      token,
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	return t
}

// Send starts the request in the background. Canceling ctx aborts it.
func (t *HTTP) Send(ctx context.Context, req request.Request) *Call {
	return Go(ctx, func(ctx context.Context) (*Response, error) {
		return t.do(ctx, req)
	})
}

func (t *HTTP) do(ctx context.Context, req request.Request) (*Response, error) {
	var body io.Reader
	if b := req.Body(); len(b) > 0 {
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), t.baseURL+"/"+req.PathAndQuery(), body)
	if err != nil {
		return nil, &Error{Type: ErrorTypeProtocol, Message: "invalid request", Cause: err}
	}
	for name, values := range req.Headers() {
		httpReq.Header[name] = values
	}
	if t.token != "" && httpReq.Header.Get("Authorization") == "" {
		httpReq.Header.Set("Authorization", t.token)
	}
	httpReq.Header.Set("User-Agent", t.userAgent)
	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, Classify(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, contextError(ctx.Err())
		}
		return nil, &Error{Type: ErrorTypeProtocol, StatusCode: resp.StatusCode, Message: "reading response body", Cause: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.DebugContext(ctx, "api error response",
			slog.String("method", req.Method()),
			slog.String("path", req.Path()),
			slog.Int("status", resp.StatusCode))
		return nil, parseHTTPError(resp.StatusCode, data)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// apiError is the JSON error body returned by the API.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func parseHTTPError(status int, body []byte) *Error {
	e := &Error{
		Type:       ErrorTypeResponse,
		StatusCode: status,
		Message:    http.StatusText(status),
		Body:       body,
	}
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		e.Code = apiErr.Code
		e.Message = apiErr.Message
	}
	return e
}
