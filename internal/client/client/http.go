package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/moodjournal/internal/client/models"
	"github.com/dmitrijs2005/moodjournal/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
)

// RequestIDHeader carries a fresh UUID on every request.
const RequestIDHeader = "X-Request-ID"

// HTTPClient implements Client over JSON and HTTP.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	jar     *sessionJar
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithLogger sets the logger used for response diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
		}
	}
}

// sessionJar is a cookie jar that can be emptied in one step. The
// http.Client keeps pointing at the same sessionJar while the inner jar is
// replaced.
type sessionJar struct {
	mu    sync.RWMutex
	inner *cookiejar.Jar
}

func newSessionJar() (*sessionJar, error) {
	inner, err := newCookieJar()
	if err != nil {
		return nil, err
	}
	return &sessionJar{inner: inner}, nil
}

func newCookieJar() (*cookiejar.Jar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

func (j *sessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	j.inner.SetCookies(u, cookies)
}

func (j *sessionJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.inner.Cookies(u)
}

// reset drops every cookie regardless of its domain or path.
func (j *sessionJar) reset() error {
	inner, err := newCookieJar()
	if err != nil {
		return err
	}
	j.mu.Lock()
	j.inner = inner
	j.mu.Unlock()
	return nil
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8000/api". timeout bounds every single request; zero
// means no limit beyond the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api base url %q: scheme must be http or https", baseURL)
	}

	jar, err := newSessionJar()
	if err != nil {
		return nil, err
	}

	c := &HTTPClient{
		baseURL: u,
		jar:     jar,
		http:    &http.Client{Jar: jar, Timeout: timeout},
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) endpoint(path string) string {
	return c.baseURL.String() + path
}

// do sends one request and decodes a successful JSON response into out,
// which may be nil. Empty and undecodable success bodies leave out untouched;
// decode failures are logged at debug level.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Message: errorMessage(resp, data), Status: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusNoContent || out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Debug(ctx, "undecodable response body",
			"method", method, "path", path, "status", resp.StatusCode, "error", err)
	}
	return nil
}

// errorMessage picks the message of an error response: the body's message
// field, then its error field, then DefaultErrorMessage. A body that is not
// a JSON value yields the HTTP status text.
func errorMessage(resp *http.Response, data []byte) string {
	var v any
	if err := json.Unmarshal(data, &v); err != nil || v == nil {
		return statusText(resp)
	}
	if obj, ok := v.(map[string]any); ok {
		for _, key := range []string{"message", "error"} {
			if s, ok := obj[key].(string); ok && s != "" {
				return s
			}
		}
	}
	return DefaultErrorMessage
}

func statusText(resp *http.Response) string {
	if text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); text != "" && text != resp.Status {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func (c *HTTPClient) Register(ctx context.Context, creds models.Credentials) error {
	return c.do(ctx, http.MethodPost, "/auth/register", creds, nil)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) error {
	return c.do(ctx, http.MethodPost, "/auth/login", creds, nil)
}

// Logout sends an explicit empty JSON object so the server parses the body
// as JSON.
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", struct{}{}, nil)
}

// meResponse accepts both a bare user object and one wrapped in "user".
type meResponse struct {
	models.User
	Wrapped *models.User `json:"user"`
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var resp meResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Wrapped != nil {
		return resp.Wrapped, nil
	}
	return &resp.User, nil
}

func (c *HTTPClient) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry
	if err := c.do(ctx, http.MethodGet, "/entries", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *HTTPClient) CreateEntry(ctx context.Context, in models.EntryInput) (*models.Entry, error) {
	var e models.Entry
	if err := c.do(ctx, http.MethodPost, "/entries", in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) UpdateEntry(ctx context.Context, id string, in models.EntryInput) (*models.Entry, error) {
	var e models.Entry
	if err := c.do(ctx, http.MethodPut, "/entries/"+url.PathEscape(id), in, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/entries/"+url.PathEscape(id), nil, nil)
}

type vibeCheckRequest struct {
	Note string `json:"note"`
}

type vibeCheckResponse struct {
	AIResponse string `json:"ai_response"`
}

func (c *HTTPClient) VibeCheck(ctx context.Context, note string) (string, error) {
	var resp vibeCheckResponse
	if err := c.do(ctx, http.MethodPost, "/ai/vibe-check", vibeCheckRequest{Note: note}, &resp); err != nil {
		return "", err
	}
	return resp.AIResponse, nil
}

// Ping reports whether the API answers at all. Any HTTP response, including
// 401, counts as reachable.
func (c *HTTPClient) Ping(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil)
	if err == nil || StatusOf(err) != 0 {
		return nil
	}
	return err
}

func (c *HTTPClient) Cookies() []*http.Cookie {
	return c.jar.Cookies(c.baseURL)
}

func (c *HTTPClient) SetCookies(cookies []*http.Cookie) {
	c.jar.SetCookies(c.baseURL, cookies)
}

// ClearCookies forgets every cookie the client holds, including ones scoped
// to a narrower path than the base URL.
func (c *HTTPClient) ClearCookies() {
	if err := c.jar.reset(); err != nil {
		c.log.Warn(context.Background(), "failed to reset cookie jar", "error", err)
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
