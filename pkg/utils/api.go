package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// NetworkError reports a request that failed in transport or came back with
// a non-success status.
type NetworkError struct {
	Op     string
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d", e.Op, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type API struct {
	client  *http.Client
	baseURL string
	limiter *rate.Limiter
	logger  *zap.Logger
}

type Option func(*API)

func WithHTTPClient(c *http.Client) Option {
	return func(a *API) { a.client = c }
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(a *API) {
		if d > 0 {
			a.client = &http.Client{Timeout: d, Transport: a.client.Transport}
		}
	}
}

func WithRateLimit(perSecond float64, burst int) Option {
	return func(a *API) {
		if perSecond > 0 {
			a.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *API) { a.logger = l }
}

func NewAPI(baseURL string, opts ...Option) *API {
	a := &API{
		client:  http.DefaultClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Inf, 1),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) BaseURL() string {
	return a.baseURL
}

// Get issues a GET for baseURL+path and decodes the JSON body into v.
func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	body, err := a.open(ctx, a.baseURL+path, "application/json")
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return &NetworkError{Op: "decode", URL: a.baseURL + path, Err: err}
	}
	return nil
}

// Fetch opens an absolute URL, typically a media file. The caller closes
// the body.
func (a *API) Fetch(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	return a.open(ctx, rawURL, "*/*")
}

func (a *API) open(ctx context.Context, rawURL, accept string) (io.ReadCloser, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, &NetworkError{Op: "GET", URL: rawURL, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &NetworkError{Op: "GET", URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", accept)

	start := time.Now()
	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Debug("request failed", zap.String("url", rawURL), zap.Error(err))
		return nil, &NetworkError{Op: "GET", URL: rawURL, Err: err}
	}
	a.logger.Debug("request done",
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &NetworkError{Op: "GET", URL: rawURL, Status: resp.StatusCode}
	}
	return resp.Body, nil
}
