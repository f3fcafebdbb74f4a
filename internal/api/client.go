// Package api is the single gateway between the client and the marketplace
// backend. It maps (method, path, body) to an HTTP call, attaches the bearer
// token, and normalizes the {success, data, message, token, user} envelope.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace-client/internal/auth"
	"marketplace-client/internal/logger"
	"marketplace-client/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// TokenSource supplies the bearer token and drops it when the backend
// answers 401.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}

// Envelope is the response shape every endpoint shares.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
	User    json.RawMessage `json:"user,omitempty"`
}

type Config struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
	Transport http.RoundTripper
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
}

func New(cfg Config, tokens TokenSource) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: &logger.Transport{Base: cfg.Transport},
		},
		tokens:  tokens,
		limiter: limiter,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) (*Envelope, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) (*Envelope, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) (*Envelope, error) {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) (*Envelope, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do performs one call. body (when non-nil) is sent as JSON; the envelope's
// data member is decoded into out (when non-nil). There is no retry.
func (c *Client) Do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body, out any,
) (*Envelope, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "api"),
		zap.String("method", method),
		zap.String("path", path),
	)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	timer := metrics.StartTimer()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveRequest(method, path, 0, timer.Duration())
		log.Warn("request failed", zap.Error(err))
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	metrics.ObserveRequest(method, path, resp.StatusCode, timer.Duration())

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.evictToken(ctx)
	}

	env := &Envelope{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, env); err != nil {
			log.Warn("response is not JSON",
				zap.Int("status", resp.StatusCode),
				zap.Error(err),
			)
			if resp.StatusCode < 200 || resp.StatusCode > 299 {
				return nil, &APIError{StatusCode: resp.StatusCode, Message: statusMessage(resp.StatusCode, "")}
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Info("backend returned error",
			zap.Int("status", resp.StatusCode),
			zap.String("message", env.Message),
		)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    statusMessage(resp.StatusCode, env.Message),
		}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			log.Warn("unexpected data shape", zap.Error(err))
			return nil, fmt.Errorf("%w: decode data: %v", ErrInvalidResponse, err)
		}
	}

	return env, nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
) (*http.Request, error) {

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("load token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", auth.BearerHeader(token))
		}
	}

	return req, nil
}

func (c *Client) evictToken(ctx context.Context) {
	if c.tokens == nil {
		return
	}
	metrics.TokenEvicted()
	if err := c.tokens.ClearToken(ctx); err != nil {
		logger.FromCtx(ctx).Error("failed to evict token", zap.Error(err))
	}
}

func statusMessage(status int, message string) string {
	if message != "" {
		return message
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

// Path joins segments into an endpoint path, escaping each dynamic segment.
// Path("orders", id, "approve") -> "/orders/<id>/approve".
func Path(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
