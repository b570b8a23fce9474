// Package scrapapi is the sole egress point for ScrapDash backend calls.
// It attaches the bearer credential, performs the one-shot refresh-and-retry
// on 401, and maps every failure to a typed error, so resource gateways and
// their callers never handle tokens directly.
package scrapapi

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

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	pkgerrors "github.com/scrapyardhq/scrapdash/pkg/errors"
	"github.com/scrapyardhq/scrapdash/pkg/logger"
	"github.com/scrapyardhq/scrapdash/pkg/session"
)

const (
	contentTypeJSON    = "application/json"
	headerIdempotency  = "Idempotency-Key"
	defaultUserAgent   = "scrapdash-go"
	defaultTimeout     = 30 * time.Second
	defaultMaxUpload   = 10 << 20
	errorBodyReadLimit = 64 << 10
)

// Client talks to the ScrapDash REST backend.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	sessions       session.Store
	logg           *logger.Logger
	logoutOn403    bool
	refreshLeeway  time.Duration
	maxUploadBytes int64

	refreshGroup singleflight.Group

	Auth  *AuthService
	Boxes *BoxService
	Parts *PartService
	Sales *SaleService
	Bids  *BidService
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger overrides the default (warn-level) logger.
func WithLogger(logg *logger.Logger) Option {
	return func(c *Client) {
		if logg != nil {
			c.logg = logg
		}
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

// WithLogoutOn403 clears the session when the backend answers 403. Off by
// default: a 403 means the token is valid but the role is insufficient.
func WithLogoutOn403(enabled bool) Option {
	return func(c *Client) {
		c.logoutOn403 = enabled
	}
}

// WithRefreshLeeway refreshes proactively when the access token expires
// within the given window. Zero disables proactive refresh.
func WithRefreshLeeway(leeway time.Duration) Option {
	return func(c *Client) {
		c.refreshLeeway = leeway
	}
}

// WithMaxUploadBytes overrides the photo upload size cap.
func WithMaxUploadBytes(limit int64) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxUploadBytes = limit
		}
	}
}

// New builds a client against the given base endpoint, e.g.
// "https://yard.example.com/api/v1".
func New(baseURL string, sessions session.Store, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}

	client := &Client{
		httpClient:     &http.Client{Timeout: defaultTimeout},
		baseURL:        trimmed,
		userAgent:      defaultUserAgent,
		sessions:       sessions,
		logg:           logger.New(logger.Options{ServiceName: "scrapapi", Level: zerolog.WarnLevel}),
		maxUploadBytes: defaultMaxUpload,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	client.Auth = &AuthService{client: client}
	client.Boxes = &BoxService{client: client}
	client.Parts = &PartService{client: client}
	client.Sales = &SaleService{client: client}
	client.Bids = &BidService{client: client}
	return client, nil
}

// Sessions exposes the backing store, e.g. for the authorization policy.
func (c *Client) Sessions() session.Store {
	return c.sessions
}

// call describes one logical request. Exactly one refresh attempt is made
// per call, never more.
type call struct {
	method      string
	path        string
	query       url.Values
	contentType string
	payload     []byte
	out         any
	// skipRefresh disables the 401 refresh-and-retry; used by login, where
	// a 401 means bad credentials rather than an expired token.
	skipRefresh bool
}

func (c *Client) do(ctx context.Context, req call) error {
	// One idempotency key per logical call: the retried-after-refresh
	// request replays the same key, so the backend can dedupe.
	var idemKey string
	if req.method != http.MethodGet {
		idemKey = uuid.NewString()
	}

	token, err := c.sessions.AccessToken(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read session")
	}

	refreshed := false
	if !req.skipRefresh && token != "" && c.tokenExpiresWithin(token, c.refreshLeeway) {
		// Proactive refresh consumes the call's single refresh attempt.
		if newToken, refreshErr := c.refresh(ctx); refreshErr == nil {
			token = newToken
			refreshed = true
		}
	}

	resp, err := c.send(ctx, req, token, idemKey)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, "send request")
	}

	if resp.StatusCode == http.StatusUnauthorized && !req.skipRefresh && !refreshed {
		drain(resp)
		newToken, refreshErr := c.refresh(ctx)
		if refreshErr != nil {
			c.logg.Warn(ctx, "token refresh failed, clearing session")
			if clearErr := c.sessions.Clear(ctx); clearErr != nil {
				c.logg.Error(ctx, "clear session after failed refresh", clearErr)
			}
			return pkgerrors.Wrap(pkgerrors.CodeReauthNeeded, refreshErr, "session expired")
		}
		// Happens-after: the retry is only issued once the refresh has
		// completed and the new token is persisted.
		resp, err = c.send(ctx, req, newToken, idemKey)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeTransport, err, "send request")
		}
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusForbidden && c.logoutOn403 {
		if clearErr := c.sessions.Clear(ctx); clearErr != nil {
			c.logg.Error(ctx, "clear session on 403", clearErr)
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return decodeInto(resp, req.out)
	}
	return c.errorFromResponse(ctx, resp)
}

func (c *Client) send(ctx context.Context, req call, token, idemKey string) (*http.Response, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if len(req.payload) > 0 {
		body = bytes.NewReader(req.payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)
	if len(req.payload) > 0 {
		contentType := req.contentType
		if contentType == "" {
			contentType = contentTypeJSON
		}
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if idemKey != "" {
		httpReq.Header.Set(headerIdempotency, idemKey)
	}

	c.logg.Debug(ctx, fmt.Sprintf("%s %s", req.method, req.path))
	return c.httpClient.Do(httpReq)
}

// refresh exchanges the stored refresh token for a new access token.
// Concurrent callers share one in-flight exchange; a refresh token must be
// consumed at most once per cycle.
func (c *Client) refresh(ctx context.Context) (string, error) {
	result, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		refreshToken, err := c.sessions.RefreshToken(ctx)
		if err != nil {
			return "", fmt.Errorf("read refresh token: %w", err)
		}
		if refreshToken == "" {
			return "", fmt.Errorf("no refresh token")
		}

		payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
		if err != nil {
			return "", fmt.Errorf("encode refresh request: %w", err)
		}
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/refresh/", bytes.NewReader(payload))
		if err != nil {
			return "", fmt.Errorf("build refresh request: %w", err)
		}
		httpReq.Header.Set("Content-Type", contentTypeJSON)
		httpReq.Header.Set("Accept", contentTypeJSON)
		httpReq.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return "", fmt.Errorf("refresh request: %w", err)
		}
		defer drain(resp)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", fmt.Errorf("refresh rejected with status %d", resp.StatusCode)
		}

		var decoded struct {
			Access string `json:"access"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return "", fmt.Errorf("decode refresh response: %w", err)
		}
		if decoded.Access == "" {
			return "", fmt.Errorf("refresh response missing access token")
		}
		if err := c.sessions.UpdateAccessToken(ctx, decoded.Access); err != nil {
			return "", fmt.Errorf("persist refreshed token: %w", err)
		}
		c.logg.Info(ctx, "access token refreshed")
		return decoded.Access, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func marshalPayload(payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode request payload")
	}
	return raw, nil
}

func decodeInto(resp *http.Response, out any) error {
	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, "read response body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeServer, err, "decode response body")
	}
	return nil
}

func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, errorBodyReadLimit))
	_ = resp.Body.Close()
}
