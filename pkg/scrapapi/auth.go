package scrapapi

import (
	"context"
	"net/http"

	pkgerrors "github.com/scrapyardhq/scrapdash/pkg/errors"
	"github.com/scrapyardhq/scrapdash/pkg/session"
	"github.com/scrapyardhq/scrapdash/pkg/types"
)

// AuthService handles login, logout, and profile reads.
type AuthService struct {
	client *Client
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    *types.User `json:"user"`
}

// Login exchanges credentials for a session and persists it. Any failure
// clears whatever session was stored before, so a failed login never leaves
// stale credentials behind.
func (s *AuthService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if username == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username and password are required")
	}

	payload, err := marshalPayload(loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	var decoded loginResponse
	// skipRefresh: a 401 here means bad credentials, not an expired token.
	err = s.client.do(ctx, call{
		method:      http.MethodPost,
		path:        "/auth/login/",
		payload:     payload,
		out:         &decoded,
		skipRefresh: true,
	})
	if err != nil {
		if clearErr := s.client.sessions.Clear(ctx); clearErr != nil {
			s.client.logg.Error(ctx, "clear session after failed login", clearErr)
		}
		return nil, err
	}

	loggedIn := &session.Session{
		AccessToken:  decoded.Access,
		RefreshToken: decoded.Refresh,
		User:         decoded.User,
	}
	if !loggedIn.Complete() {
		if clearErr := s.client.sessions.Clear(ctx); clearErr != nil {
			s.client.logg.Error(ctx, "clear session after malformed login response", clearErr)
		}
		return nil, pkgerrors.New(pkgerrors.CodeServer, "login response missing token or user")
	}
	if err := s.client.sessions.Save(ctx, loggedIn); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist session")
	}
	return loggedIn, nil
}

// Logout clears the stored session. Purely local; the backend keeps no
// server-side session to tear down.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.client.sessions.Clear(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear session")
	}
	return nil
}

// CurrentUser re-fetches the authenticated profile.
func (s *AuthService) CurrentUser(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := s.client.do(ctx, call{method: http.MethodGet, path: "/auth/user/", out: &user}); err != nil {
		return nil, err
	}
	return &user, nil
}
