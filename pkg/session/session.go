// Package session holds the authenticated identity: access token, refresh
// token, and the cached user profile. A session is either fully present or
// fully absent; no store in this package ever exposes a partial session.
package session

import (
	"context"

	"github.com/scrapyardhq/scrapdash/pkg/types"
)

// Session bundles the credentials and profile produced by a login.
type Session struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         *types.User `json:"user"`
}

// Complete reports whether all three fields are populated. Stores refuse to
// persist anything less.
func (s *Session) Complete() bool {
	return s != nil && s.AccessToken != "" && s.RefreshToken != "" && s.User != nil
}

// Store is the single source of truth for "who is logged in and with what
// credentials". Implementations must be safe for concurrent use and must
// never let a reader observe a half-written session.
type Store interface {
	// Save atomically persists a complete session.
	Save(ctx context.Context, s *Session) error
	// Load reconstructs the session. Absent or unreadable state yields
	// (nil, nil); corrupt entries are purged, not surfaced as errors.
	Load(ctx context.Context) (*Session, error)
	// Clear removes all session data. Used on logout and on
	// irrecoverable auth failure.
	Clear(ctx context.Context) error
	// AccessToken returns the current access token, or "" when logged out.
	AccessToken(ctx context.Context) (string, error)
	// RefreshToken returns the current refresh token, or "" when logged out.
	RefreshToken(ctx context.Context) (string, error)
	// UpdateAccessToken replaces only the access token after a refresh,
	// leaving refresh token and user untouched.
	UpdateAccessToken(ctx context.Context, token string) error
}
