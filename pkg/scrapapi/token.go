package scrapapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiresWithin inspects the access token's exp claim without verifying
// the signature; only the backend holds the signing key. Opaque or
// claim-less tokens report false, leaving the 401 path in charge.
func (c *Client) tokenExpiresWithin(token string, leeway time.Duration) bool {
	if leeway <= 0 {
		return false
	}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Until(exp.Time) < leeway
}
