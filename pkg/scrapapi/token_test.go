package scrapapi

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestTokenExpiresWithin(t *testing.T) {
	client := &Client{}
	leeway := 30 * time.Second

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"expired", signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()}), true},
		{"inside leeway", signedToken(t, jwt.MapClaims{"exp": time.Now().Add(10 * time.Second).Unix()}), true},
		{"outside leeway", signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}), false},
		{"no exp claim", signedToken(t, jwt.MapClaims{"sub": "42"}), false},
		{"opaque token", "not-a-jwt", false},
		{"empty token", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := client.tokenExpiresWithin(tc.token, leeway); got != tc.want {
				t.Fatalf("tokenExpiresWithin(%s) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestTokenExpiresWithinZeroLeeway(t *testing.T) {
	client := &Client{}
	expired := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
	if client.tokenExpiresWithin(expired, 0) {
		t.Fatalf("zero leeway disables proactive refresh")
	}
}
