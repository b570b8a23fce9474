package security

import (
	"bytes"
	"testing"
)

func TestSealRoundTrip(t *testing.T) {
	sealer, err := NewSealer("hunter2-but-longer")
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}

	plaintext := []byte(`{"access_token":"abc","refresh_token":"def"}`)
	sealed, err := sealer.Seal(plaintext)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if bytes.Contains(sealed, []byte("abc")) {
		t.Fatal("sealed payload must not contain plaintext")
	}
	if !IsSealed(sealed) {
		t.Fatal("sealed payload must carry the header")
	}

	opened, err := sealer.Open(sealed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(opened, plaintext) {
		t.Fatalf("round trip mismatch: %s", opened)
	}
}

func TestOpenRejectsWrongPassphrase(t *testing.T) {
	sealer, _ := NewSealer("right")
	other, _ := NewSealer("wrong")

	sealed, err := sealer.Seal([]byte("secret"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := other.Open(sealed); err != ErrSealMismatch {
		t.Fatalf("expected ErrSealMismatch, got %v", err)
	}
}

func TestOpenRejectsTamperedPayload(t *testing.T) {
	sealer, _ := NewSealer("pass")
	sealed, err := sealer.Seal([]byte("secret"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	sealed[len(sealed)-1] ^= 0xFF
	if _, err := sealer.Open(sealed); err != ErrSealMismatch {
		t.Fatalf("expected ErrSealMismatch, got %v", err)
	}
}

func TestOpenRejectsPlainJSON(t *testing.T) {
	sealer, _ := NewSealer("pass")
	if _, err := sealer.Open([]byte(`{"access_token":"abc"}`)); err != ErrSealMismatch {
		t.Fatalf("expected ErrSealMismatch, got %v", err)
	}
}

func TestNewSealerRejectsEmptyPassphrase(t *testing.T) {
	if _, err := NewSealer(""); err == nil {
		t.Fatal("empty passphrase must be rejected")
	}
}
