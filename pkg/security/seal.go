package security

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// ErrSealMismatch signals a wrong passphrase or a tampered payload.
var ErrSealMismatch = fmt.Errorf("seal verification failed")

const (
	sealMagic   = "SDSEAL1"
	sealSaltLen = 16

	argonTime        = 3
	argonMemoryKB    = 65536
	argonParallelism = 2
	argonKeyLen      = chacha20poly1305.KeySize
)

// Sealer encrypts small payloads at rest with a passphrase-derived key.
// Used by the file session store to keep tokens unreadable on shared disks.
type Sealer struct {
	passphrase []byte
}

// NewSealer builds a Sealer from a non-empty passphrase.
func NewSealer(passphrase string) (*Sealer, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}
	return &Sealer{passphrase: []byte(passphrase)}, nil
}

// Seal returns magic || salt || nonce || ciphertext for the payload.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, sealSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	aead, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, len(sealMagic)+len(salt)+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, sealMagic...)
	out = append(out, salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, nil), nil
}

// Open reverses Seal. It returns ErrSealMismatch for wrong passphrases and
// any tampered or truncated payload.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if !IsSealed(sealed) {
		return nil, ErrSealMismatch
	}
	rest := sealed[len(sealMagic):]
	if len(rest) < sealSaltLen {
		return nil, ErrSealMismatch
	}
	salt, rest := rest[:sealSaltLen], rest[sealSaltLen:]

	aead, err := s.aead(salt)
	if err != nil {
		return nil, err
	}
	if len(rest) < aead.NonceSize() {
		return nil, ErrSealMismatch
	}
	nonce, ciphertext := rest[:aead.NonceSize()], rest[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrSealMismatch
	}
	return plaintext, nil
}

// IsSealed reports whether the payload carries the seal header.
func IsSealed(data []byte) bool {
	return len(data) > len(sealMagic) && string(data[:len(sealMagic)]) == sealMagic
}

func (s *Sealer) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.passphrase, salt, argonTime, argonMemoryKB, argonParallelism, argonKeyLen)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	return aead, nil
}
