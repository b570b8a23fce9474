package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/scrapyardhq/scrapdash/pkg/security"
)

// FileStore persists the session as one JSON document on disk. Writes go
// through a temp file plus rename so a crash or concurrent reader never
// observes a partial session. An optional Sealer encrypts the document at
// rest.
type FileStore struct {
	mu     sync.Mutex
	path   string
	sealer *security.Sealer
}

// FileOption configures optional FileStore behavior.
type FileOption func(*FileStore)

// WithSealer encrypts the session file with the given sealer.
func WithSealer(sealer *security.Sealer) FileOption {
	return func(f *FileStore) {
		f.sealer = sealer
	}
}

// NewFileStore builds a store rooted at path. An empty path defaults to
// ~/.scrapdash/session.json.
func NewFileStore(path string, opts ...FileOption) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		path = filepath.Join(home, ".scrapdash", "session.json")
	}
	store := &FileStore{path: path}
	for _, opt := range opts {
		if opt != nil {
			opt(store)
		}
	}
	return store, nil
}

func (f *FileStore) Save(ctx context.Context, s *Session) error {
	if !s.Complete() {
		return fmt.Errorf("refusing to persist a partial session")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(s)
}

func (f *FileStore) Load(ctx context.Context) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.remove()
}

func (f *FileStore) AccessToken(ctx context.Context) (string, error) {
	s, err := f.Load(ctx)
	if err != nil || s == nil {
		return "", err
	}
	return s.AccessToken, nil
}

func (f *FileStore) RefreshToken(ctx context.Context) (string, error) {
	s, err := f.Load(ctx)
	if err != nil || s == nil {
		return "", err
	}
	return s.RefreshToken, nil
}

func (f *FileStore) UpdateAccessToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("access token cannot be empty")
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.read()
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("no session to update")
	}
	current.AccessToken = token
	return f.write(current)
}

func (f *FileStore) write(s *Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if f.sealer != nil {
		payload, err = f.sealer.Seal(payload)
		if err != nil {
			return fmt.Errorf("seal session: %w", err)
		}
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (f *FileStore) read() (*Session, error) {
	payload, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	if f.sealer != nil {
		payload, err = f.sealer.Open(payload)
		if err != nil {
			// Wrong passphrase or tampering; treat as absent.
			_ = f.remove()
			return nil, nil
		}
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil || !s.Complete() {
		// Corrupt or partial entries are purged, not surfaced.
		_ = f.remove()
		return nil, nil
	}
	return &s, nil
}

func (f *FileStore) remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
