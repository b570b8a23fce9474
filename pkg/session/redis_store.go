package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/scrapyardhq/scrapdash/pkg/config"
)

const (
	keyNamespace  = "scrapdash"
	sessionPrefix = "session"
)

// cmdable is the slice of the Redis API this store needs; tests substitute
// an in-memory fake.
type cmdable interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore persists the session as one JSON blob under a namespaced key.
// A single key keeps save/clear atomic; the three logical fields are never
// split across keys. Intended for server-hosted dashboard deployments where
// the operator's session must survive instance restarts.
type RedisStore struct {
	store cmdable
	key   string
	ttl   time.Duration
}

// NewRedisStore connects per the config and verifies connectivity.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, name string) (*RedisStore, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return newRedisStore(raw, name, cfg.SessionTTL), nil
}

func newRedisStore(store cmdable, name string, ttl time.Duration) *RedisStore {
	if name == "" {
		name = "default"
	}
	return &RedisStore{
		store: store,
		key:   fmt.Sprintf("%s:%s:%s", keyNamespace, sessionPrefix, name),
		ttl:   ttl,
	}
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	return opts, nil
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	if !s.Complete() {
		return fmt.Errorf("refusing to persist a partial session")
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.store.Set(ctx, r.key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context) (*Session, error) {
	payload, err := r.store.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil || !s.Complete() {
		_ = r.store.Del(ctx, r.key).Err()
		return nil, nil
	}
	return &s, nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.store.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (r *RedisStore) AccessToken(ctx context.Context) (string, error) {
	s, err := r.Load(ctx)
	if err != nil || s == nil {
		return "", err
	}
	return s.AccessToken, nil
}

func (r *RedisStore) RefreshToken(ctx context.Context) (string, error) {
	s, err := r.Load(ctx)
	if err != nil || s == nil {
		return "", err
	}
	return s.RefreshToken, nil
}

func (r *RedisStore) UpdateAccessToken(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("access token cannot be empty")
	}
	current, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("no session to update")
	}
	current.AccessToken = token
	return r.Save(ctx, current)
}
