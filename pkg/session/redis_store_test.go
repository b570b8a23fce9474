package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements cmdable over a map.
type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(newFakeRedis(), "ops", time.Hour)

	require.NoError(t, store.Save(ctx, testSession()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "access-abc", loaded.AccessToken)
	assert.Equal(t, int64(42), loaded.User.ID)
}

func TestRedisStoreKeyIsNamespaced(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	store := newRedisStore(fake, "ops", time.Hour)
	require.NoError(t, store.Save(ctx, testSession()))

	_, ok := fake.data["scrapdash:session:ops"]
	assert.True(t, ok, "expected namespaced key, have %v", fake.data)
}

func TestRedisStoreClearThenLoadIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(newFakeRedis(), "ops", time.Hour)

	require.NoError(t, store.Save(ctx, testSession()))
	require.NoError(t, store.Clear(ctx))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStoreCorruptBlobIsPurged(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	store := newRedisStore(fake, "ops", time.Hour)

	fake.data[store.key] = "{not json"

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
	_, stillThere := fake.data[store.key]
	assert.False(t, stillThere, "corrupt blob must be deleted")
}

func TestRedisStoreUpdateAccessTokenPreservesRest(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(newFakeRedis(), "ops", time.Hour)

	require.NoError(t, store.Save(ctx, testSession()))
	require.NoError(t, store.UpdateAccessToken(ctx, "access-new"))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "access-new", loaded.AccessToken)
	assert.Equal(t, "refresh-def", loaded.RefreshToken)
}

func TestRedisStoreRejectsPartialSession(t *testing.T) {
	ctx := context.Background()
	store := newRedisStore(newFakeRedis(), "ops", time.Hour)

	partial := testSession()
	partial.User = nil
	require.Error(t, store.Save(ctx, partial))
}
