package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scrapyardhq/scrapdash/pkg/enums"
	"github.com/scrapyardhq/scrapdash/pkg/security"
	"github.com/scrapyardhq/scrapdash/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *Session {
	return &Session{
		AccessToken:  "access-abc",
		RefreshToken: "refresh-def",
		User: &types.User{
			ID:       42,
			Username: "yard.op",
			Email:    "op@yard.example.com",
			Role:     enums.UserRoleYardOperator,
			Org:      7,
		},
	}
}

func newTestFileStore(t *testing.T, opts ...FileOption) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"), opts...)
	require.NoError(t, err)
	return store
}

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	require.NoError(t, store.Save(ctx, testSession()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "access-abc", loaded.AccessToken)
	assert.Equal(t, "refresh-def", loaded.RefreshToken)
	require.NotNil(t, loaded.User)
	assert.Equal(t, int64(42), loaded.User.ID)
	assert.Equal(t, enums.UserRoleYardOperator, loaded.User.Role)
}

func TestFileStoreClearThenLoadIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	require.NoError(t, store.Save(ctx, testSession()))
	require.NoError(t, store.Clear(ctx))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	tok, err := store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestFileStoreRejectsPartialSession(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	partial := testSession()
	partial.RefreshToken = ""
	require.Error(t, store.Save(ctx, partial))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "a rejected save must leave nothing behind")
}

func TestFileStoreCorruptEntryIsPurged(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o600))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, statErr := os.Stat(store.path)
	assert.True(t, os.IsNotExist(statErr), "corrupt entry must be purged")
}

func TestFileStorePartialDocumentTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	// Valid JSON, but a token without a user is not a valid session state.
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
	require.NoError(t, os.WriteFile(store.path, []byte(`{"access_token":"a","refresh_token":"b"}`), 0o600))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreUpdateAccessTokenTouchesOnlyAccessToken(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)

	require.NoError(t, store.Save(ctx, testSession()))
	require.NoError(t, store.UpdateAccessToken(ctx, "access-new"))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "access-new", loaded.AccessToken)
	assert.Equal(t, "refresh-def", loaded.RefreshToken)
	assert.Equal(t, int64(42), loaded.User.ID)
}

func TestFileStoreUpdateWithoutSessionFails(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)
	require.Error(t, store.UpdateAccessToken(ctx, "access-new"))
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	store := newTestFileStore(t)
	require.NoError(t, store.Save(ctx, testSession()))

	entries, err := os.ReadDir(filepath.Dir(store.path))
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), ".session-"), "temp file left behind: %s", entry.Name())
	}
}

func TestFileStoreSealedAtRest(t *testing.T) {
	ctx := context.Background()
	sealer, err := security.NewSealer("operator-passphrase")
	require.NoError(t, err)
	store := newTestFileStore(t, WithSealer(sealer))

	require.NoError(t, store.Save(ctx, testSession()))

	raw, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "access-abc", "tokens must not be readable on disk")

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "access-abc", loaded.AccessToken)
}

func TestFileStoreWrongPassphraseTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	rightSealer, err := security.NewSealer("right")
	require.NoError(t, err)
	right, err := NewFileStore(path, WithSealer(rightSealer))
	require.NoError(t, err)
	require.NoError(t, right.Save(ctx, testSession()))

	wrongSealer, err := security.NewSealer("wrong")
	require.NoError(t, err)
	wrong, err := NewFileStore(path, WithSealer(wrongSealer))
	require.NoError(t, err)

	loaded, err := wrong.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
