package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCredential() domain.Credential {
	return domain.Credential{
		AccessToken:       "access-token",
		AccessTokenSecret: "access-secret",
		BaseURL:           "https://apisb.etrade.com",
	}
}

func TestStoreSaveLoadRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "tokens.json")
	store := NewStore(path)

	require.NoError(t, store.Save(context.Background(), sampleCredential()))

	got, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleCredential(), got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(tokenFileMode), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"access_token": "access-token",
		"access_token_secret": "access-secret",
		"base_url": "https://apisb.etrade.com"
	}`, string(data))
}

func TestStoreLoadMissingFileIsAbsent(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "tokens.json"))

	got, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.Credential{}, got)
}

func TestStoreLoadTreatsPartialRecordsAsAbsent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
	}{
		{name: "missing secret", content: `{"access_token":"a","base_url":"https://api.etrade.com"}`},
		{name: "missing base url", content: `{"access_token":"a","access_token_secret":"s"}`},
		{name: "blank token", content: `{"access_token":"  ","access_token_secret":"s","base_url":"https://api.etrade.com"}`},
		{name: "empty object", content: `{}`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "tokens.json")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), tokenFileMode))

			_, ok, err := NewStore(path).Load(context.Background())
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStoreLoadCorruptFileReportsStorageError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), tokenFileMode))

	_, ok, err := NewStore(path).Load(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.KindStorage, domain.KindOf(err))
}

func TestStoreSaveRefusesIncompleteCredential(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewStore(path)

	err := store.Save(context.Background(), domain.Credential{AccessToken: "a", BaseURL: "https://api.etrade.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIncompleteCredential)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestStoreSaveOverwritesPreviousCredential(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "tokens.json"))
	require.NoError(t, store.Save(context.Background(), sampleCredential()))

	updated := sampleCredential()
	updated.BaseURL = "https://api.etrade.com"
	require.NoError(t, store.Save(context.Background(), updated))

	got, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "https://api.etrade.com", got.BaseURL)
}

func TestStoreDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "tokens.json"))
	require.NoError(t, store.Save(context.Background(), sampleCredential()))

	require.NoError(t, store.Delete(context.Background()))
	require.NoError(t, store.Delete(context.Background()))

	_, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(filepath.Join(t.TempDir(), "tokens.json"))
	assert.ErrorIs(t, store.Save(ctx, sampleCredential()), context.Canceled)
	_, _, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
