package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallcloud/mallctl/internal/ports"
)

func TestPutGetRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "cart_items", []byte(`[{"id":1}]`)))

	data, err := store.Get(ctx, "cart_items")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(data))
}

func TestGetMissingKeyReturnsNotFound(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), "token")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestPutOverwritesExistingValue(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token", []byte(`"old"`)))
	require.NoError(t, store.Put(ctx, "token", []byte(`"new"`)))

	data, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, `"new"`, string(data))
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token", []byte(`"tok"`)))
	require.NoError(t, store.Delete(ctx, "token"))
	require.NoError(t, store.Delete(ctx, "token"))

	_, err := store.Get(ctx, "token")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestEntryFileModeIsPrivate(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "token", []byte(`"tok"`)))

	info, err := os.Stat(filepath.Join(root, "token.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRejectsInvalidKeys(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	tests := []struct {
		name string
		key  string
	}{
		{name: "empty", key: ""},
		{name: "blank", key: "   "},
		{name: "absolute", key: "/etc/passwd"},
		{name: "parent traversal", key: "../outside"},
		{name: "dot", key: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.Put(ctx, tt.key, []byte("x")))
			_, err := store.Get(ctx, tt.key)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ports.ErrKeyNotFound)
		})
	}
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "cart_items", []byte(`[]`)))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cart_items.json", entries[0].Name())
}
