package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"easy-ftp/core/apperr"
	"easy-ftp/core/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *settings.Store {
	t.Helper()
	store, err := settings.NewStore(settings.Config{Dir: t.TempDir(), FileName: "config.json"}, zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestStore_LoadMissingReturnsDefaults(t *testing.T) {
	store := newStore(t)

	cfg := store.Load()
	assert.Equal(t, settings.Defaults(), cfg)
	assert.Equal(t, settings.DefaultPort, cfg.Port)
	assert.False(t, cfg.AutoStart)
	assert.Empty(t, cfg.RootDir)

	_, err := store.Read()
	assert.True(t, os.IsNotExist(err))
}

func TestStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cfg  settings.ServerConfig
	}{
		{"Full", settings.ServerConfig{RootDir: "/srv/ftp", Username: "u", Password: "p", Port: 2121, AutoStart: false}},
		{"AutoStart", settings.ServerConfig{RootDir: `C:\Users\me\Public`, Username: "admin", Password: "123456", Port: 21, AutoStart: true}},
		{"Anonymous", settings.ServerConfig{RootDir: "/tmp/share", Port: 65535}},
		{"Unicode", settings.ServerConfig{RootDir: "/home/me/文件", Username: "用户", Password: "pä$$", Port: 8021}},
	}

	store := newStore(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, store.Save(tt.cfg))
			assert.Equal(t, tt.cfg, store.Load())
		})
	}
}

func TestStore_SaveIsAtomic(t *testing.T) {
	store := newStore(t)
	first := settings.ServerConfig{RootDir: "/a", Username: "u", Password: "p", Port: 2121}
	second := settings.ServerConfig{RootDir: "/b", Username: "u", Password: "p", Port: 2222}

	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))
	require.NoError(t, store.Save(second))

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "config.json", entries[0].Name())
	assert.Equal(t, second, store.Load())
}

func TestStore_CorruptFileFallsBackToDefaults(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"RootDir": "/srv", "Port": `), 0o600))

	assert.Equal(t, settings.Defaults(), store.Load())

	_, err := store.Read()
	assert.ErrorIs(t, err, apperr.ErrStorageFailure)
}

func TestStore_LoadsLegacyFile(t *testing.T) {
	store := newStore(t)
	legacy := `{
    "RootDir": "D:\\share",
    "Username": "admin",
    "Password": "123456",
    "Port": "2121",
    "AutoStart": true,
    "Theme": "dark"
}`
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(legacy), 0o644))

	cfg := store.Load()
	assert.Equal(t, `D:\share`, cfg.RootDir)
	assert.Equal(t, settings.Port(2121), cfg.Port)
	assert.True(t, cfg.AutoStart)
}

func TestStore_MissingPortUsesDefault(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"RootDir": "/srv", "Port": ""}`), 0o600))

	cfg := store.Load()
	assert.Equal(t, "/srv", cfg.RootDir)
	assert.Equal(t, settings.DefaultPort, cfg.Port)
}

func TestStore_SaveFailureIsStorageFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// The store directory is a regular file, so it cannot be created.
	store, err := settings.NewStore(settings.Config{Dir: filepath.Join(blocker, "sub")}, zap.NewNop())
	require.NoError(t, err)

	err = store.Save(settings.Defaults())
	assert.ErrorIs(t, err, apperr.ErrStorageFailure)
}
