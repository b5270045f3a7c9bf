package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DUNGEONCRAWL_LEVEL_SOURCE", "")
	t.Setenv("DUNGEONCRAWL_FIRST_LEVEL", "")
	t.Setenv("DUNGEONCRAWL_REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, SourceEmbedded, cfg.LevelSource)
	assert.Equal(t, 1, cfg.FirstLevel)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DUNGEONCRAWL_LEVEL_SOURCE", "dir")
	t.Setenv("DUNGEONCRAWL_LEVEL_DIR", "/tmp/levels")
	t.Setenv("DUNGEONCRAWL_FIRST_LEVEL", "3")
	t.Setenv("DUNGEONCRAWL_REDIS_DB", "2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, SourceDir, cfg.LevelSource)
	assert.Equal(t, "/tmp/levels", cfg.LevelDir)
	assert.Equal(t, 3, cfg.FirstLevel)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("DUNGEONCRAWL_LEVEL_SOURCE", "ftp")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("DUNGEONCRAWL_LEVEL_SOURCE", "embedded")
	t.Setenv("DUNGEONCRAWL_FIRST_LEVEL", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestOpenSource(t *testing.T) {
	for _, kind := range []LevelSourceKind{SourceEmbedded, SourceDir, SourceRedis} {
		cfg := &Config{LevelSource: kind, LevelDir: t.TempDir(), FirstLevel: 1}

		src, closeFn, err := cfg.OpenSource()
		require.NoError(t, err, kind)
		assert.NotNil(t, src, kind)
		assert.NoError(t, closeFn(), kind)
	}
}
