package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"prompt-manager/internal/config"
	"prompt-manager/internal/constant"
	"prompt-manager/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorage(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNopLogger()

	t.Run("file driver round trips", func(t *testing.T) {
		storage, closeFn, err := NewStorage(ctx, config.StorageConfig{Driver: constant.StorageDriverFile, Dir: t.TempDir()}, "", log)
		require.NoError(t, err)
		defer closeFn()

		require.NoError(t, storage.Set(ctx, constant.StorageKeyPrompts, "[]"))
		value, found, err := storage.Get(ctx, constant.StorageKeyPrompts)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "[]", value)
	})

	t.Run("memory driver", func(t *testing.T) {
		storage, closeFn, err := NewStorage(ctx, config.StorageConfig{Driver: constant.StorageDriverMemory}, "", log)
		require.NoError(t, err)
		assert.NotNil(t, storage)
		assert.NoError(t, closeFn())
	})

	t.Run("postgres without dsn fails", func(t *testing.T) {
		_, _, err := NewStorage(ctx, config.StorageConfig{Driver: constant.StorageDriverPostgres}, "", log)
		assert.Error(t, err)
	})

	t.Run("unknown driver fails", func(t *testing.T) {
		_, _, err := NewStorage(ctx, config.StorageConfig{Driver: "sqlite"}, "", log)
		assert.ErrorContains(t, err, "unknown storage driver")
	})
}

func TestNewContainer(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		App: config.AppConfig{
			Environment:       "test",
			LogFilePath:       filepath.Join(dir, "app.log"),
			NoticeLogFilePath: filepath.Join(dir, "notice.log"),
			NoticeTopic:       "TEST_NOTICES",
		},
		Storage: config.StorageConfig{
			Driver: constant.StorageDriverFile,
			Key:    constant.StorageKeyPrompts,
			Dir:    filepath.Join(dir, "data"),
		},
	}

	ctx := context.Background()
	c, err := NewContainer(ctx, cfg)
	require.NoError(t, err)

	res, err := c.Selection.Save(ctx, "Hello", "World")
	require.NoError(t, err)
	assert.True(t, res.Created)
	require.NoError(t, c.Close())

	// a second container over the same directory sees the saved prompt
	again, err := NewContainer(ctx, cfg)
	require.NoError(t, err)
	defer again.Close()

	require.NotNil(t, again.Store.FindById(res.Id))
	_, selected := again.Selection.SelectedId()
	assert.False(t, selected)
}
