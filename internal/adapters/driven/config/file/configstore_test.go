package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, FileName), store.Path())
	assert.NoFileExists(t, store.Path())
}

func TestDefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	dir, err := DefaultDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".contacts"), dir)
}

func TestNewConfigStore_CreatesNestedDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b")

	_, err := NewConfigStore(nested)
	require.NoError(t, err)

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Getters(t *testing.T) {
	store := newStore(t)

	require.NoError(t, store.Set("storage.backend", "sqlite"))
	require.NoError(t, store.Set("export.formats", []string{"text", "html"}))

	assert.Equal(t, "sqlite", store.GetString("storage.backend"))
	assert.Equal(t, []string{"text", "html"}, store.GetStringSlice("export.formats"))

	assert.Empty(t, store.GetString("export.formats"))
	assert.Nil(t, store.GetStringSlice("storage.backend"))
	assert.Empty(t, store.GetString("missing"))

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_PersistsAsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "memory"))
	require.NoError(t, store.Set("export.compression", "zstd"))
	require.NoError(t, store.Set("export.formats", []string{"json", "yaml"}))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[storage]")
	assert.Contains(t, string(raw), "[export]")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "memory", reloaded.GetString("storage.backend"))
	assert.Equal(t, "zstd", reloaded.GetString("export.compression"))
	assert.Equal(t, []string{"json", "yaml"}, reloaded.GetStringSlice("export.formats"))
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[storage]
backend = "sqlite"
dir = "/var/lib/contacts"

[export]
formats = ["json", 3, "html"]

[output]
format = "json"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/contacts", store.GetString("storage.dir"))
	assert.Equal(t, "json", store.GetString("output.format"))
	assert.Equal(t, []string{"json", "html"}, store.GetStringSlice("export.formats"))
}

func TestConfigStore_ValueAndTablePrefixConflict(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("export", "flat"))
	require.NoError(t, store.Set("export.dir", "/tmp/out"))

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "flat", reloaded.GetString("export"))
	assert.Equal(t, "/tmp/out", reloaded.GetString("export.dir"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("storage.backend", "sqlite"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_NoTempFilesLeft(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("storage.backend", "sqlite"))
	require.NoError(t, store.Set("output.format", "json"))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}

func TestConfigStore_EmptyOrCommentOnlyFile(t *testing.T) {
	for _, content := range []string{"", "# Just a comment\n\n"} {
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte(content), 0600))

		store, err := NewConfigStore(tmpDir)
		require.NoError(t, err)
		_, ok := store.Get("storage.backend")
		assert.False(t, ok)
	}
}

func TestConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte("not valid TOML {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
	assert.Nil(t, store)
}

func TestConfigStore_Load_PicksUpExternalEdits(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("storage.backend", "sqlite"))
	require.NoError(t, os.WriteFile(store.Path(), []byte("[output]\nformat = \"yaml\"\n"), 0600))

	require.NoError(t, store.Load())

	assert.Equal(t, "yaml", store.GetString("output.format"))
	assert.Empty(t, store.GetString("storage.backend"))
}

func TestConfigStore_Set_WriteErrorKeepsPreviousValue(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("storage.backend", "sqlite"))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("storage.backend", "memory"))
	assert.Error(t, store.Set("storage.dir", "/tmp"))

	assert.Equal(t, "sqlite", store.GetString("storage.backend"))
	_, ok := store.Get("storage.dir")
	assert.False(t, ok)
}

func TestConfigStore_SetUnmarshallableValue(t *testing.T) {
	store := newStore(t)

	assert.Error(t, store.Set("channel", make(chan int)))
	_, ok := store.Get("channel")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("worker.key%d", id)
			_ = store.Set(key, key)
			_ = store.GetString(key)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("worker.key%d", i)
		assert.Equal(t, key, store.GetString(key))
	}
}
