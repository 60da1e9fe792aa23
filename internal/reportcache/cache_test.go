package reportcache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSample(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestCache_RoundTrip(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	p := writeSample(t, t.TempDir(), "a.mkv", "not really matroska")
	k, err := KeyFor(p, "JSON", "purego")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(k.Path))
	assert.Equal(t, int64(19), k.Size)

	_, ok, err := c.Get(k)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(k, `{"media":{}}`))
	got, ok, err := c.Get(k)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"media":{}}`, got)

	require.NoError(t, c.Put(k, `{"media":{"track":[]}}`))
	got, _, err = c.Get(k)
	require.NoError(t, err)
	assert.Equal(t, `{"media":{"track":[]}}`, got)
}

func TestCache_KeyedByFormatAndBackend(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	p := writeSample(t, t.TempDir(), "a.mp4", "x")
	text, err := KeyFor(p, "", "cgo")
	require.NoError(t, err)
	require.NoError(t, c.Put(text, "General"))

	json := text
	json.Format = "JSON"
	_, ok, err := c.Get(json)
	require.NoError(t, err)
	assert.False(t, ok)

	other := text
	other.Backend = "wasi-bridge"
	_, ok, err = c.Get(other)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_InvalidatesOnChange(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	dir := t.TempDir()
	p := writeSample(t, dir, "a.mp3", "first")
	k, err := KeyFor(p, "", "purego")
	require.NoError(t, err)
	require.NoError(t, c.Put(k, "report"))

	tests := []struct {
		name   string
		mutate func(Key) Key
	}{
		{"size", func(k Key) Key { k.Size++; return k }},
		{"mtime", func(k Key) Key { k.ModTime = k.ModTime.Add(time.Second); return k }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := c.Get(tt.mutate(k))
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestCache_Prune(t *testing.T) {
	c, err := Open(":memory:")
	require.NoError(t, err)
	defer c.Close()

	dir := t.TempDir()
	kept := writeSample(t, dir, "kept.mkv", "kept")
	gone := writeSample(t, dir, "gone.mkv", "gone")

	for _, p := range []string{kept, gone} {
		k, err := KeyFor(p, "", "cgo")
		require.NoError(t, err)
		require.NoError(t, c.Put(k, "report for "+p))
	}
	require.NoError(t, os.Remove(gone))

	n, err := c.Prune()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	k, err := KeyFor(kept, "", "cgo")
	require.NoError(t, err)
	_, ok, err := c.Get(k)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCache_OnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "reports.sqlite")
	c, err := Open(path)
	require.NoError(t, err)

	p := writeSample(t, t.TempDir(), "b.flac", "fLaC")
	k, err := KeyFor(p, "", "purego")
	require.NoError(t, err)
	require.NoError(t, c.Put(k, "Audio"))
	require.NoError(t, c.Close())

	c, err = Open(path)
	require.NoError(t, err)
	defer c.Close()
	got, ok, err := c.Get(k)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Audio", got)
}

func TestKeyFor_Missing(t *testing.T) {
	_, err := KeyFor(filepath.Join(t.TempDir(), "missing.mkv"), "", "cgo")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
