package mediainfo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file run against the real engine and are skipped when the
// compiled-in backend cannot be loaded.

func requireEngine(t *testing.T) *MediaInfo {
	t.Helper()
	if !IsAvailable() {
		t.Skipf("%s backend not available", CompiledBackend())
	}
	mi, err := New()
	require.NoError(t, err)
	t.Cleanup(mi.Delete)
	return mi
}

func TestEngine_Version(t *testing.T) {
	mi := requireEngine(t)

	v, err := mi.Option("Info_Version", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(v, "MediaInfoLib"), "version %q", v)
}

func TestEngine_AvailableParameters(t *testing.T) {
	mi := requireEngine(t)

	params, err := mi.AvailableParameters()
	require.NoError(t, err)
	for _, p := range []string{"Format", "Duration", "BitRate_Mode", "Channels"} {
		assert.Contains(t, params, p)
	}
}

func TestEngine_UnrecognizedInput(t *testing.T) {
	mi := requireEngine(t)

	_, err := mi.OpenReader(bytes.NewReader(bytes.Repeat([]byte{0x5A}, 4096)))
	require.NoError(t, err)
	assert.Zero(t, mi.CountGet(StreamVideo))

	_, err = mi.Get(StreamVideo, 0, "Format", InfoText, InfoName)
	assert.True(t, IsAbsent(err), "got %v", err)
}

func TestEngine_OpenMissingFile(t *testing.T) {
	mi := requireEngine(t)
	if !mi.Backend().Features().Has(FeatureOpenPath) {
		t.Skip("backend cannot open paths")
	}
	n, err := mi.Open(filepath.Join(t.TempDir(), "missing.mkv"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEngine_NonASCIIParameter(t *testing.T) {
	mi := requireEngine(t)

	_, err := mi.Get(StreamGeneral, 0, "Titre_été_日本", InfoText, InfoName)
	assert.True(t, IsAbsent(err), "got %v", err)
}

func TestEngine_Samples(t *testing.T) {
	dir := os.Getenv("MEDIAINFO_SAMPLES")
	if dir == "" {
		t.Skip("MEDIAINFO_SAMPLES not set")
	}
	if !IsAvailable() {
		t.Skipf("%s backend not available", CompiledBackend())
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		t.Run(e.Name(), func(t *testing.T) {
			t.Run("Decode", func(t *testing.T) { sampleDecodes(t, path) })
			t.Run("TypedMatchesReport", func(t *testing.T) { sampleTypedMatchesReport(t, path) })
			t.Run("StreamedMatchesOpen", func(t *testing.T) { sampleStreamedMatchesOpen(t, path) })
		})
	}
}

func sampleDecodes(t *testing.T, path string) {
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	format, err := f.General().Format()
	require.NoError(t, err)
	assert.NotEmpty(t, format)

	for _, kind := range StreamKinds() {
		for _, s := range f.Streams(kind) {
			for _, field := range Fields(kind) {
				if _, err := s.Value(field); err != nil && !IsAbsent(err) {
					assert.ErrorIs(t, err, ErrNonNumericResult, "%s %d %s", kind, s.Index(), field.Name)
				}
			}
		}
	}
}

// sampleTypedMatchesReport checks General Format and Duration and the first
// audio stream's channel count against the engine's text report.
func sampleTypedMatchesReport(t *testing.T, path string) {
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	report, err := f.Inform()
	require.NoError(t, err)

	format, err := f.General().Format()
	require.NoError(t, err)
	assert.Contains(t, report, format)

	if d, err := f.General().Duration(); err == nil {
		text, err := f.General().DurationString()
		require.NoError(t, err)
		assert.Contains(t, report, text)

		raw := renderTemplate(t, f, "General;%Duration%")
		assert.Equal(t, strconv.FormatInt(d.Milliseconds(), 10), raw)
	} else {
		assert.True(t, IsAbsent(err), "Duration: %v", err)
	}

	a, ok := f.Audio(0)
	if !ok {
		return
	}
	ch, err := a.Channels()
	require.NoError(t, err)
	assert.Contains(t, report, fmt.Sprintf("%d channel", ch))

	raw := renderTemplate(t, f, "Audio;%Channels%|")
	first, _, _ := strings.Cut(raw, "|")
	assert.Equal(t, strconv.FormatInt(ch, 10), first)
}

// renderTemplate runs Inform with a custom template and restores the default
// report afterwards.
func renderTemplate(t *testing.T, f *File, template string) string {
	t.Helper()
	if _, err := f.Option("Inform", template); err != nil && !IsAbsent(err) {
		t.Fatalf("Option(Inform): %v", err)
	}
	defer func() {
		if _, err := f.Option("Inform", ""); err != nil && !IsAbsent(err) {
			t.Errorf("reset Inform: %v", err)
		}
	}()
	out, err := f.Inform()
	require.NoError(t, err)
	return strings.TrimSpace(out)
}

func sampleStreamedMatchesOpen(t *testing.T, path string) {
	byPath, err := New()
	require.NoError(t, err)
	defer byPath.Delete()
	if !byPath.Backend().Features().Has(FeatureOpenPath) {
		t.Skip("backend cannot open paths")
	}
	n, err := byPath.Open(path)
	require.NoError(t, err)
	require.NotZero(t, n)
	want, err := byPath.Inform()
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	streamed, err := New()
	require.NoError(t, err)
	defer streamed.Delete()
	n, err = streamed.OpenReaderSize(file, 4096)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	got, err := streamed.Inform()
	require.NoError(t, err)

	assert.Equal(t, withoutPathLines(want), withoutPathLines(got))
}

// withoutPathLines drops the report lines only a path open can fill in.
func withoutPathLines(report string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(report), "\n") {
		key, _, _ := strings.Cut(line, ":")
		switch strings.TrimSpace(key) {
		case "Complete name", "File last modification date", "File last modification date (local)":
			continue
		}
		out = append(out, strings.TrimRight(line, "\r"))
	}
	return out
}
