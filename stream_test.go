package mediainfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFile(t *testing.T) (*File, *fakeSession) {
	t.Helper()
	fake := newFakeSession()
	fake.streams[StreamGeneral][0] = map[string]string{
		"Format":                     "MPEG-4",
		"Duration":                   "5312",
		"Encoded_Date":               "2021-03-04 05:06:07 UTC",
		"Encoded_Application/String": "HandBrake 1.3.3",
		"VideoCount":                 "1",
		"AudioCount":                 "2",
		"FileSize":                   "1048576",
	}
	fake.add(StreamVideo, map[string]string{
		"Format":       "AVC",
		"Width":        "1920",
		"Height":       "1080",
		"BitRate_Mode": "Variable",
		"ScanType":     "Interlaced",
		"Duration":     "5300",
	})
	fake.add(StreamAudio, map[string]string{
		"Format":       "AAC",
		"Channels":     "2",
		"BitRate_Mode": "Constant",
	})
	fake.add(StreamAudio, map[string]string{
		"Format":   "AC-3",
		"Channels": "six",
	})
	fake.add(StreamText, map[string]string{"Language": "en"})
	fake.add(StreamImage, map[string]string{"Width": "600", "Height": "400"})

	f := newFile(newMediaInfo(fake))
	t.Cleanup(func() { f.Close() })
	return f, fake
}

func TestFile_Counts(t *testing.T) {
	f, _ := sampleFile(t)

	assert.Equal(t, 1, f.Count(StreamGeneral))
	assert.Len(t, f.Videos(), 1)
	assert.Len(t, f.Audios(), 2)
	assert.Len(t, f.Texts(), 1)
	assert.Len(t, f.Images(), 1)
	assert.Empty(t, f.Others())
	assert.Empty(t, f.Menus())

	_, ok := f.Video(1)
	assert.False(t, ok)
	_, ok = f.Audio(-1)
	assert.False(t, ok)
	a, ok := f.Audio(1)
	require.True(t, ok)
	assert.Equal(t, 1, a.Index())
	assert.Equal(t, StreamAudio, a.Kind())
}

func TestStream_TypedReaders(t *testing.T) {
	f, _ := sampleFile(t)
	g := f.General()

	format, err := g.Format()
	require.NoError(t, err)
	assert.Equal(t, "MPEG-4", format)

	d, err := g.Duration()
	require.NoError(t, err)
	assert.Equal(t, 5312*time.Millisecond, d)

	at, err := g.EncodedDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC), at)

	n, err := g.AudioCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	v, ok := f.Video(0)
	require.True(t, ok)
	w, err := v.Width()
	require.NoError(t, err)
	assert.Equal(t, int64(1920), w)
}

func TestStream_AbsentAndNonNumeric(t *testing.T) {
	f, _ := sampleFile(t)

	_, err := f.General().Title()
	assert.ErrorIs(t, err, ErrZeroLengthResult)
	assert.True(t, IsAbsent(err))

	a, _ := f.Audio(1)
	_, err = a.Channels()
	require.ErrorIs(t, err, ErrNonNumericResult)
	assert.Equal(t, KindNonNumeric, KindOf(err))
	assert.Contains(t, err.Error(), `"six"`)
}

func TestStream_DecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		read  func(GeneralStream) error
	}{
		{"negative duration", "-5", func(g GeneralStream) error { _, err := g.Duration(); return err }},
		{"fractional duration", "12.5", func(g GeneralStream) error { _, err := g.Duration(); return err }},
		{"overflowing duration", "99999999999999999999", func(g GeneralStream) error { _, err := g.Duration(); return err }},
		{"bad date", "March 4th", func(g GeneralStream) error { _, err := g.EncodedDate(); return err }},
		{"bad int", "1 024", func(g GeneralStream) error { _, err := g.AudioCount(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeSession()
			fake.streams[StreamGeneral][0] = map[string]string{
				"Duration":     tt.value,
				"Encoded_Date": tt.value,
				"AudioCount":   tt.value,
			}
			f := newFile(newMediaInfo(fake))
			defer f.Close()

			assert.ErrorIs(t, tt.read(f.General()), ErrNonNumericResult)
		})
	}
}

func TestStream_Detached(t *testing.T) {
	var v VideoStream
	_, err := v.Format()
	require.ErrorIs(t, err, ErrNoSessionOpen)
	assert.Equal(t, KindNoSession, KindOf(err))
	assert.False(t, v.Interlaced())
}

func TestStream_AfterClose(t *testing.T) {
	f, fake := sampleFile(t)
	g := f.General()
	require.NoError(t, f.Close())
	assert.Equal(t, 1, fake.deletes)

	_, err := g.Format()
	assert.ErrorIs(t, err, ErrSessionDeleted)
}

func TestStream_GetInfo(t *testing.T) {
	f, _ := sampleFile(t)
	name, err := f.General().GetInfo("Format", InfoName, InfoName)
	require.NoError(t, err)
	assert.Equal(t, "Format", name)
}

func TestStream_Value(t *testing.T) {
	f, _ := sampleFile(t)
	g := f.General()

	got, err := g.Value(Field{Name: "Duration", Param: "Duration", Type: FieldDuration})
	require.NoError(t, err)
	assert.Equal(t, 5312*time.Millisecond, got)

	got, err = g.Value(Field{Name: "VideoCount", Param: "VideoCount", Type: FieldInt})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	got, err = g.Value(Field{Name: "Format", Param: "Format", Type: FieldString})
	require.NoError(t, err)
	assert.Equal(t, "MPEG-4", got)
}

func TestStreams(t *testing.T) {
	f, _ := sampleFile(t)

	general := f.Streams(StreamGeneral)
	require.Len(t, general, 1)
	_, isGeneral := general[0].(GeneralStream)
	assert.True(t, isGeneral)

	audio := f.Streams(StreamAudio)
	require.Len(t, audio, 2)
	for i, s := range audio {
		assert.Equal(t, i, s.Index())
		assert.Equal(t, StreamAudio, s.Kind())
	}
	assert.Nil(t, f.Streams(StreamMax))
}

func TestDerived(t *testing.T) {
	f, _ := sampleFile(t)

	app, err := f.General().WritingApplication()
	require.NoError(t, err)
	assert.Equal(t, "HandBrake 1.3.3", app)

	v, _ := f.Video(0)
	size, err := v.FrameSize()
	require.NoError(t, err)
	assert.Equal(t, "1920x1080", size)
	assert.True(t, v.VBR())
	assert.False(t, v.CBR())
	assert.True(t, v.Interlaced())
	assert.False(t, v.Progressive())

	stereo, _ := f.Audio(0)
	assert.True(t, stereo.Stereo())
	assert.False(t, stereo.Mono())
	assert.True(t, stereo.CBR())

	broken, _ := f.Audio(1)
	assert.False(t, broken.Stereo())
	assert.False(t, broken.Mono())
	assert.True(t, broken.VBR(), "absent mode is not constant")

	img := f.Images()[0]
	size, err = img.FrameSize()
	require.NoError(t, err)
	assert.Equal(t, "600x400", size)
}

func TestDerived_FrameSizeMissingDimension(t *testing.T) {
	fake := newFakeSession()
	fake.add(StreamVideo, map[string]string{"Width": "640"})
	f := newFile(newMediaInfo(fake))
	defer f.Close()

	v, _ := f.Video(0)
	_, err := v.FrameSize()
	assert.ErrorIs(t, err, ErrZeroLengthResult)
}

func TestFields(t *testing.T) {
	for _, kind := range StreamKinds() {
		fields := Fields(kind)
		require.NotEmpty(t, fields, kind.String())

		seen := map[string]bool{}
		for _, f := range fields {
			assert.False(t, seen[f.Name], "%s: duplicate reader %s", kind, f.Name)
			seen[f.Name] = true
			assert.NotEmpty(t, f.Param)
		}
	}
	assert.Nil(t, Fields(StreamMax))

	// Returned slices are copies.
	a := Fields(StreamGeneral)
	a[0].Name = "changed"
	assert.NotEqual(t, "changed", Fields(StreamGeneral)[0].Name)
}

func TestFieldType_String(t *testing.T) {
	assert.Equal(t, "string", FieldString.String())
	assert.Equal(t, "int", FieldInt.String())
	assert.Equal(t, "duration", FieldDuration.String())
	assert.Equal(t, "time", FieldTime.String())
	assert.Equal(t, "unknown", FieldType(9).String())
}
