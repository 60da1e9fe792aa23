package mediainfo

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaInfo_CreateCloseDelete(t *testing.T) {
	fake := newFakeSession()
	mi := newMediaInfo(fake)

	mi.Close()
	mi.Delete()
	mi.Delete()

	assert.Equal(t, 1, fake.closes)
	assert.Equal(t, 1, fake.deletes, "engine delete must run exactly once")
}

func TestMediaInfo_AfterDelete(t *testing.T) {
	fake := newFakeSession()
	mi := newMediaInfo(fake)
	mi.Delete()

	_, err := mi.Get(StreamGeneral, 0, "Format", InfoText, InfoName)
	require.ErrorIs(t, err, ErrSessionDeleted)
	assert.Equal(t, KindDeleted, KindOf(err))

	_, err = mi.Open("a.mkv")
	assert.ErrorIs(t, err, ErrSessionDeleted)
	_, err = mi.Inform()
	assert.ErrorIs(t, err, ErrSessionDeleted)
	_, err = mi.OpenReader(bytes.NewReader([]byte("x")))
	assert.ErrorIs(t, err, ErrSessionDeleted)

	assert.Zero(t, mi.CountGet(StreamGeneral))
	assert.Equal(t, noSeek, mi.OpenBufferContinueGotoGet())
	mi.Close()
	assert.Zero(t, fake.closes)
}

func TestMediaInfo_Open(t *testing.T) {
	fake := newFakeSession()
	mi := newMediaInfo(fake)
	defer mi.Delete()

	n, err := mi.Open("/media/sample.mp4")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "/media/sample.mp4", fake.opened)

	n, err = mi.Open("/media/sample.missing")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMediaInfo_EmptyResult(t *testing.T) {
	fake := newFakeSession()
	fake.streams[StreamGeneral][0]["Format"] = "Matroska"
	mi := newMediaInfo(fake)
	defer mi.Delete()

	got, err := mi.Get(StreamGeneral, 0, "Format", InfoText, InfoName)
	require.NoError(t, err)
	assert.Equal(t, "Matroska", got)

	_, err = mi.Get(StreamGeneral, 0, "Title", InfoText, InfoName)
	require.ErrorIs(t, err, ErrZeroLengthResult)
	assert.True(t, IsAbsent(err))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "Get", e.Op)
	assert.Equal(t, "Title", e.Param)
	assert.Equal(t, KindEmptyResult, e.Kind())
	assert.Contains(t, e.Error(), `Get "Title"`)

	_, err = mi.Inform()
	assert.ErrorIs(t, err, ErrZeroLengthResult)
}

func TestMediaInfo_NullResult(t *testing.T) {
	fake := newFakeSession()
	fake.nulls["Broken"] = true
	mi := newMediaInfo(fake)
	defer mi.Delete()

	_, err := mi.Get(StreamGeneral, 0, "Broken", InfoText, InfoName)
	assert.ErrorIs(t, err, ErrNullPointer)
	assert.ErrorIs(t, err, ErrStringDecode)
	assert.False(t, IsAbsent(err))
}

func TestMediaInfo_OptionAndParameters(t *testing.T) {
	fake := newFakeSession()
	fake.options["Info_Parameters"] = "General\nFormat\n"
	mi := newMediaInfo(fake)
	defer mi.Delete()

	params, err := mi.AvailableParameters()
	require.NoError(t, err)
	assert.Contains(t, params, "Format")

	// Setting an option returns an empty string on success.
	_, err = mi.Option("Output", "JSON")
	assert.ErrorIs(t, err, ErrZeroLengthResult)
	assert.Equal(t, "JSON", fake.options["Output"])
}

func TestMediaInfo_CountGet(t *testing.T) {
	fake := newFakeSession()
	fake.add(StreamAudio, map[string]string{"Channels": "2"})
	fake.add(StreamAudio, map[string]string{"Channels": "6"})
	mi := newMediaInfo(fake)
	defer mi.Delete()

	assert.Equal(t, 1, mi.CountGet(StreamGeneral))
	assert.Equal(t, 2, mi.CountGet(StreamAudio))
	assert.Zero(t, mi.CountGet(StreamVideo))
}

func TestMediaInfo_OpenReaderFollowsSeeks(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i * 7)
	}

	fake := newFakeSession()
	fake.seeks = []uint64{noSeek, 900, 200}
	mi := newMediaInfo(fake)
	defer mi.Delete()

	n, err := mi.OpenReaderSize(bytes.NewReader(data), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Equal(t, []uint64{0, 900, 200}, fake.inits)
	assert.Equal(t, uint64(len(data)), fake.size)
	assert.Equal(t, 1, fake.finalizes)

	wantOffsets := []uint64{0, 100, 900, 200, 300, 400, 500, 600, 700, 800, 900}
	var gotOffsets []uint64
	for _, c := range fake.chunks {
		gotOffsets = append(gotOffsets, c.offset)
		end := c.offset + uint64(len(c.data))
		require.LessOrEqual(t, end, uint64(len(data)))
		assert.Equal(t, data[c.offset:end], c.data, "bytes fed at offset %d", c.offset)
	}
	assert.Equal(t, wantOffsets, gotOffsets)
}

func TestMediaInfo_OpenReaderStopsWhenFinalized(t *testing.T) {
	fake := newFakeSession()
	fake.finalAt = 300
	mi := newMediaInfo(fake)
	defer mi.Delete()

	_, err := mi.OpenReaderSize(bytes.NewReader(make([]byte, 10_000)), 100)
	require.NoError(t, err)
	assert.Len(t, fake.chunks, 3)
	assert.Equal(t, 1, fake.finalizes)
}

type failingSeeker struct{ io.ReadSeeker }

func (failingSeeker) Seek(int64, int) (int64, error) { return 0, errors.New("not seekable") }

func TestMediaInfo_OpenReaderSeekError(t *testing.T) {
	mi := newMediaInfo(newFakeSession())
	defer mi.Delete()

	_, err := mi.OpenReader(failingSeeker{bytes.NewReader(nil)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not seekable")
}

func TestMediaInfo_GotoGetHalves(t *testing.T) {
	fake := newFakeSession()
	fake.pending = 0x0000_0012_3456_789A
	mi := newMediaInfo(fake)
	defer mi.Delete()

	assert.Equal(t, uint32(0x3456_789A), mi.OpenBufferContinueGotoGetLower())
	assert.Equal(t, uint32(0x12), mi.OpenBufferContinueGotoGetUpper())
	assert.Equal(t, uint64(0x12_3456_789A), mi.OpenBufferContinueGotoGet())
}

func TestMediaInfo_EmptyContinueIsNoop(t *testing.T) {
	fake := newFakeSession()
	mi := newMediaInfo(fake)
	defer mi.Delete()

	assert.Zero(t, mi.OpenBufferContinue(nil))
	assert.Empty(t, fake.chunks)
}

func TestNewWithoutBackend(t *testing.T) {
	if IsAvailable() {
		t.Skip("backend available")
	}
	_, err := New()
	require.ErrorIs(t, err, ErrLibraryNotAvailable)
	assert.Equal(t, KindNotAvailable, KindOf(err))
}

// collectingSession runs the garbage collector from inside each engine call
// and records whether the session was deleted before the call returned.
type collectingSession struct {
	*fakeSession
	deleted       atomic.Bool
	deletedInCall atomic.Bool
}

func (c *collectingSession) collect() {
	for i := 0; i < 20; i++ {
		runtime.GC()
		time.Sleep(time.Millisecond)
	}
	if c.deleted.Load() {
		c.deletedInCall.Store(true)
	}
}

func (c *collectingSession) delete() { c.deleted.Store(true) }

func (c *collectingSession) inform() (string, error) {
	c.collect()
	return c.fakeSession.inform()
}

func (c *collectingSession) countGet(kind StreamKind) int {
	c.collect()
	return c.fakeSession.countGet(kind)
}

func (c *collectingSession) get(kind StreamKind, n int, param string, info, search InfoKind) (string, error) {
	c.collect()
	return c.fakeSession.get(kind, n, param, info, search)
}

func (c *collectingSession) openBufferFinalize() uint64 {
	c.collect()
	return c.fakeSession.openBufferFinalize()
}

func TestMediaInfo_NotDeletedDuringLastCall(t *testing.T) {
	tests := []struct {
		name string
		call func(s session)
	}{
		{"Get", func(s session) { _, _ = newMediaInfo(s).Get(StreamGeneral, 0, "Format", InfoText, InfoName) }},
		{"Inform", func(s session) { _, _ = newMediaInfo(s).Inform() }},
		{"CountGet", func(s session) { _ = newMediaInfo(s).CountGet(StreamAudio) }},
		{"OpenBufferFinalize", func(s session) { _ = newMediaInfo(s).OpenBufferFinalize() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeSession()
			fake.streams[StreamGeneral][0]["Format"] = "Matroska"
			fake.report = "General\n"
			s := &collectingSession{fakeSession: fake}

			tt.call(s)
			assert.False(t, s.deletedInCall.Load(), "session deleted while %s was inside the engine", tt.name)

			// Once the call has returned the finalizer is free to run.
			require.Eventually(t, func() bool {
				runtime.GC()
				return s.deleted.Load()
			}, 2*time.Second, 10*time.Millisecond)
		})
	}
}
