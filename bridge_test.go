package mediainfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBridge struct {
	handle  uint32
	deleted []uint32

	lastParam  []byte
	lastName   []byte
	lastNumber uint32
	getResult  []byte
	getOK      bool
	seek       uint64
	fed        [][]byte
}

func (b *fakeBridge) newHandle() uint32                { return b.handle }
func (b *fakeBridge) deleteHandle(h uint32)            { b.deleted = append(b.deleted, h) }
func (b *fakeBridge) gotoGetLower(uint32) uint32       { return uint32(b.seek) }
func (b *fakeBridge) gotoGetUpper(uint32) uint32       { return uint32(b.seek >> 32) }
func (b *fakeBridge) openBufferFinalize(uint32) uint32 { return 1 }

func (b *fakeBridge) openBufferInit(h uint32, size, offset uint64) uint32 { return 1 }

func (b *fakeBridge) openBufferContinue(h uint32, p []byte) uint32 {
	b.fed = append(b.fed, p)
	return uint32(StatusAccepted)
}

func (b *fakeBridge) countGet(h, kind, number uint32) uint32 {
	b.lastNumber = number
	return 2
}

func (b *fakeBridge) get(h, kind, number uint32, param []byte, info, search uint32) ([]byte, bool) {
	b.lastParam = param
	return b.getResult, b.getOK
}

func (b *fakeBridge) inform(uint32) ([]byte, bool) { return []byte("General\n\x00"), true }

func (b *fakeBridge) option(h uint32, name, value []byte) ([]byte, bool) {
	b.lastName = name
	return nil, true
}

func TestBridgeSession_NoHandle(t *testing.T) {
	_, err := newBridgeSession(&fakeBridge{}, BackendWASI)
	assert.ErrorIs(t, err, errBridgeNoHandle)
}

func TestBridgeSession_Get(t *testing.T) {
	fb := &fakeBridge{handle: 7, getResult: []byte("AVC\x00"), getOK: true}
	s, err := newBridgeSession(fb, BackendWASI)
	require.NoError(t, err)

	got, err := s.get(StreamVideo, 0, "Format", InfoText, InfoName)
	require.NoError(t, err)
	assert.Equal(t, "AVC", got)
	assert.Equal(t, []byte("Format\x00"), fb.lastParam, "parameters are sent NUL-terminated")
}

func TestBridgeSession_NullResult(t *testing.T) {
	fb := &fakeBridge{handle: 1}
	s, err := newBridgeSession(fb, BackendJS)
	require.NoError(t, err)

	_, err = s.get(StreamGeneral, 0, "Format", InfoText, InfoName)
	assert.ErrorIs(t, err, ErrNullPointer)
}

func TestBridgeSession_InvalidUTF8Result(t *testing.T) {
	fb := &fakeBridge{handle: 1, getResult: []byte{0xC3, 0x28}, getOK: true}
	s, err := newBridgeSession(fb, BackendJS)
	require.NoError(t, err)

	_, err = s.get(StreamGeneral, 0, "Title", InfoText, InfoName)
	assert.ErrorIs(t, err, ErrStringDecode)
}

func TestBridgeSession_RejectsEmbeddedNUL(t *testing.T) {
	fb := &fakeBridge{handle: 1, getOK: true}
	s, err := newBridgeSession(fb, BackendWASI)
	require.NoError(t, err)

	_, err = s.get(StreamGeneral, 0, "For\x00mat", InfoText, InfoName)
	assert.ErrorIs(t, err, ErrStringEncode)
	assert.Nil(t, fb.lastParam, "bridge must not be called")

	_, err = s.option("Output", "JS\x00ON")
	assert.ErrorIs(t, err, ErrStringEncode)
	assert.Nil(t, fb.lastName)

	_, err = s.open("a\x00.mkv")
	assert.ErrorIs(t, err, ErrStringEncode)
}

func TestBridgeSession_OpenIsUnsupported(t *testing.T) {
	s, err := newBridgeSession(&fakeBridge{handle: 1}, BackendJS)
	require.NoError(t, err)

	n, err := s.open("/media/a.mkv")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBridgeSession_CountGetSentinel(t *testing.T) {
	fb := &fakeBridge{handle: 1}
	s, err := newBridgeSession(fb, BackendWASI)
	require.NoError(t, err)

	assert.Equal(t, 2, s.countGet(StreamAudio))
	assert.Equal(t, uint32(0xFFFFFFFF), fb.lastNumber)
}

func TestBridgeSession_GotoGetRecombines(t *testing.T) {
	tests := []struct {
		name string
		seek uint64
	}{
		{"small", 4096},
		{"above 4GiB", 0x1_0000_0010},
		{"no seek", noSeek},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newBridgeSession(&fakeBridge{handle: 1, seek: tt.seek}, BackendWASI)
			require.NoError(t, err)
			assert.Equal(t, tt.seek, s.openBufferContinueGotoGet())
			assert.Equal(t, uint32(tt.seek), s.openBufferContinueGotoGetLower())
			assert.Equal(t, uint32(tt.seek>>32), s.openBufferContinueGotoGetUpper())
		})
	}
}

func TestBridgeSession_DeleteReleasesHandle(t *testing.T) {
	fb := &fakeBridge{handle: 42}
	s, err := newBridgeSession(fb, BackendJS)
	require.NoError(t, err)

	mi := newMediaInfo(s)
	mi.Delete()
	mi.Delete()
	assert.Equal(t, []uint32{42}, fb.deleted)
}

func TestBridgeSession_ThroughMediaInfo(t *testing.T) {
	fb := &fakeBridge{handle: 3, seek: noSeek}
	s, err := newBridgeSession(fb, BackendWASI)
	require.NoError(t, err)
	mi := newMediaInfo(s)
	defer mi.Delete()

	report, err := mi.Inform()
	require.NoError(t, err)
	assert.Equal(t, "General\n", report)

	_, err = mi.Get(StreamGeneral, 0, "Title", InfoText, InfoName)
	assert.ErrorIs(t, err, ErrNullPointer)

	n, err := mi.OpenReaderSize(bytes.NewReader([]byte("abcdefgh")), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, fb.fed, 3)
}
