package mediainfo

import (
	"fmt"
	"strings"
)

// fakeSession is an in-memory engine. Streams hold parameter values by kind
// and index; the buffer protocol records every byte range it is fed.
type fakeSession struct {
	streams map[StreamKind][]map[string]string
	nulls   map[string]bool // parameters whose result is a NULL pointer
	options map[string]string
	report  string

	opened  string
	opens   int
	closes  int
	deletes int

	// buffer streaming
	size      uint64
	pos       uint64
	inits     []uint64
	chunks    []fakeChunk
	seeks     []uint64 // seek requests served one per continue
	pending   uint64
	finalAt   uint64 // report Finalized once pos reaches this (0 = never)
	finalizes int
	accepted  bool
}

type fakeChunk struct {
	offset uint64
	data   []byte
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		streams: map[StreamKind][]map[string]string{
			StreamGeneral: {{}},
		},
		nulls:   map[string]bool{},
		options: map[string]string{},
		pending: noSeek,
	}
}

func (f *fakeSession) add(kind StreamKind, values map[string]string) {
	f.streams[kind] = append(f.streams[kind], values)
}

func (f *fakeSession) open(path string) (int, error) {
	f.opens++
	f.opened = path
	if strings.HasSuffix(path, ".missing") {
		return 0, nil
	}
	return 1, nil
}

func (f *fakeSession) close() { f.closes++ }

func (f *fakeSession) option(name, value string) (string, error) {
	if f.nulls[name] {
		return "", ErrNullPointer
	}
	if value != "" {
		f.options[name] = value
		return "", nil
	}
	return f.options[name], nil
}

func (f *fakeSession) inform() (string, error) { return f.report, nil }

func (f *fakeSession) countGet(kind StreamKind) int { return len(f.streams[kind]) }

func (f *fakeSession) get(kind StreamKind, n int, param string, info, search InfoKind) (string, error) {
	if f.nulls[param] {
		return "", ErrNullPointer
	}
	list := f.streams[kind]
	if n < 0 || n >= len(list) {
		return "", nil
	}
	switch info {
	case InfoText:
		return list[n][param], nil
	case InfoName:
		return param, nil
	default:
		return fmt.Sprintf("%s/%s", param, info), nil
	}
}

func (f *fakeSession) openBufferInit(size, offset uint64) uint64 {
	f.size = size
	f.pos = offset
	f.inits = append(f.inits, offset)
	return 1
}

func (f *fakeSession) openBufferContinue(p []byte) uint64 {
	f.chunks = append(f.chunks, fakeChunk{offset: f.pos, data: append([]byte(nil), p...)})
	f.pos += uint64(len(p))
	f.accepted = true
	f.pending = noSeek
	if len(f.seeks) > 0 {
		f.pending, f.seeks = f.seeks[0], f.seeks[1:]
	}
	status := uint64(StatusAccepted)
	if f.finalAt != 0 && f.pos >= f.finalAt {
		status |= StatusFinalized
	}
	return status
}

func (f *fakeSession) openBufferContinueGotoGet() uint64      { return f.pending }
func (f *fakeSession) openBufferContinueGotoGetLower() uint32 { return uint32(f.pending) }
func (f *fakeSession) openBufferContinueGotoGetUpper() uint32 { return uint32(f.pending >> 32) }

func (f *fakeSession) openBufferFinalize() uint64 {
	f.finalizes++
	return 1
}

func (f *fakeSession) delete() { f.deletes++ }
