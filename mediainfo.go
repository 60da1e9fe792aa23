package mediainfo

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// DefaultReadChunk is the buffer size OpenReader feeds to the engine per call.
const DefaultReadChunk = 64 * 1024

// MediaInfo owns one engine session. It performs no locking of its own; the
// engine's entry points are thread-safe, but a single opened item is not
// meaningfully shared between concurrent readers. Use File for a locked,
// typed view.
type MediaInfo struct {
	s       session
	deleted atomic.Bool
	once    sync.Once
}

// New loads the compiled-in backend if needed and creates a session.
func New() (*MediaInfo, error) {
	if err := loadBackend(); err != nil {
		return nil, opError("New", "", err)
	}
	s, err := newSession()
	if err != nil {
		return nil, opError("New", "", err)
	}
	return newMediaInfo(s), nil
}

// newMediaInfo attaches a finalizer that deletes a leaked session. Every
// method reaching mi.s keeps mi alive until the engine call returns.
func newMediaInfo(s session) *MediaInfo {
	mi := &MediaInfo{s: s}
	runtime.SetFinalizer(mi, func(mi *MediaInfo) {
		if !mi.deleted.Load() {
			Logger().Warn("session garbage collected without Delete",
				zap.Stringer("backend", compiledBackend))
			mi.Delete()
		}
	})
	return mi
}

// Backend returns the backend serving this session.
func (mi *MediaInfo) Backend() Backend { return compiledBackend }

// Delete releases the engine session. Only the first call reaches the engine;
// every other method fails with ErrSessionDeleted afterwards.
func (mi *MediaInfo) Delete() {
	mi.once.Do(func() {
		mi.deleted.Store(true)
		mi.s.delete()
		runtime.SetFinalizer(mi, nil)
	})
}

func (mi *MediaInfo) live(op, param string) error {
	if mi.deleted.Load() {
		return opError(op, param, ErrSessionDeleted)
	}
	return nil
}

// Open analyzes the file at path. The result is the engine's status: non-zero
// when the file was opened. Bridge backends have no file system and always
// return 0 (after validating path); use OpenReader there.
func (mi *MediaInfo) Open(path string) (int, error) {
	defer runtime.KeepAlive(mi)
	if err := mi.live("Open", path); err != nil {
		return 0, err
	}
	n, err := mi.s.open(path)
	if err != nil {
		return 0, opError("Open", path, err)
	}
	return n, nil
}

// Close closes the currently opened item. The session stays usable.
func (mi *MediaInfo) Close() {
	defer runtime.KeepAlive(mi)
	if mi.deleted.Load() {
		return
	}
	mi.s.close()
}

// Option sets or queries an engine option.
func (mi *MediaInfo) Option(name, value string) (string, error) {
	defer runtime.KeepAlive(mi)
	if err := mi.live("Option", name); err != nil {
		return "", err
	}
	return nonEmpty("Option", name)(mi.s.option(name, value))
}

// Inform returns the engine's report for the opened item, formatted
// according to the "Inform" and "Output" options.
func (mi *MediaInfo) Inform() (string, error) {
	defer runtime.KeepAlive(mi)
	if err := mi.live("Inform", ""); err != nil {
		return "", err
	}
	return nonEmpty("Inform", "")(mi.s.inform())
}

// CountGet returns the number of streams of kind in the opened item.
func (mi *MediaInfo) CountGet(kind StreamKind) int {
	defer runtime.KeepAlive(mi)
	if mi.deleted.Load() {
		return 0
	}
	return mi.s.countGet(kind)
}

// Get queries one parameter of stream n of kind. The parameter is matched
// against the search facet and the info facet is returned.
func (mi *MediaInfo) Get(kind StreamKind, n int, param string, info, search InfoKind) (string, error) {
	defer runtime.KeepAlive(mi)
	if err := mi.live("Get", param); err != nil {
		return "", err
	}
	return nonEmpty("Get", param)(mi.s.get(kind, n, param, info, search))
}

// AvailableParameters lists every parameter the engine knows about.
func (mi *MediaInfo) AvailableParameters() (string, error) {
	return mi.Option("Info_Parameters", "")
}

// OpenBufferInit starts a buffer-streaming analysis of an item of size bytes
// whose first buffer starts at offset.
func (mi *MediaInfo) OpenBufferInit(size, offset uint64) uint64 {
	defer runtime.KeepAlive(mi)
	if mi.deleted.Load() {
		return 0
	}
	return mi.s.openBufferInit(size, offset)
}

// OpenBufferContinue feeds the next chunk and returns the status bitfield.
func (mi *MediaInfo) OpenBufferContinue(p []byte) uint64 {
	defer runtime.KeepAlive(mi)
	if mi.deleted.Load() || len(p) == 0 {
		return 0
	}
	return mi.s.openBufferContinue(p)
}

// OpenBufferContinueGotoGet returns the position the engine wants to read
// next, or ^uint64(0) when no seek is requested.
func (mi *MediaInfo) OpenBufferContinueGotoGet() uint64 {
	defer runtime.KeepAlive(mi)
	if mi.deleted.Load() {
		return noSeek
	}
	return mi.s.openBufferContinueGotoGet()
}

// OpenBufferContinueGotoGetLower returns the low 32 bits of the seek position.
func (mi *MediaInfo) OpenBufferContinueGotoGetLower() uint32 {
	defer runtime.KeepAlive(mi)
	if mi.deleted.Load() {
		return ^uint32(0)
	}
	return mi.s.openBufferContinueGotoGetLower()
}

// OpenBufferContinueGotoGetUpper returns the high 32 bits of the seek position.
func (mi *MediaInfo) OpenBufferContinueGotoGetUpper() uint32 {
	defer runtime.KeepAlive(mi)
	if mi.deleted.Load() {
		return ^uint32(0)
	}
	return mi.s.openBufferContinueGotoGetUpper()
}

// OpenBufferFinalize ends buffer streaming and runs the final analysis.
func (mi *MediaInfo) OpenBufferFinalize() uint64 {
	defer runtime.KeepAlive(mi)
	if mi.deleted.Load() {
		return 0
	}
	return mi.s.openBufferFinalize()
}

// OpenReader analyzes r through the buffer-streaming calls, following every
// seek the engine requests. It returns 1 once the engine has accepted the
// stream and 0 otherwise.
func (mi *MediaInfo) OpenReader(r io.ReadSeeker) (int, error) {
	return mi.OpenReaderSize(r, DefaultReadChunk)
}

// OpenReaderSize is OpenReader with an explicit chunk size.
func (mi *MediaInfo) OpenReaderSize(r io.ReadSeeker, chunk int) (int, error) {
	defer runtime.KeepAlive(mi)
	if err := mi.live("OpenReader", ""); err != nil {
		return 0, err
	}
	if chunk <= 0 {
		chunk = DefaultReadChunk
	}

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, opError("OpenReader", "", fmt.Errorf("size: %w", err))
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, opError("OpenReader", "", fmt.Errorf("rewind: %w", err))
	}

	mi.OpenBufferInit(uint64(size), 0)

	var status uint64
	buf := make([]byte, chunk)
	for {
		n, rerr := io.ReadFull(r, buf)
		if n > 0 {
			status = mi.OpenBufferContinue(buf[:n])
			if status&StatusFinalized != 0 {
				break
			}
			if pos := mi.OpenBufferContinueGotoGet(); pos != noSeek {
				if _, err := r.Seek(int64(pos), io.SeekStart); err != nil {
					return 0, opError("OpenReader", "", fmt.Errorf("seek to %d: %w", pos, err))
				}
				Logger().Debug("engine requested seek", zap.Uint64("offset", pos))
				mi.OpenBufferInit(uint64(size), pos)
				continue
			}
		}
		if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
			break
		}
		if rerr != nil {
			return 0, opError("OpenReader", "", fmt.Errorf("read: %w", rerr))
		}
	}
	mi.OpenBufferFinalize()

	if status&StatusAccepted != 0 {
		return 1, nil
	}
	return 0, nil
}

func nonEmpty(op, param string) func(string, error) (string, error) {
	return func(s string, err error) (string, error) {
		if err != nil {
			return "", opError(op, param, err)
		}
		if s == "" {
			return "", opError(op, param, ErrZeroLengthResult)
		}
		return s, nil
	}
}
