package mediainfo

import (
	"io"
	"os"
	"sync"
)

// File is an opened item with typed access to its streams. All reads go
// through one session and are serialized; each reader holds the lock for a
// single engine query.
type File struct {
	mu sync.Mutex
	mi *MediaInfo
}

// OpenFile analyzes the file at path. On backends that cannot open paths
// (the host bridges) the file is streamed through OpenReader instead.
func OpenFile(path string) (*File, error) {
	mi, err := New()
	if err != nil {
		return nil, err
	}
	if !mi.Backend().Features().Has(FeatureOpenPath) {
		f, err := os.Open(path)
		if err != nil {
			mi.Delete()
			return nil, opError("OpenFile", path, err)
		}
		defer f.Close()
		return openReader(mi, f, path)
	}

	n, err := mi.Open(path)
	if err != nil {
		mi.Delete()
		return nil, err
	}
	if n == 0 {
		mi.Delete()
		return nil, opError("OpenFile", path, ErrOpenFailed)
	}
	return newFile(mi), nil
}

// OpenReader analyzes r with the buffer-streaming protocol.
func OpenReader(r io.ReadSeeker) (*File, error) {
	mi, err := New()
	if err != nil {
		return nil, err
	}
	return openReader(mi, r, "")
}

func openReader(mi *MediaInfo, r io.ReadSeeker, name string) (*File, error) {
	n, err := mi.OpenReader(r)
	if err != nil {
		mi.Delete()
		return nil, err
	}
	if n == 0 {
		mi.Delete()
		return nil, opError("OpenReader", name, ErrOpenFailed)
	}
	return newFile(mi), nil
}

// newFile wraps an existing session. The File takes ownership of mi.
func newFile(mi *MediaInfo) *File { return &File{mi: mi} }

// Close closes the item and releases the session. Streams obtained from f
// fail with ErrSessionDeleted afterwards.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mi.Close()
	f.mi.Delete()
	return nil
}

// MediaInfo returns the underlying session for calls the typed layer does not
// cover. Callers must not Delete it.
func (f *File) MediaInfo() *MediaInfo { return f.mi }

// Inform returns the engine's report for the item.
func (f *File) Inform() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mi.Inform()
}

// Option sets or queries an engine option on the item's session.
func (f *File) Option(name, value string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mi.Option(name, value)
}

// Count returns the number of streams of kind.
func (f *File) Count(kind StreamKind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mi.CountGet(kind)
}

func (f *File) get(kind StreamKind, n int, param string, info, search InfoKind) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mi.Get(kind, n, param, info, search)
}

func (f *File) stream(kind StreamKind, i int) stream {
	return stream{kind: kind, index: i, file: f}
}

// General returns the container-level stream.
func (f *File) General() GeneralStream {
	return GeneralStream{f.stream(StreamGeneral, 0)}
}

// Video returns video stream i. The second result is false when i is out of
// range.
func (f *File) Video(i int) (VideoStream, bool) {
	if i < 0 || i >= f.Count(StreamVideo) {
		return VideoStream{}, false
	}
	return VideoStream{f.stream(StreamVideo, i)}, true
}

// Audio returns audio stream i.
func (f *File) Audio(i int) (AudioStream, bool) {
	if i < 0 || i >= f.Count(StreamAudio) {
		return AudioStream{}, false
	}
	return AudioStream{f.stream(StreamAudio, i)}, true
}

// Videos returns every video stream.
func (f *File) Videos() []VideoStream {
	return streams(f, StreamVideo, func(s stream) VideoStream { return VideoStream{s} })
}

// Audios returns every audio stream.
func (f *File) Audios() []AudioStream {
	return streams(f, StreamAudio, func(s stream) AudioStream { return AudioStream{s} })
}

// Texts returns every text stream.
func (f *File) Texts() []TextStream {
	return streams(f, StreamText, func(s stream) TextStream { return TextStream{s} })
}

// Others returns every auxiliary stream.
func (f *File) Others() []OtherStream {
	return streams(f, StreamOther, func(s stream) OtherStream { return OtherStream{s} })
}

// Images returns every image stream.
func (f *File) Images() []ImageStream {
	return streams(f, StreamImage, func(s stream) ImageStream { return ImageStream{s} })
}

// Menus returns every menu stream.
func (f *File) Menus() []MenuStream {
	return streams(f, StreamMenu, func(s stream) MenuStream { return MenuStream{s} })
}

// Stream is implemented by every stream type.
type Stream interface {
	Kind() StreamKind
	Index() int
	Get(param string) (string, error)
	GetInfo(param string, info, search InfoKind) (string, error)
	Value(f Field) (any, error)
}

// Streams returns every stream of kind as the generic Stream interface.
func (f *File) Streams(kind StreamKind) []Stream {
	if kind >= StreamMax {
		return nil
	}
	if kind == StreamGeneral {
		return []Stream{f.General()}
	}
	return streams(f, kind, func(s stream) Stream { return s })
}

func streams[T any](f *File, kind StreamKind, wrap func(stream) T) []T {
	n := f.Count(kind)
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, wrap(f.stream(kind, i)))
	}
	return out
}
