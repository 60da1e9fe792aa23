//go:build !cgo && (darwin || linux || freebsd) && !mediainfo_wasi

// Direct ABI access to libmediainfo loaded at run time with purego.

package mediainfo

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

const compiledBackend = BackendPurego

var (
	mediainfoOnce    sync.Once
	mediainfoHandle  uintptr
	mediainfoInitErr error
)

// libmediainfo function pointers
var (
	miNew                       func() uintptr
	miDelete                    func(h uintptr)
	miOpen                      func(h uintptr, path unsafe.Pointer) uintptr
	miClose                     func(h uintptr)
	miOption                    func(h uintptr, name, value unsafe.Pointer) uintptr
	miInform                    func(h uintptr, reserved uintptr) uintptr
	miCountGet                  func(h uintptr, kind int32, number uintptr) uintptr
	miGet                       func(h uintptr, kind int32, number uintptr, param unsafe.Pointer, info, search int32) uintptr
	miOpenBufferInit            func(h uintptr, size, offset uint64) uintptr
	miOpenBufferContinue        func(h uintptr, data unsafe.Pointer, n uintptr) uintptr
	miOpenBufferContinueGotoGet func(h uintptr) uint64
	miOpenBufferFinalize        func(h uintptr) uintptr
)

func loadBackend() error {
	mediainfoOnce.Do(func() {
		mediainfoInitErr = loadMediainfoLib()
		if mediainfoInitErr == nil {
			setBackendAvailable(BackendPurego)
			return
		}
		Logger().Debug("libmediainfo unavailable", zap.Error(mediainfoInitErr))
	})
	if mediainfoInitErr != nil {
		return fmt.Errorf("%w: %v", ErrLibraryNotAvailable, mediainfoInitErr)
	}
	return nil
}

func loadMediainfoLib() error {
	paths := getMediainfoLibPaths()

	var lastErr error
	for _, path := range paths {
		handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		mediainfoHandle = handle
		if err := loadMediainfoSymbols(); err != nil {
			purego.Dlclose(handle)
			lastErr = err
			continue
		}
		Logger().Info("loaded libmediainfo", zap.String("path", path))
		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("failed to load libmediainfo: %w", lastErr)
	}
	return errors.New("libmediainfo not found in any standard location")
}

func getMediainfoLibPaths() []string {
	libName := "libmediainfo.so.0"
	if runtime.GOOS == "darwin" {
		libName = "libmediainfo.0.dylib"
	}

	paths := searchPaths(libName, "MEDIAINFO_LIB_PATH", "MEDIAINFO_SDK_LIB_PATH")

	// System paths (lowest priority)
	switch runtime.GOOS {
	case "darwin":
		paths = append(paths,
			"libmediainfo.dylib",
			"libmediainfo.0.dylib",
			"/usr/local/lib/libmediainfo.dylib",
			"/opt/homebrew/lib/libmediainfo.dylib",
		)
	default:
		paths = append(paths,
			"libmediainfo.so.0",
			"libmediainfo.so",
			"/usr/local/lib/libmediainfo.so",
			"/usr/lib/libmediainfo.so",
		)
	}

	return paths
}

func loadMediainfoSymbols() error {
	sym := func(fptr any, name string) (err error) {
		// RegisterLibFunc panics on a missing symbol.
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("symbol %s: %v", name, r)
			}
		}()
		purego.RegisterLibFunc(fptr, mediainfoHandle, name)
		return nil
	}
	return errors.Join(
		sym(&miNew, "MediaInfo_New"),
		sym(&miDelete, "MediaInfo_Delete"),
		sym(&miOpen, "MediaInfo_Open"),
		sym(&miClose, "MediaInfo_Close"),
		sym(&miOption, "MediaInfo_Option"),
		sym(&miInform, "MediaInfo_Inform"),
		sym(&miCountGet, "MediaInfo_Count_Get"),
		sym(&miGet, "MediaInfo_Get"),
		sym(&miOpenBufferInit, "MediaInfo_Open_Buffer_Init"),
		sym(&miOpenBufferContinue, "MediaInfo_Open_Buffer_Continue"),
		sym(&miOpenBufferContinueGotoGet, "MediaInfo_Open_Buffer_Continue_GoTo_Get"),
		sym(&miOpenBufferFinalize, "MediaInfo_Open_Buffer_Finalize"),
	)
}

type puregoSession struct {
	h uintptr
}

func newSession() (session, error) {
	h := miNew()
	if h == 0 {
		return nil, errors.New("MediaInfo_New returned NULL")
	}
	return &puregoSession{h: h}, nil
}

func (s *puregoSession) open(path string) (int, error) {
	w, err := NewWideString(path)
	if err != nil {
		return 0, err
	}
	n := miOpen(s.h, w.Ptr())
	runtime.KeepAlive(w)
	return int(n), nil
}

func (s *puregoSession) close() { miClose(s.h) }

func (s *puregoSession) option(name, value string) (string, error) {
	wn, err := NewWideString(name)
	if err != nil {
		return "", err
	}
	wv, err := NewWideString(value)
	if err != nil {
		return "", err
	}
	p := miOption(s.h, wn.Ptr(), wv.Ptr())
	runtime.KeepAlive(wn)
	runtime.KeepAlive(wv)
	return decodeWidePtr((*wchar)(unsafe.Pointer(p)))
}

func (s *puregoSession) inform() (string, error) {
	return decodeWidePtr((*wchar)(unsafe.Pointer(miInform(s.h, 0))))
}

func (s *puregoSession) countGet(kind StreamKind) int {
	return int(miCountGet(s.h, int32(kind), uintptr(BackendPurego.countAll())))
}

func (s *puregoSession) get(kind StreamKind, n int, param string, info, search InfoKind) (string, error) {
	w, err := NewWideString(param)
	if err != nil {
		return "", err
	}
	p := miGet(s.h, int32(kind), uintptr(n), w.Ptr(), int32(info), int32(search))
	runtime.KeepAlive(w)
	return decodeWidePtr((*wchar)(unsafe.Pointer(p)))
}

func (s *puregoSession) openBufferInit(size, offset uint64) uint64 {
	return uint64(miOpenBufferInit(s.h, size, offset))
}

func (s *puregoSession) openBufferContinue(p []byte) uint64 {
	r := miOpenBufferContinue(s.h, unsafe.Pointer(&p[0]), uintptr(len(p)))
	runtime.KeepAlive(p)
	return uint64(r)
}

func (s *puregoSession) openBufferContinueGotoGet() uint64 {
	return miOpenBufferContinueGotoGet(s.h)
}

func (s *puregoSession) openBufferContinueGotoGetLower() uint32 {
	return uint32(miOpenBufferContinueGotoGet(s.h))
}

func (s *puregoSession) openBufferContinueGotoGetUpper() uint32 {
	return uint32(miOpenBufferContinueGotoGet(s.h) >> 32)
}

func (s *puregoSession) openBufferFinalize() uint64 {
	return uint64(miOpenBufferFinalize(s.h))
}

func (s *puregoSession) delete() { miDelete(s.h) }
