//go:build cgo && !js && !mediainfo_wasi

// Direct ABI access to libmediainfo linked with cgo.

package mediainfo

/*
#cgo darwin LDFLAGS: -L${SRCDIR}/build -lmediainfo -Wl,-rpath,${SRCDIR}/build
#cgo linux LDFLAGS: -L${SRCDIR}/build -lmediainfo -Wl,-rpath,${SRCDIR}/build
#cgo freebsd LDFLAGS: -L/usr/local/lib -lmediainfo
#cgo windows LDFLAGS: -L${SRCDIR}/build -lmediainfo

#include <stddef.h>
#include <stdint.h>
#include <wchar.h>

void*          MediaInfo_New(void);
void           MediaInfo_Delete(void* handle);
size_t         MediaInfo_Open(void* handle, const wchar_t* file);
void           MediaInfo_Close(void* handle);
const wchar_t* MediaInfo_Option(void* handle, const wchar_t* option, const wchar_t* value);
const wchar_t* MediaInfo_Inform(void* handle, size_t reserved);
size_t         MediaInfo_Count_Get(void* handle, int stream_kind, size_t stream_number);
const wchar_t* MediaInfo_Get(void* handle, int stream_kind, size_t stream_number, const wchar_t* parameter, int info_kind, int search_kind);
size_t         MediaInfo_Open_Buffer_Init(void* handle, uint64_t size, uint64_t offset);
size_t         MediaInfo_Open_Buffer_Continue(void* handle, const uint8_t* buffer, size_t size);
uint64_t       MediaInfo_Open_Buffer_Continue_GoTo_Get(void* handle);
size_t         MediaInfo_Open_Buffer_Finalize(void* handle);
*/
import "C"

import (
	"errors"
	"runtime"
	"unsafe"
)

const compiledBackend = BackendCgo

func init() {
	setBackendAvailable(BackendCgo)
}

func loadBackend() error { return nil }

type cgoSession struct {
	h unsafe.Pointer
}

func newSession() (session, error) {
	h := C.MediaInfo_New()
	if h == nil {
		return nil, errors.New("MediaInfo_New returned NULL")
	}
	return &cgoSession{h: h}, nil
}

func wcharPtr(w *WideString) *C.wchar_t { return (*C.wchar_t)(w.Ptr()) }

func goWide(p *C.wchar_t) (string, error) {
	return decodeWidePtr((*wchar)(unsafe.Pointer(p)))
}

func (s *cgoSession) open(path string) (int, error) {
	w, err := NewWideString(path)
	if err != nil {
		return 0, err
	}
	n := C.MediaInfo_Open(s.h, wcharPtr(w))
	runtime.KeepAlive(w)
	return int(n), nil
}

func (s *cgoSession) close() { C.MediaInfo_Close(s.h) }

func (s *cgoSession) option(name, value string) (string, error) {
	wn, err := NewWideString(name)
	if err != nil {
		return "", err
	}
	wv, err := NewWideString(value)
	if err != nil {
		return "", err
	}
	p := C.MediaInfo_Option(s.h, wcharPtr(wn), wcharPtr(wv))
	runtime.KeepAlive(wn)
	runtime.KeepAlive(wv)
	return goWide(p)
}

func (s *cgoSession) inform() (string, error) {
	return goWide(C.MediaInfo_Inform(s.h, 0))
}

func (s *cgoSession) countGet(kind StreamKind) int {
	return int(C.MediaInfo_Count_Get(s.h, C.int(kind), C.size_t(BackendCgo.countAll())))
}

func (s *cgoSession) get(kind StreamKind, n int, param string, info, search InfoKind) (string, error) {
	w, err := NewWideString(param)
	if err != nil {
		return "", err
	}
	p := C.MediaInfo_Get(s.h, C.int(kind), C.size_t(n), wcharPtr(w), C.int(info), C.int(search))
	runtime.KeepAlive(w)
	return goWide(p)
}

func (s *cgoSession) openBufferInit(size, offset uint64) uint64 {
	return uint64(C.MediaInfo_Open_Buffer_Init(s.h, C.uint64_t(size), C.uint64_t(offset)))
}

func (s *cgoSession) openBufferContinue(p []byte) uint64 {
	return uint64(C.MediaInfo_Open_Buffer_Continue(s.h, (*C.uint8_t)(unsafe.Pointer(&p[0])), C.size_t(len(p))))
}

func (s *cgoSession) openBufferContinueGotoGet() uint64 {
	return uint64(C.MediaInfo_Open_Buffer_Continue_GoTo_Get(s.h))
}

func (s *cgoSession) openBufferContinueGotoGetLower() uint32 {
	return uint32(s.openBufferContinueGotoGet())
}

func (s *cgoSession) openBufferContinueGotoGetUpper() uint32 {
	return uint32(s.openBufferContinueGotoGet() >> 32)
}

func (s *cgoSession) openBufferFinalize() uint64 {
	return uint64(C.MediaInfo_Open_Buffer_Finalize(s.h))
}

func (s *cgoSession) delete() { C.MediaInfo_Delete(s.h) }
