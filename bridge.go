package mediainfo

import "errors"

// Bridge function names. Every host bridge exposes this set, either as
// properties of a JavaScript object or as exports of a WASI module.
const (
	bridgeInit               = "initMediaInfo"
	bridgeNew                = "mediainfo_new"
	bridgeDelete             = "mediainfo_delete"
	bridgeOpenBufferInit     = "mediainfo_open_buffer_init"
	bridgeOpenBufferContinue = "mediainfo_open_buffer_continue"
	bridgeGotoGetLower       = "mediainfo_open_buffer_continue_goto_get_lower"
	bridgeGotoGetUpper       = "mediainfo_open_buffer_continue_goto_get_upper"
	bridgeOpenBufferFinalize = "mediainfo_open_buffer_finalize"
	bridgeCountGet           = "mediainfo_count_get"
	bridgeGet                = "mediainfo_get"
	bridgeInform             = "mediainfo_inform"
	bridgeOption             = "mediainfo_option"
	bridgeFreeString         = "mediainfo_free_string"
)

// bridgeFunctions are the entry points a bridge must provide. initMediaInfo
// is optional.
var bridgeFunctions = []string{
	bridgeNew,
	bridgeDelete,
	bridgeOpenBufferInit,
	bridgeOpenBufferContinue,
	bridgeGotoGetLower,
	bridgeGotoGetUpper,
	bridgeOpenBufferFinalize,
	bridgeCountGet,
	bridgeGet,
	bridgeInform,
	bridgeOption,
}

// bridgeABI is the raw host bridge: 32-bit handles, NUL-terminated UTF-8
// strings in, UTF-8 bytes out. String results report ok=false when the
// bridge returned null; the host frees bridge-allocated strings itself.
type bridgeABI interface {
	newHandle() uint32
	deleteHandle(h uint32)
	openBufferInit(h uint32, size, offset uint64) uint32
	openBufferContinue(h uint32, p []byte) uint32
	gotoGetLower(h uint32) uint32
	gotoGetUpper(h uint32) uint32
	openBufferFinalize(h uint32) uint32
	countGet(h, kind, number uint32) uint32
	get(h, kind, number uint32, param []byte, info, search uint32) (out []byte, ok bool)
	inform(h uint32) (out []byte, ok bool)
	option(h uint32, name, value []byte) (out []byte, ok bool)
}

var errBridgeNoHandle = errors.New("bridge returned no handle")

// bridgeSession adapts a bridgeABI to session.
type bridgeSession struct {
	abi     bridgeABI
	backend Backend
	h       uint32
}

func newBridgeSession(abi bridgeABI, backend Backend) (*bridgeSession, error) {
	h := abi.newHandle()
	if h == 0 {
		return nil, errBridgeNoHandle
	}
	return &bridgeSession{abi: abi, backend: backend, h: h}, nil
}

func bridgeString(out []byte, ok bool) (string, error) {
	if !ok {
		return "", ErrNullPointer
	}
	return DecodeUTF8(out)
}

// open validates path and reports that nothing was opened: bridges have no
// file system access.
func (s *bridgeSession) open(path string) (int, error) {
	if _, err := EncodeUTF8(path); err != nil {
		return 0, err
	}
	return 0, nil
}

func (s *bridgeSession) close() {}

func (s *bridgeSession) option(name, value string) (string, error) {
	n, err := EncodeUTF8(name)
	if err != nil {
		return "", err
	}
	v, err := EncodeUTF8(value)
	if err != nil {
		return "", err
	}
	return bridgeString(s.abi.option(s.h, n, v))
}

func (s *bridgeSession) inform() (string, error) {
	return bridgeString(s.abi.inform(s.h))
}

func (s *bridgeSession) countGet(kind StreamKind) int {
	return int(s.abi.countGet(s.h, uint32(kind), uint32(s.backend.countAll())))
}

func (s *bridgeSession) get(kind StreamKind, n int, param string, info, search InfoKind) (string, error) {
	p, err := EncodeUTF8(param)
	if err != nil {
		return "", err
	}
	return bridgeString(s.abi.get(s.h, uint32(kind), uint32(n), p, uint32(info), uint32(search)))
}

func (s *bridgeSession) openBufferInit(size, offset uint64) uint64 {
	return uint64(s.abi.openBufferInit(s.h, size, offset))
}

func (s *bridgeSession) openBufferContinue(p []byte) uint64 {
	return uint64(s.abi.openBufferContinue(s.h, p))
}

// openBufferContinueGotoGet recombines the two halves: the single-value bridge
// call is limited to 32 bits.
func (s *bridgeSession) openBufferContinueGotoGet() uint64 {
	lo := s.abi.gotoGetLower(s.h)
	hi := s.abi.gotoGetUpper(s.h)
	return uint64(hi)<<32 | uint64(lo)
}

func (s *bridgeSession) openBufferContinueGotoGetLower() uint32 {
	return s.abi.gotoGetLower(s.h)
}

func (s *bridgeSession) openBufferContinueGotoGetUpper() uint32 {
	return s.abi.gotoGetUpper(s.h)
}

func (s *bridgeSession) openBufferFinalize() uint64 {
	return uint64(s.abi.openBufferFinalize(s.h))
}

func (s *bridgeSession) delete() { s.abi.deleteHandle(s.h) }
