//go:build js && wasm

// Host bridge provided by JavaScript. The bridge functions are looked up on
// globalThis[MEDIAINFO_BRIDGE] (default "mediainfoBridge") and then on
// globalThis itself, which is where the stock bridge script installs them.

package mediainfo

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"syscall/js"

	"go.uber.org/zap"
)

const compiledBackend = BackendJS

type jsBridge struct {
	obj js.Value
}

var getJSBridge = sync.OnceValues(func() (*jsBridge, error) {
	b, err := startJSBridge()
	if err != nil {
		Logger().Debug("js bridge unavailable", zap.Error(err))
		return nil, err
	}
	setBackendAvailable(BackendJS)
	return b, nil
})

func loadBackend() error {
	if _, err := getJSBridge(); err != nil {
		return fmt.Errorf("%w: %v", ErrLibraryNotAvailable, err)
	}
	return nil
}

func newSession() (session, error) {
	b, err := getJSBridge()
	if err != nil {
		return nil, err
	}
	return newBridgeSession(b, BackendJS)
}

func startJSBridge() (*jsBridge, error) {
	name := os.Getenv("MEDIAINFO_BRIDGE")
	if name == "" {
		name = "mediainfoBridge"
	}
	obj := js.Global().Get(name)
	if obj.IsUndefined() || obj.IsNull() {
		obj = js.Global()
	}

	var missing []string
	for _, fn := range bridgeFunctions {
		if obj.Get(fn).Type() != js.TypeFunction {
			missing = append(missing, fn)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("bridge %q is missing functions %v", name, missing)
	}

	if initFn := obj.Get(bridgeInit); initFn.Type() == js.TypeFunction {
		ok, err := await(initFn.Invoke())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", bridgeInit, err)
		}
		if ok.Type() == js.TypeBoolean && !ok.Bool() {
			return nil, fmt.Errorf("%s reported failure", bridgeInit)
		}
	}
	Logger().Info("js bridge ready", zap.String("bridge", name))
	return &jsBridge{obj: obj}, nil
}

// await resolves v if it is a thenable. It must not be called from a JS
// callback: it blocks the calling goroutine until the promise settles.
func await(v js.Value) (js.Value, error) {
	if v.Type() != js.TypeObject || v.Get("then").Type() != js.TypeFunction {
		return v, nil
	}
	type settled struct {
		v   js.Value
		err error
	}
	done := make(chan settled, 1)
	onResolve := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var r js.Value
		if len(args) > 0 {
			r = args[0]
		}
		done <- settled{v: r}
		return nil
	})
	defer onResolve.Release()
	onReject := js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := "promise rejected"
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		done <- settled{err: errors.New(msg)}
		return nil
	})
	defer onReject.Release()

	v.Call("then", onResolve, onReject)
	s := <-done
	return s.v, s.err
}

// call invokes a bridge function, converting a thrown exception into a zero
// result.
func (b *jsBridge) call(name string, args ...any) (v js.Value) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("bridge call failed", zap.String("func", name), zap.Any("error", r))
			v = js.Null()
		}
	}()
	return b.obj.Call(name, args...)
}

func jsUint32(v js.Value) uint32 {
	switch v.Type() {
	case js.TypeNumber:
		// Bridges built with signed 32-bit returns report "no seek" as -1.
		f := v.Float()
		switch {
		case f < 0 && f >= math.MinInt32:
			return uint32(int32(f))
		case f <= 0:
			return 0
		case f >= 0xFFFFFFFF:
			return 0xFFFFFFFF
		default:
			return uint32(f)
		}
	case js.TypeBoolean:
		if v.Bool() {
			return 1
		}
	}
	return 0
}

// jsString converts a bridge string result. The stock bridge returns
// pointers into the engine heap, which are read with UTF8ToString and
// released with mediainfo_free_string. Bridges written for this package
// return JavaScript strings directly.
func (b *jsBridge) jsString(v js.Value) ([]byte, bool) {
	switch v.Type() {
	case js.TypeString:
		return []byte(v.String()), true
	case js.TypeNumber:
		ptr := v.Int()
		if ptr == 0 {
			return nil, false
		}
		conv := b.obj.Get("UTF8ToString")
		if conv.Type() != js.TypeFunction {
			conv = js.Global().Get("UTF8ToString")
		}
		if conv.Type() != js.TypeFunction {
			Logger().Error("bridge returned a pointer but UTF8ToString is not available")
			return nil, false
		}
		s := conv.Invoke(ptr).String()
		if b.obj.Get(bridgeFreeString).Type() == js.TypeFunction {
			b.call(bridgeFreeString, ptr)
		}
		return []byte(s), true
	default:
		return nil, false
	}
}

// cstring drops the terminator EncodeUTF8 appended.
func cstring(p []byte) string {
	if n := len(p); n > 0 && p[n-1] == 0 {
		return string(p[:n-1])
	}
	return string(p)
}

func (b *jsBridge) newHandle() uint32 { return jsUint32(b.call(bridgeNew)) }

func (b *jsBridge) deleteHandle(h uint32) { b.call(bridgeDelete, h) }

func (b *jsBridge) openBufferInit(h uint32, size, offset uint64) uint32 {
	return jsUint32(b.call(bridgeOpenBufferInit, h, float64(size), float64(offset)))
}

func (b *jsBridge) openBufferContinue(h uint32, p []byte) uint32 {
	arr := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(arr, p)
	return jsUint32(b.call(bridgeOpenBufferContinue, h, arr, len(p)))
}

func (b *jsBridge) gotoGetLower(h uint32) uint32 {
	return jsUint32(b.call(bridgeGotoGetLower, h))
}

func (b *jsBridge) gotoGetUpper(h uint32) uint32 {
	return jsUint32(b.call(bridgeGotoGetUpper, h))
}

func (b *jsBridge) openBufferFinalize(h uint32) uint32 {
	return jsUint32(b.call(bridgeOpenBufferFinalize, h))
}

func (b *jsBridge) countGet(h, kind, number uint32) uint32 {
	return jsUint32(b.call(bridgeCountGet, h, kind, number))
}

func (b *jsBridge) get(h, kind, number uint32, param []byte, info, search uint32) ([]byte, bool) {
	return b.jsString(b.call(bridgeGet, h, kind, number, cstring(param), info, search))
}

func (b *jsBridge) inform(h uint32) ([]byte, bool) {
	return b.jsString(b.call(bridgeInform, h))
}

func (b *jsBridge) option(h uint32, name, value []byte) ([]byte, bool) {
	return b.jsString(b.call(bridgeOption, h, cstring(name), cstring(value)))
}
