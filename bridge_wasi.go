//go:build mediainfo_wasi && !js

// Host bridge served by a WASI build of the bridge module, run in wazero.
//
// Expected exports (pointers and handles are i32):
//
//	malloc(size) ptr, free(ptr), mediainfo_free_string(ptr)
//	initMediaInfo() i32                      optional, 0 means failure
//	mediainfo_new() h, mediainfo_delete(h)
//	mediainfo_open_buffer_init(h, size i64, offset i64) i32
//	mediainfo_open_buffer_continue(h, ptr, len) i32
//	mediainfo_open_buffer_continue_goto_get_lower(h) i32
//	mediainfo_open_buffer_continue_goto_get_upper(h) i32
//	mediainfo_open_buffer_finalize(h) i32
//	mediainfo_count_get(h, kind, number) i32
//	mediainfo_get(h, kind, number, param ptr, info, search) ptr
//	mediainfo_inform(h) ptr
//	mediainfo_option(h, name ptr, value ptr) ptr

package mediainfo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"
)

const compiledBackend = BackendWASI

const wasmModuleName = "mediainfo-bridge.wasm"

// wasiBridge owns the single module instance. A WASM instance is not
// re-entrant, so every call holds mu.
type wasiBridge struct {
	mu  sync.Mutex
	rt  wazero.Runtime
	mod api.Module
}

var getWASIBridge = sync.OnceValues(func() (*wasiBridge, error) {
	b, err := startWASIBridge(context.Background())
	if err != nil {
		Logger().Debug("wasi bridge unavailable", zap.Error(err))
		return nil, err
	}
	setBackendAvailable(BackendWASI)
	return b, nil
})

func loadBackend() error {
	if _, err := getWASIBridge(); err != nil {
		return fmt.Errorf("%w: %v", ErrLibraryNotAvailable, err)
	}
	return nil
}

func newSession() (session, error) {
	b, err := getWASIBridge()
	if err != nil {
		return nil, err
	}
	return newBridgeSession(b, BackendWASI)
}

func wasmModulePaths() []string {
	return searchPaths(wasmModuleName, "MEDIAINFO_WASM_PATH", "MEDIAINFO_SDK_LIB_PATH")
}

func startWASIBridge(ctx context.Context) (*wasiBridge, error) {
	paths := wasmModulePaths()
	path := firstExisting(paths)
	logSearch(wasmModuleName, paths, path)
	if path == "" {
		return nil, errors.New(wasmModuleName + " not found in any standard location")
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bridge module: %w", err)
	}

	cacheDir := os.Getenv("MEDIAINFO_WASM_CACHE")
	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "go-mediainfo-wasm")
	}
	cfg := wazero.NewRuntimeConfig()
	if cache, err := wazero.NewCompilationCacheWithDir(cacheDir); err == nil {
		cfg = cfg.WithCompilationCache(cache)
	} else {
		Logger().Warn("compilation cache disabled", zap.String("dir", cacheDir), zap.Error(err))
	}

	rt := wazero.NewRuntimeWithConfig(ctx, cfg)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)

	compiled, err := rt.CompileModule(ctx, bin)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("compile bridge module: %w", err)
	}

	start := []string{}
	if _, ok := compiled.ExportedFunctions()["_initialize"]; ok {
		start = append(start, "_initialize")
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().
		WithName("").
		WithStartFunctions(start...))
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("instantiate bridge module: %w", err)
	}

	var missing []string
	for _, name := range append([]string{"malloc", "free", bridgeFreeString}, bridgeFunctions...) {
		if mod.ExportedFunction(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		rt.Close(ctx)
		return nil, fmt.Errorf("bridge module is missing exports %v", missing)
	}

	b := &wasiBridge{rt: rt, mod: mod}
	if fn := mod.ExportedFunction(bridgeInit); fn != nil {
		res, err := fn.Call(ctx)
		if err != nil {
			rt.Close(ctx)
			return nil, fmt.Errorf("%s: %w", bridgeInit, err)
		}
		if len(res) > 0 && res[0] == 0 {
			rt.Close(ctx)
			return nil, fmt.Errorf("%s reported failure", bridgeInit)
		}
	}
	Logger().Info("wasi bridge ready", zap.String("module", path), zap.String("cache", cacheDir))
	return b, nil
}

// call invokes an export and returns its first result, or 0 when the call
// trapped. Callers hold b.mu.
func (b *wasiBridge) call(name string, params ...uint64) uint64 {
	res, err := b.mod.ExportedFunction(name).Call(context.Background(), params...)
	if err != nil {
		Logger().Error("bridge call failed", zap.String("func", name), zap.Error(err))
		return 0
	}
	if len(res) == 0 {
		return 0
	}
	return res[0]
}

func (b *wasiBridge) malloc(size uint32) (uint32, bool) {
	if size == 0 {
		size = 1
	}
	ptr := uint32(b.call("malloc", uint64(size)))
	return ptr, ptr != 0
}

func (b *wasiBridge) free(ptr uint32) {
	if ptr != 0 {
		b.call("free", uint64(ptr))
	}
}

// put copies p into guest memory. The caller frees the returned pointer.
func (b *wasiBridge) put(p []byte) (uint32, bool) {
	ptr, ok := b.malloc(uint32(len(p)))
	if !ok {
		return 0, false
	}
	if !b.mod.Memory().Write(ptr, p) {
		b.free(ptr)
		return 0, false
	}
	return ptr, true
}

// takeString reads the NUL-terminated string at ptr and releases it with
// the bridge's free function.
func (b *wasiBridge) takeString(ptr uint32) ([]byte, bool) {
	if ptr == 0 {
		return nil, false
	}
	defer b.call(bridgeFreeString, uint64(ptr))

	mem := b.mod.Memory()
	size := uint32(64)
	var out []byte
	for off := ptr; ; off += size {
		if off+size > mem.Size() {
			size = mem.Size() - off
		}
		if size == 0 {
			return nil, false
		}
		chunk, ok := mem.Read(off, size)
		if !ok {
			return nil, false
		}
		if i := bytes.IndexByte(chunk, 0); i >= 0 {
			return append(out, chunk[:i]...), true
		}
		out = append(out, chunk...)
	}
}

func (b *wasiBridge) newHandle() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return uint32(b.call(bridgeNew))
}

func (b *wasiBridge) deleteHandle(h uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.call(bridgeDelete, uint64(h))
}

func (b *wasiBridge) openBufferInit(h uint32, size, offset uint64) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return uint32(b.call(bridgeOpenBufferInit, uint64(h), size, offset))
}

func (b *wasiBridge) openBufferContinue(h uint32, p []byte) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	ptr, ok := b.put(p)
	if !ok {
		return 0
	}
	defer b.free(ptr)
	return uint32(b.call(bridgeOpenBufferContinue, uint64(h), uint64(ptr), uint64(len(p))))
}

func (b *wasiBridge) gotoGetLower(h uint32) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return uint32(b.call(bridgeGotoGetLower, uint64(h)))
}

func (b *wasiBridge) gotoGetUpper(h uint32) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return uint32(b.call(bridgeGotoGetUpper, uint64(h)))
}

func (b *wasiBridge) openBufferFinalize(h uint32) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return uint32(b.call(bridgeOpenBufferFinalize, uint64(h)))
}

func (b *wasiBridge) countGet(h, kind, number uint32) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return uint32(b.call(bridgeCountGet, uint64(h), uint64(kind), uint64(number)))
}

func (b *wasiBridge) get(h, kind, number uint32, param []byte, info, search uint32) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	pp, ok := b.put(param)
	if !ok {
		return nil, false
	}
	defer b.free(pp)
	ptr := uint32(b.call(bridgeGet, uint64(h), uint64(kind), uint64(number), uint64(pp), uint64(info), uint64(search)))
	return b.takeString(ptr)
}

func (b *wasiBridge) inform(h uint32) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.takeString(uint32(b.call(bridgeInform, uint64(h))))
}

func (b *wasiBridge) option(h uint32, name, value []byte) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	np, ok := b.put(name)
	if !ok {
		return nil, false
	}
	defer b.free(np)
	vp, ok := b.put(value)
	if !ok {
		return nil, false
	}
	defer b.free(vp)
	return b.takeString(uint32(b.call(bridgeOption, uint64(h), uint64(np), uint64(vp))))
}
