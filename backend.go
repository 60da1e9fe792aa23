package mediainfo

import "sync/atomic"

// Backend identifies how the engine is reached in the current build.
type Backend uint8

const (
	BackendNone   Backend = iota // No engine in this build
	BackendCgo                   // Linked against libmediainfo with cgo
	BackendPurego                // libmediainfo loaded at run time with purego
	BackendJS                    // JavaScript host bridge (js/wasm)
	BackendWASI                  // Bridge module hosted in wazero
	backendCount
)

// Transport is the calling convention a backend uses.
type Transport uint8

const (
	TransportDirect Transport = iota // C ABI, wchar_t strings, size_t counts
	TransportBridge                  // Host bridge, UTF-8 strings, 32-bit handles
)

func (t Transport) String() string {
	switch t {
	case TransportDirect:
		return "direct"
	case TransportBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// Features is a bitmask of backend capabilities.
type Features uint32

const (
	FeatureOpenPath      Features = 1 << iota // Open(path) reads from the file system
	FeatureWideStrings                        // Strings cross the boundary as wchar_t
	FeatureGotoGetHalves                      // Seek position is served as two 32-bit halves
)

// Has returns true if all specified features are supported.
func (f Features) Has(feature Features) bool { return f&feature == feature }

// backendMeta contains static metadata about a backend.
type backendMeta struct {
	Name      string
	Transport Transport
	Features  Features
	// countAll is the stream-number argument Count_Get takes to mean
	// "count the streams of this kind".
	countAll uint64
}

var backendInfo = [backendCount]backendMeta{
	BackendNone:   {"none", TransportDirect, 0, 0},
	BackendCgo:    {"cgo", TransportDirect, FeatureOpenPath | FeatureWideStrings, ^uint64(0)},
	BackendPurego: {"purego", TransportDirect, FeatureOpenPath | FeatureWideStrings, ^uint64(0)},
	BackendJS:     {"js-bridge", TransportBridge, FeatureGotoGetHalves, 0xFFFFFFFF},
	BackendWASI:   {"wasi-bridge", TransportBridge, FeatureGotoGetHalves, 0xFFFFFFFF},
}

// Set once the backend's library or bridge has been initialized.
var backendAvailable [backendCount]atomic.Bool

func (b Backend) String() string {
	if b >= backendCount {
		return "unknown"
	}
	return backendInfo[b].Name
}

// Transport returns the calling convention of the backend.
func (b Backend) Transport() Transport {
	if b >= backendCount {
		return TransportDirect
	}
	return backendInfo[b].Transport
}

// Features returns the backend's capability bitmask.
func (b Backend) Features() Features {
	if b >= backendCount {
		return 0
	}
	return backendInfo[b].Features
}

// Available returns true if the backend has been loaded successfully.
func (b Backend) Available() bool {
	if b >= backendCount {
		return false
	}
	return backendAvailable[b].Load()
}

func (b Backend) countAll() uint64 {
	if b >= backendCount {
		return 0
	}
	return backendInfo[b].countAll
}

func setBackendAvailable(b Backend) {
	if b < backendCount {
		backendAvailable[b].Store(true)
	}
}

// CompiledBackend returns the backend selected by build tags.
func CompiledBackend() Backend { return compiledBackend }

// IsAvailable loads the compiled-in backend if necessary and reports
// whether sessions can be created.
func IsAvailable() bool {
	return loadBackend() == nil
}
