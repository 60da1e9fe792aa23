// Package mediainfo binds the MediaInfo/ZenLib media inspection library.
//
// Key pieces include:
//   - MediaInfo: one engine session (open, option, inform, count, get and
//     the buffer-streaming calls)
//   - File: an opened item with typed stream readers (General, Video, Audio,
//     Text, Other, Image, Menu)
//   - the wide-string codec used to talk to the engine's wchar_t ABI
//
// # Architecture
//
//	File -> typed readers (fields_gen.go) -> MediaInfo -> session -> backend
//	io.ReadSeeker -> OpenReader -> Open_Buffer_Init/Continue/GoTo_Get/Finalize
//
// # Backends
//
// One backend is compiled in, selected by build tags:
//   - cgo enabled: links against libmediainfo (-lmediainfo)
//   - cgo disabled on darwin, linux and freebsd: loads libmediainfo at run
//     time with purego
//   - js/wasm: calls a JavaScript host bridge (globalThis.mediainfoBridge)
//   - -tags mediainfo_wasi: runs a WASI build of the bridge module in wazero
//
// The host bridges exchange UTF-8 strings and cannot open paths, so OpenFile
// streams the file through OpenReader there.
//
// # Native Libraries
//
// The purego backend searches MEDIAINFO_LIB_PATH, then
// MEDIAINFO_SDK_LIB_PATH, the executable's directory, build/ directories
// relative to the working directory and module root, and finally the system
// library paths. The WASI backend looks for mediainfo-bridge.wasm the same
// way, starting at MEDIAINFO_WASM_PATH, and caches compiled code in
// MEDIAINFO_WASM_CACHE.
//
// # Errors
//
// Every error matches one of the Err* sentinels with errors.Is. A field the
// engine has no value for yields ErrZeroLengthResult; IsAbsent tests for it.
package mediainfo
