package mediainfo

// session is one engine instance as seen through a single backend. Adapters
// return strings exactly as the engine produced them: the empty-result rule
// is applied by MediaInfo so every backend behaves the same.
type session interface {
	open(path string) (int, error)
	close()
	option(name, value string) (string, error)
	inform() (string, error)
	countGet(kind StreamKind) int
	get(kind StreamKind, n int, param string, info, search InfoKind) (string, error)

	openBufferInit(size, offset uint64) uint64
	openBufferContinue(p []byte) uint64
	openBufferContinueGotoGet() uint64
	openBufferContinueGotoGetLower() uint32
	openBufferContinueGotoGetUpper() uint32
	openBufferFinalize() uint64

	delete()
}
