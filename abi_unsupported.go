//go:build !cgo && !darwin && !linux && !freebsd && !js && !mediainfo_wasi

package mediainfo

import "fmt"

const compiledBackend = BackendNone

func loadBackend() error {
	return fmt.Errorf("%w: no backend for this platform (enable cgo or build with -tags mediainfo_wasi)", ErrLibraryNotAvailable)
}

func newSession() (session, error) {
	return nil, loadBackend()
}
