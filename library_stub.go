//go:build !npp || !cgo

package gonpp

// Built without the npp tag: every native call reports ErrUnavailable.
func loadLibrary() nativeLibrary { return nil }
