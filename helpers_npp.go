//go:build npp && cgo

package gonpp

import "unsafe"

// hostPtr returns a pointer to the first byte of b for a native copy, or nil
// for an empty slice.
func hostPtr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return nil
	}
	return unsafe.Pointer(&b[0])
}
