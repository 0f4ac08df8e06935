// Package probe detects an installed NPP runtime without linking against it,
// so builds without native support can still report what the machine has.
package probe

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when none of the candidate libraries can be loaded.
var ErrNotFound = errors.New("probe: NPP runtime not found")

// nppLibraries lists sonames tried in order, newest first.
var nppLibraries = []string{
	"libnppc.so",
	"libnppc.so.13",
	"libnppc.so.12",
	"libnppc.so.11",
}

var cudartLibraries = []string{
	"libcudart.so",
	"libcudart.so.13",
	"libcudart.so.12",
	"libcudart.so.11.0",
}

// Result describes the runtime found on this machine.
type Result struct {
	Library        string
	Major          int
	Minor          int
	Build          int
	RuntimeLibrary string
	// RuntimeVersion is the CUDA runtime version as 1000*major+10*minor, or
	// 0 when libcudart could not be loaded.
	RuntimeVersion int
}

func (r Result) String() string {
	s := fmt.Sprintf("NPP %d.%d.%d (%s)", r.Major, r.Minor, r.Build,
		r.Library)
	if r.RuntimeVersion > 0 {
		s += fmt.Sprintf(", CUDA runtime %d.%d (%s)", r.RuntimeVersion/1000,
			r.RuntimeVersion%1000/10, r.RuntimeLibrary)
	}
	return s
}

// Detect loads the first NPP core library it can find and reads its version.
func Detect() (Result, error) {
	return detect(nppLibraries, cudartLibraries)
}
