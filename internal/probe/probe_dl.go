//go:build linux || darwin

package probe

import (
	"errors"
	"fmt"

	"github.com/ebitengine/purego"
)

type libVersion struct {
	major, minor, build int32
}

func open(candidates []string) (uintptr, string, error) {
	var errs []error
	for _, name := range candidates {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_LOCAL)
		if err == nil {
			return h, name, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return 0, "", errors.New("no candidate libraries")
	}
	return 0, "", errors.Join(errs...)
}

func detect(npp, cudart []string) (Result, error) {
	h, name, err := open(npp)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer purego.Dlclose(h)

	var getLibVersion func() *libVersion
	if err := register(&getLibVersion, h, "nppGetLibVersion"); err != nil {
		return Result{}, fmt.Errorf("probe: %s: %w", name, err)
	}
	v := getLibVersion()
	if v == nil {
		return Result{}, fmt.Errorf("probe: %s: nppGetLibVersion returned "+
			"nil", name)
	}
	res := Result{
		Library: name,
		Major:   int(v.major),
		Minor:   int(v.minor),
		Build:   int(v.build),
	}

	rt, rtName, err := open(cudart)
	if err != nil {
		return res, nil
	}
	defer purego.Dlclose(rt)

	var runtimeGetVersion func(*int32) int32
	if err := register(&runtimeGetVersion, rt,
		"cudaRuntimeGetVersion"); err != nil {
		return res, nil
	}
	var version int32
	if runtimeGetVersion(&version) == 0 {
		res.RuntimeLibrary = rtName
		res.RuntimeVersion = int(version)
	}
	return res, nil
}

// register binds name in handle to fptr. RegisterLibFunc panics on a missing
// symbol.
func register(fptr any, handle uintptr, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", name, r)
		}
	}()
	purego.RegisterLibFunc(fptr, handle, name)
	return nil
}
