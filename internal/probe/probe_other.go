//go:build !linux && !darwin

package probe

func detect(npp, cudart []string) (Result, error) {
	return Result{}, ErrNotFound
}
