//go:build !ffms2

package compare

// OpenPair is unavailable without the ffms2 build tag.
func OpenPair(pathA, pathB string) (Source, Source, error) {
	return nil, nil, ErrNoVideoSupport
}
