package compare

import "errors"

// Frame is one decoded picture in a planar YUV layout. Only the first plane,
// luma, is compared.
type Frame struct {
	Data     [3][]byte
	LineSize [3]int
	Width    int
	Height   int
}

// Source yields decoded frames by index. The frame returned by Frame is only
// valid until the next call.
type Source interface {
	NumFrames() int
	Frame(index int) (*Frame, error)
}

// ErrNoVideoSupport is returned by OpenPair when the binary was built without
// the ffms2 tag.
var ErrNoVideoSupport = errors.New("compare: built without video support " +
	"(rebuild with -tags ffms2)")

// copyFrom copies src into f, growing the planes of f as needed.
func (f *Frame) copyFrom(src *Frame) {
	f.Width, f.Height = src.Width, src.Height
	for p := range f.Data {
		f.Data[p] = append(f.Data[p][:0], src.Data[p]...)
		f.LineSize[p] = src.LineSize[p]
	}
}
