package gonpp

import "fmt"

var histogramFormats = []Format{Format8uC1, Format16uC1, Format16sC1}

// HistogramEvenBufferSize returns the scratch size HistogramEven needs.
func (img *Image) HistogramEvenBufferSize(sc *StreamContext,
	levels int) (int, error) {
	if err := img.usable(); err != nil {
		return 0, err
	}
	fn := symbol("nppiHistogramEvenGetBufferSize", img.format, "R")
	if err := requireFormat(fn, img.format, histogramFormats...); err != nil {
		return 0, err
	}
	l, sc, err := img.prepare(fn, sc)
	if err != nil {
		return 0, err
	}
	n, st := l.histogramEvenBufferSize(img.format, img.SizeROI(), levels, sc)
	return n, img.record(fn, st)
}

// HistogramEven counts the samples of a single channel ROI into levels-1
// bins of equal width between lower and upper. Bin i counts samples in
// [level[i], level[i+1]) where level is EvenLevels(levels, lower, upper).
func (img *Image) HistogramEven(sc *StreamContext, levels int, lower,
	upper int32, buf *DeviceBuffer) ([]int32, error) {
	if err := img.usable(); err != nil {
		return nil, err
	}
	fn := symbol("nppiHistogramEven", img.format, "R")
	if err := requireFormat(fn, img.format, histogramFormats...); err != nil {
		return nil, err
	}
	if levels < 2 || upper <= lower {
		return nil, fmt.Errorf("%w: %d levels in [%d, %d)",
			ErrInvalidArgument, levels, lower, upper)
	}
	res, err := img.reduce(sc, buf, reduction{
		fn: fn,
		size: func(sc *StreamContext) (int, error) {
			return img.HistogramEvenBufferSize(sc, levels)
		},
		outputs: []int{4 * (levels - 1)},
		run: func(l nativeLibrary, sc *StreamContext, buf DevicePtr,
			out []DevicePtr) Status {
			return l.histogramEven(img.format, img.roiPlane(), img.SizeROI(),
				out[0], levels, lower, upper, buf, sc)
		},
	})
	if err != nil {
		return nil, err
	}
	return int32s(res[0]), nil
}

// EvenLevels returns the levels boundaries HistogramEven uses, computed on
// the host by nppiEvenLevelsHost_32s.
func EvenLevels(levels int, lower, upper int32) ([]int32, error) {
	const fn = "nppiEvenLevelsHost_32s"
	if levels < 2 || upper <= lower {
		return nil, fmt.Errorf("%w: %d levels in [%d, %d)",
			ErrInvalidArgument, levels, lower, upper)
	}
	l, err := native(fn)
	if err != nil {
		return nil, err
	}
	out, st := l.evenLevels(levels, lower, upper)
	logCall(fn, st)
	if err := checkStatus(fn, st); err != nil {
		return nil, err
	}
	return out, nil
}
