package gonpp

import "fmt"

// Statistic names a reduction whose scratch size can be queried with
// StatisticBufferSize.
type Statistic int

const (
	StatisticSum Statistic = iota
	StatisticMean
	StatisticMeanStdDev
	StatisticMinMax
	StatisticMinMaxIndex
	StatisticNormInf
	StatisticNormL1
	StatisticNormL2
	StatisticNormDiffInf
	StatisticNormDiffL1
	StatisticNormDiffL2
)

func normStatistic(kind Norm, base Statistic) Statistic {
	if kind < NormInf || kind > NormL2 {
		return -1
	}
	return base + Statistic(kind)
}

var (
	reduceFormats = []Format{
		Format8uC1, Format8uC3, Format8uC4,
		Format16uC1, Format16uC3, Format16uC4,
		Format16sC1, Format16sC3, Format16sC4,
		Format32fC1, Format32fC3, Format32fC4,
	}
	singleFormats = []Format{Format8uC1, Format16uC1, Format32fC1}
)

type statisticInfo struct {
	op      string
	query   string
	formats []Format
}

var statistics = map[Statistic]statisticInfo{
	StatisticSum:         {"nppiSum", "nppiSumGetBufferHostSize", reduceFormats},
	StatisticMean:        {"nppiMean", "nppiMeanGetBufferHostSize", reduceFormats},
	StatisticMeanStdDev:  {"nppiMean_StdDev", "nppiMeanStdDevGetBufferHostSize", singleFormats},
	StatisticMinMax:      {"nppiMinMax", "nppiMinMaxGetBufferHostSize", reduceFormats},
	StatisticMinMaxIndex: {"nppiMinMaxIndx", "nppiMinMaxIndxGetBufferHostSize", singleFormats},
	StatisticNormInf:     {"nppiNorm_Inf", "nppiNormInfGetBufferHostSize", reduceFormats},
	StatisticNormL1:      {"nppiNorm_L1", "nppiNormL1GetBufferHostSize", reduceFormats},
	StatisticNormL2:      {"nppiNorm_L2", "nppiNormL2GetBufferHostSize", reduceFormats},
	StatisticNormDiffInf: {"nppiNormDiff_Inf", "nppiNormDiffInfGetBufferHostSize", singleFormats},
	StatisticNormDiffL1:  {"nppiNormDiff_L1", "nppiNormDiffL1GetBufferHostSize", singleFormats},
	StatisticNormDiffL2:  {"nppiNormDiff_L2", "nppiNormDiffL2GetBufferHostSize", singleFormats},
}

func (s Statistic) info() (statisticInfo, error) {
	i, ok := statistics[s]
	if !ok {
		return statisticInfo{}, fmt.Errorf("%w: statistic %d",
			ErrInvalidArgument, int(s))
	}
	return i, nil
}

// StatisticBufferSize returns the scratch size stat needs for the current ROI
// and format.
func (img *Image) StatisticBufferSize(sc *StreamContext,
	stat Statistic) (int, error) {
	if err := img.usable(); err != nil {
		return 0, err
	}
	info, err := stat.info()
	if err != nil {
		return 0, err
	}
	fn := symbol(info.query, img.format, "R")
	if err := requireFormat(fn, img.format, info.formats...); err != nil {
		return 0, err
	}
	l, sc, err := img.prepare(fn, sc)
	if err != nil {
		return 0, err
	}
	n, st := l.statisticBufferSize(stat, img.format, img.SizeROI(), sc)
	return n, img.record(fn, st)
}

// reduction describes a call that needs a scratch buffer and writes its
// results to device memory.
type reduction struct {
	fn string
	// size queries the scratch size.
	size func(sc *StreamContext) (int, error)
	// outputs are the byte lengths of the device results, in call order.
	outputs []int
	run     func(l nativeLibrary, sc *StreamContext, buf DevicePtr,
		out []DevicePtr) Status
}

// reduce queries the scratch size, obtains scratch and result memory, runs
// the call and copies the results back to the host.
func (img *Image) reduce(sc *StreamContext, buf *DeviceBuffer,
	r reduction) ([][]byte, error) {
	l, sc, err := img.prepare(r.fn, sc)
	if err != nil {
		return nil, err
	}
	size, err := r.size(sc)
	if err != nil {
		return nil, err
	}
	b, release, err := scratch(buf, size)
	if err != nil {
		return nil, err
	}
	defer release()

	offsets, total := resultLayout(r.outputs)
	results, err := NewDeviceBuffer(total)
	if err != nil {
		return nil, err
	}
	defer results.Close()
	ptrs := make([]DevicePtr, len(r.outputs))
	for i, off := range offsets {
		ptrs[i] = results.ptr.Offset(off)
	}

	if err := img.record(r.fn, r.run(l, sc, b.ptr, ptrs)); err != nil {
		return nil, err
	}
	host := make([]byte, total)
	if err := results.Download(sc, host); err != nil {
		return nil, err
	}
	out := make([][]byte, len(r.outputs))
	for i, n := range r.outputs {
		out[i] = host[offsets[i] : offsets[i]+n]
	}
	return out, nil
}

// resultAlign is the alignment of every reduction output inside the shared
// result buffer. It covers the widest result type NPP writes (Npp64f).
const resultAlign = 8

// resultLayout places outputs of the given byte lengths one after another,
// each starting on a resultAlign boundary.
func resultLayout(sizes []int) (offsets []int, total int) {
	offsets = make([]int, len(sizes))
	for i, n := range sizes {
		total = (total + resultAlign - 1) &^ (resultAlign - 1)
		offsets[i] = total
		total += n
	}
	return offsets, total
}

// statistic builds a reduction for stat on img's format.
func (img *Image) statistic(stat Statistic,
	outputs ...int) (reduction, error) {
	info, err := stat.info()
	if err != nil {
		return reduction{}, err
	}
	fn := symbol(info.op, img.format, "R")
	if err := requireFormat(fn, img.format, info.formats...); err != nil {
		return reduction{}, err
	}
	return reduction{
		fn: fn,
		size: func(sc *StreamContext) (int, error) {
			return img.StatisticBufferSize(sc, stat)
		},
		outputs: outputs,
	}, nil
}

// Sum returns the per-channel sum of the ROI.
func (img *Image) Sum(sc *StreamContext, buf *DeviceBuffer) ([]float64,
	error) {
	if err := img.usable(); err != nil {
		return nil, err
	}
	r, err := img.statistic(StatisticSum, 8*img.format.Channels())
	if err != nil {
		return nil, err
	}
	r.run = func(l nativeLibrary, sc *StreamContext, buf DevicePtr,
		out []DevicePtr) Status {
		return l.sum(img.format, img.roiPlane(), img.SizeROI(), buf, out[0],
			sc)
	}
	res, err := img.reduce(sc, buf, r)
	if err != nil {
		return nil, err
	}
	return float64s(res[0]), nil
}

// Mean returns the per-channel mean of the ROI.
func (img *Image) Mean(sc *StreamContext, buf *DeviceBuffer) ([]float64,
	error) {
	if err := img.usable(); err != nil {
		return nil, err
	}
	r, err := img.statistic(StatisticMean, 8*img.format.Channels())
	if err != nil {
		return nil, err
	}
	r.run = func(l nativeLibrary, sc *StreamContext, buf DevicePtr,
		out []DevicePtr) Status {
		return l.mean(img.format, img.roiPlane(), img.SizeROI(), buf, out[0],
			sc)
	}
	res, err := img.reduce(sc, buf, r)
	if err != nil {
		return nil, err
	}
	return float64s(res[0]), nil
}

// MeanStdDev returns the mean and standard deviation of a single channel ROI.
func (img *Image) MeanStdDev(sc *StreamContext, buf *DeviceBuffer) (mean,
	stdDev float64, err error) {
	if err := img.usable(); err != nil {
		return 0, 0, err
	}
	r, err := img.statistic(StatisticMeanStdDev, 8, 8)
	if err != nil {
		return 0, 0, err
	}
	r.run = func(l nativeLibrary, sc *StreamContext, buf DevicePtr,
		out []DevicePtr) Status {
		return l.meanStdDev(img.format, img.roiPlane(), img.SizeROI(), buf,
			out[0], out[1], sc)
	}
	res, err := img.reduce(sc, buf, r)
	if err != nil {
		return 0, 0, err
	}
	return float64s(res[0])[0], float64s(res[1])[0], nil
}

// MinMax returns the per-channel minimum and maximum of the ROI.
func (img *Image) MinMax(sc *StreamContext, buf *DeviceBuffer) (min,
	max []float64, err error) {
	if err := img.usable(); err != nil {
		return nil, nil, err
	}
	n := img.format.Channels()
	bytes := n * img.format.DataType().ElementSize()
	r, err := img.statistic(StatisticMinMax, bytes, bytes)
	if err != nil {
		return nil, nil, err
	}
	r.run = func(l nativeLibrary, sc *StreamContext, buf DevicePtr,
		out []DevicePtr) Status {
		return l.minMax(img.format, img.roiPlane(), img.SizeROI(), out[0],
			out[1], buf, sc)
	}
	res, err := img.reduce(sc, buf, r)
	if err != nil {
		return nil, nil, err
	}
	t := img.format.DataType()
	return samples(t, res[0], n), samples(t, res[1], n), nil
}

// Extremum is a value together with the first position it occurs at,
// relative to the ROI origin.
type Extremum struct {
	Value float64
	At    Point
}

// MinMaxIndex returns the minimum and maximum of a single channel ROI and
// where they first occur.
func (img *Image) MinMaxIndex(sc *StreamContext, buf *DeviceBuffer) (min,
	max Extremum, err error) {
	if err := img.usable(); err != nil {
		return Extremum{}, Extremum{}, err
	}
	es := img.format.DataType().ElementSize()
	r, err := img.statistic(StatisticMinMaxIndex, es, es, 8, 8)
	if err != nil {
		return Extremum{}, Extremum{}, err
	}
	r.run = func(l nativeLibrary, sc *StreamContext, buf DevicePtr,
		out []DevicePtr) Status {
		return l.minMaxIndex(img.format, img.roiPlane(), img.SizeROI(),
			out[0], out[1], out[2], out[3], buf, sc)
	}
	res, err := img.reduce(sc, buf, r)
	if err != nil {
		return Extremum{}, Extremum{}, err
	}
	t := img.format.DataType()
	minAt, maxAt := int32s(res[2]), int32s(res[3])
	min = Extremum{samples(t, res[0], 1)[0],
		Point{int(minAt[0]), int(minAt[1])}}
	max = Extremum{samples(t, res[1], 1)[0],
		Point{int(maxAt[0]), int(maxAt[1])}}
	return min, max, nil
}

// Norm returns the per-channel norm of the ROI.
func (img *Image) Norm(sc *StreamContext, kind Norm,
	buf *DeviceBuffer) ([]float64, error) {
	if err := img.usable(); err != nil {
		return nil, err
	}
	r, err := img.statistic(normStatistic(kind, StatisticNormInf),
		8*img.format.Channels())
	if err != nil {
		return nil, err
	}
	r.run = func(l nativeLibrary, sc *StreamContext, buf DevicePtr,
		out []DevicePtr) Status {
		return l.norm(kind, img.format, img.roiPlane(), img.SizeROI(), out[0],
			buf, sc)
	}
	res, err := img.reduce(sc, buf, r)
	if err != nil {
		return nil, err
	}
	return float64s(res[0]), nil
}

// NormDiff returns the norm of img - other over the ROI of two single channel
// images.
func (img *Image) NormDiff(sc *StreamContext, other *Image, kind Norm,
	buf *DeviceBuffer) (float64, error) {
	if err := img.usable(); err != nil {
		return 0, err
	}
	r, err := img.statistic(normStatistic(kind, StatisticNormDiffInf), 8)
	if err != nil {
		return 0, err
	}
	if err := img.sameOperand(r.fn, other); err != nil {
		return 0, err
	}
	r.run = func(l nativeLibrary, sc *StreamContext, buf DevicePtr,
		out []DevicePtr) Status {
		return l.normDiff(kind, img.format, img.roiPlane(), other.roiPlane(),
			img.SizeROI(), out[0], buf, sc)
	}
	res, err := img.reduce(sc, buf, r)
	if err != nil {
		return 0, err
	}
	return float64s(res[0])[0], nil
}

// sameOperand checks that other can be read alongside img's ROI.
func (img *Image) sameOperand(fn string, other *Image) error {
	if err := other.usable(); err != nil {
		return err
	}
	if other.format != img.format {
		return fmt.Errorf("%w: %s: operands are %s and %s",
			ErrUnsupportedFormat, fn, img.format, other.format)
	}
	return fitsROI(img, other)
}
