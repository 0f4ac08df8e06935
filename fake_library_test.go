package gonpp

import (
	"encoding/binary"
	"math"
	"testing"
)

const fakeBase DevicePtr = 0x10000

type fakeCall struct {
	name string
	args []any
}

// fakeLibrary records every native call. Device memory is a flat host slice
// starting at fakeBase so pointer arithmetic and copies can be checked.
type fakeLibrary struct {
	nativeLibrary

	heap  []byte
	calls []fakeCall
	freed []DevicePtr

	// status is returned by every NPP method.
	status Status
	// bufferSize is returned by every scratch size query.
	bufferSize int
	// output is written to the result pointers of reductions, in order.
	output [][]byte
	// region is returned by floodFill.
	region ConnectedRegion
	// failAlloc makes every allocation fail.
	failAlloc bool
	// cudaCode is returned by runtime calls.
	cudaCode int
	// emitted holds the result pointers of every reduction, in call order.
	emitted []DevicePtr
}

func useFake(t *testing.T) *fakeLibrary {
	t.Helper()
	f := &fakeLibrary{}
	prev := lib
	lib = f
	t.Cleanup(func() { lib = prev })
	return f
}

func (f *fakeLibrary) record(name string, args ...any) {
	f.calls = append(f.calls, fakeCall{name, args})
}

// last returns the most recent call with the given name.
func (f *fakeLibrary) last(t *testing.T, name string) fakeCall {
	t.Helper()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i]
		}
	}
	t.Fatalf("no call to %s in %v", name, f.names())
	return fakeCall{}
}

func (f *fakeLibrary) names() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.name
	}
	return out
}

func (f *fakeLibrary) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

// alloc hands out 256 byte aligned blocks, like cudaMalloc.
func (f *fakeLibrary) alloc(n int) DevicePtr {
	pad := (256 - len(f.heap)%256) % 256
	f.heap = append(f.heap, make([]byte, pad)...)
	p := fakeBase + DevicePtr(len(f.heap))
	f.heap = append(f.heap, make([]byte, n)...)
	return p
}

func (f *fakeLibrary) at(p DevicePtr, n int) []byte {
	off := int(p - fakeBase)
	return f.heap[off : off+n]
}

func (f *fakeLibrary) emit(out ...DevicePtr) {
	f.emitted = append(f.emitted, out...)
	for i, p := range out {
		if i < len(f.output) {
			copy(f.at(p, len(f.output[i])), f.output[i])
		}
	}
}

func float64Bytes(vs ...float64) []byte {
	b := make([]byte, 8*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return b
}

func float32Bytes(vs ...float32) []byte {
	b := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	return b
}

func int32Bytes(vs ...int32) []byte {
	b := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(b[i*4:], uint32(v))
	}
	return b
}

func (f *fakeLibrary) version() Version { return Version{12, 3, 1} }

func (f *fakeLibrary) runtimeVersion() (int, int) { return 12030, f.cudaCode }
func (f *fakeLibrary) driverVersion() (int, int)  { return 12040, f.cudaCode }
func (f *fakeLibrary) deviceCount() (int, int)    { return 2, f.cudaCode }

func (f *fakeLibrary) setDevice(id int) int {
	f.record("setDevice", id)
	return f.cudaCode
}

func (f *fakeLibrary) deviceInfo(id int) (DeviceInfo, int) {
	return DeviceInfo{Name: "Fake GPU", VRAMSize: 8 << 30,
		MultiProcessorCount: 40, WarpSize: 32, ComputeMajor: 8,
		ComputeMinor: 6}, f.cudaCode
}

func (f *fakeLibrary) streamContext(stream uintptr) (StreamContext, int) {
	f.record("streamContext", stream)
	return StreamContext{Stream: stream, MultiProcessorCount: 40,
		MaxThreadsPerBlock: 1024}, f.cudaCode
}

func (f *fakeLibrary) synchronize(stream uintptr) int {
	f.record("synchronize", stream)
	return f.cudaCode
}

func (f *fakeLibrary) errorString(code int) string { return "fake failure" }

func (f *fakeLibrary) mallocImage(fm Format, width, height int) (DevicePtr,
	int, int) {
	if f.failAlloc {
		return 0, 0, 2
	}
	pitch := (width*fm.PixelSize() + 511) / 512 * 512
	f.record("mallocImage", fm, width, height)
	return f.alloc(pitch * height), pitch, 0
}

func (f *fakeLibrary) freeImage(p DevicePtr) {
	f.record("freeImage", p)
	f.freed = append(f.freed, p)
}

func (f *fakeLibrary) malloc(size int) DevicePtr {
	if f.failAlloc {
		return 0
	}
	f.record("malloc", size)
	return f.alloc(size)
}

func (f *fakeLibrary) free(p DevicePtr) {
	f.record("free", p)
	f.freed = append(f.freed, p)
}

func (f *fakeLibrary) copyToDevice(dst DevicePtr, src []byte,
	stream uintptr) int {
	f.record("copyToDevice", dst, len(src))
	copy(f.at(dst, len(src)), src)
	return f.cudaCode
}

func (f *fakeLibrary) copyToHost(dst []byte, src DevicePtr,
	stream uintptr) int {
	f.record("copyToHost", src, len(dst))
	copy(dst, f.at(src, len(dst)))
	return f.cudaCode
}

func (f *fakeLibrary) copy2DToDevice(dst plane, src []byte, srcPitch,
	rowBytes, rows int, stream uintptr) int {
	f.record("copy2DToDevice", dst, srcPitch, rowBytes, rows)
	for y := range rows {
		copy(f.at(dst.ptr.Offset(y*dst.step), rowBytes),
			src[y*srcPitch:y*srcPitch+rowBytes])
	}
	return f.cudaCode
}

func (f *fakeLibrary) copy2DToHost(dst []byte, dstPitch int, src plane,
	rowBytes, rows int, stream uintptr) int {
	f.record("copy2DToHost", src, dstPitch, rowBytes, rows)
	for y := range rows {
		copy(dst[y*dstPitch:y*dstPitch+rowBytes],
			f.at(src.ptr.Offset(y*src.step), rowBytes))
	}
	return f.cudaCode
}

func (f *fakeLibrary) copy(fm Format, src, dst plane, roi Size,
	sc *StreamContext) Status {
	f.record("copy", fm, src, dst, roi)
	return f.status
}

func (f *fakeLibrary) copyChannel(fm Format, src, dst plane, roi Size,
	sc *StreamContext) Status {
	f.record("copyChannel", fm, src, dst, roi)
	return f.status
}

func (f *fakeLibrary) extractChannel(fm Format, src, dst plane, roi Size,
	sc *StreamContext) Status {
	f.record("extractChannel", fm, src, dst, roi)
	return f.status
}

func (f *fakeLibrary) insertChannel(fm Format, src, dst plane, roi Size,
	sc *StreamContext) Status {
	f.record("insertChannel", fm, src, dst, roi)
	return f.status
}

func (f *fakeLibrary) set(fm Format, value [4]float64, dst plane, roi Size,
	sc *StreamContext) Status {
	f.record("set", fm, value, dst, roi)
	return f.status
}

func (f *fakeLibrary) convert(from, to Format, src, dst plane, roi Size,
	mode RoundMode, sc *StreamContext) Status {
	f.record("convert", from, to, src, dst, roi, mode)
	return f.status
}

func (f *fakeLibrary) swapChannels(fm Format, src, dst plane, roi Size,
	order [4]int, sc *StreamContext) Status {
	f.record("swapChannels", fm, src, dst, roi, order)
	return f.status
}

func (f *fakeLibrary) arithmetic(op arithOp, fm Format, src1, src2,
	dst plane, roi Size, scale int, sc *StreamContext) Status {
	f.record("arithmetic", op, fm, src1, src2, dst, roi, scale)
	return f.status
}

func (f *fakeLibrary) threshold(fm Format, src, dst plane, roi Size,
	level float64, op CmpOp, sc *StreamContext) Status {
	f.record("threshold", fm, src, dst, roi, level, op)
	return f.status
}

func (f *fakeLibrary) colorConvert(conv colorConversion, fm Format, src,
	dst plane, roi Size, sc *StreamContext) Status {
	f.record("colorConvert", conv, fm, src, dst, roi)
	return f.status
}

func (f *fakeLibrary) colorToGray(fm Format, src, dst plane, roi Size,
	coeffs [4]float32, sc *StreamContext) Status {
	f.record("colorToGray", fm, src, dst, roi, coeffs)
	return f.status
}

func (f *fakeLibrary) colorTwist(fm Format, src, dst plane, roi Size,
	twist [3][4]float32, sc *StreamContext) Status {
	f.record("colorTwist", fm, src, dst, roi, twist)
	return f.status
}

func (f *fakeLibrary) resize(fm Format, src plane, srcSize Size, srcROI Rect,
	dst plane, dstSize Size, dstROI Rect, interp Interpolation,
	sc *StreamContext) Status {
	f.record("resize", fm, src, srcSize, srcROI, dst, dstSize, dstROI, interp)
	return f.status
}

func (f *fakeLibrary) mirror(fm Format, src, dst plane, roi Size, axis Axis,
	sc *StreamContext) Status {
	f.record("mirror", fm, src, dst, roi, axis)
	return f.status
}

func (f *fakeLibrary) warpAffine(fm Format, src plane, srcSize Size,
	srcROI Rect, dst plane, dstROI Rect, coeffs [2][3]float64,
	interp Interpolation, sc *StreamContext) Status {
	f.record("warpAffine", fm, src, srcSize, srcROI, dst, dstROI, coeffs,
		interp)
	return f.status
}

func (f *fakeLibrary) warpPerspective(fm Format, src plane, srcSize Size,
	srcROI Rect, dst plane, dstROI Rect, coeffs [3][3]float64,
	interp Interpolation, sc *StreamContext) Status {
	f.record("warpPerspective", fm, src, srcSize, srcROI, dst, dstROI, coeffs,
		interp)
	return f.status
}

func (f *fakeLibrary) rotate(fm Format, src plane, srcSize Size, srcROI Rect,
	dst plane, dstROI Rect, angle, shiftX, shiftY float64,
	interp Interpolation, sc *StreamContext) Status {
	f.record("rotate", fm, src, srcSize, srcROI, dst, dstROI, angle, shiftX,
		shiftY, interp)
	return f.status
}

func (f *fakeLibrary) rotateBound(srcROI Rect, angle, shiftX,
	shiftY float64) ([2][2]float64, Status) {
	f.record("rotateBound", srcROI, angle, shiftX, shiftY)
	return [2][2]float64{{-1, -2}, {3, 4}}, f.status
}

func (f *fakeLibrary) affineBound(srcROI Rect,
	coeffs [2][3]float64) ([2][2]float64, Status) {
	f.record("affineBound", srcROI, coeffs)
	return [2][2]float64{{0, 0}, {5, 6}}, f.status
}

func (f *fakeLibrary) filterBox(fm Format, src plane, srcSize Size,
	srcOffset Point, dst plane, roi Size, mask Size, anchor Point,
	border BorderType, sc *StreamContext) Status {
	f.record("filterBox", fm, src, srcSize, srcOffset, dst, roi, mask, anchor,
		border)
	return f.status
}

func (f *fakeLibrary) filterGauss(fm Format, src plane, srcSize Size,
	srcOffset Point, dst plane, roi Size, mask MaskSize, border BorderType,
	sc *StreamContext) Status {
	f.record("filterGauss", fm, src, srcSize, srcOffset, dst, roi, mask,
		border)
	return f.status
}

func (f *fakeLibrary) filterSobel(fm Format, dir SobelDirection, src plane,
	srcSize Size, srcOffset Point, dst plane, roi Size, border BorderType,
	sc *StreamContext) Status {
	f.record("filterSobel", fm, dir, src, srcSize, srcOffset, dst, roi,
		border)
	return f.status
}

func (f *fakeLibrary) filterMedianBufferSize(fm Format, roi Size, mask Size,
	sc *StreamContext) (int, Status) {
	f.record("filterMedianBufferSize", fm, roi, mask)
	return f.bufferSize, f.status
}

func (f *fakeLibrary) filterMedian(fm Format, src, dst plane, roi Size,
	mask Size, anchor Point, buf DevicePtr, sc *StreamContext) Status {
	f.record("filterMedian", fm, src, dst, roi, mask, anchor, buf)
	return f.status
}

func (f *fakeLibrary) morphology(op morphOp, fm Format, src plane,
	srcSize Size, srcOffset Point, dst plane, roi Size, mask DevicePtr,
	maskSize Size, anchor Point, border BorderType, sc *StreamContext) Status {
	f.record("morphology", op, fm, src, srcSize, srcOffset, dst, roi,
		f.at(mask, maskSize.Width*maskSize.Height), maskSize, anchor, border)
	return f.status
}

func (f *fakeLibrary) morphology3x3(op morphOp, fm Format, src, dst plane,
	roi Size, sc *StreamContext) Status {
	f.record("morphology3x3", op, fm, src, dst, roi)
	return f.status
}

func (f *fakeLibrary) statisticBufferSize(stat Statistic, fm Format,
	roi Size, sc *StreamContext) (int, Status) {
	f.record("statisticBufferSize", stat, fm, roi)
	return f.bufferSize, f.status
}

func (f *fakeLibrary) sum(fm Format, src plane, roi Size, buf, out DevicePtr,
	sc *StreamContext) Status {
	f.record("sum", fm, src, roi, buf)
	f.emit(out)
	return f.status
}

func (f *fakeLibrary) mean(fm Format, src plane, roi Size, buf,
	out DevicePtr, sc *StreamContext) Status {
	f.record("mean", fm, src, roi, buf)
	f.emit(out)
	return f.status
}

func (f *fakeLibrary) meanStdDev(fm Format, src plane, roi Size, buf, mean,
	stdDev DevicePtr, sc *StreamContext) Status {
	f.record("meanStdDev", fm, src, roi, buf)
	f.emit(mean, stdDev)
	return f.status
}

func (f *fakeLibrary) minMax(fm Format, src plane, roi Size, min, max,
	buf DevicePtr, sc *StreamContext) Status {
	f.record("minMax", fm, src, roi, buf)
	f.emit(min, max)
	return f.status
}

func (f *fakeLibrary) minMaxIndex(fm Format, src plane, roi Size, minVal,
	maxVal, minIdx, maxIdx, buf DevicePtr, sc *StreamContext) Status {
	f.record("minMaxIndex", fm, src, roi, buf)
	f.emit(minVal, maxVal, minIdx, maxIdx)
	return f.status
}

func (f *fakeLibrary) norm(kind Norm, fm Format, src plane, roi Size, out,
	buf DevicePtr, sc *StreamContext) Status {
	f.record("norm", kind, fm, src, roi, buf)
	f.emit(out)
	return f.status
}

func (f *fakeLibrary) normDiff(kind Norm, fm Format, src1, src2 plane,
	roi Size, out, buf DevicePtr, sc *StreamContext) Status {
	f.record("normDiff", kind, fm, src1, src2, roi, buf)
	f.emit(out)
	return f.status
}

func (f *fakeLibrary) histogramEvenBufferSize(fm Format, roi Size,
	levels int, sc *StreamContext) (int, Status) {
	f.record("histogramEvenBufferSize", fm, roi, levels)
	return f.bufferSize, f.status
}

func (f *fakeLibrary) histogramEven(fm Format, src plane, roi Size,
	hist DevicePtr, levels int, lower, upper int32, buf DevicePtr,
	sc *StreamContext) Status {
	f.record("histogramEven", fm, src, roi, levels, lower, upper, buf)
	f.emit(hist)
	return f.status
}

func (f *fakeLibrary) evenLevels(levels int, lower,
	upper int32) ([]int32, Status) {
	f.record("evenLevels", levels, lower, upper)
	out := make([]int32, levels)
	for i := range out {
		out[i] = lower + int32(i)*(upper-lower)/int32(levels-1)
	}
	return out, f.status
}

func (f *fakeLibrary) qualityBufferSize(m QualityMetric, fm Format, roi Size,
	sc *StreamContext) (int, Status) {
	f.record("qualityBufferSize", m, fm, roi)
	return f.bufferSize, f.status
}

func (f *fakeLibrary) quality(m QualityMetric, fm Format, src1, src2 plane,
	roi Size, out, buf DevicePtr, sc *StreamContext) Status {
	f.record("quality", m, fm, src1, src2, roi, buf)
	f.emit(out)
	return f.status
}

func (f *fakeLibrary) floodFillBufferSize(roi Size) (int, Status) {
	f.record("floodFillBufferSize", roi)
	return f.bufferSize, f.status
}

func (f *fakeLibrary) floodFill(srcDst plane, seed Point, value uint8,
	norm Norm, roi Size, buf DevicePtr,
	sc *StreamContext) (ConnectedRegion, Status) {
	f.record("floodFill", srcDst, seed, value, norm, roi, buf)
	return f.region, f.status
}

func (f *fakeLibrary) labelMarkersBufferSize(roi Size) (int, Status) {
	f.record("labelMarkersBufferSize", roi)
	return f.bufferSize, f.status
}

func (f *fakeLibrary) labelMarkers(src, dst plane, roi Size, norm Norm,
	buf DevicePtr, sc *StreamContext) Status {
	f.record("labelMarkers", src, dst, roi, norm, buf)
	return f.status
}

// withoutLibrary simulates a build without NPP support.
func withoutLibrary(t *testing.T) {
	t.Helper()
	prev := lib
	lib = nil
	t.Cleanup(func() { lib = prev })
}

func newTestImage(t *testing.T, f Format, width, height int) *Image {
	t.Helper()
	img, err := NewImage(f, width, height)
	if err != nil {
		t.Fatalf("NewImage(%s, %d, %d): %v", f, width, height, err)
	}
	t.Cleanup(func() { img.Close() })
	return img
}
