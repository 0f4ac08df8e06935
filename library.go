package gonpp

// plane is a device pointer together with the row pitch of the image it
// belongs to. Depending on the entry point the pointer is either the image
// origin or the ROI origin.
type plane struct {
	ptr  DevicePtr
	step int
}

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
	opAbsDiff
)

func (o arithOp) name() string {
	return [...]string{"nppiAdd", "nppiSub", "nppiMul", "nppiAbsDiff"}[o]
}

type colorConversion int

const (
	convRGBToGray colorConversion = iota
	convRGBToYUV
	convYUVToRGB
	convRGBToYCbCr
	convYCbCrToRGB
	convRGBToHSV
	convHSVToRGB
)

func (c colorConversion) name() string {
	return [...]string{"nppiRGBToGray", "nppiRGBToYUV", "nppiYUVToRGB",
		"nppiRGBToYCbCr", "nppiYCbCrToRGB", "nppiRGBToHSV",
		"nppiHSVToRGB"}[c]
}

type morphOp int

const (
	morphDilate morphOp = iota
	morphErode
)

func (m morphOp) name() string {
	if m == morphErode {
		return "nppiErode"
	}
	return "nppiDilate"
}

// nativeLibrary is the set of native entry points the binding calls. Each
// method selects one NPP or CUDA runtime symbol from its format argument and
// forwards the already validated arguments unchanged.
//
// CUDA runtime methods return a raw cudaError_t value; NPP methods return a
// Status.
type nativeLibrary interface {
	version() Version
	runtimeVersion() (int, int)
	driverVersion() (int, int)
	deviceCount() (int, int)
	setDevice(id int) int
	deviceInfo(id int) (DeviceInfo, int)
	streamContext(stream uintptr) (StreamContext, int)
	synchronize(stream uintptr) int
	errorString(code int) string

	mallocImage(f Format, width, height int) (DevicePtr, int, int)
	freeImage(p DevicePtr)
	malloc(size int) DevicePtr
	free(p DevicePtr)
	copyToDevice(dst DevicePtr, src []byte, stream uintptr) int
	copyToHost(dst []byte, src DevicePtr, stream uintptr) int
	copy2DToDevice(dst plane, src []byte, srcPitch, rowBytes, rows int,
		stream uintptr) int
	copy2DToHost(dst []byte, dstPitch int, src plane, rowBytes, rows int,
		stream uintptr) int

	copy(f Format, src, dst plane, roi Size, sc *StreamContext) Status
	copyChannel(f Format, src, dst plane, roi Size, sc *StreamContext) Status
	extractChannel(f Format, src, dst plane, roi Size,
		sc *StreamContext) Status
	insertChannel(f Format, src, dst plane, roi Size,
		sc *StreamContext) Status
	set(f Format, value [4]float64, dst plane, roi Size,
		sc *StreamContext) Status
	convert(from, to Format, src, dst plane, roi Size, mode RoundMode,
		sc *StreamContext) Status
	swapChannels(f Format, src, dst plane, roi Size, order [4]int,
		sc *StreamContext) Status

	arithmetic(op arithOp, f Format, src1, src2, dst plane, roi Size,
		scale int, sc *StreamContext) Status
	threshold(f Format, src, dst plane, roi Size, level float64, op CmpOp,
		sc *StreamContext) Status

	colorConvert(conv colorConversion, f Format, src, dst plane, roi Size,
		sc *StreamContext) Status
	colorToGray(f Format, src, dst plane, roi Size, coeffs [4]float32,
		sc *StreamContext) Status
	colorTwist(f Format, src, dst plane, roi Size, twist [3][4]float32,
		sc *StreamContext) Status

	resize(f Format, src plane, srcSize Size, srcROI Rect, dst plane,
		dstSize Size, dstROI Rect, interp Interpolation,
		sc *StreamContext) Status
	mirror(f Format, src, dst plane, roi Size, axis Axis,
		sc *StreamContext) Status
	warpAffine(f Format, src plane, srcSize Size, srcROI Rect, dst plane,
		dstROI Rect, coeffs [2][3]float64, interp Interpolation,
		sc *StreamContext) Status
	warpPerspective(f Format, src plane, srcSize Size, srcROI Rect,
		dst plane, dstROI Rect, coeffs [3][3]float64, interp Interpolation,
		sc *StreamContext) Status
	rotate(f Format, src plane, srcSize Size, srcROI Rect, dst plane,
		dstROI Rect, angle, shiftX, shiftY float64, interp Interpolation,
		sc *StreamContext) Status
	rotateBound(srcROI Rect, angle, shiftX, shiftY float64) ([2][2]float64,
		Status)
	affineBound(srcROI Rect, coeffs [2][3]float64) ([2][2]float64, Status)

	filterBox(f Format, src plane, srcSize Size, srcOffset Point, dst plane,
		roi Size, mask Size, anchor Point, border BorderType,
		sc *StreamContext) Status
	filterGauss(f Format, src plane, srcSize Size, srcOffset Point,
		dst plane, roi Size, mask MaskSize, border BorderType,
		sc *StreamContext) Status
	filterSobel(f Format, dir SobelDirection, src plane, srcSize Size,
		srcOffset Point, dst plane, roi Size, border BorderType,
		sc *StreamContext) Status
	filterMedianBufferSize(f Format, roi Size, mask Size,
		sc *StreamContext) (int, Status)
	filterMedian(f Format, src, dst plane, roi Size, mask Size, anchor Point,
		buf DevicePtr, sc *StreamContext) Status

	morphology(op morphOp, f Format, src plane, srcSize Size, srcOffset Point,
		dst plane, roi Size, mask DevicePtr, maskSize Size, anchor Point,
		border BorderType, sc *StreamContext) Status
	morphology3x3(op morphOp, f Format, src, dst plane, roi Size,
		sc *StreamContext) Status

	statisticBufferSize(stat Statistic, f Format, roi Size,
		sc *StreamContext) (int, Status)
	sum(f Format, src plane, roi Size, buf, out DevicePtr,
		sc *StreamContext) Status
	mean(f Format, src plane, roi Size, buf, out DevicePtr,
		sc *StreamContext) Status
	meanStdDev(f Format, src plane, roi Size, buf, mean, stdDev DevicePtr,
		sc *StreamContext) Status
	minMax(f Format, src plane, roi Size, min, max, buf DevicePtr,
		sc *StreamContext) Status
	minMaxIndex(f Format, src plane, roi Size, minVal, maxVal, minIdx,
		maxIdx, buf DevicePtr, sc *StreamContext) Status
	norm(kind Norm, f Format, src plane, roi Size, out, buf DevicePtr,
		sc *StreamContext) Status
	normDiff(kind Norm, f Format, src1, src2 plane, roi Size,
		out, buf DevicePtr, sc *StreamContext) Status
	histogramEvenBufferSize(f Format, roi Size, levels int,
		sc *StreamContext) (int, Status)
	histogramEven(f Format, src plane, roi Size, hist DevicePtr, levels int,
		lower, upper int32, buf DevicePtr, sc *StreamContext) Status
	evenLevels(levels int, lower, upper int32) ([]int32, Status)

	qualityBufferSize(m QualityMetric, f Format, roi Size,
		sc *StreamContext) (int, Status)
	quality(m QualityMetric, f Format, src1, src2 plane, roi Size,
		out, buf DevicePtr, sc *StreamContext) Status

	floodFillBufferSize(roi Size) (int, Status)
	floodFill(srcDst plane, seed Point, value uint8, norm Norm, roi Size,
		buf DevicePtr, sc *StreamContext) (ConnectedRegion, Status)
	labelMarkersBufferSize(roi Size) (int, Status)
	labelMarkers(src, dst plane, roi Size, norm Norm, buf DevicePtr,
		sc *StreamContext) Status
}

// lib is the active native library. It is nil when the package is built
// without NPP support.
var lib nativeLibrary = loadLibrary()

// Available reports whether native NPP calls can be made, that is whether
// the package was built with the npp tag and cgo.
func Available() bool { return lib != nil }

// native returns the active library or ErrUnavailable.
func native(fn string) (nativeLibrary, error) {
	if lib == nil {
		return nil, &unavailableError{fn}
	}
	return lib, nil
}

type unavailableError struct{ fn string }

func (e *unavailableError) Error() string {
	return ErrUnavailable.Error() + ": " + e.fn
}

func (e *unavailableError) Unwrap() error { return ErrUnavailable }

// symbol renders the native name of a per-format entry point, e.g.
// symbol("nppiCopy", Format8uC3, "R") is "nppiCopy_8u_C3R_Ctx".
func symbol(base string, f Format, suffix string) string {
	return base + "_" + f.Suffix() + suffix + "_Ctx"
}

// runtimeErr converts a cudaError_t into an error.
func runtimeErr(l nativeLibrary, fn string, code int) error {
	if code == 0 {
		return nil
	}
	return &RuntimeError{Func: fn, Code: code, Message: l.errorString(code)}
}
