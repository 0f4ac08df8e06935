package gonpp

import (
	"errors"
	"fmt"
)

// Status represents a code returned by an NPP function.
//
// Zero means success, positive values are warnings (the call completed but
// something was unusual) and negative values are errors.
type Status int

// Predefined Status values mirror NppStatus.
const (
	StatusNotSupportedMode           Status = -9999
	StatusInvalidHostPointer         Status = -1032
	StatusInvalidDevicePointer       Status = -1031
	StatusLUTPaletteBitsize          Status = -1030
	StatusZCModeNotSupported         Status = -1028
	StatusNotSufficientCompute       Status = -1027
	StatusTextureBind                Status = -1024
	StatusWrongIntersectionROI       Status = -1020
	StatusHaarClassifierPixelMatch   Status = -1006
	StatusMemfree                    Status = -1005
	StatusMemset                     Status = -1004
	StatusMemcpy                     Status = -1003
	StatusAlignment                  Status = -1002
	StatusCudaKernelExecution        Status = -1000
	StatusRoundModeNotSupported      Status = -213
	StatusQualityIndex               Status = -210
	StatusResizeNoOperation          Status = -201
	StatusOverflow                   Status = -109
	StatusNotEvenStep                Status = -108
	StatusHistogramNumberOfLevels    Status = -107
	StatusLUTNumberOfLevels          Status = -106
	StatusCorruptedData              Status = -61
	StatusChannelOrder               Status = -60
	StatusZeroMaskValue              Status = -59
	StatusQuadrangle                 Status = -58
	StatusRectangle                  Status = -57
	StatusCoefficient                Status = -56
	StatusNumberOfChannels           Status = -53
	StatusCOI                        Status = -52
	StatusDivisor                    Status = -51
	StatusChannel                    Status = -47
	StatusStride                     Status = -37
	StatusAnchor                     Status = -34
	StatusMaskSize                   Status = -33
	StatusResizeFactor               Status = -23
	StatusInterpolation              Status = -22
	StatusMirrorFlip                 Status = -21
	StatusMoment00Zero               Status = -20
	StatusThresholdNegativeLevel     Status = -19
	StatusThreshold                  Status = -18
	StatusContextMatch               Status = -17
	StatusFFTFlag                    Status = -16
	StatusFFTOrder                   Status = -15
	StatusStep                       Status = -14
	StatusScaleRange                 Status = -13
	StatusDataType                   Status = -12
	StatusOutOfRange                 Status = -11
	StatusDivideByZero               Status = -10
	StatusMemoryAllocation           Status = -9
	StatusNullPointer                Status = -8
	StatusRange                      Status = -7
	StatusSize                       Status = -6
	StatusBadArgument                Status = -5
	StatusNoMemory                   Status = -4
	StatusNotImplemented             Status = -3
	StatusGenericError               Status = -2
	StatusErrorReserved              Status = -1
	StatusNoError                    Status = 0
	StatusNoOperationWarning         Status = 1
	StatusDivideByZeroWarning        Status = 6
	StatusAffineQuadIncorrectWarning Status = 28
	StatusWrongIntersectionROIWarn   Status = 29
	StatusWrongIntersectionQuadWarn  Status = 30
	StatusDoubleSizeWarning          Status = 35
	StatusMisalignedDstROIWarning    Status = 10000
)

var statusNames = map[Status]string{
	StatusNotSupportedMode:           "NPP_NOT_SUPPORTED_MODE_ERROR",
	StatusInvalidHostPointer:         "NPP_INVALID_HOST_POINTER_ERROR",
	StatusInvalidDevicePointer:       "NPP_INVALID_DEVICE_POINTER_ERROR",
	StatusLUTPaletteBitsize:          "NPP_LUT_PALETTE_BITSIZE_ERROR",
	StatusZCModeNotSupported:         "NPP_ZC_MODE_NOT_SUPPORTED_ERROR",
	StatusNotSufficientCompute:       "NPP_NOT_SUFFICIENT_COMPUTE_CAPABILITY",
	StatusTextureBind:                "NPP_TEXTURE_BIND_ERROR",
	StatusWrongIntersectionROI:       "NPP_WRONG_INTERSECTION_ROI_ERROR",
	StatusHaarClassifierPixelMatch:   "NPP_HAAR_CLASSIFIER_PIXEL_MATCH_ERROR",
	StatusMemfree:                    "NPP_MEMFREE_ERROR",
	StatusMemset:                     "NPP_MEMSET_ERROR",
	StatusMemcpy:                     "NPP_MEMCPY_ERROR",
	StatusAlignment:                  "NPP_ALIGNMENT_ERROR",
	StatusCudaKernelExecution:        "NPP_CUDA_KERNEL_EXECUTION_ERROR",
	StatusRoundModeNotSupported:      "NPP_ROUND_MODE_NOT_SUPPORTED_ERROR",
	StatusQualityIndex:               "NPP_QUALITY_INDEX_ERROR",
	StatusResizeNoOperation:          "NPP_RESIZE_NO_OPERATION_ERROR",
	StatusOverflow:                   "NPP_OVERFLOW_ERROR",
	StatusNotEvenStep:                "NPP_NOT_EVEN_STEP_ERROR",
	StatusHistogramNumberOfLevels:    "NPP_HISTOGRAM_NUMBER_OF_LEVELS_ERROR",
	StatusLUTNumberOfLevels:          "NPP_LUT_NUMBER_OF_LEVELS_ERROR",
	StatusCorruptedData:              "NPP_CORRUPTED_DATA_ERROR",
	StatusChannelOrder:               "NPP_CHANNEL_ORDER_ERROR",
	StatusZeroMaskValue:              "NPP_ZERO_MASK_VALUE_ERROR",
	StatusQuadrangle:                 "NPP_QUADRANGLE_ERROR",
	StatusRectangle:                  "NPP_RECTANGLE_ERROR",
	StatusCoefficient:                "NPP_COEFFICIENT_ERROR",
	StatusNumberOfChannels:           "NPP_NUMBER_OF_CHANNELS_ERROR",
	StatusCOI:                        "NPP_COI_ERROR",
	StatusDivisor:                    "NPP_DIVISOR_ERROR",
	StatusChannel:                    "NPP_CHANNEL_ERROR",
	StatusStride:                     "NPP_STRIDE_ERROR",
	StatusAnchor:                     "NPP_ANCHOR_ERROR",
	StatusMaskSize:                   "NPP_MASK_SIZE_ERROR",
	StatusResizeFactor:               "NPP_RESIZE_FACTOR_ERROR",
	StatusInterpolation:              "NPP_INTERPOLATION_ERROR",
	StatusMirrorFlip:                 "NPP_MIRROR_FLIP_ERROR",
	StatusMoment00Zero:               "NPP_MOMENT_00_ZERO_ERROR",
	StatusThresholdNegativeLevel:     "NPP_THRESHOLD_NEGATIVE_LEVEL_ERROR",
	StatusThreshold:                  "NPP_THRESHOLD_ERROR",
	StatusContextMatch:               "NPP_CONTEXT_MATCH_ERROR",
	StatusFFTFlag:                    "NPP_FFT_FLAG_ERROR",
	StatusFFTOrder:                   "NPP_FFT_ORDER_ERROR",
	StatusStep:                       "NPP_STEP_ERROR",
	StatusScaleRange:                 "NPP_SCALE_RANGE_ERROR",
	StatusDataType:                   "NPP_DATA_TYPE_ERROR",
	StatusOutOfRange:                 "NPP_OUT_OFF_RANGE_ERROR",
	StatusDivideByZero:               "NPP_DIVIDE_BY_ZERO_ERROR",
	StatusMemoryAllocation:           "NPP_MEMORY_ALLOCATION_ERR",
	StatusNullPointer:                "NPP_NULL_POINTER_ERROR",
	StatusRange:                      "NPP_RANGE_ERROR",
	StatusSize:                       "NPP_SIZE_ERROR",
	StatusBadArgument:                "NPP_BAD_ARGUMENT_ERROR",
	StatusNoMemory:                   "NPP_NO_MEMORY_ERROR",
	StatusNotImplemented:             "NPP_NOT_IMPLEMENTED_ERROR",
	StatusGenericError:               "NPP_ERROR",
	StatusErrorReserved:              "NPP_ERROR_RESERVED",
	StatusNoError:                    "NPP_NO_ERROR",
	StatusNoOperationWarning:         "NPP_NO_OPERATION_WARNING",
	StatusDivideByZeroWarning:        "NPP_DIVIDE_BY_ZERO_WARNING",
	StatusAffineQuadIncorrectWarning: "NPP_AFFINE_QUAD_INCORRECT_WARNING",
	StatusWrongIntersectionROIWarn:   "NPP_WRONG_INTERSECTION_ROI_WARNING",
	StatusWrongIntersectionQuadWarn:  "NPP_WRONG_INTERSECTION_QUAD_WARNING",
	StatusDoubleSizeWarning:          "NPP_DOUBLE_SIZE_WARNING",
	StatusMisalignedDstROIWarning:    "NPP_MISALIGNED_DST_ROI_WARNING",
}

// IsNone returns true if the call completed without error or warning.
func (s Status) IsNone() bool { return s == StatusNoError }

// IsWarning returns true for positive codes.
func (s Status) IsWarning() bool { return s > 0 }

// IsError returns true for negative codes.
func (s Status) IsError() bool { return s < 0 }

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("NppStatus(%d)", int(s))
}

// Error makes a Status usable as an errors.Is target.
func (s Status) Error() string { return s.String() }

// StatusError is returned when a native call reports an error status.
type StatusError struct {
	// Func is the native symbol that produced the status.
	Func   string
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gonpp: %s returned %s (%d)", e.Func, e.Status,
		int(e.Status))
}

// Is reports whether target is the same Status.
func (e *StatusError) Is(target error) bool {
	s, ok := target.(Status)
	return ok && s == e.Status
}

// RuntimeError is returned when a CUDA runtime call used for memory
// management or transfers fails.
type RuntimeError struct {
	Func    string
	Code    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("gonpp: %s failed: %s (cudaError %d)", e.Func,
		e.Message, e.Code)
}

// Errors returned before any native call is made.
var (
	ErrUnavailable       = errors.New("gonpp: built without NPP support (rebuild with -tags npp)")
	ErrUnsupportedFormat = errors.New("gonpp: unsupported format")
	ErrChannelOutOfRange = errors.New("gonpp: channel index out of range")
	ErrROIOutOfBounds    = errors.New("gonpp: region of interest outside image")
	ErrSizeMismatch      = errors.New("gonpp: image sizes do not match")
	ErrBufferTooSmall    = errors.New("gonpp: scratch buffer too small")
	ErrInvalidArgument   = errors.New("gonpp: invalid argument")
	ErrClosed            = errors.New("gonpp: use of closed resource")
	ErrOutOfMemory       = errors.New("gonpp: device allocation failed")
)

// checkStatus converts a returned status to an error. Warnings are not
// errors.
func checkStatus(fn string, s Status) error {
	if !s.IsError() {
		return nil
	}
	return &StatusError{Func: fn, Status: s}
}

func unsupported(fn string, f Format) error {
	return fmt.Errorf("%w: %s has no %s variant", ErrUnsupportedFormat, fn, f)
}
