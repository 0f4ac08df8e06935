package gonpp

import "fmt"

// QualityMetric is a full-reference image quality measure.
type QualityMetric int

const (
	QualityMSE QualityMetric = iota
	QualityPSNR
	QualitySSIM
	QualityMSSSIM
)

func (m QualityMetric) name() string {
	switch m {
	case QualityMSE:
		return "nppiMSE"
	case QualityPSNR:
		return "nppiPSNR"
	case QualitySSIM:
		return "nppiSSIM"
	case QualityMSSSIM:
		return "nppiMSSSIM"
	}
	return ""
}

func (m QualityMetric) String() string {
	switch m {
	case QualityMSE:
		return "MSE"
	case QualityPSNR:
		return "PSNR"
	case QualitySSIM:
		return "SSIM"
	case QualityMSSSIM:
		return "MS-SSIM"
	}
	return fmt.Sprintf("QualityMetric(%d)", int(m))
}

// QualityBufferSize returns the scratch size metric needs for the current
// ROI.
func (img *Image) QualityBufferSize(sc *StreamContext,
	metric QualityMetric) (int, error) {
	if err := img.usable(); err != nil {
		return 0, err
	}
	if metric.name() == "" {
		return 0, fmt.Errorf("%w: %s", ErrInvalidArgument, metric)
	}
	fn := symbol(metric.name()+"GetBufferHostSize", img.format, "R")
	if err := requireFormat(fn, img.format, Format8uC1); err != nil {
		return 0, err
	}
	l, sc, err := img.prepare(fn, sc)
	if err != nil {
		return 0, err
	}
	n, st := l.qualityBufferSize(metric, img.format, img.SizeROI(), sc)
	return n, img.record(fn, st)
}

// Quality compares the ROI of img against the same sized ROI of other. Both
// must be 8u C1 images.
func (img *Image) Quality(sc *StreamContext, other *Image,
	metric QualityMetric, buf *DeviceBuffer) (float32, error) {
	if err := img.usable(); err != nil {
		return 0, err
	}
	if metric.name() == "" {
		return 0, fmt.Errorf("%w: %s", ErrInvalidArgument, metric)
	}
	fn := symbol(metric.name(), img.format, "R")
	if err := requireFormat(fn, img.format, Format8uC1); err != nil {
		return 0, err
	}
	if err := img.sameOperand(fn, other); err != nil {
		return 0, err
	}
	res, err := img.reduce(sc, buf, reduction{
		fn: fn,
		size: func(sc *StreamContext) (int, error) {
			return img.QualityBufferSize(sc, metric)
		},
		outputs: []int{4},
		run: func(l nativeLibrary, sc *StreamContext, buf DevicePtr,
			out []DevicePtr) Status {
			return l.quality(metric, img.format, img.roiPlane(),
				other.roiPlane(), img.SizeROI(), out[0], buf, sc)
		},
	})
	if err != nil {
		return 0, err
	}
	return float32At(res[0], 0), nil
}

// MSE returns the mean squared error between img and other.
func (img *Image) MSE(sc *StreamContext, other *Image,
	buf *DeviceBuffer) (float32, error) {
	return img.Quality(sc, other, QualityMSE, buf)
}

// PSNR returns the peak signal to noise ratio in dB.
func (img *Image) PSNR(sc *StreamContext, other *Image,
	buf *DeviceBuffer) (float32, error) {
	return img.Quality(sc, other, QualityPSNR, buf)
}

// SSIM returns the structural similarity index.
func (img *Image) SSIM(sc *StreamContext, other *Image,
	buf *DeviceBuffer) (float32, error) {
	return img.Quality(sc, other, QualitySSIM, buf)
}

// MSSSIM returns the multi-scale structural similarity index. NPP requires
// the ROI to be large enough for five scales.
func (img *Image) MSSSIM(sc *StreamContext, other *Image,
	buf *DeviceBuffer) (float32, error) {
	return img.Quality(sc, other, QualityMSSSIM, buf)
}
