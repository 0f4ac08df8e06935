package gonpp

import "fmt"

// Upload copies a host image into the ROI. host holds ROI-height rows of
// hostPitch bytes each; only the first ROI-width pixels of every row are
// read. The call returns once the copy has completed.
func (img *Image) Upload(sc *StreamContext, host []byte, hostPitch int) error {
	const fn = "cudaMemcpy2DAsync"
	rowBytes, rows, err := img.hostLayout(len(host), hostPitch)
	if err != nil {
		return err
	}
	l, sc, err := img.prepare(fn, sc)
	if err != nil {
		return err
	}
	code := l.copy2DToDevice(img.roiPlane(), host, hostPitch, rowBytes, rows,
		sc.Stream)
	Logger().WithField("func", fn).Debugf("upload %d rows of %d bytes",
		rows, rowBytes)
	return runtimeErr(l, fn, code)
}

// Download copies the ROI into a host buffer laid out like Upload's input.
func (img *Image) Download(sc *StreamContext, host []byte,
	hostPitch int) error {
	const fn = "cudaMemcpy2DAsync"
	rowBytes, rows, err := img.hostLayout(len(host), hostPitch)
	if err != nil {
		return err
	}
	l, sc, err := img.prepare(fn, sc)
	if err != nil {
		return err
	}
	code := l.copy2DToHost(host, hostPitch, img.roiPlane(), rowBytes, rows,
		sc.Stream)
	Logger().WithField("func", fn).Debugf("download %d rows of %d bytes",
		rows, rowBytes)
	return runtimeErr(l, fn, code)
}

// hostLayout validates a host buffer against the ROI and returns the bytes
// per row and the row count to copy.
func (img *Image) hostLayout(n, hostPitch int) (int, int, error) {
	if err := img.usable(); err != nil {
		return 0, 0, err
	}
	rowBytes := img.roi.Width * img.format.PixelSize()
	rows := img.roi.Height
	if hostPitch < rowBytes {
		return 0, 0, fmt.Errorf("%w: host pitch %d shorter than %d byte row",
			ErrInvalidArgument, hostPitch, rowBytes)
	}
	if need := (rows-1)*hostPitch + rowBytes; n < need {
		return 0, 0, fmt.Errorf("%w: host buffer has %d bytes, need %d",
			ErrBufferTooSmall, n, need)
	}
	return rowBytes, rows, nil
}
