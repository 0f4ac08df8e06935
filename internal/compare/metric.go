package compare

import (
	"fmt"
	"runtime"

	"github.com/GreatValueCreamSoda/gonpp"
)

// Metric scores one pair of frames. Compute may be called from several
// goroutines at once.
type Metric interface {
	Name() string
	Close()
	Compute(a, b *Frame) (map[string]float64, error)
}

var metricsByName = map[string]gonpp.QualityMetric{
	"mse":    gonpp.QualityMSE,
	"psnr":   gonpp.QualityPSNR,
	"ssim":   gonpp.QualitySSIM,
	"msssim": gonpp.QualityMSSSIM,
}

// lumaWorker holds the device state of one concurrent computation. Images and
// scratch are allocated on first use, once the frame size is known.
type lumaWorker struct {
	sc      *gonpp.StreamContext
	a, b    *gonpp.Image
	scratch *gonpp.DeviceBuffer
}

func (w *lumaWorker) close() {
	for _, img := range []*gonpp.Image{w.a, w.b} {
		if img != nil {
			img.Close()
		}
	}
	if w.scratch != nil {
		w.scratch.Close()
	}
	*w = lumaWorker{}
}

// lumaMetric computes NPP full-reference metrics on the 8-bit luma plane.
type lumaMetric struct {
	device  int
	metrics []string
	pool    *workerPool[*lumaWorker]
}

// NewLumaMetric returns a Metric computing the named NPP metrics with
// numWorkers concurrent device contexts on device.
func NewLumaMetric(device, numWorkers int, names []string) (Metric, error) {
	for _, name := range names {
		if _, ok := metricsByName[name]; !ok {
			return nil, fmt.Errorf("unknown metric %q", name)
		}
	}
	workers := make([]*lumaWorker, max(1, numWorkers))
	for i := range workers {
		workers[i] = &lumaWorker{}
	}
	return &lumaMetric{
		device:  device,
		metrics: names,
		pool:    newWorkerPool(workers),
	}, nil
}

func (m *lumaMetric) Name() string { return "npp" }

func (m *lumaMetric) Close() {
	m.pool.each((*lumaWorker).close)
}

func (m *lumaMetric) Compute(a, b *Frame) (map[string]float64, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return nil, fmt.Errorf("frame sizes differ: %dx%d and %dx%d",
			a.Width, a.Height, b.Width, b.Height)
	}

	w := m.pool.get()
	defer m.pool.put(w)

	// The CUDA device is bound per OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := gonpp.SetDevice(m.device); err != nil {
		return nil, err
	}

	if err := m.prepare(w, a.Width, a.Height); err != nil {
		return nil, err
	}
	if err := w.a.Upload(w.sc, a.Data[0], a.LineSize[0]); err != nil {
		return nil, err
	}
	if err := w.b.Upload(w.sc, b.Data[0], b.LineSize[0]); err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(m.metrics))
	for _, name := range m.metrics {
		score, err := w.a.Quality(w.sc, w.b, metricsByName[name], w.scratch)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		scores[name] = float64(score)
	}
	return scores, nil
}

func (m *lumaMetric) prepare(w *lumaWorker, width, height int) (err error) {
	if w.b != nil && w.b.Width() == width && w.b.Height() == height {
		return nil
	}
	w.close()
	defer func() {
		if err != nil {
			w.close()
		}
	}()

	if w.sc, err = gonpp.NewStreamContext(0); err != nil {
		return err
	}
	if w.a, err = gonpp.NewImage(gonpp.Format8uC1, width, height); err != nil {
		return err
	}
	if w.b, err = gonpp.NewImage(gonpp.Format8uC1, width, height); err != nil {
		return err
	}

	size := 0
	for _, name := range m.metrics {
		n, qerr := w.a.QualityBufferSize(w.sc, metricsByName[name])
		if qerr != nil {
			return qerr
		}
		size = max(size, n)
	}
	if size > 0 {
		w.scratch, err = gonpp.NewDeviceBuffer(size)
	}
	return err
}
