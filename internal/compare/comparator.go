package compare

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/sirupsen/logrus"
)

type framePair struct {
	index int
	aIdx  int
	bIdx  int
	a     *Frame
	b     *Frame
}

type metricResult struct {
	index  int
	scores map[string]float64
}

// Comparator scores two sources frame by frame. One goroutine reads each
// source, a pairer matches frames by position, Workers goroutines run the
// metrics and an aggregator collects scores by frame index.
type Comparator struct {
	cfg                    Config
	sourceA, sourceB       Source
	framePoolA, framePoolB sync.Pool
	numFrames              int
	metrics                []Metric
	log                    logrus.FieldLogger

	framesA, framesB chan *Frame
	pairs            chan framePair
	results          chan metricResult
	errs             chan error

	finalScores map[string][]float64
}

// NewComparator validates cfg against both sources. The comparator takes
// ownership of metrics and closes them when Run finishes.
func NewComparator(cfg Config, a, b Source, metrics []Metric,
	log logrus.FieldLogger) (*Comparator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	numFrames, err := cfg.FrameCount(a, b)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	c := &Comparator{
		cfg:       cfg,
		sourceA:   a,
		sourceB:   b,
		numFrames: numFrames,
		metrics:   metrics,
		log:       log,
	}
	c.framePoolA.New = func() any { return &Frame{} }
	c.framePoolB.New = func() any { return &Frame{} }

	c.framesA = make(chan *Frame, 1)
	c.framesB = make(chan *Frame, 1)
	c.pairs = make(chan framePair, 1)
	c.results = make(chan metricResult, cfg.Workers*3/2)
	c.errs = make(chan error, cfg.Workers+4)
	return c, nil
}

// NumFrames returns the number of pairs Run compares.
func (c *Comparator) NumFrames() int { return c.numFrames }

// FinalScores returns per-frame scores keyed by metric name after Run.
func (c *Comparator) FinalScores() map[string][]float64 {
	return c.finalScores
}

// Run compares every pair and returns the first error encountered.
func (c *Comparator) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer close(c.framesA)
		c.readSource(ctx, "A", c.sourceA, c.cfg.AStart, &c.framePoolA,
			c.framesA)
	}()
	go func() {
		defer close(c.framesB)
		c.readSource(ctx, "B", c.sourceB, c.cfg.BStart, &c.framePoolB,
			c.framesB)
	}()

	go func() {
		defer close(c.pairs)
		c.pairFrames(ctx)
	}()

	var metricWg sync.WaitGroup
	metricWg.Add(c.cfg.Workers)
	for i := range c.cfg.Workers {
		go func() {
			defer metricWg.Done()
			c.metricWorker(ctx, i)
		}()
	}

	done := make(chan struct{})
	go func() {
		metricWg.Wait()
		for _, m := range c.metrics {
			m.Close()
		}
		close(c.results)
	}()

	go func() {
		defer close(done)
		c.aggregateResults()
	}()

	select {
	case err := <-c.errs:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		// A worker may have failed after the last result was delivered.
		select {
		case err := <-c.errs:
			return err
		default:
			return ctx.Err()
		}
	}
}

func (c *Comparator) fail(err error) {
	select {
	case c.errs <- err:
	default:
	}
}

func (c *Comparator) readSource(ctx context.Context, name string, src Source,
	start int, pool *sync.Pool, out chan<- *Frame) {
	log := c.log.WithField("source", name)
	log.Infof("Starting read from index %d", start)

	for i := range c.numFrames {
		if ctx.Err() != nil {
			return
		}

		frame, err := src.Frame(start + i)
		if err != nil {
			c.fail(fmt.Errorf("source %s frame %d: %w", name, start+i, err))
			log.Errorf("Error reading frame %d: %v", start+i, err)
			return
		}

		buf := pool.Get().(*Frame)
		buf.copyFrom(frame)

		select {
		case out <- buf:
			log.Debugf("Read frame %d", start+i)
		case <-ctx.Done():
			pool.Put(buf)
			return
		}
	}
	log.Info("Finished reading")
}

func (c *Comparator) pairFrames(ctx context.Context) {
	for i := range c.numFrames {
		a, okA := <-c.framesA
		b, okB := <-c.framesB
		if !okA || !okB {
			return
		}

		pair := framePair{
			index: i,
			aIdx:  c.cfg.AStart + i,
			bIdx:  c.cfg.BStart + i,
			a:     a,
			b:     b,
		}

		select {
		case c.pairs <- pair:
			c.log.Debugf("Paired frame %d (A:%d, B:%d)", i, pair.aIdx,
				pair.bIdx)
		case <-ctx.Done():
			return
		}
	}
	c.log.Infof("Finished pairing %d frames", c.numFrames)
}

func (c *Comparator) metricWorker(ctx context.Context, workerID int) {
	log := c.log.WithField("worker", workerID)
	log.Debug("Metric worker starting")

	for {
		var pair framePair
		var ok bool
		select {
		case pair, ok = <-c.pairs:
		case <-ctx.Done():
			return
		}
		if !ok {
			break
		}

		scores, err := c.computeMetrics(pair)
		if err != nil {
			c.fail(fmt.Errorf("worker %d: %w", workerID, err))
			log.Errorf("Frame %d failed: %v", pair.index, err)
			return
		}
		c.framePoolA.Put(pair.a)
		c.framePoolB.Put(pair.b)

		select {
		case c.results <- metricResult{index: pair.index, scores: scores}:
			log.Debugf("Frame %d: %s", pair.index, prettyMap(scores))
		case <-ctx.Done():
			return
		}
	}
	log.Debug("Metric worker finished")
}

func (c *Comparator) computeMetrics(pair framePair) (map[string]float64,
	error) {
	scores := make(map[string]float64)
	for _, m := range c.metrics {
		vals, err := m.Compute(pair.a, pair.b)
		if err != nil {
			return nil, fmt.Errorf("metric %s frame %d: %w", m.Name(),
				pair.index, err)
		}
		maps.Copy(scores, vals)
	}
	return scores, nil
}

func (c *Comparator) aggregateResults() {
	c.finalScores = make(map[string][]float64)
	for res := range c.results {
		for name, val := range res.scores {
			if c.finalScores[name] == nil {
				c.finalScores[name] = make([]float64, c.numFrames)
			}
			c.finalScores[name][res.index] = val
		}
	}
}
