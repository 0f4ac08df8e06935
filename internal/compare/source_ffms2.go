//go:build ffms2

package compare

import (
	"fmt"
	"runtime"
	"sync"

	ffms "github.com/GreatValueCreamSoda/goffms2"
	"github.com/GreatValueCreamSoda/gopixfmts"
)

type ffmsSource struct {
	video     *ffms.VideoSource
	numFrames int
	frame     Frame
}

func (s *ffmsSource) NumFrames() int { return s.numFrames }

func (s *ffmsSource) Frame(index int) (*Frame, error) {
	src, _, err := s.video.GetFrame(index)
	if err != nil {
		return nil, err
	}
	s.frame.Width = int(src.ScaledWidth)
	s.frame.Height = int(src.ScaledHeight)
	for p := range s.frame.Data {
		s.frame.Data[p] = src.Data[p]
		s.frame.LineSize[p] = int(src.Linesize[p])
	}
	return &s.frame, nil
}

// OpenPair indexes and opens both videos concurrently.
func OpenPair(pathA, pathB string) (Source, Source, error) {
	var wg sync.WaitGroup
	wg.Add(2)

	var a, b *ffmsSource
	var errA, errB error

	go func() {
		defer wg.Done()
		a, errA = openVideo(pathA)
	}()

	go func() {
		defer wg.Done()
		b, errB = openVideo(pathB)
	}()

	wg.Wait()

	if errA != nil {
		return nil, nil, fmt.Errorf("%s: %w", pathA, errA)
	}
	if errB != nil {
		return nil, nil, fmt.Errorf("%s: %w", pathB, errB)
	}
	return a, b, nil
}

func openVideo(path string) (*ffmsSource, error) {
	index, track, err := indexVideo(path)
	if err != nil {
		return nil, err
	}

	video, _, err := ffms.CreateVideoSource(path, index, track,
		max(1, runtime.NumCPU()/2), ffms.SeekNormal)
	if err != nil {
		return nil, fmt.Errorf("track %d: %w", track, err)
	}

	s, err := newFFMSSource(video)
	if err != nil {
		video.Close()
		return nil, fmt.Errorf("track %d: %w", track, err)
	}
	return s, nil
}

// indexVideo indexes path and returns its first video track.
func indexVideo(path string) (*ffms.Index, int, error) {
	indexer, _, err := ffms.CreateIndexer(path)
	if err != nil {
		return nil, 0, err
	}
	index, _, err := indexer.DoIndexing(ffms.IEHAbort)
	if err != nil {
		return nil, 0, fmt.Errorf("indexing: %w", err)
	}
	track, _, err := index.GetFirstTrackOfType(ffms.TypeVideo)
	if err != nil {
		return nil, 0, fmt.Errorf("no video track: %w", err)
	}
	return index, track, nil
}

func newFFMSSource(video *ffms.VideoSource) (*ffmsSource, error) {
	props, err := video.GetVideoProperties()
	if err != nil {
		return nil, err
	}
	format, err := pinEncodedFormat(video)
	if err != nil {
		return nil, err
	}
	if err := checkPixelFormat(format); err != nil {
		return nil, err
	}
	return &ffmsSource{video: video, numFrames: props.NumFrames}, nil
}

// pinEncodedFormat makes the source decode every frame in the first frame's
// encoded pixel format and size, and returns that format.
func pinEncodedFormat(video *ffms.VideoSource) (int, error) {
	first, _, err := video.GetFrame(0)
	if err != nil {
		return 0, fmt.Errorf("frame 0: %w", err)
	}
	if _, _, err := video.SetOutputFormatV2([]int{first.EncodedPixelFormat},
		first.EncodedWidth, first.EncodedHeight,
		ffms.ResizerBicubic); err != nil {
		return 0, fmt.Errorf("output format: %w", err)
	}
	first, _, err = video.GetFrame(0)
	if err != nil {
		return 0, fmt.Errorf("frame 0: %w", err)
	}
	return first.ConvertedPixelFormat, nil
}

// checkPixelFormat accepts 8-bit YUV formats, whose first plane is the luma
// the NPP quality metrics read as 8u C1.
func checkPixelFormat(format int) error {
	desc, err := gopixfmts.PixFmtDescGet(gopixfmts.PixelFormat(format))
	if err != nil {
		return err
	}
	if desc.Flags()&uint64(gopixfmts.PixFmtFlagRGB) != 0 {
		return fmt.Errorf("pixel format %s is RGB, want YUV", desc.Name())
	}
	comp, err := desc.Component(0)
	if err != nil {
		return err
	}
	if comp.Depth != 8 {
		return fmt.Errorf("pixel format %s has %d-bit luma, want 8",
			desc.Name(), comp.Depth)
	}
	return nil
}
