// Package hostimage moves images between files on disk and the packed,
// interleaved 8-bit buffers that gonpp uploads.
package hostimage

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/GreatValueCreamSoda/gonpp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedEncoding is returned by Save for extensions it cannot write.
var ErrUnsupportedEncoding = errors.New("hostimage: unsupported output format")

// Packed is an interleaved 8-bit image with Channels samples per pixel.
type Packed struct {
	Pix      []byte
	Stride   int
	Width    int
	Height   int
	Channels int
}

// NewPacked allocates a zeroed buffer with a tight stride.
func NewPacked(width, height, channels int) *Packed {
	return &Packed{
		Pix:      make([]byte, width*height*channels),
		Stride:   width * channels,
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// Format returns the gonpp format matching the buffer layout.
func (p *Packed) Format() gonpp.Format {
	return gonpp.NewFormat(gonpp.Type8u, p.Channels)
}

// Load decodes png, jpeg, bmp, tiff or webp from path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Save encodes img with the encoder chosen by the extension of path.
func Save(path string, img image.Image) error {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, filepath.Ext(path))
}

// ToPacked converts img to an interleaved buffer with 1 (gray), 3 (RGB) or 4
// (RGBA, not premultiplied) channels.
func ToPacked(img image.Image, channels int) (*Packed, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch channels {
	case 1:
		gray := image.NewGray(image.Rect(0, 0, w, h))
		draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
		return &Packed{Pix: gray.Pix, Stride: gray.Stride, Width: w,
			Height: h, Channels: 1}, nil
	case 3, 4:
		rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		if channels == 4 {
			return &Packed{Pix: rgba.Pix, Stride: rgba.Stride, Width: w,
				Height: h, Channels: 4}, nil
		}
		p := NewPacked(w, h, 3)
		for y := range h {
			src := rgba.Pix[y*rgba.Stride:]
			dst := p.Pix[y*p.Stride:]
			for x := range w {
				copy(dst[x*3:x*3+3], src[x*4:x*4+3])
			}
		}
		return p, nil
	}
	return nil, fmt.Errorf("hostimage: unsupported channel count %d", channels)
}

// Image wraps or converts p into a standard library image.
func (p *Packed) Image() (image.Image, error) {
	r := image.Rect(0, 0, p.Width, p.Height)
	switch p.Channels {
	case 1:
		return &image.Gray{Pix: p.Pix, Stride: p.Stride, Rect: r}, nil
	case 4:
		return &image.NRGBA{Pix: p.Pix, Stride: p.Stride, Rect: r}, nil
	case 3:
		out := image.NewNRGBA(r)
		for y := range p.Height {
			src := p.Pix[y*p.Stride:]
			dst := out.Pix[y*out.Stride:]
			for x := range p.Width {
				copy(dst[x*4:x*4+3], src[x*3:x*3+3])
				dst[x*4+3] = 0xff
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("hostimage: unsupported channel count %d",
		p.Channels)
}

// Upload copies p into a new device image of matching size and format.
func (p *Packed) Upload(sc *gonpp.StreamContext) (*gonpp.Image, error) {
	img, err := gonpp.NewImage(p.Format(), p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	if err := img.Upload(sc, p.Pix, p.Stride); err != nil {
		img.Close()
		return nil, err
	}
	return img, nil
}

// Download copies the ROI of an 8-bit device image into a new buffer.
func Download(sc *gonpp.StreamContext, img *gonpp.Image) (*Packed, error) {
	if img.Format().DataType() != gonpp.Type8u {
		return nil, fmt.Errorf("%w: %s", gonpp.ErrUnsupportedFormat,
			img.Format())
	}
	roi := img.SizeROI()
	p := NewPacked(roi.Width, roi.Height, img.Channels())
	if err := img.Download(sc, p.Pix, p.Stride); err != nil {
		return nil, err
	}
	return p, nil
}
