package gonpp

import "fmt"

// DevicePtr is an address in device memory. It is never dereferenced on the
// host.
type DevicePtr uintptr

// Offset returns the pointer advanced by n bytes.
func (p DevicePtr) Offset(n int) DevicePtr { return p + DevicePtr(n) }

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Fits reports whether s fits inside other.
func (s Size) Fits(other Size) bool {
	return s.Width <= other.Width && s.Height <= other.Height
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Rect is a region of interest. X and Y are the top left corner.
type Rect struct {
	X, Y, Width, Height int
}

// RectOf returns a rectangle at the origin covering s.
func RectOf(s Size) Rect { return Rect{0, 0, s.Width, s.Height} }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size { return Size{r.Width, r.Height} }

// Origin returns the top left corner.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Within reports whether r lies entirely inside a frame of size s.
func (r Rect) Within(s Size) bool {
	return r.X >= 0 && r.Y >= 0 && !r.Empty() &&
		r.X+r.Width <= s.Width && r.Y+r.Height <= s.Height
}

// Intersect returns the overlap of r and o. The result is empty when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)+%dx%d", r.X, r.Y, r.Width, r.Height)
}
