package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Framebuffer is a 2D array of pixels. It is the off-screen composition
// surface: a frame is fully drawn here and presented in a single pass.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// Execute draws an ordered command stream onto the framebuffer. Commands
// are applied in order, so the painter's back-to-front sort is preserved.
func (fb *Framebuffer) Execute(cmds []Command) {
	for _, cmd := range cmds {
		cmd.draw(fb)
	}
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawThickLine draws a line of the given width by offsetting Bresenham
// passes across the minor axis. Width 1 is a single pass.
func (fb *Framebuffer) DrawThickLine(from, to image.Point, width int, c color.RGBA) {
	if width <= 1 {
		fb.DrawLine(from.X, from.Y, to.X, to.Y, c)
		return
	}
	// Offset perpendicular to the dominant direction.
	steep := abs(to.Y-from.Y) > abs(to.X-from.X)
	for o := -(width - 1) / 2; o <= width/2; o++ {
		if steep {
			fb.DrawLine(from.X+o, from.Y, to.X+o, to.Y, c)
		} else {
			fb.DrawLine(from.X, from.Y+o, to.X, to.Y+o, c)
		}
	}
}

// FillTriangle fills the triangle (p0, p1, p2) with a solid color using a
// bounding-box scan with a barycentric inside test.
func (fb *Framebuffer) FillTriangle(p0, p1, p2 image.Point, c color.RGBA) {
	minX := max(0, min3i(p0.X, p1.X, p2.X))
	maxX := min(fb.Width-1, max3i(p0.X, p1.X, p2.X))
	minY := max(0, min3i(p0.Y, p1.Y, p2.Y))
	maxY := min(fb.Height-1, max3i(p0.Y, p1.Y, p2.Y))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			u, v, w, ok := barycentric(
				float64(p0.X), float64(p0.Y),
				float64(p1.X), float64(p1.Y),
				float64(p2.X), float64(p2.Y),
				px, py,
			)
			if !ok || u < 0 || v < 0 || w < 0 {
				continue
			}
			fb.SetPixel(x, y, c)
		}
	}
}

// FillCircle fills a circle of radius r centered at p.
func (fb *Framebuffer) FillCircle(p image.Point, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				fb.SetPixel(p.X+dx, p.Y+dy, c)
			}
		}
	}
}

// barycentric calculates barycentric coordinates for point (px, py) in the
// triangle (x0,y0)-(x1,y1)-(x2,y2). ok is false when the screen-space
// triangle has zero area.
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) (u, v, w float64, ok bool) {
	v0x, v0y := x2-x0, y2-y0
	v1x, v1y := x1-x0, y1-y0
	v2x, v2y := px-x0, py-y0

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 || math.IsNaN(denom) {
		return 0, 0, 0, false
	}
	invDenom := 1.0 / denom
	b := (dot11*dot02 - dot01*dot12) * invDenom
	a := (dot00*dot12 - dot01*dot02) * invDenom
	return 1 - a - b, a, b, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min3i(a, b, c int) int {
	return min(a, min(b, c))
}

func max3i(a, b, c int) int {
	return max(a, max(b, c))
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
