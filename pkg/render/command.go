package render

import "image"

// Command is a single 2D draw operation emitted by the painter. Commands
// carry final screen coordinates and colors; executing them against a
// surface is the renderer's job, not the painter's.
type Command interface {
	draw(fb *Framebuffer)
}

// FillTriangle fills the triangle spanned by P with a solid color.
type FillTriangle struct {
	P     [3]image.Point
	Color Color
}

// Line draws a straight segment of the given width.
type Line struct {
	From, To image.Point
	Width    int
	Color    Color
}

// FillCircle fills a circle of the given radius around Center.
type FillCircle struct {
	Center image.Point
	Radius int
	Color  Color
}

func (c FillTriangle) draw(fb *Framebuffer) {
	fb.FillTriangle(c.P[0], c.P[1], c.P[2], c.Color)
}

func (c Line) draw(fb *Framebuffer) {
	fb.DrawThickLine(c.From, c.To, c.Width, c.Color)
}

func (c FillCircle) draw(fb *Framebuffer) {
	fb.FillCircle(c.Center, c.Radius, c.Color)
}
