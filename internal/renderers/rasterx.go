package renderers

import (
	"image"
	"image/color"

	"github.com/jo-hoe/goicons/internal/canvas"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// RasterxName is the registry name of the rasterx backend
const RasterxName = "rasterx"

// miterLimit only matters for joins; icon strokes are single segments or
// closed ellipses.
const miterLimit = 4

type rasterxCanvas struct {
	size    int
	img     *image.RGBA
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// NewRasterxCanvas creates a transparent canvas drawn with the rasterx scan converter
func NewRasterxCanvas(size int) (canvas.Canvas, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	return &rasterxCanvas{
		size:    size,
		img:     img,
		filler:  rasterx.NewFiller(size, size, scanner),
		stroker: rasterx.NewStroker(size, size, scanner),
	}, nil
}

func (c *rasterxCanvas) Size() int {
	return c.size
}

func (c *rasterxCanvas) FillRoundedRect(box canvas.Box, radius float64, clr color.NRGBA) error {
	minX, minY, maxX, maxY := box.Bounds()
	rasterx.AddRoundRect(minX, minY, maxX, maxY, radius, radius, 0, rasterx.RoundGap, c.filler)
	c.fill(clr)
	return nil
}

func (c *rasterxCanvas) FillEllipse(box canvas.Box, clr color.NRGBA) error {
	cx, cy := box.Center()
	rx, ry := box.Radii()
	rasterx.AddEllipse(cx, cy, rx, ry, 0, c.filler)
	c.fill(clr)
	return nil
}

func (c *rasterxCanvas) StrokeEllipse(box canvas.Box, width float64, clr color.NRGBA) error {
	// the stroke is centered on the path, so inset by half its width
	path := box.Inset(width / 2)
	cx, cy := path.Center()
	rx, ry := path.Radii()
	c.setStroke(width)
	rasterx.AddEllipse(cx, cy, rx, ry, 0, c.stroker)
	c.stroke(clr)
	return nil
}

func (c *rasterxCanvas) FillPolygon(points []canvas.Point, clr color.NRGBA) error {
	if len(points) < 3 {
		return errTooFewPoints(len(points))
	}
	c.filler.Start(rasterx.ToFixedP(points[0].Center()))
	for _, p := range points[1:] {
		c.filler.Line(rasterx.ToFixedP(p.Center()))
	}
	c.filler.Stop(true)
	c.fill(clr)
	return nil
}

func (c *rasterxCanvas) StrokeLine(from, to canvas.Point, width float64, clr color.NRGBA) error {
	c.setStroke(width)
	c.stroker.Start(rasterx.ToFixedP(from.Center()))
	c.stroker.Line(rasterx.ToFixedP(to.Center()))
	c.stroker.Stop(false)
	c.stroke(clr)
	return nil
}

func (c *rasterxCanvas) Image() (*image.RGBA, error) {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out, nil
}

// Close is a no-op; the scanner holds no resources beyond its buffers.
func (c *rasterxCanvas) Close() error {
	return nil
}

func (c *rasterxCanvas) fill(clr color.NRGBA) {
	c.filler.SetColor(clr)
	c.filler.Draw()
	c.filler.Clear()
}

func (c *rasterxCanvas) stroke(clr color.NRGBA) {
	c.stroker.SetColor(clr)
	c.stroker.Draw()
	c.stroker.Clear()
}

func (c *rasterxCanvas) setStroke(width float64) {
	c.stroker.SetStroke(
		fixed.Int26_6(width*64),
		fixed.Int26_6(miterLimit*64),
		rasterx.ButtCap, rasterx.ButtCap,
		rasterx.RoundGap, rasterx.Round)
}
