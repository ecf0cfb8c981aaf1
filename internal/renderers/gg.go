package renderers

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
	"github.com/jo-hoe/goicons/internal/canvas"
)

// GGName is the registry name of the gogpu/gg backend
const GGName = "gg"

type ggCanvas struct {
	size int
	dc   *gg.Context
}

// NewGGCanvas creates a transparent canvas backed by a software gg context
func NewGGCanvas(size int) (canvas.Canvas, error) {
	return &ggCanvas{
		size: size,
		dc:   gg.NewContext(size, size),
	}, nil
}

func (c *ggCanvas) Size() int {
	return c.size
}

func (c *ggCanvas) FillRoundedRect(box canvas.Box, radius float64, clr color.NRGBA) error {
	minX, minY, maxX, maxY := box.Bounds()
	c.dc.SetColor(clr)
	c.dc.DrawRoundedRectangle(minX, minY, maxX-minX, maxY-minY, radius)
	return c.dc.Fill()
}

func (c *ggCanvas) FillEllipse(box canvas.Box, clr color.NRGBA) error {
	cx, cy := box.Center()
	rx, ry := box.Radii()
	c.dc.SetColor(clr)
	c.dc.DrawEllipse(cx, cy, rx, ry)
	return c.dc.Fill()
}

func (c *ggCanvas) StrokeEllipse(box canvas.Box, width float64, clr color.NRGBA) error {
	path := box.Inset(width / 2)
	cx, cy := path.Center()
	rx, ry := path.Radii()
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(width)
	c.dc.DrawEllipse(cx, cy, rx, ry)
	return c.dc.Stroke()
}

func (c *ggCanvas) FillPolygon(points []canvas.Point, clr color.NRGBA) error {
	if len(points) < 3 {
		return errTooFewPoints(len(points))
	}
	c.dc.SetColor(clr)
	c.dc.MoveTo(points[0].Center())
	for _, p := range points[1:] {
		c.dc.LineTo(p.Center())
	}
	c.dc.ClosePath()
	return c.dc.Fill()
}

func (c *ggCanvas) StrokeLine(from, to canvas.Point, width float64, clr color.NRGBA) error {
	fx, fy := from.Center()
	tx, ty := to.Center()
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(width)
	c.dc.SetLineCap(gg.LineCapButt)
	c.dc.DrawLine(fx, fy, tx, ty)
	return c.dc.Stroke()
}

func (c *ggCanvas) Image() (*image.RGBA, error) {
	if err := c.dc.FlushGPU(); err != nil {
		return nil, err
	}
	img := c.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out, nil
}

func (c *ggCanvas) Close() error {
	return c.dc.Close()
}
