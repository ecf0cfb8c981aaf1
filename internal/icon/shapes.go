package icon

import (
	"fmt"
	"image/color"

	"github.com/jo-hoe/goicons/internal/canvas"
)

// Shape is a single drawing step of a design
type Shape interface {
	Draw(c canvas.Canvas) error
}

// RoundedRect is a filled rectangle with rounded corners
type RoundedRect struct {
	Box    canvas.Box
	Radius float64
	Fill   color.NRGBA
}

func (s RoundedRect) Draw(c canvas.Canvas) error {
	return c.FillRoundedRect(s.Box, s.Radius, s.Fill)
}

// Ellipse is an ellipse inscribed in Box. It is filled when Fill is not
// fully transparent and outlined when Width is positive; the outline is
// drawn inside the box, on top of the fill.
type Ellipse struct {
	Box     canvas.Box
	Fill    color.NRGBA
	Outline color.NRGBA
	Width   float64
}

func (s Ellipse) Draw(c canvas.Canvas) error {
	if s.Fill.A > 0 {
		if err := c.FillEllipse(s.Box, s.Fill); err != nil {
			return err
		}
	}
	if s.Width > 0 {
		return c.StrokeEllipse(s.Box, s.Width, s.Outline)
	}
	return nil
}

// Polygon is a filled closed polygon
type Polygon struct {
	Points []canvas.Point
	Fill   color.NRGBA
}

func (s Polygon) Draw(c canvas.Canvas) error {
	return c.FillPolygon(s.Points, s.Fill)
}

// Line is a straight stroke between two pixel centers
type Line struct {
	From, To canvas.Point
	Width    float64
	Color    color.NRGBA
}

func (s Line) Draw(c canvas.Canvas) error {
	return c.StrokeLine(s.From, s.To, s.Width, s.Color)
}

// Group draws its shapes in order; it keeps composite glyphs together.
type Group struct {
	Name   string
	Shapes []Shape
}

func (g Group) Draw(c canvas.Canvas) error {
	for i, s := range g.Shapes {
		if err := s.Draw(c); err != nil {
			return fmt.Errorf("%s: shape %d: %w", g.Name, i, err)
		}
	}
	return nil
}
