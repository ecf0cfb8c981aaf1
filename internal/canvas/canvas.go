// Package canvas defines the drawing surface the icon designs are rendered
// onto, and the registry of renderer backends that provide it.
//
// Coordinates follow the pixel-box convention of classic raster drawing
// APIs: a Box [X0, Y0, X1, Y1] covers the pixels X0..X1 and Y0..Y1
// inclusive, so its area in continuous space is [X0, X1+1) × [Y0, Y1+1).
// Points used for lines and polygon vertices address pixel centers.
package canvas

import (
	"image"
	"image/color"
)

// Point addresses the center of pixel (X, Y)
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Center returns the continuous coordinates of the pixel center
func (p Point) Center() (float64, float64) {
	return p.X + 0.5, p.Y + 0.5
}

// Box is an inclusive pixel rectangle
type Box struct {
	X0, Y0, X1, Y1 float64
}

// Bounds returns the continuous extent of the box as min/max coordinates
func (b Box) Bounds() (minX, minY, maxX, maxY float64) {
	return b.X0, b.Y0, b.X1 + 1, b.Y1 + 1
}

// Center returns the continuous center of the box
func (b Box) Center() (float64, float64) {
	minX, minY, maxX, maxY := b.Bounds()
	return (minX + maxX) / 2, (minY + maxY) / 2
}

// Radii returns the half extents of the box
func (b Box) Radii() (float64, float64) {
	minX, minY, maxX, maxY := b.Bounds()
	return (maxX - minX) / 2, (maxY - minY) / 2
}

// Inset shrinks the box by d on every side
func (b Box) Inset(d float64) Box {
	return Box{X0: b.X0 + d, Y0: b.Y0 + d, X1: b.X1 - d, Y1: b.Y1 - d}
}

// Canvas is a square RGBA drawing surface. Every operation composites
// source-over onto what has been drawn before.
type Canvas interface {
	// Size returns the edge length in pixels
	Size() int
	FillRoundedRect(box Box, radius float64, c color.NRGBA) error
	FillEllipse(box Box, c color.NRGBA) error
	// StrokeEllipse draws an outline of the given width inside the box
	StrokeEllipse(box Box, width float64, c color.NRGBA) error
	FillPolygon(points []Point, c color.NRGBA) error
	StrokeLine(from, to Point, width float64, c color.NRGBA) error
	// Image returns the composed pixels. The canvas stays usable until Close.
	Image() (*image.RGBA, error)
	// Close releases the backend. It is safe to call more than once.
	Close() error
}
