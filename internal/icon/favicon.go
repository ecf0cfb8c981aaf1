package icon

import "github.com/jo-hoe/goicons/internal/canvas"

// FaviconSize is the edge length the favicon is drawn at
const FaviconSize = 64

var (
	faviconGreen     = rgba(127, 190, 37, 255)
	faviconDarkGreen = rgba(90, 154, 16, 255)
	faviconFold      = rgba(90, 154, 16, 204)
	faviconDocument  = rgba(255, 255, 255, 242)
	faviconGlass     = rgba(255, 255, 255, 230)
)

// Favicon is the site icon: a green disc with a white document, a folded
// corner, three data lines and a magnifying glass.
func Favicon() Design {
	const (
		docX, docY = 18, 14
		docW, docH = 20, 26
	)

	return Design{
		Name: "favicon",
		Size: FaviconSize,
		Layers: []Group{
			{Name: "background", Shapes: []Shape{
				Ellipse{
					Box:     canvas.Box{X0: 2, Y0: 2, X1: FaviconSize - 2, Y1: FaviconSize - 2},
					Fill:    faviconGreen,
					Outline: faviconDarkGreen,
					Width:   2,
				},
			}},
			{Name: "document", Shapes: []Shape{
				RoundedRect{
					Box:    canvas.Box{X0: docX, Y0: docY, X1: docX + docW, Y1: docY + docH},
					Radius: 2,
					Fill:   faviconDocument,
				},
			}},
			{Name: "fold", Shapes: []Shape{
				Polygon{
					Points: []canvas.Point{canvas.Pt(30, 14), canvas.Pt(30, 20), canvas.Pt(36, 20)},
					Fill:   faviconFold,
				},
			}},
			{Name: "text", Shapes: []Shape{
				Line{From: canvas.Pt(22, 24), To: canvas.Pt(34, 24), Width: 2, Color: faviconGreen},
				Line{From: canvas.Pt(22, 28), To: canvas.Pt(30, 28), Width: 2, Color: faviconGreen},
				Line{From: canvas.Pt(22, 32), To: canvas.Pt(36, 32), Width: 2, Color: faviconGreen},
			}},
			{Name: "magnifier", Shapes: []Shape{
				Ellipse{
					Box:     canvas.Box{X0: 36, Y0: 36, X1: 52, Y1: 52},
					Outline: faviconGlass,
					Width:   3,
				},
				Line{From: canvas.Pt(50, 50), To: canvas.Pt(56, 56), Width: 3, Color: faviconGlass},
			}},
		},
	}
}
