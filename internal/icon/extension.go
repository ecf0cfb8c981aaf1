package icon

import "github.com/jo-hoe/goicons/internal/canvas"

// ExtensionSize is the edge length the extension icon is drawn at
const ExtensionSize = 128

var (
	extensionBlue     = rgba(37, 99, 235, 255)
	extensionFold     = rgba(30, 64, 175, 200)
	extensionText     = rgba(37, 99, 235, 200)
	extensionDocument = rgba(255, 255, 255, 240)
	extensionArrow    = rgba(255, 255, 255, 230)
)

// ExtensionIcon is the browser extension icon: a blue tile with a white
// document, a folded corner, three text lines and an export arrow.
func ExtensionIcon() Design {
	const (
		docX, docY = 30, 22
		docW, docH = 44, 56
		foldSize   = 14
	)

	return Design{
		Name: "extension",
		Size: ExtensionSize,
		Layers: []Group{
			{Name: "background", Shapes: []Shape{
				RoundedRect{
					Box:    canvas.Box{X0: 4, Y0: 4, X1: ExtensionSize - 4, Y1: ExtensionSize - 4},
					Radius: 24,
					Fill:   extensionBlue,
				},
			}},
			{Name: "document", Shapes: []Shape{
				RoundedRect{
					Box:    canvas.Box{X0: docX, Y0: docY, X1: docX + docW, Y1: docY + docH},
					Radius: 4,
					Fill:   extensionDocument,
				},
			}},
			{Name: "fold", Shapes: []Shape{
				Polygon{
					Points: []canvas.Point{
						canvas.Pt(docX+docW-foldSize, docY),
						canvas.Pt(docX+docW, docY+foldSize),
						canvas.Pt(docX+docW-foldSize, docY+foldSize),
					},
					Fill: extensionFold,
				},
			}},
			{Name: "text", Shapes: []Shape{
				Line{From: canvas.Pt(38, 44), To: canvas.Pt(66, 44), Width: 4, Color: extensionText},
				Line{From: canvas.Pt(38, 54), To: canvas.Pt(58, 54), Width: 4, Color: extensionText},
				Line{From: canvas.Pt(38, 64), To: canvas.Pt(66, 64), Width: 4, Color: extensionText},
			}},
			{Name: "arrow", Shapes: []Shape{
				Line{From: canvas.Pt(72, 78), To: canvas.Pt(100, 100), Width: 5, Color: extensionArrow},
				Polygon{
					Points: []canvas.Point{canvas.Pt(100, 100), canvas.Pt(88, 100), canvas.Pt(100, 88)},
					Fill:   extensionArrow,
				},
			}},
		},
	}
}
