package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
)

// Nine draws a nine-slice panel: fixed corners, stretched edges and centre.
type Nine struct {
	images            *ebiten.Image
	alpha             float64
	R, G, B, Scale    float64
	positions         [4][2]int
	x, y              int
	width, height     int
	scaleCenterWidth  float64
	scaleCenterHeight float64
	targetPositions   [4][2]float64
}

// newPanelNine builds a rounded panel source image in memory and wraps it.
func newPanelNine(r, g, b float64) (*Nine, error) {
	const side, radius = 24, 8
	src := image.NewNRGBA(image.Rect(0, 0, side, side))
	fill := color.NRGBA{255, 255, 255, 230}
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if insideRounded(x, y, side, radius) {
				src.SetNRGBA(x, y, fill)
			}
		}
	}
	img, err := ebiten.NewImageFromImage(src, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	return &Nine{
		images:    img,
		alpha:     1,
		R:         r,
		G:         g,
		B:         b,
		Scale:     1,
		positions: [4][2]int{{0, 0}, {radius, radius}, {side - radius, side - radius}, {side, side}},
	}, nil
}

func insideRounded(x, y, side, radius int) bool {
	cx, cy := x, y
	switch {
	case x < radius:
		cx = radius
	case x >= side-radius:
		cx = side - radius - 1
	}
	switch {
	case y < radius:
		cy = radius
	case y >= side-radius:
		cy = side - radius - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetPositions[0][0] = float64(n.x)
	n.targetPositions[0][1] = float64(n.y)

	n.targetPositions[1][0] = float64(n.x) + n.Scale*float64(n.positions[1][0])
	n.targetPositions[1][1] = float64(n.y) + n.Scale*float64(n.positions[1][1])

	n.targetPositions[2][0] = float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0])
	n.targetPositions[2][1] = float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])

	innerWidth := n.targetPositions[2][0] - n.targetPositions[1][0]
	innerHigh := n.targetPositions[2][1] - n.targetPositions[1][1]

	n.scaleCenterWidth = innerWidth / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = innerHigh / float64(n.positions[2][1]-n.positions[1][1])
}

func (n *Nine) SetAlpha(alpha float64) {
	n.alpha = alpha
}

// Draw paints the nine pieces row by row.
func (n *Nine) Draw(screen *ebiten.Image) {
	scaleX := [3]float64{n.Scale, n.scaleCenterWidth, n.Scale}
	scaleY := [3]float64{n.Scale, n.scaleCenterHeight, n.Scale}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scaleX[col], scaleY[row])
			op.GeoM.Translate(n.targetPositions[col][0], n.targetPositions[row][1])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			part := image.Rect(
				n.positions[col][0], n.positions[row][1],
				n.positions[col+1][0], n.positions[row+1][1])
			screen.DrawImage(n.images.SubImage(part).(*ebiten.Image), op)
		}
	}
}
