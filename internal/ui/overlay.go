//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// minGridScale is the smallest cell size at which grid lines stay readable.
const minGridScale = 4

var (
	gridLineColor = color.RGBA{R: 34, G: 40, B: 49, A: 255}
	hoverColor    = color.RGBA{R: 238, G: 238, B: 238, A: 200}
)

// Overlay draws optional guides on top of the cell grid.
type Overlay struct {
	sim      core.Sim
	scale    int
	showGrid bool

	hoverX, hoverY int
	hovering       bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles grid lines and tracks the cell under the cursor.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	o.hovering = false
	if o.scale <= 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	size := o.sim.Size()
	if mx < 0 || my < 0 || mx >= size.W*o.scale || my >= size.H*o.scale {
		return
	}
	o.hoverX, o.hoverY = mx/o.scale, my/o.scale
	o.hovering = true
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 || o.scale <= 0 {
		return
	}
	if o.showGrid && o.scale >= minGridScale {
		o.drawGrid(screen, size)
	}
	if o.hovering {
		o.drawOutline(screen, o.hoverX*o.scale, o.hoverY*o.scale, o.scale, hoverColor)
	}
}

func (o *Overlay) drawGrid(screen *ebiten.Image, size core.Size) {
	width := size.W * o.scale
	height := size.H * o.scale
	for x := 1; x < size.W; x++ {
		o.fillRect(screen, x*o.scale, 0, 1, height, gridLineColor)
	}
	for y := 1; y < size.H; y++ {
		o.fillRect(screen, 0, y*o.scale, width, 1, gridLineColor)
	}
}

func (o *Overlay) drawOutline(screen *ebiten.Image, x, y, side int, c color.Color) {
	o.fillRect(screen, x, y, side, 1, c)
	o.fillRect(screen, x, y+side-1, side, 1, c)
	o.fillRect(screen, x, y, 1, side, c)
	o.fillRect(screen, x+side-1, y, 1, side, c)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
