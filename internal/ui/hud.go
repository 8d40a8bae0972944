//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var keyHelp = []string{
	"Space  step (hold)",
	"N      single step",
	"LMB    paint alive",
	"RMB    paint dead",
	"C      clear",
	"R / S  randomize",
	"G      grid lines",
	"Q      quit",
}

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor = color.RGBA{R: 0, G: 173, B: 181, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	provider   core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	title      string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, provider core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, provider: provider, width: width, title: buildTitle(sim)}
}

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update() {
	if h == nil || h.provider == nil {
		return
	}
	h.snapshot = h.provider.Parameters()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawContents()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += sectionGap

	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, param := range group.Params {
			text.Draw(h.panel, param.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, param.Value)
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += lineHeight
		}
		y += sectionGap - lineHeight
	}

	if y+len(keyHelp)*lineHeight > h.lastHeight {
		return
	}
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
		y += lineHeight
	}
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 18
	sectionGap     = 28
)
