package render

import "image/color"

// Palette maps the two cell states to colors.
type Palette struct {
	On  color.Color
	Off color.Color
}

// DefaultPalette returns teal live cells on a slate background.
func DefaultPalette() Palette {
	return Palette{
		On:  color.RGBA{R: 0x00, G: 0xAD, B: 0xB5, A: 0xFF},
		Off: color.RGBA{R: 0x39, G: 0x3E, B: 0x46, A: 0xFF},
	}
}

// Color returns the color for a single cell value.
func (p Palette) Color(cell uint8) color.Color {
	if cell != 0 {
		return p.On
	}
	return p.Off
}

// FillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// buf must hold four bytes per cell.
func FillBinaryRGBA(buf []byte, cells []uint8, p Palette) {
	rOn, gOn, bOn, aOn := p.On.RGBA()
	rOff, gOff, bOff, aOff := p.Off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
