// glyph_font.go - 8x16 bitmap glyphs rasterized from an x/image font face

package main

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BitFont maps runes to 8x16 bit cells. Bit 7 of each row byte is the
// leftmost pixel. Latin-1 is rasterized up front, everything else on first
// use.
type BitFont struct {
	face    font.Face
	ascent  int
	yOffset int

	table [256][GLYPH_HEIGHT]byte

	mu       sync.Mutex
	extra    map[rune][GLYPH_HEIGHT]byte
	fallback [GLYPH_HEIGHT]byte
}

var (
	defaultFontOnce sync.Once
	defaultFont     *BitFont
)

// DefaultBitFont returns the shared font built from basicfont.Face7x13.
func DefaultBitFont() *BitFont {
	defaultFontOnce.Do(func() {
		defaultFont = NewBitFont(basicfont.Face7x13)
	})
	return defaultFont
}

func NewBitFont(face font.Face) *BitFont {
	m := face.Metrics()
	height := m.Height.Ceil()
	bf := &BitFont{
		face:    face,
		ascent:  m.Ascent.Ceil(),
		yOffset: max(0, (GLYPH_HEIGHT-height)/2),
		extra:   make(map[rune][GLYPH_HEIGHT]byte),
	}

	if g, ok := bf.rasterize('�'); ok {
		bf.fallback = g
	} else {
		bf.fallback = hollowBoxGlyph()
	}
	for r := range len(bf.table) {
		bf.table[r] = bf.lookup(rune(r))
	}
	return bf
}

// Glyph returns the cell for r. It never fails: unmapped runes get the
// replacement glyph.
func (bf *BitFont) Glyph(r rune) [GLYPH_HEIGHT]byte {
	if r >= 0 && int(r) < len(bf.table) {
		return bf.table[r]
	}
	bf.mu.Lock()
	defer bf.mu.Unlock()
	if g, ok := bf.extra[r]; ok {
		return g
	}
	g := bf.lookup(r)
	bf.extra[r] = g
	return g
}

func (bf *BitFont) lookup(r rune) [GLYPH_HEIGHT]byte {
	if isBlankRune(r) {
		return [GLYPH_HEIGHT]byte{}
	}
	if g, ok := bf.rasterize(r); ok {
		return g
	}
	return bf.fallback
}

func isBlankRune(r rune) bool {
	return r < 0x20 || r == ' ' || (r >= 0x7F && r <= 0xA0)
}

// rasterize thresholds the face's alpha mask into a bit cell. It reports
// false when the face has no glyph of its own for r.
func (bf *BitFont) rasterize(r rune) ([GLYPH_HEIGHT]byte, bool) {
	var glyph [GLYPH_HEIGHT]byte
	dr, mask, maskp, _, ok := bf.face.Glyph(fixed.P(0, bf.ascent), r)
	if !ok || mask == nil {
		return glyph, false
	}
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		gy := bf.yOffset + y
		if gy < 0 || gy >= GLYPH_HEIGHT {
			continue
		}
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if x < 0 || x >= GLYPH_WIDTH {
				continue
			}
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			if a > 0x7fff {
				glyph[gy] |= 0x80 >> x
			}
		}
	}
	return glyph, true
}

func hollowBoxGlyph() [GLYPH_HEIGHT]byte {
	var g [GLYPH_HEIGHT]byte
	g[2] = 0x7E
	for y := 3; y < GLYPH_HEIGHT-3; y++ {
		g[y] = 0x42
	}
	g[GLYPH_HEIGHT-3] = 0x7E
	return g
}
