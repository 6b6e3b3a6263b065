package main

// PixelSink is the minimal drawing target the renderer needs.
type PixelSink interface {
	PutPixel(x, y int, color uint32)
}

// TextRenderer paints BitFont glyphs cell by cell. Every pixel of a cell is
// written, so drawing over old content needs no separate clear.
type TextRenderer struct {
	font *BitFont
	fg   uint32
	bg   uint32
}

func NewTextRenderer(font *BitFont, fg, bg uint32) *TextRenderer {
	if font == nil {
		font = DefaultBitFont()
	}
	return &TextRenderer{font: font, fg: fg, bg: bg}
}

func (tr *TextRenderer) SetColors(fg, bg uint32) {
	tr.fg = fg
	tr.bg = bg
}

func (tr *TextRenderer) Colors() (fg, bg uint32) {
	return tr.fg, tr.bg
}

// DrawChar paints ch with its top-left corner at (x, y).
func (tr *TextRenderer) DrawChar(dst PixelSink, x, y int, ch rune) {
	tr.drawGlyph(dst, x, y, ch, tr.fg, tr.bg)
}

// DrawString paints s left to right and returns the x after the last cell.
// Newlines are skipped without advancing.
func (tr *TextRenderer) DrawString(dst PixelSink, x, y int, s string) int {
	return tr.DrawStringColored(dst, x, y, s, tr.fg, tr.bg)
}

func (tr *TextRenderer) DrawStringColored(dst PixelSink, x, y int, s string, fg, bg uint32) int {
	for _, ch := range s {
		if ch == '\n' {
			continue
		}
		tr.drawGlyph(dst, x, y, ch, fg, bg)
		x += GLYPH_WIDTH
	}
	return x
}

// DrawBlock fills one cell with a solid color.
func (tr *TextRenderer) DrawBlock(dst PixelSink, x, y int, color uint32) {
	for gy := range GLYPH_HEIGHT {
		for gx := range GLYPH_WIDTH {
			dst.PutPixel(x+gx, y+gy, color)
		}
	}
}

func (tr *TextRenderer) drawGlyph(dst PixelSink, x, y int, ch rune, fg, bg uint32) {
	glyph := tr.font.Glyph(ch)
	for gy := range GLYPH_HEIGHT {
		rowBits := glyph[gy]
		for gx := range GLYPH_WIDTH {
			color := bg
			if (rowBits & (0x80 >> gx)) != 0 {
				color = fg
			}
			dst.PutPixel(x+gx, y+gy, color)
		}
	}
}
