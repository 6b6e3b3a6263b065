package main

import "image"

// WindowDecorations paints the title bar, caption buttons and border
// around the terminal content area.
type WindowDecorations struct {
	Title   string
	Width   int
	Height  int
	Active  bool
	Palette Palette
}

func NewWindowDecorations(title string, width, height int, palette Palette) *WindowDecorations {
	return &WindowDecorations{
		Title:   title,
		Width:   width,
		Height:  height,
		Active:  true,
		Palette: palette,
	}
}

// ContentArea returns the rectangle text is drawn into.
func (d *WindowDecorations) ContentArea() image.Rectangle {
	x := BORDER_WIDTH + CONTENT_PADDING
	y := TITLE_BAR_HEIGHT + CONTENT_PADDING
	w := d.Width - 2*BORDER_WIDTH - 2*CONTENT_PADDING
	h := d.Height - TITLE_BAR_HEIGHT - BORDER_WIDTH - 2*CONTENT_PADDING
	return image.Rect(x, y, x+max(0, w), y+max(0, h))
}

// CloseButton returns the hit area of the close button.
func (d *WindowDecorations) CloseButton() image.Rectangle {
	return image.Rect(d.Width-BUTTON_WIDTH, 0, d.Width, TITLE_BAR_HEIGHT)
}

func (d *WindowDecorations) MinimizeButton() image.Rectangle {
	return image.Rect(d.Width-2*BUTTON_WIDTH, 0, d.Width-BUTTON_WIDTH, TITLE_BAR_HEIGHT)
}

func (d *WindowDecorations) Draw(dst Surface, tr *TextRenderer) {
	d.drawTitleBar(dst, tr)
	d.drawBorder(dst)
}

func (d *WindowDecorations) titleBarColor() uint32 {
	if d.Active {
		return d.Palette.TitleBarActive
	}
	return d.Palette.TitleBar
}

func (d *WindowDecorations) drawTitleBar(dst Surface, tr *TextRenderer) {
	bg := d.titleBarColor()
	dst.FillRect(image.Rect(0, 0, d.Width, TITLE_BAR_HEIGHT), bg)

	titleWidth := len([]rune(d.Title)) * GLYPH_WIDTH
	titleX := max(0, (d.Width-titleWidth)/2)
	textY := (TITLE_BAR_HEIGHT - GLYPH_HEIGHT) / 2
	tr.DrawStringColored(dst, titleX, textY, d.Title, d.Palette.TitleText, bg)

	d.drawButton(dst, tr, d.CloseButton(), "X", d.Palette.CloseHover)
	d.drawButton(dst, tr, d.MinimizeButton(), "-", d.Palette.MinimizeHover)
}

func (d *WindowDecorations) drawButton(dst Surface, tr *TextRenderer, r image.Rectangle, label string, bg uint32) {
	dst.FillRect(r, bg)
	x := r.Min.X + (BUTTON_WIDTH-GLYPH_WIDTH)/2
	y := (TITLE_BAR_HEIGHT - GLYPH_HEIGHT) / 2
	tr.DrawStringColored(dst, x, y, label, d.Palette.TitleText, bg)
}

func (d *WindowDecorations) drawBorder(dst Surface) {
	c := d.Palette.Border
	dst.FillRect(image.Rect(0, TITLE_BAR_HEIGHT, BORDER_WIDTH, d.Height), c)
	dst.FillRect(image.Rect(d.Width-BORDER_WIDTH, TITLE_BAR_HEIGHT, d.Width, d.Height), c)
	dst.FillRect(image.Rect(0, d.Height-BORDER_WIDTH, d.Width, d.Height), c)
}

// contentGrid returns the text grid that fits a window of the given size.
func contentGrid(width, height int) (cols, rows int) {
	w := width - 2*BORDER_WIDTH - 2*CONTENT_PADDING
	h := height - TITLE_BAR_HEIGHT - BORDER_WIDTH - 2*CONTENT_PADDING
	return max(1, w/GLYPH_WIDTH), max(1, h/GLYPH_HEIGHT)
}

// windowSizeForGrid is the inverse of contentGrid.
func windowSizeForGrid(cols, rows int) (width, height int) {
	width = cols*GLYPH_WIDTH + 2*BORDER_WIDTH + 2*CONTENT_PADDING
	height = rows*GLYPH_HEIGHT + TITLE_BAR_HEIGHT + BORDER_WIDTH + 2*CONTENT_PADDING
	return width, height
}
