package main

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// pixelCanvas is the software framebuffer shared by pixel surfaces. It is
// only touched from the frame loop; backends copy it out in Present.
type pixelCanvas struct {
	img *image.RGBA
}

func newPixelCanvas(width, height int) *pixelCanvas {
	return &pixelCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *pixelCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *pixelCanvas) PutPixel(x, y int, argb uint32) {
	if !(image.Point{x, y}.In(c.img.Rect)) {
		return
	}
	r, g, b, a := argbComponents(argb)
	if a != 0xFF {
		c.img.Set(x, y, color.NRGBA{r, g, b, a})
		return
	}
	i := c.img.PixOffset(x, y)
	pix := c.img.Pix[i : i+4 : i+4]
	pix[0], pix[1], pix[2], pix[3] = r, g, b, a
}

func (c *pixelCanvas) FillRect(rect image.Rectangle, argb uint32) {
	rect = rect.Intersect(c.img.Rect)
	if rect.Empty() {
		return
	}
	r, g, b, a := argbComponents(argb)
	draw.Draw(c.img, rect, image.NewUniform(color.NRGBA{r, g, b, a}), image.Point{}, draw.Src)
}

// At returns the packed 0xAARRGGBB color at (x, y).
func (c *pixelCanvas) At(x, y int) uint32 {
	if !(image.Point{x, y}.In(c.img.Rect)) {
		return 0
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	return uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
}

// copyPixels copies the RGBA bytes into dst, growing it when needed.
func (c *pixelCanvas) copyPixels(dst []byte) []byte {
	if len(dst) != len(c.img.Pix) {
		dst = make([]byte, len(c.img.Pix))
	}
	copy(dst, c.img.Pix)
	return dst
}
