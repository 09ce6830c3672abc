package ui2d

import (
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasColumns = 16
)

// Atlas is a grid of printable ASCII glyphs rasterized from the basicfont
// 7x13 face. It has no GL state and can be built in tests.
type Atlas struct {
	Image        *image.Alpha
	CellW, CellH int
}

// NewAtlas rasterizes the glyph grid.
func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	cellW, cellH := face.Advance, face.Height
	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasColumns - 1) / atlasColumns

	img := image.NewAlpha(image.Rect(0, 0, atlasColumns*cellW, rows*cellH))
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := firstGlyph; r <= lastGlyph; r++ {
		col, row := glyphCell(r)
		d.Dot = fixed.P(col*cellW, row*cellH+face.Ascent)
		d.DrawString(string(r))
	}

	return &Atlas{Image: img, CellW: cellW, CellH: cellH}
}

// UV returns the texture coordinates of a glyph. Runes outside the atlas
// map to '?'.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	col, row := glyphCell(r)
	b := a.Image.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	u0 = float32(col*a.CellW) / w
	v0 = float32(row*a.CellH) / h
	u1 = float32((col+1)*a.CellW) / w
	v1 = float32((row+1)*a.CellH) / h
	return u0, v0, u1, v1
}

func glyphCell(r rune) (col, row int) {
	i := int(r - firstGlyph)
	return i % atlasColumns, i / atlasColumns
}

// Font is an Atlas uploaded as a GL texture.
type Font struct {
	atlas   *Atlas
	texture uint32
}

// NewFont builds the atlas and uploads it. Glyph coverage goes into the
// alpha channel of an RGBA texture.
func NewFont() *Font {
	atlas := NewAtlas()
	b := atlas.Image.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, image.White, image.Point{}, draw.Src)
	for i, a := range atlas.Image.Pix {
		rgba.Pix[i*4+3] = a
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Font{atlas: atlas, texture: tex}
}

// TextureID returns the GL texture.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// GlyphSize returns the cell size in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.atlas.CellW, f.atlas.CellH
}

// GetGlyphUV returns the texture coordinates of a glyph.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	return f.atlas.UV(r)
}

// MeasureText returns the width and height of a single line at scale.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	n := 0
	for range text {
		n++
	}
	return float32(n*f.atlas.CellW) * scale, float32(f.atlas.CellH) * scale
}

// Close deletes the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
