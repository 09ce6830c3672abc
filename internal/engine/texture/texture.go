// Package texture loads BMP images and uploads them as OpenGL textures.
package texture

import (
	"fmt"
	"image"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/bmp"
)

// Image is tightly packed 8-bit RGB with the bottom row first, the order
// glTexImage2D expects.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// At returns the RGB triple at (x, y), with y counted from the bottom.
func (m *Image) At(x, y int) (r, g, b uint8) {
	i := (y*m.Width + x) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// LoadBMP reads a BMP file.
func LoadBMP(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := DecodeBMP(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// DecodeBMP decodes a BMP stream into bottom-up RGB.
func DecodeBMP(r io.Reader) (*Image, error) {
	src, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode bmp: %w", err)
	}
	return FromImage(src), nil
}

// FromImage converts any image to bottom-up RGB, dropping alpha.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := &Image{Width: w, Height: h, Pix: make([]byte, w*h*3)}

	for y := 0; y < h; y++ {
		row := (h - 1 - y) * w * 3
		for x := 0; x < w; x++ {
			r, g, bl, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := row + x*3
			out.Pix[i] = uint8(r >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(bl >> 8)
		}
	}
	return out
}

// Wrap is the texture coordinate wrap mode.
type Wrap int32

const (
	Clamp  Wrap = gl.CLAMP_TO_EDGE
	Repeat Wrap = gl.REPEAT
)

// Upload creates a linearly filtered 2D texture from img.
func Upload(img *Image, wrap Wrap) uint32 {
	var tex uint32
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(img.Width), int32(img.Height), 0,
		gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// Delete releases textures.
func Delete(textures ...uint32) {
	for i := range textures {
		if textures[i] != 0 {
			gl.DeleteTextures(1, &textures[i])
		}
	}
}
