package detect

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// PNG layout constants
const (
	pngSignature      = "\x89PNG\r\n\x1a\n"
	chunkHeaderLen    = 8
	chunkCRCLen       = 4
	chunkTransparency = "tRNS"
	chunkImageData    = "IDAT"
	chunkImageEnd     = "IEND"

	opaqueAlpha = 0xffff
)

// Image is a decoded PNG together with the metadata the detector needs
type Image struct {
	image.Image

	// HasTransparencyChunk is true when the file carries a tRNS chunk
	HasTransparencyChunk bool
}

// Decode reads a whole PNG stream, records its transparency metadata and
// decodes the pixels.
func Decode(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode png: %w", err)
	}

	return &Image{
		Image:                img,
		HasTransparencyChunk: hasChunk(data, chunkTransparency),
	}, nil
}

// Inspect opens the PNG at path and reports whether it has transparency
func Inspect(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return false, err
	}
	return HasTransparency(img), nil
}

// HasTransparency applies the classification policy: explicit tRNS metadata
// wins, palette images need a used non-opaque index, direct alpha images need
// a minimum alpha below full opacity. Every other color model is opaque.
func HasTransparency(img *Image) bool {
	if img == nil || img.Image == nil {
		return false
	}
	if img.HasTransparencyChunk {
		return true
	}

	switch m := img.Image.(type) {
	case *image.Paletted:
		return usesTransparentIndex(m)
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		lo, _ := AlphaExtrema(m)
		return lo < opaqueAlpha
	default:
		return false
	}
}

// TransparentIndices returns the palette slots whose alpha is below full opacity
func TransparentIndices(m *image.Paletted) map[uint8]bool {
	indices := make(map[uint8]bool)
	for i, c := range m.Palette {
		if i > 0xff {
			break
		}
		if _, _, _, a := c.RGBA(); a < opaqueAlpha {
			indices[uint8(i)] = true
		}
	}
	return indices
}

// usesTransparentIndex reports whether any pixel refers to a transparent slot
func usesTransparentIndex(m *image.Paletted) bool {
	transparent := TransparentIndices(m)
	if len(transparent) == 0 {
		return false
	}

	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.Pix[m.PixOffset(b.Min.X, y):m.PixOffset(b.Max.X, y)]
		for _, idx := range row {
			if transparent[idx] {
				return true
			}
		}
	}
	return false
}

// AlphaExtrema returns the minimum and maximum alpha values on the 16-bit
// scale. An empty image reports fully opaque extrema.
func AlphaExtrema(img image.Image) (lo, hi uint16) {
	b := img.Bounds()
	if b.Empty() {
		return opaqueAlpha, opaqueAlpha
	}

	lo, hi = opaqueAlpha, 0
	track := func(a uint16) {
		if a < lo {
			lo = a
		}
		if a > hi {
			hi = a
		}
	}

	switch m := img.(type) {
	case *image.NRGBA:
		alpha8Extrema(m.Pix, b, m.PixOffset, track)
	case *image.RGBA:
		alpha8Extrema(m.Pix, b, m.PixOffset, track)
	case *image.NRGBA64:
		alpha16Extrema(m.Pix, b, m.PixOffset, track)
	case *image.RGBA64:
		alpha16Extrema(m.Pix, b, m.PixOffset, track)
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				_, _, _, a := img.At(x, y).RGBA()
				track(uint16(a))
			}
		}
	}
	return lo, hi
}

func alpha8Extrema(pix []uint8, b image.Rectangle, offset func(x, y int) int, track func(uint16)) {
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := pix[offset(b.Min.X, y):offset(b.Max.X, y)]
		for i := 3; i < len(row); i += 4 {
			track(uint16(row[i]) * 0x101)
		}
	}
}

func alpha16Extrema(pix []uint8, b image.Rectangle, offset func(x, y int) int, track func(uint16)) {
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := pix[offset(b.Min.X, y):offset(b.Max.X, y)]
		for i := 6; i+1 < len(row); i += 8 {
			track(binary.BigEndian.Uint16(row[i:]))
		}
	}
}

// hasChunk walks the chunk list up to the first IDAT looking for the named
// ancillary chunk. Malformed input reports false and is left to the decoder.
func hasChunk(data []byte, name string) bool {
	if len(data) < len(pngSignature) || string(data[:len(pngSignature)]) != pngSignature {
		return false
	}

	pos := len(pngSignature)
	for pos+chunkHeaderLen <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		kind := string(data[pos+4 : pos+8])
		if kind == name {
			return true
		}
		if kind == chunkImageData || kind == chunkImageEnd || length < 0 {
			return false
		}
		pos += chunkHeaderLen + length + chunkCRCLen
	}
	return false
}
