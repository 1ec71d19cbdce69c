// Package testutil builds PNG fixtures for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// OpaqueRGBA returns an image where every pixel has alpha 255
func OpaqueRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 200, A: 255})
		}
	}
	return img
}

// TranslucentRGBA returns an opaque image with one pixel at the given alpha
func TranslucentRGBA(w, h int, alpha uint8) *image.NRGBA {
	img := OpaqueRGBA(w, h)
	img.SetNRGBA(w-1, h-1, color.NRGBA{R: 1, G: 2, B: 3, A: alpha})
	return img
}

// Paletted returns a palette image whose slot 1 is fully transparent. When
// useTransparent is false no pixel refers to slot 1.
func Paletted(w, h int, useTransparent bool) *image.Paletted {
	palette := color.Palette{
		color.NRGBA{R: 255, A: 255},
		color.NRGBA{},
		color.NRGBA{B: 255, A: 255},
	}
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette)
	for i := range img.Pix {
		img.Pix[i] = 2
	}
	if useTransparent {
		img.SetColorIndex(0, 0, 1)
	}
	return img
}

// EncodePNG encodes img to PNG bytes
func EncodePNG(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// WritePNG encodes img into dir/name and returns the path
func WritePNG(t testing.TB, dir, name string, img image.Image) string {
	t.Helper()
	return WriteFile(t, dir, name, EncodePNG(t, img))
}

// WriteFile writes raw bytes into dir/name and returns the path
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// InsertChunkAfterHeader returns a copy of a PNG stream with an extra chunk
// placed right after IHDR.
func InsertChunkAfterHeader(data []byte, kind string, payload []byte) []byte {
	const afterIHDR = 8 + 4 + 4 + 13 + 4

	chunk := make([]byte, 0, 12+len(payload))
	chunk = binary.BigEndian.AppendUint32(chunk, uint32(len(payload)))
	chunk = append(chunk, kind...)
	chunk = append(chunk, payload...)
	crc := crc32.NewIEEE()
	crc.Write([]byte(kind))
	crc.Write(payload)
	chunk = binary.BigEndian.AppendUint32(chunk, crc.Sum32())

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:afterIHDR]...)
	out = append(out, chunk...)
	out = append(out, data[afterIHDR:]...)
	return out
}

// Corrupt returns bytes that start like a PNG but cannot be decoded
func Corrupt() []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), []byte("definitely not chunks")...)
}
