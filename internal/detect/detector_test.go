package detect

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/png-sorter/internal/testutil"
)

func decodeFixture(t *testing.T, img image.Image) *Image {
	t.Helper()
	decoded, err := Decode(bytes.NewReader(testutil.EncodePNG(t, img)))
	require.NoError(t, err)
	return decoded
}

func TestHasTransparency_PalettedUsedIndex(t *testing.T) {
	decoded := decodeFixture(t, testutil.Paletted(4, 4, true))
	assert.True(t, HasTransparency(decoded))
}

func TestHasTransparency_PalettedInMemory(t *testing.T) {
	used := &Image{Image: testutil.Paletted(4, 4, true)}
	unused := &Image{Image: testutil.Paletted(4, 4, false)}

	assert.True(t, HasTransparency(used))
	assert.False(t, HasTransparency(unused))
}

func TestHasTransparency_PalettedMetadataWins(t *testing.T) {
	// The encoder writes tRNS for any palette with non-opaque slots, so an
	// unused transparent slot still classifies as transparent.
	decoded := decodeFixture(t, testutil.Paletted(4, 4, false))
	assert.True(t, decoded.HasTransparencyChunk)
	assert.True(t, HasTransparency(decoded))
}

func TestHasTransparency_OpaqueRGBA(t *testing.T) {
	img := &Image{Image: testutil.OpaqueRGBA(8, 8)}

	lo, hi := AlphaExtrema(img.Image)
	assert.Equal(t, lo, hi)
	assert.False(t, HasTransparency(img))

	decoded := decodeFixture(t, testutil.OpaqueRGBA(8, 8))
	assert.False(t, decoded.HasTransparencyChunk)
	assert.False(t, HasTransparency(decoded))
}

func TestHasTransparency_TranslucentRGBA(t *testing.T) {
	for _, alpha := range []uint8{0, 1, 128, 254} {
		decoded := decodeFixture(t, testutil.TranslucentRGBA(8, 8, alpha))
		assert.True(t, HasTransparency(decoded), "alpha %d", alpha)
	}
}

func TestHasTransparency_SixteenBit(t *testing.T) {
	img := image.NewNRGBA64(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA64(x, y, color.NRGBA64{R: 0x1234, A: 0xffff})
		}
	}
	assert.False(t, HasTransparency(&Image{Image: img}))

	img.SetNRGBA64(1, 1, color.NRGBA64{A: 0xfffe})
	assert.True(t, HasTransparency(&Image{Image: img}))

	rgba := image.NewRGBA64(image.Rect(0, 0, 2, 2))
	for i := range rgba.Pix {
		rgba.Pix[i] = 0xff
	}
	assert.False(t, HasTransparency(&Image{Image: rgba}))
}

func TestHasTransparency_OtherModesAreOpaque(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	assert.False(t, HasTransparency(&Image{Image: gray}))

	ycc := image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio444)
	assert.False(t, HasTransparency(&Image{Image: ycc}))

	assert.False(t, HasTransparency(nil))
	assert.False(t, HasTransparency(&Image{}))
}

func TestHasTransparency_TransparencyChunkOnTruecolor(t *testing.T) {
	data := testutil.EncodePNG(t, testutil.OpaqueRGBA(4, 4))
	// tRNS naming a color no pixel uses
	data = testutil.InsertChunkAfterHeader(data, "tRNS", []byte{0, 1, 0, 2, 0, 3})

	decoded, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, decoded.HasTransparencyChunk)
	assert.True(t, HasTransparency(decoded))
}

func TestAlphaExtrema(t *testing.T) {
	lo, hi := AlphaExtrema(testutil.TranslucentRGBA(4, 4, 0x80))
	assert.Equal(t, uint16(0x8080), lo)
	assert.Equal(t, uint16(0xffff), hi)

	lo, hi = AlphaExtrema(image.NewNRGBA(image.Rectangle{}))
	assert.Equal(t, uint16(0xffff), lo)
	assert.Equal(t, uint16(0xffff), hi)

	// Sub-images only look at their own bounds
	sub := testutil.TranslucentRGBA(4, 4, 0).SubImage(image.Rect(0, 0, 2, 2))
	lo, _ = AlphaExtrema(sub)
	assert.Equal(t, uint16(0xffff), lo)
}

func TestTransparentIndices(t *testing.T) {
	indices := TransparentIndices(testutil.Paletted(1, 1, false))
	assert.Equal(t, map[uint8]bool{1: true}, indices)
}

func TestDecode_Corrupt(t *testing.T) {
	_, err := Decode(bytes.NewReader(testutil.Corrupt()))
	assert.Error(t, err)
}

func TestHasChunk(t *testing.T) {
	assert.False(t, hasChunk([]byte("short"), "tRNS"))
	assert.False(t, hasChunk([]byte("not a png at all"), "tRNS"))
	assert.False(t, hasChunk(testutil.Corrupt(), "tRNS"))

	data := testutil.EncodePNG(t, testutil.OpaqueRGBA(2, 2))
	assert.True(t, hasChunk(data, "IHDR"))
	assert.False(t, hasChunk(data, "tRNS"))
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	transparent := testutil.WritePNG(t, dir, "t.png", testutil.TranslucentRGBA(3, 3, 10))
	opaque := testutil.WritePNG(t, dir, "o.png", testutil.OpaqueRGBA(3, 3))
	broken := testutil.WriteFile(t, dir, "b.png", testutil.Corrupt())

	got, err := Inspect(transparent)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Inspect(opaque)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = Inspect(broken)
	assert.Error(t, err)

	_, err = Inspect(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}
