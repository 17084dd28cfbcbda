package render

import (
	"encoding/binary"
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatAt(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestSpriteArgsLayout(t *testing.T) {
	a := SpriteArgs{
		Position:  mgl32.Vec3{1, 2, 3},
		Size:      mgl32.Vec2{4, 5},
		Color:     mgl32.Vec4{6, 7, 8, 9},
		Rotation:  mgl32.Vec3{10, 11, 12},
		TexCoords: mgl32.Vec2{13, 14},
		TexSize:   mgl32.Vec2{15, 16},
	}
	buf := a.Marshal()
	require.Len(t, buf, SpriteArgsSize)

	assert.Equal(t, float32(3), floatAt(buf, 8))
	assert.Zero(t, floatAt(buf, 12), "position padding")
	assert.Equal(t, float32(4), floatAt(buf, 16))
	assert.Zero(t, floatAt(buf, 24), "size padding")
	assert.Equal(t, float32(6), floatAt(buf, 32))
	assert.Equal(t, float32(10), floatAt(buf, 48))
	assert.Equal(t, float32(13), floatAt(buf, 64))
	assert.Equal(t, float32(16), floatAt(buf, 76))

	back, err := DecodeSpriteArgs(buf)
	require.NoError(t, err)
	assert.Equal(t, a, back)

	_, err = DecodeSpriteArgs(buf[:10])
	assert.Error(t, err)
}

func TestStride(t *testing.T) {
	assert.Equal(t, 256, Stride(SpriteArgsSize, 256))
	assert.Equal(t, 256, Stride(256, 256))
	assert.Equal(t, 512, Stride(257, 256))
	assert.Equal(t, 80, Stride(80, 0))
}

func TestProjectPoint(t *testing.T) {
	x, y, ok := ProjectPoint(mgl32.Ident4(), mgl32.Vec3{0, 0, 0.5}, 200, 100)
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1e-4)
	assert.InDelta(t, 50, y, 1e-4)

	x, y, _ = ProjectPoint(mgl32.Ident4(), mgl32.Vec3{1, 1, 0}, 200, 100)
	assert.InDelta(t, 200, x, 1e-4)
	assert.InDelta(t, 0, y, 1e-4)
}

func TestQuadCornersRotate(t *testing.T) {
	a := SpriteArgs{Size: mgl32.Vec2{1, 1}, Rotation: mgl32.Vec3{math.Pi / 2, 0, 0}}
	c := QuadCorners(a)
	// после поворота на 90° правый нижний угол (1,-1) переходит в (1,1)
	assert.InDelta(t, 1, c[1].X(), 1e-5)
	assert.InDelta(t, 1, c[1].Y(), 1e-5)
}

func TestColorConversions(t *testing.T) {
	c := ToRGBA(mgl32.Vec4{0.1, 0.2, 1.5, -1})
	assert.Equal(t, uint8(26), c.R)
	assert.Equal(t, uint8(255), c.B)
	assert.Zero(t, c.A)
	assert.InDelta(t, 1, ToVec4(c).Z(), 1e-6)
	assert.Equal(t, uint8(13), DarkenColor(c).R)
}

func TestTint(t *testing.T) {
	base := GlyphShip.Color()
	assert.Equal(t, base, Tint(base, mgl32.Vec4{1, 0, 0, 0}), "zero weight keeps the glyph color")

	red := Tint(base, mgl32.Vec4{1, 0, 0, 1})
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, red)

	half := Tint(color.RGBA{0, 0, 0, 128}, mgl32.Vec4{1, 1, 1, 0.5})
	assert.Equal(t, uint8(128), half.R)
	assert.Equal(t, uint8(128), half.A, "alpha comes from the glyph")

	assert.Equal(t, GlyphNone.Color(), Glyph(99).Color())
}
