// pkg/render/color.go
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// ToRGBA converts a 0..1 float color into 8-bit RGBA, clamping out-of-range channels.
func ToRGBA(v mgl32.Vec4) color.RGBA {
	return color.RGBA{R: channel(v.X()), G: channel(v.Y()), B: channel(v.Z()), A: channel(v.W())}
}

// ToVec4 converts an 8-bit color into 0..1 floats.
func ToVec4(c color.RGBA) mgl32.Vec4 {
	return mgl32.Vec4{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

func channel(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
