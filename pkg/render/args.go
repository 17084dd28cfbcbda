// pkg/render/args.go
package render

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Размеры записей в байтах. Раскладка повторяет uniform-структуры шейдеров:
// vec3 дополняется до 16 байт, vec2 размера тоже.
const (
	SpriteArgsSize     = 80
	CameraArgsSize     = 64
	BackgroundArgsSize = 16

	// DefaultAlignment — минимальное выравнивание динамического смещения uniform-буфера.
	DefaultAlignment = 256
)

// SpriteArgs — данные одного спрайта в uniform-буфере.
//
//	offset  0: position  vec3 + pad
//	offset 16: size      vec2 + pad2
//	offset 32: color     vec4
//	offset 48: rotation  vec3 + pad
//	offset 64: texcoords vec2
//	offset 72: texsize   vec2
type SpriteArgs struct {
	Position  mgl32.Vec3
	Size      mgl32.Vec2
	Color     mgl32.Vec4
	Rotation  mgl32.Vec3
	TexCoords mgl32.Vec2
	TexSize   mgl32.Vec2
}

// MarshalTo пишет запись в buf, которому нужно не меньше SpriteArgsSize байт.
func (a *SpriteArgs) MarshalTo(buf []byte) {
	_ = buf[SpriteArgsSize-1]
	putFloats(buf[0:], a.Position[:]...)
	putFloats(buf[12:], 0)
	putFloats(buf[16:], a.Size[:]...)
	putFloats(buf[24:], 0, 0)
	putFloats(buf[32:], a.Color[:]...)
	putFloats(buf[48:], a.Rotation[:]...)
	putFloats(buf[60:], 0)
	putFloats(buf[64:], a.TexCoords[:]...)
	putFloats(buf[72:], a.TexSize[:]...)
}

func (a *SpriteArgs) Marshal() []byte {
	buf := make([]byte, SpriteArgsSize)
	a.MarshalTo(buf)
	return buf
}

// DecodeSpriteArgs читает запись, записанную MarshalTo.
func DecodeSpriteArgs(buf []byte) (SpriteArgs, error) {
	if len(buf) < SpriteArgsSize {
		return SpriteArgs{}, fmt.Errorf("sprite args: need %d bytes, got %d", SpriteArgsSize, len(buf))
	}
	var a SpriteArgs
	getFloats(buf[0:], a.Position[:])
	getFloats(buf[16:], a.Size[:])
	getFloats(buf[32:], a.Color[:])
	getFloats(buf[48:], a.Rotation[:])
	getFloats(buf[64:], a.TexCoords[:])
	getFloats(buf[72:], a.TexSize[:])
	return a, nil
}

// CameraArgs — матрица вида-проекции, column-major как в mgl32.
type CameraArgs struct {
	ViewProjection mgl32.Mat4
}

func (c *CameraArgs) Marshal() []byte {
	buf := make([]byte, CameraArgsSize)
	putFloats(buf, c.ViewProjection[:]...)
	return buf
}

func DecodeCameraArgs(buf []byte) (CameraArgs, error) {
	if len(buf) < CameraArgsSize {
		return CameraArgs{}, fmt.Errorf("camera args: need %d bytes, got %d", CameraArgsSize, len(buf))
	}
	var c CameraArgs
	getFloats(buf, c.ViewProjection[:])
	return c, nil
}

// BackgroundArgs — положение камеры для параллакса фона.
type BackgroundArgs struct {
	Position mgl32.Vec3
	Aspect   float32
}

func (b *BackgroundArgs) Marshal() []byte {
	buf := make([]byte, BackgroundArgsSize)
	putFloats(buf, b.Position[0], b.Position[1], b.Position[2], b.Aspect)
	return buf
}

func DecodeBackgroundArgs(buf []byte) (BackgroundArgs, error) {
	if len(buf) < BackgroundArgsSize {
		return BackgroundArgs{}, fmt.Errorf("background args: need %d bytes, got %d", BackgroundArgsSize, len(buf))
	}
	var b BackgroundArgs
	getFloats(buf, b.Position[:])
	b.Aspect = math.Float32frombits(binary.LittleEndian.Uint32(buf[12:]))
	return b, nil
}

// Stride округляет размер записи вверх до кратного alignment.
func Stride(size, alignment int) int {
	if alignment <= 0 {
		return size
	}
	return (size + alignment - 1) / alignment * alignment
}

func putFloats(buf []byte, vs ...float32) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}

func getFloats(buf []byte, dst []float32) {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
}
