// pkg/render/device.go
package render

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrShaderNotFound возвращают источники шейдеров, когда имя неизвестно.
var ErrShaderNotFound = errors.New("shader not found")

// LoadOp — что делать с содержимым цели в начале прохода.
type LoadOp int

const (
	LoadOpLoad  LoadOp = iota // сохранить то, что уже нарисовано
	LoadOpClear               // залить ClearColor
)

func (op LoadOp) String() string {
	if op == LoadOpClear {
		return "clear"
	}
	return "load"
}

// Buffer — буфер на стороне устройства.
type Buffer interface {
	Label() string
	Size() int
}

// Pipeline — скомпилированная программа отрисовки.
type Pipeline interface {
	Name() string
}

// View — поверхность, в которую идёт отрисовка.
type View interface {
	Size() (width, height int)
}

// PipelineDescriptor описывает программу. Устройства с одним исходником
// на программу (Kage) используют только Source.
type PipelineDescriptor struct {
	Name   string
	Source []byte
}

// Device — минимум, который рендеру нужен от графического API.
type Device interface {
	CreateBuffer(label string, size int) (Buffer, error)
	CreatePipeline(desc PipelineDescriptor) (Pipeline, error)
	CreateEncoder() Encoder
	Queue() Queue
	// Surface возвращает текущую поверхность или false, если окна ещё нет
	// или оно свёрнуто до нулевого размера.
	Surface() (View, bool)
}

// Queue принимает записи в буферы и готовые списки команд.
// Записи, сделанные до Submit, видны командам этого Submit.
type Queue interface {
	WriteBuffer(buf Buffer, offset int, data []byte)
	Submit(cmd *CommandBuffer)
}

// PassDescriptor — параметры прохода.
type PassDescriptor struct {
	Target     View
	Load       LoadOp
	ClearColor mgl32.Vec4
}

// Encoder записывает проходы в список команд.
type Encoder interface {
	BeginPass(desc PassDescriptor) Pass
	Finish() *CommandBuffer
}

// Pass — открытый проход отрисовки.
type Pass interface {
	SetPipeline(p Pipeline)
	// SetBindGroup привязывает буфер к слоту с динамическим смещением в байтах.
	SetBindGroup(slot int, buf Buffer, dynamicOffset int)
	Draw(vertices, instances int)
	End()
}

// ShaderSource отдаёт исходник или бинарник шейдера по символическому имени.
type ShaderSource interface {
	Shader(name string) ([]byte, error)
}

// Camera — то, что рендеру нужно от камеры.
type Camera interface {
	Position() mgl32.Vec3
	ViewProjection(width, height int) mgl32.Mat4
}
