// pkg/render/renderer.go
package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Имена программ, которые рендер запрашивает у ShaderSource.
const (
	SpriteShader     = "sprite"
	BackgroundShader = "background"
)

// Слоты привязки.
const (
	SlotCamera = 0
	SlotSprite = 1
	SlotScene  = 0 // аргументы фона
)

// QuadVertices — вершины одного спрайта (два треугольника).
const QuadVertices = 6

// Options — параметры рендера.
type Options struct {
	Capacity   int     // записей в uniform-буфере спрайтов
	Alignment  int     // выравнивание динамического смещения, 0 — DefaultAlignment
	CellSize   float32 // размер ячейки атласа в текселях
	ClearColor mgl32.Vec4
	Logger     *zap.Logger
}

// FrameStats — что было отправлено за кадр.
type FrameStats struct {
	SpritePasses int
	Sprites      int
	Skipped      bool // поверхности или камеры нет, кадр пропущен
}

// Renderer рисует фон и спрайты через один uniform-буфер ограниченного размера.
// Когда спрайтов больше, чем помещается в буфер, кадр делится на несколько проходов.
type Renderer struct {
	dev   Device
	queue Queue
	opts  Options

	spritePipeline     Pipeline
	backgroundPipeline Pipeline

	spriteArgs     Buffer
	cameraArgs     Buffer
	backgroundArgs Buffer

	stride  int
	scratch []byte
	logger  *zap.Logger
}

// NewRenderer загружает шейдеры и создаёт буферы. Любая ошибка фатальна
// для рендера, но не для вызывающего: симуляция может жить без него.
func NewRenderer(dev Device, shaders ShaderSource, opts Options) (*Renderer, error) {
	if opts.Capacity <= 0 {
		return nil, fmt.Errorf("renderer capacity must be positive, got %d", opts.Capacity)
	}
	if opts.Alignment <= 0 {
		opts.Alignment = DefaultAlignment
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	r := &Renderer{
		dev:     dev,
		queue:   dev.Queue(),
		opts:    opts,
		stride:  Stride(SpriteArgsSize, opts.Alignment),
		scratch: make([]byte, SpriteArgsSize),
		logger:  opts.Logger,
	}

	var err error
	if r.spritePipeline, err = r.loadPipeline(shaders, SpriteShader); err != nil {
		return nil, err
	}
	if r.backgroundPipeline, err = r.loadPipeline(shaders, BackgroundShader); err != nil {
		return nil, err
	}

	if r.spriteArgs, err = dev.CreateBuffer("sprite_args", r.stride*opts.Capacity); err != nil {
		return nil, fmt.Errorf("create sprite buffer: %w", err)
	}
	if r.cameraArgs, err = dev.CreateBuffer("camera_args", CameraArgsSize); err != nil {
		return nil, fmt.Errorf("create camera buffer: %w", err)
	}
	if r.backgroundArgs, err = dev.CreateBuffer("background_args", BackgroundArgsSize); err != nil {
		return nil, fmt.Errorf("create background buffer: %w", err)
	}
	r.logger.Info("renderer ready",
		zap.Int("capacity", opts.Capacity),
		zap.Int("stride", r.stride),
		zap.Int("buffer_bytes", r.stride*opts.Capacity))
	return r, nil
}

func (r *Renderer) loadPipeline(shaders ShaderSource, name string) (Pipeline, error) {
	src, err := shaders.Shader(name)
	if err != nil {
		return nil, fmt.Errorf("load shader %q: %w", name, err)
	}
	p, err := r.dev.CreatePipeline(PipelineDescriptor{Name: name, Source: src})
	if err != nil {
		return nil, fmt.Errorf("create pipeline %q: %w", name, err)
	}
	return p, nil
}

// Capacity — сколько спрайтов помещается в один проход.
func (r *Renderer) Capacity() int { return r.opts.Capacity }

// Stride — шаг между записями в буфере спрайтов.
func (r *Renderer) Stride() int { return r.stride }

// Render рисует кадр: проход фона с очисткой, затем спрайты порциями по Capacity.
// Если поверхности или камеры нет, ничего не делает.
func (r *Renderer) Render(cam Camera, sprites SpriteSource) FrameStats {
	if cam == nil {
		r.logger.Debug("render skipped: no camera")
		return FrameStats{Skipped: true}
	}
	view, ok := r.dev.Surface()
	if !ok {
		r.logger.Debug("render skipped: surface unavailable")
		return FrameStats{Skipped: true}
	}
	width, height := view.Size()
	if width <= 0 || height <= 0 {
		return FrameStats{Skipped: true}
	}

	r.drawBackground(view, cam.Position(), float32(width)/float32(height))

	camArgs := CameraArgs{ViewProjection: cam.ViewProjection(width, height)}
	r.queue.WriteBuffer(r.cameraArgs, 0, camArgs.Marshal())

	var stats FrameStats
	sprite, more := sprites.Next()
	for more {
		enc := r.dev.CreateEncoder()
		pass := enc.BeginPass(PassDescriptor{Target: view, Load: LoadOpLoad})
		pass.SetPipeline(r.spritePipeline)
		pass.SetBindGroup(SlotCamera, r.cameraArgs, 0)

		written := 0
		for more && written < r.opts.Capacity {
			offset := written * r.stride
			args := r.spriteArgsFor(sprite)
			args.MarshalTo(r.scratch)
			r.queue.WriteBuffer(r.spriteArgs, offset, r.scratch)
			pass.SetBindGroup(SlotSprite, r.spriteArgs, offset)
			pass.Draw(QuadVertices, 1)
			written++
			sprite, more = sprites.Next()
		}
		pass.End()
		r.queue.Submit(enc.Finish())

		stats.SpritePasses++
		stats.Sprites += written
	}
	return stats
}

func (r *Renderer) drawBackground(view View, eye mgl32.Vec3, aspect float32) {
	args := BackgroundArgs{Position: eye, Aspect: aspect}
	r.queue.WriteBuffer(r.backgroundArgs, 0, args.Marshal())

	enc := r.dev.CreateEncoder()
	pass := enc.BeginPass(PassDescriptor{Target: view, Load: LoadOpClear, ClearColor: r.opts.ClearColor})
	pass.SetPipeline(r.backgroundPipeline)
	pass.SetBindGroup(SlotScene, r.backgroundArgs, 0)
	pass.Draw(QuadVertices, 1)
	pass.End()
	r.queue.Submit(enc.Finish())
}

func (r *Renderer) spriteArgsFor(s Sprite) SpriteArgs {
	cs := r.opts.CellSize
	return SpriteArgs{
		Position:  s.Position,
		Size:      s.Size,
		Color:     s.Color,
		Rotation:  s.Rotation,
		TexCoords: s.Cell.Mul(cs),
		TexSize:   mgl32.Vec2{cs, cs},
	}
}
