// pkg/render/ebitendev/device.go
package ebitendev

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-space-shooter/pkg/render"
)

// Device исполняет команды рендера через ebiten: программы — шейдеры Kage,
// спрайты рисуются треугольниками из атласа.
type Device struct {
	atlas  *ebiten.Image
	target *ebiten.Image
	logger *zap.Logger

	compile func([]byte) (*ebiten.Shader, error)
	cache   map[uint64]*ebiten.Shader

	vertices []ebiten.Vertex
	indices  []uint16
}

// New создаёт устройство, которое берёт текстуры спрайтов из atlas.
func New(atlas *ebiten.Image, logger *zap.Logger) *Device {
	return newDevice(atlas, ebiten.NewShader, logger)
}

func newDevice(atlas *ebiten.Image, compile func([]byte) (*ebiten.Shader, error), logger *zap.Logger) *Device {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Device{
		atlas:   atlas,
		logger:  logger,
		compile: compile,
		cache:   make(map[uint64]*ebiten.Shader),
	}
}

// SetTarget задаёт изображение, в которое рисует следующий кадр (обычно screen из Draw).
func (d *Device) SetTarget(img *ebiten.Image) {
	d.target = img
}

type surface struct{ img *ebiten.Image }

func (s surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

type pipeline struct {
	name   string
	shader *ebiten.Shader
}

func (p *pipeline) Name() string { return p.name }

func (d *Device) CreateBuffer(label string, size int) (render.Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ebitendev: buffer %q: size must be positive, got %d", label, size)
	}
	return render.NewHostBuffer(label, size), nil
}

// CreatePipeline компилирует Kage-исходник. Одинаковые исходники компилируются
// один раз, поэтому перезагрузка без изменений ничего не стоит.
func (d *Device) CreatePipeline(desc render.PipelineDescriptor) (render.Pipeline, error) {
	key := xxhash.Sum64(desc.Source)
	if shader, ok := d.cache[key]; ok {
		d.logger.Debug("shader cache hit", zap.String("name", desc.Name), zap.Uint64("hash", key))
		return &pipeline{name: desc.Name, shader: shader}, nil
	}
	shader, err := d.compile(desc.Source)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", desc.Name, err)
	}
	d.cache[key] = shader
	d.logger.Debug("shader compiled", zap.String("name", desc.Name), zap.Uint64("hash", key))
	return &pipeline{name: desc.Name, shader: shader}, nil
}

func (d *Device) CreateEncoder() render.Encoder { return render.NewRecorder() }

func (d *Device) Queue() render.Queue { return d }

func (d *Device) Surface() (render.View, bool) {
	if d.target == nil {
		return nil, false
	}
	s := surface{d.target}
	if w, h := s.Size(); w <= 0 || h <= 0 {
		return nil, false
	}
	return s, true
}

func (d *Device) WriteBuffer(buf render.Buffer, offset int, data []byte) {
	buf.(*render.HostBuffer).Write(offset, data)
}

// Submit исполняет проходы по порядку. Спрайты одного прохода уходят в ebiten
// одним DrawTrianglesShader.
func (d *Device) Submit(cb *render.CommandBuffer) {
	for _, pass := range cb.Passes {
		s, ok := pass.Target.(surface)
		if !ok {
			d.logger.Warn("pass skipped: foreign target")
			continue
		}
		if pass.Load == render.LoadOpClear {
			s.img.Fill(render.ToRGBA(pass.ClearColor))
		}
		var sprites *pipeline
		for _, dc := range pass.Draws {
			p, ok := dc.Pipeline.(*pipeline)
			if !ok {
				continue
			}
			switch p.name {
			case render.BackgroundShader:
				d.drawBackground(s, p, dc)
			case render.SpriteShader:
				sprites = p
				d.appendSprite(s, dc)
			}
			if len(d.vertices) >= maxBatchVertices {
				d.flush(s, sprites)
			}
		}
		d.flush(s, sprites)
	}
}

// uint16-индексы ограничивают размер одной пачки.
const maxBatchVertices = 65536 - 4

func (d *Device) drawBackground(s surface, p *pipeline, dc render.DrawCall) {
	args, err := render.DecodeBackgroundArgs(render.BoundBytes(dc.Bindings[render.SlotScene]))
	if err != nil {
		d.logger.Debug("background skipped", zap.Error(err))
		return
	}
	w, h := s.Size()
	s.img.DrawRectShader(w, h, p.shader, &ebiten.DrawRectShaderOptions{
		Uniforms: map[string]any{
			"Offset": []float32{args.Position.X(), args.Position.Y()},
			"Aspect": args.Aspect,
		},
	})
}

func (d *Device) appendSprite(s surface, dc render.DrawCall) {
	args, err := render.DecodeSpriteArgs(render.BoundBytes(dc.Bindings[render.SlotSprite]))
	if err != nil {
		d.logger.Debug("sprite skipped", zap.Error(err))
		return
	}
	cam, err := render.DecodeCameraArgs(render.BoundBytes(dc.Bindings[render.SlotCamera]))
	if err != nil {
		d.logger.Debug("sprite skipped", zap.Error(err))
		return
	}
	w, h := s.Size()
	quad, ok := spriteVertices(args, cam.ViewProjection, w, h)
	if !ok {
		return
	}
	base := uint16(len(d.vertices))
	d.vertices = append(d.vertices, quad[:]...)
	d.indices = append(d.indices, base, base+1, base+2, base+1, base+3, base+2)
}

func (d *Device) flush(s surface, p *pipeline) {
	if len(d.indices) > 0 && p != nil {
		s.img.DrawTrianglesShader(d.vertices, d.indices, p.shader, &ebiten.DrawTrianglesShaderOptions{
			Images: [4]*ebiten.Image{d.atlas},
		})
	}
	d.vertices = d.vertices[:0]
	d.indices = d.indices[:0]
}

// spriteVertices проецирует углы спрайта на экран. Порядок вершин как у QuadCorners.
// ok=false, если хоть один угол за камерой.
func spriteVertices(args render.SpriteArgs, viewProj mgl32.Mat4, width, height int) ([4]ebiten.Vertex, bool) {
	var out [4]ebiten.Vertex
	corners := render.QuadCorners(args)
	tx, ty := args.TexCoords.X(), args.TexCoords.Y()
	ts := args.TexSize
	// в атласе y растёт вниз, поэтому нижние углы спрайта берут нижний край ячейки
	src := [4][2]float32{
		{tx, ty + ts.Y()},
		{tx + ts.X(), ty + ts.Y()},
		{tx, ty},
		{tx + ts.X(), ty},
	}
	for i, c := range corners {
		x, y, ok := render.ProjectPoint(viewProj, c, width, height)
		if !ok {
			return out, false
		}
		out[i] = ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   src[i][0],
			SrcY:   src[i][1],
			ColorR: args.Color.X(),
			ColorG: args.Color.Y(),
			ColorB: args.Color.Z(),
			ColorA: args.Color.W(),
		}
	}
	return out, true
}
