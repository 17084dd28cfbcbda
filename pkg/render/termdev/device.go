// pkg/render/termdev/device.go
package termdev

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"go-space-shooter/pkg/render"
)

// ErrUnsupportedProgram — терминал умеет исполнять только программы фона и спрайтов.
var ErrUnsupportedProgram = errors.New("termdev: unsupported program")

// Device исполняет команды рендера на экране tcell: одна клетка терминала на спрайт.
// Шейдеры не компилируются, устройство повторяет их поведение на CPU.
type Device struct {
	screen tcell.Screen
	glyphs render.GlyphMap
	logger *zap.Logger

	clearColor tcell.Color
	drawn      int
}

func New(screen tcell.Screen, glyphs render.GlyphMap, logger *zap.Logger) *Device {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Device{screen: screen, glyphs: glyphs, logger: logger, clearColor: tcell.ColorBlack}
}

type view struct{ w, h int }

func (v view) Size() (int, int) { return v.w, v.h }

type program string

func (p program) Name() string { return string(p) }

func (d *Device) CreateBuffer(label string, size int) (render.Buffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("termdev: buffer %q: size must be positive, got %d", label, size)
	}
	return render.NewHostBuffer(label, size), nil
}

func (d *Device) CreatePipeline(desc render.PipelineDescriptor) (render.Pipeline, error) {
	switch desc.Name {
	case render.SpriteShader, render.BackgroundShader:
		return program(desc.Name), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedProgram, desc.Name)
}

func (d *Device) CreateEncoder() render.Encoder { return render.NewRecorder() }

func (d *Device) Queue() render.Queue { return d }

// Surface — текущий размер терминала. Нулевой размер означает, что рисовать некуда.
func (d *Device) Surface() (render.View, bool) {
	w, h := d.screen.Size()
	if w <= 0 || h <= 0 {
		return nil, false
	}
	return view{w, h}, true
}

func (d *Device) WriteBuffer(buf render.Buffer, offset int, data []byte) {
	buf.(*render.HostBuffer).Write(offset, data)
}

// Submit рисует записанные проходы в задний буфер экрана.
func (d *Device) Submit(cb *render.CommandBuffer) {
	w, h := d.screen.Size()
	for _, pass := range cb.Passes {
		if pass.Load == render.LoadOpClear {
			d.clearColor = toColor(render.ToRGBA(pass.ClearColor))
			d.fill(w, h)
		}
		for _, dc := range pass.Draws {
			switch dc.Pipeline.Name() {
			case render.BackgroundShader:
				d.drawBackground(dc, w, h)
			case render.SpriteShader:
				d.drawSprite(dc, w, h)
			}
		}
	}
}

// Present выводит кадр на терминал и возвращает число нарисованных спрайтов.
func (d *Device) Present() int {
	d.screen.Show()
	n := d.drawn
	d.drawn = 0
	return n
}

func (d *Device) fill(w, h int) {
	style := tcell.StyleDefault.Background(d.clearColor)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawBackground рассыпает звёзды, сдвигая их вслед за камерой.
func (d *Device) drawBackground(dc render.DrawCall, w, h int) {
	args, err := render.DecodeBackgroundArgs(render.BoundBytes(dc.Bindings[render.SlotScene]))
	if err != nil {
		d.logger.Debug("background skipped", zap.Error(err))
		return
	}
	ox := int(math.Floor(float64(args.Position.X() * 2)))
	oy := int(math.Floor(float64(args.Position.Y())))
	style := tcell.StyleDefault.Background(d.clearColor).Foreground(tcell.NewRGBColor(140, 150, 170))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isStar(x-ox, y+oy) {
				d.screen.SetContent(x, y, '.', nil, style)
			}
		}
	}
}

func isStar(x, y int) bool {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(int64(x)))
	binary.LittleEndian.PutUint64(key[8:], uint64(int64(y)))
	return xxhash.Sum64(key[:])%100 < 2
}

func (d *Device) drawSprite(dc render.DrawCall, w, h int) {
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
	fx, fy, ok := render.ProjectPoint(cam.ViewProjection, args.Position, w, h)
	if !ok {
		return
	}
	x, y := int(math.Floor(float64(fx))), int(math.Floor(float64(fy)))
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	glyph := d.glyphs.Lookup(render.CellAt(args.TexCoords, args.TexSize.X()))
	r, ok := runes[glyph]
	if !ok {
		r = runes[render.GlyphNone]
	}
	fg := render.Tint(glyph.Color(), args.Color)

	_, _, style, _ := d.screen.GetContent(x, y)
	d.screen.SetContent(x, y, r, nil, style.Foreground(toColor(fg)))
	d.drawn++
}

var runes = map[render.Glyph]rune{
	render.GlyphNone:   '?',
	render.GlyphShip:   '▲',
	render.GlyphBullet: '•',
	render.GlyphCrab:   'Ж',
	render.GlyphSkull:  '☠',
	render.GlyphBlob:   '●',
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
