package render

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct{ w, h int }

func (v fakeView) Size() (int, int) { return v.w, v.h }

type fakePipeline string

func (p fakePipeline) Name() string { return string(p) }

// submittedPass — проход в том виде, в каком его увидело устройство в момент Submit.
type submittedPass struct {
	load      LoadOp
	pipelines []string
	offsets   []int
	sprites   []SpriteArgs
}

type fakeDevice struct {
	view      View
	hasView   bool
	buffers   []*HostBuffer
	submitted []submittedPass
	failOn    string
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{view: fakeView{640, 480}, hasView: true}
}

func (d *fakeDevice) CreateBuffer(label string, size int) (Buffer, error) {
	b := NewHostBuffer(label, size)
	d.buffers = append(d.buffers, b)
	return b, nil
}

func (d *fakeDevice) CreatePipeline(desc PipelineDescriptor) (Pipeline, error) {
	if desc.Name == d.failOn {
		return nil, errors.New("compile failed")
	}
	return fakePipeline(desc.Name), nil
}

func (d *fakeDevice) CreateEncoder() Encoder { return NewRecorder() }

func (d *fakeDevice) Queue() Queue { return d }

func (d *fakeDevice) Surface() (View, bool) { return d.view, d.hasView }

func (d *fakeDevice) WriteBuffer(buf Buffer, offset int, data []byte) {
	buf.(*HostBuffer).Write(offset, data)
}

func (d *fakeDevice) Submit(cb *CommandBuffer) {
	for _, p := range cb.Passes {
		sp := submittedPass{load: p.Load}
		for _, dc := range p.Draws {
			sp.pipelines = append(sp.pipelines, dc.Pipeline.Name())
			if dc.Pipeline.Name() != SpriteShader {
				continue
			}
			b := dc.Bindings[SlotSprite]
			sp.offsets = append(sp.offsets, b.Offset)
			args, err := DecodeSpriteArgs(BoundBytes(b))
			if err != nil {
				panic(err)
			}
			sp.sprites = append(sp.sprites, args)
		}
		d.submitted = append(d.submitted, sp)
	}
}

type fakeShaders map[string][]byte

func (s fakeShaders) Shader(name string) ([]byte, error) {
	src, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrShaderNotFound)
	}
	return src, nil
}

var testShaders = fakeShaders{SpriteShader: []byte("s"), BackgroundShader: []byte("b")}

type fakeCamera struct{ eye mgl32.Vec3 }

func (c fakeCamera) Position() mgl32.Vec3 { return c.eye }

func (c fakeCamera) ViewProjection(int, int) mgl32.Mat4 { return mgl32.Ident4() }

func spritesN(n int) *SliceSource {
	src := &SliceSource{}
	for i := 0; i < n; i++ {
		src.Sprites = append(src.Sprites, Sprite{
			Position: mgl32.Vec3{float32(i), 0, 10},
			Size:     mgl32.Vec2{0.5, 0.5},
			Cell:     mgl32.Vec2{47, 1},
		})
	}
	return src
}

func TestRenderSplitsIntoCeilPasses(t *testing.T) {
	const capacity = 4
	for _, k := range []int{0, 1, capacity - 1, capacity, capacity + 1, 3 * capacity} {
		t.Run(fmt.Sprintf("K=%d", k), func(t *testing.T) {
			dev := newFakeDevice()
			r, err := NewRenderer(dev, testShaders, Options{Capacity: capacity, CellSize: 16})
			require.NoError(t, err)

			stats := r.Render(fakeCamera{}, spritesN(k))

			wantPasses := (k + capacity - 1) / capacity
			assert.Equal(t, wantPasses, stats.SpritePasses)
			assert.Equal(t, k, stats.Sprites)
			require.Len(t, dev.submitted, 1+wantPasses)

			bg := dev.submitted[0]
			assert.Equal(t, LoadOpClear, bg.load)
			assert.Equal(t, []string{BackgroundShader}, bg.pipelines)

			seen := make(map[float32]int)
			for _, p := range dev.submitted[1:] {
				assert.Equal(t, LoadOpLoad, p.load)
				assert.NotEmpty(t, p.sprites, "no empty sprite passes")
				assert.LessOrEqual(t, len(p.sprites), capacity)
				for i, off := range p.offsets {
					assert.Equal(t, i*r.Stride(), off)
				}
				for _, s := range p.sprites {
					seen[s.Position.X()]++
				}
			}
			assert.Len(t, seen, k)
			for id, n := range seen {
				assert.Equal(t, 1, n, "sprite %v drawn more than once", id)
			}
		})
	}
}

func TestRenderPreservesOrderAcrossPasses(t *testing.T) {
	dev := newFakeDevice()
	r, err := NewRenderer(dev, testShaders, Options{Capacity: 2, CellSize: 16})
	require.NoError(t, err)
	r.Render(fakeCamera{}, spritesN(5))

	var order []float32
	for _, p := range dev.submitted[1:] {
		for _, s := range p.sprites {
			order = append(order, s.Position.X())
		}
	}
	assert.Equal(t, []float32{0, 1, 2, 3, 4}, order)
}

func TestRenderWritesTextureCell(t *testing.T) {
	dev := newFakeDevice()
	r, err := NewRenderer(dev, testShaders, Options{Capacity: 8, CellSize: 16})
	require.NoError(t, err)
	r.Render(fakeCamera{}, spritesN(1))

	got := dev.submitted[1].sprites[0]
	assert.Equal(t, mgl32.Vec2{47 * 16, 16}, got.TexCoords)
	assert.Equal(t, mgl32.Vec2{16, 16}, got.TexSize)
	assert.Equal(t, Cell{47, 1}, CellAt(got.TexCoords, 16))
}

func TestRenderSkipsWithoutSurfaceOrCamera(t *testing.T) {
	dev := newFakeDevice()
	r, err := NewRenderer(dev, testShaders, Options{Capacity: 4})
	require.NoError(t, err)

	assert.True(t, r.Render(nil, spritesN(3)).Skipped)

	dev.hasView = false
	assert.True(t, r.Render(fakeCamera{}, spritesN(3)).Skipped)

	dev.hasView = true
	dev.view = fakeView{0, 0}
	assert.True(t, r.Render(fakeCamera{}, spritesN(3)).Skipped)

	assert.Empty(t, dev.submitted)
}

func TestRenderBackgroundArgs(t *testing.T) {
	dev := newFakeDevice()
	r, err := NewRenderer(dev, testShaders, Options{Capacity: 4})
	require.NoError(t, err)
	r.Render(fakeCamera{eye: mgl32.Vec3{3, 4, 0}}, spritesN(0))

	var bg *HostBuffer
	for _, b := range dev.buffers {
		if b.Label() == "background_args" {
			bg = b
		}
	}
	require.NotNil(t, bg)
	args, err := DecodeBackgroundArgs(bg.Bytes(0))
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{3, 4, 0}, args.Position)
	assert.InDelta(t, 640.0/480.0, args.Aspect, 1e-6)
}

func TestNewRendererErrors(t *testing.T) {
	_, err := NewRenderer(newFakeDevice(), testShaders, Options{})
	assert.ErrorContains(t, err, "capacity")

	_, err = NewRenderer(newFakeDevice(), fakeShaders{SpriteShader: []byte("s")}, Options{Capacity: 1})
	assert.ErrorIs(t, err, ErrShaderNotFound)

	dev := newFakeDevice()
	dev.failOn = SpriteShader
	_, err = NewRenderer(dev, testShaders, Options{Capacity: 1})
	assert.ErrorContains(t, err, `create pipeline "sprite"`)
}

func TestSpriteBufferSize(t *testing.T) {
	dev := newFakeDevice()
	r, err := NewRenderer(dev, testShaders, Options{Capacity: 3, Alignment: 256})
	require.NoError(t, err)
	assert.Equal(t, 256, r.Stride())
	assert.Equal(t, 3*256, dev.buffers[0].Size())
}
