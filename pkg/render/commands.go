// pkg/render/commands.go
package render

import "fmt"

// MaxBindGroups — число слотов привязки в проходе.
const MaxBindGroups = 4

// Binding — буфер, привязанный к слоту, и смещение внутри него.
type Binding struct {
	Buffer Buffer
	Offset int
}

// DrawCall — один вызов Draw со снимком состояния прохода на момент вызова.
type DrawCall struct {
	Pipeline  Pipeline
	Bindings  [MaxBindGroups]Binding
	Vertices  int
	Instances int
}

// PassRecord — записанный проход.
type PassRecord struct {
	PassDescriptor
	Draws []DrawCall
}

// CommandBuffer — готовый к отправке список проходов.
type CommandBuffer struct {
	Passes []PassRecord
}

// Draws — общее число вызовов отрисовки.
func (cb *CommandBuffer) Draws() int {
	n := 0
	for _, p := range cb.Passes {
		n += len(p.Draws)
	}
	return n
}

// Recorder — Encoder, который просто записывает команды. Устройства,
// исполняющие команды на CPU, разбирают записанное в Queue.Submit.
type Recorder struct {
	passes []PassRecord
	open   bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) BeginPass(desc PassDescriptor) Pass {
	if r.open {
		panic("render: BeginPass while another pass is open")
	}
	r.open = true
	r.passes = append(r.passes, PassRecord{PassDescriptor: desc})
	return &recordedPass{rec: r, index: len(r.passes) - 1}
}

func (r *Recorder) Finish() *CommandBuffer {
	if r.open {
		panic("render: Finish with an open pass")
	}
	cb := &CommandBuffer{Passes: r.passes}
	r.passes = nil
	return cb
}

type recordedPass struct {
	rec      *Recorder
	index    int
	pipeline Pipeline
	bindings [MaxBindGroups]Binding
	ended    bool
}

func (p *recordedPass) SetPipeline(pl Pipeline) {
	p.pipeline = pl
}

func (p *recordedPass) SetBindGroup(slot int, buf Buffer, dynamicOffset int) {
	if slot < 0 || slot >= MaxBindGroups {
		panic(fmt.Sprintf("render: bind group slot %d out of range", slot))
	}
	p.bindings[slot] = Binding{Buffer: buf, Offset: dynamicOffset}
}

func (p *recordedPass) Draw(vertices, instances int) {
	if p.ended {
		panic("render: Draw on an ended pass")
	}
	rec := &p.rec.passes[p.index]
	rec.Draws = append(rec.Draws, DrawCall{
		Pipeline:  p.pipeline,
		Bindings:  p.bindings,
		Vertices:  vertices,
		Instances: instances,
	})
}

func (p *recordedPass) End() {
	if p.ended {
		return
	}
	p.ended = true
	p.rec.open = false
}

// HostBuffer — буфер в памяти процесса для устройств, рисующих на CPU.
type HostBuffer struct {
	label string
	data  []byte
}

func NewHostBuffer(label string, size int) *HostBuffer {
	return &HostBuffer{label: label, data: make([]byte, size)}
}

func (b *HostBuffer) Label() string { return b.label }

func (b *HostBuffer) Size() int { return len(b.data) }

// Bytes возвращает содержимое начиная с offset.
func (b *HostBuffer) Bytes(offset int) []byte {
	if offset < 0 || offset > len(b.data) {
		return nil
	}
	return b.data[offset:]
}

// Write копирует data по смещению. Выход за границы — ошибка программы.
func (b *HostBuffer) Write(offset int, data []byte) {
	if offset < 0 || offset+len(data) > len(b.data) {
		panic(fmt.Sprintf("render: write of %d bytes at %d overflows buffer %q of %d bytes",
			len(data), offset, b.label, len(b.data)))
	}
	copy(b.data[offset:], data)
}

// BoundBytes достаёт байты привязки. Для буферов не из памяти процесса возвращает nil.
func BoundBytes(b Binding) []byte {
	hb, ok := b.Buffer.(*HostBuffer)
	if !ok {
		return nil
	}
	return hb.Bytes(b.Offset)
}
