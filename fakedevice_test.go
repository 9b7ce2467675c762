package glint

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"
)

type fakeBuffer struct {
	kind BufferKind
	data []byte
}

type fakeTexture struct {
	width, height int
	pix           []byte
	filter        TextureFilter
}

type fakeAttrib struct {
	location uint32
	kind     DataKind
	stride   int
	offset   int
}

// fakeDraw is a snapshot of the device state at a DrawIndexed call.
type fakeDraw struct {
	program  uint32
	count    int
	vertices []byte
	indices  []byte
	textures map[int]uint32
	uniforms map[int32][]byte
}

// fakeDevice records every call so tests can inspect what the renderer did.
type fakeDevice struct {
	next uint32

	failCompile map[ShaderStage]bool
	failLink    bool
	failTexture bool

	shaders  map[uint32]ShaderStage
	programs map[uint32]bool
	vaos     map[uint32]bool
	buffers  map[uint32]*fakeBuffer
	textures map[uint32]fakeTexture

	vaoBuffers map[uint32]map[BufferKind]uint32
	attribs    map[uint32][]fakeAttrib

	current   uint32
	boundVAO  uint32
	bound     map[int]uint32
	locations map[string]int32
	uniforms  map[int32][]byte
	kinds     map[int32]DataKind

	draws  []fakeDraw
	clears []Color
	calls  []string
	errs   []string
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		failCompile: make(map[ShaderStage]bool),
		shaders:     make(map[uint32]ShaderStage),
		programs:    make(map[uint32]bool),
		vaos:        make(map[uint32]bool),
		buffers:     make(map[uint32]*fakeBuffer),
		textures:    make(map[uint32]fakeTexture),
		vaoBuffers:  make(map[uint32]map[BufferKind]uint32),
		attribs:     make(map[uint32][]fakeAttrib),
		bound:       make(map[int]uint32),
		locations:   make(map[string]int32),
		uniforms:    make(map[int32][]byte),
		kinds:       make(map[int32]DataKind),
	}
}

func (d *fakeDevice) handle() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) CompileShader(stage ShaderStage, source string) (uint32, error) {
	if d.failCompile[stage] {
		return 0, fmt.Errorf("0:1(1): error: syntax error in %s shader", stage)
	}
	id := d.handle()
	d.shaders[id] = stage
	d.record("CompileShader %s", stage)
	return id, nil
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	delete(d.shaders, shader)
	d.record("DeleteShader")
}

func (d *fakeDevice) LinkProgram(shaders ...uint32) (uint32, error) {
	if d.failLink {
		return 0, errors.New("error: vertex output not consumed")
	}
	id := d.handle()
	d.programs[id] = true
	d.record("LinkProgram")
	return id, nil
}

func (d *fakeDevice) DeleteProgram(program uint32) {
	delete(d.programs, program)
	d.record("DeleteProgram")
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.current = program
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	if name == "unused" {
		return -1
	}
	loc, ok := d.locations[name]
	if !ok {
		loc = int32(len(d.locations))
		d.locations[name] = loc
	}
	return loc
}

func (d *fakeDevice) Uniform(location int32, kind DataKind, data []byte) {
	if location < 0 {
		d.errs = append(d.errs, "uniform upload to location -1")
	}
	if len(data) != kind.Size() {
		d.errs = append(d.errs, fmt.Sprintf("uniform %d: %d bytes for %s", location, len(data), kind))
	}
	d.uniforms[location] = append([]byte(nil), data...)
	d.kinds[location] = kind
}

func (d *fakeDevice) BindTexture(unit int, texture uint32) {
	d.bound[unit] = texture
}

func (d *fakeDevice) CreateVertexArray() uint32 {
	id := d.handle()
	d.vaos[id] = true
	d.vaoBuffers[id] = make(map[BufferKind]uint32)
	return id
}

func (d *fakeDevice) BindVertexArray(vao uint32) {
	d.boundVAO = vao
}

func (d *fakeDevice) DeleteVertexArray(vao uint32) {
	delete(d.vaos, vao)
	d.record("DeleteVertexArray")
}

func (d *fakeDevice) CreateBuffer(kind BufferKind, size int) uint32 {
	id := d.handle()
	d.buffers[id] = &fakeBuffer{kind: kind, data: make([]byte, size)}
	if d.boundVAO == 0 {
		d.errs = append(d.errs, "buffer created without a bound vertex array")
	} else {
		d.vaoBuffers[d.boundVAO][kind] = id
	}
	return id
}

func (d *fakeDevice) BufferSubData(kind BufferKind, buffer uint32, offset int, data []byte) {
	b, ok := d.buffers[buffer]
	if !ok {
		d.errs = append(d.errs, fmt.Sprintf("write to unknown buffer %d", buffer))
		return
	}
	if b.kind != kind {
		d.errs = append(d.errs, fmt.Sprintf("buffer %d written as wrong kind", buffer))
	}
	if offset+len(data) > len(b.data) {
		d.errs = append(d.errs, fmt.Sprintf("buffer %d overflow: %d+%d > %d", buffer, offset, len(data), len(b.data)))
		return
	}
	copy(b.data[offset:], data)
}

func (d *fakeDevice) DeleteBuffer(buffer uint32) {
	delete(d.buffers, buffer)
	d.record("DeleteBuffer")
}

func (d *fakeDevice) VertexAttribPointer(location uint32, kind DataKind, stride, offset int) {
	d.attribs[d.boundVAO] = append(d.attribs[d.boundVAO], fakeAttrib{location, kind, stride, offset})
}

func (d *fakeDevice) CreateTexture(width, height int, pixels []byte, filter TextureFilter) (uint32, error) {
	if d.failTexture {
		return 0, errors.New("GL_OUT_OF_MEMORY")
	}
	id := d.handle()
	d.textures[id] = fakeTexture{width, height, append([]byte(nil), pixels...), filter}
	return id, nil
}

func (d *fakeDevice) DeleteTexture(texture uint32) {
	delete(d.textures, texture)
	d.record("DeleteTexture")
}

func (d *fakeDevice) Clear(c Color) {
	d.clears = append(d.clears, c)
}

func (d *fakeDevice) DrawIndexed(count int) {
	bufs := d.vaoBuffers[d.boundVAO]
	vb, ib := d.buffers[bufs[VertexBuffer]], d.buffers[bufs[IndexBuffer]]
	if vb == nil || ib == nil {
		d.errs = append(d.errs, "draw without buffers")
		return
	}
	draw := fakeDraw{
		program:  d.current,
		count:    count,
		vertices: append([]byte(nil), vb.data...),
		indices:  append([]byte(nil), ib.data[:count*4]...),
		textures: make(map[int]uint32, len(d.bound)),
		uniforms: make(map[int32][]byte, len(d.uniforms)),
	}
	for k, v := range d.bound {
		draw.textures[k] = v
	}
	for k, v := range d.uniforms {
		draw.uniforms[k] = v
	}
	d.draws = append(d.draws, draw)
}

// vec2 decodes the float pair at byte offset off of vertex v.
func (fd fakeDraw) vec2(stride, v, off int) [2]float32 {
	f := DecodeFloat32s(fd.vertices[v*stride+off:], 2)
	return [2]float32{f[0], f[1]}
}

type fakeWindow struct {
	width, height int
	swaps         int
	closed        bool
	dev           *fakeDevice
}

func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

func (w *fakeWindow) Close() error {
	w.closed = true
	if w.dev != nil {
		w.dev.record("CloseWindow")
	}
	return nil
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.TargetFPS = 0
	cfg.BatchCapacity = 64
	return cfg
}

func newTestRenderer(t *testing.T, cfg Config) (*Renderer, *fakeDevice, *fakeWindow) {
	t.Helper()
	dev := newFakeDevice()
	win := &fakeWindow{width: 800, height: 600, dev: dev}
	r, err := NewRenderer(dev, win, cfg)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r, dev, win
}

func testImage(w, h int) Image {
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = 0xff
	}
	return Image{Width: w, Height: h, Pix: pix}
}

// fakeClock advances only when the pacer yields.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) yield()         { c.t = c.t.Add(c.step) }

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func assertVec2Near(t *testing.T, label string, got [2]float32, want [2]float32) {
	t.Helper()
	if !near(got[0], want[0]) || !near(got[1], want[1]) {
		t.Errorf("%s = (%v, %v), want (%v, %v)", label, got[0], got[1], want[0], want[1])
	}
}

func assertNoDeviceErrors(t *testing.T, d *fakeDevice) {
	t.Helper()
	for _, e := range d.errs {
		t.Error(e)
	}
}
