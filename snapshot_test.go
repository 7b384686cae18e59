package glcaps

import (
	"errors"
	"testing"

	"github.com/gogpu/glcaps/surface"
)

// fakeContext is a NativeContext resolving a fixed extension set.
type fakeContext struct {
	ext map[string]any
}

func (c *fakeContext) Extension(name string) (any, bool) {
	h, ok := c.ext[name]
	return h, ok
}

// fakeSurface offers contexts per kind and can simulate kind failures.
type fakeSurface struct {
	width, height int
	contexts      map[string]*fakeContext
	fail          map[string]error
}

func (s *fakeSurface) Width() int  { return s.width }
func (s *fakeSurface) Height() int { return s.height }

func (s *fakeSurface) Context(kind string, opts surface.ContextOptions) (surface.NativeContext, error) {
	if err := s.fail[kind]; err != nil {
		return nil, err
	}
	c, ok := s.contexts[kind]
	if !ok {
		return nil, nil
	}
	return c, nil
}

// fakeHost hands out a fixed surface and records creation calls.
type fakeHost struct {
	name         string
	err          error
	surf         *fakeSurface
	created      int
	lastW, lastH int
}

func (h *fakeHost) Name() string {
	if h.name == "" {
		return "fake"
	}
	return h.name
}

func (h *fakeHost) CreateSurface(width, height int) (surface.NativeSurface, error) {
	h.created++
	h.lastW, h.lastH = width, height
	if h.err != nil {
		return nil, h.err
	}
	if h.surf == nil {
		h.surf = &fakeSurface{width: width, height: height}
	}
	if h.surf.width == 0 && h.surf.height == 0 {
		h.surf.width, h.surf.height = width, height
	}
	return h.surf, nil
}

func allExtensions() map[string]any {
	return map[string]any{
		ExtTextureFloat:       "float",
		ExtTextureFloatLinear: "float-linear",
		ExtElementIndexUint:   "uint-index",
		ExtDrawBuffers:        "draw-buffers",
	}
}

// fullHost offers a webgl context with every extension resolved.
func fullHost() *fakeHost {
	return &fakeHost{surf: &fakeSurface{
		contexts: map[string]*fakeContext{
			"webgl": {ext: allExtensions()},
		},
	}}
}

func mustSurface(t *testing.T, h surface.Host) *surface.Surface {
	t.Helper()
	native, err := h.CreateSurface(surface.ProbeSize, surface.ProbeSize)
	if err != nil {
		t.Fatalf("CreateSurface() error = %v", err)
	}
	s := surface.New(h, native)
	if s == nil {
		t.Fatal("surface.New() = nil")
	}
	return s
}

func TestDetectHostNil(t *testing.T) {
	snap := DetectHost(nil)
	if snap == nil {
		t.Fatal("DetectHost(nil) = nil, want snapshot")
	}
	if snap.CanvasSupported || snap.WebGLSupported || snap.DrawBuffersSupported {
		t.Errorf("DetectHost(nil) = %+v, want all unsupported", snap)
	}
}

func TestDetectHostFullCapability(t *testing.T) {
	snap := DetectHost(fullHost())

	if !snap.CanvasSupported {
		t.Error("CanvasSupported = false, want true")
	}
	if !snap.WebGLSupported {
		t.Error("WebGLSupported = false, want true")
	}
	if !snap.DrawBuffersSupported {
		t.Error("DrawBuffersSupported = false, want true")
	}
	if snap.Extensions.FloatTexture != "float" {
		t.Errorf("FloatTexture = %v, want handle", snap.Extensions.FloatTexture)
	}
	if snap.Extensions.FloatTextureLinear != "float-linear" {
		t.Errorf("FloatTextureLinear = %v, want handle", snap.Extensions.FloatTextureLinear)
	}
	if snap.Extensions.UintElementIndex != "uint-index" {
		t.Errorf("UintElementIndex = %v, want handle", snap.Extensions.UintElementIndex)
	}
}

func TestDetectHostCanvasWithoutWebGL(t *testing.T) {
	// Host creates surfaces but offers no context kinds.
	h := &fakeHost{surf: &fakeSurface{}}
	snap := DetectHost(h)

	if !snap.CanvasSupported {
		t.Error("CanvasSupported = false, want true")
	}
	if snap.WebGLSupported {
		t.Error("WebGLSupported = true, want false")
	}
	if snap.DrawBuffersSupported {
		t.Error("DrawBuffersSupported = true, want false")
	}
	if snap.Extensions.FloatTexture != nil ||
		snap.Extensions.FloatTextureLinear != nil ||
		snap.Extensions.UintElementIndex != nil {
		t.Errorf("Extensions = %+v, want all absent", snap.Extensions)
	}
}

func TestDetectHostSurfaceCreationFailure(t *testing.T) {
	h := &fakeHost{err: errors.New("no memory")}
	snap := DetectHost(h)

	// Host exists, so canvas is supported; nothing past the failed
	// prerequisite is probed.
	if !snap.CanvasSupported {
		t.Error("CanvasSupported = false, want true")
	}
	if snap.WebGLSupported || snap.DrawBuffersSupported {
		t.Errorf("snapshot = %+v, want no capability past surface failure", snap)
	}
}

func TestDetectHostProbeDimensions(t *testing.T) {
	h := fullHost()
	DetectHost(h)

	if h.created != 1 {
		t.Errorf("CreateSurface called %d times, want 1", h.created)
	}
	if h.lastW != surface.ProbeSize || h.lastH != surface.ProbeSize {
		t.Errorf("probe surface %dx%d, want %dx%d",
			h.lastW, h.lastH, surface.ProbeSize, surface.ProbeSize)
	}
}

func TestDetectPartialExtensions(t *testing.T) {
	h := &fakeHost{surf: &fakeSurface{
		contexts: map[string]*fakeContext{
			"webgl": {ext: map[string]any{
				ExtTextureFloat:     "float",
				ExtElementIndexUint: "uint-index",
			}},
		},
	}}
	snap := DetectHost(h)

	if !snap.WebGLSupported {
		t.Fatal("WebGLSupported = false, want true")
	}
	if snap.DrawBuffersSupported {
		t.Error("DrawBuffersSupported = true, want false")
	}
	if snap.Extensions.FloatTexture == nil {
		t.Error("FloatTexture absent, want handle")
	}
	if snap.Extensions.FloatTextureLinear != nil {
		t.Error("FloatTextureLinear present, want absent")
	}
	if snap.Extensions.UintElementIndex == nil {
		t.Error("UintElementIndex absent, want handle")
	}
}

func TestDetectUsesRegistry(t *testing.T) {
	h := fullHost()
	surface.Register("snapshot-test", 100,
		func() (surface.Host, error) { return h, nil }, nil)
	t.Cleanup(func() { surface.Unregister("snapshot-test") })

	snap := Detect()
	if !snap.CanvasSupported || !snap.WebGLSupported {
		t.Errorf("Detect() = %+v, want full capability via registry", snap)
	}
}

func TestDefaultMemoized(t *testing.T) {
	first := Default()
	second := Default()
	if first != second {
		t.Error("Default() returned different snapshots, want one probe per process")
	}

	// Accessors are pure reads of the same snapshot.
	if IsSurfaceAPIAvailable() != first.CanvasSupported {
		t.Error("IsSurfaceAPIAvailable() disagrees with Default()")
	}
	if IsGraphicsAPIAvailable() != first.WebGLSupported {
		t.Error("IsGraphicsAPIAvailable() disagrees with Default()")
	}
	if IsDrawBuffersSupported() != first.DrawBuffersSupported {
		t.Error("IsDrawBuffersSupported() disagrees with Default()")
	}
}
