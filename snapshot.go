package glcaps

import (
	"sync"

	"github.com/gogpu/glcaps/surface"
)

// Extensions holds the handles resolved during detection for the
// extensions kernels branch on individually. A nil field means the
// extension is absent in this process.
type Extensions struct {
	// FloatTexture is the float-texture extension handle, if present.
	FloatTexture any

	// FloatTextureLinear is the linear float-texture filtering
	// extension handle, if present.
	FloatTextureLinear any

	// UintElementIndex is the 32-bit element index extension handle,
	// if present.
	UintElementIndex any
}

// Snapshot is an immutable record of what the environment offered at
// detection time.
//
// A snapshot is computed in one pass with no step proceeding past a
// failed prerequisite: if CanvasSupported is false every dependent
// field is false or nil. Snapshots are plain values; tests build
// alternate ones with DetectHost and a fake host instead of mocking
// the environment.
type Snapshot struct {
	// CanvasSupported reports whether a drawing-surface host is
	// available at all.
	CanvasSupported bool

	// WebGLSupported reports whether an accelerated context was
	// acquired from the probe surface.
	WebGLSupported bool

	// DrawBuffersSupported reports whether the multiple-draw-buffers
	// extension resolved on the probe context.
	DrawBuffersSupported bool

	// Extensions holds the remaining resolved extension handles.
	Extensions Extensions
}

// Detect probes the environment through the global host registry and
// returns a fresh snapshot. Detect is total: capability absence at any
// step yields flags and nils, never an error.
//
// Most callers should use Default and the package accessors instead;
// context creation is expensive and can consume a limited number of
// live contexts in some environments, so repeated probing is avoided.
func Detect() *Snapshot {
	canvas := surface.APIAvailable()
	var s *surface.Surface
	if canvas {
		s = surface.Create()
	}
	return buildSnapshot(canvas, s)
}

// DetectHost probes through a single injected host, bypassing the
// registry. A nil host yields the all-unsupported snapshot. This is
// the deterministic-test entry point: a fake host stands in for the
// environment.
func DetectHost(h surface.Host) *Snapshot {
	if h == nil {
		return &Snapshot{}
	}
	var s *surface.Surface
	native, err := h.CreateSurface(surface.ProbeSize, surface.ProbeSize)
	if err == nil {
		s = surface.New(h, native)
	} else {
		Logger().Warn("glcaps: probe surface creation failed", "host", h.Name(), "err", err)
	}
	return buildSnapshot(true, s)
}

// buildSnapshot runs the ordered detection sequence over an already
// created probe surface. A nil surface short-circuits: acquisition is
// never attempted, keeping snapshot construction total.
func buildSnapshot(canvas bool, s *surface.Surface) *Snapshot {
	snap := &Snapshot{CanvasSupported: canvas}
	if s == nil {
		return snap
	}

	ctx, err := Acquire(s)
	if err != nil {
		// Unreachable for a surface built by this package; treated as
		// context-unsupported rather than propagated.
		Logger().Warn("glcaps: probe acquisition failed", "err", err)
		return snap
	}

	snap.WebGLSupported = IsContext(ctx)
	if ctx == nil {
		return snap
	}

	snap.DrawBuffersSupported = ctx.DrawBuffersSupported()
	snap.Extensions.FloatTexture, _ = ctx.Extension(ExtTextureFloat)
	snap.Extensions.FloatTextureLinear, _ = ctx.Extension(ExtTextureFloatLinear)
	snap.Extensions.UintElementIndex, _ = ctx.Extension(ExtElementIndexUint)
	return snap
}

var (
	defaultOnce sync.Once
	defaultSnap *Snapshot
)

// Default returns the process-wide snapshot, computing it on first use.
// The snapshot is computed exactly once and is immutable thereafter;
// every package-level accessor is a pure read of it.
func Default() *Snapshot {
	defaultOnce.Do(func() {
		defaultSnap = Detect()
		Logger().Info("glcaps: capabilities detected",
			"canvas", defaultSnap.CanvasSupported,
			"webgl", defaultSnap.WebGLSupported,
			"drawBuffers", defaultSnap.DrawBuffersSupported)
	})
	return defaultSnap
}

// IsSurfaceAPIAvailable reports whether the environment can create
// drawing surfaces, per the process-wide snapshot.
func IsSurfaceAPIAvailable() bool { return Default().CanvasSupported }

// IsGraphicsAPIAvailable reports whether an accelerated context is
// obtainable, per the process-wide snapshot.
func IsGraphicsAPIAvailable() bool { return Default().WebGLSupported }

// IsDrawBuffersSupported reports whether multiple draw buffers are
// available, per the process-wide snapshot.
func IsDrawBuffersSupported() bool { return Default().DrawBuffersSupported }
