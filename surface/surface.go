// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// ProbeSize is the edge length of surfaces returned by Create.
// 2x2 rather than 0x0: zero-sized surfaces are known to fail context
// creation on at least one major environment.
const ProbeSize = 2

// ContextOptions configures context acquisition on a NativeSurface.
//
// The zero value is the configuration the capability probe uses: alpha,
// depth, and antialias all disabled. Off-screen numeric kernels never
// read those channels, and disabling them makes acquisition cheaper and
// more reliable across environments.
type ContextOptions struct {
	// Alpha requests an alpha channel on the surface.
	Alpha bool

	// Depth requests a depth buffer.
	Depth bool

	// Antialias requests multisampled rendering.
	Antialias bool
}

// DefaultContextOptions returns the fixed probe configuration:
// alpha, depth, and antialias all disabled.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{Alpha: false, Depth: false, Antialias: false}
}

// Host constructs drawing surfaces on behalf of a hosting environment.
//
// Implementations live in backend packages (backend/wgpu, backend/gogpu)
// and register themselves with the package registry. The capability core
// only ever talks to this interface.
type Host interface {
	// Name returns the host identifier (e.g. "wgpu", "gogpu").
	Name() string

	// CreateSurface constructs a drawing surface with the given
	// dimensions. The surface is owned by the caller and released by
	// garbage collection; there is no explicit teardown.
	CreateSurface(width, height int) (NativeSurface, error)
}

// NativeSurface is the host-provided drawing surface primitive.
type NativeSurface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Context attempts to acquire a graphics context of the given kind
	// (a context-type identifier such as "webgl") with the given
	// options. A nil context with a nil error means the kind is simply
	// not offered; errors are reserved for acquisition failures.
	Context(kind string, opts ContextOptions) (NativeContext, error)
}

// NativeContext is a host-provided graphics context. The capability core
// only needs extension resolution from it; everything else stays behind
// the host.
type NativeContext interface {
	// Extension resolves an optional capability extension by name.
	// The second result reports whether the extension is present; the
	// handle is host-specific and opaque to glcaps.
	Extension(name string) (any, bool)
}

// Surface is a typed wrapper around a host-provided drawing surface.
//
// The wrapper carries an explicit discriminant set at construction, so
// IsSurface is a tag check rather than a structural guess. Only New
// produces valid surfaces.
type Surface struct {
	host   string
	native NativeSurface
	valid  bool
}

// New wraps a native surface produced by the given host.
// Returns nil if either argument is nil.
func New(h Host, native NativeSurface) *Surface {
	if h == nil || native == nil {
		return nil
	}
	return &Surface{host: h.Name(), native: native, valid: true}
}

// Host returns the name of the host that produced this surface.
func (s *Surface) Host() string { return s.host }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.native.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.native.Height() }

// Native returns the underlying host surface.
func (s *Surface) Native() NativeSurface { return s.native }

// IsSurface reports whether x is a usable drawing surface.
//
// True for a valid *Surface, and also for any value that implements
// NativeSurface directly. The second case keeps host-provided handles
// usable before they are wrapped; both checks are intentional.
func IsSurface(x any) bool {
	switch s := x.(type) {
	case *Surface:
		return s != nil && s.valid && s.native != nil
	case NativeSurface:
		return true
	default:
		return false
	}
}

// APIAvailable reports whether the environment can create drawing
// surfaces at all, i.e. whether at least one registered host is
// available. The result does not change for the life of the process;
// glcaps memoizes it as part of the capability snapshot.
func APIAvailable() bool {
	return len(Available()) > 0
}

// Create returns a minimal probe surface from the best available host,
// or nil if no host is available or creation fails. Capability absence
// is a nil return, never an error: callers branch on the result the
// same way they branch on APIAvailable.
func Create() *Surface {
	if !APIAvailable() {
		return nil
	}
	s, err := CreateSized(ProbeSize, ProbeSize)
	if err != nil {
		return nil
	}
	return s
}

// CreateSized constructs a surface with explicit dimensions via the
// best available host. Unlike Create, callers that asked for a real
// surface get a real error: ErrNoHostAvailable when nothing is
// registered, or the last host failure otherwise.
func CreateSized(width, height int) (*Surface, error) {
	return globalRegistry.CreateSurface(width, height)
}
