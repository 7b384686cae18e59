package glcaps

import (
	"errors"

	"github.com/gogpu/glcaps/surface"
)

// Extension names for the fixed enumerated set the capability probe
// resolves against a freshly acquired context.
const (
	// ExtTextureFloat enables float-valued textures.
	ExtTextureFloat = "OES_texture_float"

	// ExtTextureFloatLinear enables linear filtering of float textures.
	ExtTextureFloatLinear = "OES_texture_float_linear"

	// ExtElementIndexUint enables 32-bit element indices.
	ExtElementIndexUint = "OES_element_index_uint"

	// ExtDrawBuffers enables multiple simultaneous draw buffers.
	ExtDrawBuffers = "WEBGL_draw_buffers"
)

// contextKinds are the context-type identifiers tried during acquisition,
// in order: the legacy experimental identifier first, then the standard
// one. Some environments only answer to one of the two.
var contextKinds = [...]string{"experimental-webgl", "webgl"}

// extensionNames is the full set resolved (non-fatally) on acquisition.
var extensionNames = [...]string{
	ExtTextureFloat,
	ExtTextureFloatLinear,
	ExtElementIndexUint,
	ExtDrawBuffers,
}

// ErrInvalidSurface is returned by Acquire when its argument is not a
// drawing surface. Unlike capability absence, which is reported through
// nil returns and snapshot flags, handing Acquire a non-surface is a
// caller bug and fails loudly.
var ErrInvalidSurface = errors.New("glcaps: not a drawing surface")

// Context is a typed wrapper around an acquired graphics context.
//
// Like surface.Surface, it carries an explicit discriminant from
// construction: only Acquire produces valid contexts. The wrapper holds
// the extension handles resolved at acquisition time; extension
// resolution is never re-run, mirroring the one-probe-per-process rule.
type Context struct {
	native surface.NativeContext
	kind   string
	ext    map[string]any
	valid  bool
}

// Acquire attempts to obtain an accelerated graphics context from the
// given surface.
//
// Returns ErrInvalidSurface for anything surface.IsSurface rejects,
// nil included. Otherwise each context kind is tried in order with
// DefaultContextOptions; if neither resolves, the result is (nil, nil):
// a missing capability, not an error.
//
// On success, each known extension is resolved against the context and
// present handles are recorded on the returned Context. Resolution
// failures are non-fatal; an absent extension is simply not recorded.
func Acquire(s *surface.Surface) (*Context, error) {
	if !surface.IsSurface(s) {
		return nil, ErrInvalidSurface
	}

	log := Logger()
	opts := surface.DefaultContextOptions()
	for _, kind := range contextKinds {
		native, err := s.Native().Context(kind, opts)
		if err != nil {
			log.Debug("glcaps: context kind failed", "kind", kind, "err", err)
			continue
		}
		if native == nil {
			log.Debug("glcaps: context kind not offered", "kind", kind)
			continue
		}

		ctx := &Context{
			native: native,
			kind:   kind,
			ext:    make(map[string]any, len(extensionNames)),
			valid:  true,
		}
		for _, name := range extensionNames {
			h, ok := native.Extension(name)
			if ok && h != nil {
				ctx.ext[name] = h
			}
		}
		log.Info("glcaps: context acquired", "kind", kind, "host", s.Host(), "extensions", len(ctx.ext))
		return ctx, nil
	}

	return nil, nil
}

// Kind returns the context-type identifier the context was acquired
// under ("experimental-webgl" or "webgl").
func (c *Context) Kind() string { return c.kind }

// Native returns the underlying host context.
func (c *Context) Native() surface.NativeContext { return c.native }

// Extension returns the handle resolved for the named extension at
// acquisition time. The second result is false for absent extensions.
func (c *Context) Extension(name string) (any, bool) {
	h, ok := c.ext[name]
	return h, ok
}

// DrawBuffersSupported reports whether the multiple-draw-buffers
// extension resolved on this context.
func (c *Context) DrawBuffersSupported() bool {
	_, ok := c.ext[ExtDrawBuffers]
	return ok
}

// IsContext reports whether x is a usable graphics context.
//
// True for a valid *Context, and also for any value implementing
// surface.NativeContext directly; both checks are intentional, matching
// IsSurface. A nil *Context is not a context, which is what makes the
// snapshot's webgl flag fall out of a failed acquisition for free.
func IsContext(x any) bool {
	switch c := x.(type) {
	case *Context:
		return c != nil && c.valid && c.native != nil
	case surface.NativeContext:
		return true
	default:
		return false
	}
}

// DefaultContextOptions returns the fixed acquisition configuration:
// alpha, depth, and antialias all disabled. Re-exported from the
// surface package for callers that only import glcaps.
func DefaultContextOptions() surface.ContextOptions {
	return surface.DefaultContextOptions()
}
