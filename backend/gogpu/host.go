//go:build !nogpu

// Package gogpu provides a drawing-surface host backed by an
// application-owned GPU device from the gogpu ecosystem.
//
// Unlike backend/wgpu, this host never creates a device: it RECEIVES
// one through a gpucontext.DeviceProvider, typically the application's
// gogpu context. This keeps GPU resources shared across the stack and
// costs glcaps nothing at detection time.
//
//	app := gogpu.NewApp(...)
//	glcapsgogpu.RegisterProvider(app) // app implements DeviceProvider
package gogpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/glcaps"
	"github.com/gogpu/glcaps/surface"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// HostName is the registry identifier for this host.
const HostName = "gogpu"

// Package errors.
var (
	// ErrNoProvider is returned when the host has no device provider.
	ErrNoProvider = errors.New("gogpu: no device provider")

	// ErrNoDevice is returned when the provider has no live device.
	ErrNoDevice = errors.New("gogpu: provider has no device")
)

// RegisterProvider registers a host over the given provider with the
// glcaps surface registry, below direct GPU hosts in priority. The
// host is available only while the provider holds a live device.
func RegisterProvider(p gpucontext.DeviceProvider) {
	surface.Register(HostName, 90,
		func() (surface.Host, error) { return NewHost(p), nil },
		func() bool { return p != nil && p.Device() != nil },
	)
}

// Host creates drawing surfaces over an injected GPU device.
type Host struct {
	provider gpucontext.DeviceProvider
}

// NewHost wraps a device provider. The provider may be nil; such a
// host reports ErrNoProvider on surface creation, which is what makes
// it usable as an always-unavailable stand-in.
func NewHost(p gpucontext.DeviceProvider) *Host {
	return &Host{provider: p}
}

// Name returns the registry identifier.
func (h *Host) Name() string { return HostName }

// Provider returns the wrapped device provider.
func (h *Host) Provider() gpucontext.DeviceProvider { return h.provider }

// CreateSurface constructs a surface over the provider's device.
func (h *Host) CreateSurface(width, height int) (surface.NativeSurface, error) {
	if h.provider == nil {
		return nil, ErrNoProvider
	}
	if h.provider.Device() == nil {
		return nil, ErrNoDevice
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gogpu: invalid dimensions %dx%d", width, height)
	}
	return &providerSurface{host: h, width: width, height: height}, nil
}

// providerSurface is a surface placeholder over the shared device.
type providerSurface struct {
	host   *Host
	width  int
	height int
}

func (s *providerSurface) Width() int  { return s.width }
func (s *providerSurface) Height() int { return s.height }

// Format returns the provider's preferred surface texture format.
func (s *providerSurface) Format() gputypes.TextureFormat {
	return s.host.provider.SurfaceFormat()
}

// Context acquires a context of the given kind over the shared device.
// Both WebGL context-type identifiers resolve; unknown kinds are not
// offered.
func (s *providerSurface) Context(kind string, opts surface.ContextOptions) (surface.NativeContext, error) {
	switch kind {
	case "webgl", "experimental-webgl":
		device := s.host.provider.Device()
		if device == nil {
			// Device torn down between surface creation and acquisition.
			return nil, ErrNoDevice
		}
		return &providerContext{device: device, queue: s.host.provider.Queue()}, nil
	default:
		return nil, nil
	}
}

// providerContext exposes extension resolution over the injected device.
type providerContext struct {
	device gpucontext.Device
	queue  gpucontext.Queue
}

// ExtensionHandle is the opaque handle providerContext returns for a
// resolved extension.
type ExtensionHandle struct {
	// Name is the extension the handle resolves.
	Name string

	// Device is the device the extension was resolved against.
	Device gpucontext.Device
}

// Extension resolves the WebGL-era extension set. Any device reachable
// through gpucontext is WebGPU-class, which subsumes all four
// capabilities, so every known name resolves while the device is live.
func (c *providerContext) Extension(name string) (any, bool) {
	switch name {
	case glcaps.ExtTextureFloat,
		glcaps.ExtTextureFloatLinear,
		glcaps.ExtElementIndexUint,
		glcaps.ExtDrawBuffers:
		return &ExtensionHandle{Name: name, Device: c.device}, true
	default:
		return nil, false
	}
}

// NullProvider is a DeviceProvider with no device. Useful for CPU-only
// tests and as an explicit "GPU absent" injection.
type NullProvider struct{}

// Device returns nil for the null provider.
func (NullProvider) Device() gpucontext.Device { return nil }

// Queue returns nil for the null provider.
func (NullProvider) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null provider.
func (NullProvider) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns the zero value, signalling an unknown adapter.
func (NullProvider) AdapterInfo() gpucontext.AdapterInfo { return gpucontext.AdapterInfo{} }

// SurfaceFormat returns undefined format for the null provider.
func (NullProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

var (
	_ gpucontext.DeviceProvider = NullProvider{}
	_ surface.Host              = (*Host)(nil)
	_ surface.NativeSurface     = (*providerSurface)(nil)
	_ surface.NativeContext     = (*providerContext)(nil)
)
