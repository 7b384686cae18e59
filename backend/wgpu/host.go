//go:build !nogpu

// Package wgpu provides a drawing-surface host backed by gogpu/wgpu.
//
// Importing this package registers the "wgpu" host with the glcaps
// surface registry, making capability detection see a real GPU device
// where one exists:
//
//	import _ "github.com/gogpu/glcaps/backend/wgpu"
//
// The host opens a hal device once, on first surface creation, and
// shares it across all surfaces for the process lifetime. If no
// Vulkan-capable adapter exists, the host reports itself unavailable
// and detection falls through to other hosts (or to unsupported).
package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/glcaps"
	"github.com/gogpu/glcaps/surface"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// HostName is the registry identifier for this host.
const HostName = "wgpu"

func init() {
	surface.Register(HostName, 100, sharedHost, available)
}

// available reports whether a hal backend is present without touching
// the GPU. Registry availability checks must stay cheap.
func available() bool {
	_, ok := hal.GetBackend(gputypes.BackendVulkan)
	return ok
}

// The host is memoized: opening an adapter is expensive and some
// environments cap the number of live devices, so every registry
// factory call shares one instance.
var (
	hostOnce sync.Once
	hostInst *Host
	hostErr  error
)

func sharedHost() (surface.Host, error) {
	hostOnce.Do(func() {
		hostInst, hostErr = newHost()
	})
	if hostErr != nil {
		return nil, hostErr
	}
	return hostInst, nil
}

// Host creates offscreen drawing surfaces on a wgpu hal device.
type Host struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	adapter  string
}

func newHost() (*Host, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, errors.New("wgpu: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, errors.New("wgpu: no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	h := &Host{
		instance: instance,
		device:   openDev.Device,
		queue:    openDev.Queue,
		adapter:  selected.Info.Name,
	}
	glcaps.Logger().Info("wgpu: host initialized", "adapter", h.adapter)
	return h, nil
}

// Name returns the registry identifier.
func (h *Host) Name() string { return HostName }

// Adapter returns the name of the GPU adapter backing this host.
func (h *Host) Adapter() string { return h.adapter }

// CreateSurface constructs an offscreen surface of the given size.
func (h *Host) CreateSurface(width, height int) (surface.NativeSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("wgpu: invalid dimensions %dx%d", width, height)
	}
	return &offscreenSurface{host: h, width: width, height: height}, nil
}

// offscreenSurface is a render target that exists only to hand out
// contexts; no pixel storage is allocated until a kernel draws.
type offscreenSurface struct {
	host   *Host
	width  int
	height int
}

func (s *offscreenSurface) Width() int  { return s.width }
func (s *offscreenSurface) Height() int { return s.height }

// Context acquires a context of the given kind. Both the legacy
// "experimental-webgl" identifier and the standard "webgl" one resolve
// to the same device-backed context; unknown kinds are not offered.
// The options are accepted as given: the device renders offscreen, so
// alpha, depth, and antialias only affect targets created later.
func (s *offscreenSurface) Context(kind string, opts surface.ContextOptions) (surface.NativeContext, error) {
	switch kind {
	case "webgl", "experimental-webgl":
		return &deviceContext{host: s.host, opts: opts}, nil
	default:
		return nil, nil
	}
}

// deviceContext exposes extension resolution over the shared device.
type deviceContext struct {
	host *Host
	opts surface.ContextOptions
}

// ExtensionHandle is the opaque handle deviceContext returns for a
// resolved extension.
type ExtensionHandle struct {
	// Name is the extension the handle resolves.
	Name string
}

// Extension resolves the WebGL-era extension set against the device.
// A wgpu baseline device subsumes all four capabilities (float
// textures, linear float filtering, 32-bit indices, multiple render
// targets), so every known name resolves while the device is live.
func (c *deviceContext) Extension(name string) (any, bool) {
	switch name {
	case glcaps.ExtTextureFloat,
		glcaps.ExtTextureFloatLinear,
		glcaps.ExtElementIndexUint,
		glcaps.ExtDrawBuffers:
		return &ExtensionHandle{Name: name}, true
	default:
		return nil, false
	}
}

var (
	_ surface.Host          = (*Host)(nil)
	_ surface.NativeSurface = (*offscreenSurface)(nil)
	_ surface.NativeContext = (*deviceContext)(nil)
)
