// Package glcaps answers one question for GPU-compute callers: can this
// process obtain a usable accelerated drawing context, and with which
// optional extensions?
//
// # Overview
//
// glcaps probes the hosting environment once, at first use, and caches the
// result as an immutable capability snapshot. Detection walks a fixed
// sequence: is a drawing-surface host available, can a probe surface be
// created, can an accelerated context be acquired from it, and which of a
// small enumerated set of extensions resolve against that context. Every
// later query is a cheap read of the cached snapshot; no accessor ever
// re-runs detection, because context creation is expensive and can consume
// a limited number of live contexts in some environments.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glcaps"
//	    _ "github.com/gogpu/glcaps/backend/wgpu" // enable the wgpu host
//	)
//
//	if !glcaps.IsGraphicsAPIAvailable() {
//	    // fall back to CPU compute
//	}
//	if glcaps.IsDrawBuffersSupported() {
//	    // multi-target kernels are safe here
//	}
//
// # Snapshots
//
// The package-level accessors read a process-wide snapshot computed exactly
// once. Code that needs deterministic capability scenarios (for example a
// "no GPU" test) builds its own snapshot with [DetectHost] and an injected
// [surface.Host] instead of mocking the environment.
//
// # Hosts
//
// glcaps consumes drawing surfaces, it does not implement them. Host
// backends register themselves with the surface registry, typically via
// blank import:
//
//	import _ "github.com/gogpu/glcaps/backend/wgpu"
//
// # Utilities
//
// Two small utilities travel with the capability core because kernel
// callers need them at the same call sites: [Clone], a cycle-safe deep
// clone for kernel argument graphs, and the kernel descriptor gate in
// package kernel.
package glcaps

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
