// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface abstracts the host-provided drawing surface primitive.
//
// The capability core in glcaps consumes drawing surfaces, it never
// implements them. This package defines the contract a hosting
// environment must satisfy (Host, NativeSurface, NativeContext) and a
// typed Surface wrapper that carries an explicit discriminant from
// construction time, so validity checks do not rely on accidental
// structural matches.
//
// # Hosts
//
// A Host is anything that can construct drawing surfaces: a wgpu
// offscreen target, an injected GPU device, a browser canvas in a wasm
// build. Hosts register themselves with the package registry, usually
// from an init function in a backend package:
//
//	func init() {
//	    surface.Register("wgpu", 100, NewHost, available)
//	}
//
// Callers then probe without naming a backend:
//
//	if surface.APIAvailable() {
//	    s := surface.Create() // minimal 2x2 probe surface
//	}
//
// # Probe surfaces
//
// Create returns a fixed 2x2 surface. The non-zero size is deliberate:
// at least one major environment fails context creation on zero-sized
// surfaces, and the probe only needs a context, not pixels. Surfaces
// have no explicit teardown; they are released by garbage collection
// along with their host handles.
package surface
