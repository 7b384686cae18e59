package glcaps

import (
	"errors"
	"testing"

	"github.com/gogpu/glcaps/surface"
)

func TestDefaultContextOptions(t *testing.T) {
	opts := DefaultContextOptions()
	if opts.Alpha || opts.Depth || opts.Antialias {
		t.Errorf("DefaultContextOptions() = %+v, want all disabled", opts)
	}

	// Must be the same fixed literal on every call.
	if opts != DefaultContextOptions() {
		t.Error("DefaultContextOptions() not stable across calls")
	}
}

func TestAcquireInvalidSurface(t *testing.T) {
	tests := []struct {
		name string
		in   *surface.Surface
	}{
		{"nil surface", nil},
		{"zero-value surface", &surface.Surface{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := Acquire(tt.in)
			if !errors.Is(err, ErrInvalidSurface) {
				t.Errorf("Acquire() error = %v, want ErrInvalidSurface", err)
			}
			if ctx != nil {
				t.Errorf("Acquire() = %v, want nil", ctx)
			}
		})
	}
}

func TestAcquirePrefersLegacyKind(t *testing.T) {
	h := &fakeHost{surf: &fakeSurface{
		contexts: map[string]*fakeContext{
			"experimental-webgl": {ext: allExtensions()},
			"webgl":              {ext: allExtensions()},
		},
	}}
	s := mustSurface(t, h)

	ctx, err := Acquire(s)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if ctx == nil {
		t.Fatal("Acquire() = nil, want context")
	}
	if ctx.Kind() != "experimental-webgl" {
		t.Errorf("Kind() = %q, want experimental-webgl first", ctx.Kind())
	}
}

func TestAcquireFallsBackToStandardKind(t *testing.T) {
	h := &fakeHost{surf: &fakeSurface{
		contexts: map[string]*fakeContext{
			"webgl": {ext: allExtensions()},
		},
	}}
	s := mustSurface(t, h)

	ctx, err := Acquire(s)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if ctx == nil {
		t.Fatal("Acquire() = nil, want context")
	}
	if ctx.Kind() != "webgl" {
		t.Errorf("Kind() = %q, want webgl", ctx.Kind())
	}
}

func TestAcquireKindErrorNonFatal(t *testing.T) {
	h := &fakeHost{surf: &fakeSurface{
		fail: map[string]error{
			"experimental-webgl": errors.New("boom"),
		},
		contexts: map[string]*fakeContext{
			"webgl": {ext: allExtensions()},
		},
	}}
	s := mustSurface(t, h)

	ctx, err := Acquire(s)
	if err != nil {
		t.Fatalf("Acquire() error = %v, want fallthrough to webgl", err)
	}
	if ctx == nil || ctx.Kind() != "webgl" {
		t.Fatalf("Acquire() = %v, want webgl context", ctx)
	}
}

func TestAcquireNoContextOffered(t *testing.T) {
	h := &fakeHost{surf: &fakeSurface{}}
	s := mustSurface(t, h)

	ctx, err := Acquire(s)
	if err != nil {
		t.Fatalf("Acquire() error = %v, want nil (absent capability)", err)
	}
	if ctx != nil {
		t.Errorf("Acquire() = %v, want nil", ctx)
	}
}

func TestAcquireRecordsExtensions(t *testing.T) {
	h := &fakeHost{surf: &fakeSurface{
		contexts: map[string]*fakeContext{
			"webgl": {ext: map[string]any{
				ExtTextureFloat: "float-handle",
				ExtDrawBuffers:  "mrt-handle",
			}},
		},
	}}
	s := mustSurface(t, h)

	ctx, err := Acquire(s)
	if err != nil || ctx == nil {
		t.Fatalf("Acquire() = %v, %v", ctx, err)
	}

	if h, ok := ctx.Extension(ExtTextureFloat); !ok || h != "float-handle" {
		t.Errorf("Extension(float) = %v, %v", h, ok)
	}
	if _, ok := ctx.Extension(ExtTextureFloatLinear); ok {
		t.Error("Extension(float linear) resolved, want absent")
	}
	if _, ok := ctx.Extension(ExtElementIndexUint); ok {
		t.Error("Extension(uint index) resolved, want absent")
	}
	if !ctx.DrawBuffersSupported() {
		t.Error("DrawBuffersSupported() = false, want true")
	}
}

func TestAcquireDrawBuffersAbsent(t *testing.T) {
	h := &fakeHost{surf: &fakeSurface{
		contexts: map[string]*fakeContext{
			"webgl": {ext: map[string]any{ExtTextureFloat: "h"}},
		},
	}}
	s := mustSurface(t, h)

	ctx, err := Acquire(s)
	if err != nil || ctx == nil {
		t.Fatalf("Acquire() = %v, %v", ctx, err)
	}
	if ctx.DrawBuffersSupported() {
		t.Error("DrawBuffersSupported() = true, want false")
	}
}

func TestIsContext(t *testing.T) {
	h := &fakeHost{surf: &fakeSurface{
		contexts: map[string]*fakeContext{"webgl": {ext: allExtensions()}},
	}}
	ctx, err := Acquire(mustSurface(t, h))
	if err != nil || ctx == nil {
		t.Fatalf("Acquire() = %v, %v", ctx, err)
	}

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"acquired context", ctx, true},
		{"native context directly", &fakeContext{}, true},
		{"nil", nil, false},
		{"typed nil context", (*Context)(nil), false},
		{"zero-value context", &Context{}, false},
		{"string", "not a context", false},
		{"int", 42, false},
		{"empty struct", struct{}{}, false},
		{"map", map[string]any{"getContext": true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsContext(tt.in); got != tt.want {
				t.Errorf("IsContext(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
