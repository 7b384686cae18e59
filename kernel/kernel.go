// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package kernel validates externally supplied kernel descriptors.
//
// A kernel descriptor is a loosely structured record identifying a
// compiled kernel, exchanged with hosting applications either as a
// decoded map or as its JSON encoding. Validate is a shallow gate: it
// checks the boolean marker field that identifies a record as a kernel
// descriptor and nothing else. No deep schema validation happens here;
// descriptor fields beyond the marker are opaque to this package.
package kernel

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MarkerField is the descriptor field that must hold the boolean true
// for a record to be accepted as a kernel descriptor.
const MarkerField = "isKernelObj"

// Descriptor is a decoded kernel descriptor. Only the marker field is
// interpreted; all other fields pass through untouched.
type Descriptor map[string]any

// Errors.
var (
	// ErrNilDescriptor is returned for a nil input, or for textual
	// input that decodes to JSON null.
	ErrNilDescriptor = errors.New("kernel: descriptor is nil")

	// ErrMissingMarker is returned when the descriptor's marker field
	// is absent, non-boolean, or false.
	ErrMissingMarker = errors.New("kernel: descriptor lacks kernel marker")
)

// MalformedDescriptorError indicates textual input that could not be
// decoded as JSON, or input of a kind Validate does not accept.
type MalformedDescriptorError struct {
	Err error
}

func (e *MalformedDescriptorError) Error() string {
	return "kernel: malformed descriptor: " + e.Err.Error()
}

func (e *MalformedDescriptorError) Unwrap() error { return e.Err }

// Validate checks that v is a kernel descriptor and returns its decoded
// form.
//
// v may be a Descriptor, a map[string]any, or a JSON encoding as string
// or []byte. Structured input valid under the marker check is returned
// unchanged; textual input is returned in decoded form.
//
// Failure modes, in order of detection:
//   - nil input: ErrNilDescriptor
//   - undecodable JSON: *MalformedDescriptorError wrapping the decode error
//   - JSON null: ErrNilDescriptor
//   - marker field not strictly the boolean true: ErrMissingMarker
func Validate(v any) (Descriptor, error) {
	if v == nil {
		return nil, ErrNilDescriptor
	}

	switch d := v.(type) {
	case Descriptor:
		return checkMarker(d)
	case map[string]any:
		return checkMarker(Descriptor(d))
	case string:
		return decode([]byte(d))
	case []byte:
		// A typed-nil slice is still nil input, not malformed JSON.
		if d == nil {
			return nil, ErrNilDescriptor
		}
		return decode(d)
	default:
		return nil, &MalformedDescriptorError{Err: fmt.Errorf("unsupported descriptor type %T", v)}
	}
}

// decode parses a JSON-encoded descriptor and applies the marker check.
func decode(data []byte) (Descriptor, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, &MalformedDescriptorError{Err: err}
	}
	if decoded == nil {
		return nil, ErrNilDescriptor
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		// Valid JSON, but a scalar or array has no marker field.
		return nil, ErrMissingMarker
	}
	return checkMarker(Descriptor(obj))
}

// checkMarker accepts the descriptor iff the marker field is strictly
// the boolean true. Truthy stand-ins (1, "true") are rejected.
func checkMarker(d Descriptor) (Descriptor, error) {
	if d == nil {
		return nil, ErrNilDescriptor
	}
	marker, ok := d[MarkerField].(bool)
	if !ok || !marker {
		return nil, ErrMissingMarker
	}
	return d, nil
}
