package glcaps

import "reflect"

// Clone returns a deep copy of v.
//
// Primitives, nil values, channels, and functions pass through
// unchanged; maps, slices, arrays, pointers, structs, and interface
// values are duplicated recursively. Struct fields are visited in
// declaration order; unexported fields are carried over by shallow
// copy, since they cannot be set through reflection.
//
// Clone is cycle-safe. Each call threads an identity-keyed visited set
// through the recursion: when an instance already being cloned is
// reached again, its in-progress copy is returned instead of recursing,
// so self-references are preserved structurally:
//
//	a := map[string]any{}
//	a["self"] = a
//	b := glcaps.Clone(a) // terminates; b["self"] is b
//
// The input is never mutated, so concurrent clones of a shared graph
// are safe (each call owns its visited set).
func Clone[T any](v T) T {
	rv := reflect.ValueOf(&v).Elem()
	out := cloneValue(rv, make(map[visit]reflect.Value))
	// Comma-ok: asserting a nil interface panics even when T is any,
	// and a nil input must pass through as the zero value.
	r, _ := out.Interface().(T)
	return r
}

// visit identifies an object instance during one Clone call. The type
// disambiguates distinct objects that share an address, such as a
// struct and its first field; the length disambiguates slices that
// share a backing array but view different prefixes of it.
type visit struct {
	ptr uintptr
	len int
	typ reflect.Type
}

func cloneValue(v reflect.Value, seen map[visit]reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Invalid:
		return v

	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(cloneValue(v.Elem(), seen))
		return out

	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if c, ok := seen[key]; ok {
			return c
		}
		out := reflect.New(v.Type().Elem())
		seen[key] = out
		out.Elem().Set(cloneValue(v.Elem(), seen))
		return out

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if c, ok := seen[key]; ok {
			return c
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		seen[key] = out
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(cloneValue(iter.Key(), seen), cloneValue(iter.Value(), seen))
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		key := visit{ptr: v.Pointer(), len: v.Len(), typ: v.Type()}
		if c, ok := seen[key]; ok {
			return c
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		seen[key] = out
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(cloneValue(v.Index(i), seen))
		}
		return out

	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(cloneValue(v.Index(i), seen))
		}
		return out

	case reflect.Struct:
		out := reflect.New(v.Type()).Elem()
		// Shallow copy first so unexported fields survive.
		out.Set(v)
		for i := 0; i < v.NumField(); i++ {
			f := out.Field(i)
			if f.CanSet() {
				f.Set(cloneValue(v.Field(i), seen))
			}
		}
		return out

	default:
		// Primitives, chans, funcs: pass through.
		return v
	}
}
