package keypath

import (
	"reflect"
	"strings"
)

// Get resolves path against value and returns the field found there.
// The second result is false when the path does not resolve ("absent"); a
// field that exists but holds nil returns (nil, true).
//
// path may be a Path, a Segment, a string in dotted notation, an int index,
// a []string or a []any of segments. A string path that names an existing
// map key verbatim ("a.b" stored as one key) resolves to that key before it
// is split into segments.
func Get(value any, path any) (any, bool) {
	if s, ok := path.(string); ok {
		if v, ok := literalKey(value, s); ok {
			return v, true
		}
	}

	p := From(path)
	if len(p) == 0 {
		return nil, false
	}

	cur := reflect.ValueOf(value)
	for _, seg := range p {
		next, ok := step(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return result(cur)
}

// Has reports whether path resolves inside value.
func Has(value any, path any) bool {
	_, ok := Get(value, path)
	return ok
}

// From converts any supported path representation into a Path.
func From(path any) Path {
	switch p := path.(type) {
	case nil:
		return nil
	case Path:
		return p
	case Segment:
		return Path{p}
	case string:
		return Parse(p)
	case []string:
		out := make(Path, len(p))
		for i, k := range p {
			out[i] = Key(k)
		}
		return out
	case []any:
		return Of(p...)
	default:
		return Of(p)
	}
}

func literalKey(value any, key string) (any, bool) {
	if !strings.ContainsAny(key, ".[") {
		return nil, false
	}
	v := deref(reflect.ValueOf(value))
	if !v.IsValid() || v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	found := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
	if !found.IsValid() {
		return nil, false
	}
	return result(found)
}

func step(cur reflect.Value, seg Segment) (reflect.Value, bool) {
	cur = deref(cur)
	if !cur.IsValid() {
		return reflect.Value{}, false
	}

	switch cur.Kind() {
	case reflect.Map:
		return mapIndex(cur, seg)
	case reflect.Slice, reflect.Array:
		i, ok := seg.Int()
		if !ok || i < 0 || i >= cur.Len() {
			return reflect.Value{}, false
		}
		return cur.Index(i), true
	case reflect.Struct:
		return structField(cur, seg.String())
	default:
		return reflect.Value{}, false
	}
}

func mapIndex(m reflect.Value, seg Segment) (reflect.Value, bool) {
	kt := m.Type().Key()
	var key reflect.Value

	switch kt.Kind() {
	case reflect.String:
		key = reflect.ValueOf(seg.String()).Convert(kt)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := seg.Int()
		if !ok {
			return reflect.Value{}, false
		}
		if reflect.Zero(kt).OverflowInt(int64(i)) {
			return reflect.Value{}, false
		}
		key = reflect.ValueOf(int64(i)).Convert(kt)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, ok := seg.Int()
		if !ok || i < 0 || reflect.Zero(kt).OverflowUint(uint64(i)) {
			return reflect.Value{}, false
		}
		key = reflect.ValueOf(uint64(i)).Convert(kt)
	case reflect.Interface:
		// map[any]any: try the key as written, then its other form. Keys
		// that cannot be stored in the map's key type are absent.
		if k := reflect.ValueOf(seg.String()); k.Type().AssignableTo(kt) {
			if v := m.MapIndex(k); v.IsValid() {
				return v, true
			}
		}
		if i, ok := seg.Int(); ok {
			if k := reflect.ValueOf(i); k.Type().AssignableTo(kt) {
				if v := m.MapIndex(k); v.IsValid() {
					return v, true
				}
			}
		}
		return reflect.Value{}, false
	default:
		return reflect.Value{}, false
	}

	v := m.MapIndex(key)
	return v, v.IsValid()
}

func structField(s reflect.Value, name string) (reflect.Value, bool) {
	fields := reflect.VisibleFields(s.Type())

	match := func(pred func(reflect.StructField) bool) (reflect.Value, bool) {
		for _, f := range fields {
			if !f.IsExported() || !pred(f) {
				continue
			}
			v, err := s.FieldByIndexErr(f.Index)
			if err != nil {
				return reflect.Value{}, false
			}
			return v, true
		}
		return reflect.Value{}, false
	}

	if v, ok := match(func(f reflect.StructField) bool { return f.Name == name }); ok {
		return v, true
	}
	if v, ok := match(func(f reflect.StructField) bool { return jsonName(f) == name }); ok {
		return v, true
	}
	return match(func(f reflect.StructField) bool { return strings.EqualFold(f.Name, name) })
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func deref(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func result(v reflect.Value) (any, bool) {
	if !v.IsValid() {
		return nil, false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, true
		}
	}
	if !v.CanInterface() {
		return nil, false
	}
	return v.Interface(), true
}
