package util

import "reflect"

// Iterator is the pull-style iteration protocol (sql.Rows, custom cursors).
type Iterator interface {
	Next() bool
}

// IsIterable reports whether v can be iterated: it is not nil and it is a
// string, array, pointer to array, slice, map, receivable channel,
// range-over-func sequence, an Iterator, or a value with an All method
// returning such a sequence. Integers are not iterable. It never panics.
func IsIterable(v any) bool {
	if v == nil || IsUndefined(v) {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return false
		}
	}

	if _, ok := v.(Iterator); ok {
		return true
	}
	if hasAllMethod(rv) {
		return true
	}

	switch rv.Kind() {
	case reflect.String, reflect.Array, reflect.Slice, reflect.Map:
		return true
	case reflect.Chan:
		return rv.Type().ChanDir()&reflect.RecvDir != 0
	case reflect.Pointer:
		return rv.Elem().Kind() == reflect.Array
	case reflect.Func:
		return isSeqFunc(rv.Type())
	default:
		return false
	}
}

// isSeqFunc matches func(yield func(...) bool) with up to two yielded values.
func isSeqFunc(t reflect.Type) bool {
	if t.Kind() != reflect.Func || t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() <= 2 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

func hasAllMethod(rv reflect.Value) bool {
	m := rv.MethodByName("All")
	if !m.IsValid() {
		return false
	}
	mt := m.Type()
	return mt.NumIn() == 0 && mt.NumOut() == 1 && isSeqFunc(mt.Out(0))
}
