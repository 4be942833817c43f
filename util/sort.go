package util

import (
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ivakit/iva/keypath"
)

// SortByKey sorts list in place, ascending by the value each element holds
// at path, and returns list.
//
// path accepts everything keypath.Get does ("count", "user.tags[0]",
// keypath.Of(...)). Elements where the path does not resolve, or resolves to
// Undefined, sort before all others; a resolved nil sorts next. The remaining
// values are ordered with Compare, which is a total order, so the sort is
// stable and sorting twice changes nothing.
func SortByKey[T any](list []T, path any) []T {
	type keyed struct {
		item    T
		key     sortKey
		present bool
	}

	decorated := make([]keyed, len(list))
	for i, item := range list {
		v, ok := keypath.Get(item, path)
		decorated[i] = keyed{item: item, key: classify(v), present: ok && !IsUndefined(v)}
	}

	slices.SortStableFunc(decorated, func(a, b keyed) int {
		switch {
		case !a.present && !b.present:
			return 0
		case !a.present:
			return -1
		case !b.present:
			return 1
		}
		return compareKeys(a.key, b.key)
	})

	for i := range decorated {
		list[i] = decorated[i].item
	}
	return list
}

// Value classes in ascending order. Values of different classes compare by
// class alone.
const (
	rankNil = iota
	rankNumber
	rankString
	rankBool
	rankTime
	rankStringer
	rankOther
)

type sortKey struct {
	rank int
	num  float64
	str  string
	b    bool
	t    time.Time
}

// Compare is a three-way comparison over loosely typed values. It returns
// -1, 0 or +1 and is a total order, so it is safe to sort with.
//
// Values are ranked by class first: nil, then numbers, then other strings,
// bools, time.Time values, fmt.Stringers and finally everything else.
// Numbers of any kind and strings holding a number share the number class
// and compare by value, with NaN below every other number. Strings compare
// lexically, bools false < true, times chronologically and Stringers by
// their text. Anything else compares equal within its class.
func Compare(a, b any) int {
	return compareKeys(classify(a), classify(b))
}

func compareKeys(a, b sortKey) int {
	if a.rank != b.rank {
		return cmp.Compare(a.rank, b.rank)
	}
	switch a.rank {
	case rankNumber:
		return cmp.Compare(a.num, b.num)
	case rankString, rankStringer:
		return strings.Compare(a.str, b.str)
	case rankBool:
		return compareBool(a.b, b.b)
	case rankTime:
		return a.t.Compare(b.t)
	}
	return 0
}

func classify(v any) sortKey {
	if v == nil {
		return sortKey{rank: rankNil}
	}
	if f, ok := toFloat(v); ok {
		return sortKey{rank: rankNumber, num: f}
	}
	if s, ok := toString(v); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return sortKey{rank: rankNumber, num: f}
		}
		return sortKey{rank: rankString, str: s}
	}
	if t, ok := v.(time.Time); ok {
		return sortKey{rank: rankTime, t: t}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Bool {
		return sortKey{rank: rankBool, b: rv.Bool()}
	}
	if sv, ok := v.(fmt.Stringer); ok && !isNilPointer(rv) {
		return sortKey{rank: rankStringer, str: sv.String()}
	}
	return sortKey{rank: rankOther}
}

func isNilPointer(rv reflect.Value) bool {
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func toFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// toString accepts string kinds only; Stringers are handled separately so
// that two time.Time values never compare by their formatted text.
func toString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
