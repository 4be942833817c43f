package util

// undefined marks a map entry as missing, as opposed to holding nil.
type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the "missing" sentinel. A map value equal to Undefined is
// dropped by RemoveEmpty and resolves as absent in SortByKey; nil is an
// ordinary (null) value and is kept.
var Undefined any = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// RemoveEmpty returns a shallow copy of m without the entries whose value is
// Undefined. Entries holding nil are kept. Nested maps are not visited and m
// itself is never modified.
func RemoveEmpty[K comparable](m map[K]any) map[K]any {
	out := make(map[K]any, len(m))
	for k, v := range m {
		if IsUndefined(v) {
			continue
		}
		out[k] = v
	}
	return out
}
