// Package util provides small, stateless helpers shared by iva consumers.
//
// It covers ordering records by a nested key (SortByKey), pruning undefined
// entries from maps (RemoveEmpty), lenient boolean parsing
// (StringToBoolean), iteration capability checks (IsIterable) and byte-size
// formatting and parsing in SI or IEC units (HumanFileSize, ParseSize).
//
// Nothing in this package performs I/O or logs. Malformed input never
// panics: it resolves to a permissive default instead.
package util
