// Package keypath resolves nested fields inside arbitrary Go values.
//
// A path is a sequence of segments, each either a string key or an integer
// index. Paths can be written in dotted/indexed notation:
//
//	keypath.Get(record, "user.addresses[0].city")
//	keypath.Get(record, keypath.Of("user", "addresses", 0, "city"))
//
// Resolution walks maps, slices, arrays, structs, pointers and interfaces. It
// never panics: a missing key, a nil intermediate value or an out-of-range
// index resolves to "absent", reported by the second return value of Get.
package keypath
