// Package iva groups the iva helpers under one import.
//
// Every function here is the package-level form of a helper that lives in
// a focused subpackage; there is no shared state.
//
//	iva.SortByKey(users, "profile.age")
//	iva.HumanFileSize(1536, iva.SizeConfig{SI: iva.Ptr(false)}) // "1.50 KiB"
//	css, err := iva.FetchCSS(ctx, urls)
package iva

import (
	"github.com/ivakit/iva/fetch"
	"github.com/ivakit/iva/keypath"
	"github.com/ivakit/iva/request"
	"github.com/ivakit/iva/util"
)

// SizeConfig tunes HumanFileSize.
type SizeConfig = util.SizeConfig

// Format selects how BasicFetch decodes a response body.
type Format = fetch.Format

const (
	FormatJSON = fetch.FormatJSON
	FormatText = fetch.FormatText
)

// Undefined marks a field as absent, as opposed to nil. RemoveEmpty drops it.
var Undefined = util.Undefined

var (
	StringToBoolean = util.StringToBoolean
	IsIterable      = util.IsIterable
	IsUndefined     = util.IsUndefined
	ParseSize       = util.ParseSize
	Units           = util.Units
	BaseURL         = request.BaseURL
	BasicFetch      = fetch.BasicFetch
	FetchCSS        = fetch.FetchCSS
	Get             = keypath.Get
)

// SortByKey sorts list in place by the value at path. See util.SortByKey.
func SortByKey[T any](list []T, path any) []T {
	return util.SortByKey(list, path)
}

// RemoveEmpty returns a copy of m without Undefined values.
func RemoveEmpty[K comparable](m map[K]any) map[K]any {
	return util.RemoveEmpty(m)
}

// HumanFileSize formats a byte count. See util.HumanFileSize.
func HumanFileSize[N util.Number](bytes N, cfg ...SizeConfig) string {
	return util.HumanFileSize(bytes, cfg...)
}

// Ptr returns a pointer to v, for SizeConfig fields.
func Ptr[T any](v T) *T {
	return util.Ptr(v)
}
