package util

import "strings"

// StringToBoolean converts s to a boolean.
//
// After trimming and lower-casing, "1", "true" and "yes" are true and "0",
// "false" and "no" are false. Any other input is true unless it is the empty
// string, so "banana" and "   " both yield true.
func StringToBoolean(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return s != ""
	}
}

// StringPtrToBoolean is StringToBoolean for optional strings; nil is false.
func StringPtrToBoolean(s *string) bool {
	if s == nil {
		return false
	}
	return StringToBoolean(*s)
}
