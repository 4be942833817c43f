package util

import (
	"math"
	"strconv"
	"strings"
)

// ParseSize parses a human readable size ("1.5 KB", "10MB", "2 GiB",
// "3 kilobytes", "512") into bytes. Both unit tables are recognised by
// symbol or name, case-insensitively: SI units are powers of 1000 and IEC
// units powers of 1024. Returns defaultBytes if s cannot be parsed or does
// not fit in an int64.
func ParseSize(s string, defaultBytes int64) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultBytes
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	numPart, unitPart := s, ""
	if split >= 0 {
		numPart, unitPart = s[:split], strings.TrimSpace(s[split:])
	}

	n, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return defaultBytes
	}
	multiplier, ok := unitMultiplier(unitPart)
	if !ok {
		return defaultBytes
	}

	total := math.Round(n * multiplier)
	if math.IsNaN(total) || total >= math.MaxInt64 || total < math.MinInt64 {
		return defaultBytes
	}
	return int64(total)
}

func unitMultiplier(label string) (float64, bool) {
	label = strings.ToLower(label)
	switch label {
	case "", "b", "byte", "bytes":
		return 1, true
	}
	label = strings.TrimSuffix(label, "s")

	for _, table := range []*UnitTable{&siUnits, &iecUnits} {
		for i, u := range table.Units {
			if label == strings.ToLower(u.Short) || label == strings.ToLower(u.Long) {
				return math.Pow(table.Thresh, float64(i+1)), true
			}
		}
	}
	return 0, false
}
