package util

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	defaultSizeDP = 2
	maxSizeDP     = 100

	// fixedPrec holds any float64 scaled by 10^maxSizeDP exactly, including
	// its smallest subnormal bits.
	fixedPrec = 2048
)

// Number is any integer or floating point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// SizeConfig tunes HumanFileSize. Nil fields take their defaults.
type SizeConfig struct {
	// SI selects decimal units (KB, 1000) when true and binary units
	// (KiB, 1024) when false. Defaults to true.
	SI *bool `json:"si,omitempty" yaml:"si" mapstructure:"si"`
	// DP is the number of decimal places, clamped to [0, 100]. Defaults to 2.
	DP *int `json:"dp,omitempty" yaml:"dp" mapstructure:"dp"`
	// Long prints unit names ("Kilobyte") instead of symbols ("KB").
	Long bool `json:"long,omitempty" yaml:"long" mapstructure:"long"`
}

// HumanFileSize formats a byte count as human readable text.
//
//	HumanFileSize(0)                                          // "0 B"
//	HumanFileSize(1500, SizeConfig{DP: Ptr(1)})              // "1.5 KB"
//	HumanFileSize(1024, SizeConfig{SI: Ptr(false)})          // "1.00 KiB"
//	HumanFileSize(-2e6, SizeConfig{Long: true})              // "-2.00 Megabyte"
//
// Counts below the table threshold are printed unchanged with a "B" suffix.
// Larger counts are divided by the threshold until the value, rounded to DP
// places, drops below it or the largest unit is reached.
func HumanFileSize[N Number](bytes N, cfg ...SizeConfig) string {
	var c SizeConfig
	if len(cfg) > 0 {
		c = cfg[0]
	}
	dp := min(max(DerefOr(c.DP, defaultSizeDP), 0), maxSizeDP)
	table := unitTable(DerefOr(c.SI, true))

	b := float64(bytes)
	if math.Abs(b) < table.Thresh {
		return formatNumber(b) + " B"
	}

	u := -1
	r := math.Pow(10, float64(dp))
	for {
		b /= table.Thresh
		u++
		// NaN stops at the first tier.
		if !(roundHalfUp(math.Abs(b)*r)/r >= table.Thresh) || u >= len(table.Units)-1 {
			break
		}
	}

	unit := table.Units[u]
	label := unit.Short
	if c.Long {
		label = unit.Long
	}
	return toFixed(b, dp) + " " + label
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// formatNumber prints b in its shortest form the way JavaScript stringifies
// numbers: negative zero prints as "0", and magnitudes below 1e-6 or from
// 1e21 up use an exponent ("1e-7", "1e+21").
func formatNumber(b float64) string {
	if b == 0 {
		return "0"
	}
	if a := math.Abs(b); a >= 1e-6 && a < 1e21 {
		return strconv.FormatFloat(b, 'f', -1, 64)
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(b, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// toFixed formats v with exactly dp decimals. Ties round away from zero on
// the exact binary value, so toFixed(1.125, 2) is "1.13" while 1.005 (stored
// as 1.00499...) gives "1.00".
func toFixed(v float64, dp int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	x := new(big.Float).SetPrec(fixedPrec).SetFloat64(v)
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(dp)), nil)
	x.Mul(x, new(big.Float).SetPrec(fixedPrec).SetInt(scale))
	x.Add(x, new(big.Float).SetPrec(fixedPrec).SetFloat64(0.5))
	n, _ := x.Int(nil)

	digits := n.String()
	if dp > 0 {
		if len(digits) <= dp {
			digits = strings.Repeat("0", dp-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-dp] + "." + digits[len(digits)-dp:]
	}
	return sign + digits
}
