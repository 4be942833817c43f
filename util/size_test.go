package util

import (
	"math"
	"testing"
)

func TestHumanFileSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes float64
		cfg   SizeConfig
		want  string
	}{
		{"zero", 0, SizeConfig{}, "0 B"},
		{"negative zero", math.Copysign(0, -1), SizeConfig{}, "0 B"},
		{"below threshold", 999, SizeConfig{}, "999 B"},
		{"fractional bytes", 12.5, SizeConfig{}, "12.5 B"},
		{"tiny bytes use an exponent", 1e-7, SizeConfig{}, "1e-7 B"},
		{"tiny negative bytes", -2.5e-10, SizeConfig{}, "-2.5e-10 B"},
		{"smallest plain decimal", 1e-6, SizeConfig{}, "0.000001 B"},
		{"negative below threshold", -512, SizeConfig{}, "-512 B"},
		{"iec kibibyte", 1024, SizeConfig{SI: Ptr(false)}, "1.00 KiB"},
		{"iec below threshold", 1000, SizeConfig{SI: Ptr(false)}, "1000 B"},
		{"si one decimal", 1500, SizeConfig{SI: Ptr(true), DP: Ptr(1)}, "1.5 KB"},
		{"si default", 1000, SizeConfig{}, "1.00 KB"},
		{"rounds up a tier", 999999, SizeConfig{}, "1.00 MB"},
		{"stays in tier without rounding", 999499, SizeConfig{}, "999.50 KB"},
		{"zero decimals", 1536, SizeConfig{SI: Ptr(false), DP: Ptr(0)}, "2 KiB"},
		{"long names", 2e6, SizeConfig{Long: true}, "2.00 Megabyte"},
		{"long iec", 3 * 1024 * 1024 * 1024, SizeConfig{SI: Ptr(false), Long: true}, "3.00 Gibibyte"},
		{"negative", -2e6, SizeConfig{}, "-2.00 MB"},
		{"largest unit caps", 1e27, SizeConfig{}, "1000.00 YB"},
		{"tie rounds away from zero", 1125, SizeConfig{}, "1.13 KB"},
		{"negative dp clamps", 1500, SizeConfig{DP: Ptr(-3)}, "2 KB"},
		{"infinity", math.Inf(1), SizeConfig{}, "Infinity YB"},
		{"nan", math.NaN(), SizeConfig{}, "NaN KB"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HumanFileSize(tc.bytes, tc.cfg); got != tc.want {
				t.Errorf("HumanFileSize(%v) = %q, want %q", tc.bytes, got, tc.want)
			}
		})
	}
}

func TestHumanFileSize_NoConfig(t *testing.T) {
	if got := HumanFileSize(0); got != "0 B" {
		t.Errorf("expected \"0 B\", got %q", got)
	}
	if got := HumanFileSize(int64(1_500_000)); got != "1.50 MB" {
		t.Errorf("expected \"1.50 MB\", got %q", got)
	}
	if got := HumanFileSize(uint32(2048), SizeConfig{SI: Ptr(false)}); got != "2.00 KiB" {
		t.Errorf("expected \"2.00 KiB\", got %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{512, "512"},
		{0.1, "0.1"},
		{1e-7, "1e-7"},
		{1.5e-7, "1.5e-7"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-1.25e22, "-1.25e+22"},
	}
	for _, tc := range tests {
		if got := formatNumber(tc.v); got != tc.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		v    float64
		dp   int
		want string
	}{
		{1, 2, "1.00"},
		{1.125, 2, "1.13"},
		{1.005, 2, "1.00"},
		{0.05, 2, "0.05"},
		{0.5, 0, "1"},
		{2.5, 0, "3"},
		{-1.5, 0, "-2"},
		{-0.001, 2, "-0.00"},
		{123.456, 1, "123.5"},
		{1e21, 2, "1e+21"},
	}
	for _, tc := range tests {
		if got := toFixed(tc.v, tc.dp); got != tc.want {
			t.Errorf("toFixed(%v, %d) = %q, want %q", tc.v, tc.dp, got, tc.want)
		}
	}
}

func TestUnits(t *testing.T) {
	si := Units(true)
	if si.Thresh != 1000 || si.Units[0].Short != "KB" || len(si.Units) != 8 {
		t.Errorf("unexpected SI table: %+v", si)
	}
	iec := Units(false)
	if iec.Thresh != 1024 || iec.Units[7].Long != "Yobibyte" {
		t.Errorf("unexpected IEC table: %+v", iec)
	}

	si.Units[0].Short = "changed"
	if Units(true).Units[0].Short != "KB" {
		t.Error("expected Units to return a copy")
	}
}
