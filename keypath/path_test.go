package keypath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Path
	}{
		{"count", Path{Key("count")}},
		{"", Path{Key("")}},
		{"a.b.c", Path{Key("a"), Key("b"), Key("c")}},
		{"a.b[0].c", Path{Key("a"), Key("b"), Index(0), Key("c")}},
		{"[2]", Path{Index(2)}},
		{"a[0][1]", Path{Key("a"), Index(0), Index(1)}},
		{`a["x.y"].z`, Path{Key("a"), Key("x.y"), Key("z")}},
		{`a['q']`, Path{Key("a"), Key("q")}},
		{"a..b", Path{Key("a"), Key(""), Key("b")}},
		{".a", Path{Key(""), Key("a")}},
		{"a.", Path{Key("a"), Key("")}},
		{"a[key]", Path{Key("a"), Key("key")}},
		{"a[0", Path{Key("a"), Key("[0")}},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := Parse(tc.input)
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(Segment{})); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestOf(t *testing.T) {
	got := Of("a", 1, int64(2), uint8(3), 4.5, Key("k"))
	want := Path{Key("a"), Index(1), Index(2), Index(3), Key("4.5"), Key("k")}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Segment{})); diff != "" {
		t.Errorf("Of mismatch (-want +got):\n%s", diff)
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{Path{Key("a"), Key("b")}, "a.b"},
		{Path{Key("a"), Index(0), Key("c")}, "a[0].c"},
		{Path{Index(3)}, "[3]"},
		{Path{Key("a"), Key("x.y")}, `a["x.y"]`},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.path.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"a.b[0].c", "[1].x", `a["x.y"]`} {
		if got := Parse(s).String(); got != s {
			t.Errorf("Parse(%q).String() = %q", s, got)
		}
	}
}

func TestSegmentInt(t *testing.T) {
	if i, ok := Key("7").Int(); !ok || i != 7 {
		t.Errorf("expected numeric key to convert, got %d %v", i, ok)
	}
	if _, ok := Key("x").Int(); ok {
		t.Error("expected non-numeric key not to convert")
	}
	if !Index(1).IsIndex() || Key("1").IsIndex() {
		t.Error("IsIndex mismatch")
	}
}
