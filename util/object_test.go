package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRemoveEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  map[string]any
	}{
		{"drops undefined", map[string]any{"foo": Undefined, "bar": "foo"}, map[string]any{"bar": "foo"}},
		{"keeps nil", map[string]any{"foo": nil, "bar": "foo"}, map[string]any{"foo": nil, "bar": "foo"}},
		{"keeps zero values", map[string]any{"a": 0, "b": "", "c": false}, map[string]any{"a": 0, "b": "", "c": false}},
		{"shallow", map[string]any{"n": map[string]any{"x": Undefined}}, map[string]any{"n": map[string]any{"x": Undefined}}},
		{"nil input", nil, map[string]any{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RemoveEmpty(tc.input)
			if diff := cmp.Diff(tc.want, got, cmp.Comparer(func(a, b undefined) bool { return true })); diff != "" {
				t.Errorf("RemoveEmpty mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveEmpty_DoesNotModifyInput(t *testing.T) {
	in := map[string]any{"foo": Undefined, "bar": 1}
	out := RemoveEmpty(in)
	if len(in) != 2 {
		t.Errorf("expected input untouched, got %v", in)
	}
	out["baz"] = 2
	if _, ok := in["baz"]; ok {
		t.Error("expected output to be a copy")
	}
}

func TestRemoveEmpty_IntKeys(t *testing.T) {
	got := RemoveEmpty(map[int]any{1: Undefined, 2: nil})
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %v", got)
	}
	if v, ok := got[2]; !ok || v != nil {
		t.Errorf("expected nil entry kept, got %v %v", v, ok)
	}
}

func TestIsUndefined(t *testing.T) {
	if !IsUndefined(Undefined) {
		t.Error("expected Undefined to be undefined")
	}
	if IsUndefined(nil) {
		t.Error("nil is null, not undefined")
	}
	if Undefined.(interface{ String() string }).String() != "undefined" {
		t.Error("unexpected Undefined string form")
	}
}
