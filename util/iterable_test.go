package util

import (
	"iter"
	"maps"
	"slices"
	"testing"
)

type cursor struct{ n int }

func (c *cursor) Next() bool { c.n--; return c.n >= 0 }

type bag struct{ items []string }

func (b bag) All() iter.Seq[string] { return slices.Values(b.items) }

type notBag struct{}

func (notBag) All() []string { return nil }

func TestIsIterable(t *testing.T) {
	var (
		nilSlice []int
		nilMap   map[string]int
		nilPtr   *[3]int
		nilFunc  func(func(int) bool)
	)
	recvOnly := make(<-chan int)
	sendOnly := make(chan<- int)

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"slice", []int{1, 2, 3}, true},
		{"empty slice", []int{}, true},
		{"array", [2]string{"a", "b"}, true},
		{"pointer to array", &[2]int{}, true},
		{"string", "abc", true},
		{"empty string", "", true},
		{"map", map[string]int{"a": 1}, true},
		{"channel", make(chan int), true},
		{"receive-only channel", recvOnly, true},
		{"send-only channel", sendOnly, false},
		{"seq", slices.Values([]int{1}), true},
		{"seq2", maps.All(map[string]int{}), true},
		{"iterator", &cursor{n: 2}, true},
		{"All method", bag{items: []string{"x"}}, true},
		{"All method not a seq", notBag{}, false},
		{"int", 42, false},
		{"float", 4.2, false},
		{"bool", true, false},
		{"struct", struct{}{}, false},
		{"pointer to struct", &struct{}{}, false},
		{"plain func", func() {}, false},
		{"nil", nil, false},
		{"undefined", Undefined, false},
		{"nil slice", nilSlice, false},
		{"nil map", nilMap, false},
		{"nil pointer", nilPtr, false},
		{"nil seq", nilFunc, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsIterable(tc.input); got != tc.want {
				t.Errorf("IsIterable(%T) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
