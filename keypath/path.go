package keypath

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is a single step of a Path: a string key or an int index.
type Segment struct {
	key   string
	index int
	isIdx bool
}

// Key returns a key segment.
func Key(k string) Segment { return Segment{key: k} }

// Index returns an index segment.
func Index(i int) Segment { return Segment{index: i, isIdx: true} }

// IsIndex reports whether the segment was written as an index.
func (s Segment) IsIndex() bool { return s.isIdx }

// String returns the segment as a map key; indices are rendered in base 10.
func (s Segment) String() string {
	if s.isIdx {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Int returns the segment as an index. Key segments holding a base-10
// integer are accepted as well, so "items.0" and "items[0]" are equivalent.
func (s Segment) Int() (int, bool) {
	if s.isIdx {
		return s.index, true
	}
	i, err := strconv.Atoi(s.key)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Path is an ordered list of segments identifying a nested field.
type Path []Segment

// Of builds a path from explicit segments. Strings become keys, integer
// kinds become indices and anything else is formatted with %v as a key.
func Of(segments ...any) Path {
	p := make(Path, 0, len(segments))
	for _, s := range segments {
		p = append(p, toSegment(s))
	}
	return p
}

func toSegment(v any) Segment {
	switch s := v.(type) {
	case Segment:
		return s
	case string:
		return Key(s)
	case int:
		return Index(s)
	case int8:
		return Index(int(s))
	case int16:
		return Index(int(s))
	case int32:
		return Index(int(s))
	case int64:
		return Index(int(s))
	case uint:
		return Index(int(s))
	case uint8:
		return Index(int(s))
	case uint16:
		return Index(int(s))
	case uint32:
		return Index(int(s))
	case uint64:
		return Index(int(s))
	default:
		return Key(fmt.Sprintf("%v", v))
	}
}

// Parse converts dotted/indexed notation into a Path.
//
//	a.b[0].c    -> a, b, 0, c
//	a["x.y"].z  -> a, x.y, z
//	[2]         -> 2
//
// A string without separators is a single key; the empty string is a path
// holding one empty key.
func Parse(s string) Path {
	if !strings.ContainsAny(s, ".[") {
		return Path{Key(s)}
	}

	var (
		p   Path
		buf strings.Builder
		// pending tracks whether buf holds a segment that must be flushed
		// even when empty ("a..b" has an empty middle key).
		pending = true
	)
	flush := func() {
		if pending {
			p = append(p, Key(buf.String()))
		}
		buf.Reset()
		pending = false
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '.':
			flush()
			pending = true
		case '[':
			if buf.Len() > 0 {
				flush()
			}
			pending = false
			end, seg, ok := parseBracket(s, i)
			if !ok {
				// Unterminated bracket: treat the rest literally.
				buf.WriteString(s[i:])
				pending = true
				i = len(s)
				continue
			}
			p = append(p, seg)
			i = end
		default:
			buf.WriteByte(c)
			pending = true
		}
	}
	if pending || buf.Len() > 0 {
		p = append(p, Key(buf.String()))
	}
	return p
}

// parseBracket reads the bracket expression starting at s[start] == '['.
// It returns the index of the closing bracket and the parsed segment.
func parseBracket(s string, start int) (int, Segment, bool) {
	rest := s[start+1:]
	if len(rest) > 0 && (rest[0] == '"' || rest[0] == '\'') {
		quote := rest[0]
		var b strings.Builder
		for j := 1; j < len(rest); j++ {
			c := rest[j]
			if c == '\\' && j+1 < len(rest) {
				b.WriteByte(rest[j+1])
				j++
				continue
			}
			if c == quote {
				if j+1 < len(rest) && rest[j+1] == ']' {
					return start + 1 + j + 1, Key(b.String()), true
				}
				return 0, Segment{}, false
			}
			b.WriteByte(c)
		}
		return 0, Segment{}, false
	}

	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return 0, Segment{}, false
	}
	inner := strings.TrimSpace(rest[:end])
	if i, err := strconv.Atoi(inner); err == nil {
		return start + 1 + end, Index(i), true
	}
	return start + 1 + end, Key(inner), true
}

// String renders the path in canonical dotted/indexed notation.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p {
		switch {
		case s.isIdx:
			fmt.Fprintf(&b, "[%d]", s.index)
		case s.key == "" || strings.ContainsAny(s.key, ".[]\"'"):
			fmt.Fprintf(&b, "[%q]", s.key)
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.key)
		}
	}
	return b.String()
}
