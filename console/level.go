package console

// DefaultColor is used by Log and by custom levels without a colour.
const DefaultColor = "#8c7086"

// Level is a message label and the hex colour it is rendered in.
type Level struct {
	Label string `json:"label" yaml:"label" mapstructure:"label"`
	Color string `json:"color,omitempty" yaml:"color" mapstructure:"color"`
}

// Predefined levels.
var (
	LevelInitialized = Level{Label: "INITIALIZED", Color: "#5da7f2"}
	LevelFetch       = Level{Label: "FETCH", Color: "#07821d"}
	LevelInfo        = Level{Label: "INFO", Color: "#0362fc"}
	LevelLoad        = Level{Label: "LOAD", Color: "#fce303"}
	LevelError       = Level{Label: "ERROR", Color: "#f54242"}
	LevelLog         = Level{Label: "LOG", Color: DefaultColor}
)

// Tag returns the bracketed label, e.g. "[INFO]".
func (l Level) Tag() string {
	return "[" + l.Label + "]"
}

// IsError reports whether l is the error level.
func (l Level) IsError() bool {
	return l.Label == LevelError.Label
}

// rgb parses a "#rrggbb" or "#rgb" colour.
func rgb(hex string) (r, g, b uint8, ok bool) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	var v [3]uint8
	for i := range v {
		hi, ok1 := nibble(hex[2*i])
		lo, ok2 := nibble(hex[2*i+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, false
		}
		v[i] = hi<<4 | lo
	}
	return v[0], v[1], v[2], true
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
