package console

import (
	"fmt"
	"sync/atomic"
)

// CustomConfig describes a Custom message's level.
type CustomConfig struct {
	Label string
	// Color defaults to DefaultColor.
	Color string
}

// Console formats labelled messages and forwards them to a Sink.
type Console struct {
	sink Sink
}

// New returns a Console writing to sink; a nil sink means NewLoggerSink(nil).
func New(sink Sink) *Console {
	if sink == nil {
		sink = NewLoggerSink(nil)
	}
	return &Console{sink: sink}
}

// Initialize reports that job started.
func (c *Console) Initialize(job string) {
	c.sink.Emit(LevelInitialized, job)
}

// Fetch reports data fetched from service.
func (c *Console) Fetch(data any, service string, props ...any) {
	c.sink.Emit(LevelFetch, service, prepend(map[string]any{"data": data, "service": service}, props)...)
}

// Info reports an informational message.
func (c *Console) Info(name any, props ...any) {
	c.sink.Emit(LevelInfo, text(name), props...)
}

// Load reports a loaded resource and its result.
func (c *Console) Load(info, result any, props ...any) {
	c.sink.Emit(LevelLoad, text(info), prepend(map[string]any{"result": result}, props)...)
}

// Error reports a failure.
func (c *Console) Error(message any, err error, props ...any) {
	c.sink.Emit(LevelError, text(message), prepend(map[string]any{"error": errText(err)}, props)...)
}

// Log reports a plain message.
func (c *Console) Log(message any, props ...any) {
	c.sink.Emit(LevelLog, text(message), props...)
}

// Custom reports props under a caller-defined label.
func (c *Console) Custom(cfg CustomConfig, props ...any) {
	color := cfg.Color
	if color == "" {
		color = DefaultColor
	}
	c.sink.Emit(Level{Label: cfg.Label, Color: color}, "", props...)
}

func prepend(first any, rest []any) []any {
	return append([]any{first}, rest...)
}

func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func errText(err error) any {
	if err == nil {
		return nil
	}
	return err.Error()
}

var std atomic.Pointer[Console]

// Default returns the process-wide Console, which logs through the
// "console" component logger unless replaced with SetDefault.
func Default() *Console {
	if c := std.Load(); c != nil {
		return c
	}
	std.CompareAndSwap(nil, New(nil))
	return std.Load()
}

// SetDefault replaces the process-wide Console. A nil c restores the
// logger-backed default.
func SetDefault(c *Console) {
	std.Store(c)
}
