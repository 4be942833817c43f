package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ivakit/iva/logger"
)

// Sink receives formatted console messages.
type Sink interface {
	Emit(level Level, msg string, ctx ...any)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(level Level, msg string, ctx ...any)

// Emit calls f.
func (f SinkFunc) Emit(level Level, msg string, ctx ...any) { f(level, msg, ctx...) }

// LoggerSink writes console messages through a logger. ERROR goes to the
// error level and every other label to info.
type LoggerSink struct {
	log *logger.Logger
}

// NewLoggerSink returns a sink bound to l. A nil l resolves the "console"
// component logger on every message so it follows logger.Init.
func NewLoggerSink(l *logger.Logger) *LoggerSink {
	return &LoggerSink{log: l}
}

// Emit implements Sink. Context values are logged as ctx_0, ctx_1, ...
func (s *LoggerSink) Emit(level Level, msg string, ctx ...any) {
	log := s.log
	if log == nil {
		log = logger.Get("console")
	}

	fields := logger.Fields("label", level.Label)
	if level.Color != "" {
		fields["color"] = level.Color
	}
	for i, v := range ctx {
		key := "ctx_" + strconv.Itoa(i)
		if err, ok := v.(error); ok {
			fields[key] = err.Error()
			continue
		}
		fields[key] = v
	}

	text := level.Tag()
	if msg != "" {
		text += " " + msg
	}
	if level.IsError() {
		log.Error(text, fields)
		return
	}
	log.Info(text, fields)
}

// WriterSink prints one line per message: the tag in the level's colour
// (ANSI 24-bit) followed by the message and context values.
type WriterSink struct {
	mu      sync.Mutex
	w       io.Writer
	noColor bool
}

// NewWriterSink returns a sink writing to w. noColor disables escapes.
func NewWriterSink(w io.Writer, noColor bool) *WriterSink {
	return &WriterSink{w: w, noColor: noColor}
}

// Emit implements Sink.
func (s *WriterSink) Emit(level Level, msg string, ctx ...any) {
	var b strings.Builder
	b.WriteString(s.colorize(level))
	if msg != "" {
		b.WriteByte(' ')
		b.WriteString(msg)
	}
	for _, v := range ctx {
		b.WriteByte(' ')
		b.WriteString(formatValue(v))
	}
	b.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, b.String())
}

func (s *WriterSink) colorize(level Level) string {
	tag := level.Tag()
	if s.noColor {
		return tag
	}
	r, g, b, ok := rgb(level.Color)
	if !ok {
		return tag
	}
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s\033[0m", r, g, b, tag)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case error:
		return x.Error()
	default:
		return fmt.Sprintf("%+v", x)
	}
}
