// Package log routes structured logging (slog) into the host's debug log.
package log

import (
	"context"
	"log/slog"
	"strings"

	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
)

// DebugHandler implements slog.Handler on top of the host's debug log.
// The host flushes every line immediately, so high-volume logging should
// stay behind a level check.
type DebugHandler struct {
	sink  ports.Diagnostics
	opts  handlerConfig
	attrs []slog.Attr
	group string
}

// HandlerOption configures the DebugHandler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level  slog.Level
	prefix string
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level: slog.LevelInfo,
	}
}

// WithLevel sets the minimum log level to report. Records below this
// level never reach the host.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithPrefix prepends a fixed tag to every line, conventionally the
// plugin's name. Hosts interleave all plugins into one log file.
func WithPrefix(prefix string) HandlerOption {
	return func(c *handlerConfig) {
		c.prefix = prefix
	}
}

// NewHandler creates a DebugHandler writing to the given host.
func NewHandler(sink ports.Diagnostics, opts ...HandlerOption) *DebugHandler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &DebugHandler{sink: sink, opts: cfg}
}

// Install makes a DebugHandler the process-wide slog default, so the
// trampoline and lifecycle logging in the rest of the SDK lands in the
// host's log file.
func Install(sink ports.Diagnostics, opts ...HandlerOption) {
	slog.SetDefault(slog.New(NewHandler(sink, opts...)))
}

// Enabled reports whether the handler handles records at the given level.
func (h *DebugHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// WithAttrs returns a new DebugHandler that includes the given attributes
// on every record.
func (h *DebugHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandler := *h
	newHandler.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], h.qualify(attrs)...)
	return &newHandler
}

// WithGroup returns a new DebugHandler qualifying subsequent attribute
// keys with the group name.
func (h *DebugHandler) WithGroup(name string) slog.Handler {
	newHandler := *h
	if name != "" {
		newHandler.group = h.group + name + "."
	}
	return &newHandler
}

func (h *DebugHandler) qualify(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	qualified := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		attr.Key = h.group + attr.Key
		qualified[i] = attr
	}
	return qualified
}

// Handle formats the record as a single line and appends it to the host's
// debug log.
func (h *DebugHandler) Handle(_ context.Context, record slog.Record) error {
	var line strings.Builder
	if h.opts.prefix != "" {
		line.WriteString(h.opts.prefix)
		line.WriteString(": ")
	}
	line.WriteString(record.Level.String())
	line.WriteString(" ")
	line.WriteString(record.Message)

	for _, attr := range h.attrs {
		line.WriteString(" ")
		line.WriteString(attrText(attr))
	}
	record.Attrs(func(attr slog.Attr) bool {
		line.WriteString(" ")
		line.WriteString(attrText(h.qualify([]slog.Attr{attr})[0]))
		return true
	})
	line.WriteString("\n")

	h.sink.DebugString(line.String())
	return nil
}
