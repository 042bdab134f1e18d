package log

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simbridge-dev/simbridge-sdk/simtest"
)

func TestAttrText(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		want string
	}{
		{
			name: "string",
			attr: slog.String("key", "value"),
			want: `key="value"`,
		},
		{
			name: "int64",
			attr: slog.Int64("key", 123),
			want: "key=123",
		},
		{
			name: "bool",
			attr: slog.Bool("key", true),
			want: "key=true",
		},
		{
			name: "float64",
			attr: slog.Float64("key", 1.25),
			want: "key=1.25",
		},
		{
			name: "time",
			attr: slog.Time("key", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			want: "key=2024-01-01T00:00:00Z",
		},
		{
			name: "duration",
			attr: slog.Duration("key", time.Hour),
			want: "key=1h0m0s",
		},
		{
			name: "error",
			attr: slog.Any("key", errors.New("test error")),
			want: `key="test error"`,
		},
		{
			name: "json",
			attr: slog.Any("key", map[string]int{"a": 1}),
			want: `key={"a":1}`,
		},
		{
			name: "nil",
			attr: slog.Any("key", nil),
			want: "key=<nil>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, attrText(tt.attr))
		})
	}
}

func TestDebugHandler_Handle(t *testing.T) {
	host := simtest.NewHost()
	logger := slog.New(NewHandler(host, WithPrefix("fuel-planner")))

	logger.Info("loaded config", "tanks", 3)

	require.Len(t, host.DebugLines, 1)
	assert.Equal(t, "fuel-planner: INFO loaded config tanks=3\n", host.DebugLines[0])
}

func TestDebugHandler_LevelFilter(t *testing.T) {
	host := simtest.NewHost()
	logger := slog.New(NewHandler(host, WithLevel(slog.LevelWarn)))

	logger.Info("quiet")
	logger.Warn("loud")

	require.Len(t, host.DebugLines, 1)
	assert.Equal(t, "WARN loud\n", host.DebugLines[0])
}

func TestDebugHandler_WithAttrsAndGroup(t *testing.T) {
	host := simtest.NewHost()
	logger := slog.New(NewHandler(host)).With("plugin", "wx")

	logger.WithGroup("window").Error("create failed", "left", 10)

	require.Len(t, host.DebugLines, 1)
	assert.Equal(t, `ERROR create failed plugin="wx" window.left=10`+"\n", host.DebugLines[0])
}
