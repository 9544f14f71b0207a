package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/pyrelgen/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{
			name:       "info level",
			level:      slog.LevelInfo,
			msg:        "information message",
			goldenName: "handler_info",
		},
		{
			name:       "warn level",
			level:      slog.LevelWarn,
			msg:        "warning message",
			goldenName: "handler_warn",
		},
		{
			name:       "error level",
			level:      slog.LevelError,
			msg:        "error message",
			goldenName: "handler_error",
		},
		{
			name:       "debug level filtered",
			level:      slog.LevelDebug,
			msg:        "debug message",
			goldenName: "handler_debug_filtered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			handler := logger.NewPrettyHandler(buf, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})
			lg := slog.New(handler)

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_WithAttrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).With("page", 2)
	lg.Info("fetched", "repo", "python")

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_WithGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("cache")
	lg.Info("saved", "rows", 3)

	assert.Equal(t, "saved cache.rows=3\n", buf.String())
}

func TestPrettyHandler_Colors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Warn("colored")

	assert.Contains(t, buf.String(), "! colored")
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil)).
		With("run", 1).
		WithGroup("github").
		With("page", 2).
		WithGroup("rate")
	lg.Info("limited", "remaining", 0)

	assert.Equal(t, "limited run=1 github.page=2 github.rate.remaining=0\n", buf.String())
}

func TestPrettyHandler_GroupAttr(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Info("saved", slog.Group("cache", "rows", 3, "format", "sqlite"), slog.Group("empty"))

	assert.Equal(t, "saved cache.rows=3 cache.format=sqlite\n", buf.String())
}

func TestPrettyHandler_QuotesValues(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Info("skipped", "name", "a b", "tag", "", "expr", "x=1", "url", "https://example.test/a%2Bb")

	assert.Equal(t,
		`skipped name="a b" tag="" expr="x=1" url=https://example.test/a%2Bb`+"\n",
		buf.String(),
	)
}

func TestPrettyHandler_LevelVar(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}))
	lg.Info("hidden")
	level.Set(slog.LevelInfo)
	lg.Info("shown")

	assert.Equal(t, "shown\n", buf.String())
}

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, logger.ColorProfileExported(), "NO_COLOR should force Ascii profile")

	// The detected profile depends on the environment, only check it is valid.
	t.Setenv("NO_COLOR", "")
	p := logger.ColorProfileExported()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNewPrettyHandler_NilWriter(t *testing.T) {
	// Falls back to stderr.
	assert.NotNil(t, logger.NewPrettyHandler(nil, nil))
}
