package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// levelStyle is the icon and color a log level is rendered with.
type levelStyle struct {
	icon  string
	color lipgloss.Color
}

var (
	infoStyle  = levelStyle{color: lipgloss.Color("#667085")}
	warnStyle  = levelStyle{icon: "!", color: lipgloss.Color("#F59E0B")}
	errorStyle = levelStyle{icon: "✗", color: lipgloss.Color("#D93025")}
)

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return errorStyle
	case level >= slog.LevelWarn:
		return warnStyle
	default:
		return infoStyle
	}
}

// colorProfile returns Ascii when NO_COLOR is set and the detected profile otherwise.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

func newOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(colorProfile()),
		termenv.WithTTY(true),
	)
}
