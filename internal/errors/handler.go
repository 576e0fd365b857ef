package apperrors

import (
	"fmt"
	"io"
	"time"
)

// ColorProvider is the minimal interface for obtaining terminal color
// codes. This abstraction breaks the import cycle with cli.
type ColorProvider interface {
	Yellow() string
	Reset() string
}

// DefaultColorProvider provides no color codes (for non-terminal output).
type DefaultColorProvider struct{}

func (d DefaultColorProvider) Yellow() string { return "" }
func (d DefaultColorProvider) Reset() string  { return "" }

// HandleRunError formats and prints the final status line for a run,
// returning the process exit code to use.
func HandleRunError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	if IsContextError(err) {
		fmt.Fprintf(out, "Status: Canceled%s.\n", suffix)
		return ExitCodeFor(err)
	}
	fmt.Fprintf(out, "Status: Failure%s: %v\n", suffix, err)
	return ExitCodeFor(err)
}
