// Package output provides consistent CLI output formatting for needle
// commands. Color is enabled automatically when writing to a terminal
// and disabled for pipes, redirects, and when NO_COLOR is set.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI sequences used when color is enabled.
const (
	ansiDim       = "\x1b[2m"
	ansiHighlight = "\x1b[1;36m"
	ansiReset     = "\x1b[0m"
)

// Writer provides formatted output for CLI commands.
type Writer struct {
	out      io.Writer
	useColor bool
}

// New creates a Writer, enabling color when out is a terminal.
func New(out io.Writer) *Writer {
	return &Writer{
		out:      out,
		useColor: detectColor(out),
	}
}

// NewPlain creates a Writer with color disabled regardless of terminal.
func NewPlain(out io.Writer) *Writer {
	return &Writer{out: out, useColor: false}
}

// detectColor reports whether out is an interactive terminal.
func detectColor(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ColorEnabled reports whether this writer emits ANSI color codes.
func (w *Writer) ColorEnabled() bool {
	return w.useColor
}

// Status prints a status message with an icon.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Statusf prints a formatted status message with an icon.
func (w *Writer) Statusf(icon, format string, args ...any) {
	w.Status(icon, fmt.Sprintf(format, args...))
}

// Success prints a success message with checkmark.
func (w *Writer) Success(msg string) {
	w.Status("✅", msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status("⚠️ ", msg)
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.Status("❌", msg)
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Println prints a plain line.
func (w *Writer) Println(msg string) {
	_, _ = fmt.Fprintln(w.out, msg)
}

// Printf prints a plain formatted message.
func (w *Writer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.out, format, args...)
}

// Newline prints an empty line.
func (w *Writer) Newline() {
	_, _ = fmt.Fprintln(w.out)
}

// Result prints a ranked match line. The score is dimmed when color
// is enabled so the matched text stands out.
func (w *Writer) Result(score int, text string) {
	if w.useColor {
		_, _ = fmt.Fprintf(w.out, "%s%6d%s  %s\n", ansiDim, score, ansiReset, text)
		return
	}
	_, _ = fmt.Fprintf(w.out, "%6d  %s\n", score, text)
}

// HighlightTags returns the prefix and suffix to wrap matched spans
// with. When color is enabled these are ANSI escape codes; otherwise
// the given plain tags are returned unchanged.
func (w *Writer) HighlightTags(prefix, suffix string) (string, string) {
	if w.useColor {
		return ansiHighlight, ansiReset
	}
	return prefix, suffix
}
