// Package output renders command results for the terminal and for scripts.
//
// Modes:
//   - auto: text
//   - text: "Result: <value>" with Python-style literals, styled on a TTY
//   - json: {"result": ...} (NaN and infinities become null)
//   - yaml: result: ...
//   - table: one row per element with its index and kind
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how results are written.
type OutputMode string

// Mode is shorthand for OutputMode, used for conversions from config strings.
type Mode = OutputMode

// Output modes.
const (
	ModeAuto  OutputMode = "auto"
	ModeText  OutputMode = "text"
	ModeJSON  OutputMode = "json"
	ModeYAML  OutputMode = "yaml"
	ModeTable OutputMode = "table"
)

// Renderer writes results and errors in the configured mode.
type Renderer struct {
	out       io.Writer
	errOut    io.Writer
	mode      OutputMode
	isTTY     bool
	styles    *Styles
	errStyles *Styles
}

// NewRenderer creates a renderer, detecting separately whether out and
// errOut are terminals.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return newRenderer(out, errOut, isTerminal(out), isTerminal(errOut), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state shared by
// both writers. Styling is enabled only for a TTY and only when NO_COLOR is
// unset.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	return newRenderer(out, errOut, isTTY, isTTY, mode)
}

func newRenderer(out, errOut io.Writer, outTTY, errTTY bool, mode OutputMode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:       out,
		errOut:    errOut,
		mode:      mode,
		isTTY:     outTTY,
		styles:    NewStyles(lipglossRenderer(out, outTTY)),
		errStyles: NewStyles(lipglossRenderer(errOut, errTTY)),
	}
}

func lipglossRenderer(w io.Writer, isTTY bool) *lipgloss.Renderer {
	lr := lipgloss.NewRenderer(w)
	if isTTY && os.Getenv("NO_COLOR") == "" {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}
	return lr
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int
}

// Mode returns the configured mode.
func (r *Renderer) Mode() OutputMode { return r.mode }

// EffectiveMode resolves auto to a concrete mode.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// IsTTY reports whether standard output goes to a terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// Styles returns the renderer's styles.
func (r *Renderer) Styles() *Styles { return r.styles }

// Println writes a line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Error writes "Error: <err>" to the error output.
func (r *Renderer) Error(err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprintf(r.errOut, "%s %v\n", r.errStyles.Error.Render("Error:"), err)
}
