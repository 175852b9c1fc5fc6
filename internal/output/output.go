package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// detailIndent lines a Detail message up under the text of an Error message.
const detailIndent = "       "

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("white")).Bold(true)
)

var (
	out         io.Writer = os.Stdout
	styled                = isTerminal(os.Stdout)
	verboseMode bool
)

// SetOutput redirects all messages to w. Styling is enabled only when w is
// a terminal.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
	styled = isTerminal(w)
}

// SetVerbose enables or disables verbose output.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// IsVerbose reports whether verbose output is enabled.
func IsVerbose() bool {
	return verboseMode
}

// Success prints a success message with 🔥 emoji and green color.
//
// Example:
//
//	output.Success("Complete.")
func Success(msg string) {
	fmt.Fprintln(out, render(successStyle, "🔥 ", msg))
}

// Error prints an error message with ❌ emoji and red color.
// The message is always prefixed with "Error: ".
//
// Example:
//
//	output.Error("The file, app.sh, already exists.")
func Error(msg string) {
	fmt.Fprintln(out, render(errorStyle, "❌ ", "Error: "+msg))
}

// Detail prints a follow-up line for the preceding Error, indented under it.
func Detail(msg string) {
	fmt.Fprintln(out, render(stepStyle, "", detailIndent+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
//
// Example:
//
//	output.Info("Generating app.sh...")
func Info(msg string) {
	fmt.Fprintln(out, render(infoStyle, "ℹ️  ", msg))
}

// Step prints an indented step message in gray.
//
// Example:
//
//	output.Step("./app.sh")
func Step(msg string) {
	fmt.Fprintln(out, render(stepStyle, "", "   "+msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
//
// Example:
//
//	output.Verbose("Resolved port: 8888")
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(out, render(stepStyle, "🔍 ", msg))
	}
}

// Block prints a titled section followed by body exactly as given and a
// trailing blank line. It is used to echo generated files, so the body is
// never styled.
//
// Example:
//
//	output.Block("app.sh", content)
//	// ---- app.sh ----
//	// <content>
func Block(title, body string) {
	fmt.Fprintln(out, render(titleStyle, "", "---- "+title+" ----"))
	fmt.Fprintln(out, body)
}

func render(style lipgloss.Style, icon, msg string) string {
	if !styled {
		return msg
	}
	return style.Render(icon + msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
