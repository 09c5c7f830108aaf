package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Diagnostics always go to stderr: stdout is reserved for the single path
// the shell wrapper captures.
var (
	infoLabel  = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnLabel  = color.New(color.FgYellow, color.Bold).SprintFunc()
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

func logInfof(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s: %s\n", infoLabel("INFO"), fmt.Sprintf(format, args...))
}

func logWarnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s: %s\n", warnLabel("WARNING"), fmt.Sprintf(format, args...))
}

func logErrorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s: %s\n", errorLabel("ERROR"), fmt.Sprintf(format, args...))
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
