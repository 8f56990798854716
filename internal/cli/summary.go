package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/databricks/databricks-jdbc/pkg/propagate"
	"github.com/databricks/databricks-jdbc/pkg/rewrite"
)

var (
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("211"))
	versionStyle = lipgloss.NewStyle().Bold(true)
	checkMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓")
	skipMark     = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).SetString("-")
	errorMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).SetString("✗")
)

// useStyles reports whether w is a color-capable terminal.
func useStyles(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) && !termenv.EnvNoColor()
}

func printSummary(w io.Writer, report *propagate.Report, styled bool) {
	if report == nil {
		return
	}

	for _, res := range report.Results {
		fmt.Fprintln(w, summaryLine(res, report.Version, report.DryRun, styled))
	}
}

func summaryLine(res rewrite.Result, version string, dryRun, styled bool) string {
	path := res.Path
	if styled {
		path = pathStyle.Render(path)
	}

	var mark, msg string

	switch {
	case !res.Matched():
		mark, msg = errorMark.String(), "Version was not updated in "+path
	case !res.Changed:
		mark, msg = skipMark.String(), "Version already up to date in "+path
	case dryRun:
		mark, msg = checkMark.String(), "Would update version in "+path
	default:
		mark, msg = checkMark.String(), "Updated version in "+path
	}

	if !styled {
		return msg
	}

	if res.Changed {
		msg += " " + versionStyle.Render(res.Previous+" → "+version)
	}

	return mark + " " + msg
}
