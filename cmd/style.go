package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

const ruleWidth = 63

func printBanner(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("═", ruleWidth))
	fmt.Fprintln(w, "     "+titleStyle.Render(title))
	fmt.Fprintln(w, strings.Repeat("═", ruleWidth))
	fmt.Fprintln(w)
}

func printHeading(w io.Writer, title string) {
	fmt.Fprintln(w, headingStyle.Render(title))
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
}

// status renders a check mark or warning for a pass/fail condition.
func status(ok bool, pass, fail string) string {
	if ok {
		return okStyle.Render("✓ " + pass)
	}
	return warnStyle.Render("⚠ " + fail)
}
