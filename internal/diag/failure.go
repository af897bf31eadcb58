package diag

import "github.com/charmbracelet/lipgloss"

var (
	parserStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	remainderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// ReportFailure logs one local match failure: which parser gave up and the
// remainder it could not consume. When color is on, both are styled for
// terminal display.
func ReportFailure(l Logger, color bool, parser, remaining string) {
	if l == nil {
		return
	}
	name, rem := parser, remaining
	if color {
		name = parserStyle.Render(name)
		rem = remainderStyle.Render(rem)
	}
	l.WithFields(map[string]any{
		"parser":    name,
		"remaining": rem,
	}).Debug("no match")
}
