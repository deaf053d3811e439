// Package render converts normalized command results into display lines.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vadiminshakov/tradeconsole/internal/domain"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"})
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C53030", Dark: "#FF6B6B"})
	headerStyle = lipgloss.NewStyle().Bold(true)
)

func marker(ok bool) string {
	if ok {
		return okStyle.Render("✓")
	}
	return failStyle.Render("✗")
}

// Render produces the display lines for one result. A failed result that
// carries only an error detail renders as a single error line (plus an
// indented details line when present). Everything else renders a status
// line followed by the sub-action report in payload order.
func Render(result domain.Result) []string {
	if !result.OK && result.ErrorDetail != "" && len(result.SubActions) == 0 {
		lines := []string{fmt.Sprintf("%s Error: %s", marker(false), result.ErrorDetail)}
		if result.Details != "" {
			lines = append(lines, fmt.Sprintf("   Details: %s", result.Details))
		}
		return lines
	}

	message := result.Message
	if message == "" {
		message = "no message"
	}
	messageLines := strings.Split(message, "\n")

	lines := []string{fmt.Sprintf("%s %s", marker(result.OK), messageLines[0])}
	lines = append(lines, messageLines[1:]...)

	if result.ErrorDetail != "" {
		lines = append(lines, fmt.Sprintf("   Error: %s", result.ErrorDetail))
	}

	if len(result.SubActions) == 0 {
		return lines
	}

	lines = append(lines, headerStyle.Render("actions executed:"))
	for i, action := range result.SubActions {
		lines = append(lines, fmt.Sprintf("  %d. %s %s", i+1, marker(action.OK), action.Label))
		if !action.OK && action.ErrorDetail != "" {
			lines = append(lines, fmt.Sprintf("     Error: %s", action.ErrorDetail))
		}
	}

	return lines
}
