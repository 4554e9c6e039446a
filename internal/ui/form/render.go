package form

import (
	"github.com/charmbracelet/lipgloss"
)

type status struct {
	text   string
	failed bool
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Width(18)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

func renderTitle(noColor bool) string {
	if noColor {
		return "Survey merge\n"
	}
	return titleStyle.Render("Survey merge")
}

func renderField(label, value string, active, noColor bool) string {
	marker := "  "
	if active {
		marker = "> "
	}
	line := marker + labelStyle.Render(label) + value
	if active && !noColor {
		return activeStyle.Render(line)
	}
	return line
}

func renderCheckbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func renderButton(label string, active, noColor bool) string {
	text := "  [ " + label + " ]"
	if active {
		text = "> [ " + label + " ]"
		if !noColor {
			return activeStyle.Bold(true).Render(text)
		}
	}
	return text
}

func renderStatus(s status, noColor bool) string {
	if noColor {
		if s.failed {
			return "Error: " + s.text
		}
		return s.text
	}
	if s.failed {
		return errorStyle.Render("Error: " + s.text)
	}
	return okStyle.Render(s.text)
}

func renderFooter(noColor bool) string {
	text := "tab: next field  space: toggle  enter: merge  esc: quit"
	if noColor {
		return text
	}
	return footerStyle.Render(text)
}
