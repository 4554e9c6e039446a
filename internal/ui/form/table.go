package form

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"surveymerge/internal/merge"
)

func scoreColumns() []table.Column {
	return []table.Column{
		{Title: "Source", Width: 24},
		{Title: "Name", Width: 32},
		{Title: "Score", Width: 7},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// scoreRows converts respondents into table rows.
func scoreRows(respondents []merge.Respondent) []table.Row {
	rows := make([]table.Row, 0, len(respondents))
	for _, respondent := range respondents {
		rows = append(rows, table.Row{
			respondent.Source,
			respondent.Name,
			strconv.Itoa(respondent.Breakdown.Total),
		})
	}
	return rows
}
