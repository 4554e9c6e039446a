package sheet

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultColumnPadding is added to the longest line of each column.
const DefaultColumnPadding = 2

// ColumnWidths sizes each column to its longest rendered line plus padding.
// A column with no text gets width 0, meaning the spreadsheet default.
func ColumnWidths(grid Grid, padding int) []float64 {
	widths := make([]float64, grid.Width())
	for col := range widths {
		longest := 0
		for _, row := range grid.Cells {
			for _, line := range strings.Split(row[col].Value.Text(), "\n") {
				if n := uniseg.GraphemeClusterCount(line); n > longest {
					longest = n
				}
			}
		}
		if longest > 0 {
			widths[col] = float64(longest + padding)
		}
	}
	return widths
}
