package report

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"surveymerge/internal/scoring"
)

const pageStyle = `body{font-family:sans-serif;margin:24px}` +
	`table{border-collapse:collapse}` +
	`th,td{border:1px solid #999;padding:4px 8px;vertical-align:top}` +
	`td.points{text-align:right}tfoot td{font-weight:bold}`

// SummaryPage renders one table row per respondent with every score component.
func SummaryPage(title string, rows []Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		page := &htmlWriter{w: w}
		page.raw(`<!DOCTYPE html><html lang="ru"><head><meta charset="utf-8"><title>`)
		page.text(title)
		page.raw(`</title><style>` + pageStyle + `</style></head><body><h1>`)
		page.text(title)
		page.raw(`</h1><table><thead><tr><th>`)
		page.text(sourceHeader)
		page.raw(`</th><th>`)
		page.text(nameHeader)
		page.raw(`</th>`)
		for _, label := range scoring.Labels() {
			page.raw(`<th>`)
			page.text(label)
			page.raw(`</th>`)
		}
		page.raw(`<th>`)
		page.text(totalHeader)
		page.raw(`</th></tr></thead><tbody>`)
		for _, row := range rows {
			page.raw(`<tr><td>`)
			page.text(row.Source)
			page.raw(`</td><td>`)
			page.text(row.Name)
			page.raw(`</td>`)
			for _, component := range row.Breakdown.Components {
				page.raw(`<td class="points">`)
				page.text(strconv.Itoa(component.Points))
				page.raw(`</td>`)
			}
			page.raw(`<td class="points">`)
			page.text(strconv.Itoa(row.Breakdown.Total))
			page.raw(`</td></tr>`)
		}
		page.raw(`</tbody><tfoot><tr><td colspan="2">`)
		page.text(fmt.Sprintf("%s: %d", respondentsLabel, len(rows)))
		page.raw(`</td></tr></tfoot></table></body></html>`)
		return page.err
	})
}

// htmlWriter keeps the first write error so markup reads top to bottom.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(markup string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, markup)
}

func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}
