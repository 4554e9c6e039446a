package sheet

import (
	"surveymerge/internal/normalize"
	"surveymerge/internal/survey"
)

// HeaderRows is the number of header rows above the first block.
const HeaderRows = 2

// Cell is one grid cell. Value is always a scalar.
type Cell struct {
	Value     survey.JSONValue
	Header    bool
	Highlight bool
}

// Span is an inclusive rectangle of grid cells, zero-based.
type Span struct {
	Row, Col       int
	EndRow, EndCol int
}

// Block is the run of body rows holding one record.
type Block struct {
	Source string
	Start  int
	Height int
}

// Grid is the laid-out spreadsheet: header rows, then one block per record.
type Grid struct {
	Cells  [][]Cell
	Merges []Span
	Blocks []Block
}

// Row is one normalized record and the file it came from.
type Row struct {
	Source string
	Record survey.Record
}

// Width returns the number of grid columns.
func (g Grid) Width() int {
	if len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Render lays out the header rows and one block per row.
func Render(plan Plan, rows []Row) Grid {
	width := len(plan.Columns) + 1
	grid := Grid{}
	grid.Cells = append(grid.Cells, make([]Cell, width), make([]Cell, width))
	grid.renderHeader(plan)
	for _, row := range rows {
		grid.renderBlock(plan, row)
	}
	return grid
}

func (g *Grid) renderHeader(plan Plan) {
	g.Cells[0][0] = Cell{Value: survey.Str(survey.SourceLabel), Header: true}
	g.merge(Span{Row: 0, Col: 0, EndRow: 1, EndCol: 0})

	col := 1
	for _, question := range plan.Questions {
		span := question.Span()
		g.Cells[0][col] = Cell{Value: survey.Str(question.Label), Header: true}
		if len(question.SubFields) == 0 {
			g.merge(Span{Row: 0, Col: col, EndRow: 1, EndCol: col})
		} else {
			g.merge(Span{Row: 0, Col: col, EndRow: 0, EndCol: col + span - 1})
			for offset, sub := range question.SubFields {
				g.Cells[1][col+offset] = Cell{Value: survey.Str(sub.Label), Header: true}
			}
		}
		col += span
	}
}

// merge records a span; single cells need no merge.
func (g *Grid) merge(span Span) {
	if span.Row == span.EndRow && span.Col == span.EndCol {
		return
	}
	g.Merges = append(g.Merges, span)
}

func (g *Grid) renderBlock(plan Plan, row Row) {
	height := BlockHeight(row.Record)
	start := len(g.Cells)
	width := len(plan.Columns) + 1
	for offset := 0; offset < height; offset++ {
		cells := make([]Cell, width)
		if offset == 0 {
			cells[0] = Cell{Value: survey.Str(row.Source)}
		}
		for i, column := range plan.Columns {
			cells[i+1] = Cell{Value: resolveCell(row.Record.Get(column.Key), column, offset)}
		}
		g.Cells = append(g.Cells, cells)
	}
	g.Blocks = append(g.Blocks, Block{Source: row.Source, Start: start, Height: height})
	g.highlightLists(plan, row.Record, start)
}

// highlightLists marks every cell a list answer spans, over all rows of the
// list and all of its question's columns.
func (g *Grid) highlightLists(plan Plan, record survey.Record, start int) {
	col := 1
	for _, question := range plan.Questions {
		span := question.Span()
		if items, ok := record.Get(question.Key).ArrayValue(); ok && len(items) > 0 {
			for r := start; r < start+len(items); r++ {
				for c := col; c < col+span; c++ {
					g.Cells[r][c].Highlight = true
				}
			}
		}
		col += span
	}
}

// BlockHeight is the longest list among a normalized record's values, or 1.
func BlockHeight(record survey.Record) int {
	height := 1
	for _, key := range record.Keys() {
		if items, ok := record.Get(key).ArrayValue(); ok && len(items) > height {
			height = len(items)
		}
	}
	return height
}

// resolveCell picks the value shown at a row offset of a block for a column.
func resolveCell(value survey.JSONValue, column FlatColumn, offset int) survey.JSONValue {
	switch value.Kind {
	case survey.JSONArray:
		if offset >= len(value.Array) {
			return survey.Null()
		}
		item := value.Array[offset]
		if !column.HasSubKey() {
			return normalize.Cell(item)
		}
		if item.Kind == survey.JSONObject {
			return normalize.Cell(item.Get(column.SubKey))
		}
		return survey.Null()
	case survey.JSONObject:
		if offset != 0 {
			return survey.Null()
		}
		if column.HasSubKey() {
			return normalize.Cell(value.Get(column.SubKey))
		}
		return normalize.Cell(value)
	default:
		if offset != 0 || column.HasSubKey() {
			return survey.Null()
		}
		return normalize.Cell(value)
	}
}
