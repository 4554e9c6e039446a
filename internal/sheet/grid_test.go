package sheet

import (
	"testing"

	"surveymerge/internal/normalize"
	"surveymerge/internal/survey"
)

func renderOne(t *testing.T, sources ...string) (Plan, Grid) {
	t.Helper()
	raws := make([]survey.Record, 0, len(sources))
	rows := make([]Row, 0, len(sources))
	for i, source := range sources {
		raw := record(t, source)
		raws = append(raws, raw)
		rows = append(rows, Row{Source: string(rune('a'+i)) + ".json", Record: normalize.Record(raw, 0)})
	}
	plan := NewPlan(survey.Questions(), raws)
	return plan, Render(plan, rows)
}

func columnIndex(t *testing.T, plan Plan, key, subKey string) int {
	t.Helper()
	for i, column := range plan.Columns {
		if column.Key == key && column.SubKey == subKey {
			return i + 1
		}
	}
	t.Fatalf("column %s/%s not planned", key, subKey)
	return -1
}

// TestRenderHeader verifies labels, sub-labels, and merges.
func TestRenderHeader(t *testing.T) {
	plan, grid := renderOne(t, `{"full_name": "A", "scientific_publications": [{"description": "d", "link": "l"}]}`)
	if grid.Cells[0][0].Value.String != survey.SourceLabel {
		t.Fatalf("expected source label, got %q", grid.Cells[0][0].Value.String)
	}
	nameCol := columnIndex(t, plan, survey.KeyFullName, "")
	if grid.Cells[0][nameCol].Value.String != "1. Фамилия Имя Отчество" {
		t.Fatalf("unexpected label %q", grid.Cells[0][nameCol].Value.String)
	}
	if grid.Cells[1][nameCol].Value.Kind != survey.JSONNull {
		t.Fatalf("expected blank second header row for plain question")
	}
	descCol := columnIndex(t, plan, survey.KeyPublications, "description")
	if grid.Cells[1][descCol].Value.String != "Описание" || grid.Cells[1][descCol+1].Value.String != "Ссылка" {
		t.Fatalf("unexpected sub-labels")
	}

	merges := map[Span]bool{}
	for _, span := range grid.Merges {
		merges[span] = true
	}
	for _, want := range []Span{
		{Row: 0, Col: 0, EndRow: 1, EndCol: 0},
		{Row: 0, Col: nameCol, EndRow: 1, EndCol: nameCol},
		{Row: 0, Col: descCol, EndRow: 0, EndCol: descCol + 1},
	} {
		if !merges[want] {
			t.Fatalf("expected merge %+v in %+v", want, grid.Merges)
		}
	}
}

// TestRenderSingleSubFieldIsNotMerged verifies one-column questions skip the merge.
func TestRenderSingleSubFieldIsNotMerged(t *testing.T) {
	plan, grid := renderOne(t, `{"media_materials": [{"link": "x"}]}`)
	col := columnIndex(t, plan, survey.KeyMediaMaterials, "link")
	for _, span := range grid.Merges {
		if span.Col == col {
			t.Fatalf("unexpected merge %+v", span)
		}
	}
	if grid.Cells[1][col].Value.String != "Ссылка" {
		t.Fatalf("expected sub-label under single sub-field question")
	}
}

// TestRenderBlockHeightAndHighlight verifies list expansion and the highlighted span.
func TestRenderBlockHeightAndHighlight(t *testing.T) {
	plan, grid := renderOne(t,
		`{"full_name": "A", "curator_hours_details": [{"topic": "t1"}, {"topic": "t2"}, {"topic": "t3"}], "achievements": [{"result": "r"}]}`,
		`{"full_name": "B"}`,
	)
	if len(grid.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(grid.Blocks))
	}
	first, second := grid.Blocks[0], grid.Blocks[1]
	if first.Start != HeaderRows || first.Height != 3 {
		t.Fatalf("unexpected first block %+v", first)
	}
	if second.Start != HeaderRows+3 || second.Height != 1 {
		t.Fatalf("unexpected second block %+v", second)
	}
	if len(grid.Cells) != HeaderRows+4 {
		t.Fatalf("expected %d rows, got %d", HeaderRows+4, len(grid.Cells))
	}

	topicCol := columnIndex(t, plan, survey.KeyCuratorHours, "topic")
	for offset, want := range []string{"t1", "t2", "t3"} {
		if got := grid.Cells[first.Start+offset][topicCol].Value.String; got != want {
			t.Fatalf("row %d: expected %q, got %q", offset, want, got)
		}
	}

	groupsCol := columnIndex(t, plan, survey.KeyCuratorHours, "groups")
	specialistsCol := columnIndex(t, plan, survey.KeyCuratorHours, "specialists")
	for r := range grid.Cells {
		for c := groupsCol; c <= specialistsCol; c++ {
			inSpan := r >= first.Start && r < first.Start+3
			if grid.Cells[r][c].Highlight != inSpan {
				t.Fatalf("row %d col %d: expected highlight=%v", r, c, inSpan)
			}
		}
	}

	resultCol := columnIndex(t, plan, survey.KeyAchievements, "result")
	if !grid.Cells[first.Start][resultCol].Highlight || grid.Cells[first.Start+1][resultCol].Highlight {
		t.Fatalf("expected achievements highlight on the first row only")
	}

	nameCol := columnIndex(t, plan, survey.KeyFullName, "")
	if grid.Cells[first.Start][nameCol].Value.String != "A" {
		t.Fatalf("expected scalar on block's first row")
	}
	if grid.Cells[first.Start+1][nameCol].Value.Kind != survey.JSONNull {
		t.Fatalf("expected scalar only on first row")
	}
	if grid.Cells[first.Start][nameCol].Highlight {
		t.Fatalf("scalar answers are not highlighted")
	}
	if grid.Cells[first.Start][0].Value.String != "a.json" || grid.Cells[first.Start+1][0].Value.Kind != survey.JSONNull {
		t.Fatalf("expected source name on first block row only")
	}
}

// TestRenderBlockHeightCountsUnplannedKeys verifies every list value sets the height.
func TestRenderBlockHeightCountsUnplannedKeys(t *testing.T) {
	_, grid := renderOne(t, `{"full_name": "A", "extra": [{"a": 1}, {"a": 2}]}`)
	if grid.Blocks[0].Height != 2 {
		t.Fatalf("expected height 2, got %d", grid.Blocks[0].Height)
	}
}

// TestResolveCellShapes verifies projection for each value shape.
func TestResolveCellShapes(t *testing.T) {
	plan, grid := renderOne(t, `{
  "reporting_period": {"range": "2024-01-01 - 2024-06-30"},
  "full_name": {"first": "И"},
  "email": ["b@x", "a@x"],
  "curator_hours_details": [{"groups": ["2", "1"], "topic": {"t": 1}}, "loose"],
  "achievements": "plain"
}`)
	row := grid.Blocks[0].Start
	startCol := columnIndex(t, plan, survey.KeyReportingPeriod, survey.SubDateStart)
	if grid.Cells[row][startCol].Value.String != "2024-01-01" || grid.Cells[row][startCol+1].Value.String != "2024-06-30" {
		t.Fatalf("expected split reporting period")
	}
	if grid.Cells[row+1][startCol].Value.Kind != survey.JSONNull {
		t.Fatalf("expected object values only on first row")
	}
	nameCol := columnIndex(t, plan, survey.KeyFullName, "")
	if grid.Cells[row][nameCol].Value.String != `{"first": "И"}` {
		t.Fatalf("expected JSON fallback, got %q", grid.Cells[row][nameCol].Value.String)
	}
	emailCol := columnIndex(t, plan, "email", "")
	if grid.Cells[row][emailCol].Value.String != "a@x, b@x" {
		t.Fatalf("expected collapsed list, got %q", grid.Cells[row][emailCol].Value.String)
	}
	groupsCol := columnIndex(t, plan, survey.KeyCuratorHours, "groups")
	topicCol := columnIndex(t, plan, survey.KeyCuratorHours, "topic")
	if grid.Cells[row][groupsCol].Value.String != "1, 2" {
		t.Fatalf("expected nested scalar list to collapse, got %q", grid.Cells[row][groupsCol].Value.String)
	}
	if grid.Cells[row][topicCol].Value.String != `{"t": 1}` {
		t.Fatalf("expected nested object as JSON, got %q", grid.Cells[row][topicCol].Value.String)
	}
	if grid.Cells[row+1][groupsCol].Value.Kind != survey.JSONNull {
		t.Fatalf("expected non-object item to be blank under a sub-field")
	}
	achievementCol := columnIndex(t, plan, survey.KeyAchievements, "date_start")
	if grid.Cells[row][achievementCol].Value.Kind != survey.JSONNull {
		t.Fatalf("expected scalar under sub-fielded question to be blank")
	}
}

// TestRenderScoreColumn verifies the injected score is shown.
func TestRenderScoreColumn(t *testing.T) {
	raw := record(t, `{"full_name": "A"}`)
	plan := NewPlan(survey.Questions(), []survey.Record{raw})
	grid := Render(plan, []Row{{Source: "a.json", Record: normalize.Record(raw, 70)}})
	col := columnIndex(t, plan, survey.KeyScore, "")
	if got := grid.Cells[HeaderRows][col].Value; got.Kind != survey.JSONNumber || got.Number != 70 {
		t.Fatalf("expected score 70, got %+v", got)
	}
}
