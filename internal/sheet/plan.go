// Package sheet lays survey records out as a spreadsheet grid and writes it
// as an xlsx workbook.
package sheet

import "surveymerge/internal/survey"

// FlatColumn is one spreadsheet column: a question, or one of its sub-fields.
type FlatColumn struct {
	Key    string
	SubKey string
}

// HasSubKey reports whether the column projects a sub-field.
func (c FlatColumn) HasSubKey() bool {
	return c.SubKey != ""
}

// Plan is the ordered set of questions shown and their flat columns.
type Plan struct {
	Questions []survey.QuestionSpec
	Columns   []FlatColumn
}

// NewPlan keeps each question, in registry order, that some record answers or
// that is always included, and expands sub-fielded questions into one column
// per sub-field.
func NewPlan(questions []survey.QuestionSpec, records []survey.Record) Plan {
	present := map[string]struct{}{}
	for _, record := range records {
		for _, key := range record.Keys() {
			present[key] = struct{}{}
		}
	}

	var plan Plan
	for _, question := range questions {
		if _, ok := present[question.Key]; !ok && !question.Always {
			continue
		}
		plan.Questions = append(plan.Questions, question)
		if len(question.SubFields) == 0 {
			plan.Columns = append(plan.Columns, FlatColumn{Key: question.Key})
			continue
		}
		for _, sub := range question.SubFields {
			plan.Columns = append(plan.Columns, FlatColumn{Key: question.Key, SubKey: sub.Key})
		}
	}
	return plan
}
