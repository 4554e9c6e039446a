// Package normalize reshapes raw survey answers into display-ready values.
package normalize

import (
	"sort"
	"strings"

	"surveymerge/internal/survey"
)

// ListSeparator joins collapsed scalar lists.
const ListSeparator = ", "

// rangeSeparator splits a legacy reporting period range.
const rangeSeparator = " - "

// Record returns a copy of raw with display-ready values and the score set
// under the score key. Scalar lists collapse to one string, the reporting
// period becomes a start/end object, and every other value is kept as is.
func Record(raw survey.Record, score int) survey.Record {
	keys := raw.Keys()
	fields := make([]survey.Field, 0, len(keys)+1)
	for _, key := range keys {
		fields = append(fields, survey.Field{Key: key, Value: Value(key, raw.Get(key))})
	}
	fields = append(fields, survey.Field{Key: survey.KeyScore, Value: survey.Int(score)})
	return survey.NewRecord(survey.Object(fields...))
}

// Value normalizes one answer for its question key.
func Value(key string, value survey.JSONValue) survey.JSONValue {
	if key == survey.KeyReportingPeriod {
		return ReportingPeriod(value)
	}
	if value.IsScalarList() {
		return survey.Str(ScalarList(value.Array))
	}
	return value
}

// ScalarList renders scalar items sorted as strings and joined.
func ScalarList(items []survey.JSONValue) string {
	texts := make([]string, 0, len(items))
	for _, item := range items {
		texts = append(texts, scalarString(item))
	}
	sort.Strings(texts)
	return strings.Join(texts, ListSeparator)
}

// scalarString renders a scalar list item. Null renders as "None" and
// booleans as "True"/"False", matching spreadsheets produced before.
func scalarString(item survey.JSONValue) string {
	switch item.Kind {
	case survey.JSONNull:
		return "None"
	case survey.JSONBool:
		if item.Bool {
			return "True"
		}
		return "False"
	default:
		return item.Text()
	}
}

// ReportingPeriod reshapes a reporting period into an object holding exactly
// date_start and date_end. Explicit dates win; otherwise a legacy range of
// the form "<start> - <end>" is split on its first separator. Anything else
// yields null dates.
func ReportingPeriod(value survey.JSONValue) survey.JSONValue {
	start, end := survey.Null(), survey.Null()
	if value.Kind == survey.JSONObject {
		start = value.Get(survey.SubDateStart)
		end = value.Get(survey.SubDateEnd)
		if start.Kind == survey.JSONNull && end.Kind == survey.JSONNull {
			if legacy, ok := value.Get("range").StringValue(); ok {
				if first, second, found := strings.Cut(legacy, rangeSeparator); found && first != "" && second != "" {
					start, end = survey.Str(first), survey.Str(second)
				}
			}
		}
	}
	return survey.Object(
		survey.Field{Key: survey.SubDateStart, Value: start},
		survey.Field{Key: survey.SubDateEnd, Value: end},
	)
}

// Cell coerces a value into something a single spreadsheet cell can hold.
// Scalars pass through, scalar lists collapse, and any other structure becomes
// its JSON text.
func Cell(value survey.JSONValue) survey.JSONValue {
	if value.IsScalar() {
		return value
	}
	if value.IsScalarList() {
		return survey.Str(ScalarList(value.Array))
	}
	return survey.Str(value.JSONText())
}

// DisplayText renders a value as a single line of text, as a cell shows it.
func DisplayText(value survey.JSONValue) string {
	return Cell(value).Text()
}
