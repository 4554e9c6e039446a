package scoring

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"surveymerge/internal/survey"
)

// YesToken is the questionnaire's affirmative answer.
const YesToken = "Да"

// IsYes reports whether an answer is affirmative: boolean true, or the yes
// token ignoring case and surrounding whitespace.
func IsYes(value survey.JSONValue) bool {
	switch value.Kind {
	case survey.JSONBool:
		return value.Bool
	case survey.JSONString:
		return foldAnswer(value.String) == foldAnswer(YesToken)
	default:
		return false
	}
}

func foldAnswer(text string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(text)))
}

// CountFilledRows counts the non-empty items of a list answer. An object item
// counts when any member is truthy; a scalar item counts when it is truthy.
// Non-list answers count as zero.
func CountFilledRows(value survey.JSONValue) int {
	items, ok := value.ArrayValue()
	if !ok {
		return 0
	}
	count := 0
	for _, item := range items {
		if rowHasContent(item) {
			count++
		}
	}
	return count
}

func rowHasContent(item survey.JSONValue) bool {
	switch item.Kind {
	case survey.JSONObject:
		for _, member := range item.Object {
			if member.Truthy() {
				return true
			}
		}
		return false
	case survey.JSONArray:
		return false
	default:
		return item.Truthy()
	}
}

// CountRowsWithSpecialists counts list items whose specialists member is a
// non-blank string or a list with at least one truthy entry.
func CountRowsWithSpecialists(value survey.JSONValue) int {
	items, ok := value.ArrayValue()
	if !ok {
		return 0
	}
	count := 0
	for _, item := range items {
		if item.Kind != survey.JSONObject {
			continue
		}
		specialists := item.Get("specialists")
		switch specialists.Kind {
		case survey.JSONString:
			if strings.TrimSpace(specialists.String) != "" {
				count++
			}
		case survey.JSONArray:
			for _, entry := range specialists.Array {
				if entry.Truthy() {
					count++
					break
				}
			}
		}
	}
	return count
}
