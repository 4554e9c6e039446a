package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"surveymerge/internal/survey"
)

// TestIsYes verifies the affirmative token ignores case and whitespace only.
func TestIsYes(t *testing.T) {
	yes := []survey.JSONValue{
		survey.Str("Да"),
		survey.Str("да"),
		survey.Str("  ДА\n"),
		survey.Bool(true),
	}
	for _, value := range yes {
		assert.True(t, IsYes(value), value.JSONText())
	}
	no := []survey.JSONValue{
		survey.Str("Нет"),
		survey.Str("Да!"),
		survey.Str(""),
		survey.Str("yes"),
		survey.Int(1),
		survey.Bool(false),
		survey.Null(),
		survey.Array(survey.Str("Да")),
		survey.Object(),
	}
	for _, value := range no {
		assert.False(t, IsYes(value), value.JSONText())
	}
}

// TestCountFilledRows verifies object and scalar rows are judged by content.
func TestCountFilledRows(t *testing.T) {
	value := survey.Array(
		survey.Object(survey.Field{Key: "a", Value: survey.Str("")}, survey.Field{Key: "b", Value: survey.Null()}),
		survey.Object(survey.Field{Key: "a", Value: survey.Str("x")}),
		survey.Str(""),
		survey.Str("x"),
		survey.Int(0),
		survey.Array(survey.Str("nested")),
		survey.Null(),
	)
	assert.Equal(t, 2, CountFilledRows(value))
	assert.Equal(t, 0, CountFilledRows(survey.Str("x")))
	assert.Equal(t, 0, CountFilledRows(survey.Null()))
}

// TestCountRowsWithSpecialists verifies string and list specialist answers.
func TestCountRowsWithSpecialists(t *testing.T) {
	row := func(specialists survey.JSONValue) survey.JSONValue {
		return survey.Object(survey.Field{Key: "specialists", Value: specialists})
	}
	value := survey.Array(
		row(survey.Str("Психолог")),
		row(survey.Str("   ")),
		row(survey.Array(survey.Str(""), survey.Str("Юрист"))),
		row(survey.Array(survey.Str(""))),
		row(survey.Int(5)),
		survey.Str("Психолог"),
		survey.Object(),
	)
	assert.Equal(t, 2, CountRowsWithSpecialists(value))
	assert.Equal(t, 0, CountRowsWithSpecialists(survey.Str("x")))
}
