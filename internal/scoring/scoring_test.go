package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveymerge/internal/survey"
)

func parseRecord(t *testing.T, source string) survey.Record {
	t.Helper()
	var value survey.JSONValue
	require.NoError(t, json.Unmarshal([]byte(source), &value))
	require.Equal(t, survey.JSONObject, value.Kind)
	return survey.NewRecord(value)
}

const baseRecord = `{
  "held_minimum_three_curator_sessions_in_reporting_period": "Да",
  "curator_hours_details": [
    {"groups": "1111", "topic": "Адаптация", "specialists": "Психолог"},
    {"groups": "1111", "topic": "Безопасность", "specialists": ""},
    {"groups": "1112", "topic": "Карьера"}
  ],
  "manages_group_chat": "Да",
  "inform_group_about_events": "да ",
  "participated_in_two_events_with_group": "Да",
  "joint_participation_events": [
    {"event": "Субботник"},
    {"event": "Турпоход"}
  ],
  "participated_in_two_curator_events": true,
  "curator_personal_events": [
    {"event": "Школа кураторов"},
    {"event": "Семинар"}
  ]
}`

// TestScoreBaseExample verifies the documented worked example.
func TestScoreBaseExample(t *testing.T) {
	breakdown := Score(parseRecord(t, baseRecord))
	points := make([]int, 0, len(breakdown.Components))
	for _, component := range breakdown.Components {
		points = append(points, component.Points)
	}
	assert.Equal(t, []int{30, 0, 0, 0, 0, 0, 0, 20, 0, 0, 0}, points)
	assert.Equal(t, 50, breakdown.Total)
}

// TestScoreEmptyRecord verifies missing answers score zero.
func TestScoreEmptyRecord(t *testing.T) {
	breakdown := Score(parseRecord(t, `{}`))
	require.Len(t, breakdown.Components, len(Labels()))
	assert.Zero(t, breakdown.Total)
	for _, component := range breakdown.Components {
		assert.Zero(t, component.Points, component.Label)
	}
}

// TestBaseConditionIsAllOrNothing verifies one missing condition drops the bonus.
func TestBaseConditionIsAllOrNothing(t *testing.T) {
	record := parseRecord(t, baseRecord).With(survey.KeyGroupChat, survey.Str("Нет"))
	breakdown := Score(record)
	assert.Equal(t, 0, breakdown.Components[0].Points)
	assert.Equal(t, 20, breakdown.Total)
}

// TestScoreExtrasAndRates verifies per-row rates and the beyond-threshold rules.
func TestScoreExtrasAndRates(t *testing.T) {
	record := parseRecord(t, `{
  "curator_hours_details": [{"topic": "a"}, {"topic": "b"}, {"topic": "c"}, {"topic": "d"}, {"topic": "e"}],
  "joint_participation_events": [{"event": "a"}, {"event": "b"}, {"event": "c"}],
  "curator_personal_events": [{"event": "a"}, {"event": "b"}, {"event": "c"}, {"event": "d"}],
  "personal_program_participation": [{"event": "a"}],
  "scientific_publications": [{"link": "x"}, {"link": ""}],
  "media_materials": ["http://a", ""],
  "mentor_support_events": [{"event": "a"}],
  "achievements": [{"result": "1"}, {"result": "2"}],
  "qualification_courses": [{"event": "a"}]
}`)
	got := map[string]int{}
	for _, component := range Components(record) {
		got[component.Label] = component.Points
	}
	labels := Labels()
	assert.Equal(t, 0, got[labels[0]])
	assert.Equal(t, 10, got[labels[1]])
	assert.Equal(t, 20, got[labels[2]])
	assert.Equal(t, 10, got[labels[3]])
	assert.Equal(t, 10, got[labels[4]])
	assert.Equal(t, 20, got[labels[5]])
	assert.Equal(t, 20, got[labels[6]])
	assert.Equal(t, 0, got[labels[7]])
	assert.Equal(t, 10, got[labels[8]])
	assert.Equal(t, 10, got[labels[9]])
	assert.Equal(t, 10, got[labels[10]])
	assert.Equal(t, 120, Points(record))
}

// TestScoreIgnoresUnrelatedKeyOrder verifies key order does not matter.
func TestScoreIgnoresUnrelatedKeyOrder(t *testing.T) {
	first := parseRecord(t, `{"email": "a@b", "achievements": [{"result": "1"}], "department": "x"}`)
	second := parseRecord(t, `{"department": "x", "achievements": [{"result": "1"}], "email": "a@b"}`)
	assert.Equal(t, Score(first), Score(second))
}

// TestScoreMonotonic verifies adding a filled row never lowers the total.
func TestScoreMonotonic(t *testing.T) {
	base := parseRecord(t, baseRecord)
	before := Points(base)
	for _, key := range []string{
		survey.KeyCuratorHours,
		survey.KeyJointEvents,
		survey.KeyCuratorEvents,
		survey.KeyPersonalPrograms,
		survey.KeyPublications,
		survey.KeyMediaMaterials,
		survey.KeyMentorSupport,
		survey.KeyAchievements,
		survey.KeyQualification,
	} {
		items, _ := base.Get(key).ArrayValue()
		grown := append(append([]survey.JSONValue(nil), items...), survey.Object(survey.Field{Key: "event", Value: survey.Str("new")}))
		after := Points(base.With(key, survey.Array(grown...)))
		assert.GreaterOrEqual(t, after, before, key)
	}
}

// TestComponentsSumToTotal verifies the total is the component sum.
func TestComponentsSumToTotal(t *testing.T) {
	breakdown := Score(parseRecord(t, baseRecord))
	assert.Equal(t, Total(breakdown.Components), breakdown.Total)
}
