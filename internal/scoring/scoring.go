// Package scoring computes a respondent's points from their raw answers.
package scoring

import "surveymerge/internal/survey"

// Component is one named contribution to a total score.
type Component struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// Breakdown holds the ordered components of a score and their sum.
type Breakdown struct {
	Components []Component `json:"components"`
	Total      int         `json:"total"`
}

// rule computes one component from a raw record.
type rule struct {
	label  string
	points func(record survey.Record) int
}

// Thresholds and weights of the base condition and the per-row rules.
const (
	BaseBonus            = 30
	MinCuratorHours      = 3
	MinJointEvents       = 2
	MinCuratorEvents     = 2
	extraCuratorHourRate = 5
	extraJointEventRate  = 10
	extraCuratorRate     = 5
	specialistRate       = 20
)

var rules = []rule{
	{"Базовое условие (пп. 11, 12, 13, 14, 16, 17, 18, 19)", baseCondition},
	{"Личное участие в программах и конкурсах (п.20)", perFilledRow(survey.KeyPersonalPrograms, 10)},
	{"Опубликование научной работы (п.22)", perFilledRow(survey.KeyPublications, 20)},
	{`Интервью и статьи для "Дзен.Гуап" и соцсетей (п.23)`, perFilledRow(survey.KeyMediaMaterials, 10)},
	{"Наставничество в проектах (п.21)", perFilledRow(survey.KeyMentorSupport, 10)},
	{"Призовые места обучающихся (п.15)", perFilledRow(survey.KeyAchievements, 10)},
	{"Курсы повышения квалификации (п.24)", perFilledRow(survey.KeyQualification, 20)},
	{"Приглашённые специалисты на кураторских часах (п.12)", invitedSpecialists},
	{"Дополнительные кураторские часы сверх трёх (п.12)", beyond(survey.KeyCuratorHours, MinCuratorHours, extraCuratorHourRate)},
	{"Совместные мероприятия с группой сверх двух (п.17)", beyond(survey.KeyJointEvents, MinJointEvents, extraJointEventRate)},
	{"Мероприятия для кураторов сверх двух (п.19)", beyond(survey.KeyCuratorEvents, MinCuratorEvents, extraCuratorRate)},
}

// Labels returns the component labels in scoring order.
func Labels() []string {
	labels := make([]string, 0, len(rules))
	for _, r := range rules {
		labels = append(labels, r.label)
	}
	return labels
}

// Components computes every component of a raw record, in fixed order.
func Components(record survey.Record) []Component {
	components := make([]Component, 0, len(rules))
	for _, r := range rules {
		components = append(components, Component{Label: r.label, Points: r.points(record)})
	}
	return components
}

// Total sums component points.
func Total(components []Component) int {
	total := 0
	for _, component := range components {
		total += component.Points
	}
	return total
}

// Score computes the breakdown of a raw record.
func Score(record survey.Record) Breakdown {
	components := Components(record)
	return Breakdown{Components: components, Total: Total(components)}
}

// Points returns the total score of a raw record.
func Points(record survey.Record) int {
	return Score(record).Total
}

// baseCondition awards the bonus only when every base requirement holds.
func baseCondition(record survey.Record) int {
	met := IsYes(record.Get(survey.KeyCuratorSessions)) &&
		CountFilledRows(record.Get(survey.KeyCuratorHours)) >= MinCuratorHours &&
		IsYes(record.Get(survey.KeyGroupChat)) &&
		IsYes(record.Get(survey.KeyInformGroup)) &&
		IsYes(record.Get(survey.KeyTwoGroupEvents)) &&
		CountFilledRows(record.Get(survey.KeyJointEvents)) >= MinJointEvents &&
		IsYes(record.Get(survey.KeyTwoCuratorEvents)) &&
		CountFilledRows(record.Get(survey.KeyCuratorEvents)) >= MinCuratorEvents
	if !met {
		return 0
	}
	return BaseBonus
}

func perFilledRow(key string, rate int) func(survey.Record) int {
	return func(record survey.Record) int {
		return CountFilledRows(record.Get(key)) * rate
	}
}

func invitedSpecialists(record survey.Record) int {
	return CountRowsWithSpecialists(record.Get(survey.KeyCuratorHours)) * specialistRate
}

// beyond awards rate points per filled row above threshold.
func beyond(key string, threshold, rate int) func(survey.Record) int {
	return func(record survey.Record) int {
		extra := CountFilledRows(record.Get(key)) - threshold
		if extra <= 0 {
			return 0
		}
		return extra * rate
	}
}
