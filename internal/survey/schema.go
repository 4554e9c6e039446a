package survey

// Question keys referenced outside the registry.
const (
	KeyReportingPeriod  = "reporting_period"
	KeyScore            = "score"
	KeyFullName         = "full_name"
	KeyCuratorSessions  = "held_minimum_three_curator_sessions_in_reporting_period"
	KeyCuratorHours     = "curator_hours_details"
	KeyGroupChat        = "manages_group_chat"
	KeyInformGroup      = "inform_group_about_events"
	KeyAchievements     = "achievements"
	KeyTwoGroupEvents   = "participated_in_two_events_with_group"
	KeyJointEvents      = "joint_participation_events"
	KeyTwoCuratorEvents = "participated_in_two_curator_events"
	KeyCuratorEvents    = "curator_personal_events"
	KeyPersonalPrograms = "personal_program_participation"
	KeyMentorSupport    = "mentor_support_events"
	KeyPublications     = "scientific_publications"
	KeyMediaMaterials   = "media_materials"
	KeyQualification    = "qualification_courses"
)

// Reporting period sub-keys.
const (
	SubDateStart = "date_start"
	SubDateEnd   = "date_end"
)

// SourceLabel heads the first spreadsheet column.
const SourceLabel = "Источник"

// SubField is one named column inside a question.
type SubField struct {
	Key   string
	Label string
}

// QuestionSpec defines one questionnaire question.
type QuestionSpec struct {
	Key       string
	Label     string
	SubFields []SubField
	// Always keeps the question in the plan even when no record answers it.
	Always bool
}

// Span returns the number of flat columns the question occupies.
func (q QuestionSpec) Span() int {
	if len(q.SubFields) == 0 {
		return 1
	}
	return len(q.SubFields)
}

var (
	subDates = []SubField{
		{Key: SubDateStart, Label: "Дата начала"},
		{Key: SubDateEnd, Label: "Дата окончания"},
	}
	subDatedEvent    = append(cloneSubFields(subDates), SubField{Key: "event", Label: "Мероприятие"})
	subStudentResult = append(cloneSubFields(subDatedEvent),
		SubField{Key: "group", Label: "Группа"},
		SubField{Key: "student", Label: "ФИО студента"},
		SubField{Key: "result", Label: "Итог"},
	)
)

var registry = []QuestionSpec{
	{Key: KeyReportingPeriod, Label: "Отчётный период", SubFields: subDates},
	{Key: KeyScore, Label: "Баллы", Always: true},
	{Key: KeyFullName, Label: "1. Фамилия Имя Отчество"},
	{Key: "job_positions", Label: "2. Должность"},
	{Key: "department", Label: "3. Кафедра"},
	{Key: "contact_phone_connected_to_telegram", Label: "4. Контактный телефон (подключенный к Telegram)"},
	{Key: "telegram_username", Label: "5. Ник в Telegram"},
	{Key: "email", Label: "6. E-mail"},
	{Key: "curated_group_numbers", Label: "7. Номера курируемых групп"},
	{Key: "curator_primary_building", Label: "8. Корпус основного пребывания куратора"},
	{Key: "curator_primary_room", Label: "9. Аудитория основного пребывания куратора"},
	{Key: "institute_or_faculty", Label: "10. Институт/Факультет"},
	{Key: KeyCuratorSessions, Label: "11. Проведение не менее трёх кураторских часов за отчётный период"},
	{
		Key:   KeyCuratorHours,
		Label: "12. Даты проведения трёх и более кураторских часов в течение отчётного периода",
		SubFields: []SubField{
			{Key: "groups", Label: "Группы"},
			{Key: SubDateStart, Label: "Дата начала"},
			{Key: SubDateEnd, Label: "Дата окончания"},
			{Key: "topic", Label: "Тема"},
			{Key: "directions", Label: "Направленность"},
			{Key: "specialists", Label: "Приглашённые специалисты"},
		},
	},
	{Key: KeyGroupChat, Label: "13. Ведение чата с каждой группой или общего чата"},
	{Key: KeyInformGroup, Label: "14. Информирование группы о мероприятиях и событиях различного уровня"},
	{Key: KeyAchievements, Label: "15. Призовое место обучающегося во внеучебных мероприятиях", SubFields: subStudentResult},
	{Key: KeyTwoGroupEvents, Label: "16. Совместное участие с группой не менее чем в двух мероприятиях"},
	{
		Key:   KeyJointEvents,
		Label: "17. Даты проведения двух и более мероприятий в течение отчётного периода",
		SubFields: []SubField{
			{Key: "groups", Label: "Группы"},
			{Key: SubDateStart, Label: "Дата начала"},
			{Key: SubDateEnd, Label: "Дата окончания"},
			{Key: "event", Label: "Мероприятие"},
		},
	},
	{Key: KeyTwoCuratorEvents, Label: "18. Участие не менее чем в двух мероприятиях для кураторов"},
	{Key: KeyCuratorEvents, Label: "19. Даты участия в мероприятиях для кураторов", SubFields: subDatedEvent},
	{Key: KeyPersonalPrograms, Label: "20. Личное участие в программах и конкурсах", SubFields: subDatedEvent},
	{Key: KeyMentorSupport, Label: "21. Участие куратора в роли наставника проекта", SubFields: subStudentResult},
	{
		Key:   KeyPublications,
		Label: "22. Опубликование научной работы",
		SubFields: []SubField{
			{Key: "description", Label: "Описание"},
			{Key: "link", Label: "Ссылка"},
		},
	},
	{
		Key:       KeyMediaMaterials,
		Label:     `23. Интервью и статьи для "Дзен.Гуап", соцсетей и сайта ГУАП`,
		SubFields: []SubField{{Key: "link", Label: "Ссылка"}},
	},
	{Key: KeyQualification, Label: "24. Курсы повышения квалификации", SubFields: subDatedEvent},
}

// Questions returns the questionnaire in display order. The result is a copy;
// callers may not change the registry.
func Questions() []QuestionSpec {
	out := make([]QuestionSpec, len(registry))
	for i, question := range registry {
		question.SubFields = cloneSubFields(question.SubFields)
		out[i] = question
	}
	return out
}

func cloneSubFields(fields []SubField) []SubField {
	if fields == nil {
		return nil
	}
	return append([]SubField(nil), fields...)
}
