package testutil

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

var (
	syntheticNames  = []string{"Иванов Иван", "Петрова Анна", "Сидоров Пётр", "Kuznetsova Olga"}
	syntheticTopics = []string{"Адаптация", "Профориентация", "Безопасность", "Волонтёрство"}
	syntheticYes    = []string{"Да", "да", " ДА ", "Нет"}
)

// SyntheticResponse builds a plausible response with random list lengths.
func SyntheticResponse(rng *rand.Rand, index int) map[string]interface{} {
	rows := func(limit int, build func(i int) map[string]interface{}) []interface{} {
		count := rng.Intn(limit + 1)
		out := make([]interface{}, 0, count)
		for i := 0; i < count; i++ {
			out = append(out, build(i))
		}
		return out
	}
	dated := func(i int) map[string]interface{} {
		return map[string]interface{}{
			"date_start": fmt.Sprintf("2024-0%d-01", i%9+1),
			"date_end":   fmt.Sprintf("2024-0%d-28", i%9+1),
			"event":      syntheticTopics[rng.Intn(len(syntheticTopics))],
		}
	}
	yes := func() string { return syntheticYes[rng.Intn(len(syntheticYes))] }
	hours := rows(6, func(i int) map[string]interface{} {
		row := map[string]interface{}{
			"groups": fmt.Sprintf("%d", 1000+i),
			"topic":  syntheticTopics[rng.Intn(len(syntheticTopics))],
		}
		if rng.Intn(3) == 0 {
			row["specialists"] = "Психолог"
		}
		return row
	})
	groups := []interface{}{
		fmt.Sprintf("%d%02d", rng.Intn(9)+1, rng.Intn(100)),
		fmt.Sprintf("%d%02d", rng.Intn(9)+1, rng.Intn(100)),
	}

	response := map[string]interface{}{}
	response["reporting_period"] = map[string]interface{}{"range": "2024-01-01 - 2024-06-30"}
	response["full_name"] = syntheticNames[index%len(syntheticNames)]
	response["curated_group_numbers"] = groups
	response["held_minimum_three_curator_sessions_in_reporting_period"] = yes()
	response["curator_hours_details"] = hours
	response["manages_group_chat"] = yes()
	response["inform_group_about_events"] = yes()
	response["participated_in_two_events_with_group"] = yes()
	response["joint_participation_events"] = rows(4, dated)
	response["participated_in_two_curator_events"] = yes()
	response["curator_personal_events"] = rows(4, dated)
	response["personal_program_participation"] = rows(2, dated)
	response["qualification_courses"] = rows(2, dated)
	return response
}

// WriteSyntheticResponses writes count generated responses into dir and
// returns their paths.
func WriteSyntheticResponses(dir string, count int, seed int64) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir responses dir: %w", err)
	}
	rng := rand.New(rand.NewSource(seed))
	paths := make([]string, 0, count)
	for i := 0; i < count; i++ {
		data, err := json.MarshalIndent(SyntheticResponse(rng, i), "", "  ")
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, fmt.Sprintf("response-%04d.json", i))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write response: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
