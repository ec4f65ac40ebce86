package wizard

import "testing"

func questionIDs(questions []Question) []string {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestInitQuestionsAsksEverythingWhenNothingPinned(t *testing.T) {
	questions := InitQuestions(func(string) bool { return true })

	want := []string{"runtime", "database", "template", "features"}
	got := questionIDs(questions)
	if len(got) != len(want) {
		t.Fatalf("questions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("question[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestInitQuestionsSkipsPinnedFields(t *testing.T) {
	// Flags pinned runtime and template; only the rest should be asked.
	questions := InitQuestions(func(field string) bool {
		return field == "database" || field == "features"
	})

	got := questionIDs(questions)
	if len(got) != 2 || got[0] != "database" || got[1] != "features" {
		t.Errorf("questions = %v, want [database features]", got)
	}
}

func TestInitQuestionsEmptyWhenAllPinned(t *testing.T) {
	questions := InitQuestions(func(string) bool { return false })
	if len(questions) != 0 {
		t.Errorf("questions = %v, want none", questionIDs(questions))
	}
}

func TestInitQuestionOptionsCoverEnums(t *testing.T) {
	questions := InitQuestions(func(string) bool { return true })

	byID := map[string]Question{}
	for _, q := range questions {
		byID[q.ID] = q
	}
	if got := len(byID["runtime"].Options); got != 4 {
		t.Errorf("runtime options = %d, want 4", got)
	}
	if got := len(byID["database"].Options); got != 7 {
		t.Errorf("database options = %d, want 7", got)
	}
	if got := len(byID["template"].Options); got != 3 {
		t.Errorf("template options = %d, want 3", got)
	}
	if byID["features"].Type != QuestionTypeMultiSelect {
		t.Error("features must be a multi-select")
	}
}
