package catalog

import "testing"

func TestFilterQuestionsByFieldRespectsLimit(t *testing.T) {
	questions := FilterQuestionsByField("swe", 5, 3)
	if len(questions) == 0 || len(questions) > 5 {
		t.Fatalf("questions = %d, want 1..5", len(questions))
	}
}

func TestFilterQuestionsFallsBackToGeneral(t *testing.T) {
	questions := FilterQuestionsByField("unknown_field", 5, 3)
	if len(questions) != 3 {
		t.Fatalf("fallback questions = %d, want 3", len(questions))
	}
	general := FilterQuestionsByField("swe", 3, 3)
	for i := range questions {
		if questions[i] != general[i] {
			t.Fatalf("fallback question %d = %q, want %q", i, questions[i], general[i])
		}
	}
}

func TestFilterProblemsByField(t *testing.T) {
	problems := FilterProblemsByField("swe", 2)
	if len(problems) != 2 {
		t.Fatalf("problems = %d, want 2", len(problems))
	}
	for _, p := range problems {
		if !containsField(p.JobField, "swe") {
			t.Fatalf("problem %s does not target requested field", p.ID)
		}
	}

	fallback := FilterProblemsByField("product_management", 2)
	if len(fallback) == 0 {
		t.Fatal("no fallback problems")
	}
	for _, p := range fallback {
		if !containsField(p.JobField, "swe") {
			t.Fatalf("fallback problem %s is not general", p.ID)
		}
	}
}

func TestDefaultPhaseSelectionIDsExist(t *testing.T) {
	for _, id := range DefaultPhaseSelection() {
		if _, ok := FindPhase(id); !ok {
			t.Fatalf("default phase %q not defined", id)
		}
	}
}
