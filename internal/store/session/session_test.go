package session

import (
	"testing"
	"time"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/catalog"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/store/setup"
)

type fakeUsers struct {
	user *model.User
}

func (f *fakeUsers) CurrentUser() *model.User { return f.user }

func readySetup() *setup.Store {
	s := setup.New(&fakeUsers{})
	s.SetJobField("swe")
	s.SetExperienceLevel("campus")
	return s
}

func TestStartInterviewRequiresSelection(t *testing.T) {
	cases := []struct {
		name    string
		prepare func(*setup.Store)
	}{
		{"missing job field", func(s *setup.Store) {
			s.SetExperienceLevel("campus")
		}},
		{"missing level", func(s *setup.Store) {
			s.SetJobField("swe")
		}},
		{"no phases", func(s *setup.Store) {
			s.SetJobField("swe")
			s.SetExperienceLevel("campus")
			for _, id := range catalog.DefaultPhaseSelection() {
				s.TogglePhase(id)
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setupStore := setup.New(&fakeUsers{})
			tc.prepare(setupStore)
			store := New(setupStore)

			if store.StartInterview("session-1") {
				t.Fatal("expected StartInterview to fail")
			}
			if store.Status() != RunNone {
				t.Fatalf("status = %q, want empty", store.Status())
			}
			if store.SessionID() != "" {
				t.Fatalf("sessionID = %q, want empty", store.SessionID())
			}
			if store.CurrentPhase() != nil {
				t.Fatal("expected no current phase after failed start")
			}
		})
	}
}

func TestStartInterviewBuildsPhases(t *testing.T) {
	store := New(readySetup())
	if !store.StartInterview("session-1") {
		t.Fatal("StartInterview failed")
	}

	if store.Status() != RunOngoing {
		t.Fatalf("status = %q, want %q", store.Status(), RunOngoing)
	}
	if got := store.TotalPhases(); got != 3 {
		t.Fatalf("TotalPhases = %d, want 3", got)
	}
	if store.CurrentQuestionText() == "" {
		t.Fatal("expected question text for first phase")
	}
}

func TestSubQuestionCursorClampsAtEnd(t *testing.T) {
	setupStore := setup.New(&fakeUsers{})
	setupStore.SetJobField("swe")
	setupStore.SetExperienceLevel("campus")
	for _, id := range catalog.DefaultPhaseSelection() {
		setupStore.TogglePhase(id)
	}
	setupStore.TogglePhase(catalog.PhaseTechQA)

	store := New(setupStore)
	if !store.StartInterview("session-1") {
		t.Fatal("StartInterview failed")
	}

	phase := store.CurrentPhase()
	if phase == nil || !phase.HasCursor {
		t.Fatal("expected a cursor phase")
	}
	total := phase.TotalQuestionsInPhase

	for i := 0; i < total+5; i++ {
		store.NextSubQuestion()
	}

	phase = store.CurrentPhase()
	if phase.CurrentQuestionIndex != total-1 {
		t.Fatalf("cursor = %d, want %d", phase.CurrentQuestionIndex, total-1)
	}
	if store.CanGoToNextSubQuestion() {
		t.Fatal("expected no further sub-question at end")
	}
	if !store.AllSubQuestionsDone() {
		t.Fatal("expected AllSubQuestionsDone at end")
	}
}

func TestNextPhaseResetsCursorAndEnds(t *testing.T) {
	store := New(readySetup())
	if !store.StartInterview("session-1") {
		t.Fatal("StartInterview failed")
	}

	total := store.TotalPhases()
	for i := 0; i < total-1; i++ {
		store.NextPhase()
		if store.Status() != RunOngoing {
			t.Fatalf("status after phase %d = %q, want ongoing", i+1, store.Status())
		}
		phase := store.CurrentPhase()
		if phase.HasCursor && phase.CurrentQuestionIndex != 0 {
			t.Fatalf("cursor = %d after phase change, want 0", phase.CurrentQuestionIndex)
		}
	}

	store.NextPhase()
	if store.Status() != RunCompleted {
		t.Fatalf("status = %q, want %q", store.Status(), RunCompleted)
	}
	if store.Progress() != 100 {
		t.Fatalf("progress = %v, want 100", store.Progress())
	}
}

func TestEndInterviewIsMonotonic(t *testing.T) {
	store := New(readySetup())
	if !store.StartInterview("session-1") {
		t.Fatal("StartInterview failed")
	}

	store.EndInterview(true)
	if store.Status() != RunEndedEarly {
		t.Fatalf("status = %q, want %q", store.Status(), RunEndedEarly)
	}

	store.EndInterview(false)
	if store.Status() != RunEndedEarly {
		t.Fatalf("terminal status overwritten to %q", store.Status())
	}
}

func TestProblemTimer(t *testing.T) {
	store := New(readySetup())
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store.clock = func() time.Time { return now }

	if !store.StartInterview("session-1") {
		t.Fatal("StartInterview failed")
	}

	store.StartProblemTimer("cp1", 10*time.Minute)
	now = now.Add(4 * time.Minute)
	remaining, ok := store.TimerRemaining()
	if !ok || remaining != 6*time.Minute {
		t.Fatalf("remaining = %v ok=%v, want 6m true", remaining, ok)
	}

	// 替换旧计时器
	store.StartProblemTimer("cp2", time.Minute)
	now = now.Add(2 * time.Minute)
	remaining, ok = store.TimerRemaining()
	if !ok || remaining != 0 {
		t.Fatalf("expired remaining = %v ok=%v, want 0 true", remaining, ok)
	}

	store.SubmitCodingSolution("cp1", "func main() {}")
	if _, ok := store.TimerRemaining(); ok {
		t.Fatal("expected timer cleared after submission")
	}
	if solution, ok := store.CodingSolution("cp1"); !ok || solution == "" {
		t.Fatal("expected stored solution")
	}
}

func TestResetSessionClearsEverything(t *testing.T) {
	store := New(readySetup())
	if !store.StartInterview("session-1") {
		t.Fatal("StartInterview failed")
	}
	store.StartProblemTimer("cp1", time.Minute)

	store.ResetSession()
	if store.Status() != RunNone || store.SessionID() != "" || store.TotalPhases() != 0 {
		t.Fatal("expected empty session after reset")
	}
	if _, ok := store.TimerRemaining(); ok {
		t.Fatal("expected timer cleared by reset")
	}
}
