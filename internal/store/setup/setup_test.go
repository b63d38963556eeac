package setup

import (
	"context"
	"testing"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/catalog"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

type fakeUsers struct {
	user *model.User
}

func (f *fakeUsers) CurrentUser() *model.User { return f.user }

func TestDefaultPhaseSelection(t *testing.T) {
	s := New(&fakeUsers{})

	defaults := catalog.DefaultPhaseSelection()
	if len(defaults) == 0 {
		t.Fatal("no default phases")
	}
	for _, id := range defaults {
		if !s.IsPhaseSelected(id) {
			t.Fatalf("default phase %q not selected", id)
		}
	}
}

func TestTogglePhaseKeepsSelectionOrder(t *testing.T) {
	s := New(&fakeUsers{})
	defaults := catalog.DefaultPhaseSelection()
	first := defaults[0]

	s.TogglePhase(first)
	if s.IsPhaseSelected(first) {
		t.Fatalf("phase %q still selected after toggle off", first)
	}

	// 重新勾选排到末尾
	s.TogglePhase(first)
	_, _, ids, _ := s.Selection()
	if ids[len(ids)-1] != first {
		t.Fatalf("re-added phase not last: %v", ids)
	}
}

func TestSetSelectedResumeByID(t *testing.T) {
	users := &fakeUsers{user: &model.User{
		ID: "u1",
		Resumes: []model.ResumeInfo{
			{ID: "r1", Name: "后端实习简历.pdf"},
			{ID: "r2", Name: "秋招简历.pdf"},
		},
	}}
	s := New(users)

	s.SetSelectedResumeByID("r2")
	_, _, _, resume := s.Selection()
	if resume == nil || resume.Name != "秋招简历.pdf" {
		t.Fatalf("resume = %+v", resume)
	}

	s.SetSelectedResumeByID("missing")
	if _, _, _, resume = s.Selection(); resume != nil {
		t.Fatalf("unknown id resolved to %+v", resume)
	}

	s.SetSelectedResumeByID(SelectUploadNew)
	if _, _, _, resume = s.Selection(); resume == nil || resume.Name != "New Upload Pending" {
		t.Fatalf("upload placeholder = %+v", resume)
	}

	s.SetSelectedResumeByID("")
	if _, _, _, resume = s.Selection(); resume != nil {
		t.Fatal("clear did not drop resume")
	}
}

func TestSelectionReturnsCopies(t *testing.T) {
	s := New(&fakeUsers{})
	s.SetJobField("backend")
	s.SetUploadedResumeFile("resume.pdf")

	_, _, ids, resume := s.Selection()
	if len(ids) > 0 {
		ids[0] = "mutated"
	}
	resume.Name = "mutated"

	_, _, ids2, resume2 := s.Selection()
	if len(ids2) > 0 && ids2[0] == "mutated" {
		t.Fatal("phase slice shared with caller")
	}
	if resume2.Name != "resume.pdf" {
		t.Fatal("resume pointer shared with caller")
	}
}

func TestClearSetupResetsEverything(t *testing.T) {
	s := New(&fakeUsers{})
	s.SetJobField("backend")
	s.SetExperienceLevel("campus")
	s.SetUploadedResumeFile("resume.pdf")
	s.CreateSession(context.Background())

	s.ClearSetup()

	field, level, ids, resume := s.Selection()
	if field != "" || level != "" || resume != nil {
		t.Fatalf("after clear: field %q level %q resume %+v", field, level, resume)
	}
	defaults := catalog.DefaultPhaseSelection()
	if len(ids) != len(defaults) {
		t.Fatalf("phases = %v, want defaults %v", ids, defaults)
	}
}
