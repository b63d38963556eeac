package problems

import (
	"testing"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/model"
)

func loaded() *Store {
	s := New()
	s.FetchProblems()
	return s
}

func TestFetchProblemsIsIdempotent(t *testing.T) {
	s := loaded()
	first := s.StatusOf("p004")

	s.ToggleFavorite("p004")
	s.FetchProblems()

	if got := s.StatusOf("p004"); got.IsFavorite == first.IsFavorite {
		t.Fatal("reload overwrote local favorite change")
	}
}

func TestEmptyFilterReturnsEverything(t *testing.T) {
	s := loaded()
	all := s.FilteredProblems()
	if len(all) == 0 {
		t.Fatal("no problems loaded")
	}

	s.UpdateFilter(func(f *Filter) {
		f.SearchTerm = "   "
	})
	if got := s.FilteredProblems(); len(got) != len(all) {
		t.Fatalf("blank search filtered: %d != %d", len(got), len(all))
	}
}

func TestDifficultyFilter(t *testing.T) {
	s := loaded()
	s.UpdateFilter(func(f *Filter) {
		f.Difficulty = model.DifficultyHard
	})
	for _, p := range s.FilteredProblems() {
		if p.Difficulty != model.DifficultyHard {
			t.Fatalf("difficulty filter leaked %s (%s)", p.ID, p.Difficulty)
		}
	}
}

func TestFavoritesTab(t *testing.T) {
	s := loaded()
	s.ToggleFavorite("p004")
	s.UpdateFilter(func(f *Filter) {
		f.ActiveTab = TabFavorites
	})

	got := s.FilteredProblems()
	found := false
	for _, p := range got {
		if !s.StatusOf(p.ID).IsFavorite {
			t.Fatalf("non-favorite %s in favorites tab", p.ID)
		}
		if p.ID == "p004" {
			found = true
		}
	}
	if !found {
		t.Fatal("favorited problem missing from favorites tab")
	}
}

func TestMySubmissionsTabExcludesUntouched(t *testing.T) {
	s := loaded()
	s.UpdateStatus("p005", model.ProblemSolved)
	s.UpdateFilter(func(f *Filter) {
		f.ActiveTab = TabMySubmissions
	})

	for _, p := range s.FilteredProblems() {
		if s.StatusOf(p.ID).Status == model.ProblemNotStarted {
			t.Fatalf("untouched problem %s in submissions tab", p.ID)
		}
	}
}

func TestSortByDifficulty(t *testing.T) {
	s := loaded()
	order := map[string]int{
		model.DifficultyEasy:   1,
		model.DifficultyMedium: 2,
		model.DifficultyHard:   3,
	}

	s.UpdateFilter(func(f *Filter) {
		f.SortBy = SortDifficultyAsc
	})
	got := s.FilteredProblems()
	for i := 1; i < len(got); i++ {
		if order[got[i-1].Difficulty] > order[got[i].Difficulty] {
			t.Fatalf("not ascending at %d: %s > %s", i, got[i-1].Difficulty, got[i].Difficulty)
		}
	}

	s.UpdateFilter(func(f *Filter) {
		f.SortBy = SortFrequencyDesc
	})
	got = s.FilteredProblems()
	for i := 1; i < len(got); i++ {
		if got[i-1].FrequencyScore < got[i].FrequencyScore {
			t.Fatalf("not frequency-descending at %d", i)
		}
	}
}

func TestSearchMatchesTitleIDAndTopics(t *testing.T) {
	s := loaded()
	all := s.FilteredProblems()
	if len(all) == 0 {
		t.Fatal("no problems loaded")
	}
	target := all[0]

	s.UpdateFilter(func(f *Filter) {
		f.SearchTerm = target.ID
	})
	got := s.FilteredProblems()
	if len(got) == 0 {
		t.Fatalf("search by id %q found nothing", target.ID)
	}
	for _, p := range got {
		if p.ID == target.ID {
			return
		}
	}
	t.Fatalf("target %s missing from search result", target.ID)
}

func TestAvailableTopicsSorted(t *testing.T) {
	s := loaded()
	topics := s.AvailableTopics()
	if len(topics) == 0 {
		t.Fatal("no topics derived")
	}
	for i := 1; i < len(topics); i++ {
		if topics[i-1] > topics[i] {
			t.Fatalf("topics not sorted: %q > %q", topics[i-1], topics[i])
		}
	}
}
