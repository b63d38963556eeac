package model

import "testing"

func TestNewPageSlices(t *testing.T) {
	all := []int{1, 2, 3, 4, 5, 6, 7}

	p := NewPage(all, 2, 3)
	if p.Total != 7 || p.Pages != 3 || p.Current != 2 || p.Size != 3 {
		t.Fatalf("page meta = %+v", p)
	}
	if len(p.Records) != 3 || p.Records[0] != 4 {
		t.Fatalf("records = %v", p.Records)
	}
}

func TestNewPageBeyondLastPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 5, 10)
	if len(p.Records) != 0 {
		t.Fatalf("records = %v, want empty", p.Records)
	}
	if p.Total != 2 || p.Pages != 1 {
		t.Fatalf("page meta = %+v", p)
	}
}

func TestNewPageDefaultsInvalidParams(t *testing.T) {
	p := NewPage([]int{1}, 0, 0)
	if p.Current != 1 || p.Size != 10 {
		t.Fatalf("page meta = %+v", p)
	}
	if len(p.Records) != 1 {
		t.Fatalf("records = %v", p.Records)
	}
}

func TestNewPageCopiesRecords(t *testing.T) {
	all := []string{"a", "b"}
	p := NewPage(all, 1, 10)
	p.Records[0] = "mutated"
	if all[0] != "a" {
		t.Fatal("page shares backing array with input")
	}
}
