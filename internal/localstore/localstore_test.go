package localstore

import (
	"errors"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func TestStringRoundTrip(t *testing.T) {
	s := openTest(t)

	if err := s.SetString(KeyAuthToken, "token-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.GetString(KeyAuthToken)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "token-1" {
		t.Fatalf("got %q", got)
	}

	// 覆盖写
	if err := s.SetString(KeyAuthToken, "token-2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = s.GetString(KeyAuthToken)
	if got != "token-2" {
		t.Fatalf("after overwrite got %q", got)
	}
}

func TestMissingKeyReturnsErrNotFound(t *testing.T) {
	s := openTest(t)

	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteRemovesKey(t *testing.T) {
	s := openTest(t)

	if err := s.SetString(KeyTheme, "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Delete(KeyTheme); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetString(KeyTheme); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	s := openTest(t)

	type prefs struct {
		Theme string   `json:"theme"`
		Tags  []string `json:"tags"`
	}
	want := prefs{Theme: "dark", Tags: []string{"a", "b"}}

	if err := s.SetJSON(KeyPreferences, want); err != nil {
		t.Fatalf("set json: %v", err)
	}
	var got prefs
	if err := s.GetJSON(KeyPreferences, &got); err != nil {
		t.Fatalf("get json: %v", err)
	}
	if got.Theme != want.Theme || len(got.Tags) != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestGetJSONOnCorruptValue(t *testing.T) {
	s := openTest(t)

	if err := s.SetString(KeyUserData, "not-json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	var out map[string]any
	if err := s.GetJSON(KeyUserData, &out); err == nil {
		t.Fatal("expected decode error")
	}
}
