package feed

import (
	"fmt"
	"testing"
)

type rec struct{ id string }

func (r rec) RecordID() string { return r.id }

func recs(prefix string, n int) []rec {
	out := make([]rec, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, rec{id: fmt.Sprintf("%s-%d", prefix, i)})
	}
	return out
}

func boolPtr(b bool) *bool { return &b }

func TestAccumulatorAppendPreservesOrder(t *testing.T) {
	a := NewAccumulator[rec]()
	p1 := recs("p1", 15)
	p2 := recs("p2", 15)

	a.Replace(Page[rec]{Records: p1})
	a.Append(Page[rec]{Records: p2})

	got := a.Records()
	if len(got) != 30 {
		t.Fatalf("len = %d, want 30", len(got))
	}
	for i, r := range append(append([]rec{}, p1...), p2...) {
		if got[i].id != r.id {
			t.Fatalf("index %d: got %q want %q", i, got[i].id, r.id)
		}
	}
}

func TestAccumulatorShortPageEndsPagination(t *testing.T) {
	a := NewAccumulator[rec]()

	a.Replace(Page[rec]{Records: recs("p1", 15)})
	if !a.HasMore() {
		t.Fatalf("full page should imply more")
	}
	if a.Cursor().Next != 2 {
		t.Fatalf("cursor next = %d, want 2", a.Cursor().Next)
	}

	a.Append(Page[rec]{Records: recs("p2", 7)})
	if a.Len() != 22 {
		t.Fatalf("len = %d, want 22", a.Len())
	}
	if a.HasMore() {
		t.Fatalf("7 < 15 should end pagination")
	}
}

func TestAccumulatorExplicitHasMoreWins(t *testing.T) {
	a := NewAccumulator[rec]()

	// full page but the backend says it is the last one
	a.Replace(Page[rec]{Records: recs("p1", 15), HasMore: boolPtr(false)})
	if a.HasMore() {
		t.Fatalf("explicit hasMore=false must be honored")
	}

	// short page but the backend promises another
	b := NewAccumulator[rec]()
	b.Replace(Page[rec]{Records: recs("p1", 3), HasMore: boolPtr(true)})
	if !b.HasMore() {
		t.Fatalf("explicit hasMore=true must be honored")
	}
}

func TestAccumulatorDedupeOnAppend(t *testing.T) {
	a := NewAccumulator[rec]()
	a.Replace(Page[rec]{Records: []rec{{"x"}, {"y"}, {"z"}}})

	// overlapping page: y and z again plus one new record
	a.Append(Page[rec]{Records: []rec{{"y"}, {"z"}, {"w"}}})

	got := a.Records()
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4 after dedupe", len(got))
	}
	want := []string{"x", "y", "z", "w"}
	for i, id := range want {
		if got[i].id != id {
			t.Fatalf("index %d: got %q want %q", i, got[i].id, id)
		}
	}
}

func TestAccumulatorWithoutDedupeKeepsDuplicates(t *testing.T) {
	a := NewAccumulator[rec](WithoutDedupe())
	a.Replace(Page[rec]{Records: []rec{{"x"}, {"y"}}})
	a.Append(Page[rec]{Records: []rec{{"y"}, {"z"}}})
	if a.Len() != 4 {
		t.Fatalf("len = %d, want raw concatenation of 4", a.Len())
	}
}

func TestAccumulatorBeginRejectsOverlap(t *testing.T) {
	a := NewAccumulator[rec]()
	if !a.Begin(PhaseAppending) {
		t.Fatalf("first Begin should claim the slot")
	}
	if a.Begin(PhaseAppending) {
		t.Fatalf("overlapping append must be rejected")
	}
	if a.Begin(PhaseRefreshing) {
		t.Fatalf("refresh during append must be rejected")
	}
	a.Fail("boom")
	if !a.Begin(PhaseRefreshing) {
		t.Fatalf("slot should free up after Fail")
	}
}

func TestAccumulatorFailKeepsContentAndCursor(t *testing.T) {
	a := NewAccumulator[rec]()
	a.Replace(Page[rec]{Records: recs("p1", 15)})
	before := a.Cursor()

	a.Fail("network down")
	if a.Len() != 15 {
		t.Fatalf("failure must not clear fetched records")
	}
	if got := a.Cursor(); got != before {
		t.Fatalf("failure must leave the cursor for retry: %+v != %+v", got, before)
	}
	if a.ErrorMessage() != "network down" {
		t.Fatalf("error message = %q", a.ErrorMessage())
	}
	if a.DisplayError() != "" {
		t.Fatalf("error must not display over existing content")
	}

	a.Reset()
	a.Fail("still down")
	if a.DisplayError() != "still down" {
		t.Fatalf("empty list should display the error")
	}
}
