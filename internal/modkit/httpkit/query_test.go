package httpkit

import (
	"net/http/httptest"
	"slices"
	"testing"
)

func TestQueryHelpers(t *testing.T) {
	r := httptest.NewRequest("GET", "/fundis?page=3&min_rating=4.5&verified=true&skills=wiring,%20plumbing,&q=%20mason%20", nil)

	if got := QueryInt(r, "page", 1); got != 3 {
		t.Fatalf("QueryInt = %d", got)
	}
	if got := QueryInt(r, "per_page", 15); got != 15 {
		t.Fatalf("QueryInt default = %d", got)
	}
	if got := QueryFloat(r, "min_rating", 0); got != 4.5 {
		t.Fatalf("QueryFloat = %v", got)
	}
	if got := QueryBool(r, "verified", false); !got {
		t.Fatalf("QueryBool = %v", got)
	}
	if got := QueryStr(r, "q", ""); got != "mason" {
		t.Fatalf("QueryStr = %q", got)
	}
	if got := QueryCSV(r, "skills"); !slices.Equal(got, []string{"wiring", "plumbing"}) {
		t.Fatalf("QueryCSV = %v", got)
	}
	if got := QueryCSV(r, "missing"); got != nil {
		t.Fatalf("absent CSV should be nil, got %v", got)
	}
}

func TestQueryHelpersMalformedFallBack(t *testing.T) {
	r := httptest.NewRequest("GET", "/fundis?page=abc&min_rating=high&verified=maybe", nil)

	if got := QueryInt(r, "page", 1); got != 1 {
		t.Fatalf("malformed int should fall back, got %d", got)
	}
	if got := QueryFloat(r, "min_rating", 0); got != 0 {
		t.Fatalf("malformed float should fall back, got %v", got)
	}
	if got := QueryBool(r, "verified", false); got {
		t.Fatalf("malformed bool should fall back")
	}
}
