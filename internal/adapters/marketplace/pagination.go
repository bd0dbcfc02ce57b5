package marketplace

import "encoding/json"

// Pagination is the normalized pagination block. The observed backend is
// inconsistent about key naming: the fundis endpoints emit snake_case
// (current_page/last_page), the jobs endpoints emit camelCase plus an
// explicit hasNextPage flag. All known variants are accepted here, in a
// fixed priority order, so the inconsistency never leaks past this type
type Pagination struct {
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
	hasNext     *bool
}

// paginationWire lists every key variant we have seen in the wild.
// snake_case wins over camelCase when both are present
type paginationWire struct {
	CurrentPageSnake *int  `json:"current_page"`
	CurrentPageCamel *int  `json:"currentPage"`
	LastPageSnake    *int  `json:"last_page"`
	LastPageCamel    *int  `json:"lastPage"`
	PerPageSnake     *int  `json:"per_page"`
	PerPageCamel     *int  `json:"perPage"`
	TotalSnake       *int  `json:"total"`
	TotalCamel       *int  `json:"totalItems"`
	HasNextSnake     *bool `json:"has_next_page"`
	HasNextCamel     *bool `json:"hasNextPage"`
}

func pick(snake, camel *int) int {
	if snake != nil {
		return *snake
	}
	if camel != nil {
		return *camel
	}
	return 0
}

// UnmarshalJSON implements the tolerant decode
func (p *Pagination) UnmarshalJSON(b []byte) error {
	var w paginationWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	p.CurrentPage = pick(w.CurrentPageSnake, w.CurrentPageCamel)
	p.LastPage = pick(w.LastPageSnake, w.LastPageCamel)
	p.PerPage = pick(w.PerPageSnake, w.PerPageCamel)
	p.Total = pick(w.TotalSnake, w.TotalCamel)
	if w.HasNextSnake != nil {
		p.hasNext = w.HasNextSnake
	} else if w.HasNextCamel != nil {
		p.hasNext = w.HasNextCamel
	}
	return nil
}

// HasMore returns the backend's explicit more-pages signal when it gave
// one: hasNextPage directly, or current_page < last_page when both pages
// are reported. Nil means the endpoint said nothing and the caller falls
// back to short-page detection
func (p Pagination) HasMore() *bool {
	if p.hasNext != nil {
		return p.hasNext
	}
	if p.CurrentPage > 0 && p.LastPage > 0 {
		more := p.CurrentPage < p.LastPage
		return &more
	}
	return nil
}
