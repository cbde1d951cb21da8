package pagination

import "fmt"

const (
	DefaultPerPage = 5
	MaxPerPage     = 50
)

// Params holds the sanitized paging inputs for a list request.
type Params struct {
	Page    int
	PerPage int
}

// Sanitize clamps page to >= 1 and perPage to [1, MaxPerPage], applying the
// defaults for zero values.
func Sanitize(page, perPage int) Params {
	if page < 1 {
		page = 1
	}
	if perPage == 0 {
		perPage = DefaultPerPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// LastPage returns the number of the last page for total items, at least 1.
func LastPage(total int64, perPage int) int {
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	return last
}

// Envelope is the paginated list response body. Field set and formulas match
// the envelope the admin client consumes: one-based from/to positions and
// null next/prev URLs at the edges.
type Envelope struct {
	CurrentPage  int         `json:"current_page"`
	Data         interface{} `json:"data"`
	FirstPageURL string      `json:"first_page_url"`
	From         int         `json:"from"`
	LastPage     int         `json:"last_page"`
	LastPageURL  string      `json:"last_page_url"`
	NextPageURL  *string     `json:"next_page_url"`
	Path         string      `json:"path"`
	PerPage      int         `json:"per_page"`
	PrevPageURL  *string     `json:"prev_page_url"`
	To           int         `json:"to"`
	Total        int64       `json:"total"`
}

// NewEnvelope builds the response envelope for one page of results.
// path is the absolute request path without query string.
func NewEnvelope(path string, p Params, total int64, data interface{}) Envelope {
	last := LastPage(total, p.PerPage)

	pageURL := func(page int) string {
		return fmt.Sprintf("%s?page=%d", path, page)
	}

	env := Envelope{
		CurrentPage:  p.Page,
		Data:         data,
		FirstPageURL: pageURL(1),
		From:         p.Offset() + 1,
		LastPage:     last,
		LastPageURL:  pageURL(last),
		Path:         path,
		PerPage:      p.PerPage,
		To:           p.Offset() + p.PerPage,
		Total:        total,
	}
	if int64(env.To) > total {
		env.To = int(total)
	}
	if p.Page < last {
		next := pageURL(p.Page + 1)
		env.NextPageURL = &next
	}
	if p.Page > 1 {
		prev := pageURL(p.Page - 1)
		env.PrevPageURL = &prev
	}
	return env
}
