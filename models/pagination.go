package models

const (
	// DefaultPage is used when the requested page is missing or invalid.
	DefaultPage = 1
	// DefaultPerPage is used when the requested page size is missing or invalid.
	DefaultPerPage = 10
	// MaxPerPage caps the page size.
	MaxPerPage = 100
)

// PageRequest identifies one slice of a listing.
type PageRequest struct {
	Page    int
	PerPage int
}

// Normalize replaces non-positive values with defaults and caps PerPage.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset returns the number of rows preceding the page. It overflows for
// page numbers beyond the listing, so check the page against
// PageMeta.Pages first.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageMeta describes a sliced listing.
type PageMeta struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// NewPageMeta computes the page count as ceil(total/perPage), 0 for an empty
// listing.
func NewPageMeta(req PageRequest, total int) PageMeta {
	pages := 0
	if req.PerPage > 0 {
		pages = (total + req.PerPage - 1) / req.PerPage
	}
	return PageMeta{
		Page:    req.Page,
		PerPage: req.PerPage,
		Total:   total,
		Pages:   pages,
	}
}

// NotePage is the response of the notes listing.
type NotePage struct {
	Data []Note   `json:"data"`
	Meta PageMeta `json:"meta"`
}
