package cursor

import (
	"net/url"
	"strconv"
)

// ListParams expresses the list options shared by the API's two pagination
// styles: agents paginate with an opaque cursor, the demo cursors resource
// paginates with page numbers. Unset fields are omitted from the query.
type ListParams struct {
	limit  int
	cursor string
	page   int
}

// NewListParams creates an empty set of list parameters.
func NewListParams() *ListParams {
	return &ListParams{}
}

// WithLimit sets the maximum number of items per page.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.limit = limit

	return p
}

// WithCursor sets the opaque pagination cursor (agents listing).
func (p *ListParams) WithCursor(cursor string) *ListParams {
	p.cursor = cursor

	return p
}

// WithPage sets the page number (cursors listing).
func (p *ListParams) WithPage(page int) *ListParams {
	p.page = page

	return p
}

// ToValues converts the parameters to URL query values.
func (p *ListParams) ToValues() url.Values {
	values := url.Values{}

	if p.limit > 0 {
		values.Set("limit", strconv.Itoa(p.limit))
	}

	if p.cursor != "" {
		values.Set("cursor", p.cursor)
	}

	if p.page > 0 {
		values.Set("page", strconv.Itoa(p.page))
	}

	return values
}
