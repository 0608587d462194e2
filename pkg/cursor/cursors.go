package cursor

import "time"

// The cursors resource is a small demo CRUD API that ships with the API
// documentation tooling. It has no relation to background agents but is
// served by the same endpoint, so the client exposes it alongside them.

// CursorType enumerates the demo cursor shapes.
type CursorType string

// Demo cursor types.
const (
	CursorTypePointer   CursorType = "pointer"
	CursorTypeText      CursorType = "text"
	CursorTypeCrosshair CursorType = "crosshair"
)

// Cursor represents a demo cursor resource.
type Cursor struct {
	ID        string     `json:"id"        yaml:"id"`
	Name      string     `json:"name"      yaml:"name"`
	Type      CursorType `json:"type"      yaml:"type"`
	Position  Position   `json:"position"  yaml:"position"`
	Active    bool       `json:"active"    yaml:"active"`
	CreatedAt time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" yaml:"updatedAt"`
}

// Position is a 2D screen coordinate.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// CreateCursorRequest represents a request to create a demo cursor.
type CreateCursorRequest struct {
	Name     string     `json:"name"     yaml:"name"`
	Type     CursorType `json:"type"     yaml:"type"`
	Position Position   `json:"position" yaml:"position"`
	Active   bool       `json:"active"   yaml:"active"`
}

// UpdateCursorRequest represents a request to update a demo cursor.
// Nil fields are left unchanged.
type UpdateCursorRequest struct {
	Name     *string   `json:"name,omitempty"     yaml:"name,omitempty"`
	Position *Position `json:"position,omitempty" yaml:"position,omitempty"`
	Active   *bool     `json:"active,omitempty"   yaml:"active,omitempty"`
}

// MoveCursorRequest moves a demo cursor to a new position.
type MoveCursorRequest struct {
	Position Position `json:"position" yaml:"position"`
}

// Pagination is the page-based pagination block of the cursors resource.
type Pagination struct {
	Page       int `json:"page"       yaml:"page"`
	Limit      int `json:"limit"      yaml:"limit"`
	Total      int `json:"total"      yaml:"total"`
	TotalPages int `json:"totalPages" yaml:"totalPages"`
}

// CursorList is a page of demo cursors.
type CursorList struct {
	Cursors    []Cursor   `json:"cursors"    yaml:"cursors"`
	Pagination Pagination `json:"pagination" yaml:"pagination"`
}
