package dto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

// Page size bounds for list endpoints.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var (
	// ErrInvalidCursor means the cursor is not one this service issued.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrNoCursor marks a first-page request. It is a signal, not a failure.
	ErrNoCursor = errors.New("no cursor provided")
)

// PaginationRequest binds the limit and cursor query parameters.
type PaginationRequest struct {
	Cursor string `form:"cursor"` // opaque, from a previous NextCursor
	Limit  int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
}

// GetLimit returns Limit clamped to [1, MaxLimit], or DefaultLimit when unset.
func (p *PaginationRequest) GetLimit() int {
	switch {
	case p.Limit <= 0:
		return DefaultLimit
	case p.Limit > MaxLimit:
		return MaxLimit
	default:
		return p.Limit
	}
}

// DecodeCursor decodes p.Cursor. See the package-level DecodeCursor.
func (p *PaginationRequest) DecodeCursor() (*CursorData, error) {
	return DecodeCursor(p.Cursor)
}

// PaginatedResponse is one page of a cursor-paginated listing.
type PaginatedResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// NewPaginatedResponse builds a page from up to limit+1 items. The extra item
// only signals that another page exists; it is trimmed. The next cursor points
// at the last item kept and is omitted when cursorFor is nil.
func NewPaginatedResponse[T any](items []T, limit int, cursorFor func(T) *CursorData) *PaginatedResponse[T] {
	resp := &PaginatedResponse[T]{Items: items}

	if len(items) <= limit {
		return resp
	}

	resp.Items = items[:limit]
	resp.HasMore = true

	if cursorFor != nil && limit > 0 {
		resp.NextCursor = EncodeCursor(cursorFor(resp.Items[limit-1]))
	}

	return resp
}

// CursorData is the position a cursor encodes: the sort field, the sort value
// of the last item returned, and an ID for ties.
type CursorData struct {
	Field string `json:"f"`
	Value string `json:"v"`
	ID    string `json:"id"`
}

// NewCursor returns the cursor for an item.
func NewCursor(field, value, id string) *CursorData {
	return &CursorData{Field: field, Value: value, ID: id}
}

// EncodeCursor returns data as URL-safe base64 JSON, or "" for nil.
func EncodeCursor(data *CursorData) string {
	if data == nil {
		return ""
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return ""
	}

	return base64.URLEncoding.EncodeToString(raw)
}

// DecodeCursor reverses EncodeCursor. An empty string yields ErrNoCursor and
// anything malformed yields ErrInvalidCursor.
func DecodeCursor(encoded string) (*CursorData, error) {
	if encoded == "" {
		return nil, ErrNoCursor
	}

	raw, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	var data CursorData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, ErrInvalidCursor
	}

	return &data, nil
}
