package dto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses default", 0, DefaultLimit},
		{"negative uses default", -5, DefaultLimit},
		{"within range", 2, 2},
		{"at max", MaxLimit, MaxLimit},
		{"above max is clamped", MaxLimit + 1, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := PaginationRequest{Limit: tt.limit}
			assert.Equal(t, tt.want, req.GetLimit())
		})
	}
}

func TestPaginationRequestDecodeCursor(t *testing.T) {
	t.Run("empty cursor is the first page", func(t *testing.T) {
		req := PaginationRequest{}

		_, err := req.DecodeCursor()
		assert.ErrorIs(t, err, ErrNoCursor)
	})

	t.Run("round trip", func(t *testing.T) {
		req := PaginationRequest{Cursor: EncodeCursor(NewCursor("name", "pyhello", "pyhello"))}

		data, err := req.DecodeCursor()
		require.NoError(t, err)
		assert.Equal(t, &CursorData{Field: "name", Value: "pyhello", ID: "pyhello"}, data)
	})

	t.Run("not base64", func(t *testing.T) {
		req := PaginationRequest{Cursor: "%%%"}

		_, err := req.DecodeCursor()
		assert.ErrorIs(t, err, ErrInvalidCursor)
	})

	t.Run("base64 but not json", func(t *testing.T) {
		req := PaginationRequest{Cursor: base64.URLEncoding.EncodeToString([]byte("pyhello"))}

		_, err := req.DecodeCursor()
		assert.ErrorIs(t, err, ErrInvalidCursor)
	})
}

func TestNewPaginatedResponse(t *testing.T) {
	byName := func(s string) *CursorData { return NewCursor("name", s, s) }

	t.Run("fewer items than limit", func(t *testing.T) {
		resp := NewPaginatedResponse([]string{"pyhello", "pystatmath"}, 5, byName)

		assert.Equal(t, []string{"pyhello", "pystatmath"}, resp.Items)
		assert.False(t, resp.HasMore)
		assert.Empty(t, resp.NextCursor)
	})

	t.Run("limit plus one trims and sets cursor", func(t *testing.T) {
		resp := NewPaginatedResponse([]string{"a", "b", "c"}, 2, byName)

		assert.Equal(t, []string{"a", "b"}, resp.Items)
		assert.True(t, resp.HasMore)

		data, err := DecodeCursor(resp.NextCursor)
		require.NoError(t, err)
		assert.Equal(t, "b", data.Value)
	})

	t.Run("nil cursor builder", func(t *testing.T) {
		resp := NewPaginatedResponse([]string{"a", "b", "c"}, 2, nil)

		assert.True(t, resp.HasMore)
		assert.Empty(t, resp.NextCursor)
	})
}

func TestEncodeCursor_Nil(t *testing.T) {
	assert.Empty(t, EncodeCursor(nil))
}

func TestDecodeCursor_Empty(t *testing.T) {
	_, err := DecodeCursor("")
	assert.ErrorIs(t, err, ErrNoCursor)
}

func TestNewPaginatedResponse_EmptyCatalog(t *testing.T) {
	resp := NewPaginatedResponse([]string{}, DefaultLimit, nil)

	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.False(t, resp.HasMore)
}
