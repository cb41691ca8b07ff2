package request

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOffset(t *testing.T) {
	tests := []struct {
		query    string
		expected int
	}{
		{"", 0},
		{"?offset=0", 0},
		{"?offset=40", 40},
		{"?offset=-20", 0},
		{"?offset=abc", 0},
		{"?offset=1.5", 0},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/api/board/posts"+tt.query, nil)
		assert.Equal(t, tt.expected, ParseOffset(r), "query=%q", tt.query)
	}
}
