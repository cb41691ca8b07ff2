package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBoardStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected BoardPostStatus
	}{
		{"answered", BoardPostAnswered},
		{"open", BoardPostOpen},
		{"", BoardPostOpen},
		{"garbage", BoardPostOpen},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeBoardStatus(tt.input), "input=%q", tt.input)
	}
}
