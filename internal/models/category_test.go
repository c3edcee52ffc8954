package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"GAMEPLAY", "GAMEPLAY", true},
		{"gameplay", "GAMEPLAY", true},
		{"  world ", "WORLD", true},
		{"Story", "STORY", true},
		{"multiplayer", "MULTIPLAYER", true},
		{"mechanics", "MECHANICS", true},
		{"graphics", "GRAPHICS", true},
		{"bug", "BUG", false},
		{"", "", false},
		{"all", "ALL", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeCategory(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(1, 2, 4)
	assert.Equal(t, 2, p.Pages)

	p = NewPagination(1, 20, 4)
	assert.Equal(t, 1, p.Pages)

	p = NewPagination(1, 3, 4)
	assert.Equal(t, 2, p.Pages)

	p = NewPagination(1, 20, 0)
	assert.Equal(t, 0, p.Pages)

	// limit 0 must not divide by zero
	p = NewPagination(1, 0, 10)
	assert.Equal(t, 0, p.Pages)
}
