package models

import "strings"

// Feedback categories. The store keeps the upper-case form only;
// lower-case tokens from clients are normalized at the boundary.
const (
	CategoryGameplay    = "GAMEPLAY"
	CategoryStory       = "STORY"
	CategoryGraphics    = "GRAPHICS"
	CategoryMultiplayer = "MULTIPLAYER"
	CategoryMechanics   = "MECHANICS"
	CategoryWorld       = "WORLD"
)

// CategoryAll is the sentinel filter value meaning "no category filter".
const CategoryAll = "all"

var categories = map[string]struct{}{
	CategoryGameplay:    {},
	CategoryStory:       {},
	CategoryGraphics:    {},
	CategoryMultiplayer: {},
	CategoryMechanics:   {},
	CategoryWorld:       {},
}

// NormalizeCategory upper-cases a category token and reports whether it
// belongs to the enum.
func NormalizeCategory(s string) (string, bool) {
	c := strings.ToUpper(strings.TrimSpace(s))
	_, ok := categories[c]
	return c, ok
}
