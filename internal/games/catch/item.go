package catch

import (
	"unicode/utf8"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// Category is one kind of falling item. Points are positive for good items
// and negative for bad ones.
type Category struct {
	Name   string
	Glyph  rune
	Color  core.Color
	Points int
}

// Good reports whether catching the item adds points (and missing it costs a life).
func (c Category) Good() bool {
	return c.Points > 0
}

// NewCatalogue converts configured categories into the fixed catalogue used by a game.
func NewCatalogue(cats []config.CatchCategory) []Category {
	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		glyph := '*'
		if r, _ := utf8.DecodeRuneInString(c.Glyph); r != utf8.RuneError {
			glyph = r
		}
		out = append(out, Category{
			Name:   c.Name,
			Glyph:  glyph,
			Color:  core.ParseColor(c.Color),
			Points: c.Points,
		})
	}
	return out
}

// Item is one falling entity. X and FallSpeed are fixed at spawn; Y only grows.
type Item struct {
	ID        int
	X         float64
	Y         float64
	Category  Category
	FallSpeed float64
}

// Points returns the item's point value.
func (it Item) Points() int {
	return it.Category.Points
}
