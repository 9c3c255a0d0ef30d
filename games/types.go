package games

import "errors"

var (
	// ErrBadCount indicates a negative game size.
	ErrBadCount = errors.New("games: count must be non-negative")

	// ErrBadPattern indicates a deal pattern containing something other
	// than 'B' and 's'.
	ErrBadPattern = errors.New("games: pattern may only contain 'B' and 's'")

	// ErrExhausted indicates a pattern asking for more numbers than a pool holds.
	ErrExhausted = errors.New("games: not enough numbers left to deal")
)

// DefaultCount is the number of sources in a standard game.
const DefaultCount = 6

// Pattern letters.
const (
	Big   = 'B'
	Small = 's'
)

// DefaultBig returns the standard big numbers.
func DefaultBig() []int { return []int{100, 75, 50, 25} }

// DefaultSmall returns the standard small numbers, 1 to 9 twice each.
func DefaultSmall() []int {
	out := make([]int, 0, 18)
	for v := 1; v <= 9; v++ {
		out = append(out, v, v)
	}

	return out
}

// DefaultSelection returns DefaultBig followed by DefaultSmall.
func DefaultSelection() []int {
	return append(DefaultBig(), DefaultSmall()...)
}

// Preset is a named deal pattern.
type Preset struct {
	Name    string `yaml:"name" json:"name"`
	Pattern string `yaml:"pattern" json:"pattern"`
}

// DefaultPresets returns the standard deal patterns.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "One from the top", Pattern: "Bsssss"},
		{Name: "Two big, four small", Pattern: "BBssss"},
		{Name: "Three big, three small", Pattern: "BBBsss"},
		{Name: "Four big ones", Pattern: "BBBBss"},
		{Name: "Six small", Pattern: "ssssss"},
	}
}
