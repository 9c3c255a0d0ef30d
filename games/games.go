package games

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/countdown/finder"
)

// Choices calls fn once for every distinct count-subset of selection, in
// ascending order. Each slice passed to fn is freshly allocated and sorted.
// A count larger than the selection yields nothing; count 0 yields one
// empty game.
func Choices(selection []int, count int, fn func(game []int)) error {
	if count < 0 {
		return fmt.Errorf("%w: %d", ErrBadCount, count)
	}
	vs := slices.Clone(selection)
	slices.Sort(vs)
	c := chooser{values: vs, count: count, buf: make([]int, count), fn: fn}
	c.choose(0, 0)

	return nil
}

// chooser holds the per-call state of Choices.
type chooser struct {
	values []int
	count  int
	buf    []int
	fn     func([]int)
}

func (c *chooser) choose(begin, pos int) {
	if pos == c.count {
		c.fn(slices.Clone(c.buf))
		return
	}
	for i := begin; i < len(c.values); i++ {
		// equal neighbours would repeat the same game
		if i > begin && c.values[i] == c.values[i-1] {
			continue
		}
		c.buf[pos] = c.values[i]
		c.choose(i+1, pos+1)
	}
}

// All collects Choices into a slice.
func All(selection []int, count int) ([][]int, error) {
	var out [][]int
	err := Choices(selection, count, func(g []int) { out = append(out, g) })

	return out, err
}

// Deal draws a game at random. Each 'B' in pattern takes one number from
// big and each 's' one from small, without replacement. The result is
// sorted in descending order, the way games are usually written.
func Deal(r *rand.Rand, pattern string, big, small []int) ([]int, error) {
	pools := map[rune][]int{Big: slices.Clone(big), Small: slices.Clone(small)}
	out := make([]int, 0, len(pattern))
	for _, ch := range pattern {
		pool, ok := pools[ch]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}
		if len(pool) == 0 {
			return nil, fmt.Errorf("%w: pattern %q", ErrExhausted, pattern)
		}
		i := r.IntN(len(pool))
		out = append(out, pool[i])
		pools[ch] = slices.Delete(pool, i, i+1)
	}
	slices.SortFunc(out, func(a, b int) int { return b - a })

	return out, nil
}

// PickTarget returns a uniformly random entry of targets. ok is false when
// targets is empty.
func PickTarget(r *rand.Rand, targets []finder.Target) (t finder.Target, ok bool) {
	if len(targets) == 0 {
		return finder.Target{}, false
	}

	return targets[r.IntN(len(targets))], true
}
