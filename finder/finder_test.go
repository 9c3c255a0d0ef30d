package finder_test

import (
	"slices"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/countdown/finder"
	"github.com/katalvlaran/countdown/formula"
	"github.com/katalvlaran/countdown/operators"
)

func newFinder(t *testing.T) *finder.Finder {
	return finder.New(operators.CountdownRules, finder.WithLogger(zaptest.NewLogger(t)))
}

func strs(fs []formula.Formula) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	sort.Strings(out)

	return out
}

// ------------------------------------------------------------------------
// 1. Concrete cases.
// ------------------------------------------------------------------------

func TestFindAllFormulas_FourTwoSix(t *testing.T) {
	fs, err := newFinder(t).FindAllFormulas([]int{4, 2}, 6)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	require.Equal(t, "4 + 2 = 6\n", fs[0].String())
	require.Equal(t, 20, fs[0].Difficulty)
}

func TestFindAllFormulas_SixThreeTwo(t *testing.T) {
	fs, err := newFinder(t).FindAllFormulas([]int{6, 3}, 2)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	require.Equal(t, operators.Divide, fs[0].Actions[0].Op)
	require.Equal(t, 6000, fs[0].Difficulty)
}

func TestFindAllFormulas_FiveFiveTen(t *testing.T) {
	fs, err := newFinder(t).FindAllFormulas([]int{5, 5}, 10)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	require.Equal(t, "5 + 5 = 10\n", fs[0].String())
	require.Equal(t, 50, fs[0].Difficulty)
}

func TestFindAllFormulas_OneTwoThreeSix(t *testing.T) {
	fs, err := newFinder(t).FindAllFormulas([]int{1, 2, 3}, 6)
	require.NoError(t, err)
	require.Equal(t, []string{
		"3 + 2 = 5\n5 + 1 = 6\n",
		"3 × 2 = 6\n",
		"3 × 2 = 6\n6 × 1 = 6\n",
		"3 × 2 = 6\n6 ÷ 1 = 6\n",
	}, strs(fs))

	byString := make(map[string]int)
	for _, f := range fs {
		byString[f.String()] = f.Difficulty
	}
	require.Equal(t, 30, byString["3 + 2 = 5\n5 + 1 = 6\n"])
	require.Equal(t, 1500, byString["3 × 2 = 6\n"])
	require.Equal(t, 3000, byString["3 × 2 = 6\n6 × 1 = 6\n"])
	require.Equal(t, 6500, byString["3 × 2 = 6\n6 ÷ 1 = 6\n"])
}

func TestFindAllNearest_TargetIsInput(t *testing.T) {
	for _, inputs := range [][]int{{7}, {1, 7}, {100, 75, 50, 25, 6, 7}} {
		fs, err := newFinder(t).FindAllNearest(inputs, 7, finder.WithMaxDist(0))
		require.NoError(t, err)
		require.Len(t, fs, 1)
		require.Equal(t, 0, fs[0].Len())
		require.Equal(t, 0, fs[0].Difficulty)
	}
}

func TestFindAllNearest_NoInputs(t *testing.T) {
	_, err := newFinder(t).FindAllNearest(nil, 10)
	require.ErrorIs(t, err, finder.ErrNoInputs)
}

func TestFindAllNearest_Nearest(t *testing.T) {
	f := newFinder(t)

	fs, err := f.FindAllNearest([]int{4, 2}, 100)
	require.NoError(t, err)
	require.Equal(t, []string{"4 × 2 = 8\n"}, strs(fs))

	fs, err = f.FindAllNearest([]int{4, 2}, 100, finder.WithRangeMax(7))
	require.NoError(t, err)
	require.Equal(t, []string{"4 + 2 = 6\n"}, strs(fs))

	fs, err = f.FindAllNearest([]int{4, 2}, 100, finder.WithMaxDist(10))
	require.NoError(t, err)
	require.Empty(t, fs, "nothing within distance is a normal empty result")

	fs, err = f.FindAllNearest([]int{4, 2}, 1, finder.WithRangeMin(3))
	require.NoError(t, err)
	require.Equal(t, []string{"4 + 2 = 6\n"}, strs(fs))
}

func TestFindAllNearest_TiesAccumulate(t *testing.T) {
	// 6 and 8 are both at distance 1 from 7.
	fs, err := newFinder(t).FindAllNearest([]int{4, 2}, 7)
	require.NoError(t, err)
	require.Equal(t, []string{"4 + 2 = 6\n", "4 × 2 = 8\n"}, strs(fs))

	// A strictly closer value replaces the tied ones.
	fs, err = newFinder(t).FindAllNearest([]int{10, 3}, 6, finder.WithRangeMax(20))
	require.NoError(t, err)
	require.Equal(t, []string{"10 − 3 = 7\n"}, strs(fs))
}

func TestFindAllFormulas_Unreachable(t *testing.T) {
	fs, err := newFinder(t).FindAllFormulas([]int{1, 1}, 999)
	require.NoError(t, err)
	require.Empty(t, fs)
}

func TestWithMaxDist_NegativePanics(t *testing.T) {
	require.PanicsWithValue(t, finder.ErrBadMaxDist.Error(), func() {
		_, _ = newFinder(t).FindAllNearest([]int{1, 2}, 3, finder.WithMaxDist(-1))
	})
}

// ------------------------------------------------------------------------
// 2. Properties of exact searches.
// ------------------------------------------------------------------------

// replay checks that every action consumes values available at that point.
func replay(t *testing.T, inputs []int, f formula.Formula) {
	t.Helper()
	avail := slices.Clone(inputs)
	take := func(v int) {
		i := slices.Index(avail, v)
		require.GreaterOrEqual(t, i, 0, "value %d unavailable in %v", v, f)
		avail = slices.Delete(avail, i, i+1)
	}
	sum := 0
	for _, a := range f.Actions {
		take(a.A)
		take(a.B)
		avail = append(avail, a.Result())
		sum += a.Op.Difficulty(a.A, a.B)
	}
	require.Equal(t, sum, f.Difficulty, "difficulty is the sum of step costs")
}

func checkExact(t *testing.T, inputs []int, target int, fs []formula.Formula) {
	t.Helper()
	keys := make(map[string]bool)
	for _, f := range fs {
		r, ok := f.Result()
		require.True(t, ok)
		require.Equal(t, target, r)
		require.LessOrEqual(t, f.Len(), len(inputs)-1)
		require.True(t, f.IsMinimal(inputs))
		replay(t, inputs, f)
		require.False(t, keys[f.Key()], "duplicate expression %q", f.String())
		keys[f.Key()] = true
	}
}

func TestFindAllFormulas_Properties(t *testing.T) {
	cases := []struct {
		inputs []int
		target int
	}{
		{[]int{1, 2, 3}, 6},
		{[]int{3, 5, 7}, 26},
		{[]int{2, 6, 30}, 90},
		{[]int{25, 50, 4, 3}, 203},
		{[]int{10, 9, 8, 7}, 24},
	}
	f := newFinder(t)
	for _, c := range cases {
		fs, err := f.FindAllFormulas(c.inputs, c.target)
		require.NoError(t, err)
		require.NotEmpty(t, fs, "inputs %v target %d", c.inputs, c.target)
		checkExact(t, c.inputs, c.target, fs)
	}
}

func TestFindAllFormulas_ClassicGame(t *testing.T) {
	if testing.Short() {
		t.Skip("full six-number search")
	}
	inputs := []int{100, 75, 50, 25, 6, 3}
	fs, err := finder.New(nil).FindAllFormulas(inputs, 952)
	require.NoError(t, err)
	require.NotEmpty(t, fs)
	checkExact(t, inputs, 952, fs)
}

// ------------------------------------------------------------------------
// 3. Reference comparison: brute-force enumeration, then normalization of
//    associative/commutative chains, must yield the same expression classes,
//    each reported by exactly one formula.
// ------------------------------------------------------------------------

type node struct {
	val  int
	op   operators.Kind
	l, r *node
}

func collect(n *node, chain operators.Chain, inverted bool, pos, neg *[]string) {
	if n.op == operators.None || n.op.Chain() != chain {
		if inverted {
			*neg = append(*neg, normalize(n))
		} else {
			*pos = append(*pos, normalize(n))
		}
		return
	}
	collect(n.l, chain, inverted, pos, neg)
	flip := n.op == operators.Subtract || n.op == operators.Divide
	collect(n.r, chain, inverted != flip, pos, neg)
}

func normalize(n *node) string {
	if n.op == operators.None {
		return strconv.Itoa(n.val)
	}
	var pos, neg []string
	collect(n, n.op.Chain(), false, &pos, &neg)
	sort.Strings(pos)
	sort.Strings(neg)
	sym := "+"
	if n.op.Chain() == operators.ChainMultiplication {
		sym = "×"
	}

	return sym + "[" + strings.Join(pos, ",") + "|" + strings.Join(neg, ",") + "]"
}

func bruteForce(inputs []int, target int) map[string]bool {
	out := make(map[string]bool)
	var rec func(nodes []*node)
	rec = func(nodes []*node) {
		for i, x := range nodes {
			for j, y := range nodes {
				if i == j {
					continue
				}
				for _, op := range operators.CountdownRules {
					if !op.Supports(x.val, y.val) {
						continue
					}
					n := &node{val: op.Apply(x.val, y.val), op: op, l: x, r: y}
					if n.val == target {
						out[normalize(n)] = true
					}
					rest := []*node{n}
					for k, z := range nodes {
						if k != i && k != j {
							rest = append(rest, z)
						}
					}
					rec(rest)
				}
			}
		}
	}
	leaves := make([]*node, len(inputs))
	for i, v := range inputs {
		leaves[i] = &node{val: v}
	}
	rec(leaves)

	return out
}

// tree rebuilds the expression of f. Inputs are chosen so that no value is
// ambiguous during the rebuild.
func tree(inputs []int, f formula.Formula) *node {
	nodes := make([]*node, len(inputs))
	for i, v := range inputs {
		nodes[i] = &node{val: v}
	}
	pick := func(v int) *node {
		for i, n := range nodes {
			if n.val == v {
				nodes = slices.Delete(nodes, i, i+1)
				return n
			}
		}
		return nil
	}
	var last *node
	for _, a := range f.Actions {
		l := pick(a.A)
		r := pick(a.B)
		last = &node{val: a.Result(), op: a.Op, l: l, r: r}
		nodes = append(nodes, last)
	}

	return last
}

func TestFindAllFormulas_MatchesBruteForce(t *testing.T) {
	cases := []struct {
		inputs []int
		target int
	}{
		{[]int{3, 5, 7}, 26},
		{[]int{3, 5, 7}, 8},
		{[]int{2, 5, 11}, 12},
		{[]int{4, 6, 9}, 30},
		{[]int{2, 8, 12}, 10},
		{[]int{2, 6, 30}, 90},
		{[]int{2, 6, 30}, 5},
	}
	f := newFinder(t)
	for _, c := range cases {
		want := bruteForce(c.inputs, c.target)
		require.NotEmpty(t, want, "bad fixture %v → %d", c.inputs, c.target)

		fs, err := f.FindAllFormulas(c.inputs, c.target)
		require.NoError(t, err)

		got := make(map[string]bool)
		seen := make(map[string]int)
		for _, fm := range fs {
			class := normalize(tree(c.inputs, fm))
			got[class] = true
			seen[class]++
		}
		assert.Equal(t, want, got, "inputs %v target %d", c.inputs, c.target)
		for class, n := range seen {
			assert.Equal(t, 1, n, "inputs %v target %d: class %s found %d times", c.inputs, c.target, class, n)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Target frontier.
// ------------------------------------------------------------------------

func TestFindTargets_OneTwoThree(t *testing.T) {
	got := newFinder(t).FindTargets([]int{1, 2, 3}, finder.WithMin(1), finder.WithMax(10))
	require.Equal(t, []finder.Target{
		{Value: 1, Difficulty: 0},
		{Value: 2, Difficulty: 0},
		{Value: 3, Difficulty: 0},
		{Value: 4, Difficulty: 10},
		{Value: 5, Difficulty: 20},
		{Value: 6, Difficulty: 30},
		{Value: 7, Difficulty: 1510},
		{Value: 8, Difficulty: 910},
		{Value: 9, Difficulty: 2410},
	}, got)
}

func TestFindTargets_RangeExcludesInputs(t *testing.T) {
	got := newFinder(t).FindTargets([]int{1, 2, 3}, finder.WithMin(5), finder.WithMax(6))
	require.Equal(t, []finder.Target{{Value: 5, Difficulty: 20}, {Value: 6, Difficulty: 30}}, got)

	require.Empty(t, newFinder(t).FindTargets(nil))
}

func TestFindTargets_AgreesWithSolver(t *testing.T) {
	// Every reported target is solvable exactly, at no less than its
	// minimum difficulty.
	inputs := []int{25, 4, 3, 2}
	f := newFinder(t)
	targets := f.FindTargets(inputs, finder.WithMin(101), finder.WithMax(200))
	require.NotEmpty(t, targets)
	for _, tg := range targets {
		fs, err := f.FindAllFormulas(inputs, tg.Value)
		require.NoError(t, err)
		require.NotEmpty(t, fs, "target %d", tg.Value)
		easiest := fs[0].Difficulty
		for _, fm := range fs {
			easiest = min(easiest, fm.Difficulty)
		}
		require.GreaterOrEqual(t, easiest, tg.Difficulty, "target %d", tg.Value)
	}
}
