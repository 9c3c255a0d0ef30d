package formula

// expander holds the mutable state of one Expand walk.
type expander struct {
	out   []Formula
	stack []*Action // actions from the terminal back to the current one
}

// Expand returns every linear Formula that ends in last and is consistent
// with its provenance DAG. Actions within each Formula are ordered first to
// last.
func Expand(last *Action) []Formula {
	if last == nil {
		return nil
	}
	w := &expander{}
	w.walk(last, 0)

	return w.out
}

func (w *expander) walk(a *Action, difficulty int) {
	difficulty += a.Difficulty()
	w.stack = append(w.stack, a)
	if len(a.Prev) == 0 {
		ordered := make([]*Action, len(w.stack))
		for i, s := range w.stack {
			ordered[len(w.stack)-1-i] = s
		}
		w.out = append(w.out, Formula{Actions: ordered, Difficulty: difficulty})
	}
	for _, p := range a.Prev {
		w.walk(p, difficulty)
	}
	w.stack = w.stack[:len(w.stack)-1]
}
