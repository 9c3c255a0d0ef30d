package operators

import "sync"

// memoSize bounds the values whose complexity is cached.
const memoSize = 10000

var (
	memoOnce sync.Once
	addMemo  [memoSize]int
	mulMemo  [memoSize]int
)

func buildMemo() {
	for v := 0; v < memoSize; v++ {
		addMemo[v] = addComplexity(v)
		mulMemo[v] = mulComplexity(v)
	}
}

// AddComplexity scores how hard v is to add or subtract mentally: one point
// per trailing zero, plus ten per unit of what remains.
func AddComplexity(v int) int {
	if v >= 0 && v < memoSize {
		memoOnce.Do(buildMemo)
		return addMemo[v]
	}

	return addComplexity(v)
}

// MulComplexity scores how hard v is to multiply or divide by mentally.
func MulComplexity(v int) int {
	if v >= 0 && v < memoSize {
		memoOnce.Do(buildMemo)
		return mulMemo[v]
	}

	return mulComplexity(v)
}

func addComplexity(v int) int {
	c := 0
	for v != 0 && v%10 == 0 {
		v /= 10
		c++
	}

	return c + v*10
}

func mulComplexity(v int) int {
	c := 0
	for v != 0 && v%10 == 0 {
		v /= 10
		c += 2
	}
	switch v {
	case 1:
	case 2, 5:
		c += 10
	case 4, 11:
		c += 20
	case 3, 8:
		c += 40
	case 6, 12:
		c += 50
	case 9:
		c += 60
	case 7:
		c += 100
	default:
		c += v * 20
	}

	return c
}
