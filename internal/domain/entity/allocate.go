package entity

import (
	"math"
	"sort"
)

const weightEpsilon = 1e-9

// Distribute splits total cells among weights using largest-remainder
// rounding. Every share gets the floor of its exact quota, then the cells
// left over go one each to the largest fractional remainders. Equal
// remainders favour the lower index. The result always sums to total.
//
// Non-positive totals yield all zeros. When the weights sum to zero the
// cells are split evenly.
func Distribute(total int, weights []float64) []int {
	sizes := make([]int, len(weights))
	if len(weights) == 0 || total <= 0 {
		return sizes
	}

	sum := 0.0
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}

	type remainder struct {
		index int
		frac  float64
	}
	rems := make([]remainder, len(weights))
	assigned := 0
	for i, w := range weights {
		var exact float64
		switch {
		case sum <= 0:
			exact = float64(total) / float64(len(weights))
		case w > 0:
			exact = float64(total) * w / sum
		}
		whole := math.Floor(exact + weightEpsilon)
		sizes[i] = int(whole)
		assigned += sizes[i]
		rems[i] = remainder{index: i, frac: exact - whole}
	}

	sort.SliceStable(rems, func(a, b int) bool {
		if math.Abs(rems[a].frac-rems[b].frac) <= weightEpsilon {
			return rems[a].index < rems[b].index
		}
		return rems[a].frac > rems[b].frac
	})

	left := total - assigned
	for i := 0; left > 0; i = (i + 1) % len(rems) {
		sizes[rems[i].index]++
		left--
	}
	// Float noise can only overshoot by a cell or two; take it back from the
	// smallest remainders.
	for i := len(rems) - 1; left < 0; i-- {
		if i < 0 {
			i = len(rems) - 1
		}
		if sizes[rems[i].index] > 0 {
			sizes[rems[i].index]--
			left++
		}
	}
	return sizes
}

// EnforceMinimum raises every sizes[i] to at least mins[i] by taking cells
// from the entries with the most slack. Ties take from the later entry, so
// leading panes keep their size. The total is preserved. When the total
// cannot cover every minimum, sizes is returned unchanged.
func EnforceMinimum(sizes, mins []int) []int {
	if len(sizes) == 0 || len(mins) != len(sizes) {
		return sizes
	}
	total, need := 0, 0
	for i := range sizes {
		total += sizes[i]
		need += mins[i]
	}
	if total < need {
		return sizes
	}

	out := append([]int(nil), sizes...)
	for i := range out {
		for out[i] < mins[i] {
			donor := -1
			for j := range out {
				if j == i || out[j] <= mins[j] {
					continue
				}
				if donor < 0 || out[j]-mins[j] >= out[donor]-mins[donor] {
					donor = j
				}
			}
			if donor < 0 {
				return sizes
			}
			take := min(mins[i]-out[i], out[donor]-mins[donor])
			out[donor] -= take
			out[i] += take
		}
	}
	return out
}
