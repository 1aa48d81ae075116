package entity

import (
	"slices"
	"testing"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		weights []float64
		want    []int
	}{
		{name: "even halves", total: 24, weights: []float64{0.5, 0.5}, want: []int{12, 12}},
		{name: "odd halves favour first", total: 25, weights: []float64{0.5, 0.5}, want: []int{13, 12}},
		{name: "three equal in 80", total: 80, weights: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, want: []int{27, 27, 26}},
		{name: "three equal in 10", total: 10, weights: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}, want: []int{4, 3, 3}},
		{name: "largest remainder wins", total: 10, weights: []float64{0.12, 0.48, 0.40}, want: []int{1, 5, 4}},
		{name: "unnormalized weights", total: 9, weights: []float64{1, 2}, want: []int{3, 6}},
		{name: "zero weights split evenly", total: 7, weights: []float64{0, 0}, want: []int{4, 3}},
		{name: "zero total", total: 0, weights: []float64{0.5, 0.5}, want: []int{0, 0}},
		{name: "negative total", total: -3, weights: []float64{1}, want: []int{0}},
		{name: "single", total: 17, weights: []float64{1}, want: []int{17}},
		{name: "more shares than cells", total: 2, weights: []float64{0.25, 0.25, 0.25, 0.25}, want: []int{1, 1, 0, 0}},
		{name: "empty", total: 10, weights: nil, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distribute(tt.total, tt.weights)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Distribute(%d, %v) = %v, want %v", tt.total, tt.weights, got, tt.want)
			}
		})
	}
}

func TestDistribute_SumsExactly(t *testing.T) {
	weightSets := [][]float64{
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
		{0.1, 0.2, 0.3, 0.4},
		{1.0 / 7, 2.0 / 7, 4.0 / 7},
		{0.333, 0.333, 0.334},
		{1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6},
	}
	for _, weights := range weightSets {
		for total := 0; total <= 257; total++ {
			sum := 0
			for _, s := range Distribute(total, weights) {
				if s < 0 {
					t.Fatalf("Distribute(%d, %v) produced negative share", total, weights)
				}
				sum += s
			}
			if sum != total {
				t.Fatalf("Distribute(%d, %v) sums to %d", total, weights, sum)
			}
		}
	}
}

func TestEnforceMinimum(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		mins  []int
		want  []int
	}{
		{name: "already satisfied", sizes: []int{5, 5}, mins: []int{1, 1}, want: []int{5, 5}},
		{name: "take from largest slack", sizes: []int{0, 3, 7}, mins: []int{1, 1, 1}, want: []int{1, 3, 6}},
		{name: "ties take from later entry", sizes: []int{0, 4, 4}, mins: []int{2, 1, 1}, want: []int{2, 4, 2}},
		{name: "nested minimums", sizes: []int{1, 9}, mins: []int{3, 1}, want: []int{3, 7}},
		{name: "impossible leaves sizes", sizes: []int{1, 0}, mins: []int{1, 1}, want: []int{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnforceMinimum(tt.sizes, tt.mins)
			if !slices.Equal(got, tt.want) {
				t.Fatalf("EnforceMinimum(%v, %v) = %v, want %v", tt.sizes, tt.mins, got, tt.want)
			}
		})
	}
}
