package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetOperations(t *testing.T) {
	tests := []struct {
		name       string
		a, b       []int
		union      []int
		intersect  []int
		difference []int
	}{
		{"disjoint", []int{1, 2}, []int{3}, []int{1, 2, 3}, []int{}, []int{1, 2}},
		{"overlap", []int{1, 2, 3}, []int{3, 4, 1}, []int{1, 2, 3, 4}, []int{1, 3}, []int{2}},
		{"empty a", nil, []int{5}, []int{5}, []int{}, []int{}},
		{"empty b", []int{5}, nil, []int{5}, []int{}, []int{5}},
		{"duplicates collapse", []int{7, 7, 8}, []int{8, 8}, []int{7, 8}, []int{8}, []int{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.union, Union(tt.a, tt.b))
			assert.Equal(t, tt.intersect, Intersect(tt.a, tt.b))
			assert.Equal(t, tt.difference, Difference(tt.a, tt.b))
		})
	}
}

func TestDifferenceIsLeftSided(t *testing.T) {
	a := []string{"x", "y"}
	b := []string{"y", "z"}
	assert.Equal(t, []string{"x"}, Difference(a, b))
	assert.Equal(t, []string{"z"}, Difference(b, a))
}
