package blogservice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corpus(counts ...int) []RankedBlog {
	blogs := make([]RankedBlog, len(counts))
	for i, c := range counts {
		blogs[i] = RankedBlog{ID: i + 1, BookmarkCount: c}
	}
	return blogs
}

func ids(blogs []RankedBlog) []int {
	out := make([]int, len(blogs))
	for i, b := range blogs {
		out[i] = b.ID
	}
	return out
}

func TestRankPopular(t *testing.T) {
	testCases := []struct {
		name    string
		counts  []int
		wantIDs []int
	}{
		{
			name:    "empty corpus",
			counts:  nil,
			wantIDs: []int{},
		},
		{
			name:    "fewer blogs than the limit",
			counts:  []int{1, 4},
			wantIDs: []int{2, 1},
		},
		{
			name:    "mixed counts",
			counts:  []int{5, 3, 3, 1, 0},
			wantIDs: []int{1, 2, 3},
		},
		{
			name:    "top count unsorted in store",
			counts:  []int{0, 1, 3, 5, 3},
			wantIDs: []int{4, 3, 5},
		},
		{
			name:    "every blog tied returns the last three",
			counts:  []int{2, 2, 2, 2},
			wantIDs: []int{2, 3, 4},
		},
		{
			name:    "every blog tied at zero",
			counts:  []int{0, 0, 0, 0, 0, 0},
			wantIDs: []int{4, 5, 6},
		},
		{
			name:    "ties below the top keep store order",
			counts:  []int{1, 7, 1, 1, 1},
			wantIDs: []int{2, 1, 3},
		},
		{
			name:    "three tied blogs",
			counts:  []int{4, 4, 4},
			wantIDs: []int{1, 2, 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := RankPopular(corpus(tc.counts...), PopularLimit)
			assert.Equal(t, tc.wantIDs, ids(got))
		})
	}
}

func TestRankPopular_DoesNotReorderInput(t *testing.T) {
	in := corpus(0, 1, 2, 3)
	RankPopular(in, PopularLimit)

	assert.Equal(t, []int{1, 2, 3, 4}, ids(in))
}

func TestRankPopular_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		n := r.Intn(12)
		counts := make([]int, n)
		for j := range counts {
			counts[j] = r.Intn(4)
		}

		got := RankPopular(corpus(counts...), PopularLimit)

		assert.Len(t, got, min(n, PopularLimit), "counts %v", counts)

		for j := 1; j < len(got); j++ {
			assert.GreaterOrEqual(t, got[j-1].BookmarkCount, got[j].BookmarkCount, "counts %v", counts)
		}
	}
}
