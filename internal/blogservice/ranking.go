package blogservice

import (
	"cmp"
	"slices"
)

// RankPopular orders blogs by bookmark count, highest first, and keeps n of them.
//
// The sort is stable, so blogs with equal counts keep their store order. When every blog
// has the same count the last n entries are returned instead of the first n.
func RankPopular(blogs []RankedBlog, n int) []RankedBlog {
	if len(blogs) == 0 || n <= 0 {
		return []RankedBlog{}
	}

	sorted := slices.Clone(blogs)
	slices.SortStableFunc(sorted, func(a, b RankedBlog) int {
		return cmp.Compare(b.BookmarkCount, a.BookmarkCount)
	})

	if len(sorted) <= n {
		return sorted
	}

	if allTied(sorted) {
		return sorted[len(sorted)-n:]
	}

	return sorted[:n]
}

func allTied(sorted []RankedBlog) bool {
	first := sorted[0].BookmarkCount
	for _, b := range sorted[1:] {
		if b.BookmarkCount != first {
			return false
		}
	}

	return true
}
