package blogservice

import (
	"context"
	"errors"

	"github.com/sushihentaime/postly/internal/common"
)

// ToggleBookmark flips the bookmark of userID on blogID and reports the transition made.
//
// Two toggles racing on the same pair can both see the same state. The primary key on
// (user_id, blog_id) rejects the second insert and the second delete finds nothing; both
// cases already leave the pair in the state the caller asked for, so they succeed.
func (s *BlogService) ToggleBookmark(ctx context.Context, userID, blogID int) (BookmarkResult, error) {
	v := common.NewValidator()
	validateInt(v, userID, "user_id")
	validateInt(v, blogID, "blogId")
	if !v.Valid() {
		return 0, v.ValidationError()
	}

	bookmarked, err := s.bm.exists(ctx, userID, blogID)
	if err != nil {
		return 0, err
	}

	if bookmarked {
		err := s.bm.delete(ctx, userID, blogID)
		if err != nil && !errors.Is(err, errBookmarkMissing) {
			return 0, err
		}
		return BookmarkRemoved, nil
	}

	err = s.bm.insert(ctx, userID, blogID)
	if err != nil && !errors.Is(err, errBookmarkExists) {
		return 0, err
	}

	return BookmarkAdded, nil
}

// PopularBlogs recomputes bookmark counts for the whole corpus and returns the top
// PopularLimit blogs as ranked by RankPopular.
func (s *BlogService) PopularBlogs(ctx context.Context) ([]RankedBlog, error) {
	blogs, err := s.bm.blogsWithBookmarkCounts(ctx)
	if err != nil {
		return nil, err
	}

	return RankPopular(blogs, PopularLimit), nil
}

// GetBookmarkedBlogs lists the blogs userID has bookmarked, most recent bookmark first.
func (s *BlogService) GetBookmarkedBlogs(ctx context.Context, userID int) ([]BookmarkedBlog, error) {
	v := common.NewValidator()
	validateInt(v, userID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.bm.bookmarkedBy(ctx, userID)
}
