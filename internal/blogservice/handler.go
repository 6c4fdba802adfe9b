package blogservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/postly/internal/common"
)

var (
	ErrForbidden   = errors.New("blog belongs to another author")
	ErrNoMorePosts = errors.New("no more posts available from this author")
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db), bm: newBookmarkModel(db)}
}

// CreateBlog publishes a new blog for authorID and returns it with its id set.
func (s *BlogService) CreateBlog(ctx context.Context, authorID int, in CreateBlogInput) (*Blog, error) {
	v := common.NewValidator()
	v.CheckStruct(in)
	validateTitle(v, in.Title)
	validateInt(v, authorID, "author_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := &Blog{
		Title:     in.Title,
		Content:   sanitizeContent(in.Content),
		Image:     in.Image,
		AuthorID:  authorID,
		Published: in.Published == nil || *in.Published,
	}

	if err := s.m.insert(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// GetBlogByID returns a blog post by its ID.
func (s *BlogService) GetBlogByID(ctx context.Context, id int) (*Blog, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getBlogById(ctx, id)
}

// UpdateBlog rewrites a blog. Only its author can update it.
func (s *BlogService) UpdateBlog(ctx context.Context, authorID int, in UpdateBlogInput) (*Blog, error) {
	v := common.NewValidator()
	v.CheckStruct(in)
	validateTitle(v, in.Title)
	validateInt(v, authorID, "author_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog, err := s.m.getBlogById(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if blog.AuthorID != authorID {
		return nil, ErrForbidden
	}

	blog.Title = in.Title
	blog.Content = sanitizeContent(in.Content)
	blog.Image = in.Image
	if in.Published != nil {
		blog.Published = *in.Published
	}

	if err := s.m.updateBlog(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// DeleteBlog deletes a blog post. Only the author can delete it.
func (s *BlogService) DeleteBlog(ctx context.Context, blogId, authorId int) error {
	v := common.NewValidator()
	validateInt(v, blogId, "id")
	validateInt(v, authorId, "author_id")
	if !v.Valid() {
		return v.ValidationError()
	}

	blog, err := s.m.getBlogById(ctx, blogId)
	if err != nil {
		return err
	}

	if blog.AuthorID != authorId {
		return ErrForbidden
	}

	return s.m.deleteBlog(ctx, blogId, authorId)
}

// GetBlogsByAuthor returns every blog of the author, drafts included, newest first.
func (s *BlogService) GetBlogsByAuthor(ctx context.Context, authorID int) ([]Blog, error) {
	v := common.NewValidator()
	validateInt(v, authorID, "author_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getBlogsByAuthor(ctx, authorID, 0)
}

// GetRecentBlogsByAuthor returns the author's AuthorPageSize most recent blogs, or
// ErrNoMorePosts when the author has none.
func (s *BlogService) GetRecentBlogsByAuthor(ctx context.Context, authorID int) ([]Blog, error) {
	v := common.NewValidator()
	validateInt(v, authorID, "authorId")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blogs, err := s.m.getBlogsByAuthor(ctx, authorID, AuthorPageSize)
	if err != nil {
		return nil, err
	}

	if len(blogs) == 0 {
		return nil, ErrNoMorePosts
	}

	return blogs, nil
}

// GetBlogs returns the published feed. Default limit is 10 and default offset is 0.
func (s *BlogService) GetBlogs(ctx context.Context, limit, offset *int) ([]Blog, error) {
	l, o := defaultFeedLimit, 0

	if limit != nil && *limit > 0 {
		l = min(*limit, maxFeedLimit)
	}

	if offset != nil && *offset > 0 {
		o = *offset
	}

	return s.m.getBlogs(ctx, l, o)
}
