package blogservice

import (
	"database/sql"
	"time"
)

const (
	// PopularLimit is the size of the popular panel.
	PopularLimit = 3
	// AuthorPageSize is the size of the "more from this author" panel.
	AuthorPageSize = 2

	defaultFeedLimit = 10
	maxFeedLimit     = 100
)

type Author struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

type Blog struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	// Content may embed markup; script tags are stripped on write.
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	AuthorID  int       `json:"authorId"`
	Author    Author    `json:"author"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RankedBlog is a blog annotated with the number of bookmarks it had when it was read.
type RankedBlog struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Image         *string   `json:"image"`
	CreatedAt     time.Time `json:"createdAt"`
	Author        Author    `json:"author"`
	BookmarkCount int       `json:"bookmarkCount"`
}

type BookmarkedBlog struct {
	BlogID       int       `json:"blogId"`
	BookmarkedAt time.Time `json:"bookmarkedAt"`
	Blog         Blog      `json:"blog"`
}

// BookmarkResult reports which transition a toggle performed.
type BookmarkResult int

const (
	BookmarkAdded BookmarkResult = iota + 1
	BookmarkRemoved
)

func (r BookmarkResult) String() string {
	switch r {
	case BookmarkAdded:
		return "added"
	case BookmarkRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

type CreateBlogInput struct {
	Title     string  `json:"title" validate:"required,max=200"`
	Content   string  `json:"content" validate:"required"`
	Image     *string `json:"image" validate:"omitempty,url"`
	Published *bool   `json:"published"`
}

type UpdateBlogInput struct {
	ID        int     `json:"id" validate:"gt=0"`
	Title     string  `json:"title" validate:"required,max=200"`
	Content   string  `json:"content" validate:"required"`
	Image     *string `json:"image" validate:"omitempty,url"`
	Published *bool   `json:"published"`
}

type BlogModel struct {
	db *sql.DB
}

type BookmarkModel struct {
	db *sql.DB
}

type BlogService struct {
	m  *BlogModel
	bm *BookmarkModel
}
