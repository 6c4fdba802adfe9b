package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("author_id does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// ForeignKeyError is a helper function to check if the error is a foreign key constraint error.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

// UniqueViolation reports whether err is a unique constraint violation on name.
func UniqueViolation(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

type rowScanner interface {
	Scan(dest ...any) error
}

// blogColumns must stay in sync with scanBlog.
const blogColumns = `b.id, b.title, b.content, b.image, b.author_id, b.published, b.created_at, b.updated_at, u.name`

func scanBlog(row rowScanner) (Blog, error) {
	var (
		blog  Blog
		image sql.NullString
	)

	err := row.Scan(&blog.ID, &blog.Title, &blog.Content, &image, &blog.AuthorID, &blog.Published, &blog.CreatedAt, &blog.UpdatedAt, &blog.Author.Name)
	if err != nil {
		return Blog{}, err
	}

	if image.Valid {
		blog.Image = &image.String
	}
	blog.Author.ID = blog.AuthorID

	return blog, nil
}

func collectBlogs(rows *sql.Rows) ([]Blog, error) {
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (m *BlogModel) insert(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (title, content, image, author_id, published)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, blog.Title, blog.Content, nullString(blog.Image), blog.AuthorID, blog.Published).
		Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		switch {
		case ForeignKeyError(err, "blogs_author_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

// getBlogById joins the users table to get the author's name.
func (m *BlogModel) getBlogById(ctx context.Context, id int) (*Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.id = $1`

	blog, err := scanBlog(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

func (m *BlogModel) updateBlog(ctx context.Context, blog *Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, content = $2, image = $3, published = $4, updated_at = NOW()
		WHERE id = $5 AND author_id = $6
		RETURNING updated_at`

	err := m.db.QueryRowContext(ctx, query, blog.Title, blog.Content, nullString(blog.Image), blog.Published, blog.ID, blog.AuthorID).
		Scan(&blog.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) deleteBlog(ctx context.Context, blogId, authorId int) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1 AND author_id = $2`

	res, err := m.db.ExecContext(ctx, query, blogId, authorId)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

// getBlogsByAuthor returns the author's blogs, newest first. A limit below 1 returns all of them.
func (m *BlogModel) getBlogsByAuthor(ctx context.Context, authorID, limit int) ([]Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.author_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2`

	var lim sql.NullInt64
	if limit > 0 {
		lim = sql.NullInt64{Int64: int64(limit), Valid: true}
	}

	rows, err := m.db.QueryContext(ctx, query, authorID, lim)
	if err != nil {
		return nil, err
	}

	return collectBlogs(rows)
}

// getBlogs returns a page of published blogs sorted by created_at descending.
func (m *BlogModel) getBlogs(ctx context.Context, limit, offset int) ([]Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		WHERE b.published = true
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $1 OFFSET $2`

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}

	return collectBlogs(rows)
}
