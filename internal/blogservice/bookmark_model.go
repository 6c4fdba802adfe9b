package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrBlogNotFound = errors.New("blog does not exist")

	// returned by the model when a concurrent toggle got there first
	errBookmarkExists  = errors.New("bookmark already exists")
	errBookmarkMissing = errors.New("bookmark does not exist")
)

func newBookmarkModel(db *sql.DB) *BookmarkModel {
	return &BookmarkModel{db: db}
}

func (m *BookmarkModel) exists(ctx context.Context, userID, blogID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookmarks
			WHERE user_id = $1 AND blog_id = $2
		)`

	var found bool
	if err := m.db.QueryRowContext(ctx, query, userID, blogID).Scan(&found); err != nil {
		return false, err
	}

	return found, nil
}

func (m *BookmarkModel) insert(ctx context.Context, userID, blogID int) error {
	query := `
		INSERT INTO bookmarks (user_id, blog_id)
		VALUES ($1, $2)`

	_, err := m.db.ExecContext(ctx, query, userID, blogID)
	if err != nil {
		switch {
		case UniqueViolation(err, "bookmarks_pkey"):
			return errBookmarkExists
		case ForeignKeyError(err, "bookmarks_blog_id_fkey"):
			return ErrBlogNotFound
		case ForeignKeyError(err, "bookmarks_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

func (m *BookmarkModel) delete(ctx context.Context, userID, blogID int) error {
	query := `
		DELETE FROM bookmarks
		WHERE user_id = $1 AND blog_id = $2`

	res, err := m.db.ExecContext(ctx, query, userID, blogID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	switch rows {
	case 0:
		return errBookmarkMissing
	case 1:
		return nil
	default:
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	}
}

// blogsWithBookmarkCounts counts bookmarks per blog in one grouped query, in id order.
// Blogs without bookmarks are included with a count of zero. Drafts are counted too:
// filtering on published was considered and rejected so the ranking covers every blog.
func (m *BookmarkModel) blogsWithBookmarkCounts(ctx context.Context) ([]RankedBlog, error) {
	query := `
		SELECT b.id, b.title, b.content, b.image, b.created_at, u.name, COUNT(bm.user_id)
		FROM blogs b
		JOIN users u ON b.author_id = u.id
		LEFT JOIN bookmarks bm ON bm.blog_id = b.id
		GROUP BY b.id, u.name
		ORDER BY b.id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []RankedBlog
	for rows.Next() {
		var (
			blog  RankedBlog
			image sql.NullString
		)

		err := rows.Scan(&blog.ID, &blog.Title, &blog.Content, &image, &blog.CreatedAt, &blog.Author.Name, &blog.BookmarkCount)
		if err != nil {
			return nil, err
		}

		if image.Valid {
			blog.Image = &image.String
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *BookmarkModel) bookmarkedBy(ctx context.Context, userID int) ([]BookmarkedBlog, error) {
	query := `
		SELECT bm.created_at, ` + blogColumns + `
		FROM bookmarks bm
		JOIN blogs b ON bm.blog_id = b.id
		JOIN users u ON b.author_id = u.id
		WHERE bm.user_id = $1
		ORDER BY bm.created_at DESC, b.id DESC`

	rows, err := m.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookmarks := []BookmarkedBlog{}
	for rows.Next() {
		var (
			bookmark BookmarkedBlog
			image    sql.NullString
			blog     = &bookmark.Blog
		)

		err := rows.Scan(&bookmark.BookmarkedAt, &blog.ID, &blog.Title, &blog.Content, &image, &blog.AuthorID, &blog.Published, &blog.CreatedAt, &blog.UpdatedAt, &blog.Author.Name)
		if err != nil {
			return nil, err
		}

		if image.Valid {
			blog.Image = &image.String
		}
		blog.Author.ID = blog.AuthorID
		bookmark.BlogID = blog.ID
		bookmarks = append(bookmarks, bookmark)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookmarks, nil
}
