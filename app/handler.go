package main

import (
	"errors"
	"net/http"

	"github.com/sushihentaime/postly/internal/blogservice"
	"github.com/sushihentaime/postly/internal/common"
	"github.com/sushihentaime/postly/internal/userservice"
)

func (app *application) signupHandler(w http.ResponseWriter, r *http.Request) {
	var input userservice.SignupInput

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	token, err := app.userService.Signup(r.Context(), input)
	if err != nil {
		var vErr common.ValidationError
		switch {
		case errors.Is(err, userservice.ErrDuplicateUsername):
			app.failedValidationErrorResponse(w, r, map[string]string{"username": "this username is already taken"})
		case errors.As(err, &vErr):
			app.failedValidationErrorResponse(w, r, vErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"token": token}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) signinHandler(w http.ResponseWriter, r *http.Request) {
	var input userservice.SigninInput

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	token, err := app.userService.Signin(r.Context(), input)
	if err != nil {
		var vErr common.ValidationError
		switch {
		case errors.Is(err, userservice.ErrAuthenticationFailure):
			app.invalidCredentialsErrorResponse(w, r)
		case errors.As(err, &vErr):
			app.failedValidationErrorResponse(w, r, vErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"token": token}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// userInfoHandler returns the caller's profile together with their library.
func (app *application) userInfoHandler(w http.ResponseWriter, r *http.Request) {
	userID := app.getUserContext(r)

	user, err := app.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.notLoggedInResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	blogs, err := app.blogService.GetBlogsByAuthor(r.Context(), userID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	bookmarked, err := app.blogService.GetBookmarkedBlogs(r.Context(), userID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	info := envelope{
		"id":              user.ID,
		"username":        user.Username,
		"name":            user.Name,
		"bio":             user.Bio,
		"blogs":           blogs,
		"bookmarkedBlogs": bookmarked,
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"user": info}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	var input userservice.UpdateUserInput

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.userService.UpdateUser(r.Context(), app.getUserContext(r), input)
	if err != nil {
		var vErr common.ValidationError
		switch {
		case errors.Is(err, userservice.ErrNotFound):
			app.notLoggedInResponse(w, r)
		case errors.As(err, &vErr):
			app.failedValidationErrorResponse(w, r, vErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.writeResponse(w, r, http.StatusOK, envelope{"message": "User updated successfully"})
}

func (app *application) getAllBlogsHandler(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := app.readLimitOffsetParams(r)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blogs, err := app.blogService.GetBlogs(r.Context(), limit, offset)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.CreateBlogInput

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.CreateBlog(r.Context(), app.getUserContext(r), input)
	if err != nil {
		var vErr common.ValidationError
		switch {
		case errors.As(err, &vErr):
			app.failedValidationErrorResponse(w, r, vErr.Errors)
		case errors.Is(err, blogservice.ErrUserForeignKey):
			app.notLoggedInResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"id": blog.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input blogservice.UpdateBlogInput

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.UpdateBlog(r.Context(), app.getUserContext(r), input)
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"id": blog.ID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blog": blog}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundErrorResponse(w, r)
		return
	}

	err = app.blogService.DeleteBlog(r.Context(), id, app.getUserContext(r))
	if err != nil {
		app.blogErrorResponse(w, r, err)
		return
	}

	app.writeResponse(w, r, http.StatusOK, envelope{"message": "Blog deleted successfully"})
}

func (app *application) blogErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var vErr common.ValidationError
	switch {
	case errors.As(err, &vErr):
		app.failedValidationErrorResponse(w, r, vErr.Errors)
	case errors.Is(err, blogservice.ErrRecordNotFound):
		app.notFoundErrorResponse(w, r)
	case errors.Is(err, blogservice.ErrForbidden):
		app.forbiddenErrorResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) popularBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.PopularBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	PopularBlogsSize.Set(float64(len(blogs)))

	err = app.writeJSON(w, http.StatusOK, envelope{"popularBlogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type toggleBookmarkRequest struct {
	BlogID int `json:"blogId"`
}

func (app *application) toggleBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	var input toggleBookmarkRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	res, err := app.blogService.ToggleBookmark(r.Context(), app.getUserContext(r), input.BlogID)
	if err != nil {
		var vErr common.ValidationError
		switch {
		case errors.As(err, &vErr):
			app.failedValidationErrorResponse(w, r, vErr.Errors)
		case errors.Is(err, blogservice.ErrBlogNotFound):
			app.writeErrorResponse(w, r, http.StatusNotFound, "Blog not found")
		case errors.Is(err, blogservice.ErrUserForeignKey):
			app.notLoggedInResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}
	observeToggle(res)

	message := "Blog bookmarked successfully"
	if res == blogservice.BookmarkRemoved {
		message = "Blog removed from bookmarks"
	}

	app.writeResponse(w, r, http.StatusOK, envelope{"message": message})
}

func (app *application) bookmarkedBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetBookmarkedBlogs(r.Context(), app.getUserContext(r))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"bookmarkedBlogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// authorBlogsHandler serves the "more from this author" panel.
func (app *application) authorBlogsHandler(w http.ResponseWriter, r *http.Request) {
	authorID, ok := app.readIntQuery(r, "authorId")
	if !ok {
		app.writeErrorResponse(w, r, http.StatusBadRequest, "Invalid authorId")
		return
	}

	blogs, err := app.blogService.GetRecentBlogsByAuthor(r.Context(), authorID)
	if err != nil {
		var vErr common.ValidationError
		switch {
		case errors.Is(err, blogservice.ErrNoMorePosts):
			app.writeResponse(w, r, http.StatusOK, envelope{"message": "No more posts available from this author"})
		case errors.As(err, &vErr):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "Invalid authorId")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"blogs": blogs}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
