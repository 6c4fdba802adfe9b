package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	handle := func(method, path string, h http.HandlerFunc) {
		router.Handler(method, path, app.metrics(path, h))
	}

	handle(http.MethodGet, "/api/v1/healthcheck", app.healthCheckHandler)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	// user service
	handle(http.MethodPost, "/api/v1/user/signup", app.signupHandler)
	handle(http.MethodPost, "/api/v1/user/signin", app.signinHandler)
	handle(http.MethodGet, "/api/v1/user/info", app.requireAuthUser(app.userInfoHandler))
	handle(http.MethodPut, "/api/v1/user/update", app.requireAuthUser(app.updateUserHandler))

	// blog service
	handle(http.MethodGet, "/api/v1/blogs", app.requireAuthUser(app.getAllBlogsHandler))
	handle(http.MethodPost, "/api/v1/blogs", app.requireAuthUser(app.createBlogHandler))
	handle(http.MethodPut, "/api/v1/blogs", app.requireAuthUser(app.updateBlogHandler))
	handle(http.MethodGet, "/api/v1/blogs/popular", app.requireAuthUser(app.popularBlogsHandler))
	handle(http.MethodPost, "/api/v1/blogs/bookmark", app.requireAuthUser(app.toggleBookmarkHandler))
	handle(http.MethodGet, "/api/v1/blogs/bookmarks", app.requireAuthUser(app.bookmarkedBlogsHandler))
	handle(http.MethodGet, "/api/v1/blogs/author", app.requireAuthUser(app.authorBlogsHandler))
	handle(http.MethodGet, "/api/v1/blog/:id", app.requireAuthUser(app.getBlogHandler))
	handle(http.MethodDelete, "/api/v1/blog/:id", app.requireAuthUser(app.deleteBlogHandler))

	// writing suggestions
	handle(http.MethodPost, "/api/v1/ai/title", app.requireAuthUser(app.titleSuggestionHandler))
	handle(http.MethodPost, "/api/v1/ai/line", app.requireAuthUser(app.lineSuggestionHandler))

	return app.recoverPanic(app.requestID(app.logRequest(app.enableCORS(app.rateLimit(app.authenticate(router))))))
}
