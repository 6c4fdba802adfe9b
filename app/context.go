package main

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userIDContextKey    = contextKey("user_id")
	requestIDContextKey = contextKey("request_id")
)

func (app *application) createUserContext(r *http.Request, userID int) *http.Request {
	ctx := context.WithValue(r.Context(), userIDContextKey, userID)
	return r.WithContext(ctx)
}

// getUserContext returns the id of the authenticated caller, or 0 for anonymous requests.
func (app *application) getUserContext(r *http.Request) int {
	id, ok := r.Context().Value(userIDContextKey).(int)
	if !ok {
		return 0
	}
	return id
}

func requestIDFromContext(r *http.Request) string {
	id, _ := r.Context().Value(requestIDContextKey).(string)
	return id
}

func contextWithRequestID(r *http.Request, id string) context.Context {
	return context.WithValue(r.Context(), requestIDContextKey, id)
}
