package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/sushihentaime/postly/internal/suggestservice"
)

type suggestionRequest struct {
	Content string `json:"content"`
}

func (app *application) titleSuggestionHandler(w http.ResponseWriter, r *http.Request) {
	app.suggest(w, r, app.suggestService.Title, "title")
}

func (app *application) lineSuggestionHandler(w http.ResponseWriter, r *http.Request) {
	app.suggest(w, r, app.suggestService.Line, "line")
}

func (app *application) suggest(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (string, error), kind string) {
	var input suggestionRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	text, err := fn(r.Context(), input.Content)
	if err != nil {
		switch {
		case errors.Is(err, suggestservice.ErrContentRequired):
			app.writeErrorResponse(w, r, http.StatusBadRequest, "Content is required")
		case errors.Is(err, suggestservice.ErrDisabled):
			app.serviceUnavailableResponse(w, r, "writing suggestions are not available")
		default:
			app.logError(r, err)
			app.writeErrorResponse(w, r, http.StatusBadGateway, "Error while fetching "+kind+" suggestions")
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"suggestions": text}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
