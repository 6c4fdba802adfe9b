package main

import "net/http"

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "available",
		"system_info": map[string]any{
			"environment":   app.config.Environment,
			"version":       app.config.Version,
			"mail_enabled":  app.mailService != nil,
			"suggestions":   app.suggestService.Enabled(),
			"rate_limiting": app.config.LimiterEnabled,
		},
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
