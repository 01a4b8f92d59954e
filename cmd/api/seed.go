package main

import "net/http"

// seedDataHandler godoc
//
//	@Summary		Seed the menu
//	@Description	Loads the built-in example catalog once; subsequent calls are no-ops
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		500	{object}	map[string]string
//	@Router			/seed [post]
func (app *application) seedDataHandler(w http.ResponseWriter, r *http.Request) {
	inserted, err := app.seeder.Seed(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if inserted == 0 {
		response := map[string]interface{}{
			"message": "Database already seeded",
		}
		if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]interface{}{
		"message": "Database seeded successfully",
		"items":   inserted,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
