package main

import (
	"net/http"
)

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// adminLoginHandler godoc
//
//	@Summary		Admin login
//	@Description	Exchanges the static admin credentials for the admin bearer token
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AdminLoginRequest	true	"Admin credentials"
//	@Success		200		{object}	domain.AdminToken
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Router			/admin/login [post]
func (app *application) adminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, err := app.authProvider.Login(req.Username, req.Password)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, token); err != nil {
		app.internalServerError(w, r, err)
	}
}
