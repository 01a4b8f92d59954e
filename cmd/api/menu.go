package main

import (
	"errors"
	"net/http"

	"github.com/Bloopd3d/webs/internal/domain"
	"github.com/go-chi/chi"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type CreateMenuItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	// pointer so a submitted zero price passes the presence check
	Price      *float64 `json:"price" validate:"required,min=0"`
	Category   string   `json:"category" validate:"required"`
	ImageURL   string   `json:"imageUrl" validate:"required"`
	Featured   bool     `json:"featured"`
	GlutenFree bool     `json:"glutenFree"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Featured    *bool    `json:"featured"`
	GlutenFree  *bool    `json:"glutenFree"`
}

// getMenuHandler godoc
//
//	@Summary		List menu items
//	@Description	Lists the menu, optionally filtered by exact category. "Todos" returns everything.
//	@Tags			menu
//	@Produce		json
//	@Param			categoria	query		string	false	"Category filter"
//	@Success		200			{array}		domain.MenuItem
//	@Failure		500			{object}	map[string]string
//	@Router			/menu [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	categoria := r.URL.Query().Get("categoria")

	items, err := app.catalog.List(r.Context(), categoria)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createMenuItemHandler godoc
//
//	@Summary		Create menu item
//	@Description	Creates a menu item with a server-generated id
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMenuItemRequest	true	"Menu item"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menu [post]
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.catalog.Create(r.Context(), domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
		GlutenFree:  req.GlutenFree,
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMenuItemHandler godoc
//
//	@Summary		Update menu item
//	@Description	Applies a sparse update; omitted fields are left untouched
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			item_id	path		string					true	"Menu item ID"
//	@Param			request	body		UpdateMenuItemRequest	true	"Fields to change"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menu/{item_id} [put]
func (app *application) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	var req UpdateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	patch := domain.MenuItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
		GlutenFree:  req.GlutenFree,
	}

	item, err := app.catalog.Update(r.Context(), itemID, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyUpdate):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrNotFound):
			app.notFoundError(w, r, ErrMenuItemNotFound)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMenuItemHandler godoc
//
//	@Summary		Delete menu item
//	@Tags			menu
//	@Produce		json
//	@Param			item_id	path		string	true	"Menu item ID"
//	@Success		200		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menu/{item_id} [delete]
func (app *application) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	if err := app.catalog.Delete(r.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, ErrMenuItemNotFound)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]string{
		"message": "Menu item deleted",
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
