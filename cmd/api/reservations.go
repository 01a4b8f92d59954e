package main

import (
	"errors"
	"net/http"

	"github.com/Bloopd3d/webs/internal/domain"
	"github.com/go-chi/chi"
)

var ErrReservationNotFound = errors.New("reservation not found")

type CreateReservationRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
	// pointer so presence is checked without rejecting a submitted zero;
	// the value itself is not range-checked
	PartySize *int `json:"partySize" validate:"required"`
}

// UpdateReservationRequest accepts the new status under either key; "status"
// wins when both are present.
type UpdateReservationRequest struct {
	Status *string `json:"status"`
	Estado *string `json:"estado"`
}

// createReservationHandler godoc
//
//	@Summary		Create reservation
//	@Description	Books a table. The reservation always starts as "pending"; no availability check is made.
//	@Tags			reservations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateReservationRequest	true	"Reservation"
//	@Success		200		{object}	domain.Reservation
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/reservations [post]
func (app *application) createReservationHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	res, err := app.reservations.Create(r.Context(), domain.Reservation{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    *req.PartySize,
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, res); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getReservationsHandler godoc
//
//	@Summary		List reservations
//	@Tags			reservations
//	@Produce		json
//	@Success		200	{array}		domain.Reservation
//	@Failure		401	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/reservations [get]
func (app *application) getReservationsHandler(w http.ResponseWriter, r *http.Request) {
	reservations, err := app.reservations.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, reservations); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateReservationHandler godoc
//
//	@Summary		Update reservation status
//	@Description	Overwrites only the status field; any string is accepted
//	@Tags			reservations
//	@Accept			json
//	@Produce		json
//	@Param			reservation_id	path		string						true	"Reservation ID"
//	@Param			request			body		UpdateReservationRequest	true	"New status"
//	@Success		200				{object}	domain.Reservation
//	@Failure		400				{object}	map[string]string
//	@Failure		401				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Failure		500				{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/reservations/{reservation_id} [put]
func (app *application) updateReservationHandler(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "reservation_id")

	var req UpdateReservationRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var status *string
	switch {
	case req.Status != nil:
		status = req.Status
	case req.Estado != nil:
		status = req.Estado
	default:
		app.badRequestResponse(w, r, domain.ErrEmptyUpdate)
		return
	}

	res, err := app.reservations.UpdateStatus(r.Context(), reservationID, *status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, ErrReservationNotFound)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, res); err != nil {
		app.internalServerError(w, r, err)
	}
}
