package handler

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// ----- Handler: GET /analytics/driver/{driverId}/earnings -----

func (handler *BookingHTTPHandler) handleDriverEarnings(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	driver := strings.TrimSpace(r.PathValue("driverId"))

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	total, err := handler.analytics.TotalEarnings(ctxWithTimeout, driver)
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}

	type earningsBody struct {
		DriverUsername string  `json:"driverUsername"`
		TotalEarnings  float64 `json:"totalEarnings"`
	}
	handler.jsonResponse(ctxWithTimeout, w, http.StatusOK, earningsBody{
		DriverUsername: driver,
		TotalEarnings:  total,
	})
}

// ----- Handler: GET /analytics/rides-per-day -----

func (handler *BookingHTTPHandler) handleRidesPerDay(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := handler.analytics.RidesPerDay(ctxWithTimeout)
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}
	handler.jsonResponse(ctxWithTimeout, w, http.StatusOK, rows)
}

// ----- Handler: GET /analytics/driver/{driverId}/summary -----

func (handler *BookingHTTPHandler) handleDriverSummary(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	driver := strings.TrimSpace(r.PathValue("driverId"))

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	summary, err := handler.analytics.DriverSummary(ctxWithTimeout, driver)
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}
	handler.jsonResponse(ctxWithTimeout, w, http.StatusOK, summary)
}

// ----- Handler: GET /analytics/user/{userId}/spending -----

func (handler *BookingHTTPHandler) handleUserSpending(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	username := strings.TrimSpace(r.PathValue("userId"))

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	spending, err := handler.analytics.UserSpending(ctxWithTimeout, username)
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}
	handler.jsonResponse(ctxWithTimeout, w, http.StatusOK, spending)
}

// ----- Handler: GET /analytics/status-summary -----

func (handler *BookingHTTPHandler) handleStatusSummary(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := handler.analytics.StatusSummary(ctxWithTimeout)
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}
	handler.jsonResponse(ctxWithTimeout, w, http.StatusOK, rows)
}
