package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/general/jwt"
	"ride-booking/internal/ports"

	"github.com/google/uuid"
)

// rideIDFromPath extracts and validates the {id} path value. Ride ids are
// UUIDs, so a malformed id can never name a ride and is reported as not
// found before any storage call.
func (handler *BookingHTTPHandler) rideIDFromPath(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, bool) {
	rideID := strings.TrimSpace(r.PathValue("id"))
	if rideID == "" {
		handler.httpError(ctx, w, http.StatusBadRequest, "ride id is required", nil)
		return "", false
	}
	if err := uuid.Validate(rideID); err != nil {
		handler.serviceError(ctx, w, ride.ErrNotFound)
		return "", false
	}
	return rideID, true
}

// ----- Handler: POST /rides -----

func (handler *BookingHTTPHandler) handleCreateRide(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	var req ports.CreateRideInput
	if !handler.decodeJSON(ctx, w, r, &req) {
		return
	}
	req.PickupLocation = strings.TrimSpace(req.PickupLocation)
	req.DropLocation = strings.TrimSpace(req.DropLocation)

	claims := jwt.RequireClaims(r)
	if claims == nil {
		handler.httpError(ctx, w, http.StatusUnauthorized, "missing auth claims", errors.New("no claims"))
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// passenger identity comes from the token, never from the body
	view, err := handler.rides.CreateRide(ctxWithTimeout, claims.Username(), req)
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}

	handler.jsonResponse(ctxWithTimeout, w, http.StatusCreated, view)
}

// ----- Handler: POST /rides/accept/{id} -----

func (handler *BookingHTTPHandler) handleAcceptRide(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	rideID, ok := handler.rideIDFromPath(ctx, w, r)
	if !ok {
		return
	}
	ctx = handler.logger.WithRideID(ctx, rideID)

	claims := jwt.RequireClaims(r)
	if claims == nil {
		handler.httpError(ctx, w, http.StatusUnauthorized, "missing auth claims", errors.New("no claims"))
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	view, err := handler.rides.AcceptRide(ctxWithTimeout, rideID, claims.Username())
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}

	handler.jsonResponse(ctxWithTimeout, w, http.StatusOK, view)
}

// ----- Handler: POST /rides/complete/{id} -----

func (handler *BookingHTTPHandler) handleCompleteRide(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	rideID, ok := handler.rideIDFromPath(ctx, w, r)
	if !ok {
		return
	}
	ctx = handler.logger.WithRideID(ctx, rideID)

	claims := jwt.RequireClaims(r)
	if claims == nil {
		handler.httpError(ctx, w, http.StatusUnauthorized, "missing auth claims", errors.New("no claims"))
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	view, err := handler.rides.CompleteRide(ctxWithTimeout, rideID, claims.Username())
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}

	handler.jsonResponse(ctxWithTimeout, w, http.StatusOK, view)
}
