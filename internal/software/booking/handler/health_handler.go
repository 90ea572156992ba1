package handler

import (
	"context"
	"net/http"
	"time"
)

type healthBody struct {
	Status string `json:"status"`
}

// ----- Handler: GET /health/ping -----

func (handler *BookingHTTPHandler) handlePing(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	handler.jsonResponse(ctx, w, http.StatusOK, healthBody{Status: "ok"})
}

// ----- Handler: GET /health/db -----

func (handler *BookingHTTPHandler) handleDBHealth(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := handler.pool.Ping(ctxWithTimeout); err != nil {
		handler.httpError(ctxWithTimeout, w, http.StatusServiceUnavailable, "database unreachable", err)
		return
	}
	handler.jsonResponse(ctxWithTimeout, w, http.StatusOK, healthBody{Status: "ok"})
}
