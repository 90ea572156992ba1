package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"ride-booking/internal/ports"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ----- Handler: POST /auth/register -----

func (handler *BookingHTTPHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	var req ports.RegisterInput
	if !handler.decodeJSON(ctx, w, r, &req) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	view, err := handler.auth.Register(ctxWithTimeout, req)
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}

	handler.jsonResponse(ctxWithTimeout, w, http.StatusCreated, view)
}

// ----- Handler: POST /auth/login -----

func (handler *BookingHTTPHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	var req loginRequest
	if !handler.decodeJSON(ctx, w, r, &req) {
		return
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := handler.auth.Login(ctxWithTimeout, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}

	handler.jsonResponse(ctxWithTimeout, w, http.StatusOK, result)
}
