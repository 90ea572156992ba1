package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/domain/user"
	"ride-booking/internal/general/jwt"
	"ride-booking/internal/general/logger"
	"ride-booking/internal/general/websocket"
	"ride-booking/internal/ports"
	"ride-booking/internal/software/booking/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingHTTPHandler adapts HTTP requests to the auth, ride, and analytics
// services. Role checks live in the route table; ownership checks live in the
// services.
type BookingHTTPHandler struct {
	auth      ports.AuthService
	rides     ports.RideService
	analytics ports.AnalyticsService
	logger    *logger.Logger
	jwtMgr    *jwt.Manager
	feed      *websocket.Feed
	pool      *pgxpool.Pool
}

// NewBookingHTTPHandler wires an HTTP handler around the services.
func NewBookingHTTPHandler(
	auth ports.AuthService,
	rides ports.RideService,
	analytics ports.AnalyticsService,
	log *logger.Logger,
	jwtMgr *jwt.Manager,
	feed *websocket.Feed,
	pool *pgxpool.Pool,
) *BookingHTTPHandler {
	return &BookingHTTPHandler{
		auth:      auth,
		rides:     rides,
		analytics: analytics,
		logger:    log,
		jwtMgr:    jwtMgr,
		feed:      feed,
		pool:      pool,
	}
}

// RegisterRoutes mounts all endpoints on the provided mux.
func (handler *BookingHTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	// auth, open
	mux.HandleFunc("POST /auth/register", handler.handleRegister)
	mux.HandleFunc("POST /auth/login", handler.handleLogin)

	// lifecycle
	mux.HandleFunc("POST /rides",
		jwt.AuthMiddlewareFunc(handler.jwtMgr, user.RolePassenger)(handler.handleCreateRide),
	)
	mux.HandleFunc("POST /rides/accept/{id}",
		jwt.AuthMiddlewareFunc(handler.jwtMgr, user.RoleDriver)(handler.handleAcceptRide),
	)
	mux.HandleFunc("POST /rides/complete/{id}",
		jwt.AuthMiddlewareFunc(handler.jwtMgr, user.RolePassenger, user.RoleDriver)(handler.handleCompleteRide),
	)

	// read queries, any authenticated role
	anyRole := jwt.AuthMiddlewareFunc(handler.jwtMgr, user.RolePassenger, user.RoleDriver)
	mux.HandleFunc("GET /rides", anyRole(handler.handleListAll))
	mux.HandleFunc("GET /rides/search", anyRole(handler.handleSearch))
	mux.HandleFunc("GET /rides/filter-distance", anyRole(handler.handleFilterDistance))
	mux.HandleFunc("GET /rides/filter-date-range", anyRole(handler.handleFilterDateRange))
	mux.HandleFunc("GET /rides/sort", anyRole(handler.handleSortByFare))
	mux.HandleFunc("GET /rides/user/{userId}", anyRole(handler.handleRidesByUser))
	mux.HandleFunc("GET /rides/user/{userId}/status/{status}", anyRole(handler.handleRidesByUserAndStatus))
	mux.HandleFunc("GET /rides/driver/{driverId}/active-rides", anyRole(handler.handleDriverActiveRides))
	mux.HandleFunc("GET /rides/filter-status", anyRole(handler.handleFilterStatus))
	mux.HandleFunc("GET /rides/advanced-search", anyRole(handler.handleAdvancedSearch))
	mux.HandleFunc("GET /rides/date/{date}", anyRole(handler.handleRidesByDate))

	// analytics, any authenticated role
	mux.HandleFunc("GET /analytics/driver/{driverId}/earnings", anyRole(handler.handleDriverEarnings))
	mux.HandleFunc("GET /analytics/rides-per-day", anyRole(handler.handleRidesPerDay))
	mux.HandleFunc("GET /analytics/driver/{driverId}/summary", anyRole(handler.handleDriverSummary))
	mux.HandleFunc("GET /analytics/user/{userId}/spending", anyRole(handler.handleUserSpending))
	mux.HandleFunc("GET /analytics/status-summary", anyRole(handler.handleStatusSummary))

	// websocket feed validates its token itself
	mux.HandleFunc("GET /ws/rides/{ride_id}", handler.feed.ServeRide)

	// health, open
	mux.HandleFunc("GET /health/ping", handler.handlePing)
	mux.HandleFunc("GET /health/db", handler.handleDBHealth)
}

// ----- shared helpers -----

// jsonResponse encodes data to a buffer first so the status line is still
// controllable when encoding fails.
func (handler *BookingHTTPHandler) jsonResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	var buf []byte
	var err error

	if data != nil {
		buf, err = json.Marshal(data)
		if err != nil {
			handler.logger.Error(ctx, "response_encode_failed", "Failed to encode response", err, nil)
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
			return
		}
	} else {
		buf = []byte("{}")
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf)
}

// httpError sends a JSON error response with a message.
func (handler *BookingHTTPHandler) httpError(ctx context.Context, w http.ResponseWriter, status int, msg string, err error) {
	action := "request_failed"
	if status >= 500 {
		action = "http_internal_error"
	} else if status == http.StatusBadRequest {
		action = "validation_failed"
	}
	handler.logger.Error(ctx, action, msg, err, nil)

	type errBody struct {
		Error string `json:"error"`
	}
	handler.jsonResponse(ctx, w, status, errBody{Error: msg})
}

// serviceError maps a service failure to its status code and responds.
// Storage-level failures never leak their raw message.
func (handler *BookingHTTPHandler) serviceError(ctx context.Context, w http.ResponseWriter, err error) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		handler.httpError(ctx, w, http.StatusInternalServerError, "database error", err)
		return
	}
	handler.httpError(ctx, w, statusForErr(err), err.Error(), err)
}

// statusForErr is the single place the error taxonomy meets HTTP.
func statusForErr(err error) int {
	switch {
	case errors.Is(err, ride.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ride.ErrNotRequested), errors.Is(err, ride.ErrNotAccepted):
		return http.StatusConflict
	case errors.Is(err, ride.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, user.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrUsernameRequired),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, ride.ErrNegativeDistance),
		errors.Is(err, ride.ErrMinAboveMax),
		errors.Is(err, ride.ErrPassengerRequired),
		errors.Is(err, ride.ErrPickupRequired),
		errors.Is(err, ride.ErrDropRequired),
		errors.Is(err, ride.ErrDriverRequired),
		errors.Is(err, ride.ErrNegativeFare):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// withReqID extracts or generates a request ID and adds it to the context.
func (handler *BookingHTTPHandler) withReqID(ctx context.Context, r *http.Request) context.Context {
	reqID := r.Header.Get("X-Request-ID")
	if strings.TrimSpace(reqID) == "" {
		reqID = uuid.NewString()
	}
	return handler.logger.WithRequestID(ctx, reqID)
}

// decodeJSON enforces the content type, bounds the body, and decodes strictly.
func (handler *BookingHTTPHandler) decodeJSON(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		handler.httpError(ctx, w, http.StatusUnsupportedMediaType, "Content-Type must be application/json", nil)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MiB
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			handler.httpError(ctx, w, http.StatusRequestEntityTooLarge, "request body too large", err)
			return false
		}
		handler.httpError(ctx, w, http.StatusBadRequest, "invalid JSON: "+err.Error(), err)
		return false
	}
	return true
}
