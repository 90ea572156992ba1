package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ride-booking/internal/ports"
)

const dateLayout = "2006-01-02"

// runQuery is the shared shape of the read endpoints: bound the call, run
// the query, serialize the list.
func (handler *BookingHTTPHandler) runQuery(
	ctx context.Context,
	w http.ResponseWriter,
	query func(ctx context.Context) ([]ports.RideView, error),
) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	views, err := query(ctxWithTimeout)
	if err != nil {
		handler.serviceError(ctxWithTimeout, w, err)
		return
	}
	handler.jsonResponse(ctxWithTimeout, w, http.StatusOK, views)
}

// ----- Handler: GET /rides -----

func (handler *BookingHTTPHandler) handleListAll(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	handler.runQuery(ctx, w, handler.rides.ListAllRides)
}

// ----- Handler: GET /rides/search?text= -----

func (handler *BookingHTTPHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	keyword := r.URL.Query().Get("text")
	handler.runQuery(ctx, w, func(ctx context.Context) ([]ports.RideView, error) {
		return handler.rides.SearchRides(ctx, keyword)
	})
}

// ----- Handler: GET /rides/filter-distance?min=&max= -----

func (handler *BookingHTTPHandler) handleFilterDistance(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	min, err := strconv.ParseFloat(r.URL.Query().Get("min"), 64)
	if err != nil {
		handler.httpError(ctx, w, http.StatusBadRequest, "min must be a number", err)
		return
	}
	max, err := strconv.ParseFloat(r.URL.Query().Get("max"), 64)
	if err != nil {
		handler.httpError(ctx, w, http.StatusBadRequest, "max must be a number", err)
		return
	}

	handler.runQuery(ctx, w, func(ctx context.Context) ([]ports.RideView, error) {
		return handler.rides.FilterByDistance(ctx, min, max)
	})
}

// ----- Handler: GET /rides/filter-date-range?start=&end= -----

func (handler *BookingHTTPHandler) handleFilterDateRange(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	start, err := time.Parse(dateLayout, r.URL.Query().Get("start"))
	if err != nil {
		handler.httpError(ctx, w, http.StatusBadRequest, "start must be an ISO date (YYYY-MM-DD)", err)
		return
	}
	end, err := time.Parse(dateLayout, r.URL.Query().Get("end"))
	if err != nil {
		handler.httpError(ctx, w, http.StatusBadRequest, "end must be an ISO date (YYYY-MM-DD)", err)
		return
	}

	handler.runQuery(ctx, w, func(ctx context.Context) ([]ports.RideView, error) {
		return handler.rides.FilterByDateRange(ctx, start, end)
	})
}

// ----- Handler: GET /rides/sort?order=asc|desc -----

func (handler *BookingHTTPHandler) handleSortByFare(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	order := r.URL.Query().Get("order")
	handler.runQuery(ctx, w, func(ctx context.Context) ([]ports.RideView, error) {
		return handler.rides.SortByFare(ctx, order)
	})
}

// ----- Handler: GET /rides/user/{userId} -----

func (handler *BookingHTTPHandler) handleRidesByUser(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	username := strings.TrimSpace(r.PathValue("userId"))
	handler.runQuery(ctx, w, func(ctx context.Context) ([]ports.RideView, error) {
		return handler.rides.RidesByUser(ctx, username)
	})
}

// ----- Handler: GET /rides/user/{userId}/status/{status} -----

func (handler *BookingHTTPHandler) handleRidesByUserAndStatus(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	username := strings.TrimSpace(r.PathValue("userId"))
	status := strings.TrimSpace(r.PathValue("status"))
	handler.runQuery(ctx, w, func(ctx context.Context) ([]ports.RideView, error) {
		return handler.rides.RidesByUserAndStatus(ctx, username, status)
	})
}

// ----- Handler: GET /rides/driver/{driverId}/active-rides -----

func (handler *BookingHTTPHandler) handleDriverActiveRides(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	driver := strings.TrimSpace(r.PathValue("driverId"))
	handler.runQuery(ctx, w, func(ctx context.Context) ([]ports.RideView, error) {
		return handler.rides.DriverActiveRides(ctx, driver)
	})
}

// ----- Handler: GET /rides/filter-status?status=&search= -----

func (handler *BookingHTTPHandler) handleFilterStatus(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	q := r.URL.Query()
	handler.runQuery(ctx, w, func(ctx context.Context) ([]ports.RideView, error) {
		return handler.rides.FilterByStatusAndKeyword(ctx, q.Get("status"), q.Get("search"))
	})
}

// ----- Handler: GET /rides/advanced-search?search=&status=&sort=&order=&page=&size= -----

func (handler *BookingHTTPHandler) handleAdvancedSearch(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), 0)
	if err != nil {
		handler.httpError(ctx, w, http.StatusBadRequest, "page must be an integer", err)
		return
	}
	size, err := intParam(q.Get("size"), 0)
	if err != nil {
		handler.httpError(ctx, w, http.StatusBadRequest, "size must be an integer", err)
		return
	}

	handler.runQuery(ctx, w, func(ctx context.Context) ([]ports.RideView, error) {
		return handler.rides.AdvancedSearch(ctx,
			q.Get("search"), q.Get("status"), q.Get("sort"), q.Get("order"), page, size)
	})
}

// ----- Handler: GET /rides/date/{date} -----

func (handler *BookingHTTPHandler) handleRidesByDate(w http.ResponseWriter, r *http.Request) {
	ctx := handler.withReqID(r.Context(), r)

	date, err := time.Parse(dateLayout, strings.TrimSpace(r.PathValue("date")))
	if err != nil {
		handler.httpError(ctx, w, http.StatusBadRequest, "date must be an ISO date (YYYY-MM-DD)", err)
		return
	}

	handler.runQuery(ctx, w, func(ctx context.Context) ([]ports.RideView, error) {
		return handler.rides.RidesByDate(ctx, date)
	})
}

// intParam parses an optional integer query parameter.
func intParam(raw string, fallback int) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
