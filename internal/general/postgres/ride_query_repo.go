package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/ports"
)

// RideQueryRepo serves the enumerated read queries over the rides table.
type RideQueryRepo struct{}

// NewRideQueryRepo constructs a new RideQueryRepo.
func NewRideQueryRepo() ports.RideQueryRepository {
	return &RideQueryRepo{}
}

// ListAll returns every ride.
func (repo *RideQueryRepo) ListAll(ctx context.Context) ([]*ride.Ride, error) {
	return repo.query(ctx, `SELECT`+rideColumns+` FROM rides`)
}

// Search matches keyword case-insensitively against pickup OR drop location.
func (repo *RideQueryRepo) Search(ctx context.Context, keyword string) ([]*ride.Ride, error) {
	return repo.query(ctx, `
		SELECT`+rideColumns+`
		FROM rides
		WHERE pickup_location ILIKE $1 OR drop_location ILIKE $1
	`, likePattern(keyword))
}

// FilterByDistance returns rides with distance_km in [min, max]. Bounds are
// validated by the service before this runs.
func (repo *RideQueryRepo) FilterByDistance(ctx context.Context, min, max float64) ([]*ride.Ride, error) {
	return repo.query(ctx, `
		SELECT`+rideColumns+`
		FROM rides
		WHERE distance_km >= $1 AND distance_km <= $2
	`, min, max)
}

// FilterByDateRange returns rides created between start and end dates, both inclusive.
func (repo *RideQueryRepo) FilterByDateRange(ctx context.Context, start, end time.Time) ([]*ride.Ride, error) {
	return repo.query(ctx, `
		SELECT`+rideColumns+`
		FROM rides
		WHERE created_date >= $1 AND created_date <= $2
	`, start, end)
}

// SortByFare returns every ride ordered by fare.
func (repo *RideQueryRepo) SortByFare(ctx context.Context, order ride.SortOrder) ([]*ride.Ride, error) {
	return repo.query(ctx, `SELECT`+rideColumns+` FROM rides ORDER BY fare `+direction(order))
}

// ByPassenger returns all rides owned by one passenger.
func (repo *RideQueryRepo) ByPassenger(ctx context.Context, username string) ([]*ride.Ride, error) {
	return repo.query(ctx, `
		SELECT`+rideColumns+`
		FROM rides
		WHERE passenger_username = $1
	`, username)
}

// ByPassengerAndStatus narrows a passenger's rides by raw status equality.
func (repo *RideQueryRepo) ByPassengerAndStatus(ctx context.Context, username, status string) ([]*ride.Ride, error) {
	return repo.query(ctx, `
		SELECT`+rideColumns+`
		FROM rides
		WHERE passenger_username = $1 AND status = $2
	`, username, status)
}

// ActiveByDriver returns a driver's rides still in a non-terminal status.
func (repo *RideQueryRepo) ActiveByDriver(ctx context.Context, driverUsername string) ([]*ride.Ride, error) {
	actives := make([]string, 0, len(ride.ActiveStatuses))
	for _, st := range ride.ActiveStatuses {
		actives = append(actives, st.String())
	}
	return repo.query(ctx, `
		SELECT`+rideColumns+`
		FROM rides
		WHERE driver_username = $1 AND status = ANY($2)
	`, driverUsername, actives)
}

// ByCriteria runs the fixed status/keyword filter combination.
func (repo *RideQueryRepo) ByCriteria(ctx context.Context, c ride.Criteria) ([]*ride.Ride, error) {
	where, args := whereForCriteria(c)
	return repo.query(ctx, `SELECT`+rideColumns+` FROM rides `+where, args...)
}

// AdvancedSearch composes the optional criteria with sorting and pagination.
func (repo *RideQueryRepo) AdvancedSearch(ctx context.Context, q ride.AdvancedQuery) ([]*ride.Ride, error) {
	where, args := whereForCriteria(q.Criteria)

	sql := fmt.Sprintf(
		`SELECT`+rideColumns+` FROM rides %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		where, sortColumnFor(q.SortBy), direction(q.Order), len(args)+1, len(args)+2,
	)
	args = append(args, q.Size, q.Offset())

	return repo.query(ctx, sql, args...)
}

// ByDate returns rides created on exactly the given date.
func (repo *RideQueryRepo) ByDate(ctx context.Context, date time.Time) ([]*ride.Ride, error) {
	return repo.query(ctx, `
		SELECT`+rideColumns+`
		FROM rides
		WHERE created_date = $1
	`, date)
}

// query runs a SELECT inside the ambient transaction and collects ride rows.
func (repo *RideQueryRepo) query(ctx context.Context, sql string, args ...any) ([]*ride.Ride, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return collectRides(rows)
}

// --- filter composition ---

// whereForCriteria maps the immutable filter shape to a WHERE clause. The
// branching table is fixed: keyword alone OR-matches the two location
// columns, status alone is an equality, both combine with AND, neither is a
// no-op that matches all rides.
func whereForCriteria(c ride.Criteria) (string, []any) {
	switch {
	case c.Keyword != "" && c.Status != "":
		return "WHERE status = $1 AND (pickup_location ILIKE $2 OR drop_location ILIKE $2)",
			[]any{c.Status, likePattern(c.Keyword)}
	case c.Keyword != "":
		return "WHERE (pickup_location ILIKE $1 OR drop_location ILIKE $1)",
			[]any{likePattern(c.Keyword)}
	case c.Status != "":
		return "WHERE status = $1", []any{c.Status}
	default:
		return "", nil
	}
}

// sortColumns whitelists the sortable fields by their API names. Anything
// else falls back to created_at so caller input never reaches the SQL text.
var sortColumns = map[string]string{
	"createdAt":      "created_at",
	"createdDate":    "created_date",
	"fare":           "fare",
	"distanceKm":     "distance_km",
	"status":         "status",
	"pickupLocation": "pickup_location",
	"dropLocation":   "drop_location",
}

func sortColumnFor(field string) string {
	if col, ok := sortColumns[field]; ok {
		return col
	}
	return "created_at"
}

func direction(order ride.SortOrder) string {
	if order == ride.OrderDesc {
		return "DESC"
	}
	return "ASC"
}

// likePattern builds a substring ILIKE pattern, escaping the LIKE
// metacharacters in the raw keyword.
func likePattern(keyword string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(keyword)
	return "%" + escaped + "%"
}
