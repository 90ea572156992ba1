package service

import (
	"context"
	"sync"
	"testing"

	"ride-booking/internal/domain/ride"
	"ride-booking/internal/general/logger"
	"ride-booking/internal/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----- in-memory fakes -----

// passThroughUow runs the function directly; fakes carry no transactions.
type passThroughUow struct{}

func (passThroughUow) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRideRepo mirrors the storage contract: the lifecycle writes are
// conditional on the current status, so a losing racer gets updated=false
// rather than clobbering the row.
type fakeRideRepo struct {
	mu    sync.Mutex
	rides map[string]*ride.Ride
}

func newFakeRideRepo() *fakeRideRepo {
	return &fakeRideRepo{rides: map[string]*ride.Ride{}}
}

func (f *fakeRideRepo) CreateRide(_ context.Context, r *ride.Ride) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = uuid.NewString()
	clone := *r
	f.rides[r.ID] = &clone
	return nil
}

func (f *fakeRideRepo) GetByID(_ context.Context, id string) (*ride.Ride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rides[id]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (f *fakeRideRepo) AcceptIfRequested(_ context.Context, rideID, driverUsername string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rides[rideID]
	if !ok || r.Status != ride.StatusRequested {
		return false, nil
	}
	r.DriverUsername = &driverUsername
	r.Status = ride.StatusAccepted
	return true, nil
}

func (f *fakeRideRepo) CompleteIfAccepted(_ context.Context, rideID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rides[rideID]
	if !ok || r.Status != ride.StatusAccepted {
		return false, nil
	}
	r.Status = ride.StatusCompleted
	return true, nil
}

type recordedEvent struct {
	RideID    string
	EventType string
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeEventRepo) Append(_ context.Context, rideID, eventType string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{RideID: rideID, EventType: eventType})
	return nil
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.EventType)
	}
	return out
}

func newTestRideService(t *testing.T) (ports.RideService, *fakeRideRepo, *fakeEventRepo) {
	t.Helper()
	rideRepo := newFakeRideRepo()
	eventRepo := &fakeEventRepo{}
	svc := NewRideService(logger.New("booking-service-test"), passThroughUow{}, rideRepo, nil, eventRepo, nil, nil)
	return svc, rideRepo, eventRepo
}

func mustCreate(t *testing.T, svc ports.RideService, passenger string) ports.RideView {
	t.Helper()
	view, err := svc.CreateRide(context.Background(), passenger, ports.CreateRideInput{
		PickupLocation: "Downtown",
		DropLocation:   "Airport",
		Fare:           25.5,
		DistanceKm:     12.3,
	})
	require.NoError(t, err)
	return view
}

// ----- lifecycle -----

func TestCreateRide(t *testing.T) {
	svc, _, events := newTestRideService(t)

	view := mustCreate(t, svc, "alice")
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "alice", view.PassengerUsername)
	assert.Nil(t, view.DriverUsername)
	assert.Equal(t, ride.StatusRequested.String(), view.Status)
	assert.Equal(t, []string{"RIDE_REQUESTED"}, events.types())
}

func TestCreateRideValidation(t *testing.T) {
	svc, _, _ := newTestRideService(t)

	_, err := svc.CreateRide(context.Background(), "alice", ports.CreateRideInput{
		PickupLocation: "",
		DropLocation:   "Airport",
		Fare:           10,
		DistanceKm:     5,
	})
	assert.ErrorIs(t, err, ride.ErrPickupRequired)

	_, err = svc.CreateRide(context.Background(), "alice", ports.CreateRideInput{
		PickupLocation: "Downtown",
		DropLocation:   "Airport",
		Fare:           -10,
		DistanceKm:     5,
	})
	assert.ErrorIs(t, err, ride.ErrNegativeFare)
}

func TestAcceptRide(t *testing.T) {
	svc, _, events := newTestRideService(t)
	created := mustCreate(t, svc, "alice")

	view, err := svc.AcceptRide(context.Background(), created.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, ride.StatusAccepted.String(), view.Status)
	require.NotNil(t, view.DriverUsername)
	assert.Equal(t, "bob", *view.DriverUsername)
	assert.Equal(t, []string{"RIDE_REQUESTED", "RIDE_ACCEPTED"}, events.types())
}

func TestAcceptRideUnknownID(t *testing.T) {
	svc, _, _ := newTestRideService(t)

	_, err := svc.AcceptRide(context.Background(), uuid.NewString(), "bob")
	assert.ErrorIs(t, err, ride.ErrNotFound)
}

func TestAcceptRideAlreadyAccepted(t *testing.T) {
	svc, repo, _ := newTestRideService(t)
	created := mustCreate(t, svc, "alice")

	_, err := svc.AcceptRide(context.Background(), created.ID, "bob")
	require.NoError(t, err)

	// second driver loses the conditional update
	_, err = svc.AcceptRide(context.Background(), created.ID, "carol")
	assert.ErrorIs(t, err, ride.ErrNotRequested)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.DriverUsername)
	assert.Equal(t, "bob", *stored.DriverUsername)
}

func TestCompleteRide(t *testing.T) {
	cases := []struct {
		name   string
		caller string
	}{
		{"by passenger", "alice"},
		{"by driver", "bob"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, events := newTestRideService(t)
			created := mustCreate(t, svc, "alice")
			_, err := svc.AcceptRide(context.Background(), created.ID, "bob")
			require.NoError(t, err)

			view, err := svc.CompleteRide(context.Background(), created.ID, tc.caller)
			require.NoError(t, err)
			assert.Equal(t, ride.StatusCompleted.String(), view.Status)
			assert.Equal(t, []string{"RIDE_REQUESTED", "RIDE_ACCEPTED", "RIDE_COMPLETED"}, events.types())
		})
	}
}

func TestCompleteRideGuards(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := newTestRideService(t)
		_, err := svc.CompleteRide(context.Background(), uuid.NewString(), "alice")
		assert.ErrorIs(t, err, ride.ErrNotFound)
	})

	t.Run("still requested", func(t *testing.T) {
		svc, _, _ := newTestRideService(t)
		created := mustCreate(t, svc, "alice")
		_, err := svc.CompleteRide(context.Background(), created.ID, "alice")
		assert.ErrorIs(t, err, ride.ErrNotAccepted)
	})

	t.Run("outsider", func(t *testing.T) {
		svc, _, _ := newTestRideService(t)
		created := mustCreate(t, svc, "alice")
		_, err := svc.AcceptRide(context.Background(), created.ID, "bob")
		require.NoError(t, err)

		_, err = svc.CompleteRide(context.Background(), created.ID, "mallory")
		assert.ErrorIs(t, err, ride.ErrNotParticipant)
	})

	t.Run("double complete", func(t *testing.T) {
		svc, _, _ := newTestRideService(t)
		created := mustCreate(t, svc, "alice")
		_, err := svc.AcceptRide(context.Background(), created.ID, "bob")
		require.NoError(t, err)
		_, err = svc.CompleteRide(context.Background(), created.ID, "bob")
		require.NoError(t, err)

		_, err = svc.CompleteRide(context.Background(), created.ID, "alice")
		assert.ErrorIs(t, err, ride.ErrNotAccepted)
	})
}

func TestFilterByDistanceFailsFast(t *testing.T) {
	// validation must reject before any storage access; queryRepo is nil so a
	// storage call would panic
	svc, _, _ := newTestRideService(t)

	_, err := svc.FilterByDistance(context.Background(), -1, 5)
	assert.ErrorIs(t, err, ride.ErrNegativeDistance)

	_, err = svc.FilterByDistance(context.Background(), 10, 5)
	assert.ErrorIs(t, err, ride.ErrMinAboveMax)
}
