package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/services/rides/mocks"
	standsmocks "github.com/helloauto/dispatch/services/stands/mocks"
	standsUC "github.com/helloauto/dispatch/services/stands/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = models.DispatchConfig{
	OfferTimeout:  50 * time.Millisecond,
	SearchRadiusM: 5000,
	StandLimit:    10,
	GeofenceM:     50,
	OTPTTL:        10 * time.Minute,
	FarePerKm:     12,
	BaseFare:      30,
}

type sentMsg struct {
	event string
	data  interface{}
}

// fakeHub is an in-memory presence hub. Offers trigger the onOffer
// hook so tests can answer like a driver's app would.
type fakeHub struct {
	mu          sync.Mutex
	offline     map[string]bool
	sent        map[string][]sentMsg
	notified    map[string][]sentMsg
	disconnects map[string]chan struct{}
	onOffer     func(driverID string, offer models.RideOffer)
}

func newFakeHub() *fakeHub {
	return &fakeHub{
		offline:     make(map[string]bool),
		sent:        make(map[string][]sentMsg),
		notified:    make(map[string][]sentMsg),
		disconnects: make(map[string]chan struct{}),
	}
}

func (h *fakeHub) SendToUser(userID, event string, data interface{}) error {
	h.mu.Lock()
	if h.offline[userID] {
		h.mu.Unlock()
		return fmt.Errorf("%w: %s", apperr.ErrPresenceUnavailable, userID)
	}
	h.sent[userID] = append(h.sent[userID], sentMsg{event: event, data: data})
	hook := h.onOffer
	h.mu.Unlock()

	if event == constants.EventRideRequest && hook != nil {
		go hook(userID, data.(models.RideOffer))
	}
	return nil
}

func (h *fakeHub) Notify(userID, event string, data interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notified[userID] = append(h.notified[userID], sentMsg{event: event, data: data})
	return nil
}

func (h *fakeHub) IsOnline(userID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.offline[userID]
}

func (h *fakeHub) WatchDisconnect(userID string) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ch := make(chan struct{})
	if h.offline[userID] {
		close(ch)
		return ch, func() {}
	}
	h.disconnects[userID] = ch
	return ch, func() {}
}

func (h *fakeHub) setOffline(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.offline[userID] = true
	if ch, ok := h.disconnects[userID]; ok {
		close(ch)
		delete(h.disconnects, userID)
	}
}

func (h *fakeHub) sentEvents(userID string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	events := make([]string, 0, len(h.sent[userID]))
	for _, m := range h.sent[userID] {
		events = append(events, m.event)
	}
	return events
}

func (h *fakeHub) notifiedEvents(userID string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	events := make([]string, 0, len(h.notified[userID]))
	for _, m := range h.notified[userID] {
		events = append(events, m.event)
	}
	return events
}

func queueOf(standID string, driverIDs ...string) *models.QueueState {
	entries := make([]models.QueueEntry, 0, len(driverIDs))
	for _, id := range driverIDs {
		entries = append(entries, models.QueueEntry{DriverID: id, JoinedAt: time.Now()})
	}
	return &models.QueueState{StandID: standID, Entries: entries}
}

func oneStand() []*models.NearbyStand {
	return []*models.NearbyStand{{
		Stand: models.Stand{
			ID:       uuid.New(),
			Name:     "Central Stand",
			Location: models.Location{Latitude: 9.9312, Longitude: 76.2673},
		},
		DistanceM: 20,
	}}
}

func rideRequest() models.RideRequest {
	return models.RideRequest{
		RiderID:   "rider-1",
		RiderName: "Anu",
		Pickup:    models.Location{Latitude: 9.9312, Longitude: 76.2673},
		Dropoff:   models.Location{Latitude: 9.9816, Longitude: 76.2999},
		Fare:      80,
	}
}

func TestDispatch_FirstDriverAccepts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRideRepo(ctrl)
	otpRepo := mocks.NewMockOTPRepo(ctrl)
	gw := mocks.NewMockRideGW(ctrl)
	finder := mocks.NewMockStandFinder(ctrl)
	queue := mocks.NewMockDriverQueue(ctrl)
	hub := newFakeHub()

	uc := NewRideUC(testCfg, repo, otpRepo, gw, hub, finder, queue).(*rideUC)
	hub.onOffer = func(driverID string, offer models.RideOffer) {
		uc.HandleRideResponse(models.RideResponse{
			RideID:   offer.RideID,
			DriverID: driverID,
			Accepted: true,
		})
	}

	stands := oneStand()
	finder.EXPECT().FindNearest(gomock.Any(), gomock.Any()).Return(stands, nil)
	queue.EXPECT().Queue(stands[0].ID.String()).Return(queueOf(stands[0].ID.String(), "d1"))
	queue.EXPECT().Allocate("d1").Return(nil)
	repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	otpRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any(), gomock.Any(), testCfg.OTPTTL).Return(nil)
	gw.EXPECT().PublishRideAccepted(gomock.Any(), gomock.Any()).Return(nil)

	ride, matched, err := uc.Dispatch(context.Background(), rideRequest())
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "d1", ride.DriverID)
	assert.Equal(t, models.RideStatusAccepted, ride.Status)

	assert.Contains(t, hub.notifiedEvents("rider-1"), constants.EventRideAccepted)
	assert.Contains(t, hub.notifiedEvents("rider-1"), constants.EventOTPGenerated)
	assert.Contains(t, hub.sentEvents("d1"), constants.EventStartLocationSharing)
}

func TestDispatch_TimeoutAndDeclineMoveOn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRideRepo(ctrl)
	otpRepo := mocks.NewMockOTPRepo(ctrl)
	gw := mocks.NewMockRideGW(ctrl)
	finder := mocks.NewMockStandFinder(ctrl)
	queue := mocks.NewMockDriverQueue(ctrl)
	hub := newFakeHub()

	var offerMu sync.Mutex
	offeredRideIDs := make(map[string]string)

	uc := NewRideUC(testCfg, repo, otpRepo, gw, hub, finder, queue).(*rideUC)
	hub.onOffer = func(driverID string, offer models.RideOffer) {
		offerMu.Lock()
		offeredRideIDs[driverID] = offer.RideID
		offerMu.Unlock()

		switch driverID {
		case "d1":
			// Never answers; the offer times out
		case "d2":
			uc.HandleRideResponse(models.RideResponse{
				RideID: offer.RideID, DriverID: driverID, Accepted: false,
			})
		case "d3":
			uc.HandleRideResponse(models.RideResponse{
				RideID: offer.RideID, DriverID: driverID, Accepted: true,
			})
		}
	}

	stands := oneStand()
	standID := stands[0].ID.String()
	finder.EXPECT().FindNearest(gomock.Any(), gomock.Any()).Return(stands, nil)
	queue.EXPECT().Queue(standID).Return(queueOf(standID, "d1", "d2", "d3"))
	// Only the accepting driver is claimed; d1 and d2 keep their spots
	queue.EXPECT().Allocate("d3").Return(nil)
	repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	otpRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishRideAccepted(gomock.Any(), gomock.Any()).Return(nil)

	ride, matched, err := uc.Dispatch(context.Background(), rideRequest())
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "d3", ride.DriverID)

	// Each driver saw a distinct ride identity; the ones that lapsed
	// are worthless to whoever saw them
	offerMu.Lock()
	defer offerMu.Unlock()
	require.Len(t, offeredRideIDs, 3)
	assert.NotEqual(t, offeredRideIDs["d1"], offeredRideIDs["d3"])
	assert.NotEqual(t, offeredRideIDs["d2"], offeredRideIDs["d3"])
	assert.Equal(t, offeredRideIDs["d3"], ride.RideID)
}

func TestDispatch_SkipsOfflineAndLostDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRideRepo(ctrl)
	otpRepo := mocks.NewMockOTPRepo(ctrl)
	gw := mocks.NewMockRideGW(ctrl)
	finder := mocks.NewMockStandFinder(ctrl)
	queue := mocks.NewMockDriverQueue(ctrl)
	hub := newFakeHub()
	hub.setOffline("d1")

	uc := NewRideUC(testCfg, repo, otpRepo, gw, hub, finder, queue).(*rideUC)
	hub.onOffer = func(driverID string, offer models.RideOffer) {
		uc.HandleRideResponse(models.RideResponse{
			RideID: offer.RideID, DriverID: driverID, Accepted: true,
		})
	}

	stands := oneStand()
	standID := stands[0].ID.String()
	finder.EXPECT().FindNearest(gomock.Any(), gomock.Any()).Return(stands, nil)
	queue.EXPECT().Queue(standID).Return(queueOf(standID, "d1", "d2", "d3"))
	// d1 is offline and never gets an offer; d2 accepted but left the
	// queue between the snapshot and the claim, which reads as a timeout
	queue.EXPECT().Allocate("d2").Return(apperr.ErrNotQueued)
	queue.EXPECT().Allocate("d3").Return(nil)
	repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	otpRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishRideAccepted(gomock.Any(), gomock.Any()).Return(nil)

	ride, matched, err := uc.Dispatch(context.Background(), rideRequest())
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "d3", ride.DriverID)
}

func TestDispatch_DriverDisconnectDuringOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRideRepo(ctrl)
	otpRepo := mocks.NewMockOTPRepo(ctrl)
	gw := mocks.NewMockRideGW(ctrl)
	finder := mocks.NewMockStandFinder(ctrl)
	queue := mocks.NewMockDriverQueue(ctrl)
	hub := newFakeHub()

	uc := NewRideUC(testCfg, repo, otpRepo, gw, hub, finder, queue).(*rideUC)
	hub.onOffer = func(driverID string, offer models.RideOffer) {
		switch driverID {
		case "d1":
			hub.setOffline("d1")
		case "d2":
			uc.HandleRideResponse(models.RideResponse{
				RideID: offer.RideID, DriverID: driverID, Accepted: true,
			})
		}
	}

	stands := oneStand()
	standID := stands[0].ID.String()
	finder.EXPECT().FindNearest(gomock.Any(), gomock.Any()).Return(stands, nil)
	queue.EXPECT().Queue(standID).Return(queueOf(standID, "d1", "d2"))
	queue.EXPECT().Allocate("d2").Return(nil)
	repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	otpRepo.EXPECT().StoreOTP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishRideAccepted(gomock.Any(), gomock.Any()).Return(nil)

	ride, matched, err := uc.Dispatch(context.Background(), rideRequest())
	require.NoError(t, err)
	require.True(t, matched)
	assert.Equal(t, "d2", ride.DriverID)
}

func TestDispatch_TimedOutDriverKeepsQueueSpot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stand := models.Stand{
		ID:       uuid.New(),
		Name:     "Central Stand",
		Location: models.Location{Latitude: 9.9312, Longitude: 76.2673},
	}
	standID := stand.ID.String()

	standRepo := standsmocks.NewMockStandRepo(ctrl)
	standRepo.EXPECT().GetStand(gomock.Any(), standID).Return(&stand, nil)
	standRepo.EXPECT().IsMember(gomock.Any(), standID, "d1").Return(true, nil)
	standQueue := standsUC.NewStandUC(testCfg, standRepo, standsmocks.NewMockNotifier(ctrl))

	_, err := standQueue.Toggle(context.Background(), standID, models.ToggleRequest{
		DriverID: "d1", Join: true, Location: stand.Location,
	})
	require.NoError(t, err)

	finder := mocks.NewMockStandFinder(ctrl)
	finder.EXPECT().FindNearest(gomock.Any(), gomock.Any()).
		Return([]*models.NearbyStand{{Stand: stand, DistanceM: 20}}, nil)

	// The driver is online but never answers, so the offer times out
	hub := newFakeHub()
	uc := NewRideUC(testCfg,
		mocks.NewMockRideRepo(ctrl),
		mocks.NewMockOTPRepo(ctrl),
		mocks.NewMockRideGW(ctrl),
		hub, finder, standQueue,
	)

	ride, matched, err := uc.Dispatch(context.Background(), rideRequest())
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Nil(t, ride)

	state := standQueue.Queue(standID)
	require.Len(t, state.Entries, 1)
	assert.Equal(t, "d1", state.Entries[0].DriverID)
}

func TestDispatch_NoCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRideRepo(ctrl)
	otpRepo := mocks.NewMockOTPRepo(ctrl)
	gw := mocks.NewMockRideGW(ctrl)
	finder := mocks.NewMockStandFinder(ctrl)
	queue := mocks.NewMockDriverQueue(ctrl)
	hub := newFakeHub()

	uc := NewRideUC(testCfg, repo, otpRepo, gw, hub, finder, queue)

	stands := oneStand()
	finder.EXPECT().FindNearest(gomock.Any(), gomock.Any()).Return(stands, nil)
	queue.EXPECT().Queue(stands[0].ID.String()).Return(queueOf(stands[0].ID.String()))

	ride, matched, err := uc.Dispatch(context.Background(), rideRequest())
	require.NoError(t, err)
	assert.False(t, matched)
	assert.Nil(t, ride)
	assert.Contains(t, hub.notifiedEvents("rider-1"), constants.EventRideNotFound)
}

func TestDispatch_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRideUC(testCfg,
		mocks.NewMockRideRepo(ctrl),
		mocks.NewMockOTPRepo(ctrl),
		mocks.NewMockRideGW(ctrl),
		newFakeHub(),
		mocks.NewMockStandFinder(ctrl),
		mocks.NewMockDriverQueue(ctrl),
	)

	_, _, err := uc.Dispatch(context.Background(), models.RideRequest{
		Pickup:  models.Location{Latitude: 1, Longitude: 1},
		Dropoff: models.Location{Latitude: 2, Longitude: 2},
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, _, err = uc.Dispatch(context.Background(), models.RideRequest{RiderID: "rider-1"})
	assert.ErrorIs(t, err, apperr.ErrInvalidLocation)
}

func TestHandleRideResponse_StaleAnswersDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewRideUC(testCfg,
		mocks.NewMockRideRepo(ctrl),
		mocks.NewMockOTPRepo(ctrl),
		mocks.NewMockRideGW(ctrl),
		newFakeHub(),
		mocks.NewMockStandFinder(ctrl),
		mocks.NewMockDriverQueue(ctrl),
	).(*rideUC)

	// No pending offer for this driver; must not panic or block
	uc.HandleRideResponse(models.RideResponse{
		RideID: "stale", DriverID: "d1", Accepted: true,
	})

	// Pending offer for a different ride; the answer is dropped
	uc.mu.Lock()
	uc.offers["d1"] = &pendingOffer{rideID: "current", resp: make(chan models.RideResponse, 1)}
	uc.mu.Unlock()
	uc.HandleRideResponse(models.RideResponse{
		RideID: "stale", DriverID: "d1", Accepted: true,
	})

	uc.mu.Lock()
	pending := uc.offers["d1"]
	uc.mu.Unlock()
	assert.Empty(t, pending.resp)
}
