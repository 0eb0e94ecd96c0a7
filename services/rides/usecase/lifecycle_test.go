package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lifecycleFixture struct {
	repo    *mocks.MockRideRepo
	otpRepo *mocks.MockOTPRepo
	gw      *mocks.MockRideGW
	queue   *mocks.MockDriverQueue
	hub     *fakeHub
	uc      *rideUC
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &lifecycleFixture{
		repo:    mocks.NewMockRideRepo(ctrl),
		otpRepo: mocks.NewMockOTPRepo(ctrl),
		gw:      mocks.NewMockRideGW(ctrl),
		queue:   mocks.NewMockDriverQueue(ctrl),
		hub:     newFakeHub(),
	}
	finder := mocks.NewMockStandFinder(ctrl)
	f.uc = NewRideUC(testCfg, f.repo, f.otpRepo, f.gw, f.hub, finder, f.queue).(*rideUC)
	return f
}

func acceptedRide() *models.Ride {
	return &models.Ride{
		RideID:   "ride-1",
		RiderID:  "rider-1",
		DriverID: "d1",
		StandID:  "stand-1",
		Status:   models.RideStatusAccepted,
		Pickup:   models.Location{Latitude: 9.9312, Longitude: 76.2673},
		Dropoff:  models.Location{Latitude: 9.9816, Longitude: 76.2999},
		Fare:     80,
	}
}

func TestVerifyOTP_Success(t *testing.T) {
	f := newLifecycleFixture(t)
	ride := acceptedRide()

	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil)
	f.otpRepo.EXPECT().GetOTP(gomock.Any(), "ride-1").Return("4821", nil)
	f.repo.EXPECT().StartRide(gomock.Any(), "ride-1", gomock.Any()).Return(nil)
	f.otpRepo.EXPECT().DeleteOTP(gomock.Any(), "ride-1").Return(nil)
	f.gw.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.uc.VerifyOTP(context.Background(), "ride-1", "d1", models.VerifyRequest{
		Code:     "4821",
		Location: ride.Pickup,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusInProgress, updated.Status)
	require.NotNil(t, updated.StartedAt)
	assert.Equal(t, ride.Pickup, updated.StartedAt.Location)
}

func TestVerifyOTP_WrongCode(t *testing.T) {
	f := newLifecycleFixture(t)
	ride := acceptedRide()

	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil)
	f.otpRepo.EXPECT().GetOTP(gomock.Any(), "ride-1").Return("4821", nil)

	_, err := f.uc.VerifyOTP(context.Background(), "ride-1", "d1", models.VerifyRequest{
		Code:     "0000",
		Location: ride.Pickup,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidVerification)
}

func TestVerifyOTP_ExpiredCode(t *testing.T) {
	f := newLifecycleFixture(t)
	ride := acceptedRide()

	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil)
	f.otpRepo.EXPECT().GetOTP(gomock.Any(), "ride-1").Return("", nil)

	_, err := f.uc.VerifyOTP(context.Background(), "ride-1", "d1", models.VerifyRequest{
		Code:     "4821",
		Location: ride.Pickup,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidVerification)
}

func TestVerifyOTP_MissingLocation(t *testing.T) {
	f := newLifecycleFixture(t)

	// Rejected before the ride or the code is consulted
	_, err := f.uc.VerifyOTP(context.Background(), "ride-1", "d1", models.VerifyRequest{Code: "4821"})
	assert.ErrorIs(t, err, apperr.ErrInvalidLocation)
}

func TestVerifyOTP_RepeatAttemptFails(t *testing.T) {
	f := newLifecycleFixture(t)
	ride := acceptedRide()

	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil)
	f.otpRepo.EXPECT().GetOTP(gomock.Any(), "ride-1").Return("4821", nil)
	f.repo.EXPECT().StartRide(gomock.Any(), "ride-1", gomock.Any()).Return(nil)
	f.otpRepo.EXPECT().DeleteOTP(gomock.Any(), "ride-1").Return(nil)
	f.gw.EXPECT().PublishRideStarted(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.VerifyOTP(context.Background(), "ride-1", "d1", models.VerifyRequest{
		Code:     "4821",
		Location: ride.Pickup,
	})
	require.NoError(t, err)

	// The ride is now in_progress; presenting the code again fails on
	// the state check before the code is even consulted
	started := acceptedRide()
	started.Status = models.RideStatusInProgress
	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(started, nil)

	_, err = f.uc.VerifyOTP(context.Background(), "ride-1", "d1", models.VerifyRequest{
		Code:     "4821",
		Location: ride.Pickup,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestVerifyOTP_WrongDriver(t *testing.T) {
	f := newLifecycleFixture(t)
	ride := acceptedRide()

	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil)

	_, err := f.uc.VerifyOTP(context.Background(), "ride-1", "intruder", models.VerifyRequest{
		Code:     "4821",
		Location: ride.Pickup,
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestVerifyOTP_OutsidePickupGeofence(t *testing.T) {
	f := newLifecycleFixture(t)
	ride := acceptedRide()

	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil)

	// Roughly 1.1km from the pickup point
	_, err := f.uc.VerifyOTP(context.Background(), "ride-1", "d1", models.VerifyRequest{
		Code:     "4821",
		Location: models.Location{Latitude: 9.9412, Longitude: 76.2673},
	})
	assert.ErrorIs(t, err, apperr.ErrOutOfRange)
}

func TestCompleteRide_TeardownAndRelease(t *testing.T) {
	f := newLifecycleFixture(t)
	ride := acceptedRide()
	ride.Status = models.RideStatusInProgress

	f.uc.armRelay(ride)

	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil)
	f.repo.EXPECT().CompleteRide(gomock.Any(), "ride-1", gomock.Any(), ride.Fare).Return(nil)
	f.queue.EXPECT().Release("d1")
	f.gw.EXPECT().PublishRideCompleted(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.uc.CompleteRide(context.Background(), "ride-1", "d1", models.CompleteRequest{
		Location: ride.Dropoff,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCompleted, updated.Status)

	// The relay is gone: a late ping gets ride_not_found, nothing is
	// forwarded to the rider
	before := len(f.hub.sentEvents("rider-1"))
	f.uc.HandleLocationUpdate("d1", models.LocationUpdate{
		RideID:   "ride-1",
		Location: models.Location{Latitude: 9.98, Longitude: 76.29},
	})
	assert.Len(t, f.hub.sentEvents("rider-1"), before)
}

func TestCompleteRide_WrongState(t *testing.T) {
	f := newLifecycleFixture(t)
	ride := acceptedRide()

	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil)

	_, err := f.uc.CompleteRide(context.Background(), "ride-1", "d1", models.CompleteRequest{
		Location: ride.Dropoff,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestCompleteRide_MissingLocation(t *testing.T) {
	f := newLifecycleFixture(t)

	// No repo call happens; the request dies on input validation
	_, err := f.uc.CompleteRide(context.Background(), "ride-1", "d1", models.CompleteRequest{})
	assert.ErrorIs(t, err, apperr.ErrInvalidLocation)
}

func TestCancelRide_NonTerminal(t *testing.T) {
	f := newLifecycleFixture(t)
	ride := acceptedRide()
	f.uc.armRelay(ride)

	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil)
	f.repo.EXPECT().CancelRide(gomock.Any(), "ride-1").Return(nil)
	f.otpRepo.EXPECT().DeleteOTP(gomock.Any(), "ride-1").Return(nil)
	f.queue.EXPECT().Release("d1")
	f.gw.EXPECT().PublishRideCancelled(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.uc.CancelRide(context.Background(), "ride-1")
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusCancelled, updated.Status)
}

func TestCancelRide_AlreadyTerminal(t *testing.T) {
	f := newLifecycleFixture(t)
	ride := acceptedRide()
	ride.Status = models.RideStatusCompleted

	f.repo.EXPECT().GetRide(gomock.Any(), "ride-1").Return(ride, nil)

	_, err := f.uc.CancelRide(context.Background(), "ride-1")
	assert.ErrorIs(t, err, apperr.ErrInvalidState)
}

func TestQuote_FareFromDistance(t *testing.T) {
	f := newLifecycleFixture(t)

	quote, err := f.uc.Quote(models.QuoteRequest{
		Pickup:  models.Location{Latitude: 9.9312, Longitude: 76.2673},
		Dropoff: models.Location{Latitude: 9.9816, Longitude: 76.2999},
	})
	require.NoError(t, err)
	assert.Greater(t, quote.DistanceKm, 0.0)
	assert.InDelta(t, testCfg.BaseFare+testCfg.FarePerKm*quote.DistanceKm, quote.Fare, 0.001)

	_, err = f.uc.Quote(models.QuoteRequest{})
	assert.ErrorIs(t, err, apperr.ErrInvalidLocation)
}
