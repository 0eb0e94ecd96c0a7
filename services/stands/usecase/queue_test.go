package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/services/stands/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDispatchConfig = models.DispatchConfig{
	SearchRadiusM: 5000,
	StandLimit:    10,
	GeofenceM:     50,
}

// standAt builds a stand fixture at the given coordinates
func standAt(lat, lng float64) *models.Stand {
	return &models.Stand{
		ID:   uuid.New(),
		Name: "Central Stand",
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
		},
	}
}

func TestToggle_JoinPreservesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockStandRepo(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	stand := standAt(9.9312, 76.2673)
	standID := stand.ID.String()
	mockRepo.EXPECT().GetStand(gomock.Any(), standID).Return(stand, nil).AnyTimes()
	mockRepo.EXPECT().IsMember(gomock.Any(), standID, gomock.Any()).Return(true, nil).AnyTimes()

	uc := NewStandUC(testDispatchConfig, mockRepo, mockNotifier)

	near := stand.Location
	for _, driverID := range []string{"d1", "d2", "d3"} {
		state, err := uc.Toggle(context.Background(), standID, models.ToggleRequest{
			DriverID: driverID,
			Join:     true,
			Location: near,
		})
		require.NoError(t, err)
		assert.Equal(t, driverID, state.Entries[len(state.Entries)-1].DriverID)
	}

	state := uc.Queue(standID)
	require.Len(t, state.Entries, 3)
	assert.Equal(t, "d1", state.Entries[0].DriverID)
	assert.Equal(t, "d2", state.Entries[1].DriverID)
	assert.Equal(t, "d3", state.Entries[2].DriverID)
}

func TestToggle_JoinIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockStandRepo(ctrl)
	stand := standAt(9.9312, 76.2673)
	standID := stand.ID.String()
	mockRepo.EXPECT().GetStand(gomock.Any(), standID).Return(stand, nil).AnyTimes()
	mockRepo.EXPECT().IsMember(gomock.Any(), standID, "d1").Return(true, nil).AnyTimes()

	uc := NewStandUC(testDispatchConfig, mockRepo, mocks.NewMockNotifier(ctrl))

	req := models.ToggleRequest{DriverID: "d1", Join: true, Location: stand.Location}
	_, err := uc.Toggle(context.Background(), standID, req)
	require.NoError(t, err)

	state, err := uc.Toggle(context.Background(), standID, req)
	require.NoError(t, err)
	assert.Len(t, state.Entries, 1)
}

func TestToggle_RejectsSecondStand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockStandRepo(ctrl)
	standA := standAt(9.9312, 76.2673)
	standB := standAt(9.9320, 76.2680)
	mockRepo.EXPECT().GetStand(gomock.Any(), standA.ID.String()).Return(standA, nil).AnyTimes()
	mockRepo.EXPECT().GetStand(gomock.Any(), standB.ID.String()).Return(standB, nil).AnyTimes()
	mockRepo.EXPECT().IsMember(gomock.Any(), gomock.Any(), "d1").Return(true, nil).AnyTimes()

	uc := NewStandUC(testDispatchConfig, mockRepo, mocks.NewMockNotifier(ctrl))

	_, err := uc.Toggle(context.Background(), standA.ID.String(), models.ToggleRequest{
		DriverID: "d1", Join: true, Location: standA.Location,
	})
	require.NoError(t, err)

	_, err = uc.Toggle(context.Background(), standB.ID.String(), models.ToggleRequest{
		DriverID: "d1", Join: true, Location: standB.Location,
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestToggle_LeaveNotQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockStandRepo(ctrl)
	stand := standAt(9.9312, 76.2673)
	standID := stand.ID.String()
	mockRepo.EXPECT().GetStand(gomock.Any(), standID).Return(stand, nil).AnyTimes()
	mockRepo.EXPECT().IsMember(gomock.Any(), standID, "d1").Return(true, nil).AnyTimes()

	uc := NewStandUC(testDispatchConfig, mockRepo, mocks.NewMockNotifier(ctrl))

	_, err := uc.Toggle(context.Background(), standID, models.ToggleRequest{DriverID: "d1", Join: false})
	assert.ErrorIs(t, err, apperr.ErrNotQueued)
}

func TestToggle_GeofenceEvictsOnJoin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockStandRepo(ctrl)
	stand := standAt(9.9312, 76.2673)
	standID := stand.ID.String()
	mockRepo.EXPECT().GetStand(gomock.Any(), standID).Return(stand, nil).AnyTimes()
	mockRepo.EXPECT().IsMember(gomock.Any(), standID, "d1").Return(true, nil).AnyTimes()

	uc := NewStandUC(testDispatchConfig, mockRepo, mocks.NewMockNotifier(ctrl))

	_, err := uc.Toggle(context.Background(), standID, models.ToggleRequest{
		DriverID: "d1", Join: true, Location: stand.Location,
	})
	require.NoError(t, err)

	// Roughly 1.1km north of the stand, well outside the 50m geofence.
	// Asking to join from out there still evicts.
	far := models.Location{Latitude: 9.9412, Longitude: 76.2673}
	_, err = uc.Toggle(context.Background(), standID, models.ToggleRequest{
		DriverID: "d1", Join: true, Location: far,
	})
	assert.ErrorIs(t, err, apperr.ErrOutOfRange)
	assert.Empty(t, uc.Queue(standID).Entries)
}

func TestToggle_NonMemberRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockStandRepo(ctrl)
	stand := standAt(9.9312, 76.2673)
	standID := stand.ID.String()
	mockRepo.EXPECT().GetStand(gomock.Any(), standID).Return(stand, nil)
	mockRepo.EXPECT().IsMember(gomock.Any(), standID, "outsider").Return(false, nil)

	uc := NewStandUC(testDispatchConfig, mockRepo, mocks.NewMockNotifier(ctrl))

	_, err := uc.Toggle(context.Background(), standID, models.ToggleRequest{
		DriverID: "outsider", Join: true, Location: stand.Location,
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAllocate_ClaimsDriverOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockStandRepo(ctrl)
	stand := standAt(9.9312, 76.2673)
	standID := stand.ID.String()
	mockRepo.EXPECT().GetStand(gomock.Any(), standID).Return(stand, nil).AnyTimes()
	mockRepo.EXPECT().IsMember(gomock.Any(), standID, "d1").Return(true, nil).AnyTimes()

	uc := NewStandUC(testDispatchConfig, mockRepo, mocks.NewMockNotifier(ctrl))

	_, err := uc.Toggle(context.Background(), standID, models.ToggleRequest{
		DriverID: "d1", Join: true, Location: stand.Location,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Allocate("d1"))
	assert.Empty(t, uc.Queue(standID).Entries)

	// Second claim must lose
	assert.ErrorIs(t, uc.Allocate("d1"), apperr.ErrConflict)

	// Allocated drivers cannot toggle back in until released
	_, err = uc.Toggle(context.Background(), standID, models.ToggleRequest{
		DriverID: "d1", Join: true, Location: stand.Location,
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	uc.Release("d1")
	_, err = uc.Toggle(context.Background(), standID, models.ToggleRequest{
		DriverID: "d1", Join: true, Location: stand.Location,
	})
	assert.NoError(t, err)
}

func TestAllocate_NotQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewStandUC(testDispatchConfig, mocks.NewMockStandRepo(ctrl), mocks.NewMockNotifier(ctrl))
	assert.ErrorIs(t, uc.Allocate("ghost"), apperr.ErrNotQueued)
}

func TestAllocate_ConcurrentSingleWinner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockStandRepo(ctrl)
	stand := standAt(9.9312, 76.2673)
	standID := stand.ID.String()
	mockRepo.EXPECT().GetStand(gomock.Any(), standID).Return(stand, nil).AnyTimes()
	mockRepo.EXPECT().IsMember(gomock.Any(), standID, "d1").Return(true, nil).AnyTimes()

	uc := NewStandUC(testDispatchConfig, mockRepo, mocks.NewMockNotifier(ctrl))

	_, err := uc.Toggle(context.Background(), standID, models.ToggleRequest{
		DriverID: "d1", Join: true, Location: stand.Location,
	})
	require.NoError(t, err)

	const racers = 16
	var wins int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func() {
			defer wg.Done()
			if uc.Allocate("d1") == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}
