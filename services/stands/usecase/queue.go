package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/internal/pkg/observability"
	"github.com/helloauto/dispatch/internal/utils"
)

// Toggle joins or leaves a stand's queue. The geofence takes precedence
// over the requested direction: a driver reporting a position beyond it
// is evicted from the queue even when asking to join.
func (uc *standUC) Toggle(ctx context.Context, standID string, req models.ToggleRequest) (*models.QueueState, error) {
	if req.DriverID == "" {
		return nil, fmt.Errorf("%w: driver id is required", apperr.ErrValidation)
	}

	stand, err := uc.repo.GetStand(ctx, standID)
	if err != nil {
		return nil, err
	}

	member, err := uc.repo.IsMember(ctx, standID, req.DriverID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, fmt.Errorf("%w: driver is not a member of stand %s", apperr.ErrValidation, standID)
	}

	if req.Join && req.Location.IsZero() {
		return nil, fmt.Errorf("%w: a position is required to join the queue", apperr.ErrInvalidLocation)
	}
	if !req.Location.IsZero() {
		if dist := utils.DistanceMeters(req.Location, stand.Location); dist > uc.cfg.GeofenceM {
			uc.evict(req.DriverID)
			logger.Info("driver outside stand geofence",
				logger.String("driver_id", req.DriverID),
				logger.String("stand_id", standID),
				logger.Float64("distance_m", dist))
			return nil, fmt.Errorf("%w: %.0fm from stand, geofence is %.0fm",
				apperr.ErrOutOfRange, dist, uc.cfg.GeofenceM)
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.allocated[req.DriverID] {
		return nil, fmt.Errorf("%w: driver is on an active ride", apperr.ErrConflict)
	}

	if req.Join {
		if queuedAt, ok := uc.byDriver[req.DriverID]; ok {
			if queuedAt == standID {
				return uc.snapshotLocked(standID), nil
			}
			return nil, fmt.Errorf("%w: driver is queued at another stand", apperr.ErrConflict)
		}
		uc.queues[standID] = append(uc.queues[standID], models.QueueEntry{
			DriverID: req.DriverID,
			JoinedAt: time.Now(),
		})
		uc.byDriver[req.DriverID] = standID
	} else {
		if uc.byDriver[req.DriverID] != standID {
			return nil, fmt.Errorf("%w: driver is not in this stand's queue", apperr.ErrNotQueued)
		}
		uc.removeLocked(standID, req.DriverID)
	}

	observability.QueuedDrivers.Set(float64(len(uc.byDriver)))
	return uc.snapshotLocked(standID), nil
}

// FindNearest returns candidate stands for a pickup point, nearest
// first. An empty slice is a valid outcome.
func (uc *standUC) FindNearest(ctx context.Context, point models.Location) ([]*models.NearbyStand, error) {
	if point.IsZero() {
		return nil, fmt.Errorf("%w: a pickup position is required", apperr.ErrInvalidLocation)
	}
	return uc.repo.FindNearest(ctx, point, uc.cfg.SearchRadiusM, uc.cfg.StandLimit)
}

// Queue returns a snapshot of a stand's queue in join order
func (uc *standUC) Queue(standID string) *models.QueueState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshotLocked(standID)
}

// Allocate atomically claims a queued driver for a ride. The driver
// leaves the queue and cannot toggle back in until Release.
func (uc *standUC) Allocate(driverID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.allocated[driverID] {
		return fmt.Errorf("%w: driver already allocated", apperr.ErrConflict)
	}
	standID, ok := uc.byDriver[driverID]
	if !ok {
		return fmt.Errorf("%w: driver left the queue", apperr.ErrNotQueued)
	}

	uc.removeLocked(standID, driverID)
	uc.allocated[driverID] = true
	observability.QueuedDrivers.Set(float64(len(uc.byDriver)))
	return nil
}

// Release clears a driver's allocated flag once their ride reaches a
// terminal state. Safe to call more than once.
func (uc *standUC) Release(driverID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.allocated, driverID)
}

// evict removes a driver from whichever queue holds them, if any
func (uc *standUC) evict(driverID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	standID, ok := uc.byDriver[driverID]
	if !ok {
		return
	}
	uc.removeLocked(standID, driverID)
	observability.QueuedDrivers.Set(float64(len(uc.byDriver)))
}

// dropQueue discards a deleted stand's queue entirely
func (uc *standUC) dropQueue(standID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, entry := range uc.queues[standID] {
		delete(uc.byDriver, entry.DriverID)
	}
	delete(uc.queues, standID)
	observability.QueuedDrivers.Set(float64(len(uc.byDriver)))
}

// removeLocked drops a driver from a queue preserving join order.
// Caller holds uc.mu.
func (uc *standUC) removeLocked(standID, driverID string) {
	entries := uc.queues[standID]
	for i, entry := range entries {
		if entry.DriverID == driverID {
			uc.queues[standID] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	delete(uc.byDriver, driverID)
	if len(uc.queues[standID]) == 0 {
		delete(uc.queues, standID)
	}
}

// snapshotLocked copies a queue's entries. Caller holds uc.mu.
func (uc *standUC) snapshotLocked(standID string) *models.QueueState {
	entries := uc.queues[standID]
	out := make([]models.QueueEntry, len(entries))
	copy(out, entries)
	return &models.QueueState{StandID: standID, Entries: out}
}
