package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/logger"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/internal/utils"
)

// CreateStand validates and persists a new stand
func (uc *standUC) CreateStand(ctx context.Context, stand *models.Stand) (*models.Stand, error) {
	if stand.Name == "" {
		return nil, fmt.Errorf("%w: stand name is required", apperr.ErrValidation)
	}
	if stand.Location.IsZero() {
		return nil, fmt.Errorf("%w: stand location is required", apperr.ErrInvalidLocation)
	}
	if stand.ID == uuid.Nil {
		stand.ID = uuid.New()
	}

	if err := uc.repo.CreateStand(ctx, stand); err != nil {
		return nil, err
	}

	// The creator is seated as the stand's first member.
	if stand.CreatorID != uuid.Nil {
		if err := uc.repo.AddMember(ctx, stand.ID.String(), stand.CreatorID.String()); err != nil {
			logger.Warn("failed to seat stand creator",
				logger.String("stand_id", stand.ID.String()),
				logger.Err(err))
		}
	}

	logger.Info("stand created",
		logger.String("stand_id", stand.ID.String()),
		logger.String("name", stand.Name))
	return stand, nil
}

// UpdateStand updates a stand's name and location
func (uc *standUC) UpdateStand(ctx context.Context, stand *models.Stand) (*models.Stand, error) {
	if stand.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: stand id is required", apperr.ErrValidation)
	}
	if stand.Name == "" {
		return nil, fmt.Errorf("%w: stand name is required", apperr.ErrValidation)
	}
	if stand.Location.IsZero() {
		return nil, fmt.Errorf("%w: stand location is required", apperr.ErrInvalidLocation)
	}

	if err := uc.repo.UpdateStand(ctx, stand); err != nil {
		return nil, err
	}
	return stand, nil
}

// DeleteStand removes a stand and drops its in-memory queue
func (uc *standUC) DeleteStand(ctx context.Context, standID string) error {
	if err := uc.repo.DeleteStand(ctx, standID); err != nil {
		return err
	}
	uc.dropQueue(standID)
	logger.Info("stand deleted", logger.String("stand_id", standID))
	return nil
}

// GetStand retrieves a stand by ID
func (uc *standUC) GetStand(ctx context.Context, standID string) (*models.Stand, error) {
	return uc.repo.GetStand(ctx, standID)
}

// Search finds stands by name. When the caller supplies a position the
// results carry distances and come back nearest first.
func (uc *standUC) Search(ctx context.Context, req models.StandSearchRequest) ([]*models.NearbyStand, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: search name is required", apperr.ErrValidation)
	}

	found, err := uc.repo.SearchStandsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	result := make([]*models.NearbyStand, 0, len(found))
	for _, stand := range found {
		nearby := &models.NearbyStand{Stand: *stand}
		if !req.Location.IsZero() {
			nearby.DistanceM = utils.DistanceMeters(req.Location, stand.Location)
		}
		result = append(result, nearby)
	}
	if !req.Location.IsZero() {
		sort.Slice(result, func(i, j int) bool {
			return result[i].DistanceM < result[j].DistanceM
		})
	}
	return result, nil
}

// Join adds a driver to a stand's roster. A driver belongs to at most
// one stand, so joining while a member elsewhere is a conflict.
func (uc *standUC) Join(ctx context.Context, standID, driverID string) error {
	stand, err := uc.repo.GetStand(ctx, standID)
	if err != nil {
		return err
	}

	current, err := uc.repo.MemberStand(ctx, driverID)
	if err != nil {
		return err
	}
	if current == standID {
		return fmt.Errorf("%w: driver already a member of this stand", apperr.ErrConflict)
	}
	if current != "" {
		return fmt.Errorf("%w: driver is a member of another stand", apperr.ErrConflict)
	}

	if err := uc.repo.AddMember(ctx, standID, driverID); err != nil {
		return err
	}

	uc.notifyMembers(ctx, stand, driverID, "driver joined the stand")
	return nil
}

// Leave removes a driver from a stand's roster and from its queue if
// the driver was waiting in it.
func (uc *standUC) Leave(ctx context.Context, standID, driverID string) error {
	stand, err := uc.repo.GetStand(ctx, standID)
	if err != nil {
		return err
	}

	if err := uc.repo.RemoveMember(ctx, standID, driverID); err != nil {
		return err
	}
	uc.evict(driverID)

	uc.notifyMembers(ctx, stand, driverID, "driver left the stand")
	return nil
}

// Members lists a stand's roster in join order
func (uc *standUC) Members(ctx context.Context, standID string) ([]*models.StandMember, error) {
	if _, err := uc.repo.GetStand(ctx, standID); err != nil {
		return nil, err
	}
	return uc.repo.ListMembers(ctx, standID)
}

// notifyMembers fans a roster event out to every member except the
// driver who caused it. Delivery is best effort; the hub buffers for
// offline members.
func (uc *standUC) notifyMembers(ctx context.Context, stand *models.Stand, driverID, message string) {
	members, err := uc.repo.ListMembers(ctx, stand.ID.String())
	if err != nil {
		logger.Warn("failed to list members for notification",
			logger.String("stand_id", stand.ID.String()),
			logger.Err(err))
		return
	}

	event := models.MemberNotification{
		StandID:   stand.ID.String(),
		StandName: stand.Name,
		DriverID:  driverID,
		Message:   message,
	}
	for _, member := range members {
		memberID := member.DriverID.String()
		if memberID == driverID {
			continue
		}
		if err := uc.notifier.Notify(memberID, constants.EventMemberNotification, event); err != nil {
			logger.Warn("failed to notify stand member",
				logger.String("driver_id", memberID),
				logger.Err(err))
		}
	}
}
