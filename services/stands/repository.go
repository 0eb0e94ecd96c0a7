package stands

import (
	"context"

	"github.com/helloauto/dispatch/internal/pkg/models"
)

// StandRepo defines the interface for stand data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/helloauto/dispatch/services/stands StandRepo
type StandRepo interface {
	CreateStand(ctx context.Context, stand *models.Stand) error
	UpdateStand(ctx context.Context, stand *models.Stand) error
	DeleteStand(ctx context.Context, standID string) error
	GetStand(ctx context.Context, standID string) (*models.Stand, error)
	SearchStandsByName(ctx context.Context, name string) ([]*models.Stand, error)
	FindNearest(ctx context.Context, point models.Location, radiusM float64, limit int) ([]*models.NearbyStand, error)

	AddMember(ctx context.Context, standID, driverID string) error
	RemoveMember(ctx context.Context, standID, driverID string) error
	ListMembers(ctx context.Context, standID string) ([]*models.StandMember, error)
	IsMember(ctx context.Context, standID, driverID string) (bool, error)
	MemberStand(ctx context.Context, driverID string) (string, error)
}
