package usecase

import (
	"sync"

	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/services/stands"
)

// standUC implements the stands business logic. Queue state is held in
// memory behind a single mutex so toggle, allocate and release are
// atomic with respect to each other.
type standUC struct {
	cfg      models.DispatchConfig
	repo     stands.StandRepo
	notifier stands.Notifier

	mu        sync.Mutex
	queues    map[string][]models.QueueEntry // standID -> entries, join order
	byDriver  map[string]string              // driverID -> standID the driver is queued at
	allocated map[string]bool                // driverID -> currently holds a ride
}

// NewStandUC creates a new stand usecase
func NewStandUC(cfg models.DispatchConfig, repo stands.StandRepo, notifier stands.Notifier) stands.StandUC {
	return &standUC{
		cfg:       cfg,
		repo:      repo,
		notifier:  notifier,
		queues:    make(map[string][]models.QueueEntry),
		byDriver:  make(map[string]string),
		allocated: make(map[string]bool),
	}
}
