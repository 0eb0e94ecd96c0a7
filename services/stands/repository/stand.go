package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/helloauto/dispatch/internal/pkg/apperr"
	"github.com/helloauto/dispatch/internal/pkg/constants"
	"github.com/helloauto/dispatch/internal/pkg/database"
	"github.com/helloauto/dispatch/internal/pkg/models"
	"github.com/helloauto/dispatch/internal/utils"
	"github.com/jmoiron/sqlx"
)

// StandRepo persists stands and their membership rosters in Postgres
// and maintains the stand geo index in Redis.
type StandRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewStandRepository creates a new stand repository
func NewStandRepository(db *sqlx.DB, redisClient *database.RedisClient) *StandRepo {
	return &StandRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// standRow is the flat scan target for the stands table
type standRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Latitude  float64   `db:"latitude"`
	Longitude float64   `db:"longitude"`
	Geohash   string    `db:"geohash"`
	CreatorID string    `db:"creator_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (row *standRow) toModel() (*models.Stand, error) {
	stand := &models.Stand{
		Name: row.Name,
		Location: models.Location{
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
		},
		Geohash:   row.Geohash,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	var err error
	if stand.ID, err = parseUUID(row.ID); err != nil {
		return nil, err
	}
	if stand.CreatorID, err = parseUUID(row.CreatorID); err != nil {
		return nil, err
	}
	return stand, nil
}

// CreateStand inserts a stand and registers it in the geo index
func (r *StandRepo) CreateStand(ctx context.Context, stand *models.Stand) error {
	stand.Geohash = utils.EncodeLocation(stand.Location, utils.GeohashPrecision)

	query := `
		INSERT INTO stands (id, name, latitude, longitude, geohash, creator_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	now := time.Now()
	stand.CreatedAt = now
	stand.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, query,
		stand.ID.String(),
		stand.Name,
		stand.Location.Latitude,
		stand.Location.Longitude,
		stand.Geohash,
		stand.CreatorID.String(),
		stand.CreatedAt,
		stand.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stand: %w", err)
	}

	return r.redisClient.GeoAdd(ctx, constants.KeyStandGeo,
		stand.Location.Longitude, stand.Location.Latitude, stand.ID.String())
}

// UpdateStand updates a stand's name and location and refreshes the
// geo index entry
func (r *StandRepo) UpdateStand(ctx context.Context, stand *models.Stand) error {
	stand.Geohash = utils.EncodeLocation(stand.Location, utils.GeohashPrecision)
	stand.UpdatedAt = time.Now()

	query := `
		UPDATE stands
		SET name = $2, latitude = $3, longitude = $4, geohash = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		stand.ID.String(),
		stand.Name,
		stand.Location.Latitude,
		stand.Location.Longitude,
		stand.Geohash,
		stand.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update stand: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.ErrNotFound
	}

	return r.redisClient.GeoAdd(ctx, constants.KeyStandGeo,
		stand.Location.Longitude, stand.Location.Latitude, stand.ID.String())
}

// DeleteStand removes a stand, its membership roster and its geo entry
func (r *StandRepo) DeleteStand(ctx context.Context, standID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stands WHERE id = $1`, standID)
	if err != nil {
		return fmt.Errorf("failed to delete stand: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.ErrNotFound
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM stand_members WHERE stand_id = $1`, standID); err != nil {
		return fmt.Errorf("failed to delete stand members: %w", err)
	}

	return r.redisClient.GeoRemove(ctx, constants.KeyStandGeo, standID)
}

// GetStand retrieves a stand by ID
func (r *StandRepo) GetStand(ctx context.Context, standID string) (*models.Stand, error) {
	var row standRow
	query := `
		SELECT id, name, latitude, longitude, geohash, creator_id, created_at, updated_at
		FROM stands WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &row, query, standID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stand: %w", err)
	}
	return row.toModel()
}

// SearchStandsByName retrieves stands whose name matches, case-insensitive
func (r *StandRepo) SearchStandsByName(ctx context.Context, name string) ([]*models.Stand, error) {
	var rows []standRow
	query := `
		SELECT id, name, latitude, longitude, geohash, creator_id, created_at, updated_at
		FROM stands WHERE name ILIKE '%' || $1 || '%'
	`
	if err := r.db.SelectContext(ctx, &rows, query, name); err != nil {
		return nil, fmt.Errorf("failed to search stands: %w", err)
	}

	result := make([]*models.Stand, 0, len(rows))
	for i := range rows {
		stand, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		result = append(result, stand)
	}
	return result, nil
}

// FindNearest returns stands within radiusM of point, nearest first,
// capped at limit. Uses the Redis geo index and hydrates from Postgres.
func (r *StandRepo) FindNearest(ctx context.Context, point models.Location, radiusM float64, limit int) ([]*models.NearbyStand, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyStandGeo,
		point.Longitude, point.Latitude, radiusM, "m", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stand geo index: %w", err)
	}

	result := make([]*models.NearbyStand, 0, len(locations))
	for _, loc := range locations {
		stand, err := r.GetStand(ctx, loc.Name)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				// Stale geo entry; skip it
				continue
			}
			return nil, err
		}
		result = append(result, &models.NearbyStand{
			Stand:     *stand,
			DistanceM: loc.Dist,
		})
	}
	return result, nil
}

// AddMember adds a driver to a stand's roster
func (r *StandRepo) AddMember(ctx context.Context, standID, driverID string) error {
	query := `
		INSERT INTO stand_members (stand_id, driver_id, joined_at)
		VALUES ($1, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, standID, driverID, time.Now()); err != nil {
		return fmt.Errorf("failed to add stand member: %w", err)
	}
	return nil
}

// RemoveMember removes a driver from a stand's roster
func (r *StandRepo) RemoveMember(ctx context.Context, standID, driverID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM stand_members WHERE stand_id = $1 AND driver_id = $2`, standID, driverID)
	if err != nil {
		return fmt.Errorf("failed to remove stand member: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// ListMembers lists a stand's roster in join order
func (r *StandRepo) ListMembers(ctx context.Context, standID string) ([]*models.StandMember, error) {
	type memberRow struct {
		StandID  string    `db:"stand_id"`
		DriverID string    `db:"driver_id"`
		JoinedAt time.Time `db:"joined_at"`
	}
	var rows []memberRow
	query := `
		SELECT stand_id, driver_id, joined_at
		FROM stand_members WHERE stand_id = $1
		ORDER BY joined_at ASC
	`
	if err := r.db.SelectContext(ctx, &rows, query, standID); err != nil {
		return nil, fmt.Errorf("failed to list stand members: %w", err)
	}

	result := make([]*models.StandMember, 0, len(rows))
	for _, row := range rows {
		standUUID, err := parseUUID(row.StandID)
		if err != nil {
			return nil, err
		}
		driverUUID, err := parseUUID(row.DriverID)
		if err != nil {
			return nil, err
		}
		result = append(result, &models.StandMember{
			StandID:  standUUID,
			DriverID: driverUUID,
			JoinedAt: row.JoinedAt,
		})
	}
	return result, nil
}

// IsMember reports whether a driver belongs to a stand's roster
func (r *StandRepo) IsMember(ctx context.Context, standID, driverID string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM stand_members WHERE stand_id = $1 AND driver_id = $2`
	if err := r.db.GetContext(ctx, &count, query, standID, driverID); err != nil {
		return false, fmt.Errorf("failed to check stand membership: %w", err)
	}
	return count > 0, nil
}

// MemberStand returns the stand a driver belongs to, or empty if none.
// A driver belongs to at most one stand at a time.
func (r *StandRepo) MemberStand(ctx context.Context, driverID string) (string, error) {
	var standID string
	query := `SELECT stand_id FROM stand_members WHERE driver_id = $1 LIMIT 1`
	if err := r.db.GetContext(ctx, &standID, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve driver stand: %w", err)
	}
	return standID, nil
}
func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uuid %q: %w", s, err)
	}
	return id, nil
}
