package orderrepo

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its planned rows to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database, upserting its rows and runs.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with rows ordered by sequence number and runs
// ordered by load sequence.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves an order by ID with a FOR UPDATE lock on the order
// row. Concurrent production commands against the same order serialize on
// this lock for the duration of the surrounding transaction.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}}), id)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB { return db.Order("seq_no ASC") }).
		Preload("Runs", func(db *gorm.DB) *gorm.DB { return db.Order("load_seq ASC") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves orders newest first, up to limit.
func (r *GormOrderRepository) GetAll(ctx context.Context, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Rows", func(db *gorm.DB) *gorm.DB { return db.Order("seq_no ASC") }).
		Preload("Runs", func(db *gorm.DB) *gorm.DB { return db.Order("load_seq ASC") }).
		Order("created_at DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// ExistsForRecipe reports whether any order references the given recipe.
func (r *GormOrderRepository) ExistsForRecipe(ctx context.Context, recipeID kernel.UUID) (bool, error) {
	return r.exists(ctx, r.db.Model(&OrderDTO{}).Where("recipe_id = ?", recipeID.Bytes()))
}

// ExistsForClient reports whether any order references the given client.
func (r *GormOrderRepository) ExistsForClient(ctx context.Context, clientID kernel.UUID) (bool, error) {
	return r.exists(ctx, r.db.Model(&OrderDTO{}).Where("client_id = ?", clientID.Bytes()))
}

// ExistsRunForVehicle reports whether any car run references the given vehicle.
func (r *GormOrderRepository) ExistsRunForVehicle(ctx context.Context, vehicleID kernel.UUID) (bool, error) {
	return r.exists(ctx, r.db.Model(&CarRunDTO{}).Where("vehicle_id = ?", vehicleID.Bytes()))
}

func (r *GormOrderRepository) exists(ctx context.Context, query *gorm.DB) (bool, error) {
	var count int64
	if err := query.WithContext(ctx).Limit(1).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
