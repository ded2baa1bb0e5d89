package reciperepo

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecipeRepository implements RecipeRepository using GORM.
type GormRecipeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRecipeRepository creates a new GORM recipe repository.
func NewGormRecipeRepository(db *gorm.DB, tracker aggregateTracker) *GormRecipeRepository {
	return &GormRecipeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new recipe to the database.
func (r *GormRecipeRepository) Add(ctx context.Context, aggregate *recipe.Recipe) error {
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

// Update saves an existing recipe to the database.
func (r *GormRecipeRepository) Update(ctx context.Context, aggregate *recipe.Recipe) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RecipeDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a recipe by ID.
func (r *GormRecipeRepository) Get(ctx context.Context, id kernel.UUID) (*recipe.Recipe, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipe", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a recipe by its unique name.
func (r *GormRecipeRepository) GetByName(ctx context.Context, name string) (*recipe.Recipe, error) {
	var dto RecipeDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipe", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every recipe ordered by name.
func (r *GormRecipeRepository) GetAll(ctx context.Context) ([]*recipe.Recipe, error) {
	var dtos []RecipeDTO
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	recipes := make([]*recipe.Recipe, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}

	return recipes, nil
}

// Delete removes a recipe from the database.
func (r *GormRecipeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RecipeDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("recipe", id.String())
	}

	return nil
}
