package settingsrepo

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB, tracker aggregateTracker) *GormSettingsRepository {
	return &GormSettingsRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the settings row. When none has been stored yet, in-memory
// defaults are returned so callers never observe a missing configuration.
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var dto SettingsDTO
	if err := r.db.WithContext(ctx).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings.NewSettings(kernel.NewUUID())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save persists the settings row, creating it on first save.
func (r *GormSettingsRepository) Save(ctx context.Context, aggregate *settings.Settings) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
