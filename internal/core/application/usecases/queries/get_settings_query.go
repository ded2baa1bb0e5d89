package queries

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/settingsrepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New(
	"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
)

// GetSettingsQuery retrieves the plant settings. Defaults are materialized
// when nothing has been stored yet, so the query always yields a value.
type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSettingsQuery creates a query for the plant settings.
func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// GetSettingsQueryResponse is the plant settings read model.
type GetSettingsQueryResponse struct {
	TolerancePct    float64
	MixerCapacity   float64
	DefaultRecipeID *kernel.UUID
}

// GetSettingsQueryHandler reads the settings row through the repository so
// the defaults fallback lives in one place.
type GetSettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetSettingsQueryHandler creates a handler for settings queries.
func NewGetSettingsQueryHandler(db *gorm.DB) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetSettingsQueryHandler) Handle(
	ctx context.Context,
	query GetSettingsQuery,
) (GetSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSettingsQueryResponse{}, err
	}

	aggregate, err := settingsrepo.NewGormSettingsRepository(h.db, noTracking{}).Get(ctx)
	if err != nil {
		return GetSettingsQueryResponse{}, err
	}

	return GetSettingsQueryResponse{
		TolerancePct:    aggregate.TolerancePct(),
		MixerCapacity:   aggregate.MixerCapacity(),
		DefaultRecipeID: aggregate.DefaultRecipeID(),
	}, nil
}
