package ports

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the plant settings
// singleton. Get always returns a value: when no row has been stored yet the
// repository materializes the defaults.
type SettingsRepository interface {
	// Get retrieves the current plant settings.
	Get(ctx context.Context) (*settings.Settings, error)

	// Save persists the plant settings, creating the row on first save.
	Save(ctx context.Context, aggregate *settings.Settings) error
}
