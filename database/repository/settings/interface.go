package settingsRepo

import (
	"context"

	"jojocolaresbeauty/models"
)

// SettingsRepository persists the back-office configuration document.
type SettingsRepository interface {
	// Get returns the stored settings, or the documented defaults when no
	// settings document exists yet.
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, settings models.Settings) error
}
