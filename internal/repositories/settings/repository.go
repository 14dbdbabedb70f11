// Package settings stores the tier configuration a knowledge check reads:
// per-tier difficulty thresholds and the information kinds each tier
// reveals.
package settings

import (
	"context"

	"github.com/lorekeep/bestiary-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=settingsmock github.com/lorekeep/bestiary-api/internal/repositories/settings Repository

// GetOutput contains the result of reading tier settings
type GetOutput struct {
	Settings *entities.TierSettings
}

// UpdateInput contains parameters for replacing tier settings
type UpdateInput struct {
	Settings *entities.TierSettings
}

// UpdateOutput contains the result of replacing tier settings
type UpdateOutput struct {
	Settings *entities.TierSettings
}

// Repository defines the tier settings storage operations. Settings are
// process-wide configuration: read at the start of each check, written
// only through the administrative surface.
type Repository interface {
	// Get returns the current settings, falling back to defaults when
	// none have been stored
	Get(ctx context.Context) (*GetOutput, error)

	// Update validates and replaces the stored settings
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
}
