// Package bestiary stores the per-monster journal records a GM commits
// revealed knowledge into. Records are keyed by monster name so repeat
// encounters with the same creature land on one page.
package bestiary

import (
	"context"

	"github.com/lorekeep/bestiary-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=bestiarymock github.com/lorekeep/bestiary-api/internal/repositories/bestiary Repository

// GetInput contains parameters for fetching a record
type GetInput struct {
	MonsterName string
}

// GetOutput contains the result of fetching a record
type GetOutput struct {
	Record *entities.BestiaryRecord
}

// CreateInput contains parameters for creating a record
type CreateInput struct {
	Record *entities.BestiaryRecord
}

// CreateOutput contains the result of creating a record
type CreateOutput struct {
	Record *entities.BestiaryRecord
}

// UpdateInput contains parameters for replacing a record's content
type UpdateInput struct {
	Record *entities.BestiaryRecord
}

// UpdateOutput contains the result of replacing a record
type UpdateOutput struct {
	Record *entities.BestiaryRecord
}

// ListOutput contains all records
type ListOutput struct {
	Records []*entities.BestiaryRecord
}

// Repository defines the bestiary record storage operations
type Repository interface {
	// Get fetches a record by monster name
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Create stores a new record, failing if one already exists for the
	// monster
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update replaces an existing record wholesale. A commit from a lower
	// roll overwrites a richer page; the GM decides what to commit, the
	// store does not merge.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// List returns every record
	List(ctx context.Context) (*ListOutput, error)
}
