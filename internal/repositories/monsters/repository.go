// Package monsters stores the stat blocks a knowledge check reads from.
// Stat blocks are owned data: imported or hand-entered by a GM, not
// fetched live from the SRD on every check.
package monsters

import (
	"context"

	"github.com/lorekeep/bestiary-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=monstersmock github.com/lorekeep/bestiary-api/internal/repositories/monsters Repository

// PutInput contains parameters for storing a stat block
type PutInput struct {
	Monster *entities.MonsterStatBlock
}

// PutOutput contains the result of storing a stat block
type PutOutput struct {
	Monster *entities.MonsterStatBlock
}

// GetInput contains parameters for fetching a stat block
type GetInput struct {
	ID string
}

// GetOutput contains the result of fetching a stat block
type GetOutput struct {
	Monster *entities.MonsterStatBlock
}

// ListOutput contains all stored stat blocks
type ListOutput struct {
	Monsters []*entities.MonsterStatBlock
}

// Repository defines the stat block storage operations
type Repository interface {
	// Put stores a stat block, creating or replacing it
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get fetches a stat block by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every stored stat block
	List(ctx context.Context) (*ListOutput, error)
}
