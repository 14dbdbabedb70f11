// Package chatlog stores the messages a knowledge check posts: the roll
// outcome plus the revealed information, addressed by message ID and
// listed most recent first.
package chatlog

import (
	"context"

	"github.com/lorekeep/bestiary-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=chatlogmock github.com/lorekeep/bestiary-api/internal/repositories/chatlog Repository

// AppendInput contains parameters for posting a message
type AppendInput struct {
	Message *entities.ChatMessage
}

// AppendOutput contains the result of posting a message
type AppendOutput struct {
	Message *entities.ChatMessage
}

// GetInput contains parameters for fetching a message
type GetInput struct {
	ID string
}

// GetOutput contains the result of fetching a message
type GetOutput struct {
	Message *entities.ChatMessage
}

// ListRecentInput contains parameters for listing recent messages
type ListRecentInput struct {
	// Limit caps the number of messages returned. Zero means the
	// repository's configured recent window.
	Limit int64
}

// ListRecentOutput contains recent messages, newest first
type ListRecentOutput struct {
	Messages []*entities.ChatMessage
}

// Repository defines the chat log storage operations
type Repository interface {
	// Append posts a message to the log
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get fetches a single message by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListRecent returns recent messages, newest first
	ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error)
}
