// Package actors provides the interface for actor document persistence.
// Actor documents are owned by the host table; this layer is the module's
// mirror of them, one JSON blob per actor.
package actors

//go:generate mockgen -destination=mock/mock_repository.go -package=actorsmock github.com/KirkDiggler/rune-api/internal/repositories/actors Repository

import (
	"context"

	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Create stores a new actor document
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an actor with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an actor document. Rune mutations always flow through
	// here as one write per touched actor.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves all actors, optionally filtered by type
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for storing a new actor
type CreateInput struct {
	Actor *pf2e.Actor
}

// CreateOutput defines the output for storing a new actor
type CreateOutput struct {
	Actor *pf2e.Actor
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *pf2e.Actor
}

// UpdateInput defines the input for updating an actor
type UpdateInput struct {
	Actor *pf2e.Actor
}

// UpdateOutput defines the output for updating an actor
type UpdateOutput struct {
	Actor *pf2e.Actor
}

// DeleteInput defines the input for deleting an actor
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an actor
type DeleteOutput struct{}

// ListInput defines the input for listing actors. Type narrows the result
// to a single actor type when set.
type ListInput struct {
	Type pf2e.ActorType
}

// ListOutput defines the output for listing actors
type ListOutput struct {
	Actors []*pf2e.Actor
}
