package actors

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
	"github.com/KirkDiggler/rune-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*pf2e.Actor
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*pf2e.Actor),
		clock: clock.New(),
	}
}

// NewInMemoryWithClock creates an in-memory repository with a fixed clock
func NewInMemoryWithClock(c clock.Clock) *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*pf2e.Actor),
		clock: c,
	}
}

// Create stores a new actor document
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Actor.ID]; exists {
		return nil, errors.AlreadyExistsf("actor with ID %s already exists", input.Actor.ID)
	}

	actor := input.Actor.Clone()
	now := r.clock.Now().Unix()
	actor.CreatedAt = now
	actor.UpdatedAt = now
	r.store[actor.ID] = actor

	return &CreateOutput{Actor: actor.Clone()}, nil
}

// Get retrieves an actor by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Actor: actor.Clone()}, nil
}

// Update replaces an actor document
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.store[input.Actor.ID]
	if !exists {
		return nil, errors.NotFoundf("actor with ID %s not found", input.Actor.ID)
	}

	actor := input.Actor.Clone()
	actor.CreatedAt = existing.CreatedAt
	actor.UpdatedAt = r.clock.Now().Unix()
	r.store[actor.ID] = actor

	return &UpdateOutput{Actor: actor.Clone()}, nil
}

// Delete removes an actor by ID
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List retrieves all actors, optionally filtered by type
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	actors := make([]*pf2e.Actor, 0, len(r.store))
	for _, actor := range r.store {
		if input.Type != "" && actor.Type != input.Type {
			continue
		}
		actors = append(actors, actor.Clone())
	}

	return &ListOutput{Actors: actors}, nil
}
