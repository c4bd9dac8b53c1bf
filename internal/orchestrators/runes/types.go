package runes

import (
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// AttachRuneInput defines the request for attaching a rune item to a target
type AttachRuneInput struct {
	// User is the acting user; both actors must be manageable by them
	User pf2e.User
	// ActorID owns the rune item
	ActorID string
	// RuneItemID is the rune item being attached
	RuneItemID string
	// TargetActorID owns the target item
	TargetActorID string
	// TargetItemID is the item receiving the rune
	TargetItemID string
	// ConsumeRune deletes the rune item from the source actor on success
	ConsumeRune bool
}

// AttachRuneOutput defines the response for attaching a rune
type AttachRuneOutput struct {
	// Target is the updated target item
	Target *pf2e.Item
	// EvictedSlug names the property rune displaced to make room, if any
	EvictedSlug string
	// Canceled is true when the user dismissed the eviction prompt; no
	// document was touched
	Canceled bool
}

// ApplyFundamentalInput defines the request for applying a fundamental rune
// descriptor to a target item
type ApplyFundamentalInput struct {
	User          pf2e.User
	TargetActorID string
	TargetItemID  string
	// Potency, Striking, Resilient, Reinforcing are the ranks to apply;
	// zero fields are left untouched on the target
	Potency     int
	Striking    int
	Resilient   int
	Reinforcing int
}

// ApplyFundamentalOutput defines the response for applying a fundamental rune
type ApplyFundamentalOutput struct {
	Target *pf2e.Item
}

// ApplyPropertyInput defines the request for applying a property rune slug
// to a target item
type ApplyPropertyInput struct {
	User          pf2e.User
	TargetActorID string
	TargetItemID  string
	Slug          string
}

// ApplyPropertyOutput defines the response for applying a property rune
type ApplyPropertyOutput struct {
	Target      *pf2e.Item
	EvictedSlug string
	Canceled    bool
}

// FindTargetsInput defines the request for listing attachable targets in a
// single actor's inventory
type FindTargetsInput struct {
	User       pf2e.User
	ActorID    string
	RuneItemID string
}

// TargetCandidate is one legal destination for a rune
type TargetCandidate struct {
	ActorID   string
	ActorName string
	Item      *pf2e.Item
}

// FindTargetsOutput defines the response for listing attachable targets
type FindTargetsOutput struct {
	Candidates []*TargetCandidate
}

// FindTargetsAcrossActorsInput defines the request for listing attachable
// targets across every actor the user can manage
type FindTargetsAcrossActorsInput struct {
	User pf2e.User
	// ActorID owns the rune item
	ActorID    string
	RuneItemID string
}

// FindTargetsAcrossActorsOutput defines the response for the cross-actor
// target search
type FindTargetsAcrossActorsOutput struct {
	Candidates []*TargetCandidate
}
