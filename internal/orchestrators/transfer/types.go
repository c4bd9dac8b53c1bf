package transfer

import (
	"github.com/KirkDiggler/rune-api/internal/engine"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
)

// Method selects how a transfer is paid for
type Method string

// Transfer methods
const (
	// MethodVendor charges 10% of the rune's price immediately
	MethodVendor Method = "vendor"
	// MethodCrafting gates the move behind a crafting check reported by
	// the user, then charges
	MethodCrafting Method = "crafting"
	// MethodFree moves the rune without cost (GM tooling)
	MethodFree Method = "free"
)

// RuneChoice identifies one transferable rune on a source item. Fundamental
// choices carry the field and rank; property choices carry the slug.
type RuneChoice struct {
	Kind        engine.RuneKind
	Fundamental string
	Rank        int
	Slug        string

	// Annotations resolved at listing time
	Label      string
	Level      int
	PriceGP    int
	CostCopper int
}

// ListTransferableRunesInput defines the request for listing the runes on a
// source item
type ListTransferableRunesInput struct {
	User         pf2e.User
	ActorID      string
	SourceItemID string
}

// ListTransferableRunesOutput defines the response for listing transferable
// runes
type ListTransferableRunesOutput struct {
	Choices []*RuneChoice
}

// PaySource selects whose purse a transfer charges
type PaySource string

// Pay sources
const (
	PaySourceActor PaySource = "actor"
	PaySourceParty PaySource = "party"
)

// TransferInput defines the request for moving a single rune between two
// items on an actor
type TransferInput struct {
	User         pf2e.User
	ActorID      string
	SourceItemID string
	TargetItemID string
	Choice       *RuneChoice
	Method       Method
	// RemoveFromSource clears the rune off the source item; false copies it
	RemoveFromSource bool
	// PaySource selects the purse; defaults to the actor's own
	PaySource PaySource
}

// TransferOutput defines the response for a single-rune transfer
type TransferOutput struct {
	Source *pf2e.Item
	Target *pf2e.Item
	// CostCopper is what was actually charged
	CostCopper int
	// Canceled is true when the user backed out of the crafting gate
	Canceled bool
	// CheckFailed is true when the user reported a failed crafting check;
	// nothing moved and nothing was charged
	CheckFailed bool
}

// TransferAllInput defines the request for the batch move. The flags select
// independent rune groups; each selected group follows the same slot and
// removal rules as a single transfer.
type TransferAllInput struct {
	User         pf2e.User
	ActorID      string
	SourceItemID string
	TargetItemID string
	Method       Method
	PaySource    PaySource

	Potency          bool
	Secondary        bool
	Property         bool
	RemoveFromSource bool
}

// TransferAllOutput defines the response for the batch move
type TransferAllOutput struct {
	Source      *pf2e.Item
	Target      *pf2e.Item
	Moved       []*RuneChoice
	CostCopper  int
	Canceled    bool
	CheckFailed bool
}
