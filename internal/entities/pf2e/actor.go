package pf2e

// ActorType distinguishes player characters from the shared party stash
type ActorType string

// Actor types
const (
	ActorTypeCharacter ActorType = "character"
	ActorTypeParty     ActorType = "party"
)

// String returns the string representation of the actor type
func (t ActorType) String() string {
	return string(t)
}

// IsValid checks if the actor type is valid
func (t ActorType) IsValid() bool {
	switch t {
	case ActorTypeCharacter, ActorTypeParty:
		return true
	default:
		return false
	}
}

// Ownership levels, mirroring the host's document permission model
const (
	OwnershipNone     = 0
	OwnershipLimited  = 1
	OwnershipObserver = 2
	OwnershipOwner    = 3
)

// User identifies the acting user for permission checks
type User struct {
	ID string
	GM bool
}

// Currency holds an actor's coin balances. 1 gp = 10 sp = 100 cp.
type Currency struct {
	Gold   int `json:"gold,omitempty"`
	Silver int `json:"silver,omitempty"`
	Copper int `json:"copper,omitempty"`
}

// Copper per denomination
const (
	CopperPerSilver = 10
	CopperPerGold   = 100
)

// TotalCopper returns the balance normalized to the smallest denomination
func (c Currency) TotalCopper() int {
	return c.Gold*CopperPerGold + c.Silver*CopperPerSilver + c.Copper
}

// RemoveCopper deducts the given copper value, making change across
// denominations. Returns false and leaves the balance untouched when the
// total is insufficient.
func (c *Currency) RemoveCopper(amount int) bool {
	if amount < 0 {
		return false
	}
	total := c.TotalCopper()
	if total < amount {
		return false
	}
	remaining := total - amount
	c.Gold = remaining / CopperPerGold
	remaining %= CopperPerGold
	c.Silver = remaining / CopperPerSilver
	c.Copper = remaining % CopperPerSilver
	return true
}

// Actor is an owning document for items. It is a data-only struct; the
// repositories persist it as a single document, embedded items included.
type Actor struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      ActorType      `json:"type"`
	Items     []*Item        `json:"items,omitempty"`
	Currency  Currency       `json:"currency"`
	Ownership map[string]int `json:"ownership,omitempty"`
	CreatedAt int64          `json:"createdAt,omitempty"`
	UpdatedAt int64          `json:"updatedAt,omitempty"`
}

// Item returns the embedded item with the given ID, or nil
func (a *Actor) Item(id string) *Item {
	for _, item := range a.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// Runestone returns the first runestone container in the actor's inventory,
// or nil
func (a *Actor) Runestone() *Item {
	for _, item := range a.Items {
		if item.IsRunestone() {
			return item
		}
	}
	return nil
}

// CanManage reports whether the user may mutate this actor: outright GM,
// or ownership at owner level or above. Item visibility alone never grants
// management.
func (a *Actor) CanManage(user User) bool {
	if user.GM {
		return true
	}
	if user.ID == "" {
		return false
	}
	return a.Ownership[user.ID] >= OwnershipOwner
}

// Clone returns a deep copy of the actor
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	out := *a
	if a.Items != nil {
		out.Items = make([]*Item, len(a.Items))
		for i, item := range a.Items {
			out.Items[i] = item.Clone()
		}
	}
	if a.Ownership != nil {
		out.Ownership = make(map[string]int, len(a.Ownership))
		for k, v := range a.Ownership {
			out.Ownership[k] = v
		}
	}
	return &out
}
