package catalog

import (
	"context"

	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
)

// unavailableClient is the explicit "absent oracle" variant. The engine
// treats its errors as a signal to fall back to the built-in tables, so a
// deployment without a catalog still works with degraded rune coverage.
type unavailableClient struct{}

// NewUnavailable creates a catalog client representing an absent catalog
func NewUnavailable() Client {
	return &unavailableClient{}
}

func (c *unavailableClient) err() error {
	return errors.CatalogUnavailable("rune catalog is not configured")
}

func (c *unavailableClient) WeaponPropertyRune(_ context.Context, _ string) (*PropertyRuneData, error) {
	return nil, c.err()
}

func (c *unavailableClient) ArmorPropertyRune(_ context.Context, _ string) (*PropertyRuneData, error) {
	return nil, c.err()
}

func (c *unavailableClient) PrunePropertyRunes(_ context.Context, _ []string, _ Section) ([]string, error) {
	return nil, c.err()
}

func (c *unavailableClient) PropertyRuneSlots(_ context.Context, _ *pf2e.Item) (int, error) {
	return 0, c.err()
}

func (c *unavailableClient) Ping(_ context.Context) error {
	return c.err()
}
