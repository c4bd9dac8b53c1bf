package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
)

// Document is the on-disk shape of a rune catalog: the host system's
// RUNE_DATA tables exported as JSON.
type Document struct {
	Weapon SectionData `json:"weapon"`
	Armor  SectionData `json:"armor"`
}

// SectionData holds one target category's rune tables
type SectionData struct {
	Property    map[string]PropertyRuneData    `json:"property"`
	Fundamental map[string]FundamentalRuneData `json:"fundamental,omitempty"`
}

// FileConfig contains configuration for the file-backed catalog client
type FileConfig struct {
	// Path to the JSON catalog document
	Path string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("catalog path cannot be empty")
	}
	return nil
}

type fileClient struct {
	path string

	mu  sync.RWMutex
	doc *Document
}

// NewFile creates a catalog client backed by a JSON document on disk. The
// document is loaded eagerly so a malformed catalog fails at startup, not
// mid-operation.
func NewFile(cfg *FileConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &fileClient{path: cfg.Path}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *fileClient) load() error {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read rune catalog")
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(err, "failed to parse rune catalog %s", c.path)
	}

	c.mu.Lock()
	c.doc = &doc
	c.mu.Unlock()

	slog.Info("Loaded rune catalog",
		"path", c.path,
		"weapon_property_runes", len(doc.Weapon.Property),
		"armor_property_runes", len(doc.Armor.Property),
	)
	return nil
}

func (c *fileClient) section(s Section) (SectionData, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.doc == nil {
		return SectionData{}, errors.CatalogUnavailable("rune catalog is not loaded")
	}
	switch s {
	case SectionWeapon:
		return c.doc.Weapon, nil
	case SectionArmor:
		return c.doc.Armor, nil
	default:
		return SectionData{}, errors.InvalidArgumentf("unknown catalog section %q", s)
	}
}

func (c *fileClient) propertyRune(section Section, slug string) (*PropertyRuneData, error) {
	data, err := c.section(section)
	if err != nil {
		return nil, err
	}

	entry, ok := data.Property[strings.ToLower(slug)]
	if !ok {
		return nil, errors.NotFoundf("no %s property rune %q in catalog", section, slug)
	}
	if entry.Slug == "" {
		entry.Slug = strings.ToLower(slug)
	}
	return &entry, nil
}

func (c *fileClient) WeaponPropertyRune(_ context.Context, slug string) (*PropertyRuneData, error) {
	return c.propertyRune(SectionWeapon, slug)
}

func (c *fileClient) ArmorPropertyRune(_ context.Context, slug string) (*PropertyRuneData, error) {
	return c.propertyRune(SectionArmor, slug)
}

func (c *fileClient) PrunePropertyRunes(_ context.Context, candidates []string, section Section) ([]string, error) {
	data, err := c.section(section)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(candidates))
	valid := make([]string, 0, len(candidates))
	for _, slug := range candidates {
		key := strings.ToLower(slug)
		if _, ok := data.Property[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		valid = append(valid, key)
	}
	return valid, nil
}

func (c *fileClient) PropertyRuneSlots(_ context.Context, item *pf2e.Item) (int, error) {
	if item == nil {
		return 0, errors.InvalidArgument("item cannot be nil")
	}

	slots := item.Runes.Potency
	if slots < 0 {
		slots = 0
	}
	// Orichalcum gear holds one extra property rune.
	if strings.EqualFold(item.Material, "orichalcum") {
		slots++
	}
	return slots, nil
}

func (c *fileClient) Ping(_ context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.doc == nil {
		return errors.CatalogUnavailable("rune catalog is not loaded")
	}
	return nil
}
