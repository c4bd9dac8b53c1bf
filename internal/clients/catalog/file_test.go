package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rune-api/internal/clients/catalog"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
)

const testCatalog = `{
	"weapon": {
		"property": {
			"flaming": {"name": "Flaming", "level": 8, "price": 500, "usage": "etched-onto-a-weapon"},
			"vorpal": {"name": "Vorpal", "level": 17, "price": 15000, "usage": "etched-onto-a-slashing-melee-weapon"}
		}
	},
	"armor": {
		"property": {
			"slick": {"name": "Slick", "level": 5, "price": 45, "usage": "etched-onto-armor"}
		}
	}
}`

type FileClientTestSuite struct {
	suite.Suite
	ctx    context.Context
	client catalog.Client
}

func (s *FileClientTestSuite) SetupTest() {
	s.ctx = context.Background()

	path := filepath.Join(s.T().TempDir(), "runes.json")
	s.Require().NoError(os.WriteFile(path, []byte(testCatalog), 0o600))

	client, err := catalog.NewFile(&catalog.FileConfig{Path: path})
	s.Require().NoError(err)
	s.client = client
}

func (s *FileClientTestSuite) TestWeaponPropertyRune() {
	entry, err := s.client.WeaponPropertyRune(s.ctx, "flaming")
	s.Require().NoError(err)
	s.Equal("Flaming", entry.Name)
	s.Equal(8, entry.Level)
	s.Equal(500, entry.PriceGP)
	s.Equal("flaming", entry.Slug, "slug is backfilled from the map key")
}

func (s *FileClientTestSuite) TestLookupIsCaseInsensitive() {
	entry, err := s.client.ArmorPropertyRune(s.ctx, "Slick")
	s.Require().NoError(err)
	s.Equal(45, entry.PriceGP)
}

func (s *FileClientTestSuite) TestMissingRuneIsNotFound() {
	_, err := s.client.WeaponPropertyRune(s.ctx, "slick")
	s.Require().Error(err, "armor runes do not leak into the weapon section")
	s.True(errors.IsNotFound(err))
}

func (s *FileClientTestSuite) TestPrunePropertyRunes() {
	pruned, err := s.client.PrunePropertyRunes(s.ctx,
		[]string{"flaming", "made-up", "Flaming", "vorpal"}, catalog.SectionWeapon)
	s.Require().NoError(err)
	s.Equal([]string{"flaming", "vorpal"}, pruned)
}

func (s *FileClientTestSuite) TestPropertyRuneSlots() {
	item := &pf2e.Item{Type: pf2e.ItemTypeWeapon, Runes: pf2e.RuneState{Potency: 2}}
	slots, err := s.client.PropertyRuneSlots(s.ctx, item)
	s.Require().NoError(err)
	s.Equal(2, slots)

	item.Material = "orichalcum"
	slots, err = s.client.PropertyRuneSlots(s.ctx, item)
	s.Require().NoError(err)
	s.Equal(3, slots)
}

func (s *FileClientTestSuite) TestPing() {
	s.NoError(s.client.Ping(s.ctx))
}

func (s *FileClientTestSuite) TestMissingFileFailsAtStartup() {
	_, err := catalog.NewFile(&catalog.FileConfig{Path: "/nonexistent/runes.json"})
	s.Require().Error(err)
}

func (s *FileClientTestSuite) TestUnavailableClient() {
	client := catalog.NewUnavailable()
	s.Require().Error(client.Ping(s.ctx))

	_, err := client.WeaponPropertyRune(s.ctx, "flaming")
	s.True(errors.IsCatalogUnavailable(err))
}

func TestFileClientTestSuite(t *testing.T) {
	suite.Run(t, new(FileClientTestSuite))
}
