package transfer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rune-api/internal/clients/catalog"
	"github.com/KirkDiggler/rune-api/internal/engine"
	"github.com/KirkDiggler/rune-api/internal/engine/etching"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
	"github.com/KirkDiggler/rune-api/internal/orchestrators/transfer"
	"github.com/KirkDiggler/rune-api/internal/repositories/actors"
	"github.com/KirkDiggler/rune-api/internal/testutils/builders"
	"github.com/KirkDiggler/rune-api/internal/ui"
)

// craftingPrompter reports a scripted crafting outcome
type craftingPrompter struct {
	outcome  ui.CraftingOutcome
	canceled bool
	prompted int
	lastDC   int
}

func (p *craftingPrompter) ChooseOption(_ context.Context, _ *ui.ChooseOptionInput) (*ui.ChooseOptionOutput, error) {
	return &ui.ChooseOptionOutput{Canceled: true}, nil
}

func (p *craftingPrompter) ConfirmCraftingCheck(
	_ context.Context,
	input *ui.ConfirmCraftingCheckInput,
) (*ui.ConfirmCraftingCheckOutput, error) {
	p.prompted++
	p.lastDC = input.DC
	return &ui.ConfirmCraftingCheckOutput{Outcome: p.outcome, Canceled: p.canceled}, nil
}

// recordingChat captures every check posted to the table log
type recordingChat struct {
	records []*ui.CraftingCheckRecord
}

func (c *recordingChat) PostCraftingCheck(_ context.Context, record *ui.CraftingCheckRecord) error {
	c.records = append(c.records, record)
	return nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     *actors.InMemoryRepository
	prompter *craftingPrompter
	chat     *recordingChat
	service  transfer.Service
	user     pf2e.User
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = actors.NewInMemory()
	s.prompter = &craftingPrompter{outcome: ui.CraftingOutcomeSuccess}
	s.chat = &recordingChat{}
	s.user = pf2e.User{ID: "user-1"}

	eng, err := etching.New(&etching.Config{
		CatalogClient: catalog.NewUnavailable(),
	})
	s.Require().NoError(err)

	service, err := transfer.NewOrchestrator(&transfer.Config{
		ActorRepo:  s.repo,
		Engine:     eng,
		Prompter:   s.prompter,
		Notifier:   ui.NewLogNotifier(),
		ChatPoster: s.chat,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorTestSuite) seedActor(gold int, items ...*pf2e.Item) *pf2e.Actor {
	actor := builders.NewActorBuilder().
		WithID("actor-1").
		WithOwner(s.user.ID).
		WithCurrency(gold, 0, 0).
		WithItems(items...).
		Build()
	_, err := s.repo.Create(s.ctx, actors.CreateInput{Actor: actor})
	s.Require().NoError(err)
	return actor
}

func (s *OrchestratorTestSuite) getActor(id string) *pf2e.Actor {
	got, err := s.repo.Get(s.ctx, actors.GetInput{ID: id})
	s.Require().NoError(err)
	return got.Actor
}

func (s *OrchestratorTestSuite) getItem(actorID, itemID string) *pf2e.Item {
	item := s.getActor(actorID).Item(itemID)
	s.Require().NotNil(item)
	return item
}

func (s *OrchestratorTestSuite) runedWeapon(id, name string, runes pf2e.RuneState) *pf2e.Item {
	return builders.NewWeaponBuilder().WithID(id).WithName(name).WithRunes(runes).Build()
}

func (s *OrchestratorTestSuite) TestListTransferableRunes() {
	weapon := s.runedWeapon("w1", "+2 Greater Striking Flaming Longsword", pf2e.RuneState{
		Potency:  2,
		Striking: 2,
		Property: []string{"flaming"},
	})
	s.seedActor(0, weapon)

	output, err := s.service.ListTransferableRunes(s.ctx, &transfer.ListTransferableRunesInput{
		User:         s.user,
		ActorID:      "actor-1",
		SourceItemID: "w1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Choices, 3)

	potency := output.Choices[0]
	s.Equal("+2 Potency", potency.Label)
	s.Equal(10, potency.Level)
	s.Equal(935, potency.PriceGP)
	s.Equal(9350, potency.CostCopper, "10 percent of the price, in copper")

	striking := output.Choices[1]
	s.Equal("Greater Striking", striking.Label)
	s.Equal(2, striking.Rank)

	flaming := output.Choices[2]
	s.Equal("Flaming Rune", flaming.Label)
	s.Equal(8, flaming.Level)
	s.Equal(5000, flaming.CostCopper)
}

// A 500 gp rune costs 50 gp to move; a 40 gp purse refuses before anything
// mutates.
func (s *OrchestratorTestSuite) TestVendorInsufficientFundsAbortsUntouched() {
	source := s.runedWeapon("w1", "+1 Flaming Longsword", pf2e.RuneState{
		Potency:  1,
		Property: []string{"flaming"},
	})
	target := s.runedWeapon("w2", "+1 Longsword", pf2e.RuneState{Potency: 1})
	s.seedActor(40, source, target)

	_, err := s.service.Transfer(s.ctx, &transfer.TransferInput{
		User:             s.user,
		ActorID:          "actor-1",
		SourceItemID:     "w1",
		TargetItemID:     "w2",
		Choice:           &transfer.RuneChoice{Kind: engine.RuneKindProperty, Slug: "flaming"},
		Method:           transfer.MethodVendor,
		RemoveFromSource: true,
	})
	s.Require().Error(err)
	s.True(errors.IsInsufficientFunds(err))

	s.Equal([]string{"flaming"}, s.getItem("actor-1", "w1").Runes.Property)
	s.Empty(s.getItem("actor-1", "w2").Runes.Property)
	s.Equal(4000, s.getActor("actor-1").Currency.TotalCopper())
}

func (s *OrchestratorTestSuite) TestVendorChargesAndMoves() {
	source := s.runedWeapon("w1", "+1 Flaming Longsword", pf2e.RuneState{
		Potency:  1,
		Property: []string{"flaming"},
	})
	target := s.runedWeapon("w2", "+1 Longsword", pf2e.RuneState{Potency: 1})
	s.seedActor(60, source, target)

	output, err := s.service.Transfer(s.ctx, &transfer.TransferInput{
		User:             s.user,
		ActorID:          "actor-1",
		SourceItemID:     "w1",
		TargetItemID:     "w2",
		Choice:           &transfer.RuneChoice{Kind: engine.RuneKindProperty, Slug: "flaming"},
		Method:           transfer.MethodVendor,
		RemoveFromSource: true,
	})
	s.Require().NoError(err)
	s.Equal(5000, output.CostCopper)

	storedSource := s.getItem("actor-1", "w1")
	storedTarget := s.getItem("actor-1", "w2")
	s.Empty(storedSource.Runes.Property)
	s.Equal([]string{"flaming"}, storedTarget.Runes.Property)
	s.Equal("+1 Longsword", storedSource.Name)
	s.Equal("+1 Flaming Longsword", storedTarget.Name)
	s.Equal(1000, s.getActor("actor-1").Currency.TotalCopper())
}

func (s *OrchestratorTestSuite) TestCraftingPostsCheckAndCharges() {
	source := s.runedWeapon("w1", "+1 Flaming Longsword", pf2e.RuneState{
		Potency:  1,
		Property: []string{"flaming"},
	})
	target := s.runedWeapon("w2", "+1 Longsword", pf2e.RuneState{Potency: 1})
	s.seedActor(60, source, target)

	output, err := s.service.Transfer(s.ctx, &transfer.TransferInput{
		User:             s.user,
		ActorID:          "actor-1",
		SourceItemID:     "w1",
		TargetItemID:     "w2",
		Choice:           &transfer.RuneChoice{Kind: engine.RuneKindProperty, Slug: "flaming"},
		Method:           transfer.MethodCrafting,
		RemoveFromSource: true,
	})
	s.Require().NoError(err)
	s.False(output.CheckFailed)

	s.Equal(1, s.prompter.prompted)
	s.Equal(24, s.prompter.lastDC, "flaming is level 8")
	s.Require().Len(s.chat.records, 2, "the roll request and the reported outcome")
	s.Equal(ui.CraftingOutcomeSuccess, s.chat.records[1].Outcome)
	s.Equal([]string{"flaming"}, s.getItem("actor-1", "w2").Runes.Property)
	s.Equal(1000, s.getActor("actor-1").Currency.TotalCopper())
}

func (s *OrchestratorTestSuite) TestCraftingFailureMovesNothing() {
	s.prompter.outcome = ui.CraftingOutcomeFailure

	source := s.runedWeapon("w1", "+1 Flaming Longsword", pf2e.RuneState{
		Potency:  1,
		Property: []string{"flaming"},
	})
	target := s.runedWeapon("w2", "+1 Longsword", pf2e.RuneState{Potency: 1})
	s.seedActor(60, source, target)

	output, err := s.service.Transfer(s.ctx, &transfer.TransferInput{
		User:             s.user,
		ActorID:          "actor-1",
		SourceItemID:     "w1",
		TargetItemID:     "w2",
		Choice:           &transfer.RuneChoice{Kind: engine.RuneKindProperty, Slug: "flaming"},
		Method:           transfer.MethodCrafting,
		RemoveFromSource: true,
	})
	s.Require().NoError(err)
	s.True(output.CheckFailed)

	s.Equal([]string{"flaming"}, s.getItem("actor-1", "w1").Runes.Property)
	s.Empty(s.getItem("actor-1", "w2").Runes.Property)
	s.Equal(6000, s.getActor("actor-1").Currency.TotalCopper(), "no charge on a failed check")
}

func (s *OrchestratorTestSuite) TestCraftingCanceled() {
	s.prompter.canceled = true

	source := s.runedWeapon("w1", "+1 Flaming Longsword", pf2e.RuneState{
		Potency:  1,
		Property: []string{"flaming"},
	})
	target := s.runedWeapon("w2", "+1 Longsword", pf2e.RuneState{Potency: 1})
	s.seedActor(60, source, target)

	output, err := s.service.Transfer(s.ctx, &transfer.TransferInput{
		User:         s.user,
		ActorID:      "actor-1",
		SourceItemID: "w1",
		TargetItemID: "w2",
		Choice:       &transfer.RuneChoice{Kind: engine.RuneKindProperty, Slug: "flaming"},
		Method:       transfer.MethodCrafting,
	})
	s.Require().NoError(err)
	s.True(output.Canceled)
	s.Require().Len(s.chat.records, 1, "no outcome record for a canceled check")
	s.Empty(s.getItem("actor-1", "w2").Runes.Property)
}

func (s *OrchestratorTestSuite) TestFundamentalWrongCategory() {
	source := s.runedWeapon("w1", "+1 Striking Longsword", pf2e.RuneState{
		Potency:  1,
		Striking: 1,
	})
	armor := builders.NewArmorBuilder().WithID("a1").Build()
	s.seedActor(0, source, armor)

	_, err := s.service.Transfer(s.ctx, &transfer.TransferInput{
		User:         s.user,
		ActorID:      "actor-1",
		SourceItemID: "w1",
		TargetItemID: "a1",
		Choice:       &transfer.RuneChoice{Kind: engine.RuneKindFundamental, Fundamental: engine.FundamentalStriking},
		Method:       transfer.MethodFree,
	})
	s.Require().Error(err)
	s.True(errors.IsIncompatibleTarget(err))
}

func (s *OrchestratorTestSuite) TestPropertyNoFreeSlot() {
	source := s.runedWeapon("w1", "+1 Frost Longsword", pf2e.RuneState{
		Potency:  1,
		Property: []string{"frost"},
	})
	target := s.runedWeapon("w2", "+1 Flaming Longsword", pf2e.RuneState{
		Potency:  1,
		Property: []string{"flaming"},
	})
	s.seedActor(0, source, target)

	_, err := s.service.Transfer(s.ctx, &transfer.TransferInput{
		User:         s.user,
		ActorID:      "actor-1",
		SourceItemID: "w1",
		TargetItemID: "w2",
		Choice:       &transfer.RuneChoice{Kind: engine.RuneKindProperty, Slug: "frost"},
		Method:       transfer.MethodFree,
	})
	s.Require().Error(err)
	s.True(errors.IsNoFreeSlot(err))
}

func (s *OrchestratorTestSuite) TestChoiceNotOnSource() {
	source := s.runedWeapon("w1", "+1 Longsword", pf2e.RuneState{Potency: 1})
	target := s.runedWeapon("w2", "Longsword", pf2e.RuneState{})
	s.seedActor(0, source, target)

	_, err := s.service.Transfer(s.ctx, &transfer.TransferInput{
		User:         s.user,
		ActorID:      "actor-1",
		SourceItemID: "w1",
		TargetItemID: "w2",
		Choice:       &transfer.RuneChoice{Kind: engine.RuneKindProperty, Slug: "flaming"},
		Method:       transfer.MethodFree,
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestPartyStashPays() {
	source := s.runedWeapon("w1", "+1 Flaming Longsword", pf2e.RuneState{
		Potency:  1,
		Property: []string{"flaming"},
	})
	target := s.runedWeapon("w2", "+1 Longsword", pf2e.RuneState{Potency: 1})
	s.seedActor(0, source, target)

	party := builders.NewPartyBuilder().WithID("party-1").WithCurrency(100, 0, 0).Build()
	_, err := s.repo.Create(s.ctx, actors.CreateInput{Actor: party})
	s.Require().NoError(err)

	output, err := s.service.Transfer(s.ctx, &transfer.TransferInput{
		User:             s.user,
		ActorID:          "actor-1",
		SourceItemID:     "w1",
		TargetItemID:     "w2",
		Choice:           &transfer.RuneChoice{Kind: engine.RuneKindProperty, Slug: "flaming"},
		Method:           transfer.MethodVendor,
		PaySource:        transfer.PaySourceParty,
		RemoveFromSource: true,
	})
	s.Require().NoError(err)
	s.Equal(5000, output.CostCopper)

	s.Equal(0, s.getActor("actor-1").Currency.TotalCopper())
	s.Equal(5000, s.getActor("party-1").Currency.TotalCopper())
}

func (s *OrchestratorTestSuite) TestPermissionDenied() {
	actor := builders.NewActorBuilder().
		WithID("actor-2").
		WithOwner("someone-else").
		WithItems(s.runedWeapon("w1", "Longsword", pf2e.RuneState{})).
		Build()
	_, err := s.repo.Create(s.ctx, actors.CreateInput{Actor: actor})
	s.Require().NoError(err)

	_, err = s.service.ListTransferableRunes(s.ctx, &transfer.ListTransferableRunesInput{
		User:         s.user,
		ActorID:      "actor-2",
		SourceItemID: "w1",
	})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestTransferAllOntoBlankWeapon() {
	source := s.runedWeapon("w1", "+2 Striking Flaming Frost Longsword", pf2e.RuneState{
		Potency:  2,
		Striking: 1,
		Property: []string{"flaming", "frost"},
	})
	target := s.runedWeapon("w2", "Greatsword", pf2e.RuneState{})
	s.seedActor(0, source, target)

	output, err := s.service.TransferAll(s.ctx, &transfer.TransferAllInput{
		User:             s.user,
		ActorID:          "actor-1",
		SourceItemID:     "w1",
		TargetItemID:     "w2",
		Method:           transfer.MethodFree,
		Potency:          true,
		Secondary:        true,
		Property:         true,
		RemoveFromSource: true,
	})
	s.Require().NoError(err)
	s.Len(output.Moved, 4)
	s.Equal(0, output.CostCopper)

	storedSource := s.getItem("actor-1", "w1")
	storedTarget := s.getItem("actor-1", "w2")
	s.Equal(pf2e.RuneState{}, storedSource.Runes)
	s.Equal(2, storedTarget.Runes.Potency)
	s.Equal(1, storedTarget.Runes.Striking)
	s.Equal([]string{"flaming", "frost"}, storedTarget.Runes.Property)
	s.Equal("Longsword", storedSource.Name)
	s.Equal("+2 Striking Flaming Frost Greatsword", storedTarget.Name)
}

func (s *OrchestratorTestSuite) TestTransferAllLeavesUnselectedGroups() {
	source := s.runedWeapon("w1", "+1 Striking Flaming Longsword", pf2e.RuneState{
		Potency:  1,
		Striking: 1,
		Property: []string{"flaming"},
	})
	target := s.runedWeapon("w2", "+1 Longsword", pf2e.RuneState{Potency: 1})
	s.seedActor(0, source, target)

	output, err := s.service.TransferAll(s.ctx, &transfer.TransferAllInput{
		User:             s.user,
		ActorID:          "actor-1",
		SourceItemID:     "w1",
		TargetItemID:     "w2",
		Method:           transfer.MethodFree,
		Secondary:        true,
		RemoveFromSource: true,
	})
	s.Require().NoError(err)
	s.Len(output.Moved, 1)

	storedSource := s.getItem("actor-1", "w1")
	s.Equal(0, storedSource.Runes.Striking)
	s.Equal(1, storedSource.Runes.Potency, "potency was not selected")
	s.Equal([]string{"flaming"}, storedSource.Runes.Property)
	s.Equal(1, s.getItem("actor-1", "w2").Runes.Striking)
}

func (s *OrchestratorTestSuite) TestTransferAllCapacityOverflowAbortsWhole() {
	source := s.runedWeapon("w1", "+1 Flaming Frost Longsword", pf2e.RuneState{
		Potency:  1,
		Property: []string{"flaming", "frost"},
	})
	target := s.runedWeapon("w2", "+1 Longsword", pf2e.RuneState{Potency: 1})
	s.seedActor(0, source, target)

	_, err := s.service.TransferAll(s.ctx, &transfer.TransferAllInput{
		User:             s.user,
		ActorID:          "actor-1",
		SourceItemID:     "w1",
		TargetItemID:     "w2",
		Method:           transfer.MethodFree,
		Property:         true,
		RemoveFromSource: true,
	})
	s.Require().Error(err)
	s.True(errors.IsNoFreeSlot(err))

	s.Equal([]string{"flaming", "frost"}, s.getItem("actor-1", "w1").Runes.Property)
	s.Empty(s.getItem("actor-1", "w2").Runes.Property)
}

func (s *OrchestratorTestSuite) TestTransferAllOneCraftingCheckPerBatch() {
	source := s.runedWeapon("w1", "+2 Flaming Longsword", pf2e.RuneState{
		Potency:  2,
		Property: []string{"flaming"},
	})
	target := s.runedWeapon("w2", "Greatsword", pf2e.RuneState{})
	s.seedActor(200, source, target)

	output, err := s.service.TransferAll(s.ctx, &transfer.TransferAllInput{
		User:             s.user,
		ActorID:          "actor-1",
		SourceItemID:     "w1",
		TargetItemID:     "w2",
		Method:           transfer.MethodCrafting,
		Potency:          true,
		Property:         true,
		RemoveFromSource: true,
	})
	s.Require().NoError(err)
	s.Len(output.Moved, 2)
	s.Equal(14350, output.CostCopper, "potency 935 gp plus flaming 500 gp, at 10 percent")

	s.Equal(1, s.prompter.prompted, "one check covers the batch")
	s.Equal(27, s.prompter.lastDC, "the +2 potency rune at level 10 sets the DC")
}

func (s *OrchestratorTestSuite) TestTransferAllNoGroupsSelected() {
	source := s.runedWeapon("w1", "+1 Longsword", pf2e.RuneState{Potency: 1})
	target := s.runedWeapon("w2", "Greatsword", pf2e.RuneState{})
	s.seedActor(0, source, target)

	_, err := s.service.TransferAll(s.ctx, &transfer.TransferAllInput{
		User:         s.user,
		ActorID:      "actor-1",
		SourceItemID: "w1",
		TargetItemID: "w2",
		Method:       transfer.MethodFree,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
