// Package transfer implements moving runes between items: listing what a
// source item carries, pricing the move, gating it on payment or a crafting
// check, and writing the result back in one update per document.
package transfer

//go:generate mockgen -destination=mock/mock_service.go -package=transfermock github.com/KirkDiggler/rune-api/internal/orchestrators/transfer Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rune-api/internal/engine"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
	"github.com/KirkDiggler/rune-api/internal/repositories/actors"
	"github.com/KirkDiggler/rune-api/internal/ui"
)

// Service defines the interface for rune transfer operations
type Service interface {
	// ListTransferableRunes lists the runes on a source item, one choice
	// per fundamental field present and per property slot occupied
	ListTransferableRunes(
		ctx context.Context,
		input *ListTransferableRunesInput,
	) (*ListTransferableRunesOutput, error)

	// Transfer moves a single rune between two items on an actor
	Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// TransferAll moves selected rune groups between two items in one pass
	TransferAll(ctx context.Context, input *TransferAllInput) (*TransferAllOutput, error)
}

// Config holds the dependencies for the transfer orchestrator
type Config struct {
	ActorRepo  actors.Repository
	Engine     engine.Engine
	Prompter   ui.Prompter
	Notifier   ui.Notifier
	ChatPoster ui.ChatPoster
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Prompter == nil {
		vb.RequiredField("Prompter")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if c.ChatPoster == nil {
		vb.RequiredField("ChatPoster")
	}

	return vb.Build()
}

type orchestrator struct {
	actorRepo actors.Repository
	engine    engine.Engine
	prompter  ui.Prompter
	notifier  ui.Notifier
	chat      ui.ChatPoster
}

// NewOrchestrator creates a new transfer orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		actorRepo: cfg.ActorRepo,
		engine:    cfg.Engine,
		prompter:  cfg.Prompter,
		notifier:  cfg.Notifier,
		chat:      cfg.ChatPoster,
	}, nil
}

// ListTransferableRunes lists the runes on a source item
func (o *orchestrator) ListTransferableRunes(
	ctx context.Context,
	input *ListTransferableRunesInput,
) (*ListTransferableRunesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.managedActor(ctx, input.ActorID, input.User)
	if err != nil {
		return nil, err
	}
	item := actor.Item(input.SourceItemID)
	if item == nil {
		return nil, errors.NotFoundf("item %s not found on actor %s", input.SourceItemID, actor.ID)
	}

	choices, err := o.choicesFor(ctx, item)
	if err != nil {
		return nil, err
	}

	return &ListTransferableRunesOutput{Choices: choices}, nil
}

// Transfer moves a single rune between two items on an actor
func (o *orchestrator) Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Choice == nil {
		return nil, errors.InvalidArgument("rune choice is required")
	}
	if input.SourceItemID == input.TargetItemID {
		return nil, errors.InvalidArgument("source and target must differ")
	}
	if err := validateMethod(input.Method); err != nil {
		return nil, err
	}

	actor, err := o.managedActor(ctx, input.ActorID, input.User)
	if err != nil {
		return nil, err
	}
	source := actor.Item(input.SourceItemID)
	if source == nil {
		return nil, errors.NotFoundf("source item %s not found on actor %s", input.SourceItemID, actor.ID)
	}
	target := actor.Item(input.TargetItemID)
	if target == nil {
		return nil, errors.NotFoundf("target item %s not found on actor %s", input.TargetItemID, actor.ID)
	}

	choice, err := o.resolveChoice(ctx, source, input.Choice)
	if err != nil {
		return nil, err
	}
	if err := o.checkTarget(ctx, target, choice, 1); err != nil {
		return nil, err
	}

	// Everything that can refuse the transfer has run; the gate and the
	// charge come before any item mutation.
	payer, err := o.pickPayer(ctx, actor, input.PaySource)
	if err != nil {
		return nil, err
	}

	cost := choice.CostCopper
	if input.Method == MethodFree {
		cost = 0
	}
	if cost > 0 && payer.Currency.TotalCopper() < cost {
		return nil, errors.InsufficientFundsf(
			"transfer costs %d copper but %s holds %d", cost, payer.Name, payer.Currency.TotalCopper())
	}

	if input.Method == MethodCrafting {
		outcome, err := o.craftingGate(ctx, actor, choice)
		if err != nil {
			return nil, err
		}
		if outcome.Canceled {
			return &TransferOutput{Canceled: true}, nil
		}
		if outcome.Outcome != ui.CraftingOutcomeSuccess {
			o.notifier.Warn(ctx, fmt.Sprintf("crafting check failed, %s stays put", choice.Label))
			return &TransferOutput{CheckFailed: true}, nil
		}
	}

	updatedSource := source.Clone()
	updatedTarget := target.Clone()
	if input.RemoveFromSource {
		removeChoice(updatedSource, choice)
	}
	if err := o.applyChoice(ctx, updatedTarget, choice); err != nil {
		return nil, err
	}
	updatedSource.Name = o.engine.RunedItemName(updatedSource, updatedSource.Runes)
	updatedTarget.Name = o.engine.RunedItemName(updatedTarget, updatedTarget.Runes)

	replaceItem(actor, updatedSource)
	replaceItem(actor, updatedTarget)

	if cost > 0 && !payer.Currency.RemoveCopper(cost) {
		return nil, errors.InsufficientFundsf("failed to charge %d copper from %s", cost, payer.Name)
	}

	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: actor}); err != nil {
		return nil, errors.Wrapf(err, "failed to persist actor %s", actor.ID)
	}
	if cost > 0 && payer.ID != actor.ID {
		if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: payer}); err != nil {
			return nil, errors.Wrapf(err, "failed to persist payer %s", payer.ID)
		}
	}

	slog.InfoContext(ctx, "rune transferred",
		"choice", choice.Label,
		"source", updatedSource.ID,
		"target", updatedTarget.ID,
		"method", string(input.Method),
		"cost_copper", cost,
	)

	return &TransferOutput{
		Source:     updatedSource,
		Target:     updatedTarget,
		CostCopper: cost,
	}, nil
}

// TransferAll moves selected rune groups between two items in one pass
func (o *orchestrator) TransferAll(ctx context.Context, input *TransferAllInput) (*TransferAllOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Potency && !input.Secondary && !input.Property {
		return nil, errors.InvalidArgument("no rune groups selected")
	}
	if input.SourceItemID == input.TargetItemID {
		return nil, errors.InvalidArgument("source and target must differ")
	}
	if err := validateMethod(input.Method); err != nil {
		return nil, err
	}

	actor, err := o.managedActor(ctx, input.ActorID, input.User)
	if err != nil {
		return nil, err
	}
	source := actor.Item(input.SourceItemID)
	if source == nil {
		return nil, errors.NotFoundf("source item %s not found on actor %s", input.SourceItemID, actor.ID)
	}
	target := actor.Item(input.TargetItemID)
	if target == nil {
		return nil, errors.NotFoundf("target item %s not found on actor %s", input.TargetItemID, actor.ID)
	}

	all, err := o.choicesFor(ctx, source)
	if err != nil {
		return nil, err
	}

	var selected []*RuneChoice
	propertyMoves := 0
	for _, c := range all {
		switch {
		case c.Kind == engine.RuneKindProperty:
			if !input.Property {
				continue
			}
			propertyMoves++
		case c.Fundamental == engine.FundamentalPotency:
			if !input.Potency {
				continue
			}
		default:
			if !input.Secondary {
				continue
			}
		}
		selected = append(selected, c)
	}
	if len(selected) == 0 {
		return nil, errors.InvalidArgumentf("%s carries none of the selected rune groups", source.Name)
	}

	// A single overfull group aborts the whole batch before anything moves.
	// Capacity is judged against the target as it will stand once the
	// fundamentals land, so a potency rune moving in the same batch opens
	// its slots.
	preview := target.Clone()
	for _, c := range selected {
		if c.Kind != engine.RuneKindFundamental {
			continue
		}
		if err := o.checkTarget(ctx, target, c, 0); err != nil {
			return nil, err
		}
		if err := o.applyChoice(ctx, preview, c); err != nil {
			return nil, err
		}
	}
	for _, c := range selected {
		if c.Kind != engine.RuneKindProperty {
			continue
		}
		if err := o.checkTarget(ctx, preview, c, propertyMoves); err != nil {
			return nil, err
		}
	}

	totalCost := 0
	maxLevel := 0
	for _, c := range selected {
		totalCost += c.CostCopper
		if c.Level > maxLevel {
			maxLevel = c.Level
		}
	}
	if input.Method == MethodFree {
		totalCost = 0
	}

	payer, err := o.pickPayer(ctx, actor, input.PaySource)
	if err != nil {
		return nil, err
	}
	if totalCost > 0 && payer.Currency.TotalCopper() < totalCost {
		return nil, errors.InsufficientFundsf(
			"transfer costs %d copper but %s holds %d", totalCost, payer.Name, payer.Currency.TotalCopper())
	}

	// One crafting check covers the batch, at the hardest rune's level
	if input.Method == MethodCrafting {
		gate := &RuneChoice{Label: source.Name, Level: maxLevel}
		outcome, err := o.craftingGate(ctx, actor, gate)
		if err != nil {
			return nil, err
		}
		if outcome.Canceled {
			return &TransferAllOutput{Canceled: true}, nil
		}
		if outcome.Outcome != ui.CraftingOutcomeSuccess {
			o.notifier.Warn(ctx, "crafting check failed, no runes moved")
			return &TransferAllOutput{CheckFailed: true}, nil
		}
	}

	updatedSource := source.Clone()
	updatedTarget := target.Clone()
	for _, c := range selected {
		if input.RemoveFromSource {
			removeChoice(updatedSource, c)
		}
		if err := o.applyChoice(ctx, updatedTarget, c); err != nil {
			return nil, err
		}
	}
	updatedSource.Name = o.engine.RunedItemName(updatedSource, updatedSource.Runes)
	updatedTarget.Name = o.engine.RunedItemName(updatedTarget, updatedTarget.Runes)

	replaceItem(actor, updatedSource)
	replaceItem(actor, updatedTarget)

	if totalCost > 0 && !payer.Currency.RemoveCopper(totalCost) {
		return nil, errors.InsufficientFundsf("failed to charge %d copper from %s", totalCost, payer.Name)
	}

	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: actor}); err != nil {
		return nil, errors.Wrapf(err, "failed to persist actor %s", actor.ID)
	}
	if totalCost > 0 && payer.ID != actor.ID {
		if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: payer}); err != nil {
			return nil, errors.Wrapf(err, "failed to persist payer %s", payer.ID)
		}
	}

	return &TransferAllOutput{
		Source:     updatedSource,
		Target:     updatedTarget,
		Moved:      selected,
		CostCopper: totalCost,
	}, nil
}

// choicesFor builds one annotated choice per rune present on the item
func (o *orchestrator) choicesFor(ctx context.Context, item *pf2e.Item) ([]*RuneChoice, error) {
	targetType, ok := item.RuneTargetType()
	if !ok {
		return nil, errors.InvalidArgumentf("%s cannot hold runes", item.Name)
	}

	var choices []*RuneChoice

	addFundamental := func(field string, rank int, label string) error {
		if rank <= 0 {
			return nil
		}
		value, err := o.engine.RuneValue(ctx, &engine.RuneValueInput{
			Kind:        engine.RuneKindFundamental,
			TargetType:  targetType,
			Fundamental: field,
			Rank:        rank,
		})
		if err != nil {
			return err
		}
		choices = append(choices, &RuneChoice{
			Kind:        engine.RuneKindFundamental,
			Fundamental: field,
			Rank:        rank,
			Label:       label,
			Level:       value.Level,
			PriceGP:     value.PriceGP,
			CostCopper:  transferCostCopper(value.PriceGP),
		})
		return nil
	}

	if err := addFundamental(engine.FundamentalPotency, item.Runes.Potency,
		fmt.Sprintf("+%d Potency", item.Runes.Potency)); err != nil {
		return nil, err
	}
	if err := addFundamental(engine.FundamentalStriking, item.Runes.Striking,
		titleCase(strings.ReplaceAll(pf2e.StrikingKey(item.Runes.Striking), "Striking", " Striking"))); err != nil {
		return nil, err
	}
	if err := addFundamental(engine.FundamentalResilient, item.Runes.Resilient,
		titleCase(strings.ReplaceAll(pf2e.ResilientKey(item.Runes.Resilient), "Resilient", " Resilient"))); err != nil {
		return nil, err
	}
	if err := addFundamental(engine.FundamentalReinforcing, item.Runes.Reinforcing,
		titleCase(pf2e.ReinforcingTier(item.Runes.Reinforcing)+" Reinforcing")); err != nil {
		return nil, err
	}

	for _, slug := range item.Runes.Property {
		value, err := o.engine.RuneValue(ctx, &engine.RuneValueInput{
			Kind:       engine.RuneKindProperty,
			Slug:       slug,
			TargetType: targetType,
		})
		if err != nil {
			return nil, err
		}
		choices = append(choices, &RuneChoice{
			Kind:       engine.RuneKindProperty,
			Slug:       slug,
			Label:      titleCase(slug) + " Rune",
			Level:      value.Level,
			PriceGP:    value.PriceGP,
			CostCopper: transferCostCopper(value.PriceGP),
		})
	}

	return choices, nil
}

// resolveChoice validates the requested choice against what the source item
// actually carries and re-resolves its value annotations
func (o *orchestrator) resolveChoice(
	ctx context.Context,
	source *pf2e.Item,
	requested *RuneChoice,
) (*RuneChoice, error) {
	choices, err := o.choicesFor(ctx, source)
	if err != nil {
		return nil, err
	}

	for _, c := range choices {
		if requested.Kind != c.Kind {
			continue
		}
		if c.Kind == engine.RuneKindProperty {
			if c.Slug == requested.Slug {
				return c, nil
			}
			continue
		}
		if c.Fundamental == requested.Fundamental && (requested.Rank == 0 || requested.Rank == c.Rank) {
			return c, nil
		}
	}

	return nil, errors.NotFoundf("%s does not carry the requested rune", source.Name)
}

// checkTarget verifies category-appropriateness and slot capacity before
// anything mutates. incomingProperties is the number of property runes the
// whole operation intends to add.
func (o *orchestrator) checkTarget(
	ctx context.Context,
	target *pf2e.Item,
	choice *RuneChoice,
	incomingProperties int,
) error {
	targetType, ok := target.RuneTargetType()
	if !ok {
		return errors.IncompatibleTarget(engine.ReasonNotEtchable)
	}

	if choice.Kind == engine.RuneKindFundamental {
		if !fundamentalFits(targetType, choice.Fundamental) {
			return errors.IncompatibleTargetf(
				"%s runes do not fit %s targets", choice.Fundamental, targetType)
		}
		return nil
	}

	if target.Runes.HasProperty(choice.Slug) {
		return errors.AlreadyExistsf("%s already bears the %s rune", target.Name, choice.Slug)
	}
	if _, err := o.engine.ResolvePropertyKey(ctx, &engine.ResolvePropertyKeyInput{
		Rune:       &engine.RuneDescriptor{Slug: choice.Slug, Kind: engine.RuneKindProperty},
		TargetType: targetType,
	}); err != nil {
		return err
	}

	slots := o.engine.PropertyRuneSlots(ctx, target)
	if len(target.Runes.Property)+incomingProperties > slots {
		return errors.NoFreeSlotf(
			"%s has %d property rune slots and cannot take %d more",
			target.Name, slots, incomingProperties)
	}
	return nil
}

// applyChoice writes the rune onto the target item in place
func (o *orchestrator) applyChoice(ctx context.Context, target *pf2e.Item, choice *RuneChoice) error {
	if choice.Kind == engine.RuneKindFundamental {
		switch choice.Fundamental {
		case engine.FundamentalPotency:
			target.Runes.Potency = choice.Rank
		case engine.FundamentalStriking:
			target.Runes.Striking = choice.Rank
		case engine.FundamentalResilient:
			target.Runes.Resilient = choice.Rank
		case engine.FundamentalReinforcing:
			target.Runes.Reinforcing = choice.Rank
		default:
			return errors.InvalidArgumentf("unknown fundamental field %q", choice.Fundamental)
		}
		return nil
	}

	target.Runes.Property = append(target.Runes.Property, choice.Slug)
	target.Runes.Property = o.engine.PrunePropertyRunes(ctx, target, target.Runes.Property)
	return nil
}

// removeChoice clears the rune off the source item in place
func removeChoice(source *pf2e.Item, choice *RuneChoice) {
	if choice.Kind == engine.RuneKindFundamental {
		switch choice.Fundamental {
		case engine.FundamentalPotency:
			source.Runes.Potency = 0
		case engine.FundamentalStriking:
			source.Runes.Striking = 0
		case engine.FundamentalResilient:
			source.Runes.Resilient = 0
		case engine.FundamentalReinforcing:
			source.Runes.Reinforcing = 0
		}
		return
	}

	for i, slug := range source.Runes.Property {
		if slug == choice.Slug {
			source.Runes.Property = append(source.Runes.Property[:i], source.Runes.Property[i+1:]...)
			// An emptied list goes back to nil so a stripped item
			// round-trips as the zero rune state.
			if len(source.Runes.Property) == 0 {
				source.Runes.Property = nil
			}
			return
		}
	}
}

// craftingGate posts the public record and waits for the human-reported
// outcome
func (o *orchestrator) craftingGate(
	ctx context.Context,
	actor *pf2e.Actor,
	choice *RuneChoice,
) (*ui.ConfirmCraftingCheckOutput, error) {
	dc := o.engine.CraftingDC(choice.Level)

	if err := o.chat.PostCraftingCheck(ctx, &ui.CraftingCheckRecord{
		ActorName: actor.Name,
		ItemName:  choice.Label,
		Level:     choice.Level,
		DC:        dc,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to post crafting check")
	}

	outcome, err := o.prompter.ConfirmCraftingCheck(ctx, &ui.ConfirmCraftingCheckInput{
		ItemName: choice.Label,
		Level:    choice.Level,
		DC:       dc,
	})
	if err != nil {
		return nil, err
	}

	if !outcome.Canceled {
		record := &ui.CraftingCheckRecord{
			ActorName: actor.Name,
			ItemName:  choice.Label,
			Level:     choice.Level,
			DC:        dc,
			Outcome:   outcome.Outcome,
		}
		if err := o.chat.PostCraftingCheck(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to post crafting outcome", "error", err.Error())
		}
	}

	return outcome, nil
}

// pickPayer resolves whose purse the transfer charges
func (o *orchestrator) pickPayer(ctx context.Context, actor *pf2e.Actor, source PaySource) (*pf2e.Actor, error) {
	if source != PaySourceParty {
		return actor, nil
	}

	parties, err := o.actorRepo.List(ctx, actors.ListInput{Type: pf2e.ActorTypeParty})
	if err != nil {
		return nil, err
	}
	if len(parties.Actors) == 0 {
		return nil, errors.NotFound("no party stash to pay from")
	}
	return parties.Actors[0], nil
}

// managedActor loads an actor and enforces the permission model
func (o *orchestrator) managedActor(ctx context.Context, actorID string, user pf2e.User) (*pf2e.Actor, error) {
	got, err := o.actorRepo.Get(ctx, actors.GetInput{ID: actorID})
	if err != nil {
		return nil, err
	}
	if !got.Actor.CanManage(user) {
		return nil, errors.PermissionDeniedf("user %s cannot manage actor %s", user.ID, actorID)
	}
	return got.Actor, nil
}

func validateMethod(method Method) error {
	switch method {
	case MethodVendor, MethodCrafting, MethodFree:
		return nil
	default:
		return errors.InvalidArgumentf("unknown transfer method %q", method)
	}
}

// fundamentalFits reports whether a fundamental rune field belongs on the
// given target category
func fundamentalFits(targetType pf2e.ItemType, field string) bool {
	switch targetType {
	case pf2e.ItemTypeWeapon:
		return field == engine.FundamentalPotency || field == engine.FundamentalStriking
	case pf2e.ItemTypeArmor:
		return field == engine.FundamentalPotency || field == engine.FundamentalResilient
	case pf2e.ItemTypeShield:
		return field == engine.FundamentalReinforcing
	}
	return false
}

// transferCostCopper is 10% of the rune's price, charged in copper
func transferCostCopper(priceGP int) int {
	return priceGP * pf2e.CopperPerGold / 10
}

func replaceItem(actor *pf2e.Actor, item *pf2e.Item) {
	for i, existing := range actor.Items {
		if existing.ID == item.ID {
			actor.Items[i] = item
			return
		}
	}
}

func titleCase(slug string) string {
	out := []byte(strings.TrimSpace(slug))
	upper := true
	for i := 0; i < len(out); i++ {
		c := out[i]
		if c == '-' || c == ' ' {
			if c == '-' {
				out[i] = ' '
			}
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			out[i] = c - 'a' + 'A'
		}
		upper = false
	}
	return string(out)
}
