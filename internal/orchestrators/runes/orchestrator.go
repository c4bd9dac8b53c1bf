// Package runes implements rune application and target discovery over actor
// documents: classify the rune, check permissions and compatibility, then
// write each touched document exactly once.
package runes

//go:generate mockgen -destination=mock/mock_service.go -package=runesmock github.com/KirkDiggler/rune-api/internal/orchestrators/runes Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rune-api/internal/engine"
	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
	"github.com/KirkDiggler/rune-api/internal/pkg/idgen"
	"github.com/KirkDiggler/rune-api/internal/repositories/actors"
	"github.com/KirkDiggler/rune-api/internal/ui"
)

// Service defines the interface for rune application operations
type Service interface {
	// AttachRune attaches a rune item to a target item, routing to the
	// fundamental or property path by classification
	AttachRune(ctx context.Context, input *AttachRuneInput) (*AttachRuneOutput, error)

	// ApplyFundamental writes fundamental rune ranks onto a target item
	ApplyFundamental(ctx context.Context, input *ApplyFundamentalInput) (*ApplyFundamentalOutput, error)

	// ApplyProperty writes a property rune slug onto a target item,
	// prompting for eviction when the slot list is full
	ApplyProperty(ctx context.Context, input *ApplyPropertyInput) (*ApplyPropertyOutput, error)

	// FindTargets lists legal destinations for a rune within one actor
	FindTargets(ctx context.Context, input *FindTargetsInput) (*FindTargetsOutput, error)

	// FindTargetsAcrossActors lists legal destinations across every actor
	// the user can manage
	FindTargetsAcrossActors(
		ctx context.Context,
		input *FindTargetsAcrossActorsInput,
	) (*FindTargetsAcrossActorsOutput, error)
}

// Config holds the dependencies for the runes orchestrator
type Config struct {
	ActorRepo   actors.Repository
	Engine      engine.Engine
	Prompter    ui.Prompter
	Notifier    ui.Notifier
	IDGenerator idgen.Generator
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
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	actorRepo actors.Repository
	engine    engine.Engine
	prompter  ui.Prompter
	notifier  ui.Notifier
	idGen     idgen.Generator
}

// NewOrchestrator creates a new runes orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		actorRepo: cfg.ActorRepo,
		engine:    cfg.Engine,
		prompter:  cfg.Prompter,
		notifier:  cfg.Notifier,
		idGen:     cfg.IDGenerator,
	}, nil
}

// AttachRune attaches a rune item to a target item
func (o *orchestrator) AttachRune(ctx context.Context, input *AttachRuneInput) (*AttachRuneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ActorID", input.ActorID, vb)
	errors.ValidateRequired("RuneItemID", input.RuneItemID, vb)
	errors.ValidateRequired("TargetActorID", input.TargetActorID, vb)
	errors.ValidateRequired("TargetItemID", input.TargetItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	source, err := o.managedActor(ctx, input.ActorID, input.User)
	if err != nil {
		return nil, err
	}

	target := source
	if input.TargetActorID != input.ActorID {
		target, err = o.managedActor(ctx, input.TargetActorID, input.User)
		if err != nil {
			return nil, err
		}
	}

	runeItem := source.Item(input.RuneItemID)
	if runeItem == nil {
		return nil, errors.NotFoundf("rune item %s not found on actor %s", input.RuneItemID, source.ID)
	}
	targetItem := target.Item(input.TargetItemID)
	if targetItem == nil {
		return nil, errors.NotFoundf("target item %s not found on actor %s", input.TargetItemID, target.ID)
	}

	classified, err := o.engine.ClassifyRune(ctx, &engine.ClassifyRuneInput{Item: runeItem})
	if err != nil {
		return nil, err
	}
	desc := classified.Descriptor
	if desc == nil {
		o.notifier.Warn(ctx, fmt.Sprintf("%s is not a recognizable rune", runeItem.Name))
		return nil, errors.InvalidArgumentf("item %s is not a rune", runeItem.Name)
	}

	compat, err := o.engine.EvaluateCompatibility(ctx, &engine.EvaluateCompatibilityInput{
		Rune:   desc,
		Target: targetItem,
	})
	if err != nil {
		return nil, err
	}
	if !compat.Compatible {
		o.notifier.Warn(ctx, fmt.Sprintf("%s cannot hold %s: %s", targetItem.Name, runeItem.Name, compat.Reason))
		return nil, errors.IncompatibleTarget(compat.Reason)
	}

	// All mutations happen on a working copy; nothing persists until the
	// end of the happy path.
	updatedItem := targetItem.Clone()
	var evictedSlug string

	if desc.IsFundamental() {
		if err := applyFundamentalState(updatedItem, desc); err != nil {
			return nil, err
		}
	} else {
		result, err := o.applyPropertyState(ctx, updatedItem, desc)
		if err != nil {
			return nil, err
		}
		if result.canceled {
			return &AttachRuneOutput{Canceled: true}, nil
		}
		evictedSlug = result.evictedSlug
	}

	updatedItem.Name = o.engine.RunedItemName(updatedItem, updatedItem.Runes)

	replaceItem(target, updatedItem)
	if input.ConsumeRune && input.ActorID == input.TargetActorID {
		removeItem(target, runeItem.ID)
	}

	// An evicted rune lands in the owner's runestone inside the same
	// document write; other destinations are handled after the target
	// persists.
	var evicted *pf2e.Item
	if evictedSlug != "" {
		evicted = o.buildEvictedRuneItem(ctx, evictedSlug, updatedItem)
		if o.placeEvictedLocal(ctx, target, evicted) {
			evicted = nil
		}
	}

	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: target}); err != nil {
		return nil, errors.Wrapf(err, "failed to persist target actor %s", target.ID)
	}

	if evicted != nil {
		o.placeEvictedRemote(ctx, evicted)
	}

	// The source document is only written when it differs from the target
	if input.ConsumeRune && input.ActorID != input.TargetActorID {
		removeItem(source, runeItem.ID)
		if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: source}); err != nil {
			return nil, errors.Wrapf(err, "failed to persist source actor %s", source.ID)
		}
	}

	slog.InfoContext(ctx, "rune attached",
		"rune", desc.Slug,
		"target_item", updatedItem.ID,
		"target_actor", target.ID,
		"evicted", evictedSlug,
	)

	return &AttachRuneOutput{
		Target:      updatedItem,
		EvictedSlug: evictedSlug,
	}, nil
}

// ApplyFundamental writes fundamental rune ranks onto a target item
func (o *orchestrator) ApplyFundamental(
	ctx context.Context,
	input *ApplyFundamentalInput,
) (*ApplyFundamentalOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.managedActor(ctx, input.TargetActorID, input.User)
	if err != nil {
		return nil, err
	}
	item := actor.Item(input.TargetItemID)
	if item == nil {
		return nil, errors.NotFoundf("target item %s not found on actor %s", input.TargetItemID, actor.ID)
	}

	updated := item.Clone()
	desc := &engine.RuneDescriptor{
		Kind:        engine.RuneKindFundamental,
		Potency:     input.Potency,
		Striking:    input.Striking,
		Resilient:   input.Resilient,
		Reinforcing: input.Reinforcing,
	}
	if err := applyFundamentalState(updated, desc); err != nil {
		return nil, err
	}
	updated.Name = o.engine.RunedItemName(updated, updated.Runes)

	replaceItem(actor, updated)
	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: actor}); err != nil {
		return nil, errors.Wrapf(err, "failed to persist actor %s", actor.ID)
	}

	return &ApplyFundamentalOutput{Target: updated}, nil
}

// ApplyProperty writes a property rune slug onto a target item
func (o *orchestrator) ApplyProperty(
	ctx context.Context,
	input *ApplyPropertyInput,
) (*ApplyPropertyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Slug == "" {
		return nil, errors.InvalidArgument("rune slug is required")
	}

	actor, err := o.managedActor(ctx, input.TargetActorID, input.User)
	if err != nil {
		return nil, err
	}
	item := actor.Item(input.TargetItemID)
	if item == nil {
		return nil, errors.NotFoundf("target item %s not found on actor %s", input.TargetItemID, actor.ID)
	}

	updated := item.Clone()
	desc := &engine.RuneDescriptor{Slug: input.Slug, Kind: engine.RuneKindProperty}
	result, err := o.applyPropertyState(ctx, updated, desc)
	if err != nil {
		return nil, err
	}
	if result.canceled {
		return &ApplyPropertyOutput{Canceled: true}, nil
	}
	updated.Name = o.engine.RunedItemName(updated, updated.Runes)

	replaceItem(actor, updated)
	var evicted *pf2e.Item
	if result.evictedSlug != "" {
		evicted = o.buildEvictedRuneItem(ctx, result.evictedSlug, updated)
		if o.placeEvictedLocal(ctx, actor, evicted) {
			evicted = nil
		}
	}
	if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: actor}); err != nil {
		return nil, errors.Wrapf(err, "failed to persist actor %s", actor.ID)
	}
	if evicted != nil {
		o.placeEvictedRemote(ctx, evicted)
	}

	return &ApplyPropertyOutput{
		Target:      updated,
		EvictedSlug: result.evictedSlug,
	}, nil
}

// FindTargets lists legal destinations for a rune within one actor
func (o *orchestrator) FindTargets(ctx context.Context, input *FindTargetsInput) (*FindTargetsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	actor, err := o.managedActor(ctx, input.ActorID, input.User)
	if err != nil {
		return nil, err
	}
	runeItem := actor.Item(input.RuneItemID)
	if runeItem == nil {
		return nil, errors.NotFoundf("rune item %s not found on actor %s", input.RuneItemID, actor.ID)
	}

	classified, err := o.engine.ClassifyRune(ctx, &engine.ClassifyRuneInput{Item: runeItem})
	if err != nil {
		return nil, err
	}
	if classified.Descriptor == nil {
		return nil, errors.InvalidArgumentf("item %s is not a rune", runeItem.Name)
	}

	candidates, err := o.candidatesInActor(ctx, actor, runeItem.ID, classified.Descriptor)
	if err != nil {
		return nil, err
	}

	return &FindTargetsOutput{Candidates: candidates}, nil
}

// FindTargetsAcrossActors lists legal destinations across every actor the
// user can manage
func (o *orchestrator) FindTargetsAcrossActors(
	ctx context.Context,
	input *FindTargetsAcrossActorsInput,
) (*FindTargetsAcrossActorsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	source, err := o.managedActor(ctx, input.ActorID, input.User)
	if err != nil {
		return nil, err
	}
	runeItem := source.Item(input.RuneItemID)
	if runeItem == nil {
		return nil, errors.NotFoundf("rune item %s not found on actor %s", input.RuneItemID, source.ID)
	}

	classified, err := o.engine.ClassifyRune(ctx, &engine.ClassifyRuneInput{Item: runeItem})
	if err != nil {
		return nil, err
	}
	if classified.Descriptor == nil {
		return nil, errors.InvalidArgumentf("item %s is not a rune", runeItem.Name)
	}

	listed, err := o.actorRepo.List(ctx, actors.ListInput{})
	if err != nil {
		return nil, err
	}

	var candidates []*TargetCandidate
	for _, actor := range listed.Actors {
		if !actor.CanManage(input.User) {
			continue
		}
		found, err := o.candidatesInActor(ctx, actor, runeItem.ID, classified.Descriptor)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, found...)
	}

	return &FindTargetsAcrossActorsOutput{Candidates: candidates}, nil
}

// candidatesInActor filters an actor's inventory by compatibility, then by
// the free-slot guard for property runes
func (o *orchestrator) candidatesInActor(
	ctx context.Context,
	actor *pf2e.Actor,
	runeItemID string,
	desc *engine.RuneDescriptor,
) ([]*TargetCandidate, error) {
	var candidates []*TargetCandidate
	for _, item := range actor.Items {
		if item.ID == runeItemID {
			continue
		}

		compat, err := o.engine.EvaluateCompatibility(ctx, &engine.EvaluateCompatibilityInput{
			Rune:   desc,
			Target: item,
		})
		if err != nil {
			return nil, err
		}
		if !compat.Compatible {
			continue
		}

		if desc.Kind == engine.RuneKindProperty {
			slots := o.engine.PropertyRuneSlots(ctx, item)
			if len(item.Runes.Property) >= slots {
				continue
			}
		}

		candidates = append(candidates, &TargetCandidate{
			ActorID:   actor.ID,
			ActorName: actor.Name,
			Item:      item.Clone(),
		})
	}
	return candidates, nil
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

// applyFundamentalState routes fundamental ranks onto the category's fields.
// Weapons take potency and striking, armor takes potency and resilient,
// shields take reinforcing; anything else is a mapping failure that writes
// nothing.
func applyFundamentalState(item *pf2e.Item, desc *engine.RuneDescriptor) error {
	targetType, ok := item.RuneTargetType()
	if !ok {
		return errors.IncompatibleTarget(engine.ReasonNotEtchable)
	}

	applied := false
	switch targetType {
	case pf2e.ItemTypeWeapon:
		if desc.Potency > 0 {
			item.Runes.Potency = desc.Potency
			applied = true
		}
		if desc.Striking > 0 {
			item.Runes.Striking = desc.Striking
			applied = true
		}
	case pf2e.ItemTypeArmor:
		if desc.Potency > 0 {
			item.Runes.Potency = desc.Potency
			applied = true
		}
		if desc.Resilient > 0 {
			item.Runes.Resilient = desc.Resilient
			applied = true
		}
	case pf2e.ItemTypeShield:
		if desc.Reinforcing > 0 {
			item.Runes.Reinforcing = desc.Reinforcing
			applied = true
		}
	}

	if !applied {
		return errors.IncompatibleTargetf(
			"no fundamental rune mapping for %s targets", targetType)
	}
	return nil
}

type propertyApplyResult struct {
	evictedSlug string
	canceled    bool
}

// applyPropertyState resolves the canonical key and writes it into the
// item's property list, prompting for eviction when the list is at
// capacity. The item is mutated in place; callers persist.
func (o *orchestrator) applyPropertyState(
	ctx context.Context,
	item *pf2e.Item,
	desc *engine.RuneDescriptor,
) (*propertyApplyResult, error) {
	targetType, ok := item.RuneTargetType()
	if !ok {
		return nil, errors.IncompatibleTarget(engine.ReasonNotEtchable)
	}

	resolved, err := o.engine.ResolvePropertyKey(ctx, &engine.ResolvePropertyKeyInput{
		Rune:       desc,
		TargetType: targetType,
	})
	if err != nil {
		return nil, err
	}
	key := resolved.Key

	if item.Runes.HasProperty(key) {
		return nil, errors.AlreadyExistsf("%s already bears the %s rune", item.Name, key)
	}

	slots := o.engine.PropertyRuneSlots(ctx, item)
	if slots <= 0 {
		return nil, errors.NoFreeSlotf("%s has no property rune slots", item.Name)
	}

	var evictedSlug string
	if len(item.Runes.Property) >= slots {
		evictedSlug, err = o.promptEviction(ctx, item, key)
		if err != nil {
			return nil, err
		}
		if evictedSlug == "" {
			return &propertyApplyResult{canceled: true}, nil
		}
		item.Runes.Property = removeFirst(item.Runes.Property, evictedSlug)
	}

	item.Runes.Property = append(item.Runes.Property, key)
	item.Runes.Property = o.engine.PrunePropertyRunes(ctx, item, item.Runes.Property)

	return &propertyApplyResult{evictedSlug: evictedSlug}, nil
}

// promptEviction asks which existing rune to displace. An empty return with
// nil error means the user canceled.
func (o *orchestrator) promptEviction(ctx context.Context, item *pf2e.Item, incoming string) (string, error) {
	options := make([]ui.ChoiceOption, 0, len(item.Runes.Property))
	for _, slug := range item.Runes.Property {
		options = append(options, ui.ChoiceOption{ID: slug, Label: slug})
	}

	choice, err := o.prompter.ChooseOption(ctx, &ui.ChooseOptionInput{
		Title:   "No free rune slot",
		Prompt:  fmt.Sprintf("%s is full. Choose a rune to remove to make room for %s.", item.Name, incoming),
		Options: options,
	})
	if err != nil {
		return "", err
	}
	if choice.Canceled {
		return "", nil
	}
	if !item.Runes.HasProperty(choice.OptionID) {
		return "", errors.InvalidArgumentf("selected rune %s is not on %s", choice.OptionID, item.Name)
	}
	return choice.OptionID, nil
}

// buildEvictedRuneItem materializes a displaced property rune as a loose
// rune item so it is not silently destroyed
func (o *orchestrator) buildEvictedRuneItem(ctx context.Context, slug string, from *pf2e.Item) *pf2e.Item {
	targetType, _ := from.RuneTargetType()

	value, err := o.engine.RuneValue(ctx, &engine.RuneValueInput{
		Kind:       engine.RuneKindProperty,
		Slug:       slug,
		TargetType: targetType,
	})
	if err != nil {
		value = &engine.RuneValueOutput{}
	}

	usage := "etched-onto-a-weapon"
	if targetType != pf2e.ItemTypeWeapon {
		usage = "etched-onto-armor"
	}

	name := titleCase(slug) + " Rune"
	if value.Name != "" {
		name = value.Name
	}

	traits := []string{"magical", "property"}
	for _, t := range value.Traits {
		if t != "magical" && t != "property" {
			traits = append(traits, t)
		}
	}

	return &pf2e.Item{
		ID:       o.idGen.Generate(),
		Name:     name,
		Slug:     slug,
		Type:     pf2e.ItemTypeEquipment,
		Level:    value.Level,
		PriceGP:  value.PriceGP,
		Traits:   traits,
		Usage:    usage,
		Quantity: 1,
	}
}

// placeEvictedLocal appends the materialized rune to the owner's inventory
// when a runestone container is present. The caller persists the owner.
func (o *orchestrator) placeEvictedLocal(ctx context.Context, owner *pf2e.Actor, item *pf2e.Item) bool {
	if owner.Runestone() == nil {
		return false
	}
	owner.Items = append(owner.Items, item)
	o.notifier.Info(ctx, fmt.Sprintf("%s was moved to %s's runestone", item.Name, owner.Name))
	return true
}

// placeEvictedRemote drops the materialized rune into a party stash with a
// runestone, else reports it destroyed
func (o *orchestrator) placeEvictedRemote(ctx context.Context, item *pf2e.Item) {
	parties, err := o.actorRepo.List(ctx, actors.ListInput{Type: pf2e.ActorTypeParty})
	if err == nil {
		for _, party := range parties.Actors {
			if party.Runestone() == nil {
				continue
			}
			party.Items = append(party.Items, item)
			if _, uerr := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: party}); uerr == nil {
				o.notifier.Info(ctx, fmt.Sprintf("%s was moved to the party stash", item.Name))
				return
			}
		}
	}

	o.notifier.Warn(ctx, fmt.Sprintf("%s had nowhere to go and was destroyed", item.Name))
}

func replaceItem(actor *pf2e.Actor, item *pf2e.Item) {
	for i, existing := range actor.Items {
		if existing.ID == item.ID {
			actor.Items[i] = item
			return
		}
	}
}

func removeItem(actor *pf2e.Actor, itemID string) {
	for i, existing := range actor.Items {
		if existing.ID == itemID {
			actor.Items = append(actor.Items[:i], actor.Items[i+1:]...)
			return
		}
	}
}

func removeFirst(slugs []string, slug string) []string {
	for i, s := range slugs {
		if s == slug {
			out := make([]string, 0, len(slugs)-1)
			out = append(out, slugs[:i]...)
			return append(out, slugs[i+1:]...)
		}
	}
	return slugs
}

func titleCase(slug string) string {
	out := []byte(slug)
	upper := true
	for i := 0; i < len(out); i++ {
		c := out[i]
		if c == '-' {
			out[i] = ' '
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
