// Package events wires the rune orchestrators onto the shared game event
// bus. The host publishes an event when the user confirms a dialog; the
// handler unpacks the payload, runs the operation, and reports failures
// through the notifier instead of bubbling them into the bus.
package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
	"github.com/KirkDiggler/rune-api/internal/orchestrators/runes"
	"github.com/KirkDiggler/rune-api/internal/orchestrators/transfer"
	"github.com/KirkDiggler/rune-api/internal/ui"
)

// Event types this handler subscribes to
const (
	EventRuneAttach   = "rune.attach"
	EventRuneTransfer = "rune.transfer"
)

// Event context payload keys
const (
	keyUserID           = "userID"
	keyGM               = "gm"
	keyActorID          = "actorID"
	keyRuneID           = "runeID"
	keyTargetActorID    = "targetActorID"
	keyTargetID         = "targetID"
	keyConsumeRune      = "consumeRune"
	keySourceID         = "sourceID"
	keyChoice           = "choice"
	keyMethod           = "method"
	keyRemoveFromSource = "removeFromSource"
	keyPaySource        = "paySource"
)

// UserEntity adapts a host user to the bus's entity contract. Publishers
// stamp rune events with the acting user as the event source.
type UserEntity struct {
	ID string
}

// GetID returns the user's unique identifier
func (e *UserEntity) GetID() string { return e.ID }

// GetType returns the entity type
func (e *UserEntity) GetType() string { return "user" }

var _ core.Entity = (*UserEntity)(nil)

// Config holds the dependencies for the event handler
type Config struct {
	EventBus        events.EventBus
	RuneService     runes.Service
	TransferService transfer.Service
	Notifier        ui.Notifier
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.RuneService == nil {
		vb.RequiredField("RuneService")
	}
	if c.TransferService == nil {
		vb.RequiredField("TransferService")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}

	return vb.Build()
}

// Handler subscribes the rune operations on the event bus
type Handler struct {
	bus           events.EventBus
	runes         runes.Service
	transfers     transfer.Service
	notifier      ui.Notifier
	subscriptions []string
}

// NewHandler creates a new event handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		bus:       cfg.EventBus,
		runes:     cfg.RuneService,
		transfers: cfg.TransferService,
		notifier:  cfg.Notifier,
	}, nil
}

// Register subscribes the handler on the bus. Call Unregister to detach.
func (h *Handler) Register() {
	h.subscriptions = append(h.subscriptions,
		h.bus.SubscribeFunc(EventRuneAttach, 0, h.handleAttach),
		h.bus.SubscribeFunc(EventRuneTransfer, 0, h.handleTransfer),
	)
}

// Unregister detaches every subscription made by Register
func (h *Handler) Unregister() {
	for _, id := range h.subscriptions {
		if err := h.bus.Unsubscribe(id); err != nil {
			slog.Warn("failed to unsubscribe", "subscription", id, "error", err.Error())
		}
	}
	h.subscriptions = nil
}

// handleAttach runs an attach operation from an event payload. Failures are
// reported through the notifier; the bus always sees a nil error so one bad
// payload never unhooks the handler.
func (h *Handler) handleAttach(ctx context.Context, e events.Event) error {
	input := &runes.AttachRuneInput{
		User:          eventUser(e),
		ActorID:       stringValue(e, keyActorID),
		RuneItemID:    stringValue(e, keyRuneID),
		TargetActorID: stringValue(e, keyTargetActorID),
		TargetItemID:  stringValue(e, keyTargetID),
		ConsumeRune:   boolValue(e, keyConsumeRune),
	}
	if input.TargetActorID == "" {
		input.TargetActorID = input.ActorID
	}

	output, err := h.runes.AttachRune(ctx, input)
	if err != nil {
		h.notifier.Error(ctx, fmt.Sprintf("rune attach failed: %s", err.Error()))
		return nil
	}
	if output.Canceled {
		slog.InfoContext(ctx, "rune attach canceled", "actor_id", input.ActorID)
	}
	return nil
}

// handleTransfer runs a transfer operation from an event payload
func (h *Handler) handleTransfer(ctx context.Context, e events.Event) error {
	input := &transfer.TransferInput{
		User:             eventUser(e),
		ActorID:          stringValue(e, keyActorID),
		SourceItemID:     stringValue(e, keySourceID),
		TargetItemID:     stringValue(e, keyTargetID),
		Choice:           choiceValue(e),
		Method:           transfer.Method(stringValue(e, keyMethod)),
		RemoveFromSource: boolValue(e, keyRemoveFromSource),
		PaySource:        transfer.PaySource(stringValue(e, keyPaySource)),
	}

	output, err := h.transfers.Transfer(ctx, input)
	if err != nil {
		h.notifier.Error(ctx, fmt.Sprintf("rune transfer failed: %s", err.Error()))
		return nil
	}
	switch {
	case output.Canceled:
		slog.InfoContext(ctx, "rune transfer canceled", "actor_id", input.ActorID)
	case output.CheckFailed:
		slog.InfoContext(ctx, "rune transfer check failed", "actor_id", input.ActorID)
	}
	return nil
}

// eventUser resolves the acting user from the payload, falling back to the
// event's source entity
func eventUser(e events.Event) pf2e.User {
	user := pf2e.User{
		ID: stringValue(e, keyUserID),
		GM: boolValue(e, keyGM),
	}
	if user.ID == "" && e.Source() != nil {
		user.ID = e.Source().GetID()
	}
	return user
}

func stringValue(e events.Event, key string) string {
	if v, ok := e.Context().Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func boolValue(e events.Event, key string) bool {
	if v, ok := e.Context().Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func choiceValue(e events.Event) *transfer.RuneChoice {
	v, ok := e.Context().Get(keyChoice)
	if !ok {
		return nil
	}
	choice, ok := v.(*transfer.RuneChoice)
	if !ok {
		return nil
	}
	return choice
}
