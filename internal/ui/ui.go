// Package ui defines the boundaries to the table's user interface. The host
// renders the dialogs and chat cards; these interfaces carry the questions
// out and the human's answers back.
package ui

//go:generate mockgen -destination=mock/mock_ui.go -package=uimock github.com/KirkDiggler/rune-api/internal/ui Prompter,Notifier,ChatPoster

import (
	"context"
)

// ChoiceOption is one selectable entry in a choice prompt
type ChoiceOption struct {
	ID    string
	Label string
}

// ChooseOptionInput defines a single-select prompt
type ChooseOptionInput struct {
	Title   string
	Prompt  string
	Options []ChoiceOption
}

// ChooseOptionOutput carries the selection. Canceled means the user
// dismissed the dialog; OptionID is empty in that case.
type ChooseOptionOutput struct {
	OptionID string
	Canceled bool
}

// CraftingOutcome is the human-reported result of a crafting check
type CraftingOutcome string

// Crafting outcomes
const (
	CraftingOutcomeSuccess CraftingOutcome = "success"
	CraftingOutcomeFailure CraftingOutcome = "failure"
)

// ConfirmCraftingCheckInput asks the user to roll a crafting check against
// the given DC and report the result. The module never rolls; the table does.
type ConfirmCraftingCheckInput struct {
	ItemName string
	Level    int
	DC       int
}

// ConfirmCraftingCheckOutput carries the reported outcome. Canceled means
// the user backed out without rolling.
type ConfirmCraftingCheckOutput struct {
	Outcome  CraftingOutcome
	Canceled bool
}

// Prompter asks the user blocking questions. Calls return when the user
// answers or dismisses the dialog; a dismissal is a cancellation, never an
// error.
type Prompter interface {
	// ChooseOption presents a single-select dialog
	ChooseOption(ctx context.Context, input *ChooseOptionInput) (*ChooseOptionOutput, error)

	// ConfirmCraftingCheck presents the crafting-check gate
	ConfirmCraftingCheck(ctx context.Context, input *ConfirmCraftingCheckInput) (*ConfirmCraftingCheckOutput, error)
}

// Notifier pushes one-way notices to the acting user
type Notifier interface {
	Info(ctx context.Context, message string)
	Warn(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// CraftingCheckRecord is the public record of a crafting-check transfer
type CraftingCheckRecord struct {
	ActorName string
	ItemName  string
	Level     int
	DC        int
	Outcome   CraftingOutcome
}

// ChatPoster writes public records to the table chat log
type ChatPoster interface {
	// PostCraftingCheck records a crafting-check attempt and its outcome
	PostCraftingCheck(ctx context.Context, record *CraftingCheckRecord) error
}
