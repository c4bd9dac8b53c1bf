package ui

import "context"

// HeadlessPrompter cancels every prompt. It stands in when no dialog host is
// attached, so operations that need a human answer stop instead of guessing.
type HeadlessPrompter struct{}

// NewHeadlessPrompter creates a prompter that cancels every question
func NewHeadlessPrompter() *HeadlessPrompter {
	return &HeadlessPrompter{}
}

// ChooseOption cancels the choice
func (p *HeadlessPrompter) ChooseOption(_ context.Context, _ *ChooseOptionInput) (*ChooseOptionOutput, error) {
	return &ChooseOptionOutput{Canceled: true}, nil
}

// ConfirmCraftingCheck cancels the check
func (p *HeadlessPrompter) ConfirmCraftingCheck(
	_ context.Context,
	_ *ConfirmCraftingCheckInput,
) (*ConfirmCraftingCheckOutput, error) {
	return &ConfirmCraftingCheckOutput{Canceled: true}, nil
}
