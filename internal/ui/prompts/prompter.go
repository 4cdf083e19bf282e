package prompts

import "github.com/hance08/campuspay/internal/validation"

// Prompter is everything the interactive menu needs from the terminal.
type Prompter interface {
	Select(title string, options []string) (string, error)
	Input(title string, validator func(string) error) (string, error)
	Password(title string) (string, error)
	Amount(title string) (string, error)
}

// Terminal is the interactive Prompter backed by huh and survey.
type Terminal struct{}

func NewTerminal() *Terminal {
	return &Terminal{}
}

func (Terminal) Select(title string, options []string) (string, error) {
	def := ""
	if len(options) > 0 {
		def = options[0]
	}
	return PromptSelect(title, options, def)
}

func (Terminal) Input(title string, validator func(string) error) (string, error) {
	return PromptInput(title, "", validator)
}

func (Terminal) Password(title string) (string, error) {
	return PromptPassword(title)
}

func (Terminal) Amount(title string) (string, error) {
	return PromptAmount(title, "e.g. 25 or 12.50", validation.ValidateAmountInput)
}
