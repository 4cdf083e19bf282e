package prompts

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/campuspay/internal/ui"
)

// PromptAmount prompts for an amount with custom validation
func PromptAmount(message string, helpText string, validator func(string) error) (string, error) {
	var amount string

	input := huh.NewInput().
		Title(message).
		Description(helpText).
		Value(&amount)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return strings.TrimSpace(amount), err
}

// PromptInput prompts for a generic text input with optional default and validator
func PromptInput(message string, defaultValue string, validator func(string) error) (string, error) {
	var inputVal string

	input := huh.NewInput().
		Title(message).
		Value(&inputVal)

	if defaultValue != "" {
		input.Placeholder(defaultValue)
	}

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	if err != nil {
		return "", err
	}

	inputVal = strings.TrimSpace(inputVal)
	if inputVal == "" && defaultValue != "" {
		return defaultValue, nil
	}

	return inputVal, nil
}

// PromptPassword reads a password without echoing it
func PromptPassword(message string) (string, error) {
	var password string

	err := survey.AskOne(&survey.Password{Message: message}, &password, ui.IconOption())
	return strings.TrimSpace(password), err
}

// PromptSelect prompts for a selection from a list of options
func PromptSelect(message string, options []string, defaultOption string) (string, error) {
	selected := defaultOption

	var opts []huh.Option[string]
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(message).
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
