package prompts

import (
	"fmt"

	"github.com/hance08/campuspay/internal/validation"
)

// PromptCredentials asks for a username and a masked password. For a new
// registration the username is validated before the password is asked.
func PromptCredentials(p Prompter, registering bool) (string, string, error) {
	validator := validation.ValidateNotEmpty("username")
	if registering {
		validator = validation.ValidateUsername
	}

	username, err := p.Input("Username:", validator)
	if err != nil {
		return "", "", fmt.Errorf("input cancelled: %w", err)
	}

	password, err := p.Password("Password:")
	if err != nil {
		return "", "", fmt.Errorf("input cancelled: %w", err)
	}

	if registering {
		if err := validation.ValidatePassword(password); err != nil {
			return "", "", err
		}
	}

	return username, password, nil
}
