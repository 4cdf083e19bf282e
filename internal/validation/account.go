package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/hance08/campuspay/internal/constants"
	"github.com/hance08/campuspay/internal/utils"
)

var validate = newValidator()

// Registration is the input accepted by the register flow.
// 0x7C is '|', the transaction log field separator.
type Registration struct {
	Username string `validate:"required,max=64,nowhitespace,excludesall=0x7C"`
	Password string `validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("nowhitespace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})
	return v
}

// ValidateRegistration checks both fields and reports the first problem in
// a user readable form.
func ValidateRegistration(r Registration) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	return describe(verrs[0])
}

func describe(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s can't be empty", field)
	case "max":
		return fmt.Errorf("%s too long (max %d characters)", field, constants.MaxUsernameLen)
	case "nowhitespace":
		return fmt.Errorf("%s can't contain spaces", field)
	case "excludesall":
		return fmt.Errorf("%s can't contain the '|' character", field)
	default:
		return fmt.Errorf("invalid %s", field)
	}
}

// ValidateUsername is the prompt validator for a new username.
func ValidateUsername(name string) error {
	return ValidateRegistration(Registration{Username: strings.TrimSpace(name), Password: "-"})
}

func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password can't be empty")
	}
	return nil
}

// ValidateNotEmpty is used for fields that only need a value, such as the
// username on the login prompt.
func ValidateNotEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s can't be empty", field)
		}
		return nil
	}
}

// ValidateAmountInput checks that the input parses; sign checks are left
// to the ledger so that its error ordering holds.
func ValidateAmountInput(s string) error {
	_, err := utils.ParseAmount(s)
	return err
}
