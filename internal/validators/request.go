// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-sync-hub/models"
	"github.com/go-playground/validator/v10"
)

const (
	// UsernameMaxLength bounds usernames; they become directory and
	// container names.
	UsernameMaxLength = 32

	// UsernameRule validates a bare username with [validator.Validate.Var].
	UsernameRule = "required,username"
)

// usernamePattern allows lower-case letters, digits, '_' and '-' and must
// start with a letter or digit. Usernames become directory names and
// compose project names, and compose folds case and drops '.', so a wider
// set would let two users share one project.
var usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// RequestValidator validates API request bodies through struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator knowing the "username" rule.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", validateUsername)

	return &RequestValidator{validate: v}
}

func validateUsername(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return len(name) <= UsernameMaxLength && usernamePattern.MatchString(name)
}

// Validate checks obj. Structs are validated by their tags; a plain string
// is validated as a username.
func (v *RequestValidator) Validate(_ context.Context, obj any) error {
	var err error

	switch value := obj.(type) {
	case string:
		err = v.validate.Var(value, UsernameRule)
	case models.CredentialsRequest, *models.CredentialsRequest,
		models.AddUserRequest, *models.AddUserRequest,
		models.UpdatePasswordRequest, *models.UpdatePasswordRequest:
		err = v.validate.Struct(value)
	default:
		return ErrUnsupportedType
	}

	return describe(err)
}

// describe turns validator errors into one readable ErrValidation.
func describe(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if field == "" {
			field = "value"
		}
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s must satisfy %s", field, fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}
