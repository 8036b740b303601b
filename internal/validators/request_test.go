// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sync-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidator_Username(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"simple", "alice", true},
		{"digits and separators", "bob-2_x", true},
		{"dot inside", "bob.smith", false},
		{"upper case", "Alice", false},
		{"leading dash", "-bob", false},
		{"leading digit", "1user", true},
		{"max length", strings.Repeat("a", UsernameMaxLength), true},
		{"empty", "", false},
		{"dot", ".", false},
		{"dot dot", "..", false},
		{"leading dot", ".hidden", false},
		{"slash", "a/b", false},
		{"backslash", `a\b`, false},
		{"space", "a b", false},
		{"too long", strings.Repeat("a", UsernameMaxLength+1), false},
		{"unicode", "алиса", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.username)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRequestValidator_Credentials(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.CredentialsRequest{Username: "alice", Password: "pw"}))
	require.NoError(t, v.Validate(ctx, &models.CredentialsRequest{Username: "alice", Password: "pw"}))

	err := v.Validate(ctx, models.CredentialsRequest{Username: "alice"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Password must satisfy required")

	err = v.Validate(ctx, models.CredentialsRequest{Username: "../x", Password: "pw"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Username must satisfy username")

	err = v.Validate(ctx, models.CredentialsRequest{Username: "alice", Password: strings.Repeat("p", 73)})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Password must satisfy max=72")
}

func TestRequestValidator_AddUser(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.AddUserRequest{Username: "bob", Password: "pw", IsAdmin: true}))
	assert.ErrorIs(t, v.Validate(ctx, models.AddUserRequest{Password: "pw"}), ErrValidation)
}

func TestRequestValidator_UpdatePassword(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UpdatePasswordRequest{OldPassword: "a", NewPassword: "b"}))
	assert.ErrorIs(t, v.Validate(ctx, models.UpdatePasswordRequest{NewPassword: "b"}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, models.UpdatePasswordRequest{OldPassword: "a"}), ErrValidation)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.User{}), ErrUnsupportedType)
}
