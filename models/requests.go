package models

// CredentialsRequest is the body of login and register calls.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,max=72"`
}

// AddUserRequest is the body of the admin "add user" call.
type AddUserRequest struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,max=72"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UpdatePasswordRequest is the body of the password change call.
type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,max=72"`
}
