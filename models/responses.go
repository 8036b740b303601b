package models

// OKResponse acknowledges a successful call without payload.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse carries a human-readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegistrationOpenResponse tells whether self-registration is possible.
type RegistrationOpenResponse struct {
	Open bool `json:"open"`
}

// SessionResponse describes the caller's session.
type SessionResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Username string `json:"username,omitempty"`
	Index    int    `json:"index,omitempty"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

// UsersResponse lists registered users.
type UsersResponse struct {
	Users []PublicUser `json:"users"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
