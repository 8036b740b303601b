// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is one registered account of the hub. Each user owns exactly one
// sync-engine instance (and optionally one file-browser instance) whose host
// ports are derived from Index.
type User struct {
	// Username is the unique login; it is also used as a directory name and
	// as part of container names.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password. It never leaves
	// the server.
	PasswordHash string `json:"passwordHash"`

	// SyncInstance names the user's sync-engine instance. It always equals
	// Username and is kept for compatibility with existing registry files.
	SyncInstance string `json:"syncthingInstance"`

	// IsAdmin grants access to the administrative API.
	IsAdmin bool `json:"isAdmin"`

	// Index is the user's port-allocation index. Indexes are never reused,
	// even after the user is removed.
	Index int `json:"index"`
}

// PublicUser is the projection of [User] that is safe to return to API
// clients.
type PublicUser struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	Index    int    `json:"index"`
}

// Public strips credential material from u.
func (u User) Public() PublicUser {
	return PublicUser{
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
		Index:    u.Index,
	}
}
