// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InitialLatestIndex is the high-water mark of an empty registry; the first
// registered user therefore receives index 3.
const InitialLatestIndex = 2

// RegistryDocument is the on-disk shape of the user registry.
type RegistryDocument struct {
	Users []User `json:"users"`

	// LatestIndex is the highest index ever handed out. It never decreases.
	LatestIndex int `json:"latestIndex"`
}
