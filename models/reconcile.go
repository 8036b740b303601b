// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ReconcileResult is the outcome of running a config reconciler over one
// document.
type ReconcileResult struct {
	// Updated reports whether Document differs from the input.
	Updated bool

	// Reasons lists one human-readable line per applied change.
	Reasons []string

	// Document is the serialized reconciled document. It is nil when
	// Updated is false.
	Document []byte
}
