// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedCiphertext is returned when the input is not valid
	// base64url or is too short to hold a nonce and a tag.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrAuthenticationFailed is returned when the GCM tag does not verify,
	// i.e. the wrong secret was used or the blob was tampered with.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")

	// ErrCorruptPayload is returned when the decrypted bytes are not a valid
	// zlib stream.
	ErrCorruptPayload = errors.New("corrupt compressed payload")
)
