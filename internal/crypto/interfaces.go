// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/config_codec_mock.go -package=mock

// ConfigCodec encrypts and decrypts the opaque parameter blobs stored in the
// file-browser's config document. The format must stay byte-compatible with
// the file-browser's own implementation: the browser reads what we write.
//
// Scheme:
//
//	key        = DeriveKey(secret)                         (16 bytes, AES-128)
//	ciphertext = base64url( nonce(12) ‖ AES-GCM(zlib(plaintext)) ‖ tag(16) )
type ConfigCodec interface {
	// GenerateSecret returns a fresh 16-character secret drawn uniformly
	// from [a-zA-Z0-9] using a cryptographically secure source.
	GenerateSecret() (string, error)

	// Encrypt compresses and encrypts plaintext under the key derived from
	// secret. Two calls with the same input produce different outputs.
	Encrypt(secret, plaintext string) (string, error)

	// Decrypt reverses Encrypt. It fails with ErrMalformedCiphertext,
	// ErrAuthenticationFailed or ErrCorruptPayload depending on which stage
	// rejected the input. Padded and unpadded base64url are both accepted.
	Decrypt(secret, ciphertext string) (string, error)
}
