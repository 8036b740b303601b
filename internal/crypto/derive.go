// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"strings"
)

// secretAlphabet is both the alphabet of generated secrets and the digit set
// of the base-62 digest encoding.
const secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	keySize   = 16
	nonceSize = 12
	tagSize   = 16

	proofPrefix = "PROOF_"
)

// DeriveKey returns the AES-128 key the file-browser derives from secret.
//
//	proof = hash("PROOF_" + secret, len(secret))
//	key   = hash(proof, 16)
func DeriveKey(secret string) []byte {
	proof := truncatedHash(proofPrefix+secret, len(secret))

	key := make([]byte, keySize)
	copy(key, truncatedHash(proof, keySize))

	return key
}

// truncatedHash is the SHA-256 digest of s rendered in base 62 and cut to n
// characters. A non-positive n keeps the whole rendering.
func truncatedHash(s string, n int) string {
	digest := sha256.Sum256([]byte(s))

	var sb strings.Builder
	for _, b := range digest {
		if n > 0 && sb.Len() >= n {
			break
		}
		writeReversedBase62(&sb, int(b))
	}

	h := sb.String()
	if len(h) > n {
		return h[:n]
	}
	return h
}

// writeReversedBase62 writes v in base 62, least significant digit first.
// Zero is written as a single digit.
func writeReversedBase62(sb *strings.Builder, v int) {
	base := len(secretAlphabet)
	for {
		sb.WriteByte(secretAlphabet[v%base])
		v /= base
		if v == 0 {
			return
		}
	}
}
