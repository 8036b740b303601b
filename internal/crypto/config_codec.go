// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// secretLength is the length of secrets produced by GenerateSecret.
const secretLength = 16

// configCodec is the default implementation of [ConfigCodec]. It is
// stateless and safe for concurrent use.
type configCodec struct {
	random io.Reader
}

// NewConfigCodec returns a [ConfigCodec] backed by crypto/rand.
func NewConfigCodec() ConfigCodec {
	return &configCodec{random: rand.Reader}
}

// GenerateSecret implements [ConfigCodec]. Every character is drawn with
// rand.Int so the distribution over the alphabet is unbiased.
func (c *configCodec) GenerateSecret() (string, error) {
	limit := big.NewInt(int64(len(secretAlphabet)))

	secret := make([]byte, secretLength)
	for i := range secret {
		idx, err := rand.Int(c.random, limit)
		if err != nil {
			return "", fmt.Errorf("generate secret: %w", err)
		}
		secret[i] = secretAlphabet[idx.Int64()]
	}

	return string(secret), nil
}

// Encrypt implements [ConfigCodec]. The output is padded base64url of
// nonce ‖ ciphertext ‖ tag.
func (c *configCodec) Encrypt(secret, plaintext string) (string, error) {
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write([]byte(plaintext)); err != nil {
		return "", fmt.Errorf("compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("compress payload: %w", err)
	}

	gcm, err := newGCM(DeriveKey(secret))
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends ciphertext ‖ tag to nonce.
	blob := gcm.Seal(nonce, nonce, compressed.Bytes(), nil)

	return base64.URLEncoding.EncodeToString(blob), nil
}

// Decrypt implements [ConfigCodec].
func (c *configCodec) Decrypt(secret, ciphertext string) (string, error) {
	blob, err := decodeBase64URL(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}
	if len(blob) < nonceSize+tagSize {
		return "", fmt.Errorf("%w: %d bytes is shorter than nonce and tag", ErrMalformedCiphertext, len(blob))
	}

	gcm, err := newGCM(DeriveKey(secret))
	if err != nil {
		return "", err
	}

	nonce, sealed := blob[:nonceSize], blob[nonceSize:]
	compressed, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}
	defer zr.Close()

	plaintext, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// decodeBase64URL accepts base64url with or without padding. Standard
// alphabet characters are tolerated as well.
func decodeBase64URL(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("+", "-", "/", "_").Replace(s)
	s = strings.TrimRight(s, "=")

	return base64.RawURLEncoding.DecodeString(s)
}
