// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/MKhiriev/go-sync-hub/internal/crypto"
	"github.com/MKhiriev/go-sync-hub/models"
	"github.com/tidwall/jsonc"
)

const (
	// UploadChunkSizeMB is the enforced upload chunk size.
	UploadChunkSizeMB = 10

	// UserDataPath is the user's data directory inside the file-browser
	// container.
	UserDataPath = "/app/userdata"

	passthroughIdentity = "passthrough"
	directStrategy      = "direct"
	localBackend        = "local"
)

// FileBrowserConfig reconciles a file-browser config.json. The secret key is
// generated when missing; the middleware parameters are encrypted with it.
// Existing parameters are compared after decryption because every
// encryption produces a different ciphertext.
func FileBrowserConfig(doc []byte, codec crypto.ConfigCodec) (models.ReconcileResult, error) {
	var cfg fileBrowserConfig
	if err := json.Unmarshal(jsonc.ToJSON(doc), &cfg); err != nil {
		return models.ReconcileResult{}, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	var reasons []string

	if cfg.General == nil {
		cfg.General = &fileBrowserGeneral{}
	}

	secret := cfg.General.SecretKey
	freshSecret := secret == ""
	if freshSecret {
		generated, err := codec.GenerateSecret()
		if err != nil {
			return models.ReconcileResult{}, fmt.Errorf("%w: %w", ErrSecretGeneration, err)
		}
		secret = generated
		cfg.General.SecretKey = generated
		reasons = append(reasons, "Generated new secret key")
	}

	if !isSingleLocalConnection(cfg.Connections) {
		cfg.Connections = []fileBrowserConnection{{Type: localBackend, Label: localBackend}}
		reasons = append(reasons, "Storage connections set to a single local connection")
	}

	if cfg.General.UploadChunkSize == nil || *cfg.General.UploadChunkSize != UploadChunkSizeMB {
		cfg.General.UploadChunkSize = ptr(float64(UploadChunkSizeMB))
		reasons = append(reasons, fmt.Sprintf("Upload chunk size set to %d MB", UploadChunkSizeMB))
	}

	if cfg.Features == nil {
		cfg.Features = &fileBrowserFeatures{}
	}
	if cfg.Features.Share == nil {
		cfg.Features.Share = &fileBrowserShare{}
	}
	if cfg.Features.Share.Enable == nil || *cfg.Features.Share.Enable {
		cfg.Features.Share.Enable = ptr(false)
		reasons = append(reasons, "Sharing disabled")
	}

	if freshSecret || !middlewareIsCurrent(cfg.Middleware, secret, codec) {
		if err := setMiddleware(&cfg, secret, codec); err != nil {
			return models.ReconcileResult{}, err
		}
		reasons = append(reasons, "Middleware identity provider and attribute mapping updated")
	}

	if len(reasons) == 0 {
		return models.ReconcileResult{}, nil
	}

	out, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return models.ReconcileResult{}, fmt.Errorf("encode config: %w", err)
	}

	return models.ReconcileResult{Updated: true, Reasons: reasons, Document: out}, nil
}

// identityParams and attributeParams are the plaintexts of the middleware
// parameters. Field order matches what the file-browser itself writes.
type identityParams struct {
	Strategy string `json:"strategy"`
}

type attributeParams struct {
	Local localBackendParams `json:"local"`
}

type localBackendParams struct {
	Type     string `json:"type"`
	Password string `json:"password"`
	Path     string `json:"path"`
}

func desiredIdentityParams() identityParams {
	return identityParams{Strategy: directStrategy}
}

func desiredAttributeParams(secret string) attributeParams {
	return attributeParams{Local: localBackendParams{Type: localBackend, Password: secret, Path: UserDataPath}}
}

func isSingleLocalConnection(conns []fileBrowserConnection) bool {
	return len(conns) == 1 && conns[0].Type == localBackend && conns[0].Label == localBackend
}

// middlewareIsCurrent reports whether mw already authenticates every
// request as the local backend with the given secret. Undecryptable
// parameters count as stale.
func middlewareIsCurrent(mw *fileBrowserMiddleware, secret string, codec crypto.ConfigCodec) bool {
	if mw == nil || mw.IdentityProvider == nil || mw.AttributeMapping == nil {
		return false
	}
	if mw.IdentityProvider.Type != passthroughIdentity || mw.AttributeMapping.RelatedBackend != localBackend {
		return false
	}

	return paramsEqual(codec, secret, mw.IdentityProvider.Params, desiredIdentityParams()) &&
		paramsEqual(codec, secret, mw.AttributeMapping.Params, desiredAttributeParams(secret))
}

// paramsEqual decrypts ciphertext and compares it with want as JSON values.
func paramsEqual(codec crypto.ConfigCodec, secret, ciphertext string, want any) bool {
	if ciphertext == "" {
		return false
	}

	plaintext, err := codec.Decrypt(secret, ciphertext)
	if err != nil {
		return false
	}

	var got any
	if err := json.Unmarshal([]byte(plaintext), &got); err != nil {
		return false
	}

	wantRaw, err := json.Marshal(want)
	if err != nil {
		return false
	}
	var expected any
	if err := json.Unmarshal(wantRaw, &expected); err != nil {
		return false
	}

	return reflect.DeepEqual(got, expected)
}

func setMiddleware(cfg *fileBrowserConfig, secret string, codec crypto.ConfigCodec) error {
	idp, err := encryptJSON(codec, secret, desiredIdentityParams())
	if err != nil {
		return err
	}
	attrs, err := encryptJSON(codec, secret, desiredAttributeParams(secret))
	if err != nil {
		return err
	}

	if cfg.Middleware == nil {
		cfg.Middleware = &fileBrowserMiddleware{}
	}
	cfg.Middleware.IdentityProvider = &fileBrowserIdentityProvider{Type: passthroughIdentity, Params: idp}
	cfg.Middleware.AttributeMapping = &fileBrowserAttributeMapping{RelatedBackend: localBackend, Params: attrs}

	return nil
}

func encryptJSON(codec crypto.ConfigCodec, secret string, v any) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParamsEncryption, err)
	}

	ciphertext, err := codec.Encrypt(secret, string(plaintext))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParamsEncryption, err)
	}

	return ciphertext, nil
}
