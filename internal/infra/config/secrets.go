package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/crypto/argon2"
)

const encPrefix = "enc:"

// decryptSecrets replaces every "enc:..." secret in cfg with its plaintext.
func decryptSecrets(cfg *Config, passphrase string) error {
	fields := map[string]*string{
		"llm.api_key":                       &cfg.LLM.APIKey,
		"gateway.auth_token":                &cfg.Gateway.AuthToken,
		"auth.secret":                       &cfg.Auth.Secret,
		"auth.oauth_upstream_client_secret": &cfg.Auth.OAuthUpstreamClientSecret,
		"auth.oidc_client_secret":           &cfg.Auth.OIDCClientSecret,
	}
	for i := range cfg.Auth.StaticTokens {
		fields[fmt.Sprintf("auth.static_tokens[%d]", i)] = &cfg.Auth.StaticTokens[i].Token
	}

	names := make([]string, 0, len(cfg.Services))
	for name := range cfg.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sc := cfg.Services[name]
		if !strings.HasPrefix(sc.APIKey, encPrefix) {
			continue
		}
		plain, err := DecryptValue(strings.TrimPrefix(sc.APIKey, encPrefix), passphrase)
		if err != nil {
			return fmt.Errorf("services.%s.api_key: %w", name, err)
		}
		sc.APIKey = plain
		cfg.Services[name] = sc
	}

	for field, fp := range fields {
		if !strings.HasPrefix(*fp, encPrefix) {
			continue
		}
		plain, err := DecryptValue(strings.TrimPrefix(*fp, encPrefix), passphrase)
		if err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
		*fp = plain
	}
	return nil
}

// EncryptValue encrypts a plaintext value with AES-256-GCM using a passphrase.
// The result is hex(salt) + ":" + hex(nonce+ciphertext), without the enc: prefix.
func EncryptValue(plaintext, passphrase string) (string, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(ciphertext), nil
}

// DecryptValue decrypts a value produced by EncryptValue.
func DecryptValue(encrypted, passphrase string) (string, error) {
	saltHex, dataHex, ok := strings.Cut(encrypted, ":")
	if !ok {
		return "", fmt.Errorf("invalid encrypted format")
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	data, err := hex.DecodeString(dataHex)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}
	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	plaintext, err := gcm.Open(nil, data[:nonceSize], data[nonceSize:], nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plaintext), nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	// Argon2id, 64 MiB, 4 lanes.
	key := argon2.IDKey([]byte(passphrase), salt, 1, 64*1024, 4, 32)
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
