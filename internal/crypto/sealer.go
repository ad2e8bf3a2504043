// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the key derivation salt in bytes.
const SaltSize = 16

// ErrEmptySecret is returned by [NewSealer] when no secret is given.
var ErrEmptySecret = errors.New("storage secret is empty")

// Argon2id parameters recommended by OWASP (2024).
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // 64 MiB
	argonThreads = 4
	argonKeyLen  = 32 // 256 bits
)

// aesSealer is the AES-256-GCM implementation of [Sealer].
type aesSealer struct {
	aead cipher.AEAD
}

// GenerateSalt reads [SaltSize] random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// NewSealer derives a 256-bit key from secret and salt with Argon2id and
// returns a [Sealer] using it.
func NewSealer(secret string, salt []byte) (Sealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(salt))
	}

	key := argon2.IDKey([]byte(secret), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &aesSealer{aead: gcm}, nil
}

// Seal implements [Sealer]. The output is the standard base64 encoding of
// nonce (12 bytes) ‖ ciphertext.
func (s *aesSealer) Seal(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Sealer].
func (s *aesSealer) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	nonceSize := s.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt value: %w", err)
	}

	return string(plaintext), nil
}
