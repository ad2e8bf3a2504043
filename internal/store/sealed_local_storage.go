package store

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-campus-assistant/internal/crypto"
)

// SaltKey is the key the key-derivation salt is kept under. It is stored in
// the clear.
const SaltKey = "__salt"

type sealedLocalStorage struct {
	inner  LocalStorage
	sealer crypto.Sealer
	salt   string
}

// NewSealedLocalStorage wraps inner so every value is sealed with a key
// derived from secret. The salt is read from inner, or generated and stored
// on first use.
func NewSealedLocalStorage(ctx context.Context, inner LocalStorage, secret string) (LocalStorage, error) {
	encodedSalt, ok, err := inner.GetItem(ctx, SaltKey)
	if err != nil {
		return nil, fmt.Errorf("read storage salt: %w", err)
	}

	var salt []byte
	if ok {
		salt, err = base64.StdEncoding.DecodeString(encodedSalt)
		if err != nil {
			return nil, fmt.Errorf("decode storage salt: %w", err)
		}
	} else {
		salt, err = crypto.GenerateSalt()
		if err != nil {
			return nil, err
		}
		encodedSalt = base64.StdEncoding.EncodeToString(salt)
		if err = inner.SetItem(ctx, SaltKey, encodedSalt); err != nil {
			return nil, fmt.Errorf("store storage salt: %w", err)
		}
	}

	sealer, err := crypto.NewSealer(secret, salt)
	if err != nil {
		return nil, err
	}

	return &sealedLocalStorage{inner: inner, sealer: sealer, salt: encodedSalt}, nil
}

func (s *sealedLocalStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	sealed, ok, err := s.inner.GetItem(ctx, key)
	if err != nil || !ok {
		return "", ok, err
	}

	value, err := s.sealer.Open(sealed)
	if err != nil {
		return "", false, fmt.Errorf("%w %q: %w", ErrUnsealingValue, key, err)
	}
	return value, true, nil
}

func (s *sealedLocalStorage) SetItem(ctx context.Context, key, value string) error {
	sealed, err := s.sealer.Seal(value)
	if err != nil {
		return fmt.Errorf("seal %q: %w", key, err)
	}
	return s.inner.SetItem(ctx, key, sealed)
}

func (s *sealedLocalStorage) RemoveItem(ctx context.Context, key string) error {
	return s.inner.RemoveItem(ctx, key)
}
