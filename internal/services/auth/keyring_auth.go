package auth

import (
	"errors"

	"github.com/zalando/go-keyring"
)

type KeyringStore struct {
	serviceName string
}

func NewKeyringStore(serviceName string) *KeyringStore {
	if serviceName == "" {
		serviceName = ServiceName
	}
	return &KeyringStore{serviceName: serviceName}
}

func (k *KeyringStore) SetToken(entry string, token string) error {
	return keyring.Set(k.serviceName, NormalizeEntry(entry), token)
}

func (k *KeyringStore) GetToken(entry string) (string, error) {
	token, err := keyring.Get(k.serviceName, NormalizeEntry(entry))
	if err == nil {
		return token, nil
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrTokenNotFound
	}
	return "", err
}

func (k *KeyringStore) DeleteToken(entry string) error {
	err := keyring.Delete(k.serviceName, NormalizeEntry(entry))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrTokenNotFound
	}
	return err
}
