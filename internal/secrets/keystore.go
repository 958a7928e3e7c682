package secrets

import (
	"fmt"
	"runtime"

	"github.com/99designs/keyring"
)

const keychainService = "callscope"

// Store is the interface for explorer API-key storage. Implemented by the
// OS-keychain Keystore and the in-memory variant used in tests.
type Store interface {
	SetKey(network, apiKey string) error
	GetKey(network string) (string, error)
	DeleteKey(network string) error
}

// Keystore wraps OS keychain access for explorer API keys.
type Keystore struct {
	ring keyring.Keyring
}

// DefaultKeystore returns a keystore backed by the OS keychain.
func DefaultKeystore() *Keystore {
	cfg := keyring.Config{
		ServiceName:              keychainService,
		KeychainTrustApplication: true,
	}

	// On Linux without a GUI, fall back to file-based storage.
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		// Use file backend as ultimate fallback.
		ring, _ = keyring.Open(keyring.Config{
			ServiceName:     keychainService,
			AllowedBackends: []keyring.BackendType{keyring.FileBackend},
		})
	}

	return &Keystore{ring: ring}
}

func keyRef(network string) string {
	return keychainService + ".apikey." + network
}

// SetKey stores the explorer API key for a chain slug.
func (k *Keystore) SetKey(network, apiKey string) error {
	if k.ring == nil {
		return fmt.Errorf("keystore not available")
	}
	err := k.ring.Set(keyring.Item{
		Key:  keyRef(network),
		Data: []byte(apiKey),
	})
	if err != nil {
		return fmt.Errorf("keychain store: %w", err)
	}
	return nil
}

// GetKey fetches the explorer API key for a chain slug. Returns "" with no
// error when nothing is stored — a missing key just means free-tier access.
func (k *Keystore) GetKey(network string) (string, error) {
	if k.ring == nil {
		return "", nil
	}
	item, err := k.ring.Get(keyRef(network))
	if err == keyring.ErrKeyNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("keychain retrieve: %w", err)
	}
	return string(item.Data), nil
}

// DeleteKey removes a stored API key.
func (k *Keystore) DeleteKey(network string) error {
	if k.ring == nil {
		return nil
	}
	err := k.ring.Remove(keyRef(network))
	if err == keyring.ErrKeyNotFound {
		return nil
	}
	return err
}

// InMemoryKeystore stores API keys in memory (for tests).
type InMemoryKeystore struct {
	data map[string]string
}

// NewInMemoryKeystore creates an in-memory keystore.
func NewInMemoryKeystore() *InMemoryKeystore {
	return &InMemoryKeystore{data: make(map[string]string)}
}

func (k *InMemoryKeystore) SetKey(network, apiKey string) error {
	k.data[keyRef(network)] = apiKey
	return nil
}

func (k *InMemoryKeystore) GetKey(network string) (string, error) {
	return k.data[keyRef(network)], nil
}

func (k *InMemoryKeystore) DeleteKey(network string) error {
	delete(k.data, keyRef(network))
	return nil
}
