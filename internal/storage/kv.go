// Package storage provides the key-value persistence collaborator and the
// bridge that mirrors board snapshots into it. The KV store holds string
// keys and string values; every key is namespace-prefixed by its owner.
package storage

// KV is the key-value persistence collaborator. Implementations must treat
// keys as opaque exact strings; the bridge owns the key scheme.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes exactly key. Deleting an absent key is not an error.
	Delete(key string) error

	// DeleteByPrefix removes every key starting with prefix.
	DeleteByPrefix(prefix string) error
}
