// Package kv provides the local persistent key-value store backing user
// state. Values are opaque strings; callers own serialization.
package kv

// Store is a synchronous string key-value store surviving restarts.
type Store interface {
	// Get returns the value for key and whether the key exists.
	Get(key string) (string, bool, error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	Close() error
}
