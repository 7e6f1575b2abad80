// Package localstore is the process-local persisted key-value store standing
// in for the browser's localStorage: string keys, string values, and a
// defensive reset whenever a stored value no longer parses.
package localstore

import (
	"encoding/json"
	"log"
)

// Store is the persistence contract shared by the file-backed and in-memory
// implementations.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Clear() error
	Keys() ([]string, error)
}

// GetJSON decodes the value stored under key into dst. A corrupted value is
// treated as absent: the key is cleared, the failure is logged, and the caller
// sees (false, nil) so session data never becomes fatal.
func GetJSON(s Store, key string, dst interface{}) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		log.Printf("localstore: corrupt value under %q, clearing: %v", key, err)
		if delErr := s.Delete(key); delErr != nil {
			return false, delErr
		}
		return false, nil
	}
	return true, nil
}

// SetJSON serializes v and stores it under key.
func SetJSON(s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
