package storage

import "strings"

// Select returns the store implementation for a config path: paths ending
// in .json get the single-file JSON store, everything else the SQLite
// store.
func Select(path string) KV {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
