package storage

// KV is the durable string-keyed store every journal component persists
// through. Values are JSON-serialized blobs owned entirely by their
// writer; mutation is always whole-value replace, never a partial edit of
// the stored blob.
type KV interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error

	// Path returns the path of the underlying storage file.
	Path() string
}
