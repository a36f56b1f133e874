package storage

// KV is the opaque key-value contract the record store persists through.
// Get reports whether the key was present; an absent key is not an error.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}
