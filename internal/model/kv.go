package model

// KV is the string-keyed persistence surface the history store writes through.
// Implementations are not expected to be safe for concurrent writers; the
// store assumes a single logical writer.
type KV interface {
	// Get returns the value for key. The second return is false when the key
	// has never been set.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}
