// Package storage provides the durable key-value store the conversation
// state is mirrored into. Two logical keys are used: the serialized
// session list and the currently selected session id.
package storage

// Store is a minimal durable key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)

	// Set writes the value for key.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Well-known keys, carried over from the original storage layout.
const (
	KeySessions        = "agrisaarthi-chat-sessions"
	KeySelectedSession = "agrisaarthi-selected-session"
)
