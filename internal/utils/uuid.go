package utils

import "github.com/google/uuid"

// MessageIDs hands out identifiers for client-created chat messages.
// Version 7 ids sort by creation time, so a buffer ordered by id is also
// ordered by send time.
type MessageIDs struct{}

func NewMessageIDs() MessageIDs {
	return MessageIDs{}
}

// Generate returns a new id. It falls back to a random v4 id when the
// clock-based generator fails.
func (MessageIDs) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
