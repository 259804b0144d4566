package session

import "github.com/google/uuid"

// NewID returns an identifier for one dashboard process, sent with every request
// so the analytics service can correlate a pipeline trigger with the fetches after it.
func NewID() string {
	return uuid.NewString()
}
