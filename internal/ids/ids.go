package ids

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Entity ids are a short prefix plus 32 hex chars, matching the ids
// already present in production databases.

func NewUser() string    { return "user_" + randomHex() }
func NewWorker() string  { return "worker_" + randomHex() }
func NewBooking() string { return "book_" + randomHex() }

// NewToken returns an opaque session token. It is a placeholder
// identifier handed back to clients, never verified server-side.
func NewToken() string { return randomHex() }

func randomHex() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
