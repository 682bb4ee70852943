package entities

import (
	"time"

	"github.com/google/uuid"
)

// User is the wallet owner as seen by this service. Identity management
// lives elsewhere; only the lookup needed by the e-mail notifier is modeled.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
