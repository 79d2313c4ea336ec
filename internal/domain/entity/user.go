package entity

import (
	"time"
)

// User is a registered account. Registration, login and session handling live
// in the auth service; this backend only reads user records to resolve actor
// identities and join profile summaries onto engagement listings.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Summary returns the minimal profile attached to engagement records.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
