package user

import "time"

// User is an account row in the users table. Rows are created on signup and
// read on login and identity lookup; nothing in the system updates or
// deletes them.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
