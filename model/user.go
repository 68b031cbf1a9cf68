package model

import "time"

// User is the credential record plus the public profile fields. Username is
// the unique identifier; Password holds the bcrypt hash and is never
// serialized into responses.
type User struct {
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
