package user

import "time"

// User is a staff account. The stored password is a bcrypt hash and is
// never serialized.
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Username  string     `json:"username"`
	Password  string     `json:"-"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	Photo     string     `json:"photo,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// UpsertUserRequest is the payload for creating or updating a user. On
// update, a blank Password or Photo means "keep the stored value", not
// "clear it".
type UpsertUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
	Photo    string `json:"photo"`
}
