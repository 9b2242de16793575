package identity

import "time"

// User is the identity record exposed to the rest of the system.
type User struct {
	UID          string    `json:"uid" db:"uid"`
	Email        string    `json:"email" db:"email"`
	DisplayName  string    `json:"displayName,omitempty" db:"display_name"`
	PhotoURL     string    `json:"photoURL,omitempty" db:"photo_url"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}

// Session is one signed-in session, keyed by the token id embedded in
// the JWT so sign-out can revoke it.
type Session struct {
	TokenID   string    `db:"token_id"`
	UserUID   string    `db:"user_uid"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
