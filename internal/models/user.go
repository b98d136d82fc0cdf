package models

import "time"

// User is a stored author/reader document. CredentialSecret holds the bcrypt
// hash of the account secret; it never leaves the store boundary: sanitized
// copies have it blanked, and omitempty keeps it out of any serialized view.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	Name             string    `json:"name"`
	Bio              string    `json:"bio,omitempty"`
	Avatar           string    `json:"avatar,omitempty"`
	Followers        []string  `json:"followers"`
	Following        []string  `json:"following"`
	CreatedAt        time.Time `json:"createdAt"`
	CredentialSecret string    `json:"credentialSecret,omitempty"`
}

// Sanitized returns a copy safe to expose outside the store: the credential
// is blanked and follower/following slices are detached from the original.
func (u *User) Sanitized() *User {
	c := *u
	c.CredentialSecret = ""
	c.Followers = append([]string(nil), u.Followers...)
	c.Following = append([]string(nil), u.Following...)
	return &c
}

// UserPatch is a partial update for a User. A nil field is left unchanged;
// a non-nil field replaces the stored value wholesale. There is deliberately
// no field for ID or CreatedAt (immutable) and none for the credential;
// credential rotation is not part of the surface.
type UserPatch struct {
	Email     *string
	Username  *string
	Name      *string
	Bio       *string
	Avatar    *string
	Followers *[]string
	Following *[]string
}
