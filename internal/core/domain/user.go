package domain

import "time"

// Role is fixed at account creation and drives authorization and query scoping.
type Role string

const (
	RoleStudent   Role = "student"
	RoleCaretaker Role = "caretaker"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleCaretaker
}

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	RoomNumber   string    `json:"roomNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsStudent reports whether the user holds the student role.
func (u *User) IsStudent() bool {
	return u != nil && u.Role == RoleStudent
}

// StudentRef is the read-only projection of a complaint's owner.
type StudentRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ref projects the user onto the fields other users may see.
func (u *User) Ref() *StudentRef {
	if u == nil {
		return nil
	}
	return &StudentRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
