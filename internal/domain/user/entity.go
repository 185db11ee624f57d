package user

import (
	"time"

	"corpsite/internal/store"
)

// CMS roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is a CMS account. Session mechanics stay outside this service; the
// entity carries profile metadata plus the stored password hash.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func decode(doc store.Document) *User {
	return &User{
		ID:           doc.ID,
		Name:         doc.String("name"),
		Email:        doc.String("email"),
		Role:         doc.String("role"),
		PasswordHash: doc.String("password_hash"),
		CreatedAt:    doc.Time("created_at"),
		UpdatedAt:    doc.Time("updated_at"),
	}
}
