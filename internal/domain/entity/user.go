package entity

import "time"

// Roles a user can hold. Role is fixed at creation; there is no
// role-change endpoint.
const (
	RoleUser       = "user"
	RoleStoreOwner = "store_owner"
	RoleAdmin      = "admin"
)

// User is the aggregate root for the user domain.
// PasswordHash holds a bcrypt hash and is never serialized.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Address      string `json:"address"`
	Role         string `json:"role"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
