package user

import "time"

// Role enum - admin may execute financial mutations (mark paid/unpaid,
// deletes), manager may write day-to-day entries, viewer is read-only.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleViewer
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
