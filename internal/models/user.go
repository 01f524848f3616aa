package models

import "time"

// Role is the access level of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a user account.
type User struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Email     string    `json:"email" yaml:"email"`
	Avatar    string    `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Role      Role      `json:"role" yaml:"role"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Field returns the value stored under the JSON field name.
func (u User) Field(name string) any {
	switch name {
	case "id":
		return u.ID
	case "name":
		return u.Name
	case "email":
		return u.Email
	case "avatar":
		if u.Avatar == "" {
			return nil
		}
		return u.Avatar
	case "role":
		return string(u.Role)
	case "createdAt":
		if u.CreatedAt.IsZero() {
			return nil
		}
		return u.CreatedAt
	}
	return nil
}
