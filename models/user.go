package models

import "gorm.io/gorm"

// Account roles, lowest to highest.
const (
	RoleReader = "Reader"
	RoleMember = "Member"
	RoleAdmin  = "Admin"
)

// User is an account row. Email is stored trimmed and lowercased so the
// unique index enforces case-insensitive uniqueness. Password holds a bcrypt
// hash, never the raw credential.
type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Surname  string `gorm:"not null" json:"surname"`
	Email    string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:Reader" json:"role"`
	Visible  bool   `gorm:"not null;default:true" json:"visible"`
}
