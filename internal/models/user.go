package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account holder. Every transaction belongs to exactly one user.
type User struct {
	DefaultModel
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"` // Never serialized
	Admin        bool
}

// BeforeSave normalizes the identifying fields.
//
// Email addresses are case insensitive in practice, so they are
// stored lowercased to make the unique index authoritative.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return nil
}
