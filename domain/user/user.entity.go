package user

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UUID         string `gorm:"index"`
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string
	// Subject claim of OpenID-federated accounts, empty for native ones
	Sub string `gorm:"index"`
}

type UserOut struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type CredentialsIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
