package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Account roles.
const (
	RoleOperator = "operator"
	RoleUser     = "user"
)

// User is an application account. Operators may manage the shared ledger and
// the warga registry; plain users only see their own transactions.
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Password string `gorm:"type:varchar(100);not null" json:"-"`
	Role     string `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// BeforeSave is a GORM hook run before inserting or updating a record.
func (u *User) BeforeSave(tx *gorm.DB) error {
	// bcrypt hashes are 60 bytes; shorter values are treated as plaintext.
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}
