package types

import (
	"time"
)

// User backs the optional caller identity. Session handling lives behind the
// auth middleware; this table only resolves submitter names and ownership.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OpenID       string    `gorm:"uniqueIndex;not null;column:open_id" json:"open_id"`
	Name         string    `gorm:"column:name" json:"name"`
	Email        string    `gorm:"column:email" json:"email"`
	Role         string    `gorm:"column:role;not null;default:user" json:"role"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
	LastSignedIn time.Time `gorm:"column:last_signed_in" json:"last_signed_in"`
}

func (User) TableName() string {
	return "user"
}
