package model

import "time"

// User represents a registered user. PasswordHash holds the bcrypt digest of
// the password submitted at registration; the plaintext is never stored.
type User struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Name         string    `gorm:"column:name" json:"name"`
	Email        string    `gorm:"column:email" json:"email"`
	Age          int       `gorm:"column:age" json:"age"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
