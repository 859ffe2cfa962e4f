package models

import (
	"strings"
	"time"
)

// User is a client account. Staff live in Employee.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	LastName string `gorm:"size:100" json:"lastName"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.LastName)
}
