package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin" // restaurant owner
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"password,omitempty" gorm:"not null"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location,omitempty"`
	Role      UserRole  `json:"role" gorm:"not null;default:'customer'"`
	Favorites []string  `json:"favorites" gorm:"serializer:json"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns a copy safe to put on the wire
func (u User) Public() User {
	u.Password = ""
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
	return u
}
