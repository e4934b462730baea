package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('student','admin');default:'student'" json:"role"`
	Points   int      `gorm:"default:0" json:"points"` // cumulative exercise/mini-test points
	Level    int      `gorm:"default:1" json:"level"`  // derived from Points, denormalized for ranking queries
	Disabled bool     `gorm:"default:false" json:"disabled"`

	// Login continuity. LastLoginDate is nil until the first successful login.
	Streak        int        `gorm:"default:0" json:"streak"`
	LongestStreak int        `gorm:"default:0" json:"longestStreak"`
	LastLoginDate *time.Time `json:"lastLoginDate"`

	LastSeen time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
