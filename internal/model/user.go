package model

import "time"

// Role names seeded at migration time.
const (
	RoleAdmin    = "Admin"
	RoleStudent  = "Student"
	RoleEmployer = "Employer"
)

// Seeded role ids. Profiles and registration rely on these being stable.
const (
	RoleIDAdmin    uint = 1
	RoleIDStudent  uint = 2
	RoleIDEmployer uint = 3
)

// Role represents a user role stored in the database
type Role struct {
	ID       uint   `gorm:"primaryKey"`
	RoleName string `gorm:"type:varchar(50);uniqueIndex"`
	Users    []User `gorm:"foreignKey:RoleID"`
}

// User represents an account. A user owns at most one Student or Employer
// profile whose primary key equals the user id.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(100);uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255)"`
	RoleID       uint   `gorm:"index"`
	IsActive     bool
	CreatedAt    time.Time

	Role     Role      `gorm:"foreignKey:RoleID"`
	Student  *Student  `gorm:"foreignKey:ID"`
	Employer *Employer `gorm:"foreignKey:ID"`
}
