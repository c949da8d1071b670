package dto

import "time"

type CreateStudentRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	FullName    string  `json:"fullName" validate:"required,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	Major       *string `json:"major,omitempty" validate:"omitempty,max=100"`
	YearOfStudy *int    `json:"yearOfStudy,omitempty" validate:"omitempty,gte=1,lte=6"`
	CVFile      *string `json:"cvFile,omitempty" validate:"omitempty,max=256"`
}

// CreateStudentProfileRequest attaches a student profile to an existing user.
type CreateStudentProfileRequest struct {
	UserID      uint    `json:"userId" validate:"required"`
	FullName    string  `json:"fullName" validate:"required,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	Major       *string `json:"major,omitempty" validate:"omitempty,max=100"`
	YearOfStudy *int    `json:"yearOfStudy,omitempty" validate:"omitempty,gte=1,lte=6"`
	CVFile      *string `json:"cvFile,omitempty" validate:"omitempty,max=256"`
}

type UpdateStudentRequest struct {
	FullName    string  `json:"fullName" validate:"required,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	Major       *string `json:"major,omitempty" validate:"omitempty,max=100"`
	YearOfStudy *int    `json:"yearOfStudy,omitempty" validate:"omitempty,gte=1,lte=6"`
	CVFile      *string `json:"cvFile,omitempty" validate:"omitempty,max=256"`
}

type StudentResponse struct {
	StudentID         uint      `json:"studentId"`
	Email             string    `json:"email"`
	FullName          string    `json:"fullName"`
	PhoneNumber       *string   `json:"phoneNumber,omitempty"`
	Major             *string   `json:"major,omitempty"`
	YearOfStudy       *int      `json:"yearOfStudy,omitempty"`
	CVFile            *string   `json:"cvFile,omitempty"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	TotalApplications int       `json:"totalApplications"`
}
