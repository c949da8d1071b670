package dto

import "time"

type CreateJobRequest struct {
	EmployerID     uint       `json:"employerId" validate:"required"`
	Title          string     `json:"title" validate:"required,max=200"`
	Description    string     `json:"description" validate:"required"`
	Salary         *float64   `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Location       *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	CategoryID     *uint      `json:"categoryId,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

type UpdateJobRequest struct {
	Title          string     `json:"title" validate:"required,max=200"`
	Description    string     `json:"description" validate:"required"`
	Salary         *float64   `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Location       *string    `json:"location,omitempty" validate:"omitempty,max=200"`
	CategoryID     *uint      `json:"categoryId,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
	Status         string     `json:"status" validate:"required,oneof=Open Closed Pending"`
}

type JobResponse struct {
	JobID             uint       `json:"jobId"`
	EmployerID        uint       `json:"employerId"`
	EmployerName      string     `json:"employerName"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Salary            *float64   `json:"salary,omitempty"`
	Location          *string    `json:"location,omitempty"`
	CategoryID        *uint      `json:"categoryId,omitempty"`
	CategoryName      string     `json:"categoryName,omitempty"`
	PostedDate        time.Time  `json:"postedDate"`
	ExpirationDate    *time.Time `json:"expirationDate,omitempty"`
	Status            string     `json:"status"`
	TotalApplications int        `json:"totalApplications"`
}
