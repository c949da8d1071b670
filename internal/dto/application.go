package dto

import "time"

type CreateApplicationRequest struct {
	StudentID   uint    `json:"studentId" validate:"required"`
	JobID       uint    `json:"jobId" validate:"required"`
	CoverLetter *string `json:"coverLetter,omitempty" validate:"omitempty,max=2000"`
}

type UpdateApplicationStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=Pending Accepted Rejected Withdrawn"`
	Note   *string `json:"note,omitempty"`
}

type ApplicationResponse struct {
	ApplicationID   uint      `json:"applicationId"`
	StudentID       uint      `json:"studentId"`
	StudentName     string    `json:"studentName"`
	JobID           uint      `json:"jobId"`
	JobTitle        string    `json:"jobTitle"`
	EmployerName    string    `json:"employerName"`
	ApplicationDate time.Time `json:"applicationDate"`
	CoverLetter     *string   `json:"coverLetter,omitempty"`
	Status          string    `json:"status"`
}
