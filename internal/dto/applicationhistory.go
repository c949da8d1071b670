package dto

import "time"

type CreateApplicationHistoryRequest struct {
	ApplicationID uint    `json:"applicationId" validate:"required"`
	Status        string  `json:"status" validate:"required,max=50"`
	Note          *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

type ApplicationHistoryResponse struct {
	HistoryID     uint      `json:"historyId"`
	ApplicationID uint      `json:"applicationId"`
	StudentName   string    `json:"studentName"`
	JobTitle      string    `json:"jobTitle"`
	Status        string    `json:"status"`
	ChangedAt     time.Time `json:"changedAt"`
	Note          *string   `json:"note,omitempty"`
}
