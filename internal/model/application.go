package model

import "time"

const (
	ApplicationStatusPending   = "Pending"
	ApplicationStatusAccepted  = "Accepted"
	ApplicationStatusRejected  = "Rejected"
	ApplicationStatusWithdrawn = "Withdrawn"
)

// Application records a student applying to a job. A student may apply to
// a given job at most once.
type Application struct {
	ID              uint      `gorm:"primaryKey"`
	StudentID       uint      `gorm:"index;uniqueIndex:uq_applications_student_job"`
	JobID           uint      `gorm:"index;uniqueIndex:uq_applications_student_job"`
	ApplicationDate time.Time `gorm:"index:,sort:desc"`
	CoverLetter     *string   `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);index"`

	Student   Student              `gorm:"foreignKey:StudentID"`
	Job       Job                  `gorm:"foreignKey:JobID"`
	Contract  *Contract            `gorm:"foreignKey:ApplicationID"`
	Histories []ApplicationHistory `gorm:"foreignKey:ApplicationID"`
}

// ApplicationHistory is an append-only status audit row. Nothing inserts
// into it automatically when an application's status changes; rows are
// created only through the explicit create endpoint.
type ApplicationHistory struct {
	ID            uint   `gorm:"primaryKey"`
	ApplicationID uint   `gorm:"index"`
	Status        string `gorm:"type:varchar(50)"`
	ChangedAt     time.Time
	Note          *string `gorm:"type:varchar(500)"`

	Application Application `gorm:"foreignKey:ApplicationID"`
}
