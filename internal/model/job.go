package model

import "time"

// Job statuses are free text by convention; the DTO layer restricts writes
// to this set but no transition graph is enforced.
const (
	JobStatusOpen    = "Open"
	JobStatusClosed  = "Closed"
	JobStatusPending = "Pending"
)

// JobCategory groups jobs under a unique name
type JobCategory struct {
	ID           uint   `gorm:"primaryKey"`
	CategoryName string `gorm:"type:varchar(100);uniqueIndex"`
	Jobs         []Job  `gorm:"foreignKey:CategoryID"`
}

// Job is a part-time job posting owned by an employer
type Job struct {
	ID             uint   `gorm:"primaryKey"`
	EmployerID     uint   `gorm:"index"`
	Title          string `gorm:"type:varchar(200)"`
	Description    string `gorm:"type:text"`
	Salary         *float64
	Location       *string `gorm:"type:varchar(200)"`
	CategoryID     *uint   `gorm:"index"`
	PostedDate     time.Time `gorm:"index:,sort:desc"`
	ExpirationDate *time.Time
	Status         string `gorm:"type:varchar(20);index"`

	Employer     Employer      `gorm:"foreignKey:EmployerID"`
	Category     *JobCategory  `gorm:"foreignKey:CategoryID"`
	Applications []Application `gorm:"foreignKey:JobID"`
}
