package model

import "time"

const (
	ContractStatusActive     = "Active"
	ContractStatusCompleted  = "Completed"
	ContractStatusTerminated = "Terminated"
)

const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
	PaymentStatusRefunded  = "Refunded"
)

// Contract formalizes an accepted application. At most one contract may
// exist per application.
type Contract struct {
	ID            uint      `gorm:"primaryKey"`
	ApplicationID uint      `gorm:"uniqueIndex"`
	StartDate     time.Time `gorm:"type:date"`
	EndDate       *time.Time `gorm:"type:date"`
	SalaryAgreed  float64
	ContractFile  *string `gorm:"type:varchar(256)"`
	Status        string  `gorm:"type:varchar(20);index"`
	CreatedAt     time.Time

	Application Application `gorm:"foreignKey:ApplicationID"`
	Payments    []Payment   `gorm:"foreignKey:ContractID"`
}

// Payment records money movement against a contract. No payment processing
// happens here; rows are bookkeeping only.
type Payment struct {
	ID            uint `gorm:"primaryKey"`
	ContractID    uint `gorm:"index"`
	Amount        float64
	PaymentDate   time.Time `gorm:"index:,sort:desc"`
	PaymentMethod *string   `gorm:"type:varchar(50)"`
	Status        string    `gorm:"type:varchar(20);index"`
	Description   *string   `gorm:"type:varchar(250)"`

	Contract Contract `gorm:"foreignKey:ContractID"`
}
