package model

// Employer is the profile for a user with the Employer role, keyed by the
// owning user's id.
type Employer struct {
	ID          uint   `gorm:"primaryKey;autoIncrement:false"`
	CompanyName string `gorm:"type:varchar(200)"`
	ContactName *string `gorm:"type:varchar(100)"`
	PhoneNumber *string `gorm:"type:varchar(20)"`
	Address     *string `gorm:"type:varchar(500)"`
	TaxCode     *string `gorm:"type:varchar(50)"`
	IsVerified  bool    `gorm:"index"`

	User User  `gorm:"foreignKey:ID"`
	Jobs []Job `gorm:"foreignKey:EmployerID"`
}
