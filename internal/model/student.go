package model

// Student is the profile for a user with the Student role. Its primary key
// is the owning user's id, not an independent sequence.
type Student struct {
	ID          uint   `gorm:"primaryKey;autoIncrement:false"`
	FullName    string `gorm:"type:varchar(100)"`
	PhoneNumber *string `gorm:"type:varchar(20)"`
	Major       *string `gorm:"type:varchar(100)"`
	YearOfStudy *int
	CVFile      *string `gorm:"type:varchar(256)"`

	User         User          `gorm:"foreignKey:ID"`
	Applications []Application `gorm:"foreignKey:StudentID"`
}
