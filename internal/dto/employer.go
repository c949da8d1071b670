package dto

import "time"

type CreateEmployerRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	CompanyName string  `json:"companyName" validate:"required,max=200"`
	ContactName *string `json:"contactName,omitempty" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	TaxCode     *string `json:"taxCode,omitempty" validate:"omitempty,max=50"`
}

type UpdateEmployerRequest struct {
	CompanyName string  `json:"companyName" validate:"required,max=200"`
	ContactName *string `json:"contactName,omitempty" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=20"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	TaxCode     *string `json:"taxCode,omitempty" validate:"omitempty,max=50"`
	IsVerified  bool    `json:"isVerified"`
}

type EmployerResponse struct {
	EmployerID  uint      `json:"employerId"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName"`
	ContactName *string   `json:"contactName,omitempty"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	Address     *string   `json:"address,omitempty"`
	TaxCode     *string   `json:"taxCode,omitempty"`
	IsVerified  bool      `json:"isVerified"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	TotalJobs   int       `json:"totalJobs"`
}
