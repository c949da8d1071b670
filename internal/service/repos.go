package service

import (
	"context"

	"parttimejobs/internal/model"
)

// Repository interfaces consumed by the services. The gorm-backed
// implementations live in internal/repository; tests substitute in-memory
// fakes.

type UserRepo interface {
	GetAll(ctx context.Context) ([]model.User, error)
	GetWithRole(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Add(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, user *model.User) error
}

type RoleRepo interface {
	GetAll(ctx context.Context) ([]model.Role, error)
	GetByID(ctx context.Context, id uint) (*model.Role, error)
	GetByName(ctx context.Context, name string) (*model.Role, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Add(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, role *model.Role) error
}

type StudentRepo interface {
	GetAll(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	GetByMajor(ctx context.Context, major string) ([]model.Student, error)
	CreateWithUser(ctx context.Context, user *model.User, student *model.Student) error
	Add(ctx context.Context, student *model.Student) error
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, student *model.Student) error
}

type EmployerRepo interface {
	GetAll(ctx context.Context) ([]model.Employer, error)
	GetByID(ctx context.Context, id uint) (*model.Employer, error)
	GetVerified(ctx context.Context) ([]model.Employer, error)
	CreateWithUser(ctx context.Context, user *model.User, employer *model.Employer) error
	Update(ctx context.Context, employer *model.Employer) error
	Delete(ctx context.Context, employer *model.Employer) error
}

type JobCategoryRepo interface {
	GetAll(ctx context.Context) ([]model.JobCategory, error)
	GetByID(ctx context.Context, id uint) (*model.JobCategory, error)
	NameExists(ctx context.Context, name string) (bool, error)
	Add(ctx context.Context, category *model.JobCategory) error
	Update(ctx context.Context, category *model.JobCategory) error
	Delete(ctx context.Context, category *model.JobCategory) error
}

type JobRepo interface {
	GetAll(ctx context.Context) ([]model.Job, error)
	GetByID(ctx context.Context, id uint) (*model.Job, error)
	GetActive(ctx context.Context) ([]model.Job, error)
	GetByEmployer(ctx context.Context, employerID uint) ([]model.Job, error)
	GetByCategory(ctx context.Context, categoryID uint) ([]model.Job, error)
	Add(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, job *model.Job) error
}

type ApplicationRepo interface {
	GetAll(ctx context.Context) ([]model.Application, error)
	GetByID(ctx context.Context, id uint) (*model.Application, error)
	GetByStudent(ctx context.Context, studentID uint) ([]model.Application, error)
	GetByJob(ctx context.Context, jobID uint) ([]model.Application, error)
	HasStudentApplied(ctx context.Context, studentID, jobID uint) (bool, error)
	CountByJob(ctx context.Context, jobID uint) (int64, error)
	Add(ctx context.Context, application *model.Application) error
	Update(ctx context.Context, application *model.Application) error
	Delete(ctx context.Context, application *model.Application) error
}

type ApplicationHistoryRepo interface {
	GetByID(ctx context.Context, id uint) (*model.ApplicationHistory, error)
	GetByApplication(ctx context.Context, applicationID uint) ([]model.ApplicationHistory, error)
	Add(ctx context.Context, history *model.ApplicationHistory) error
}

type ContractRepo interface {
	GetAll(ctx context.Context) ([]model.Contract, error)
	GetByID(ctx context.Context, id uint) (*model.Contract, error)
	GetByApplicationID(ctx context.Context, applicationID uint) (*model.Contract, error)
	GetActive(ctx context.Context) ([]model.Contract, error)
	GetByStudent(ctx context.Context, studentID uint) ([]model.Contract, error)
	GetByEmployer(ctx context.Context, employerID uint) ([]model.Contract, error)
	HasContractForApplication(ctx context.Context, applicationID uint) (bool, error)
	Add(ctx context.Context, contract *model.Contract) error
	Update(ctx context.Context, contract *model.Contract) error
	Delete(ctx context.Context, contract *model.Contract) error
}

type PaymentRepo interface {
	GetAll(ctx context.Context) ([]model.Payment, error)
	GetByID(ctx context.Context, id uint) (*model.Payment, error)
	GetByContract(ctx context.Context, contractID uint) ([]model.Payment, error)
	GetByStudent(ctx context.Context, studentID uint) ([]model.Payment, error)
	GetByStatus(ctx context.Context, status string) ([]model.Payment, error)
	Add(ctx context.Context, payment *model.Payment) error
	Update(ctx context.Context, payment *model.Payment) error
	Delete(ctx context.Context, payment *model.Payment) error
}
