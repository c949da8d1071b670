package service

import (
	"context"
	"strings"
	"time"

	"parttimejobs/internal/model"
)

// In-memory repository fakes backing the service tests. They mirror the
// read semantics of the gorm implementations: missing rows come back as
// (nil, nil), never as an error.

type fakeUserRepo struct {
	seq   uint
	users map[uint]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User)}
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetWithRole(ctx context.Context, id uint) (*model.User, error) {
	u := r.users[id]
	if u == nil {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(ctx, email)
	return u != nil, nil
}

func (r *fakeUserRepo) Add(ctx context.Context, user *model.User) error {
	if user.ID == 0 {
		r.seq++
		user.ID = r.seq
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, user *model.User) error {
	delete(r.users, user.ID)
	return nil
}

type fakeStudentRepo struct {
	users    *fakeUserRepo
	students map[uint]*model.Student
}

func newFakeStudentRepo(users *fakeUserRepo) *fakeStudentRepo {
	return &fakeStudentRepo{users: users, students: make(map[uint]*model.Student)}
}

func (r *fakeStudentRepo) GetAll(ctx context.Context) ([]model.Student, error) {
	out := make([]model.Student, 0, len(r.students))
	for _, st := range r.students {
		out = append(out, *st)
	}
	return out, nil
}

func (r *fakeStudentRepo) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	st := r.students[id]
	if st == nil {
		return nil, nil
	}
	copied := *st
	return &copied, nil
}

func (r *fakeStudentRepo) GetByMajor(ctx context.Context, major string) ([]model.Student, error) {
	var out []model.Student
	for _, st := range r.students {
		if st.Major != nil && strings.EqualFold(*st.Major, major) {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) CreateWithUser(ctx context.Context, user *model.User, student *model.Student) error {
	if err := r.users.Add(ctx, user); err != nil {
		return err
	}
	student.ID = user.ID
	return r.Add(ctx, student)
}

func (r *fakeStudentRepo) Add(ctx context.Context, student *model.Student) error {
	copied := *student
	r.students[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) Update(ctx context.Context, student *model.Student) error {
	copied := *student
	r.students[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) Delete(ctx context.Context, student *model.Student) error {
	delete(r.students, student.ID)
	return nil
}

type fakeEmployerRepo struct {
	users     *fakeUserRepo
	employers map[uint]*model.Employer
}

func newFakeEmployerRepo(users *fakeUserRepo) *fakeEmployerRepo {
	return &fakeEmployerRepo{users: users, employers: make(map[uint]*model.Employer)}
}

func (r *fakeEmployerRepo) GetAll(ctx context.Context) ([]model.Employer, error) {
	out := make([]model.Employer, 0, len(r.employers))
	for _, e := range r.employers {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEmployerRepo) GetByID(ctx context.Context, id uint) (*model.Employer, error) {
	e := r.employers[id]
	if e == nil {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEmployerRepo) GetVerified(ctx context.Context) ([]model.Employer, error) {
	var out []model.Employer
	for _, e := range r.employers {
		if e.IsVerified {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEmployerRepo) CreateWithUser(ctx context.Context, user *model.User, employer *model.Employer) error {
	if err := r.users.Add(ctx, user); err != nil {
		return err
	}
	employer.ID = user.ID
	copied := *employer
	r.employers[employer.ID] = &copied
	return nil
}

func (r *fakeEmployerRepo) Update(ctx context.Context, employer *model.Employer) error {
	copied := *employer
	r.employers[employer.ID] = &copied
	return nil
}

func (r *fakeEmployerRepo) Delete(ctx context.Context, employer *model.Employer) error {
	delete(r.employers, employer.ID)
	return nil
}

type fakeJobCategoryRepo struct {
	seq        uint
	categories map[uint]*model.JobCategory
}

func newFakeJobCategoryRepo() *fakeJobCategoryRepo {
	return &fakeJobCategoryRepo{categories: make(map[uint]*model.JobCategory)}
}

func (r *fakeJobCategoryRepo) GetAll(ctx context.Context) ([]model.JobCategory, error) {
	out := make([]model.JobCategory, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeJobCategoryRepo) GetByID(ctx context.Context, id uint) (*model.JobCategory, error) {
	c := r.categories[id]
	if c == nil {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeJobCategoryRepo) NameExists(ctx context.Context, name string) (bool, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.CategoryName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeJobCategoryRepo) Add(ctx context.Context, category *model.JobCategory) error {
	if category.ID == 0 {
		r.seq++
		category.ID = r.seq
	}
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeJobCategoryRepo) Update(ctx context.Context, category *model.JobCategory) error {
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeJobCategoryRepo) Delete(ctx context.Context, category *model.JobCategory) error {
	delete(r.categories, category.ID)
	return nil
}

type fakeJobRepo struct {
	seq  uint
	jobs map[uint]*model.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uint]*model.Job)}
}

func (r *fakeJobRepo) GetAll(ctx context.Context) ([]model.Job, error) {
	out := make([]model.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id uint) (*model.Job, error) {
	j := r.jobs[id]
	if j == nil {
		return nil, nil
	}
	copied := *j
	return &copied, nil
}

func (r *fakeJobRepo) GetActive(ctx context.Context) ([]model.Job, error) {
	now := time.Now()
	var out []model.Job
	for _, j := range r.jobs {
		if j.Status != model.JobStatusOpen {
			continue
		}
		if j.ExpirationDate != nil && !j.ExpirationDate.After(now) {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) GetByEmployer(ctx context.Context, employerID uint) ([]model.Job, error) {
	var out []model.Job
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) GetByCategory(ctx context.Context, categoryID uint) ([]model.Job, error) {
	var out []model.Job
	for _, j := range r.jobs {
		if j.CategoryID != nil && *j.CategoryID == categoryID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Add(ctx context.Context, job *model.Job) error {
	if job.ID == 0 {
		r.seq++
		job.ID = r.seq
	}
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) Update(ctx context.Context, job *model.Job) error {
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, job *model.Job) error {
	delete(r.jobs, job.ID)
	return nil
}

type fakeApplicationRepo struct {
	seq          uint
	applications map[uint]*model.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[uint]*model.Application)}
}

func (r *fakeApplicationRepo) GetAll(ctx context.Context) ([]model.Application, error) {
	out := make([]model.Application, 0, len(r.applications))
	for _, a := range r.applications {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id uint) (*model.Application, error) {
	a := r.applications[id]
	if a == nil {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeApplicationRepo) GetByStudent(ctx context.Context, studentID uint) ([]model.Application, error) {
	var out []model.Application
	for _, a := range r.applications {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) GetByJob(ctx context.Context, jobID uint) ([]model.Application, error) {
	var out []model.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) HasStudentApplied(ctx context.Context, studentID, jobID uint) (bool, error) {
	for _, a := range r.applications {
		if a.StudentID == studentID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) CountByJob(ctx context.Context, jobID uint) (int64, error) {
	var count int64
	for _, a := range r.applications {
		if a.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) Add(ctx context.Context, application *model.Application) error {
	if application.ID == 0 {
		r.seq++
		application.ID = r.seq
	}
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, application *model.Application) error {
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, application *model.Application) error {
	delete(r.applications, application.ID)
	return nil
}

type fakeApplicationHistoryRepo struct {
	seq       uint
	histories map[uint]*model.ApplicationHistory
}

func newFakeApplicationHistoryRepo() *fakeApplicationHistoryRepo {
	return &fakeApplicationHistoryRepo{histories: make(map[uint]*model.ApplicationHistory)}
}

func (r *fakeApplicationHistoryRepo) GetByID(ctx context.Context, id uint) (*model.ApplicationHistory, error) {
	h := r.histories[id]
	if h == nil {
		return nil, nil
	}
	copied := *h
	return &copied, nil
}

func (r *fakeApplicationHistoryRepo) GetByApplication(ctx context.Context, applicationID uint) ([]model.ApplicationHistory, error) {
	var out []model.ApplicationHistory
	for _, h := range r.histories {
		if h.ApplicationID == applicationID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *fakeApplicationHistoryRepo) Add(ctx context.Context, history *model.ApplicationHistory) error {
	if history.ID == 0 {
		r.seq++
		history.ID = r.seq
	}
	copied := *history
	r.histories[history.ID] = &copied
	return nil
}

type fakeContractRepo struct {
	seq       uint
	contracts map[uint]*model.Contract
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: make(map[uint]*model.Contract)}
}

func (r *fakeContractRepo) GetAll(ctx context.Context) ([]model.Contract, error) {
	out := make([]model.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeContractRepo) GetByID(ctx context.Context, id uint) (*model.Contract, error) {
	c := r.contracts[id]
	if c == nil {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *fakeContractRepo) GetByApplicationID(ctx context.Context, applicationID uint) (*model.Contract, error) {
	for _, c := range r.contracts {
		if c.ApplicationID == applicationID {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeContractRepo) GetActive(ctx context.Context) ([]model.Contract, error) {
	var out []model.Contract
	for _, c := range r.contracts {
		if c.Status == model.ContractStatusActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) GetByStudent(ctx context.Context, studentID uint) ([]model.Contract, error) {
	var out []model.Contract
	for _, c := range r.contracts {
		if c.Application.StudentID == studentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) GetByEmployer(ctx context.Context, employerID uint) ([]model.Contract, error) {
	var out []model.Contract
	for _, c := range r.contracts {
		if c.Application.Job.EmployerID == employerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeContractRepo) HasContractForApplication(ctx context.Context, applicationID uint) (bool, error) {
	c, _ := r.GetByApplicationID(ctx, applicationID)
	return c != nil, nil
}

func (r *fakeContractRepo) Add(ctx context.Context, contract *model.Contract) error {
	if contract.ID == 0 {
		r.seq++
		contract.ID = r.seq
	}
	copied := *contract
	r.contracts[contract.ID] = &copied
	return nil
}

func (r *fakeContractRepo) Update(ctx context.Context, contract *model.Contract) error {
	copied := *contract
	r.contracts[contract.ID] = &copied
	return nil
}

func (r *fakeContractRepo) Delete(ctx context.Context, contract *model.Contract) error {
	delete(r.contracts, contract.ID)
	return nil
}

type fakePaymentRepo struct {
	seq      uint
	payments map[uint]*model.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uint]*model.Payment)}
}

func (r *fakePaymentRepo) GetAll(ctx context.Context) ([]model.Payment, error) {
	out := make([]model.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id uint) (*model.Payment, error) {
	p := r.payments[id]
	if p == nil {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) GetByContract(ctx context.Context, contractID uint) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range r.payments {
		if p.ContractID == contractID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) GetByStudent(ctx context.Context, studentID uint) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range r.payments {
		if p.Contract.Application.StudentID == studentID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) GetByStatus(ctx context.Context, status string) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range r.payments {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Add(ctx context.Context, payment *model.Payment) error {
	if payment.ID == 0 {
		r.seq++
		payment.ID = r.seq
	}
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, payment *model.Payment) error {
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, payment *model.Payment) error {
	delete(r.payments, payment.ID)
	return nil
}
