package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

func newJobFixture() (*JobService, *fakeJobRepo, *fakeEmployerRepo, *fakeJobCategoryRepo, *fakeApplicationRepo) {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	employers := newFakeEmployerRepo(users)
	categories := newFakeJobCategoryRepo()
	applications := newFakeApplicationRepo()
	return NewJobService(jobs, employers, categories, applications), jobs, employers, categories, applications
}

func seedEmployer(t *testing.T, employers *fakeEmployerRepo, company string) *model.Employer {
	t.Helper()
	user := &model.User{Email: company + "@example.com", RoleID: model.RoleIDEmployer, IsActive: true}
	employer := &model.Employer{CompanyName: company}
	require.NoError(t, employers.CreateWithUser(context.Background(), user, employer))
	return employer
}

func TestJobServiceCreate_StartsOpen(t *testing.T) {
	svc, _, employers, categories, _ := newJobFixture()
	employer := seedEmployer(t, employers, "Acme")
	category := &model.JobCategory{CategoryName: "Retail"}
	require.NoError(t, categories.Add(context.Background(), category))

	salary := 12.5
	resp, err := svc.Create(context.Background(), &dto.CreateJobRequest{
		EmployerID:  employer.ID,
		Title:       "Cashier",
		Description: "Weekend shifts",
		Salary:      &salary,
		CategoryID:  &category.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusOpen, resp.Status)
	assert.False(t, resp.PostedDate.IsZero())
	assert.Equal(t, "Cashier", resp.Title)
}

func TestJobServiceCreate_UnknownEmployer(t *testing.T) {
	svc, _, _, _, _ := newJobFixture()

	_, err := svc.Create(context.Background(), &dto.CreateJobRequest{
		EmployerID:  42,
		Title:       "Cashier",
		Description: "Weekend shifts",
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.Equal(t, "Employer not found", apperr.MessageOf(err))
}

func TestJobServiceCreate_UnknownCategory(t *testing.T) {
	svc, _, employers, _, _ := newJobFixture()
	employer := seedEmployer(t, employers, "Acme")

	badCategory := uint(99)
	_, err := svc.Create(context.Background(), &dto.CreateJobRequest{
		EmployerID:  employer.ID,
		Title:       "Cashier",
		Description: "Weekend shifts",
		CategoryID:  &badCategory,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.Equal(t, "Job category not found", apperr.MessageOf(err))
}

func TestJobServiceListActive_SkipsClosedAndExpired(t *testing.T) {
	svc, jobs, _, _, _ := newJobFixture()
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	require.NoError(t, jobs.Add(context.Background(), &model.Job{Title: "open", Status: model.JobStatusOpen}))
	require.NoError(t, jobs.Add(context.Background(), &model.Job{Title: "open future", Status: model.JobStatusOpen, ExpirationDate: &future}))
	require.NoError(t, jobs.Add(context.Background(), &model.Job{Title: "expired", Status: model.JobStatusOpen, ExpirationDate: &past}))
	require.NoError(t, jobs.Add(context.Background(), &model.Job{Title: "closed", Status: model.JobStatusClosed}))

	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, job := range active {
		assert.Equal(t, model.JobStatusOpen, job.Status)
		assert.NotEqual(t, "expired", job.Title)
	}
}

func TestJobServiceUpdate_ChangesStatus(t *testing.T) {
	svc, jobs, _, _, _ := newJobFixture()
	job := &model.Job{Title: "Cashier", Description: "d", Status: model.JobStatusOpen}
	require.NoError(t, jobs.Add(context.Background(), job))

	resp, err := svc.Update(context.Background(), job.ID, &dto.UpdateJobRequest{
		Title:       "Cashier",
		Description: "d",
		Status:      model.JobStatusClosed,
	})
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusClosed, resp.Status)
}

func TestJobServiceDelete_RefusesWithApplications(t *testing.T) {
	svc, jobs, _, _, applications := newJobFixture()
	job := &model.Job{Title: "Cashier", Status: model.JobStatusOpen}
	require.NoError(t, jobs.Add(context.Background(), job))
	require.NoError(t, applications.Add(context.Background(), &model.Application{JobID: job.ID, StudentID: 1}))
	require.NoError(t, applications.Add(context.Background(), &model.Application{JobID: job.ID, StudentID: 2}))

	err := svc.Delete(context.Background(), job.ID)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
	assert.Equal(t, "Cannot delete job. There are 2 application(s) associated with this job.", apperr.MessageOf(err))

	// Still there.
	remaining, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}

func TestJobServiceDelete_WithoutApplications(t *testing.T) {
	svc, jobs, _, _, _ := newJobFixture()
	job := &model.Job{Title: "Cashier", Status: model.JobStatusOpen}
	require.NoError(t, jobs.Add(context.Background(), job))

	require.NoError(t, svc.Delete(context.Background(), job.ID))

	remaining, err := jobs.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Nil(t, remaining)
}
