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

func newContractFixture() (*ContractService, *fakeContractRepo, *fakeApplicationRepo) {
	contracts := newFakeContractRepo()
	applications := newFakeApplicationRepo()
	return NewContractService(contracts, applications), contracts, applications
}

func TestContractServiceCreate_StartsActive(t *testing.T) {
	svc, _, applications := newContractFixture()
	application := &model.Application{StudentID: 1, JobID: 1, Status: model.ApplicationStatusAccepted}
	require.NoError(t, applications.Add(context.Background(), application))

	resp, err := svc.Create(context.Background(), &dto.CreateContractRequest{
		ApplicationID: application.ID,
		StartDate:     time.Now(),
		SalaryAgreed:  15,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ContractStatusActive, resp.Status)
	assert.Equal(t, 15.0, resp.SalaryAgreed)
}

func TestContractServiceCreate_OnePerApplication(t *testing.T) {
	svc, _, applications := newContractFixture()
	application := &model.Application{StudentID: 1, JobID: 1, Status: model.ApplicationStatusAccepted}
	require.NoError(t, applications.Add(context.Background(), application))

	_, err := svc.Create(context.Background(), &dto.CreateContractRequest{
		ApplicationID: application.ID,
		StartDate:     time.Now(),
		SalaryAgreed:  15,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &dto.CreateContractRequest{
		ApplicationID: application.ID,
		StartDate:     time.Now(),
		SalaryAgreed:  20,
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeConflict))
	assert.Equal(t, "A contract already exists for this application", apperr.MessageOf(err))
}

func TestContractServiceCreate_UnknownApplication(t *testing.T) {
	svc, _, _ := newContractFixture()

	_, err := svc.Create(context.Background(), &dto.CreateContractRequest{
		ApplicationID: 42,
		StartDate:     time.Now(),
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.Equal(t, "Application not found", apperr.MessageOf(err))
}

func TestContractServiceGet_SumsCompletedPayments(t *testing.T) {
	svc, contracts, _ := newContractFixture()
	contract := &model.Contract{
		ApplicationID: 1,
		StartDate:     time.Now(),
		SalaryAgreed:  15,
		Status:        model.ContractStatusActive,
		Payments: []model.Payment{
			{Amount: 100, Status: model.PaymentStatusCompleted},
			{Amount: 50, Status: model.PaymentStatusCompleted},
			{Amount: 30, Status: model.PaymentStatusPending},
			{Amount: 20, Status: model.PaymentStatusFailed},
		},
	}
	require.NoError(t, contracts.Add(context.Background(), contract))

	resp, err := svc.Get(context.Background(), contract.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, resp.TotalPaid)
	assert.Equal(t, 4, resp.TotalPayments)
}

func TestContractServiceUpdate_PartialFields(t *testing.T) {
	svc, contracts, _ := newContractFixture()
	contract := &model.Contract{
		ApplicationID: 1,
		StartDate:     time.Now(),
		SalaryAgreed:  15,
		Status:        model.ContractStatusActive,
	}
	require.NoError(t, contracts.Add(context.Background(), contract))

	status := model.ContractStatusCompleted
	resp, err := svc.Update(context.Background(), contract.ID, &dto.UpdateContractRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.ContractStatusCompleted, resp.Status)
	// Fields absent from the request keep their value.
	assert.Equal(t, 15.0, resp.SalaryAgreed)
}

func TestContractServiceGetByApplication_NotFound(t *testing.T) {
	svc, _, _ := newContractFixture()

	_, err := svc.GetByApplication(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.Equal(t, "Contract not found for this application", apperr.MessageOf(err))
}

func TestContractServiceListByEmployer(t *testing.T) {
	svc, contracts, _ := newContractFixture()
	mine := &model.Contract{
		ApplicationID: 1,
		Status:        model.ContractStatusActive,
		Application:   model.Application{JobID: 1, Job: model.Job{EmployerID: 7}},
	}
	other := &model.Contract{
		ApplicationID: 2,
		Status:        model.ContractStatusActive,
		Application:   model.Application{JobID: 2, Job: model.Job{EmployerID: 8}},
	}
	require.NoError(t, contracts.Add(context.Background(), mine))
	require.NoError(t, contracts.Add(context.Background(), other))

	list, err := svc.ListByEmployer(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ContractID)
}
