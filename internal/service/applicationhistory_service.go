package service

import (
	"context"
	"time"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

// ApplicationHistoryService manages the manually fed status audit table.
type ApplicationHistoryService struct {
	histories    ApplicationHistoryRepo
	applications ApplicationRepo
}

func NewApplicationHistoryService(histories ApplicationHistoryRepo, applications ApplicationRepo) *ApplicationHistoryService {
	return &ApplicationHistoryService{histories: histories, applications: applications}
}

func (s *ApplicationHistoryService) Get(ctx context.Context, id uint) (*dto.ApplicationHistoryResponse, error) {
	history, err := s.histories.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching application history", err)
	}
	if history == nil {
		return nil, apperr.NotFound("Application history not found")
	}
	resp := toApplicationHistoryResponse(history)
	return &resp, nil
}

func (s *ApplicationHistoryService) ListByApplication(ctx context.Context, applicationID uint) ([]dto.ApplicationHistoryResponse, error) {
	histories, err := s.histories.GetByApplication(ctx, applicationID)
	if err != nil {
		return nil, apperr.Internal("listing application histories", err)
	}
	out := make([]dto.ApplicationHistoryResponse, 0, len(histories))
	for i := range histories {
		out = append(out, toApplicationHistoryResponse(&histories[i]))
	}
	return out, nil
}

func (s *ApplicationHistoryService) Create(ctx context.Context, req *dto.CreateApplicationHistoryRequest) (*dto.ApplicationHistoryResponse, error) {
	application, err := s.applications.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, apperr.Internal("fetching application", err)
	}
	if application == nil {
		return nil, apperr.NotFound("Application not found")
	}

	history := &model.ApplicationHistory{
		ApplicationID: req.ApplicationID,
		Status:        req.Status,
		ChangedAt:     time.Now(),
		Note:          req.Note,
	}
	if err := s.histories.Add(ctx, history); err != nil {
		return nil, apperr.Internal("creating application history", err)
	}

	history.Application = *application
	resp := toApplicationHistoryResponse(history)
	return &resp, nil
}

func toApplicationHistoryResponse(h *model.ApplicationHistory) dto.ApplicationHistoryResponse {
	return dto.ApplicationHistoryResponse{
		HistoryID:     h.ID,
		ApplicationID: h.ApplicationID,
		StudentName:   h.Application.Student.FullName,
		JobTitle:      h.Application.Job.Title,
		Status:        h.Status,
		ChangedAt:     h.ChangedAt,
		Note:          h.Note,
	}
}
