package service

import (
	"context"
	"errors"
	"fmt"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/model"
	"bnihub.com/chaptertracker/internal/repository"
	"bnihub.com/chaptertracker/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TermService interface {
	CreateTerm(ctx context.Context, req dto.CreateTermRequest) (*model.Term, error)
	UpdateTerm(ctx context.Context, id uuid.UUID, req dto.UpdateTermRequest) (*model.Term, error)
	DeleteTerm(ctx context.Context, id uuid.UUID) error
	GetAllTerms(ctx context.Context) ([]*model.Term, error)
}

type termService struct {
	repo repository.TermRepository
}

func NewTermService(repo repository.TermRepository) TermService {
	return &termService{repo: repo}
}

func (s *termService) CreateTerm(ctx context.Context, req dto.CreateTermRequest) (*model.Term, error) {
	startDate, err := parseSheetDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %q", apperror.ErrBadRequest, req.StartDate)
	}
	endDate, err := parseSheetDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %q", apperror.ErrBadRequest, req.EndDate)
	}
	meetingDate, err := parseSheetDate(req.MeetingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid meeting date %q", apperror.ErrBadRequest, req.MeetingDate)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date before start date", apperror.ErrBadRequest)
	}

	hasMeeting := true
	if req.HasMeeting != nil {
		hasMeeting = *req.HasMeeting
	}

	term := &model.Term{
		Name:        req.Name,
		StartDate:   startDate,
		EndDate:     endDate,
		WeekNumber:  req.WeekNumber,
		MeetingDate: meetingDate,
		HasMeeting:  hasMeeting,
		Remarks:     req.Remarks,
	}
	if err := s.repo.Create(ctx, term); err != nil {
		return nil, err
	}
	return term, nil
}

func (s *termService) UpdateTerm(ctx context.Context, id uuid.UUID, req dto.UpdateTermRequest) (*model.Term, error) {
	term, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		term.Name = *req.Name
	}
	if req.StartDate != nil {
		startDate, err := parseSheetDate(*req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date %q", apperror.ErrBadRequest, *req.StartDate)
		}
		term.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseSheetDate(*req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date %q", apperror.ErrBadRequest, *req.EndDate)
		}
		term.EndDate = endDate
	}
	if req.WeekNumber != nil {
		term.WeekNumber = *req.WeekNumber
	}
	if req.MeetingDate != nil {
		meetingDate, err := parseSheetDate(*req.MeetingDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid meeting date %q", apperror.ErrBadRequest, *req.MeetingDate)
		}
		term.MeetingDate = meetingDate
	}
	if req.HasMeeting != nil {
		term.HasMeeting = *req.HasMeeting
	}
	if req.Remarks != nil {
		term.Remarks = req.Remarks
	}
	if term.EndDate.Before(term.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", apperror.ErrBadRequest)
	}

	if err := s.repo.Update(ctx, term); err != nil {
		return nil, err
	}
	return term, nil
}

func (s *termService) DeleteTerm(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *termService) GetAllTerms(ctx context.Context) ([]*model.Term, error) {
	return s.repo.FindAll(ctx)
}
