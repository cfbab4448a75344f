package service

import (
	"context"
	"errors"
	"fmt"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/isoweek"
	"bnihub.com/chaptertracker/internal/model"
	"bnihub.com/chaptertracker/internal/repository"
	"bnihub.com/chaptertracker/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ActivityService interface {
	CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*model.Activity, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, req dto.UpdateActivityRequest) (*model.Activity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	GetActivity(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	ListActivities(ctx context.Context, filter dto.ActivityListFilter) ([]*model.Activity, error)
}

type activityService struct {
	repo       repository.ActivityRepository
	memberRepo repository.MemberRepository
	reports    ReportService
}

func NewActivityService(repo repository.ActivityRepository, memberRepo repository.MemberRepository, reports ReportService) ActivityService {
	return &activityService{repo: repo, memberRepo: memberRepo, reports: reports}
}

func (s *activityService) CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*model.Activity, error) {
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid member id", apperror.ErrBadRequest)
	}

	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: member not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	activityDate, err := parseSheetDate(req.ActivityDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid activity date %q", apperror.ErrBadRequest, req.ActivityDate)
	}
	year, weekNumber := isoweek.Of(activityDate)

	tyfcb := decimal.Zero
	if req.TYFCB != nil {
		tyfcb = *req.TYFCB
	}

	uploadedBy := req.UploadedBy
	if uploadedBy == "" {
		uploadedBy = "admin"
	}

	activity := &model.Activity{
		MemberID:           member.ID,
		PhoneID:            member.PhoneID,
		MemberName:         member.Name,
		Identity:           req.Identity,
		ActivityDate:       activityDate,
		WeekNumber:         weekNumber,
		Year:               year,
		Attendance:         req.Attendance,
		ProvideInsideRef:   req.ProvideInsideRef,
		ProvideOutsideRef:  req.ProvideOutsideRef,
		ReceivedInsideRef:  req.ReceivedInsideRef,
		ReceivedOutsideRef: req.ReceivedOutsideRef,
		Visitors:           req.Visitors,
		OneToOneVisit:      req.OneToOneVisit,
		TYFCB:              tyfcb,
		CEU:                req.CEU,
		UploadedBy:         uploadedBy,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	if _, err := s.reports.RebuildWeeklyReport(ctx, weekNumber, year); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) UpdateActivity(ctx context.Context, id uuid.UUID, req dto.UpdateActivityRequest) (*model.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	if req.ActivityDate != nil {
		activityDate, err := parseSheetDate(*req.ActivityDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid activity date %q", apperror.ErrBadRequest, *req.ActivityDate)
		}
		activity.ActivityDate = activityDate
		activity.Year, activity.WeekNumber = isoweek.Of(activityDate)
	}
	if req.Identity != nil {
		activity.Identity = req.Identity
	}
	if req.Attendance != nil {
		activity.Attendance = *req.Attendance
	}
	if req.ProvideInsideRef != nil {
		activity.ProvideInsideRef = *req.ProvideInsideRef
	}
	if req.ProvideOutsideRef != nil {
		activity.ProvideOutsideRef = *req.ProvideOutsideRef
	}
	if req.ReceivedInsideRef != nil {
		activity.ReceivedInsideRef = *req.ReceivedInsideRef
	}
	if req.ReceivedOutsideRef != nil {
		activity.ReceivedOutsideRef = *req.ReceivedOutsideRef
	}
	if req.Visitors != nil {
		activity.Visitors = *req.Visitors
	}
	if req.OneToOneVisit != nil {
		activity.OneToOneVisit = *req.OneToOneVisit
	}
	if req.TYFCB != nil {
		activity.TYFCB = *req.TYFCB
	}
	if req.CEU != nil {
		activity.CEU = *req.CEU
	}

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}

	if _, err := s.reports.RebuildWeeklyReport(ctx, activity.WeekNumber, activity.Year); err != nil {
		return nil, err
	}
	return activity, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_, err = s.reports.RebuildWeeklyReport(ctx, activity.WeekNumber, activity.Year)
	return err
}

func (s *activityService) GetActivity(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (s *activityService) ListActivities(ctx context.Context, filter dto.ActivityListFilter) ([]*model.Activity, error) {
	repoFilter := repository.ActivityFilter{
		WeekNumber: filter.WeekNumber,
		Year:       filter.Year,
	}
	if filter.MemberID != "" {
		memberID, err := uuid.Parse(filter.MemberID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid member id", apperror.ErrBadRequest)
		}
		repoFilter.MemberID = &memberID
	}
	if filter.PhoneID != "" {
		repoFilter.PhoneID = &filter.PhoneID
	}
	return s.repo.FindAll(ctx, repoFilter)
}
