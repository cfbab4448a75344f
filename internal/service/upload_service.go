package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/excel"
	"bnihub.com/chaptertracker/internal/isoweek"
	"bnihub.com/chaptertracker/internal/model"
	"bnihub.com/chaptertracker/internal/repository"
	"bnihub.com/chaptertracker/pkg/apperror"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const activityDateLayout = "20060102"

// WeeklyUploadInput carries the upload form fields. MappingJSON is the
// optional user-supplied field → column table; when empty the saved default
// template for the upload type is used, then the built-in column table.
type WeeklyUploadInput struct {
	ActivityDate string
	UploadedBy   string
	MappingJSON  string
}

type UploadService interface {
	// ParsePreview returns the detected headers and up to five sample rows
	// for the mapping dialog. Nothing is persisted.
	ParsePreview(ctx context.Context, file io.Reader) (*dto.ParsePreviewResponse, error)
	UploadWeekly(ctx context.Context, file io.Reader, input WeeklyUploadInput) (*dto.WeeklyUploadResult, error)
}

type uploadService struct {
	memberRepo   repository.MemberRepository
	activityRepo repository.ActivityRepository
	mappingRepo  repository.MappingTemplateRepository
	reports      ReportService
}

func NewUploadService(
	memberRepo repository.MemberRepository,
	activityRepo repository.ActivityRepository,
	mappingRepo repository.MappingTemplateRepository,
	reports ReportService,
) UploadService {
	return &uploadService{
		memberRepo:   memberRepo,
		activityRepo: activityRepo,
		mappingRepo:  mappingRepo,
		reports:      reports,
	}
}

func (s *uploadService) ParsePreview(ctx context.Context, file io.Reader) (*dto.ParsePreviewResponse, error) {
	sheet, err := excel.Parse(file)
	if err != nil {
		if errors.Is(err, excel.ErrEmptySheet) {
			return nil, fmt.Errorf("%w: %s", apperror.ErrBadRequest, err.Error())
		}
		return nil, err
	}

	columns := make([]dto.ExcelColumn, 0, len(sheet.Headers))
	for i, name := range sheet.Headers {
		if name == "" {
			continue
		}
		columns = append(columns, dto.ExcelColumn{Name: name, Index: i})
	}

	sample := sheet.Rows
	if len(sample) > 5 {
		sample = sample[:5]
	}

	return &dto.ParsePreviewResponse{
		Success:    true,
		Columns:    columns,
		SampleData: sample,
		TotalRows:  len(sheet.Rows),
	}, nil
}

func (s *uploadService) UploadWeekly(ctx context.Context, file io.Reader, input WeeklyUploadInput) (*dto.WeeklyUploadResult, error) {
	if input.ActivityDate == "" {
		return nil, fmt.Errorf("%w: activity date is required (YYYYMMDD format)", apperror.ErrBadRequest)
	}
	activityDate, err := time.ParseInLocation(activityDateLayout, input.ActivityDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid activity date %q, expected YYYYMMDD", apperror.ErrBadRequest, input.ActivityDate)
	}
	if input.UploadedBy == "" {
		input.UploadedBy = "admin"
	}

	year, weekNumber := isoweek.Of(activityDate)

	mappings, err := s.resolveMapping(ctx, input.MappingJSON)
	if err != nil {
		return nil, err
	}

	sheet, err := excel.Parse(file)
	if err != nil {
		if errors.Is(err, excel.ErrEmptySheet) {
			return nil, fmt.Errorf("%w: %s", apperror.ErrBadRequest, err.Error())
		}
		return nil, err
	}

	members, err := s.memberRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	roster := BuildRoster(members)

	stamp := batchStamp{
		ActivityDate: activityDate,
		WeekNumber:   weekNumber,
		Year:         year,
		UploadedBy:   input.UploadedBy,
	}
	activities, dropped := buildActivityBatch(sheet.Rows, mappings, nil, roster, stamp)

	inserted, err := s.activityRepo.BulkInsertSkipDuplicates(ctx, activities)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"week":     weekNumber,
		"year":     year,
		"rows":     len(sheet.Rows),
		"dropped":  dropped,
		"inserted": inserted,
	}).Info("weekly activity upload processed")

	// Rebuild regardless of how many rows landed, so the summary always
	// reflects the current activity set for the week.
	if _, err := s.reports.RebuildWeeklyReport(ctx, weekNumber, year); err != nil {
		return nil, err
	}

	return &dto.WeeklyUploadResult{
		Success:      true,
		Uploaded:     int(inserted),
		WeekNumber:   weekNumber,
		Year:         year,
		ActivityDate: activityDate,
	}, nil
}

func (s *uploadService) resolveMapping(ctx context.Context, mappingJSON string) ([]excel.ColumnMapping, error) {
	if mappingJSON != "" {
		var template map[string]string
		if err := json.Unmarshal([]byte(mappingJSON), &template); err != nil {
			return nil, fmt.Errorf("%w: mapping must be a JSON object of field to column name", apperror.ErrBadRequest)
		}
		return excel.MappingFromTemplate(template), nil
	}

	saved, err := s.mappingRepo.FindDefault(ctx, model.UploadTypeWeekly)
	if err == nil {
		return excel.MappingFromTemplate(saved.Mapping), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return excel.MappingFromTemplate(excel.DefaultWeeklyColumns), nil
}
