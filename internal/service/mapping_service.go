package service

import (
	"context"
	"errors"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/model"
	"bnihub.com/chaptertracker/internal/repository"
	"gorm.io/gorm"
)

type MappingService interface {
	// SaveTemplate creates or updates the named template. When the request
	// flags it default, every other template of the same upload type loses
	// its flag first, so at most one default survives per type.
	SaveTemplate(ctx context.Context, req dto.SaveMappingRequest) (*model.ColumnMappingTemplate, error)
	ListTemplates(ctx context.Context, uploadType string) ([]*model.ColumnMappingTemplate, error)
}

type mappingService struct {
	repo repository.MappingTemplateRepository
}

func NewMappingService(repo repository.MappingTemplateRepository) MappingService {
	return &mappingService{repo: repo}
}

func (s *mappingService) SaveTemplate(ctx context.Context, req dto.SaveMappingRequest) (*model.ColumnMappingTemplate, error) {
	uploadType := req.UploadType
	if uploadType == "" {
		uploadType = model.UploadTypeWeekly
	}

	if req.IsDefault {
		if err := s.repo.ClearDefaults(ctx, uploadType); err != nil {
			return nil, err
		}
	}

	existing, err := s.repo.FindByNameAndType(ctx, req.Name, uploadType)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		template := &model.ColumnMappingTemplate{
			Name:       req.Name,
			UploadType: uploadType,
			Mapping:    req.Mapping,
			IsDefault:  req.IsDefault,
		}
		if err := s.repo.Create(ctx, template); err != nil {
			return nil, err
		}
		return template, nil
	}

	existing.Mapping = req.Mapping
	existing.IsDefault = req.IsDefault
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *mappingService) ListTemplates(ctx context.Context, uploadType string) ([]*model.ColumnMappingTemplate, error) {
	if uploadType == "" {
		uploadType = model.UploadTypeWeekly
	}
	return s.repo.FindByType(ctx, uploadType)
}
