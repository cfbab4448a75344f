package repository

import (
	"context"

	"bnihub.com/chaptertracker/internal/model"
	"gorm.io/gorm"
)

type MappingTemplateRepository interface {
	Create(ctx context.Context, template *model.ColumnMappingTemplate) error
	Update(ctx context.Context, template *model.ColumnMappingTemplate) error
	FindByNameAndType(ctx context.Context, name, uploadType string) (*model.ColumnMappingTemplate, error)
	FindByType(ctx context.Context, uploadType string) ([]*model.ColumnMappingTemplate, error)
	FindDefault(ctx context.Context, uploadType string) (*model.ColumnMappingTemplate, error)
	// ClearDefaults drops the default flag on every template of the given
	// upload type. Callers run this before flagging a new default.
	ClearDefaults(ctx context.Context, uploadType string) error
}

type mappingTemplateRepository struct {
	db *gorm.DB
}

func NewMappingTemplateRepository(db *gorm.DB) MappingTemplateRepository {
	return &mappingTemplateRepository{db: db}
}

func (r *mappingTemplateRepository) Create(ctx context.Context, template *model.ColumnMappingTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *mappingTemplateRepository) Update(ctx context.Context, template *model.ColumnMappingTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *mappingTemplateRepository) FindByNameAndType(ctx context.Context, name, uploadType string) (*model.ColumnMappingTemplate, error) {
	var template model.ColumnMappingTemplate
	err := r.db.WithContext(ctx).
		Where("name = ? AND upload_type = ?", name, uploadType).
		First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *mappingTemplateRepository) FindByType(ctx context.Context, uploadType string) ([]*model.ColumnMappingTemplate, error) {
	var templates []*model.ColumnMappingTemplate
	err := r.db.WithContext(ctx).
		Where("upload_type = ?", uploadType).
		Order("created_at DESC").
		Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *mappingTemplateRepository) FindDefault(ctx context.Context, uploadType string) (*model.ColumnMappingTemplate, error) {
	var template model.ColumnMappingTemplate
	err := r.db.WithContext(ctx).
		Where("upload_type = ? AND is_default = ?", uploadType, true).
		First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *mappingTemplateRepository) ClearDefaults(ctx context.Context, uploadType string) error {
	return r.db.WithContext(ctx).
		Model(&model.ColumnMappingTemplate{}).
		Where("upload_type = ?", uploadType).
		Update("is_default", false).Error
}
