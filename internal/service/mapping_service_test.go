package service

import (
	"context"
	"testing"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/excel"
	"bnihub.com/chaptertracker/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMappingRepo struct {
	templates []*model.ColumnMappingTemplate
}

func (r *fakeMappingRepo) Create(_ context.Context, template *model.ColumnMappingTemplate) error {
	template.ID = uuid.New()
	r.templates = append(r.templates, template)
	return nil
}

func (r *fakeMappingRepo) Update(_ context.Context, template *model.ColumnMappingTemplate) error {
	for i, t := range r.templates {
		if t.ID == template.ID {
			r.templates[i] = template
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeMappingRepo) FindByNameAndType(_ context.Context, name, uploadType string) (*model.ColumnMappingTemplate, error) {
	for _, t := range r.templates {
		if t.Name == name && t.UploadType == uploadType {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMappingRepo) FindByType(_ context.Context, uploadType string) ([]*model.ColumnMappingTemplate, error) {
	var result []*model.ColumnMappingTemplate
	for _, t := range r.templates {
		if t.UploadType == uploadType {
			result = append(result, t)
		}
	}
	return result, nil
}

func (r *fakeMappingRepo) FindDefault(_ context.Context, uploadType string) (*model.ColumnMappingTemplate, error) {
	for _, t := range r.templates {
		if t.UploadType == uploadType && t.IsDefault {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMappingRepo) ClearDefaults(_ context.Context, uploadType string) error {
	for _, t := range r.templates {
		if t.UploadType == uploadType {
			t.IsDefault = false
		}
	}
	return nil
}

func TestSaveTemplate_AtMostOneDefaultPerType(t *testing.T) {
	repo := &fakeMappingRepo{}
	svc := NewMappingService(repo)
	ctx := context.Background()

	first, err := svc.SaveTemplate(ctx, dto.SaveMappingRequest{
		Name:      "standard",
		Mapping:   map[string]string{excel.FieldMemberName: "名称"},
		IsDefault: true,
	})
	require.NoError(t, err)
	require.True(t, first.IsDefault)
	require.Equal(t, model.UploadTypeWeekly, first.UploadType)

	second, err := svc.SaveTemplate(ctx, dto.SaveMappingRequest{
		Name:      "alternate",
		Mapping:   map[string]string{excel.FieldMemberName: "Name"},
		IsDefault: true,
	})
	require.NoError(t, err)
	require.True(t, second.IsDefault)

	defaults := 0
	for _, tpl := range repo.templates {
		if tpl.IsDefault {
			defaults++
		}
	}
	require.Equal(t, 1, defaults)

	current, err := repo.FindDefault(ctx, model.UploadTypeWeekly)
	require.NoError(t, err)
	require.Equal(t, "alternate", current.Name)
}

func TestSaveTemplate_UpdatesExistingByNameAndType(t *testing.T) {
	repo := &fakeMappingRepo{}
	svc := NewMappingService(repo)
	ctx := context.Background()

	_, err := svc.SaveTemplate(ctx, dto.SaveMappingRequest{
		Name:    "standard",
		Mapping: map[string]string{excel.FieldMemberName: "名称"},
	})
	require.NoError(t, err)

	updated, err := svc.SaveTemplate(ctx, dto.SaveMappingRequest{
		Name:    "standard",
		Mapping: map[string]string{excel.FieldMemberName: "Member"},
	})
	require.NoError(t, err)

	require.Len(t, repo.templates, 1)
	require.Equal(t, "Member", updated.Mapping[excel.FieldMemberName])
}
