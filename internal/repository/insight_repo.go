package repository

import (
	"context"

	"bnihub.com/chaptertracker/internal/model"
	"gorm.io/gorm"
)

type InsightRepository interface {
	// DeleteAll wipes the whole insight set; generation is full-replace.
	DeleteAll(ctx context.Context) error
	CreateBatch(ctx context.Context, insights []*model.Insight) error
	FindRecent(ctx context.Context, limit int) ([]*model.Insight, error)
}

type insightRepository struct {
	db *gorm.DB
}

func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Insight{}).Error
}

func (r *insightRepository) CreateBatch(ctx context.Context, insights []*model.Insight) error {
	if len(insights) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&insights).Error
}

func (r *insightRepository) FindRecent(ctx context.Context, limit int) ([]*model.Insight, error) {
	var insights []*model.Insight
	err := r.db.WithContext(ctx).
		Preload("Member").
		Order("created_at DESC").
		Limit(limit).
		Find(&insights).Error
	if err != nil {
		return nil, err
	}
	return insights, nil
}
