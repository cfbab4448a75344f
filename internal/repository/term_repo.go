package repository

import (
	"context"

	"bnihub.com/chaptertracker/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TermRepository interface {
	Create(ctx context.Context, term *model.Term) error
	Update(ctx context.Context, term *model.Term) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Term, error)
	FindAll(ctx context.Context) ([]*model.Term, error)
}

type termRepository struct {
	db *gorm.DB
}

func NewTermRepository(db *gorm.DB) TermRepository {
	return &termRepository{db: db}
}

func (r *termRepository) Create(ctx context.Context, term *model.Term) error {
	return r.db.WithContext(ctx).Create(term).Error
}

func (r *termRepository) Update(ctx context.Context, term *model.Term) error {
	return r.db.WithContext(ctx).Save(term).Error
}

func (r *termRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Term{}, "id = ?", id).Error
}

func (r *termRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Term, error) {
	var term model.Term
	if err := r.db.WithContext(ctx).First(&term, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &term, nil
}

func (r *termRepository) FindAll(ctx context.Context) ([]*model.Term, error) {
	var terms []*model.Term
	if err := r.db.WithContext(ctx).Order("start_date ASC, week_number ASC").Find(&terms).Error; err != nil {
		return nil, err
	}
	return terms, nil
}
