package repository

import (
	"context"

	"bnihub.com/chaptertracker/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	Update(ctx context.Context, member *model.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	FindByPhoneID(ctx context.Context, phoneID string) (*model.Member, error)
	FindAll(ctx context.Context) ([]*model.Member, error)
	FindByIDs(ctx context.Context, ids []string) ([]*model.Member, error)
	FindByStatus(ctx context.Context, status string) ([]*model.Member, error)
	UpsertByPhoneID(ctx context.Context, member *model.Member) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) Update(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Member{}, "id = ?", id).Error
}

func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByPhoneID(ctx context.Context, phoneID string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("phone_id = ?", phoneID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindAll(ctx context.Context) ([]*model.Member, error) {
	var members []*model.Member
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Member, error) {
	var members []*model.Member
	if len(ids) == 0 {
		return members, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) FindByStatus(ctx context.Context, status string) ([]*model.Member, error) {
	var members []*model.Member
	if err := r.db.WithContext(ctx).Where("status = ?", status).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) UpsertByPhoneID(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "phone_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"member_number", "name", "industry", "master", "join_date", "status", "updated_at",
		}),
	}).Create(member).Error
}
