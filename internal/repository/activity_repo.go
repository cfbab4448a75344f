package repository

import (
	"context"

	"bnihub.com/chaptertracker/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityFilter narrows activity listings; nil fields are ignored.
type ActivityFilter struct {
	MemberID   *uuid.UUID
	PhoneID    *string
	WeekNumber *int
	Year       *int
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	Update(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	FindAll(ctx context.Context, filter ActivityFilter) ([]*model.Activity, error)
	FindByWeek(ctx context.Context, weekNumber, year int) ([]*model.Activity, error)
	FindByWeekWithMember(ctx context.Context, weekNumber, year int) ([]*model.Activity, error)
	FindByYearWithMember(ctx context.Context, year int, weekNumber *int) ([]*model.Activity, error)
	FindRecentByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*model.Activity, error)
	// BulkInsertSkipDuplicates inserts the batch, silently skipping rows that
	// collide on (member_id, activity_date). Returns the number actually
	// inserted.
	BulkInsertSkipDuplicates(ctx context.Context, activities []*model.Activity) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) Update(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Activity{}, "id = ?", id).Error
}

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) FindAll(ctx context.Context, filter ActivityFilter) ([]*model.Activity, error) {
	query := r.db.WithContext(ctx).Preload("Member")

	if filter.MemberID != nil {
		query = query.Where("member_id = ?", *filter.MemberID)
	}
	if filter.PhoneID != nil {
		query = query.Where("phone_id = ?", *filter.PhoneID)
	}
	if filter.WeekNumber != nil {
		query = query.Where("week_number = ?", *filter.WeekNumber)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}

	var activities []*model.Activity
	if err := query.Order("activity_date DESC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) FindByWeek(ctx context.Context, weekNumber, year int) ([]*model.Activity, error) {
	var activities []*model.Activity
	err := r.db.WithContext(ctx).
		Where("week_number = ? AND year = ?", weekNumber, year).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) FindByWeekWithMember(ctx context.Context, weekNumber, year int) ([]*model.Activity, error) {
	var activities []*model.Activity
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("week_number = ? AND year = ?", weekNumber, year).
		Order("activity_date ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) FindByYearWithMember(ctx context.Context, year int, weekNumber *int) ([]*model.Activity, error) {
	query := r.db.WithContext(ctx).Preload("Member").Where("year = ?", year)
	if weekNumber != nil {
		query = query.Where("week_number = ?", *weekNumber)
	}

	var activities []*model.Activity
	if err := query.Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) FindRecentByMember(ctx context.Context, memberID uuid.UUID, limit int) ([]*model.Activity, error) {
	var activities []*model.Activity
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("activity_date DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) BulkInsertSkipDuplicates(ctx context.Context, activities []*model.Activity) (int64, error) {
	if len(activities) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&activities)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
