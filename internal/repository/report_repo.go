package repository

import (
	"context"

	"bnihub.com/chaptertracker/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeeklyReportRepository interface {
	// Upsert writes the report keyed by (week_number, year), fully
	// overwriting any prior row for that key.
	Upsert(ctx context.Context, report *model.WeeklyReport) error
	FindByWeek(ctx context.Context, weekNumber, year int) (*model.WeeklyReport, error)
	FindByYear(ctx context.Context, year int) ([]*model.WeeklyReport, error)
}

type weeklyReportRepository struct {
	db *gorm.DB
}

func NewWeeklyReportRepository(db *gorm.DB) WeeklyReportRepository {
	return &weeklyReportRepository{db: db}
}

func (r *weeklyReportRepository) Upsert(ctx context.Context, report *model.WeeklyReport) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "week_number"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"start_date", "end_date", "total_members",
			"total_inside_referrals", "total_outside_referrals",
			"total_tyfcb", "total_one_to_one_visits", "total_visitors",
			"total_ceu", "attendance_rate",
			"top_referrers", "top_tyfcb", "top_one_to_ones", "updated_at",
		}),
	}).Create(report).Error
}

func (r *weeklyReportRepository) FindByWeek(ctx context.Context, weekNumber, year int) (*model.WeeklyReport, error) {
	var report model.WeeklyReport
	err := r.db.WithContext(ctx).
		Where("week_number = ? AND year = ?", weekNumber, year).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *weeklyReportRepository) FindByYear(ctx context.Context, year int) ([]*model.WeeklyReport, error) {
	var reports []*model.WeeklyReport
	err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("week_number ASC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
