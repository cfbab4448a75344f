package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReferralLeader struct {
	MemberID   uuid.UUID `json:"member_id"`
	MemberName string    `json:"member_name"`
	Referrals  int       `json:"referrals"`
}

type TYFCBLeader struct {
	MemberID   uuid.UUID       `json:"member_id"`
	MemberName string          `json:"member_name"`
	TYFCB      decimal.Decimal `json:"tyfcb"`
}

type OneToOneLeader struct {
	MemberID   uuid.UUID `json:"member_id"`
	MemberName string    `json:"member_name"`
	OneToOnes  int       `json:"one_to_ones"`
}

// WeeklyReport is the fully recomputed summary for one ISO (week, year).
// Every upload targeting that week overwrites the whole row.
type WeeklyReport struct {
	ID                    uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	WeekNumber            int              `gorm:"not null;uniqueIndex:idx_weekly_reports_week_year" json:"week_number"`
	Year                  int              `gorm:"not null;uniqueIndex:idx_weekly_reports_week_year" json:"year"`
	StartDate             time.Time        `gorm:"not null" json:"start_date"`
	EndDate               time.Time        `gorm:"not null" json:"end_date"`
	TotalMembers          int              `gorm:"not null;default:0" json:"total_members"`
	TotalInsideReferrals  int              `gorm:"not null;default:0" json:"total_inside_referrals"`
	TotalOutsideReferrals int              `gorm:"not null;default:0" json:"total_outside_referrals"`
	TotalTYFCB            decimal.Decimal  `gorm:"type:numeric(16,2);not null;default:0" json:"total_tyfcb"`
	TotalOneToOneVisits   int              `gorm:"not null;default:0" json:"total_one_to_one_visits"`
	TotalVisitors         int              `gorm:"not null;default:0" json:"total_visitors"`
	TotalCEU              int              `gorm:"not null;default:0" json:"total_ceu"`
	AttendanceRate        float64          `gorm:"not null;default:0" json:"attendance_rate"`
	TopReferrers          []ReferralLeader `gorm:"serializer:json" json:"top_referrers"`
	TopTYFCB              []TYFCBLeader    `gorm:"serializer:json" json:"top_tyfcb"`
	TopOneToOnes          []OneToOneLeader `gorm:"serializer:json" json:"top_one_to_ones"`
	CreatedAt             time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *WeeklyReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
