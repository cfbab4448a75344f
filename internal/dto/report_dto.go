package dto

import (
	"bnihub.com/chaptertracker/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportPeriod struct {
	WeekNumber *int `json:"week_number"`
	Year       int  `json:"year"`
}

// IndustryReportRow is one industry's rollup for the requested period.
type IndustryReportRow struct {
	Industry            string          `json:"industry"`
	TotalMembers        int             `json:"total_members"`
	TotalReferrals      int             `json:"total_referrals"`
	TotalTYFCB          decimal.Decimal `json:"total_tyfcb"`
	TotalOneToOneVisits int             `json:"total_one_to_one_visits"`
	TotalVisitors       int             `json:"total_visitors"`
	TotalCEU            int             `json:"total_ceu"`
	AttendanceRate      float64         `json:"attendance_rate"`
}

type IndustryReportResponse struct {
	Success bool                `json:"success"`
	Data    []IndustryReportRow `json:"data"`
	Period  ReportPeriod        `json:"period"`
}

// MemberWeekSummary is one member's accumulated numbers for one week.
type MemberWeekSummary struct {
	MemberID     uuid.UUID       `json:"member_id"`
	MemberName   string          `json:"member_name"`
	MemberNumber string          `json:"member_number"`
	Industry     string          `json:"industry"`
	Referrals    int             `json:"referrals"`
	TYFCB        decimal.Decimal `json:"tyfcb"`
	OneToOnes    int             `json:"one_to_ones"`
	Visitors     int             `json:"visitors"`
	Attendance   string          `json:"attendance"`
}

type TopPerformer struct {
	MemberID   uuid.UUID       `json:"member_id"`
	MemberName string          `json:"member_name"`
	Industry   string          `json:"industry"`
	Referrals  int             `json:"referrals"`
	TYFCB      decimal.Decimal `json:"tyfcb"`
	OneToOnes  int             `json:"one_to_ones"`
}

type DashboardTotals struct {
	TotalMembers          int             `json:"total_members"`
	TotalInsideReferrals  int             `json:"total_inside_referrals"`
	TotalOutsideReferrals int             `json:"total_outside_referrals"`
	TotalReferrals        int             `json:"total_referrals"`
	TotalTYFCB            decimal.Decimal `json:"total_tyfcb"`
	TotalOneToOneVisits   int             `json:"total_one_to_one_visits"`
	TotalVisitors         int             `json:"total_visitors"`
	TotalCEU              int             `json:"total_ceu"`
	AttendanceRate        float64         `json:"attendance_rate"`
	TotalActivities       int             `json:"total_activities"`
}

type DashboardTopPerformers struct {
	Referrers []TopPerformer `json:"referrers"`
	TYFCB     []TopPerformer `json:"tyfcb"`
	OneToOnes []TopPerformer `json:"one_to_ones"`
}

type DashboardSummary struct {
	Summary       DashboardTotals        `json:"summary"`
	TopPerformers DashboardTopPerformers `json:"top_performers"`
	Trends        []*model.WeeklyReport  `json:"trends"`
	Period        ReportPeriod           `json:"period"`
}
