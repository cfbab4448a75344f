package service

import (
	"testing"
	"time"

	"bnihub.com/chaptertracker/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func weekActivity(memberID uuid.UUID, name string, mutate func(*model.Activity)) *model.Activity {
	a := &model.Activity{
		ID:           uuid.New(),
		MemberID:     memberID,
		MemberName:   name,
		ActivityDate: time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
		WeekNumber:   6,
		Year:         2026,
		Attendance:   model.AttendancePresent,
		TYFCB:        decimal.Zero,
	}
	if mutate != nil {
		mutate(a)
	}
	return a
}

func TestBuildWeeklyReport_EmptyWeek(t *testing.T) {
	report := buildWeeklyReport(6, 2026, nil)

	require.Equal(t, 6, report.WeekNumber)
	require.Equal(t, 2026, report.Year)
	require.Equal(t, time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC), report.StartDate)
	require.Equal(t, time.Date(2026, time.February, 8, 0, 0, 0, 0, time.UTC), report.EndDate)
	require.Zero(t, report.TotalMembers)
	require.Zero(t, report.AttendanceRate)
	require.True(t, decimal.Zero.Equal(report.TotalTYFCB))
	require.Empty(t, report.TopReferrers)
	require.Empty(t, report.TopTYFCB)
	require.Empty(t, report.TopOneToOnes)
}

func TestBuildWeeklyReport_Totals(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	activities := []*model.Activity{
		weekActivity(alice, "Alice", func(a *model.Activity) {
			a.ProvideInsideRef = 3
			a.ProvideOutsideRef = 1
			a.TYFCB = decimal.NewFromInt(5000)
			a.OneToOneVisit = 2
			a.Visitors = 1
			a.CEU = 4
		}),
		weekActivity(bob, "Bob", func(a *model.Activity) {
			a.Attendance = "请假"
			a.ProvideInsideRef = 1
			a.TYFCB = decimal.NewFromInt(1000)
		}),
	}

	report := buildWeeklyReport(6, 2026, activities)

	require.Equal(t, 2, report.TotalMembers)
	require.Equal(t, 4, report.TotalInsideReferrals)
	require.Equal(t, 1, report.TotalOutsideReferrals)
	require.True(t, decimal.NewFromInt(6000).Equal(report.TotalTYFCB))
	require.Equal(t, 2, report.TotalOneToOneVisits)
	require.Equal(t, 1, report.TotalVisitors)
	require.Equal(t, 4, report.TotalCEU)
	require.InDelta(t, 50.0, report.AttendanceRate, 0.001)

	require.Equal(t, "Alice", report.TopReferrers[0].MemberName)
	require.Equal(t, 4, report.TopReferrers[0].Referrals)
	require.Equal(t, "Bob", report.TopReferrers[1].MemberName)
}

func TestBuildWeeklyReport_MultipleRowsPerMemberCollapse(t *testing.T) {
	alice := uuid.New()
	activities := []*model.Activity{
		weekActivity(alice, "Alice", func(a *model.Activity) { a.ProvideInsideRef = 2 }),
		weekActivity(alice, "Alice", func(a *model.Activity) { a.ProvideOutsideRef = 3 }),
	}

	report := buildWeeklyReport(6, 2026, activities)

	require.Equal(t, 1, report.TotalMembers)
	require.Len(t, report.TopReferrers, 1)
	require.Equal(t, 5, report.TopReferrers[0].Referrals)
}

func TestBuildWeeklyReport_LeaderboardCapsAtFiveWithNameTieBreak(t *testing.T) {
	names := []string{"Fay", "Bob", "Dan", "Eve", "Amy", "Cat"}
	activities := make([]*model.Activity, 0, len(names))
	for _, name := range names {
		activities = append(activities, weekActivity(uuid.New(), name, func(a *model.Activity) {
			a.ProvideInsideRef = 1
		}))
	}

	report := buildWeeklyReport(6, 2026, activities)

	require.Len(t, report.TopReferrers, 5)
	got := make([]string, 0, 5)
	for _, leader := range report.TopReferrers {
		got = append(got, leader.MemberName)
	}
	require.Equal(t, []string{"Amy", "Bob", "Cat", "Dan", "Eve"}, got)
}

func TestBuildWeeklyReport_Idempotent(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	activities := []*model.Activity{
		weekActivity(alice, "Alice", func(a *model.Activity) { a.ProvideInsideRef = 2 }),
		weekActivity(bob, "Bob", func(a *model.Activity) { a.ProvideInsideRef = 2 }),
	}

	first := buildWeeklyReport(6, 2026, activities)
	second := buildWeeklyReport(6, 2026, activities)

	require.Equal(t, first.TopReferrers, second.TopReferrers)
	require.Equal(t, first.TopTYFCB, second.TopTYFCB)
	require.Equal(t, first.TopOneToOnes, second.TopOneToOnes)
	require.Equal(t, first.TotalMembers, second.TotalMembers)
}
