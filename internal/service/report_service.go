package service

import (
	"context"
	"sort"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/isoweek"
	"bnihub.com/chaptertracker/internal/model"
	"bnihub.com/chaptertracker/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const leaderboardSize = 5

type ReportService interface {
	// RebuildWeeklyReport recomputes the (week, year) summary from a full
	// rescan of that week's activities and upserts it, overwriting any
	// prior values. It always writes a row, even for an empty week.
	RebuildWeeklyReport(ctx context.Context, weekNumber, year int) (*model.WeeklyReport, error)
	GetWeeklyReports(ctx context.Context, year int) ([]*model.WeeklyReport, error)
	GetIndustryReport(ctx context.Context, weekNumber *int, year int) (*dto.IndustryReportResponse, error)
	GetMemberWeekReport(ctx context.Context, weekNumber, year int) ([]dto.MemberWeekSummary, error)
	GetDashboardSummary(ctx context.Context, weekNumber *int, year int) (*dto.DashboardSummary, error)
}

type reportService struct {
	activityRepo repository.ActivityRepository
	reportRepo   repository.WeeklyReportRepository
}

func NewReportService(activityRepo repository.ActivityRepository, reportRepo repository.WeeklyReportRepository) ReportService {
	return &reportService{activityRepo: activityRepo, reportRepo: reportRepo}
}

func (s *reportService) RebuildWeeklyReport(ctx context.Context, weekNumber, year int) (*model.WeeklyReport, error) {
	activities, err := s.activityRepo.FindByWeek(ctx, weekNumber, year)
	if err != nil {
		return nil, err
	}

	report := buildWeeklyReport(weekNumber, year, activities)
	if err := s.reportRepo.Upsert(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) GetWeeklyReports(ctx context.Context, year int) ([]*model.WeeklyReport, error) {
	return s.reportRepo.FindByYear(ctx, year)
}

// memberTotals is the per-member accumulator used for leaderboards.
type memberTotals struct {
	MemberID   uuid.UUID
	MemberName string
	Industry   string
	Referrals  int
	TYFCB      decimal.Decimal
	OneToOnes  int
}

func accumulateByMember(activities []*model.Activity) []*memberTotals {
	byMember := make(map[uuid.UUID]*memberTotals)
	order := make([]uuid.UUID, 0)

	for _, a := range activities {
		totals, ok := byMember[a.MemberID]
		if !ok {
			totals = &memberTotals{
				MemberID:   a.MemberID,
				MemberName: a.MemberName,
				Industry:   a.Member.Industry,
				TYFCB:      decimal.Zero,
			}
			byMember[a.MemberID] = totals
			order = append(order, a.MemberID)
		}
		totals.Referrals += a.Referrals()
		totals.TYFCB = totals.TYFCB.Add(a.TYFCB)
		totals.OneToOnes += a.OneToOneVisit
	}

	result := make([]*memberTotals, 0, len(order))
	for _, id := range order {
		result = append(result, byMember[id])
	}
	return result
}

// buildWeeklyReport computes the full summary for one ISO (week, year) from
// that week's activity rows. Ties in the leaderboards break on member name
// so that recomputation over an unchanged set is byte-stable.
func buildWeeklyReport(weekNumber, year int, activities []*model.Activity) *model.WeeklyReport {
	start, end := isoweek.Bounds(year, weekNumber)

	report := &model.WeeklyReport{
		WeekNumber:   weekNumber,
		Year:         year,
		StartDate:    start,
		EndDate:      end,
		TotalTYFCB:   decimal.Zero,
		TopReferrers: []model.ReferralLeader{},
		TopTYFCB:     []model.TYFCBLeader{},
		TopOneToOnes: []model.OneToOneLeader{},
	}

	distinctMembers := make(map[uuid.UUID]struct{})
	presentCount := 0
	for _, a := range activities {
		distinctMembers[a.MemberID] = struct{}{}
		report.TotalInsideReferrals += a.ProvideInsideRef
		report.TotalOutsideReferrals += a.ProvideOutsideRef
		report.TotalTYFCB = report.TotalTYFCB.Add(a.TYFCB)
		report.TotalOneToOneVisits += a.OneToOneVisit
		report.TotalVisitors += a.Visitors
		report.TotalCEU += a.CEU
		if a.Attendance == model.AttendancePresent {
			presentCount++
		}
	}
	report.TotalMembers = len(distinctMembers)
	if len(activities) > 0 {
		report.AttendanceRate = float64(presentCount) / float64(len(activities)) * 100
	}

	totals := accumulateByMember(activities)

	byReferrals := make([]*memberTotals, len(totals))
	copy(byReferrals, totals)
	sort.Slice(byReferrals, func(i, j int) bool {
		if byReferrals[i].Referrals != byReferrals[j].Referrals {
			return byReferrals[i].Referrals > byReferrals[j].Referrals
		}
		return byReferrals[i].MemberName < byReferrals[j].MemberName
	})
	for _, t := range topN(byReferrals, leaderboardSize) {
		report.TopReferrers = append(report.TopReferrers, model.ReferralLeader{
			MemberID: t.MemberID, MemberName: t.MemberName, Referrals: t.Referrals,
		})
	}

	byTYFCB := make([]*memberTotals, len(totals))
	copy(byTYFCB, totals)
	sort.Slice(byTYFCB, func(i, j int) bool {
		if !byTYFCB[i].TYFCB.Equal(byTYFCB[j].TYFCB) {
			return byTYFCB[i].TYFCB.GreaterThan(byTYFCB[j].TYFCB)
		}
		return byTYFCB[i].MemberName < byTYFCB[j].MemberName
	})
	for _, t := range topN(byTYFCB, leaderboardSize) {
		report.TopTYFCB = append(report.TopTYFCB, model.TYFCBLeader{
			MemberID: t.MemberID, MemberName: t.MemberName, TYFCB: t.TYFCB,
		})
	}

	byOneToOnes := make([]*memberTotals, len(totals))
	copy(byOneToOnes, totals)
	sort.Slice(byOneToOnes, func(i, j int) bool {
		if byOneToOnes[i].OneToOnes != byOneToOnes[j].OneToOnes {
			return byOneToOnes[i].OneToOnes > byOneToOnes[j].OneToOnes
		}
		return byOneToOnes[i].MemberName < byOneToOnes[j].MemberName
	})
	for _, t := range topN(byOneToOnes, leaderboardSize) {
		report.TopOneToOnes = append(report.TopOneToOnes, model.OneToOneLeader{
			MemberID: t.MemberID, MemberName: t.MemberName, OneToOnes: t.OneToOnes,
		})
	}

	return report
}

func topN(totals []*memberTotals, n int) []*memberTotals {
	if len(totals) > n {
		return totals[:n]
	}
	return totals
}

func (s *reportService) GetIndustryReport(ctx context.Context, weekNumber *int, year int) (*dto.IndustryReportResponse, error) {
	activities, err := s.activityRepo.FindByYearWithMember(ctx, year, weekNumber)
	if err != nil {
		return nil, err
	}

	type industryAcc struct {
		dto.IndustryReportRow
		presentCount int
	}

	byIndustry := make(map[string]*industryAcc)
	order := make([]string, 0)
	for _, a := range activities {
		industry := a.Member.Industry
		acc, ok := byIndustry[industry]
		if !ok {
			acc = &industryAcc{IndustryReportRow: dto.IndustryReportRow{
				Industry:   industry,
				TotalTYFCB: decimal.Zero,
			}}
			byIndustry[industry] = acc
			order = append(order, industry)
		}
		acc.TotalMembers++
		acc.TotalReferrals += a.Referrals()
		acc.TotalTYFCB = acc.TotalTYFCB.Add(a.TYFCB)
		acc.TotalOneToOneVisits += a.OneToOneVisit
		acc.TotalVisitors += a.Visitors
		acc.TotalCEU += a.CEU
		if a.Attendance == model.AttendancePresent {
			acc.presentCount++
		}
	}

	rows := make([]dto.IndustryReportRow, 0, len(order))
	for _, industry := range order {
		acc := byIndustry[industry]
		if acc.TotalMembers > 0 {
			acc.AttendanceRate = float64(acc.presentCount) / float64(acc.TotalMembers) * 100
		}
		rows = append(rows, acc.IndustryReportRow)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalReferrals != rows[j].TotalReferrals {
			return rows[i].TotalReferrals > rows[j].TotalReferrals
		}
		return rows[i].Industry < rows[j].Industry
	})

	return &dto.IndustryReportResponse{
		Success: true,
		Data:    rows,
		Period:  dto.ReportPeriod{WeekNumber: weekNumber, Year: year},
	}, nil
}

func (s *reportService) GetMemberWeekReport(ctx context.Context, weekNumber, year int) ([]dto.MemberWeekSummary, error) {
	activities, err := s.activityRepo.FindByWeekWithMember(ctx, weekNumber, year)
	if err != nil {
		return nil, err
	}

	byMember := make(map[uuid.UUID]*dto.MemberWeekSummary)
	order := make([]uuid.UUID, 0)
	for _, a := range activities {
		summary, ok := byMember[a.MemberID]
		if !ok {
			summary = &dto.MemberWeekSummary{
				MemberID:     a.MemberID,
				MemberName:   a.MemberName,
				MemberNumber: a.Member.MemberNumber,
				Industry:     a.Member.Industry,
				TYFCB:        decimal.Zero,
			}
			byMember[a.MemberID] = summary
			order = append(order, a.MemberID)
		}
		summary.Referrals += a.Referrals()
		summary.TYFCB = summary.TYFCB.Add(a.TYFCB)
		summary.OneToOnes += a.OneToOneVisit
		summary.Visitors += a.Visitors
		// Rows arrive in date order; keep the latest attendance status.
		summary.Attendance = a.Attendance
	}

	result := make([]dto.MemberWeekSummary, 0, len(order))
	for _, id := range order {
		result = append(result, *byMember[id])
	}
	return result, nil
}

func (s *reportService) GetDashboardSummary(ctx context.Context, weekNumber *int, year int) (*dto.DashboardSummary, error) {
	activities, err := s.activityRepo.FindByYearWithMember(ctx, year, weekNumber)
	if err != nil {
		return nil, err
	}

	totals := dto.DashboardTotals{TotalTYFCB: decimal.Zero, TotalActivities: len(activities)}
	distinctMembers := make(map[uuid.UUID]struct{})
	presentCount := 0
	for _, a := range activities {
		distinctMembers[a.MemberID] = struct{}{}
		totals.TotalInsideReferrals += a.ProvideInsideRef
		totals.TotalOutsideReferrals += a.ProvideOutsideRef
		totals.TotalTYFCB = totals.TotalTYFCB.Add(a.TYFCB)
		totals.TotalOneToOneVisits += a.OneToOneVisit
		totals.TotalVisitors += a.Visitors
		totals.TotalCEU += a.CEU
		if a.Attendance == model.AttendancePresent {
			presentCount++
		}
	}
	totals.TotalMembers = len(distinctMembers)
	totals.TotalReferrals = totals.TotalInsideReferrals + totals.TotalOutsideReferrals
	if len(activities) > 0 {
		rate := float64(presentCount) / float64(len(activities)) * 100
		totals.AttendanceRate = float64(int(rate*100+0.5)) / 100
	}

	perMember := accumulateByMember(activities)
	performers := func(less func(i, j *memberTotals) bool) []dto.TopPerformer {
		sorted := make([]*memberTotals, len(perMember))
		copy(sorted, perMember)
		sort.Slice(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
		top := topN(sorted, 10)
		result := make([]dto.TopPerformer, 0, len(top))
		for _, t := range top {
			result = append(result, dto.TopPerformer{
				MemberID:   t.MemberID,
				MemberName: t.MemberName,
				Industry:   t.Industry,
				Referrals:  t.Referrals,
				TYFCB:      t.TYFCB,
				OneToOnes:  t.OneToOnes,
			})
		}
		return result
	}

	trends, err := s.reportRepo.FindByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardSummary{
		Summary: totals,
		TopPerformers: dto.DashboardTopPerformers{
			Referrers: performers(func(i, j *memberTotals) bool {
				if i.Referrals != j.Referrals {
					return i.Referrals > j.Referrals
				}
				return i.MemberName < j.MemberName
			}),
			TYFCB: performers(func(i, j *memberTotals) bool {
				if !i.TYFCB.Equal(j.TYFCB) {
					return i.TYFCB.GreaterThan(j.TYFCB)
				}
				return i.MemberName < j.MemberName
			}),
			OneToOnes: performers(func(i, j *memberTotals) bool {
				if i.OneToOnes != j.OneToOnes {
					return i.OneToOnes > j.OneToOnes
				}
				return i.MemberName < j.MemberName
			}),
		},
		Trends: trends,
		Period: dto.ReportPeriod{WeekNumber: weekNumber, Year: year},
	}, nil
}
