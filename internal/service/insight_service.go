package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"

	"bnihub.com/chaptertracker/internal/dto"
	"bnihub.com/chaptertracker/internal/model"
	"bnihub.com/chaptertracker/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const recentActivityWindow = 10

// Fixed rule thresholds. These are chapter policy, not configuration.
var (
	topReferrerThreshold  = 5
	tyfcbGoalThreshold    = decimal.NewFromInt(50000)
	lowAttendanceRate     = 70.0
	lowOneToOneThreshold  = 2
	complementaryIndustry = [][2]string{
		{"real estate", "mortgage"},
		{"insurance", "financial planning"},
		{"web design", "marketing"},
		{"accounting", "tax services"},
		{"legal", "business consulting"},
	}
)

type InsightService interface {
	// Generate wipes the insight set and recomputes it from each active
	// member's most recent activity window. Returns the number created.
	Generate(ctx context.Context) (int, error)
	GetOverview(ctx context.Context) (*dto.InsightOverview, error)
}

type insightService struct {
	memberRepo   repository.MemberRepository
	activityRepo repository.ActivityRepository
	insightRepo  repository.InsightRepository
}

func NewInsightService(
	memberRepo repository.MemberRepository,
	activityRepo repository.ActivityRepository,
	insightRepo repository.InsightRepository,
) InsightService {
	return &insightService{
		memberRepo:   memberRepo,
		activityRepo: activityRepo,
		insightRepo:  insightRepo,
	}
}

// memberMetrics summarizes one member's recent activity window.
type memberMetrics struct {
	Referrals      int
	TYFCB          decimal.Decimal
	OneToOnes      int
	AttendanceRate float64
}

func summarizeActivities(activities []*model.Activity) memberMetrics {
	metrics := memberMetrics{TYFCB: decimal.Zero}
	presentCount := 0
	for _, a := range activities {
		metrics.Referrals += a.Referrals()
		metrics.TYFCB = metrics.TYFCB.Add(a.TYFCB)
		metrics.OneToOnes += a.OneToOneVisit
		if a.Attendance == model.AttendancePresent {
			presentCount++
		}
	}
	if len(activities) > 0 {
		metrics.AttendanceRate = float64(presentCount) / float64(len(activities)) * 100
	}
	return metrics
}

// buildMemberInsights evaluates the fixed rule battery. Rules are
// independent; a member can trigger any subset.
func buildMemberInsights(member *model.Member, metrics memberMetrics) []*model.Insight {
	var insights []*model.Insight

	if metrics.Referrals > topReferrerThreshold {
		insights = append(insights, &model.Insight{
			MemberID:    member.ID,
			InsightType: model.InsightPerformance,
			Title:       fmt.Sprintf("%s is a Top Referrer", member.Name),
			Content: fmt.Sprintf(
				"%s has generated %d referrals in recent activities, placing them among the top performers in the chapter.",
				member.Name, metrics.Referrals),
			Recommendations: []string{
				"Consider recognizing this member at the next meeting",
				"Ask them to share their referral strategies with the group",
				"Feature their success story in chapter communications",
			},
		})
	}

	if metrics.TYFCB.GreaterThan(tyfcbGoalThreshold) {
		insights = append(insights, &model.Insight{
			MemberID:    member.ID,
			InsightType: model.InsightPerformance,
			Title:       fmt.Sprintf("%s is Exceeding TYFCB Goals", member.Name),
			Content: fmt.Sprintf(
				"%s has achieved $%s in TYFCB, demonstrating strong business generation capabilities.",
				member.Name, metrics.TYFCB.StringFixed(0)),
			Recommendations: []string{
				"Celebrate this milestone publicly",
				"Encourage them to mentor other members",
				"Use their success as a case study",
			},
		})
	}

	if metrics.AttendanceRate < lowAttendanceRate {
		insights = append(insights, &model.Insight{
			MemberID:    member.ID,
			InsightType: model.InsightOpportunity,
			Title:       fmt.Sprintf("Improve %s's Attendance", member.Name),
			Content: fmt.Sprintf(
				"%s's attendance rate is %.1f%%, which is below the recommended 80%% threshold.",
				member.Name, metrics.AttendanceRate),
			Recommendations: []string{
				"Schedule a one-to-one to discuss any barriers",
				"Offer to help with meeting preparation",
				"Ensure they feel valued and engaged",
			},
		})
	}

	if metrics.OneToOnes < lowOneToOneThreshold {
		insights = append(insights, &model.Insight{
			MemberID:    member.ID,
			InsightType: model.InsightOpportunity,
			Title:       fmt.Sprintf("%s Needs More One-to-Ones", member.Name),
			Content: fmt.Sprintf(
				"%s has only completed %d one-to-one meetings recently. Regular one-to-ones are essential for building referral relationships.",
				member.Name, metrics.OneToOnes),
			Recommendations: []string{
				"Encourage them to schedule more one-to-ones",
				"Offer to help them identify good matches",
				"Track their one-to-one progress",
			},
		})
	}

	if metrics.Referrals > 0 && metrics.TYFCB.IsZero() {
		insights = append(insights, &model.Insight{
			MemberID:    member.ID,
			InsightType: model.InsightPattern,
			Title:       fmt.Sprintf("%s Gives Referrals But No TYFCB", member.Name),
			Content: fmt.Sprintf(
				"%s is actively giving referrals but hasn't reported any TYFCB. This may indicate a need for better follow-up tracking.",
				member.Name),
			Recommendations: []string{
				"Educate on the importance of TYFCB tracking",
				"Help them understand the referral-to-closed business process",
				"Provide tools for better follow-up management",
			},
		})
	}

	return insights
}

func (s *insightService) Generate(ctx context.Context) (int, error) {
	members, err := s.memberRepo.FindByStatus(ctx, model.MemberStatusActive)
	if err != nil {
		return 0, err
	}

	var toCreate []*model.Insight
	for _, member := range members {
		activities, err := s.activityRepo.FindRecentByMember(ctx, member.ID, recentActivityWindow)
		if err != nil {
			return 0, err
		}
		toCreate = append(toCreate, buildMemberInsights(member, summarizeActivities(activities))...)
	}

	// Full-replace semantics: the insight set is a derived view, not a log.
	if err := s.insightRepo.DeleteAll(ctx); err != nil {
		return 0, err
	}
	if err := s.insightRepo.CreateBatch(ctx, toCreate); err != nil {
		return 0, err
	}

	logrus.WithField("insights", len(toCreate)).Info("insight set regenerated")
	return len(toCreate), nil
}

func (s *insightService) GetOverview(ctx context.Context) (*dto.InsightOverview, error) {
	insights, err := s.insightRepo.FindRecent(ctx, 50)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.FindByStatus(ctx, model.MemberStatusActive)
	if err != nil {
		return nil, err
	}

	performance := make([]dto.MemberPerformance, 0, len(members))
	for _, member := range members {
		activities, err := s.activityRepo.FindRecentByMember(ctx, member.ID, recentActivityWindow)
		if err != nil {
			return nil, err
		}
		performance = append(performance, scoreMember(member, summarizeActivities(activities)))
	}
	sort.Slice(performance, func(i, j int) bool {
		if performance[i].OverallScore != performance[j].OverallScore {
			return performance[i].OverallScore > performance[j].OverallScore
		}
		return performance[i].MemberName < performance[j].MemberName
	})
	if len(performance) > 10 {
		performance = performance[:10]
	}

	matches := buildIndustryMatches(members)
	if len(matches) > 10 {
		matches = matches[:10]
	}

	return &dto.InsightOverview{
		Insights:    insights,
		Matches:     matches,
		Performance: performance,
	}, nil
}

// scoreMember computes the 0-100 composite: referrals against a target of
// 10, TYFCB against 10000, attendance rate as-is, one-to-ones against 5,
// each capped at 100.
func scoreMember(member *model.Member, metrics memberMetrics) dto.MemberPerformance {
	referralScore := math.Min(100, float64(metrics.Referrals)/10*100)
	tyfcbScore := math.Min(100, metrics.TYFCB.InexactFloat64()/10000*100)
	attendanceScore := metrics.AttendanceRate
	oneToOneScore := math.Min(100, float64(metrics.OneToOnes)/5*100)
	overall := (referralScore + tyfcbScore + attendanceScore + oneToOneScore) / 4

	return dto.MemberPerformance{
		MemberID:        member.ID,
		MemberName:      member.Name,
		Industry:        member.Industry,
		OverallScore:    int(math.Round(overall)),
		ReferralScore:   int(math.Round(referralScore)),
		TYFCBScore:      int(math.Round(tyfcbScore)),
		AttendanceScore: int(math.Round(attendanceScore)),
		OneToOneScore:   int(math.Round(oneToOneScore)),
		Trend:           "STABLE",
	}
}

// buildIndustryMatches pairs members from complementary industries. The
// match score hashes the two member ids into [80, 100), so the same pair
// always scores the same.
func buildIndustryMatches(members []*model.Member) []dto.MemberMatch {
	byIndustry := make(map[string][]*model.Member)
	for _, m := range members {
		key := strings.ToLower(m.Industry)
		byIndustry[key] = append(byIndustry[key], m)
	}

	var matches []dto.MemberMatch
	for _, pair := range complementaryIndustry {
		group1 := byIndustry[pair[0]]
		group2 := byIndustry[pair[1]]
		for i := 0; i < len(group1) && i < len(group2); i++ {
			m1, m2 := group1[i], group2[i]
			matches = append(matches, dto.MemberMatch{
				Member1:    dto.MatchMember{ID: m1.ID, Name: m1.Name, Industry: m1.Industry},
				Member2:    dto.MatchMember{ID: m2.ID, Name: m2.Name, Industry: m2.Industry},
				MatchScore: matchScore(m1.ID.String(), m2.ID.String()),
				Reason: fmt.Sprintf(
					"Complementary industries: %s and %s often work together on client projects.",
					m1.Industry, m2.Industry),
			})
		}
	}
	return matches
}

func matchScore(id1, id2 string) int {
	h := fnv.New32a()
	h.Write([]byte(id1))
	h.Write([]byte("|"))
	h.Write([]byte(id2))
	return 80 + int(h.Sum32()%20)
}
