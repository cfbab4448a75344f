package service

import (
	"testing"

	"bnihub.com/chaptertracker/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func insightTypes(insights []*model.Insight) []string {
	types := make([]string, 0, len(insights))
	for _, ins := range insights {
		types = append(types, ins.InsightType)
	}
	return types
}

func TestBuildMemberInsights_TopReferrerWithoutTYFCB(t *testing.T) {
	member := &model.Member{ID: uuid.New(), Name: "张三"}
	metrics := memberMetrics{
		Referrals:      6,
		TYFCB:          decimal.Zero,
		OneToOnes:      5,
		AttendanceRate: 100,
	}

	insights := buildMemberInsights(member, metrics)

	require.Equal(t, []string{model.InsightPerformance, model.InsightPattern}, insightTypes(insights))
	require.Contains(t, insights[0].Title, "Top Referrer")
	require.Contains(t, insights[1].Title, "Gives Referrals But No TYFCB")
	for _, ins := range insights {
		require.Equal(t, member.ID, ins.MemberID)
		require.NotEmpty(t, ins.Recommendations)
	}
}

func TestBuildMemberInsights_LowEngagement(t *testing.T) {
	member := &model.Member{ID: uuid.New(), Name: "李四"}
	metrics := memberMetrics{
		TYFCB:          decimal.Zero,
		OneToOnes:      1,
		AttendanceRate: 50,
	}

	insights := buildMemberInsights(member, metrics)

	require.Equal(t, []string{model.InsightOpportunity, model.InsightOpportunity}, insightTypes(insights))
	require.Contains(t, insights[0].Title, "Attendance")
	require.Equal(t, "李四's attendance rate is 50.0%, which is below the recommended 80% threshold.", insights[0].Content)
	require.Contains(t, insights[1].Title, "One-to-Ones")
}

func TestBuildMemberInsights_HealthyMemberTriggersNothing(t *testing.T) {
	member := &model.Member{ID: uuid.New(), Name: "王五"}
	metrics := memberMetrics{
		Referrals:      3,
		TYFCB:          decimal.NewFromInt(10000),
		OneToOnes:      4,
		AttendanceRate: 90,
	}

	require.Empty(t, buildMemberInsights(member, metrics))
}

func TestBuildMemberInsights_TYFCBGoalIsStrictlyAbove(t *testing.T) {
	member := &model.Member{ID: uuid.New(), Name: "赵六"}
	metrics := memberMetrics{
		TYFCB:          decimal.NewFromInt(50000),
		OneToOnes:      3,
		AttendanceRate: 100,
	}
	require.Empty(t, buildMemberInsights(member, metrics))

	metrics.TYFCB = decimal.NewFromInt(50001)
	insights := buildMemberInsights(member, metrics)
	require.Len(t, insights, 1)
	require.Contains(t, insights[0].Title, "Exceeding TYFCB Goals")
}

func TestSummarizeActivities(t *testing.T) {
	memberID := uuid.New()
	activities := []*model.Activity{
		weekActivity(memberID, "张三", func(a *model.Activity) {
			a.ProvideInsideRef = 2
			a.TYFCB = decimal.NewFromInt(3000)
			a.OneToOneVisit = 1
		}),
		weekActivity(memberID, "张三", func(a *model.Activity) {
			a.Attendance = "请假"
			a.ProvideOutsideRef = 1
		}),
	}

	metrics := summarizeActivities(activities)

	require.Equal(t, 3, metrics.Referrals)
	require.True(t, decimal.NewFromInt(3000).Equal(metrics.TYFCB))
	require.Equal(t, 1, metrics.OneToOnes)
	require.InDelta(t, 50.0, metrics.AttendanceRate, 0.001)
}

func TestScoreMember_CapsComponentsAt100(t *testing.T) {
	member := &model.Member{ID: uuid.New(), Name: "张三", Industry: "insurance"}
	metrics := memberMetrics{
		Referrals:      50,
		TYFCB:          decimal.NewFromInt(1000000),
		OneToOnes:      20,
		AttendanceRate: 100,
	}

	perf := scoreMember(member, metrics)

	require.Equal(t, 100, perf.ReferralScore)
	require.Equal(t, 100, perf.TYFCBScore)
	require.Equal(t, 100, perf.AttendanceScore)
	require.Equal(t, 100, perf.OneToOneScore)
	require.Equal(t, 100, perf.OverallScore)
	require.Equal(t, "STABLE", perf.Trend)
}

func TestScoreMember_Composite(t *testing.T) {
	member := &model.Member{ID: uuid.New(), Name: "李四"}
	metrics := memberMetrics{
		Referrals:      5,
		TYFCB:          decimal.NewFromInt(5000),
		OneToOnes:      0,
		AttendanceRate: 80,
	}

	perf := scoreMember(member, metrics)

	require.Equal(t, 50, perf.ReferralScore)
	require.Equal(t, 50, perf.TYFCBScore)
	require.Equal(t, 80, perf.AttendanceScore)
	require.Equal(t, 0, perf.OneToOneScore)
	require.Equal(t, 45, perf.OverallScore)
}

func TestMatchScore_DeterministicAndBounded(t *testing.T) {
	id1, id2 := uuid.New().String(), uuid.New().String()

	score := matchScore(id1, id2)
	require.Equal(t, score, matchScore(id1, id2))
	require.GreaterOrEqual(t, score, 80)
	require.Less(t, score, 100)
}

func TestBuildIndustryMatches_PairsComplementaryIndustries(t *testing.T) {
	agent := &model.Member{ID: uuid.New(), Name: "Alice", Industry: "Real Estate"}
	broker := &model.Member{ID: uuid.New(), Name: "Bob", Industry: "Mortgage"}
	outsider := &model.Member{ID: uuid.New(), Name: "Carol", Industry: "Catering"}

	matches := buildIndustryMatches([]*model.Member{agent, broker, outsider})

	require.Len(t, matches, 1)
	require.Equal(t, agent.ID, matches[0].Member1.ID)
	require.Equal(t, broker.ID, matches[0].Member2.ID)
	require.GreaterOrEqual(t, matches[0].MatchScore, 80)
	require.Contains(t, matches[0].Reason, "Complementary industries")
}

func TestBuildIndustryMatches_NoPartnerNoMatch(t *testing.T) {
	lonely := &model.Member{ID: uuid.New(), Name: "Alice", Industry: "real estate"}
	require.Empty(t, buildIndustryMatches([]*model.Member{lonely}))
}
