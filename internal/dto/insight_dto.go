package dto

import (
	"bnihub.com/chaptertracker/internal/model"
	"github.com/google/uuid"
)

type MemberPerformance struct {
	MemberID        uuid.UUID `json:"member_id"`
	MemberName      string    `json:"member_name"`
	Industry        string    `json:"industry"`
	OverallScore    int       `json:"overall_score"`
	ReferralScore   int       `json:"referral_score"`
	TYFCBScore      int       `json:"tyfcb_score"`
	AttendanceScore int       `json:"attendance_score"`
	OneToOneScore   int       `json:"one_to_one_score"`
	Trend           string    `json:"trend"`
}

type MatchMember struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Industry string    `json:"industry"`
}

// MemberMatch pairs two members from complementary industries. The score is
// a deterministic function of the two member ids, so repeated calls agree.
type MemberMatch struct {
	Member1    MatchMember `json:"member1"`
	Member2    MatchMember `json:"member2"`
	MatchScore int         `json:"match_score"`
	Reason     string      `json:"reason"`
}

type InsightOverview struct {
	Insights    []*model.Insight    `json:"insights"`
	Matches     []MemberMatch       `json:"matches"`
	Performance []MemberPerformance `json:"performance"`
}

type GenerateInsightsResponse struct {
	Success         bool `json:"success"`
	InsightsCreated int  `json:"insightsCreated"`
}
