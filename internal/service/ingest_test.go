package service

import (
	"testing"
	"time"

	"bnihub.com/chaptertracker/internal/excel"
	"bnihub.com/chaptertracker/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testRoster() (Roster, *model.Member) {
	member := &model.Member{
		ID:      uuid.New(),
		PhoneID: "13800000001",
		Name:    "张三",
	}
	return BuildRoster([]*model.Member{member}), member
}

func testStamp() batchStamp {
	return batchStamp{
		ActivityDate: time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
		WeekNumber:   6,
		Year:         2026,
		UploadedBy:   "admin",
	}
}

func TestBuildActivityBatch_MapsAndCoercesRow(t *testing.T) {
	roster, member := testRoster()
	rows := []excel.Row{{
		"名称":     "张三",
		"出席情况":   "出席",
		"提供内部引荐": "3",
		"提供外部引荐": "2",
		"交易价值":   "5000",
		"一对一会面":  "1",
	}}

	activities, dropped := buildActivityBatch(rows, excel.MappingFromTemplate(excel.DefaultWeeklyColumns), nil, roster, testStamp())

	require.Zero(t, dropped)
	require.Len(t, activities, 1)

	a := activities[0]
	require.Equal(t, member.ID, a.MemberID)
	require.Equal(t, member.PhoneID, a.PhoneID)
	require.Equal(t, "张三", a.MemberName)
	require.Equal(t, model.AttendancePresent, a.Attendance)
	require.Equal(t, 3, a.ProvideInsideRef)
	require.Equal(t, 2, a.ProvideOutsideRef)
	require.Equal(t, 5, a.Referrals())
	require.True(t, decimal.NewFromInt(5000).Equal(a.TYFCB))
	require.Equal(t, 1, a.OneToOneVisit)
	require.Equal(t, 6, a.WeekNumber)
	require.Equal(t, 2026, a.Year)
	require.Equal(t, "admin", a.UploadedBy)
}

func TestBuildActivityBatch_BlankCountersDefaultToZero(t *testing.T) {
	roster, _ := testRoster()
	rows := []excel.Row{{
		"名称":   "张三",
		"出席情况": "请假",
	}}

	activities, dropped := buildActivityBatch(rows, excel.MappingFromTemplate(excel.DefaultWeeklyColumns), nil, roster, testStamp())

	require.Zero(t, dropped)
	require.Len(t, activities, 1)

	a := activities[0]
	require.Zero(t, a.ProvideInsideRef)
	require.Zero(t, a.ProvideOutsideRef)
	require.Zero(t, a.ReceivedInsideRef)
	require.Zero(t, a.ReceivedOutsideRef)
	require.Zero(t, a.Visitors)
	require.Zero(t, a.OneToOneVisit)
	require.Zero(t, a.CEU)
	require.True(t, decimal.Zero.Equal(a.TYFCB))
	require.Nil(t, a.Identity)
}

func TestBuildActivityBatch_DropsRowMissingRequiredFields(t *testing.T) {
	roster, _ := testRoster()
	rows := []excel.Row{
		{"名称": "张三"},          // no attendance
		{"出席情况": "出席"},        // no name
		{"名称": "张三", "出席情况": "出席"},
	}

	activities, dropped := buildActivityBatch(rows, excel.MappingFromTemplate(excel.DefaultWeeklyColumns), nil, roster, testStamp())

	require.Equal(t, 2, dropped)
	require.Len(t, activities, 1)
}

func TestBuildActivityBatch_DropsUnmatchedMember(t *testing.T) {
	roster, _ := testRoster()
	rows := []excel.Row{
		{"名称": "王五", "出席情况": "出席"},
	}

	activities, dropped := buildActivityBatch(rows, excel.MappingFromTemplate(excel.DefaultWeeklyColumns), nil, roster, testStamp())

	require.Equal(t, 1, dropped)
	require.Empty(t, activities)
}

func TestRosterResolve_IsExactAndCaseSensitive(t *testing.T) {
	roster := BuildRoster([]*model.Member{
		{ID: uuid.New(), PhoneID: "1", Name: "Alice Smith"},
	})

	_, ok := roster.Resolve("Alice Smith")
	require.True(t, ok)

	_, ok = roster.Resolve("alice smith")
	require.False(t, ok)

	_, ok = roster.Resolve("Alice")
	require.False(t, ok)
}
