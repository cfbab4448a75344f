package excel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateActivityRecord_RequiresNameAndAttendance(t *testing.T) {
	valid, errs := ValidateActivityRecord(Record{
		FieldMemberName: "张三",
		FieldAttendance: "出席",
	})
	require.True(t, valid)
	require.Empty(t, errs)

	valid, errs = ValidateActivityRecord(Record{FieldMemberName: "张三"})
	require.False(t, valid)
	require.Equal(t, []string{"attendance is required"}, errs)

	valid, errs = ValidateActivityRecord(Record{})
	require.False(t, valid)
	require.Len(t, errs, 2)
}

func TestValidateActivityRecord_CountersMayBeBlank(t *testing.T) {
	valid, _ := ValidateActivityRecord(Record{
		FieldMemberName: "张三",
		FieldAttendance: "请假",
	})
	require.True(t, valid)
}

func TestValidateMemberRow_ReportsEveryMissingField(t *testing.T) {
	valid, errs := ValidateMemberRow(Row{
		"Phone_ID": "13800000001",
		"Name":     "张三",
	})
	require.False(t, valid)
	require.Equal(t, []string{
		"Member_Number is required",
		"Industry is required",
		"Join_Date is required",
		"Status is required",
	}, errs)
}

func TestValidateMemberRow_CompleteRowPasses(t *testing.T) {
	valid, errs := ValidateMemberRow(Row{
		"Phone_ID":      "13800000001",
		"Member_Number": "M001",
		"Name":          "张三",
		"Industry":      "insurance",
		"Join_Date":     "2024-03-01",
		"Status":        "ACTIVE",
	})
	require.True(t, valid)
	require.Empty(t, errs)
}

func TestValidateTermRow(t *testing.T) {
	valid, _ := ValidateTermRow(Row{
		"terms":          "Term 1",
		"start time":     "2026-01-05",
		"end time":       "2026-06-28",
		"weekNumber":     "2",
		"date":           "2026-01-12",
		"meeting or not": "yes",
	})
	require.True(t, valid)

	valid, errs := ValidateTermRow(Row{"terms": "Term 1"})
	require.False(t, valid)
	require.Len(t, errs, 5)
}
