package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeeklyUploadResult_WireKeysAreCamelCase(t *testing.T) {
	result := WeeklyUploadResult{
		Success:      true,
		Uploaded:     3,
		WeekNumber:   6,
		Year:         2026,
		ActivityDate: time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	require.Contains(t, keys, "weekNumber")
	require.Contains(t, keys, "activityDate")
	require.NotContains(t, keys, "week_number")
	require.NotContains(t, keys, "activity_date")
}

func TestParsePreviewResponse_WireKeysAreCamelCase(t *testing.T) {
	raw, err := json.Marshal(ParsePreviewResponse{Success: true, TotalRows: 42})
	require.NoError(t, err)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &keys))
	require.Contains(t, keys, "sampleData")
	require.Contains(t, keys, "totalRows")
}

func TestGenerateInsightsResponse_WireKeysAreCamelCase(t *testing.T) {
	raw, err := json.Marshal(GenerateInsightsResponse{Success: true, InsightsCreated: 7})
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"insightsCreated":7}`, string(raw))
}

func TestSaveMappingRequest_HonorsIsDefaultKey(t *testing.T) {
	body := `{"name":"standard","uploadType":"weekly","mapping":{"名称":"memberName"},"isDefault":true}`

	var req SaveMappingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.Equal(t, "standard", req.Name)
	require.Equal(t, "weekly", req.UploadType)
	require.True(t, req.IsDefault)
}
