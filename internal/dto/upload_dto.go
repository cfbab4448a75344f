package dto

import (
	"time"

	"bnihub.com/chaptertracker/internal/excel"
)

// WeeklyUploadResult is the upload endpoint's success payload. Dropped rows
// are reflected only in the Uploaded count.
type WeeklyUploadResult struct {
	Success      bool      `json:"success"`
	Uploaded     int       `json:"uploaded"`
	WeekNumber   int       `json:"weekNumber"`
	Year         int       `json:"year"`
	ActivityDate time.Time `json:"activityDate"`
}

type ExcelColumn struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// ParsePreviewResponse drives the interactive mapping dialog; nothing is
// persisted by the parse endpoint.
type ParsePreviewResponse struct {
	Success    bool          `json:"success"`
	Columns    []ExcelColumn `json:"columns"`
	SampleData []excel.Row   `json:"sampleData"`
	TotalRows  int           `json:"totalRows"`
}

type SaveMappingRequest struct {
	Name       string            `json:"name" binding:"required"`
	UploadType string            `json:"uploadType"`
	Mapping    map[string]string `json:"mapping" binding:"required"`
	IsDefault  bool              `json:"isDefault"`
}
