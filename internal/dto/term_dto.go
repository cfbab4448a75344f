package dto

type CreateTermRequest struct {
	Name        string  `json:"name" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	WeekNumber  int     `json:"week_number" binding:"required,min=1,max=53"`
	MeetingDate string  `json:"meeting_date" binding:"required"`
	HasMeeting  *bool   `json:"has_meeting"`
	Remarks     *string `json:"remarks"`
}

type UpdateTermRequest struct {
	Name        *string `json:"name"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	WeekNumber  *int    `json:"week_number" binding:"omitempty,min=1,max=53"`
	MeetingDate *string `json:"meeting_date"`
	HasMeeting  *bool   `json:"has_meeting"`
	Remarks     *string `json:"remarks"`
}
