package dto

import "github.com/shopspring/decimal"

type CreateActivityRequest struct {
	MemberID           string           `json:"member_id" binding:"required,uuid"`
	Identity           *string          `json:"identity"`
	ActivityDate       string           `json:"activity_date" binding:"required"`
	Attendance         string           `json:"attendance"`
	ProvideInsideRef   int              `json:"provide_inside_ref"`
	ProvideOutsideRef  int              `json:"provide_outside_ref"`
	ReceivedInsideRef  int              `json:"received_inside_ref"`
	ReceivedOutsideRef int              `json:"received_outside_ref"`
	Visitors           int              `json:"visitors"`
	OneToOneVisit      int              `json:"one_to_one_visit"`
	TYFCB              *decimal.Decimal `json:"tyfcb"`
	CEU                int              `json:"ceu"`
	UploadedBy         string           `json:"uploaded_by"`
}

type UpdateActivityRequest struct {
	Identity           *string          `json:"identity"`
	ActivityDate       *string          `json:"activity_date"`
	Attendance         *string          `json:"attendance"`
	ProvideInsideRef   *int             `json:"provide_inside_ref"`
	ProvideOutsideRef  *int             `json:"provide_outside_ref"`
	ReceivedInsideRef  *int             `json:"received_inside_ref"`
	ReceivedOutsideRef *int             `json:"received_outside_ref"`
	Visitors           *int             `json:"visitors"`
	OneToOneVisit      *int             `json:"one_to_one_visit"`
	TYFCB              *decimal.Decimal `json:"tyfcb"`
	CEU                *int             `json:"ceu"`
}

type ActivityListFilter struct {
	MemberID   string `form:"memberId" binding:"omitempty,uuid"`
	PhoneID    string `form:"phoneId"`
	WeekNumber *int   `form:"weekNumber"`
	Year       *int   `form:"year"`
}
