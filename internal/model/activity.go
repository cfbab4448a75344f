package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AttendancePresent is the marker value the chapter's weekly sheets use for
// "attended". Any other value counts as absent for rate calculations.
const AttendancePresent = "出席"

// Activity is one member's recorded activity for one meeting date. The
// (member_id, activity_date) pair is unique; bulk uploads rely on the
// database skipping conflicting rows rather than merging them.
type Activity struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_activities_member_date" json:"member_id"`
	Member             Member          `gorm:"constraint:OnDelete:CASCADE" json:"member,omitempty"`
	PhoneID            string          `gorm:"size:50;not null" json:"phone_id"`
	MemberName         string          `gorm:"size:100;not null" json:"member_name"`
	Identity           *string         `gorm:"size:100" json:"identity,omitempty"`
	ActivityDate       time.Time       `gorm:"not null;uniqueIndex:idx_activities_member_date" json:"activity_date"`
	WeekNumber         int             `gorm:"not null;index:idx_activities_week" json:"week_number"`
	Year               int             `gorm:"not null;index:idx_activities_week" json:"year"`
	Attendance         string          `gorm:"size:20;not null" json:"attendance"`
	ProvideInsideRef   int             `gorm:"not null;default:0" json:"provide_inside_ref"`
	ProvideOutsideRef  int             `gorm:"not null;default:0" json:"provide_outside_ref"`
	ReceivedInsideRef  int             `gorm:"not null;default:0" json:"received_inside_ref"`
	ReceivedOutsideRef int             `gorm:"not null;default:0" json:"received_outside_ref"`
	Visitors           int             `gorm:"not null;default:0" json:"visitors"`
	OneToOneVisit      int             `gorm:"not null;default:0" json:"one_to_one_visit"`
	TYFCB              decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"tyfcb"`
	CEU                int             `gorm:"not null;default:0" json:"ceu"`
	UploadedBy         string          `gorm:"size:100;not null" json:"uploaded_by"`
	UploadedAt         time.Time       `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Referrals is the combined count of referrals the member gave that date.
func (a *Activity) Referrals() int {
	return a.ProvideInsideRef + a.ProvideOutsideRef
}
