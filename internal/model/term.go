package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Term is one row of the chapter's meeting calendar.
type Term struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`
	WeekNumber  int       `gorm:"not null" json:"week_number"`
	MeetingDate time.Time `gorm:"not null" json:"meeting_date"`
	HasMeeting  bool      `gorm:"not null;default:true" json:"has_meeting"`
	Remarks     *string   `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Term) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
