package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MemberStatusActive   = "ACTIVE"
	MemberStatusInactive = "INACTIVE"
)

type Member struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PhoneID      string     `gorm:"size:50;uniqueIndex;not null" json:"phone_id"`
	MemberNumber string     `gorm:"size:50;not null" json:"member_number"`
	Name         string     `gorm:"size:100;not null;index" json:"name"`
	Industry     string     `gorm:"size:100;not null" json:"industry"`
	Master       *string    `gorm:"size:100" json:"master,omitempty"`
	JoinDate     time.Time  `gorm:"not null" json:"join_date"`
	Status       string     `gorm:"size:20;not null;default:ACTIVE" json:"status"`
	Activities   []Activity `gorm:"foreignKey:MemberID" json:"activities,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
