package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InsightPerformance    = "PERFORMANCE"
	InsightOpportunity    = "OPPORTUNITY"
	InsightRecommendation = "RECOMMENDATION"
	InsightPattern        = "PATTERN"
)

// Insight is a generated observation about one member. The full set is a
// derived view: generation deletes everything and recomputes from scratch.
type Insight struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID        uuid.UUID `gorm:"type:uuid;not null" json:"member_id"`
	Member          Member    `gorm:"constraint:OnDelete:CASCADE" json:"member,omitempty"`
	InsightType     string    `gorm:"size:20;not null" json:"insight_type"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	Recommendations []string  `gorm:"serializer:json" json:"recommendations"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (i *Insight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
