package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const UploadTypeWeekly = "weekly"

// ColumnMappingTemplate is a saved mapping from canonical activity field name
// to the source spreadsheet's column header. At most one template per upload
// type carries IsDefault; the service clears the flag on siblings before
// setting it (there is no database constraint for this).
type ColumnMappingTemplate struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string            `gorm:"size:100;not null;uniqueIndex:idx_mapping_templates_name_type" json:"name"`
	UploadType string            `gorm:"size:50;not null;uniqueIndex:idx_mapping_templates_name_type" json:"upload_type"`
	Mapping    map[string]string `gorm:"serializer:json;not null" json:"mapping"`
	IsDefault  bool              `gorm:"not null;default:false" json:"is_default"`
	CreatedAt  time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *ColumnMappingTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
