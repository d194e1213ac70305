// file: internals/features/academics/cycles/model/cycle_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CycleModel is a school year ("2024", "2025"). At most one cycle is
// active at a time; weight policies and enrollments hang off a cycle.
type CycleModel struct {
	// ============ PK ============
	CycleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:cycle_id" json:"cycle_id"`

	// ============ Identity ============
	// Example year: "2024"
	CycleYear  string  `gorm:"type:varchar(16);not null;uniqueIndex;column:cycle_year" json:"cycle_year"`
	CycleLabel *string `gorm:"type:text;column:cycle_label" json:"cycle_label,omitempty"`

	CycleIsActive bool `gorm:"not null;default:false;column:cycle_is_active" json:"cycle_is_active"`

	// ============ Audit / Soft delete ============
	CycleCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:cycle_created_at" json:"cycle_created_at"`
	CycleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:cycle_updated_at" json:"cycle_updated_at"`
	CycleDeletedAt gorm.DeletedAt `gorm:"column:cycle_deleted_at;index" json:"cycle_deleted_at,omitempty"`
}

func (CycleModel) TableName() string { return "cycles" }

// ============ Hooks: light normalization ============
func (m *CycleModel) BeforeSave(tx *gorm.DB) error {
	m.CycleYear = strings.TrimSpace(m.CycleYear)
	if m.CycleLabel != nil {
		l := strings.TrimSpace(*m.CycleLabel)
		if l == "" {
			m.CycleLabel = nil
		} else {
			m.CycleLabel = &l
		}
	}
	return nil
}
