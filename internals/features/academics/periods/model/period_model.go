// file: internals/features/academics/periods/model/period_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PeriodModel is a grading window inside a cycle ("Trimester 1").
// Final results are keyed per period.
type PeriodModel struct {
	// ============ PK & FK ============
	PeriodID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:period_id" json:"period_id"`
	PeriodCycleID uuid.UUID `gorm:"type:uuid;not null;index;column:period_cycle_id" json:"period_cycle_id"`

	// ============ Identity ============
	// Example name: "Trimester 1"
	PeriodName      string    `gorm:"type:text;not null;column:period_name" json:"period_name"`
	PeriodStartDate time.Time `gorm:"type:timestamptz;not null;column:period_start_date" json:"period_start_date"`
	PeriodEndDate   time.Time `gorm:"type:timestamptz;not null;column:period_end_date" json:"period_end_date"`

	// ============ Audit / Soft delete ============
	PeriodCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:period_created_at" json:"period_created_at"`
	PeriodUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:period_updated_at" json:"period_updated_at"`
	PeriodDeletedAt gorm.DeletedAt `gorm:"column:period_deleted_at;index" json:"period_deleted_at,omitempty"`
}

func (PeriodModel) TableName() string { return "periods" }

// ============ Hooks: validation & light normalization ============
func (m *PeriodModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: end >= start
	if m.PeriodEndDate.Before(m.PeriodStartDate) {
		return errors.New("period_end_date must be >= period_start_date")
	}
	m.PeriodName = strings.TrimSpace(m.PeriodName)
	return nil
}
