// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	// ============ PK ============
	SubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`

	// ============ Identity ============
	SubjectName        string  `gorm:"type:text;not null;column:subject_name" json:"subject_name"`
	SubjectCode        *string `gorm:"type:varchar(24);uniqueIndex;column:subject_code" json:"subject_code,omitempty"`
	SubjectDescription *string `gorm:"type:text;column:subject_description" json:"subject_description,omitempty"`

	// ============ Audit / Soft delete ============
	SubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeSave(tx *gorm.DB) error {
	m.SubjectName = strings.TrimSpace(m.SubjectName)
	if m.SubjectCode != nil {
		code := strings.ToUpper(strings.TrimSpace(*m.SubjectCode))
		if code == "" {
			m.SubjectCode = nil
		} else {
			m.SubjectCode = &code
		}
	}
	return nil
}
