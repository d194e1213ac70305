// file: internals/features/people/teachers/model/teacher_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// ============ PK ============
	TeacherID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`

	// ============ Identity ============
	TeacherFirstName string  `gorm:"type:text;not null;column:teacher_first_name" json:"teacher_first_name"`
	TeacherLastName  string  `gorm:"type:text;not null;column:teacher_last_name" json:"teacher_last_name"`
	TeacherSpecialty *string `gorm:"type:text;column:teacher_specialty" json:"teacher_specialty,omitempty"`

	// ============ Account ============
	TeacherEmail        string  `gorm:"type:varchar(120);not null;uniqueIndex;column:teacher_email" json:"teacher_email"`
	TeacherPasswordHash *string `gorm:"type:text;column:teacher_password_hash" json:"-"`
	// virtual: plaintext from the request, hashed in BeforeSave
	TeacherPassword *string `gorm:"-" json:"-"`

	TeacherIsActive bool `gorm:"not null;default:true;column:teacher_is_active" json:"teacher_is_active"`

	// ============ Audit / Soft delete ============
	TeacherCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:teacher_created_at" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:teacher_updated_at" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeSave(tx *gorm.DB) error {
	m.TeacherFirstName = strings.TrimSpace(m.TeacherFirstName)
	m.TeacherLastName = strings.TrimSpace(m.TeacherLastName)
	m.TeacherEmail = strings.ToLower(strings.TrimSpace(m.TeacherEmail))
	if m.TeacherPassword != nil && *m.TeacherPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*m.TeacherPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		h := string(hash)
		m.TeacherPasswordHash = &h
		m.TeacherPassword = nil
	}
	return nil
}

func (m *TeacherModel) FullName() string {
	return strings.TrimSpace(m.TeacherFirstName + " " + m.TeacherLastName)
}
