// file: internals/features/people/students/model/student_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type StudentModel struct {
	// ============ PK ============
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// ============ Identity ============
	StudentFirstName      string     `gorm:"type:text;not null;column:student_first_name" json:"student_first_name"`
	StudentLastName       string     `gorm:"type:text;not null;column:student_last_name" json:"student_last_name"`
	StudentDocumentNumber *string    `gorm:"type:varchar(24);uniqueIndex;column:student_document_number" json:"student_document_number,omitempty"`
	StudentBirthDate      *time.Time `gorm:"type:date;column:student_birth_date" json:"student_birth_date,omitempty"`
	// male | female | other
	StudentGender *string `gorm:"type:varchar(12);column:student_gender" json:"student_gender,omitempty"`

	// ============ Account ============
	StudentEmail        *string `gorm:"type:varchar(120);uniqueIndex;column:student_email" json:"student_email,omitempty"`
	StudentPasswordHash *string `gorm:"type:text;column:student_password_hash" json:"-"`
	// virtual: plaintext from the request, hashed in BeforeSave
	StudentPassword *string `gorm:"-" json:"-"`

	StudentIsActive bool `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	// ============ Audit / Soft delete ============
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeSave(tx *gorm.DB) error {
	m.StudentFirstName = strings.TrimSpace(m.StudentFirstName)
	m.StudentLastName = strings.TrimSpace(m.StudentLastName)
	if m.StudentEmail != nil {
		e := strings.ToLower(strings.TrimSpace(*m.StudentEmail))
		if e == "" {
			m.StudentEmail = nil
		} else {
			m.StudentEmail = &e
		}
	}
	if m.StudentPassword != nil && *m.StudentPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*m.StudentPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		h := string(hash)
		m.StudentPasswordHash = &h
		m.StudentPassword = nil
	}
	return nil
}

func (m *StudentModel) FullName() string {
	return strings.TrimSpace(m.StudentFirstName + " " + m.StudentLastName)
}
