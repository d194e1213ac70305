// file: internals/features/people/parents/model/parent_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParentStudentModel links a parent to one of their children.
type ParentStudentModel struct {
	ParentStudentID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_student_id" json:"parent_student_id"`
	ParentStudentParentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_parent_student;column:parent_student_parent_id" json:"parent_student_parent_id"`
	ParentStudentStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_parent_student;column:parent_student_student_id" json:"parent_student_student_id"`
	// father | mother | guardian
	ParentStudentRelationship string `gorm:"type:varchar(16);not null;default:'guardian';column:parent_student_relationship" json:"parent_student_relationship"`

	ParentStudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:parent_student_created_at" json:"parent_student_created_at"`
	ParentStudentDeletedAt gorm.DeletedAt `gorm:"column:parent_student_deleted_at;index" json:"parent_student_deleted_at,omitempty"`
}

func (ParentStudentModel) TableName() string { return "parent_students" }
