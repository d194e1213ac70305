// file: internals/features/people/parents/model/parent_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ParentModel struct {
	// ============ PK ============
	ParentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_id" json:"parent_id"`

	// ============ Identity ============
	ParentFirstName string  `gorm:"type:text;not null;column:parent_first_name" json:"parent_first_name"`
	ParentLastName  string  `gorm:"type:text;not null;column:parent_last_name" json:"parent_last_name"`
	ParentPhone     *string `gorm:"type:varchar(24);column:parent_phone" json:"parent_phone,omitempty"`

	// ============ Account ============
	ParentEmail        string  `gorm:"type:varchar(120);not null;uniqueIndex;column:parent_email" json:"parent_email"`
	ParentPasswordHash *string `gorm:"type:text;column:parent_password_hash" json:"-"`
	// virtual: plaintext from the request, hashed in BeforeSave
	ParentPassword *string `gorm:"-" json:"-"`

	// ============ Audit / Soft delete ============
	ParentCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:parent_created_at" json:"parent_created_at"`
	ParentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:parent_updated_at" json:"parent_updated_at"`
	ParentDeletedAt gorm.DeletedAt `gorm:"column:parent_deleted_at;index" json:"parent_deleted_at,omitempty"`
}

func (ParentModel) TableName() string { return "parents" }

func (m *ParentModel) BeforeSave(tx *gorm.DB) error {
	m.ParentFirstName = strings.TrimSpace(m.ParentFirstName)
	m.ParentLastName = strings.TrimSpace(m.ParentLastName)
	m.ParentEmail = strings.ToLower(strings.TrimSpace(m.ParentEmail))
	if m.ParentPassword != nil && *m.ParentPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*m.ParentPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		h := string(hash)
		m.ParentPasswordHash = &h
		m.ParentPassword = nil
	}
	return nil
}
