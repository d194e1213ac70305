// file: internals/features/academics/cycles/dto/cycle_dto.go
package dto

import (
	"strings"
	"time"

	"aula_backend/internals/features/academics/cycles/model"

	"github.com/google/uuid"
)

// =======================
// Request DTO
// =======================

type CycleCreateDTO struct {
	CycleYear  string  `json:"cycle_year" validate:"required,min=4,max=16"`
	CycleLabel *string `json:"cycle_label,omitempty" validate:"omitempty,max=255"`
	// pointer: distinguish "not sent" from "false"
	CycleIsActive *bool `json:"cycle_is_active,omitempty"`
}

type CycleUpdateDTO struct {
	CycleYear     *string `json:"cycle_year,omitempty" validate:"omitempty,min=4,max=16"`
	CycleLabel    *string `json:"cycle_label,omitempty" validate:"omitempty,max=255"`
	CycleIsActive *bool   `json:"cycle_is_active,omitempty"`
}

// =======================
// Response DTO
// =======================

type CycleResponseDTO struct {
	CycleID       uuid.UUID `json:"cycle_id"`
	CycleYear     string    `json:"cycle_year"`
	CycleLabel    *string   `json:"cycle_label,omitempty"`
	CycleIsActive bool      `json:"cycle_is_active"`
	CycleCreatedAt time.Time `json:"cycle_created_at"`
	CycleUpdatedAt time.Time `json:"cycle_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *CycleCreateDTO) Normalize() {
	p.CycleYear = strings.TrimSpace(p.CycleYear)
}

func (p *CycleCreateDTO) ToModel() model.CycleModel {
	isActive := false
	if p.CycleIsActive != nil {
		isActive = *p.CycleIsActive
	}
	return model.CycleModel{
		CycleYear:     p.CycleYear,
		CycleLabel:    p.CycleLabel,
		CycleIsActive: isActive,
	}
}

func (u *CycleUpdateDTO) ApplyUpdates(ent *model.CycleModel) {
	if u.CycleYear != nil {
		ent.CycleYear = strings.TrimSpace(*u.CycleYear)
	}
	if u.CycleLabel != nil {
		ent.CycleLabel = u.CycleLabel
	}
	if u.CycleIsActive != nil {
		ent.CycleIsActive = *u.CycleIsActive
	}
}

// Mapper entity -> response
func FromModel(ent model.CycleModel) CycleResponseDTO {
	return CycleResponseDTO{
		CycleID:        ent.CycleID,
		CycleYear:      ent.CycleYear,
		CycleLabel:     ent.CycleLabel,
		CycleIsActive:  ent.CycleIsActive,
		CycleCreatedAt: ent.CycleCreatedAt,
		CycleUpdatedAt: ent.CycleUpdatedAt,
	}
}

func FromModels(list []model.CycleModel) []CycleResponseDTO {
	out := make([]CycleResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
