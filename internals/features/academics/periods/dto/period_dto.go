// file: internals/features/academics/periods/dto/period_dto.go
package dto

import (
	"strings"
	"time"

	"aula_backend/internals/features/academics/periods/model"

	"github.com/google/uuid"
)

// =======================
// Request DTO
// =======================

type PeriodCreateDTO struct {
	PeriodCycleID   uuid.UUID `json:"period_cycle_id" validate:"required"`
	PeriodName      string    `json:"period_name" validate:"required,min=2,max=120"`
	PeriodStartDate time.Time `json:"period_start_date" validate:"required"`
	// gtefield keeps it in line with the DB CHECK (end >= start)
	PeriodEndDate time.Time `json:"period_end_date" validate:"required,gtefield=PeriodStartDate"`
}

type PeriodUpdateDTO struct {
	PeriodName      *string    `json:"period_name,omitempty" validate:"omitempty,min=2,max=120"`
	PeriodStartDate *time.Time `json:"period_start_date,omitempty"`
	PeriodEndDate   *time.Time `json:"period_end_date,omitempty"`
}

// =======================
// Response DTO
// =======================

type PeriodResponseDTO struct {
	PeriodID        uuid.UUID `json:"period_id"`
	PeriodCycleID   uuid.UUID `json:"period_cycle_id"`
	PeriodName      string    `json:"period_name"`
	PeriodStartDate time.Time `json:"period_start_date"`
	PeriodEndDate   time.Time `json:"period_end_date"`
	PeriodCreatedAt time.Time `json:"period_created_at"`
	PeriodUpdatedAt time.Time `json:"period_updated_at"`
}

// =======================
// Helpers
// =======================

func (p *PeriodCreateDTO) Normalize() {
	p.PeriodName = strings.TrimSpace(p.PeriodName)
}

func (p *PeriodCreateDTO) ToModel() model.PeriodModel {
	return model.PeriodModel{
		PeriodCycleID:   p.PeriodCycleID,
		PeriodName:      p.PeriodName,
		PeriodStartDate: p.PeriodStartDate,
		PeriodEndDate:   p.PeriodEndDate,
	}
}

func (u *PeriodUpdateDTO) ApplyUpdates(ent *model.PeriodModel) {
	if u.PeriodName != nil {
		ent.PeriodName = strings.TrimSpace(*u.PeriodName)
	}
	if u.PeriodStartDate != nil {
		ent.PeriodStartDate = *u.PeriodStartDate
	}
	if u.PeriodEndDate != nil {
		ent.PeriodEndDate = *u.PeriodEndDate
	}
}

func FromModel(ent model.PeriodModel) PeriodResponseDTO {
	return PeriodResponseDTO{
		PeriodID:        ent.PeriodID,
		PeriodCycleID:   ent.PeriodCycleID,
		PeriodName:      ent.PeriodName,
		PeriodStartDate: ent.PeriodStartDate,
		PeriodEndDate:   ent.PeriodEndDate,
		PeriodCreatedAt: ent.PeriodCreatedAt,
		PeriodUpdatedAt: ent.PeriodUpdatedAt,
	}
}

func FromModels(list []model.PeriodModel) []PeriodResponseDTO {
	out := make([]PeriodResponseDTO, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
