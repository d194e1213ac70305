// file: internals/features/academics/periods/controller/period_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cycleModel "aula_backend/internals/features/academics/cycles/model"
	dto "aula_backend/internals/features/academics/periods/dto"
	model "aula_backend/internals/features/academics/periods/model"
	helper "aula_backend/internals/helpers"
)

type PeriodController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPeriodController(db *gorm.DB, v *validator.Validate) *PeriodController {
	if v == nil {
		v = validator.New()
	}
	return &PeriodController{DB: db, Validator: v}
}

var periodSortable = map[string]string{
	"created_at": "period_created_at",
	"start_date": "period_start_date",
	"name":       "period_name",
}

// POST /api/a/periods
func (ctl *PeriodController) Create(c *fiber.Ctx) error {
	var p dto.PeriodCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}
	p.Normalize()

	// parent cycle must exist
	var cnt int64
	if err := ctl.DB.Model(&cycleModel.CycleModel{}).
		Where("cycle_id = ?", p.PeriodCycleID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check cycle")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cycle not found")
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create period")
	}
	return helper.JsonCreated(c, "Period created", dto.FromModel(ent))
}

// GET /api/u/periods?cycle_id=
func (ctl *PeriodController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.PeriodModel{})
	cycleID, err := helper.ParseUUIDQuery(c, "cycle_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cycle_id")
	}
	if cycleID != uuid.Nil {
		q = q.Where("period_cycle_id = ?", cycleID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count periods")
	}

	var rows []model.PeriodModel
	if err := q.
		Order(helper.SafeOrderClause(c, periodSortable, "start_date")).
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list periods")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

// GET /api/u/periods/:id
func (ctl *PeriodController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.PeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "period_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Period not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

// PATCH /api/a/periods/:id
func (ctl *PeriodController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.PeriodUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var ent model.PeriodModel
	if err := ctl.DB.First(&ent, "period_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Period not found")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update period")
	}
	return helper.JsonUpdated(c, "Period updated", dto.FromModel(ent))
}

// DELETE /api/a/periods/:id
func (ctl *PeriodController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.PeriodModel{}, "period_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete period")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Period not found")
	}
	return helper.JsonDeleted(c, "Period deleted", fiber.Map{"period_id": id})
}
