// file: internals/features/academics/cycles/controller/cycle_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "aula_backend/internals/features/academics/cycles/dto"
	model "aula_backend/internals/features/academics/cycles/model"
	helper "aula_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type CycleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCycleController(db *gorm.DB, v *validator.Validate) *CycleController {
	if v == nil {
		v = validator.New()
	}
	return &CycleController{DB: db, Validator: v}
}

var cycleSortable = map[string]string{
	"created_at": "cycle_created_at",
	"year":       "cycle_year",
}

/* ============================================
   CREATE (admin)
   POST /api/a/cycles
============================================ */

func (ctl *CycleController) Create(c *fiber.Ctx) error {
	var p dto.CycleCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}
	p.Normalize()

	// year is the natural key
	var cnt int64
	if err := ctl.DB.Model(&model.CycleModel{}).
		Where("cycle_year = ?", p.CycleYear).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check cycle year")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Cycle year already exists")
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create cycle")
	}
	return helper.JsonCreated(c, "Cycle created", dto.FromModel(ent))
}

/* ============================================
   LIST / GET
   GET /api/u/cycles
   GET /api/u/cycles/active
   GET /api/u/cycles/:id
============================================ */

func (ctl *CycleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.CycleModel{})
	if year := strings.TrimSpace(c.Query("year")); year != "" {
		q = q.Where("cycle_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count cycles")
	}

	var rows []model.CycleModel
	if err := q.
		Order(helper.SafeOrderClause(c, cycleSortable, "year")).
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list cycles")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

func (ctl *CycleController) GetActive(c *fiber.Ctx) error {
	var ent model.CycleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("cycle_is_active = TRUE").
		First(&ent).Error; err != nil {
		return helper.JsonDBError(c, err, "No active cycle")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

func (ctl *CycleController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.CycleModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "cycle_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Cycle not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

/* ============================================
   PATCH (admin)
   PATCH /api/a/cycles/:id
============================================ */

func (ctl *CycleController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.CycleUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var ent model.CycleModel
	if err := ctl.DB.First(&ent, "cycle_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Cycle not found")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update cycle")
	}
	return helper.JsonUpdated(c, "Cycle updated", dto.FromModel(ent))
}

/* ============================================
   ACTIVATE (admin)
   POST /api/a/cycles/:id/activate
   Deactivates every other cycle in the same transaction.
============================================ */

func (ctl *CycleController) Activate(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.CycleModel
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ent, "cycle_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.CycleModel{}).
			Where("cycle_id <> ?", id).
			Update("cycle_is_active", false).Error; err != nil {
			return err
		}
		ent.CycleIsActive = true
		return tx.Save(&ent).Error
	})
	if txErr != nil {
		return helper.JsonDBError(c, txErr, "Cycle not found")
	}
	return helper.JsonUpdated(c, "Cycle activated", dto.FromModel(ent))
}

/* ============================================
   DELETE (admin, soft)
   DELETE /api/a/cycles/:id
============================================ */

func (ctl *CycleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.CycleModel{}, "cycle_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete cycle")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cycle not found")
	}
	return helper.JsonDeleted(c, "Cycle deleted", fiber.Map{"cycle_id": id})
}
