// file: internals/features/academics/evaluationtypes/controller/evaluation_type_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "aula_backend/internals/features/academics/evaluationtypes/dto"
	model "aula_backend/internals/features/academics/evaluationtypes/model"
	helper "aula_backend/internals/helpers"
)

type EvaluationTypeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEvaluationTypeController(db *gorm.DB, v *validator.Validate) *EvaluationTypeController {
	if v == nil {
		v = validator.New()
	}
	return &EvaluationTypeController{DB: db, Validator: v}
}

// POST /api/a/evaluation-types
func (ctl *EvaluationTypeController) Create(c *fiber.Ctx) error {
	var p dto.EvaluationTypeCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}
	p.Normalize()

	var cnt int64
	if err := ctl.DB.Model(&model.EvaluationTypeModel{}).
		Where("evaluation_type_name = ?", p.EvaluationTypeName).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check evaluation type")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Evaluation type already exists")
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create evaluation type")
	}
	return helper.JsonCreated(c, "Evaluation type created", dto.FromModel(ent))
}

// GET /api/u/evaluation-types
// Catalog order is creation order so the grade breakdown stays stable.
func (ctl *EvaluationTypeController) List(c *fiber.Ctx) error {
	var rows []model.EvaluationTypeModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Order("evaluation_type_created_at ASC, evaluation_type_id ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list evaluation types")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// GET /api/u/evaluation-types/:id
func (ctl *EvaluationTypeController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.EvaluationTypeModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "evaluation_type_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Evaluation type not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

// PATCH /api/a/evaluation-types/:id
func (ctl *EvaluationTypeController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.EvaluationTypeUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var ent model.EvaluationTypeModel
	if err := ctl.DB.First(&ent, "evaluation_type_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Evaluation type not found")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update evaluation type")
	}
	return helper.JsonUpdated(c, "Evaluation type updated", dto.FromModel(ent))
}

// DELETE /api/a/evaluation-types/:id
func (ctl *EvaluationTypeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EvaluationTypeModel{}, "evaluation_type_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete evaluation type")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Evaluation type not found")
	}
	return helper.JsonDeleted(c, "Evaluation type deleted", fiber.Map{"evaluation_type_id": id})
}
