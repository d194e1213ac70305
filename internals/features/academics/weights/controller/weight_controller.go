// file: internals/features/academics/weights/controller/weight_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "aula_backend/internals/features/academics/weights/dto"
	model "aula_backend/internals/features/academics/weights/model"
	helper "aula_backend/internals/helpers"
)

type WeightController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewWeightController(db *gorm.DB, v *validator.Validate) *WeightController {
	if v == nil {
		v = validator.New()
	}
	return &WeightController{DB: db, Validator: v}
}

// teacherScope restricts non-admin callers to their own teacher_id.
func teacherScope(c *fiber.Ctx, requested uuid.UUID) (uuid.UUID, error) {
	if helper.GetRoleFromToken(c) == "admin" {
		return requested, nil
	}
	own, ok := c.Locals("teacher_id").(string)
	if !ok || own == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No teacher profile linked to this account")
	}
	ownID, err := uuid.Parse(own)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Invalid teacher profile")
	}
	if requested != uuid.Nil && requested != ownID {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Teachers may only manage their own weights")
	}
	return ownID, nil
}

// PUT /api/t/weights
// Upsert on the (teacher, subject, cycle, type) natural key.
func (ctl *WeightController) Set(c *fiber.Ctx) error {
	var p dto.WeightSetDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	teacherID, err := teacherScope(c, p.WeightTeacherID)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}
	p.WeightTeacherID = teacherID

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "weight_teacher_id"},
				{Name: "weight_subject_id"},
				{Name: "weight_cycle_id"},
				{Name: "weight_evaluation_type_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"weight_percentage", "weight_updated_at"}),
		}).
		Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save weight")
	}

	// re-read so the response carries the surviving row's id and timestamps
	if err := ctl.DB.
		Where("weight_teacher_id = ? AND weight_subject_id = ? AND weight_cycle_id = ? AND weight_evaluation_type_id = ?",
			ent.WeightTeacherID, ent.WeightSubjectID, ent.WeightCycleID, ent.WeightEvaluationTypeID).
		First(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load saved weight")
	}
	return helper.JsonOK(c, "Weight saved", dto.FromModel(ent))
}

// GET /api/t/weights?teacher_id=&subject_id=&cycle_id=
func (ctl *WeightController) List(c *fiber.Ctx) error {
	requested, err := helper.ParseUUIDQuery(c, "teacher_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id")
	}
	teacherID, err := teacherScope(c, requested)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.WeightModel{})
	if teacherID != uuid.Nil {
		q = q.Where("weight_teacher_id = ?", teacherID)
	}
	if subjectID, err := helper.ParseUUIDQuery(c, "subject_id"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
	} else if subjectID != uuid.Nil {
		q = q.Where("weight_subject_id = ?", subjectID)
	}
	if cycleID, err := helper.ParseUUIDQuery(c, "cycle_id"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cycle_id")
	} else if cycleID != uuid.Nil {
		q = q.Where("weight_cycle_id = ?", cycleID)
	}

	var rows []model.WeightModel
	if err := q.Order("weight_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list weights")
	}
	return helper.JsonOK(c, "OK", dto.FromModels(rows))
}

// DELETE /api/t/weights/:id
func (ctl *WeightController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.WeightModel
	if err := ctl.DB.First(&ent, "weight_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Weight not found")
	}

	if _, err := teacherScope(c, ent.WeightTeacherID); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete weight")
	}
	return helper.JsonDeleted(c, "Weight deleted", fiber.Map{"weight_id": id})
}
