// file: internals/features/evaluations/controller/evaluation_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "aula_backend/internals/features/evaluations/dto"
	model "aula_backend/internals/features/evaluations/model"
	helper "aula_backend/internals/helpers"
)

type EvaluationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEvaluationController(db *gorm.DB, v *validator.Validate) *EvaluationController {
	if v == nil {
		v = validator.New()
	}
	return &EvaluationController{DB: db, Validator: v}
}

// teacherFromToken resolves the teacher profile of the caller. Admins
// may impersonate via ?teacher_id=.
func (ctl *EvaluationController) teacherFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if helper.GetRoleFromToken(c) == "admin" {
		if id, err := helper.ParseUUIDQuery(c, "teacher_id"); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	raw, ok := c.Locals("teacher_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No teacher profile linked to this account")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Invalid teacher profile")
	}
	return id, nil
}

// POST /api/t/evaluations
func (ctl *EvaluationController) Create(c *fiber.Ctx) error {
	var p dto.EvaluationCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	teacherID, err := ctl.teacherFromToken(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	ent := p.ToModel(teacherID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record evaluation")
	}
	return helper.JsonCreated(c, "Evaluation recorded", dto.FromModel(ent))
}

// POST /api/t/evaluations/bulk
// Roll-call: one row per student, all inside one transaction so a bad
// entry rolls everything back.
func (ctl *EvaluationController) CreateBulk(c *fiber.Ctx) error {
	var p dto.BulkRollCallDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	teacherID, err := ctl.teacherFromToken(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
	}

	date := time.Now().UTC()
	if p.EvaluationDate != nil {
		date = *p.EvaluationDate
	}

	rows := make([]model.EvaluationModel, 0, len(p.Entries))
	for _, e := range p.Entries {
		rows = append(rows, model.EvaluationModel{
			EvaluationStudentID: e.StudentID,
			EvaluationSubjectID: p.EvaluationSubjectID,
			EvaluationPeriodID:  p.EvaluationPeriodID,
			EvaluationTypeID:    p.EvaluationTypeID,
			EvaluationTeacherID: teacherID,
			EvaluationValue:     *e.Value,
			EvaluationDate:      date,
		})
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record roll call")
	}

	return helper.JsonCreated(c, "Roll call recorded", fiber.Map{
		"count":       len(rows),
		"evaluations": dto.FromModels(rows),
	})
}

// GET /api/u/evaluations?student_id=&subject_id=&period_id=&type_id=
func (ctl *EvaluationController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.EvaluationModel{})
	for param, column := range map[string]string{
		"student_id": "evaluation_student_id",
		"subject_id": "evaluation_subject_id",
		"period_id":  "evaluation_period_id",
		"type_id":    "evaluation_type_id",
		"teacher_id": "evaluation_teacher_id",
	} {
		id, err := helper.ParseUUIDQuery(c, param)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param)
		}
		if id != uuid.Nil {
			q = q.Where(column+" = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count evaluations")
	}

	var rows []model.EvaluationModel
	if err := q.
		Order("evaluation_date DESC, evaluation_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list evaluations")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

// GET /api/u/evaluations/:id
func (ctl *EvaluationController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.EvaluationModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "evaluation_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Evaluation not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

// PATCH /api/t/evaluations/:id
// Teachers may only touch rows they recorded.
func (ctl *EvaluationController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.EvaluationUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var ent model.EvaluationModel
	if err := ctl.DB.First(&ent, "evaluation_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Evaluation not found")
	}

	if helper.GetRoleFromToken(c) != "admin" {
		teacherID, err := ctl.teacherFromToken(c)
		if err != nil || ent.EvaluationTeacherID != teacherID {
			return helper.JsonError(c, fiber.StatusForbidden, "Teachers may only edit their own evaluations")
		}
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update evaluation")
	}
	return helper.JsonUpdated(c, "Evaluation updated", dto.FromModel(ent))
}

// DELETE /api/t/evaluations/:id
func (ctl *EvaluationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.EvaluationModel
	if err := ctl.DB.First(&ent, "evaluation_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Evaluation not found")
	}

	if helper.GetRoleFromToken(c) != "admin" {
		teacherID, err := ctl.teacherFromToken(c)
		if err != nil || ent.EvaluationTeacherID != teacherID {
			return helper.JsonError(c, fiber.StatusForbidden, "Teachers may only delete their own evaluations")
		}
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete evaluation")
	}
	return helper.JsonDeleted(c, "Evaluation deleted", fiber.Map{"evaluation_id": id})
}
