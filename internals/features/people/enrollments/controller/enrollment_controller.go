// file: internals/features/people/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "aula_backend/internals/features/people/enrollments/dto"
	model "aula_backend/internals/features/people/enrollments/model"
	helper "aula_backend/internals/helpers"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentController(db *gorm.DB, v *validator.Validate) *EnrollmentController {
	if v == nil {
		v = validator.New()
	}
	return &EnrollmentController{DB: db, Validator: v}
}

// POST /api/a/enrollments
func (ctl *EnrollmentController) Create(c *fiber.Ctx) error {
	var p dto.EnrollmentCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	// one enrollment per student per cycle
	var cnt int64
	if err := ctl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_student_id = ? AND enrollment_cycle_id = ?", p.EnrollmentStudentID, p.EnrollmentCycleID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check enrollment")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student already enrolled in this cycle")
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create enrollment")
	}
	return helper.JsonCreated(c, "Enrollment created", dto.FromModel(ent))
}

// GET /api/u/enrollments?student_id=&course_id=&cycle_id=&status=
func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.EnrollmentModel{})
	for param, column := range map[string]string{
		"student_id": "enrollment_student_id",
		"course_id":  "enrollment_course_id",
		"cycle_id":   "enrollment_cycle_id",
	} {
		id, err := helper.ParseUUIDQuery(c, param)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param)
		}
		if id != uuid.Nil {
			q = q.Where(column+" = ?", id)
		}
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("enrollment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count enrollments")
	}

	var rows []model.EnrollmentModel
	if err := q.
		Order("enrollment_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list enrollments")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

// GET /api/u/enrollments/:id
func (ctl *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "enrollment_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Enrollment not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

// PATCH /api/a/enrollments/:id
func (ctl *EnrollmentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.EnrollmentUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var ent model.EnrollmentModel
	if err := ctl.DB.First(&ent, "enrollment_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Enrollment not found")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update enrollment")
	}
	return helper.JsonUpdated(c, "Enrollment updated", dto.FromModel(ent))
}

// DELETE /api/a/enrollments/:id
func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.EnrollmentModel{}, "enrollment_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete enrollment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.JsonDeleted(c, "Enrollment deleted", fiber.Map{"enrollment_id": id})
}
