// file: internals/features/people/parents/controller/parent_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "aula_backend/internals/features/people/parents/dto"
	model "aula_backend/internals/features/people/parents/model"
	studentModel "aula_backend/internals/features/people/students/model"
	helper "aula_backend/internals/helpers"
)

type ParentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewParentController(db *gorm.DB, v *validator.Validate) *ParentController {
	if v == nil {
		v = validator.New()
	}
	return &ParentController{DB: db, Validator: v}
}

// POST /api/a/parents
func (ctl *ParentController) Create(c *fiber.Ctx) error {
	var p dto.ParentCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}
	p.Normalize()

	var cnt int64
	if err := ctl.DB.Model(&model.ParentModel{}).
		Where("parent_email = ?", p.ParentEmail).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parent")
	}
	return helper.JsonCreated(c, "Parent created", dto.FromModel(ent))
}

// GET /api/a/parents?search=
func (ctl *ParentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.ParentModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("parent_first_name ILIKE ? OR parent_last_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count parents")
	}

	var rows []model.ParentModel
	if err := q.
		Order("parent_last_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list parents")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

// GET /api/a/parents/:id
func (ctl *ParentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.ParentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "parent_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Parent not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

// PATCH /api/a/parents/:id
func (ctl *ParentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.ParentUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var ent model.ParentModel
	if err := ctl.DB.First(&ent, "parent_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Parent not found")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update parent")
	}
	return helper.JsonUpdated(c, "Parent updated", dto.FromModel(ent))
}

// DELETE /api/a/parents/:id
func (ctl *ParentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.ParentModel{}, "parent_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete parent")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
	}
	return helper.JsonDeleted(c, "Parent deleted", fiber.Map{"parent_id": id})
}

/* ============================================
   Children links (parent_students)
============================================ */

// POST /api/a/parents/:id/students
func (ctl *ParentController) LinkStudent(c *fiber.Ctx) error {
	parentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.ParentLinkStudentDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var cnt int64
	if err := ctl.DB.Model(&model.ParentModel{}).Where("parent_id = ?", parentID).Count(&cnt).Error; err != nil || cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Parent not found")
	}
	if err := ctl.DB.Model(&studentModel.StudentModel{}).Where("student_id = ?", p.StudentID).Count(&cnt).Error; err != nil || cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	if err := ctl.DB.Model(&model.ParentStudentModel{}).
		Where("parent_student_parent_id = ? AND parent_student_student_id = ?", parentID, p.StudentID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check link")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Student already linked")
	}

	relationship := "guardian"
	if p.Relationship != nil {
		relationship = *p.Relationship
	}
	ent := model.ParentStudentModel{
		ParentStudentParentID:     parentID,
		ParentStudentStudentID:    p.StudentID,
		ParentStudentRelationship: relationship,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link student")
	}
	return helper.JsonCreated(c, "Student linked", dto.FromParentStudent(ent))
}

// GET /api/a/parents/:id/students
func (ctl *ParentController) ListStudents(c *fiber.Ctx) error {
	parentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var rows []studentModel.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Joins("JOIN parent_students ps ON ps.parent_student_student_id = students.student_id AND ps.parent_student_deleted_at IS NULL").
		Where("ps.parent_student_parent_id = ?", parentID).
		Order("students.student_last_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list children")
	}
	return helper.JsonOK(c, "OK", rows)
}

// DELETE /api/a/parents/:id/students/:student_id
func (ctl *ParentController) UnlinkStudent(c *fiber.Ctx) error {
	parentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("parent_student_parent_id = ? AND parent_student_student_id = ?", parentID, studentID).
		Delete(&model.ParentStudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to unlink student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Link not found")
	}
	return helper.JsonDeleted(c, "Student unlinked", fiber.Map{
		"parent_id":  parentID,
		"student_id": studentID,
	})
}
