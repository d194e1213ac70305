// file: internals/features/people/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "aula_backend/internals/features/people/teachers/dto"
	model "aula_backend/internals/features/people/teachers/model"
	helper "aula_backend/internals/helpers"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	if v == nil {
		v = validator.New()
	}
	return &TeacherController{DB: db, Validator: v}
}

var teacherSortable = map[string]string{
	"created_at": "teacher_created_at",
	"last_name":  "teacher_last_name",
	"email":      "teacher_email",
}

// POST /api/a/teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var p dto.TeacherCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}
	p.Normalize()

	var cnt int64
	if err := ctl.DB.Model(&model.TeacherModel{}).
		Where("teacher_email = ?", p.TeacherEmail).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return helper.JsonCreated(c, "Teacher created", dto.FromModel(ent))
}

// GET /api/u/teachers?search=
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.TeacherModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("teacher_first_name ILIKE ? OR teacher_last_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}

	var rows []model.TeacherModel
	if err := q.
		Order(helper.SafeOrderClause(c, teacherSortable, "last_name")).
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list teachers")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

// GET /api/u/teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "teacher_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Teacher not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

// PATCH /api/a/teachers/:id
func (ctl *TeacherController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.TeacherUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var ent model.TeacherModel
	if err := ctl.DB.First(&ent, "teacher_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Teacher not found")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.JsonUpdated(c, "Teacher updated", dto.FromModel(ent))
}

// DELETE /api/a/teachers/:id
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.TeacherModel{}, "teacher_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"teacher_id": id})
}

/* ============================================
   Subject assignments (teacher_subjects)
============================================ */

// POST /api/a/teachers/:id/subjects
func (ctl *TeacherController) AssignSubject(c *fiber.Ctx) error {
	teacherID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.TeacherAssignSubjectDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var cnt int64
	if err := ctl.DB.Model(&model.TeacherModel{}).Where("teacher_id = ?", teacherID).Count(&cnt).Error; err != nil || cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	if err := ctl.DB.Model(&model.TeacherSubjectModel{}).
		Where("teacher_subject_teacher_id = ? AND teacher_subject_subject_id = ? AND teacher_subject_course_id = ?",
			teacherID, p.SubjectID, p.CourseID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check assignment")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Assignment already exists")
	}

	ent := model.TeacherSubjectModel{
		TeacherSubjectTeacherID: teacherID,
		TeacherSubjectSubjectID: p.SubjectID,
		TeacherSubjectCourseID:  p.CourseID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign subject")
	}
	return helper.JsonCreated(c, "Subject assigned", dto.FromTeacherSubject(ent))
}

// GET /api/u/teachers/:id/subjects
func (ctl *TeacherController) ListSubjects(c *fiber.Ctx) error {
	teacherID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var rows []model.TeacherSubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_subject_teacher_id = ?", teacherID).
		Order("teacher_subject_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list assignments")
	}

	out := make([]dto.TeacherSubjectResponseDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromTeacherSubject(r))
	}
	return helper.JsonOK(c, "OK", out)
}

// DELETE /api/a/teachers/:id/subjects/:assignment_id
func (ctl *TeacherController) UnassignSubject(c *fiber.Ctx) error {
	teacherID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	assignmentID, err := helper.ParseUUIDParam(c, "assignment_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment_id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_subject_id = ? AND teacher_subject_teacher_id = ?", assignmentID, teacherID).
		Delete(&model.TeacherSubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	return helper.JsonDeleted(c, "Assignment removed", fiber.Map{"teacher_subject_id": assignmentID})
}
