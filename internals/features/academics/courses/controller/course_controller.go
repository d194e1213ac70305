// file: internals/features/academics/courses/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "aula_backend/internals/features/academics/courses/dto"
	model "aula_backend/internals/features/academics/courses/model"
	subjectModel "aula_backend/internals/features/academics/subjects/model"
	helper "aula_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB, v *validator.Validate) *CourseController {
	if v == nil {
		v = validator.New()
	}
	return &CourseController{DB: db, Validator: v}
}

var courseSortable = map[string]string{
	"created_at": "course_created_at",
	"name":       "course_name",
	"level":      "course_level",
}

// POST /api/a/courses
func (ctl *CourseController) Create(c *fiber.Ctx) error {
	var p dto.CourseCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", dto.FromModel(ent))
}

// GET /api/u/courses?level=&shift=&search=
func (ctl *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.CourseModel{})
	if level := strings.TrimSpace(c.Query("level")); level != "" {
		q = q.Where("course_level = ?", level)
	}
	if shift := strings.TrimSpace(c.Query("shift")); shift != "" {
		q = q.Where("course_shift = ?", shift)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("course_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}

	var rows []model.CourseModel
	if err := q.
		Order(helper.SafeOrderClause(c, courseSortable, "name")).
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list courses")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

// GET /api/u/courses/:id
func (ctl *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.CourseModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "course_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Course not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

// PATCH /api/a/courses/:id
func (ctl *CourseController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.CourseUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var ent model.CourseModel
	if err := ctl.DB.First(&ent, "course_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Course not found")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Course updated", dto.FromModel(ent))
}

// DELETE /api/a/courses/:id
func (ctl *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.CourseModel{}, "course_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"course_id": id})
}

/* ============================================
   Study plan (course_subjects)
============================================ */

// POST /api/a/courses/:id/subjects
func (ctl *CourseController) AttachSubject(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.CourseAttachSubjectDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	// both ends must exist
	var cnt int64
	if err := ctl.DB.Model(&model.CourseModel{}).Where("course_id = ?", courseID).Count(&cnt).Error; err != nil || cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).Where("subject_id = ?", p.SubjectID).Count(&cnt).Error; err != nil || cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	if err := ctl.DB.Model(&model.CourseSubjectModel{}).
		Where("course_subject_course_id = ? AND course_subject_subject_id = ?", courseID, p.SubjectID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check study plan")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Subject already attached to course")
	}

	ent := model.CourseSubjectModel{
		CourseSubjectCourseID:  courseID,
		CourseSubjectSubjectID: p.SubjectID,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to attach subject")
	}
	return helper.JsonCreated(c, "Subject attached", dto.FromCourseSubject(ent))
}

// GET /api/u/courses/:id/subjects
func (ctl *CourseController) ListSubjects(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var rows []subjectModel.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Joins("JOIN course_subjects cs ON cs.course_subject_subject_id = subjects.subject_id AND cs.course_subject_deleted_at IS NULL").
		Where("cs.course_subject_course_id = ?", courseID).
		Order("subjects.subject_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list course subjects")
	}
	return helper.JsonOK(c, "OK", rows)
}

// DELETE /api/a/courses/:id/subjects/:subject_id
func (ctl *CourseController) DetachSubject(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	subjectID, err := helper.ParseUUIDParam(c, "subject_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Where("course_subject_course_id = ? AND course_subject_subject_id = ?", courseID, subjectID).
		Delete(&model.CourseSubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to detach subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not attached to course")
	}
	return helper.JsonDeleted(c, "Subject detached", fiber.Map{
		"course_id":  courseID,
		"subject_id": subjectID,
	})
}
