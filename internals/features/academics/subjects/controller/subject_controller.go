// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "aula_backend/internals/features/academics/subjects/dto"
	model "aula_backend/internals/features/academics/subjects/model"
	helper "aula_backend/internals/helpers"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	if v == nil {
		v = validator.New()
	}
	return &SubjectController{DB: db, Validator: v}
}

var subjectSortable = map[string]string{
	"created_at": "subject_created_at",
	"name":       "subject_name",
	"code":       "subject_code",
}

// POST /api/a/subjects
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var p dto.SubjectCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}
	p.Normalize()

	if p.SubjectCode != nil && strings.TrimSpace(*p.SubjectCode) != "" {
		var cnt int64
		if err := ctl.DB.Model(&model.SubjectModel{}).
			Where("subject_code = ?", strings.ToUpper(strings.TrimSpace(*p.SubjectCode))).
			Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subject code")
		}
		if cnt > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Subject code already in use")
		}
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created", dto.FromModel(ent))
}

// GET /api/u/subjects?search=
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.SubjectModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("subject_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count subjects")
	}

	var rows []model.SubjectModel
	if err := q.
		Order(helper.SafeOrderClause(c, subjectSortable, "name")).
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list subjects")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

// GET /api/u/subjects/:id
func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "subject_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Subject not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

// PATCH /api/a/subjects/:id
func (ctl *SubjectController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.SubjectUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var ent model.SubjectModel
	if err := ctl.DB.First(&ent, "subject_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Subject not found")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonUpdated(c, "Subject updated", dto.FromModel(ent))
}

// DELETE /api/a/subjects/:id
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).Delete(&model.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{"subject_id": id})
}
