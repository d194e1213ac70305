// file: internals/features/performance/aggregate/controller/final_result_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "aula_backend/internals/features/academics/courses/model"
	periodModel "aula_backend/internals/features/academics/periods/model"
	enrollmentModel "aula_backend/internals/features/people/enrollments/model"
	dto "aula_backend/internals/features/performance/aggregate/dto"
	model "aula_backend/internals/features/performance/aggregate/model"
	service "aula_backend/internals/features/performance/aggregate/service"
	helper "aula_backend/internals/helpers"
)

type FinalResultController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Compute   *service.ComputeService
}

func NewFinalResultController(db *gorm.DB, v *validator.Validate) *FinalResultController {
	if v == nil {
		v = validator.New()
	}
	return &FinalResultController{
		DB:        db,
		Validator: v,
		Compute:   service.NewComputeService(db),
	}
}

func computeErrStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrPeriodNotFound):
		return fiber.StatusNotFound, "Period not found"
	case errors.Is(err, service.ErrNotEnrolled):
		return fiber.StatusNotFound, "Student has no enrollment in this cycle"
	case errors.Is(err, service.ErrTeacherNotFound):
		return fiber.StatusNotFound, "No teacher assigned for this subject and course"
	default:
		return fiber.StatusInternalServerError, "Failed to compute final grade"
	}
}

/* ============================================
   COMPUTE (teacher)
   POST /api/t/final-results/compute
============================================ */

func (ctl *FinalResultController) ComputeOne(c *fiber.Ctx) error {
	var p dto.ComputeRequestDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	res, ent, err := ctl.Compute.ComputeAndStore(c.UserContext(), p.StudentID, p.SubjectID, p.PeriodID)
	if err != nil {
		code, msg := computeErrStatus(err)
		return helper.JsonError(c, code, msg)
	}

	return helper.JsonOK(c, "Final grade computed", dto.ComputeOutcomeDTO{
		Result:      dto.FromModel(ent),
		Computation: res,
	})
}

/* ============================================
   COMPUTE PER COURSE (teacher)
   POST /api/t/final-results/compute/course
============================================ */

func (ctl *FinalResultController) ComputeCourse(c *fiber.Ctx) error {
	var p dto.ComputeCourseRequestDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	cycleID, err := ctl.Compute.Resolver.CycleForPeriod(c.UserContext(), p.PeriodID)
	if err != nil {
		code, msg := computeErrStatus(err)
		return helper.JsonError(c, code, msg)
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("enrollment_course_id = ? AND enrollment_cycle_id = ? AND enrollment_status = 'active'",
			p.CourseID, cycleID).
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list enrollments")
	}

	entries := make([]dto.CourseComputeEntryDTO, 0, len(enrollments))
	computed := 0
	for _, enr := range enrollments {
		_, ent, err := ctl.Compute.ComputeAndStore(c.UserContext(), enr.EnrollmentStudentID, p.SubjectID, p.PeriodID)
		if err != nil {
			msg := err.Error()
			entries = append(entries, dto.CourseComputeEntryDTO{
				StudentID: enr.EnrollmentStudentID,
				Error:     &msg,
			})
			continue
		}
		resp := dto.FromModel(ent)
		entries = append(entries, dto.CourseComputeEntryDTO{
			StudentID: enr.EnrollmentStudentID,
			Result:    &resp,
		})
		computed++
	}

	return helper.JsonOK(c, "Course final grades computed", fiber.Map{
		"course_id": p.CourseID,
		"computed":  computed,
		"total":     len(enrollments),
		"entries":   entries,
	})
}

// subjectsForStudent resolves the student's enrollment in the cycle and
// returns the subject ids attached to their course.
func (ctl *FinalResultController) subjectsForStudent(c *fiber.Ctx, studentID, cycleID uuid.UUID) ([]uuid.UUID, error) {
	var enr enrollmentModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("enrollment_student_id = ? AND enrollment_cycle_id = ?", studentID, cycleID).
		First(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotEnrolled
		}
		return nil, err
	}

	var subjectIDs []uuid.UUID
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&courseModel.CourseSubjectModel{}).
		Where("course_subject_course_id = ?", enr.EnrollmentCourseID).
		Pluck("course_subject_subject_id", &subjectIDs).Error; err != nil {
		return nil, err
	}
	return subjectIDs, nil
}

func (ctl *FinalResultController) computeSubjects(c *fiber.Ctx, studentID uuid.UUID, subjectIDs []uuid.UUID, periodIDs []uuid.UUID) ([]dto.SubjectComputeEntryDTO, int) {
	entries := make([]dto.SubjectComputeEntryDTO, 0, len(subjectIDs)*len(periodIDs))
	computed := 0
	for _, periodID := range periodIDs {
		for _, subjectID := range subjectIDs {
			_, ent, err := ctl.Compute.ComputeAndStore(c.UserContext(), studentID, subjectID, periodID)
			if err != nil {
				msg := err.Error()
				entries = append(entries, dto.SubjectComputeEntryDTO{
					SubjectID: subjectID,
					PeriodID:  periodID,
					Error:     &msg,
				})
				continue
			}
			resp := dto.FromModel(ent)
			entries = append(entries, dto.SubjectComputeEntryDTO{
				SubjectID: subjectID,
				PeriodID:  periodID,
				Result:    &resp,
			})
			computed++
		}
	}
	return entries, computed
}

/* ============================================
   COMPUTE PER STUDENT (teacher)
   POST /api/t/final-results/compute/student
============================================ */

// ComputeStudent recomputes every subject of the student's course for
// one period.
func (ctl *FinalResultController) ComputeStudent(c *fiber.Ctx) error {
	var p dto.ComputeStudentRequestDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	cycleID, err := ctl.Compute.Resolver.CycleForPeriod(c.UserContext(), p.PeriodID)
	if err != nil {
		code, msg := computeErrStatus(err)
		return helper.JsonError(c, code, msg)
	}
	subjectIDs, err := ctl.subjectsForStudent(c, p.StudentID, cycleID)
	if err != nil {
		code, msg := computeErrStatus(err)
		return helper.JsonError(c, code, msg)
	}

	entries, computed := ctl.computeSubjects(c, p.StudentID, subjectIDs, []uuid.UUID{p.PeriodID})
	return helper.JsonOK(c, "Student final grades computed", fiber.Map{
		"student_id": p.StudentID,
		"computed":   computed,
		"total":      len(entries),
		"entries":    entries,
	})
}

/* ============================================
   COMPUTE PER STUDENT AND CYCLE (teacher)
   POST /api/t/final-results/compute/student/cycle
============================================ */

// ComputeStudentCycle recomputes every subject across every period of
// the cycle.
func (ctl *FinalResultController) ComputeStudentCycle(c *fiber.Ctx) error {
	var p dto.ComputeStudentCycleRequestDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var periods []periodModel.PeriodModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("period_cycle_id = ?", p.CycleID).
		Order("period_start_date ASC").
		Find(&periods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list periods")
	}
	if len(periods) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cycle has no periods")
	}

	subjectIDs, err := ctl.subjectsForStudent(c, p.StudentID, p.CycleID)
	if err != nil {
		code, msg := computeErrStatus(err)
		return helper.JsonError(c, code, msg)
	}

	periodIDs := make([]uuid.UUID, 0, len(periods))
	for _, per := range periods {
		periodIDs = append(periodIDs, per.PeriodID)
	}

	entries, computed := ctl.computeSubjects(c, p.StudentID, subjectIDs, periodIDs)
	return helper.JsonOK(c, "Cycle final grades computed", fiber.Map{
		"student_id": p.StudentID,
		"cycle_id":   p.CycleID,
		"computed":   computed,
		"total":      len(entries),
		"entries":    entries,
	})
}

/* ============================================
   MANUAL CRUD (teacher)
   POST   /api/t/final-results
   PATCH  /api/t/final-results/:id
   DELETE /api/t/final-results/:id
============================================ */

// Create records a grade by hand. The row shares the natural key with
// computed rows, so a later recompute simply overwrites it.
func (ctl *FinalResultController) Create(c *fiber.Ctx) error {
	var p dto.FinalResultCreateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	ent := p.ToModel()
	if err := ctl.DB.WithContext(c.UserContext()).Create(&ent).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict,
				"A final result already exists for this student, subject and period")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create final result")
	}
	return helper.JsonCreated(c, "Final result created", dto.FromModel(ent))
}

func (ctl *FinalResultController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var p dto.FinalResultUpdateDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	var ent model.FinalResultModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "final_result_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Final result not found")
	}

	p.ApplyUpdates(&ent)
	if err := ctl.DB.WithContext(c.UserContext()).Save(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update final result")
	}
	return helper.JsonUpdated(c, "Final result updated", dto.FromModel(ent))
}

func (ctl *FinalResultController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.UserContext()).
		Delete(&model.FinalResultModel{}, "final_result_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete final result")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Final result not found")
	}
	return helper.JsonDeleted(c, "Final result deleted", fiber.Map{"final_result_id": id})
}

/* ============================================
   READS
   GET /api/u/final-results
   GET /api/u/final-results/:id
============================================ */

func (ctl *FinalResultController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.FinalResultModel{})
	for param, column := range map[string]string{
		"student_id": "final_result_student_id",
		"subject_id": "final_result_subject_id",
		"period_id":  "final_result_period_id",
	} {
		id, err := helper.ParseUUIDQuery(c, param)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param)
		}
		if id != uuid.Nil {
			q = q.Where(column+" = ?", id)
		}
	}

	// cycle scope spans the cycle's periods
	cycleID, err := helper.ParseUUIDQuery(c, "cycle_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cycle_id")
	}
	if cycleID != uuid.Nil {
		q = q.Where("final_result_period_id IN (?)",
			ctl.DB.Model(&periodModel.PeriodModel{}).
				Select("period_id").
				Where("period_cycle_id = ?", cycleID))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count final results")
	}

	var rows []model.FinalResultModel
	if err := q.
		Order("final_result_computed_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list final results")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

func (ctl *FinalResultController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.FinalResultModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "final_result_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Final result not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}
