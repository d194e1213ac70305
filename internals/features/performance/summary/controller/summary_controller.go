// file: internals/features/performance/summary/controller/summary_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aula_backend/internals/constants"
	cycleModel "aula_backend/internals/features/academics/cycles/model"
	parentModel "aula_backend/internals/features/people/parents/model"
	aggModel "aula_backend/internals/features/performance/aggregate/model"
	predModel "aula_backend/internals/features/performance/prediction/model"
	helper "aula_backend/internals/helpers"
)

type SummaryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSummaryController(db *gorm.DB, v *validator.Validate) *SummaryController {
	if v == nil {
		v = validator.New()
	}
	return &SummaryController{DB: db, Validator: v}
}

// evaluationTypeSummary is one grouped row of the evaluations panel.
type evaluationTypeSummary struct {
	EvaluationTypeID   uuid.UUID `json:"evaluation_type_id"`
	EvaluationTypeName string    `json:"evaluation_type_name"`
	Records            int       `json:"records"`
	Average            float64   `json:"average"`
}

// canViewStudent enforces the read scope: students see themselves,
// parents see linked children, staff see everyone.
func (ctl *SummaryController) canViewStudent(c *fiber.Ctx, studentID uuid.UUID) (bool, error) {
	role := helper.GetRoleFromToken(c)
	switch role {
	case constants.RoleAdmin, constants.RoleTeacher:
		return true, nil
	case constants.RoleStudent:
		own, _ := c.Locals("student_id").(string)
		return own == studentID.String(), nil
	case constants.RoleParent:
		parentID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return false, err
		}
		var links int64
		err = ctl.DB.WithContext(c.UserContext()).
			Model(&parentModel.ParentStudentModel{}).
			Where("parent_student_parent_id = ? AND parent_student_student_id = ?", parentID, studentID).
			Count(&links).Error
		return links > 0, err
	default:
		return false, nil
	}
}

/* ============================================
   STUDENT DASHBOARD
   GET /api/u/summary/students/:id
============================================ */

// StudentSummary collects final grades, predictions and the per-type
// evaluation panel for one student, optionally narrowed to a period.
func (ctl *SummaryController) StudentSummary(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	periodID, err := helper.ParseUUIDQuery(c, "period_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid period_id")
	}

	allowed, err := ctl.canViewStudent(c, studentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check access")
	}
	if !allowed {
		return helper.JsonError(c, fiber.StatusForbidden, "You may only view your own summary")
	}

	ctx := c.UserContext()

	finalQ := ctl.DB.WithContext(ctx).
		Where("final_result_student_id = ?", studentID).
		Order("final_result_computed_at DESC")
	if periodID != uuid.Nil {
		finalQ = finalQ.Where("final_result_period_id = ?", periodID)
	}
	var finals []aggModel.FinalResultModel
	if err := finalQ.Find(&finals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load final results")
	}

	predQ := ctl.DB.WithContext(ctx).
		Where("prediction_student_id = ?", studentID).
		Order("prediction_updated_at DESC")
	if periodID != uuid.Nil {
		predQ = predQ.Where("prediction_period_id = ?", periodID)
	}
	var predictions []predModel.PredictionModel
	if err := predQ.Find(&predictions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load predictions")
	}

	evalQ := ctl.DB.WithContext(ctx).
		Table("evaluations").
		Select(`evaluation_types.evaluation_type_id,
			evaluation_types.evaluation_type_name,
			COUNT(*) AS records,
			ROUND(AVG(evaluations.evaluation_value), 2) AS average`).
		Joins("JOIN evaluation_types ON evaluation_types.evaluation_type_id = evaluations.evaluation_type_id").
		Where("evaluations.evaluation_student_id = ?", studentID).
		Where("evaluations.evaluation_deleted_at IS NULL").
		Where("evaluation_types.evaluation_type_deleted_at IS NULL").
		Group("evaluation_types.evaluation_type_id, evaluation_types.evaluation_type_name").
		Order("evaluation_types.evaluation_type_name ASC")
	if periodID != uuid.Nil {
		evalQ = evalQ.Where("evaluations.evaluation_period_id = ?", periodID)
	}
	var perType []evaluationTypeSummary
	if err := evalQ.Scan(&perType).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load evaluation summary")
	}

	// overall average across subjects for the scoped final results
	var overall float64
	if len(finals) > 0 {
		var sum float64
		for _, f := range finals {
			sum += f.FinalResultScore
		}
		overall = sum / float64(len(finals))
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"student_id":      studentID,
		"overall_average": overall,
		"final_results":   finals,
		"predictions":     predictions,
		"evaluations":     perType,
	})
}

/* ============================================
   COURSE DASHBOARD (teacher)
   GET /api/t/summary/courses/:id
============================================ */

// periodSummary is one row of the course dashboard.
type periodSummary struct {
	PeriodID             uuid.UUID `json:"period_id"`
	PeriodName           string    `json:"period_name"`
	AverageScore         *float64  `json:"average_score"`
	AttendanceRate       *float64  `json:"attendance_rate"`
	ParticipationAverage *float64  `json:"participation_average"`
	StudentsWithResults  int       `json:"students_with_results"`
}

// CourseSummary reports per-period averages for one subject of a
// course across a cycle.
func (ctl *SummaryController) CourseSummary(c *fiber.Ctx) error {
	courseID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	subjectID, err := helper.ParseUUIDQuery(c, "subject_id")
	if err != nil || subjectID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subject_id is required")
	}
	cycleID, err := helper.ParseUUIDQuery(c, "cycle_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid cycle_id")
	}

	ctx := c.UserContext()

	if cycleID == uuid.Nil {
		var active cycleModel.CycleModel
		if err := ctl.DB.WithContext(ctx).
			Where("cycle_is_active = TRUE").
			First(&active).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "No active cycle")
		}
		cycleID = active.CycleID
	}

	type periodRow struct {
		PeriodID   uuid.UUID
		PeriodName string
	}
	var periods []periodRow
	if err := ctl.DB.WithContext(ctx).
		Table("periods").
		Select("period_id, period_name").
		Where("period_cycle_id = ? AND period_deleted_at IS NULL", cycleID).
		Order("period_start_date ASC").
		Scan(&periods).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list periods")
	}

	rows := make([]periodSummary, 0, len(periods))
	var overallSum float64
	var overallCount int
	for _, per := range periods {
		row := periodSummary{PeriodID: per.PeriodID, PeriodName: per.PeriodName}

		type scoreAgg struct {
			Average  *float64
			Students int
		}
		var score scoreAgg
		if err := ctl.DB.WithContext(ctx).
			Table("final_results").
			Select("ROUND(AVG(final_result_score), 2) AS average, COUNT(*) AS students").
			Joins(`JOIN enrollments ON enrollments.enrollment_student_id = final_results.final_result_student_id
				AND enrollments.enrollment_course_id = ? AND enrollments.enrollment_cycle_id = ?
				AND enrollments.enrollment_deleted_at IS NULL`, courseID, cycleID).
			Where("final_result_subject_id = ? AND final_result_period_id = ?", subjectID, per.PeriodID).
			Where("final_result_deleted_at IS NULL").
			Scan(&score).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load score summary")
		}
		row.AverageScore = score.Average
		row.StudentsWithResults = score.Students
		if score.Average != nil {
			overallSum += *score.Average
			overallCount++
		}

		var attendance *float64
		if err := ctl.DB.WithContext(ctx).
			Table("evaluations").
			Select("ROUND(100.0 * COUNT(*) FILTER (WHERE evaluation_value >= 1) / COUNT(*), 2)").
			Joins(`JOIN evaluation_types ON evaluation_types.evaluation_type_id = evaluations.evaluation_type_id
				AND evaluation_types.evaluation_type_is_attendance = TRUE
				AND evaluation_types.evaluation_type_deleted_at IS NULL`).
			Joins(`JOIN enrollments ON enrollments.enrollment_student_id = evaluations.evaluation_student_id
				AND enrollments.enrollment_course_id = ? AND enrollments.enrollment_cycle_id = ?
				AND enrollments.enrollment_deleted_at IS NULL`, courseID, cycleID).
			Where("evaluations.evaluation_subject_id = ? AND evaluations.evaluation_period_id = ?", subjectID, per.PeriodID).
			Where("evaluations.evaluation_deleted_at IS NULL").
			Scan(&attendance).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance summary")
		}
		row.AttendanceRate = attendance

		var participation *float64
		if err := ctl.DB.WithContext(ctx).
			Table("evaluations").
			Select("ROUND(AVG(evaluation_value), 2)").
			Joins(`JOIN evaluation_types ON evaluation_types.evaluation_type_id = evaluations.evaluation_type_id
				AND evaluation_types.evaluation_type_is_attendance = FALSE
				AND LOWER(evaluation_types.evaluation_type_name) LIKE 'particip%'
				AND evaluation_types.evaluation_type_deleted_at IS NULL`).
			Joins(`JOIN enrollments ON enrollments.enrollment_student_id = evaluations.evaluation_student_id
				AND enrollments.enrollment_course_id = ? AND enrollments.enrollment_cycle_id = ?
				AND enrollments.enrollment_deleted_at IS NULL`, courseID, cycleID).
			Where("evaluations.evaluation_subject_id = ? AND evaluations.evaluation_period_id = ?", subjectID, per.PeriodID).
			Where("evaluations.evaluation_deleted_at IS NULL").
			Scan(&participation).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load participation summary")
		}
		row.ParticipationAverage = participation

		rows = append(rows, row)
	}

	var overall *float64
	if overallCount > 0 {
		avg := overallSum / float64(overallCount)
		overall = &avg
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"course_id":       courseID,
		"subject_id":      subjectID,
		"cycle_id":        cycleID,
		"overall_average": overall,
		"periods":         rows,
	})
}
