// file: internals/features/performance/prediction/controller/prediction_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	enrollmentModel "aula_backend/internals/features/people/enrollments/model"
	aggService "aula_backend/internals/features/performance/aggregate/service"
	dto "aula_backend/internals/features/performance/prediction/dto"
	model "aula_backend/internals/features/performance/prediction/model"
	service "aula_backend/internals/features/performance/prediction/service"
	helper "aula_backend/internals/helpers"
)

type PredictionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Predictor *service.Predictor
	Predict   *service.PredictService
}

func NewPredictionController(db *gorm.DB, v *validator.Validate, predictor *service.Predictor) *PredictionController {
	if v == nil {
		v = validator.New()
	}
	return &PredictionController{
		DB:        db,
		Validator: v,
		Predictor: predictor,
		Predict:   service.NewPredictService(db, predictor),
	}
}

func (ctl *PredictionController) jsonPredictError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrModelNotLoaded):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Prediction model not loaded")
	case errors.As(err, &verr):
		return helper.JsonErrorWithDetails(c, fiber.StatusUnprocessableEntity, "Invalid prediction input",
			fiber.Map{verr.Field: verr.Message})
	case errors.Is(err, aggService.ErrPeriodNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Period not found")
	case errors.Is(err, aggService.ErrNotEnrolled):
		return helper.JsonError(c, fiber.StatusNotFound, "Student has no enrollment in this cycle")
	case errors.Is(err, aggService.ErrTeacherNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "No teacher assigned for this subject and course")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to produce prediction")
	}
}

/* ============================================
   MANUAL PREDICT (teacher)
   POST /api/t/predictions/manual
============================================ */

// PredictManual runs the model on raw features without persisting.
func (ctl *PredictionController) PredictManual(c *fiber.Ctx) error {
	var p dto.ManualPredictDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	pred, err := ctl.Predictor.Predict(p.ToInput())
	if err != nil {
		return ctl.jsonPredictError(c, err)
	}
	return helper.JsonOK(c, "Prediction produced", pred)
}

/* ============================================
   PREDICT FOR STUDENT (teacher)
   POST /api/t/predictions
============================================ */

// PredictStudent builds the features from stored grades, predicts and
// persists the outcome.
func (ctl *PredictionController) PredictStudent(c *fiber.Ctx) error {
	var p dto.StudentPredictDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	pred, row, err := ctl.Predict.PredictAndStore(c.UserContext(), p.StudentID, p.SubjectID, p.PeriodID)
	if err != nil {
		return ctl.jsonPredictError(c, err)
	}

	return helper.JsonOK(c, "Prediction stored", fiber.Map{
		"prediction": dto.FromModel(row),
		"detail":     pred,
	})
}

/* ============================================
   PREDICT PER COURSE (teacher)
   POST /api/t/predictions/course
============================================ */

func (ctl *PredictionController) PredictCourse(c *fiber.Ctx) error {
	var p dto.CoursePredictDTO
	if err := helper.BindAndValidate(c, ctl.Validator, &p); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonValidationError(c, err)
	}

	if !ctl.Predictor.Loaded() {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Prediction model not loaded")
	}

	cycleID, err := ctl.Predict.Inputs.Compute.Resolver.CycleForPeriod(c.UserContext(), p.PeriodID)
	if err != nil {
		return ctl.jsonPredictError(c, err)
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("enrollment_course_id = ? AND enrollment_cycle_id = ? AND enrollment_status = 'active'",
			p.CourseID, cycleID).
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list enrollments")
	}

	entries := make([]dto.CoursePredictEntryDTO, 0, len(enrollments))
	byCategory := map[string]int{}
	byRisk := map[string]int{}
	var forecastSum float64
	predicted := 0
	for _, enr := range enrollments {
		pred, row, err := ctl.Predict.PredictAndStore(c.UserContext(), enr.EnrollmentStudentID, p.SubjectID, p.PeriodID)
		if err != nil {
			msg := err.Error()
			entries = append(entries, dto.CoursePredictEntryDTO{
				StudentID: enr.EnrollmentStudentID,
				Error:     &msg,
			})
			continue
		}
		resp := dto.FromModel(row)
		entries = append(entries, dto.CoursePredictEntryDTO{
			StudentID:  enr.EnrollmentStudentID,
			Prediction: &resp,
		})
		byCategory[pred.Category]++
		byRisk[pred.RiskLevel]++
		forecastSum += pred.Forecast
		predicted++
	}

	var avgForecast float64
	if predicted > 0 {
		avgForecast = forecastSum / float64(predicted)
	}

	return helper.JsonOK(c, "Course predictions produced", fiber.Map{
		"course_id": p.CourseID,
		"predicted": predicted,
		"total":     len(enrollments),
		"distribution": fiber.Map{
			"average_forecast": avgForecast,
			"by_category":      byCategory,
			"by_risk_level":    byRisk,
		},
		"entries": entries,
	})
}

/* ============================================
   READS
   GET /api/u/predictions
   GET /api/u/predictions/:id
   GET /api/t/predictions/at-risk
============================================ */

func (ctl *PredictionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.PredictionModel{})
	for param, column := range map[string]string{
		"student_id": "prediction_student_id",
		"subject_id": "prediction_subject_id",
		"period_id":  "prediction_period_id",
	} {
		id, err := helper.ParseUUIDQuery(c, param)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param)
		}
		if id != uuid.Nil {
			q = q.Where(column+" = ?", id)
		}
	}
	if level := c.Query("risk_level"); level != "" {
		q = q.Where("prediction_risk_level = ?", level)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count predictions")
	}

	var rows []model.PredictionModel
	if err := q.
		Order("prediction_updated_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list predictions")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

func (ctl *PredictionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var ent model.PredictionModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&ent, "prediction_id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Prediction not found")
	}
	return helper.JsonOK(c, "OK", dto.FromModel(ent))
}

// AtRisk lists students whose latest prediction landed in the high or
// critical band, optionally narrowed to one band via ?risk_level=.
func (ctl *PredictionController) AtRisk(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 500)

	q := ctl.DB.WithContext(c.UserContext()).Model(&model.PredictionModel{})
	if level := c.Query("risk_level"); level != "" {
		q = q.Where("prediction_risk_level = ?", level)
	} else {
		q = q.Where("prediction_risk_level IN ?", []string{"high", "critical"})
	}
	if id, err := helper.ParseUUIDQuery(c, "subject_id"); err == nil && id != uuid.Nil {
		q = q.Where("prediction_subject_id = ?", id)
	}
	if id, err := helper.ParseUUIDQuery(c, "period_id"); err == nil && id != uuid.Nil {
		q = q.Where("prediction_period_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count at-risk predictions")
	}

	var rows []model.PredictionModel
	if err := q.
		Order("prediction_risk_points DESC, prediction_forecast ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list at-risk predictions")
	}

	return helper.JsonList(c, "OK", dto.FromModels(rows), helper.BuildPagination(total, paging, len(rows)))
}

/* ============================================
   MODEL LIFECYCLE
   GET /api/u/predictions/model/status
   POST /api/a/predictions/model/reload
============================================ */

func (ctl *PredictionController) ModelStatus(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", fiber.Map{
		"loaded": ctl.Predictor.Loaded(),
		"path":   ctl.Predictor.Path(),
	})
}

// ReloadModel swaps the artifact in place; requests already running
// keep the model they started with.
func (ctl *PredictionController) ReloadModel(c *fiber.Ctx) error {
	if err := ctl.Predictor.Reload(); err != nil {
		log.Printf("[ERROR] model reload failed: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Failed to reload prediction model")
	}
	log.Println("✅ Prediction model reloaded")
	return helper.JsonOK(c, "Prediction model reloaded", fiber.Map{
		"loaded": true,
		"path":   ctl.Predictor.Path(),
	})
}
