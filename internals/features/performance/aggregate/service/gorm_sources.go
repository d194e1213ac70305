// file: internals/features/performance/aggregate/service/gorm_sources.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	evalTypeModel "aula_backend/internals/features/academics/evaluationtypes/model"
	periodModel "aula_backend/internals/features/academics/periods/model"
	evaluationModel "aula_backend/internals/features/evaluations/model"
	enrollmentModel "aula_backend/internals/features/people/enrollments/model"
	teacherModel "aula_backend/internals/features/people/teachers/model"
)

var (
	ErrPeriodNotFound  = errors.New("period not found")
	ErrTeacherNotFound = errors.New("no teacher assigned for this subject and course")
	ErrNotEnrolled     = errors.New("student has no enrollment in this cycle")
)

/* ============================================
   GORM-backed sources
============================================ */

type GormTypeCatalog struct {
	DB *gorm.DB
}

func (s *GormTypeCatalog) ListTypes(ctx context.Context) ([]TypeInfo, error) {
	var rows []evalTypeModel.EvaluationTypeModel
	if err := s.DB.WithContext(ctx).
		Order("evaluation_type_created_at ASC, evaluation_type_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]TypeInfo, 0, len(rows))
	for _, r := range rows {
		out = append(out, TypeInfo{
			ID:           r.EvaluationTypeID,
			Name:         r.EvaluationTypeName,
			IsAttendance: r.EvaluationTypeIsAttendance,
		})
	}
	return out, nil
}

type GormScoreSource struct {
	DB *gorm.DB
}

func (s *GormScoreSource) ListValues(ctx context.Context, studentID, subjectID, periodID, typeID uuid.UUID) ([]float64, error) {
	var values []float64
	if err := s.DB.WithContext(ctx).
		Model(&evaluationModel.EvaluationModel{}).
		Where("evaluation_student_id = ? AND evaluation_subject_id = ? AND evaluation_period_id = ? AND evaluation_type_id = ?",
			studentID, subjectID, periodID, typeID).
		Order("evaluation_date ASC, evaluation_created_at ASC").
		Pluck("evaluation_value", &values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

/* ============================================
   Context resolution
============================================ */

// Resolver walks the schema from a (student, subject, period) triple to
// the cycle and responsible teacher the weight policy is keyed by.
type Resolver struct {
	DB *gorm.DB
}

// CycleForPeriod returns the owning cycle of a period.
func (r *Resolver) CycleForPeriod(ctx context.Context, periodID uuid.UUID) (uuid.UUID, error) {
	var p periodModel.PeriodModel
	if err := r.DB.WithContext(ctx).First(&p, "period_id = ?", periodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrPeriodNotFound
		}
		return uuid.Nil, err
	}
	return p.PeriodCycleID, nil
}

// TeacherForStudentSubject finds the teacher responsible for a subject
// taught to the student: enrollment gives the course for the cycle, the
// teacher_subjects assignment gives the teacher for (course, subject).
func (r *Resolver) TeacherForStudentSubject(ctx context.Context, studentID, subjectID, cycleID uuid.UUID) (uuid.UUID, error) {
	var enr enrollmentModel.EnrollmentModel
	if err := r.DB.WithContext(ctx).
		Where("enrollment_student_id = ? AND enrollment_cycle_id = ?", studentID, cycleID).
		First(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrNotEnrolled
		}
		return uuid.Nil, err
	}

	var assignment teacherModel.TeacherSubjectModel
	if err := r.DB.WithContext(ctx).
		Where("teacher_subject_course_id = ? AND teacher_subject_subject_id = ?", enr.EnrollmentCourseID, subjectID).
		First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrTeacherNotFound
		}
		return uuid.Nil, err
	}
	return assignment.TeacherSubjectTeacherID, nil
}
