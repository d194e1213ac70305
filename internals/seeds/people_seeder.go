// file: internals/seeds/people_seeder.go
package seeds

import (
	"errors"

	courseModel "aula_backend/internals/features/academics/courses/model"
	cycleModel "aula_backend/internals/features/academics/cycles/model"
	subjectModel "aula_backend/internals/features/academics/subjects/model"
	enrollmentModel "aula_backend/internals/features/people/enrollments/model"
	parentModel "aula_backend/internals/features/people/parents/model"
	studentModel "aula_backend/internals/features/people/students/model"
	teacherModel "aula_backend/internals/features/people/teachers/model"

	"gorm.io/gorm"
)

var errNoActiveCycle = errors.New("no active cycle, run the academics seeder first")

func seedPeople(db *gorm.DB) error {
	var cycle cycleModel.CycleModel
	if err := db.Where("cycle_is_active = TRUE").First(&cycle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errNoActiveCycle
		}
		return err
	}

	course := courseModel.CourseModel{
		CourseName:     "First grade A",
		CourseLevel:    "first",
		CourseParallel: strPtr("A"),
		CourseShift:    "morning",
	}
	if err := db.
		Where("course_level = ? AND course_parallel = ?", "first", "A").
		FirstOrCreate(&course).Error; err != nil {
		return err
	}

	var subjects []subjectModel.SubjectModel
	if err := db.Order("subject_code ASC").Find(&subjects).Error; err != nil {
		return err
	}
	for _, subj := range subjects {
		cs := courseModel.CourseSubjectModel{
			CourseSubjectCourseID:  course.CourseID,
			CourseSubjectSubjectID: subj.SubjectID,
		}
		if err := db.
			Where("course_subject_course_id = ? AND course_subject_subject_id = ?", course.CourseID, subj.SubjectID).
			FirstOrCreate(&cs).Error; err != nil {
			return err
		}
	}

	teacher := teacherModel.TeacherModel{
		TeacherFirstName: "Lucia",
		TeacherLastName:  "Mendoza",
		TeacherSpecialty: strPtr("Primary education"),
		TeacherEmail:     "lucia.mendoza@aula.edu",
		TeacherPassword:  strPtr("teacher123"),
	}
	if err := db.
		Where("teacher_email = ?", teacher.TeacherEmail).
		FirstOrCreate(&teacher).Error; err != nil {
		return err
	}

	// one teacher covers every subject of the demo course
	for _, subj := range subjects {
		ts := teacherModel.TeacherSubjectModel{
			TeacherSubjectTeacherID: teacher.TeacherID,
			TeacherSubjectSubjectID: subj.SubjectID,
			TeacherSubjectCourseID:  course.CourseID,
		}
		if err := db.
			Where("teacher_subject_teacher_id = ? AND teacher_subject_subject_id = ? AND teacher_subject_course_id = ?",
				teacher.TeacherID, subj.SubjectID, course.CourseID).
			FirstOrCreate(&ts).Error; err != nil {
			return err
		}
	}

	students := []studentModel.StudentModel{
		{
			StudentFirstName:      "Mateo",
			StudentLastName:       "Quispe",
			StudentDocumentNumber: strPtr("10000001"),
			StudentEmail:          strPtr("mateo.quispe@aula.edu"),
			StudentPassword:       strPtr("student123"),
		},
		{
			StudentFirstName:      "Valentina",
			StudentLastName:       "Rojas",
			StudentDocumentNumber: strPtr("10000002"),
			StudentEmail:          strPtr("valentina.rojas@aula.edu"),
			StudentPassword:       strPtr("student123"),
		},
		{
			StudentFirstName:      "Diego",
			StudentLastName:       "Flores",
			StudentDocumentNumber: strPtr("10000003"),
			StudentEmail:          strPtr("diego.flores@aula.edu"),
			StudentPassword:       strPtr("student123"),
		},
	}
	for i := range students {
		if err := db.
			Where("student_document_number = ?", *students[i].StudentDocumentNumber).
			FirstOrCreate(&students[i]).Error; err != nil {
			return err
		}

		enr := enrollmentModel.EnrollmentModel{
			EnrollmentStudentID: students[i].StudentID,
			EnrollmentCycleID:   cycle.CycleID,
			EnrollmentCourseID:  course.CourseID,
		}
		if err := db.
			Where("enrollment_student_id = ? AND enrollment_cycle_id = ?", students[i].StudentID, cycle.CycleID).
			FirstOrCreate(&enr).Error; err != nil {
			return err
		}
	}

	parent := parentModel.ParentModel{
		ParentFirstName: "Carmen",
		ParentLastName:  "Quispe",
		ParentPhone:     strPtr("+59170000001"),
		ParentEmail:     "carmen.quispe@aula.edu",
		ParentPassword:  strPtr("parent123"),
	}
	if err := db.
		Where("parent_email = ?", parent.ParentEmail).
		FirstOrCreate(&parent).Error; err != nil {
		return err
	}
	link := parentModel.ParentStudentModel{
		ParentStudentParentID:     parent.ParentID,
		ParentStudentStudentID:    students[0].StudentID,
		ParentStudentRelationship: "mother",
	}
	if err := db.
		Where("parent_student_parent_id = ? AND parent_student_student_id = ?", parent.ParentID, students[0].StudentID).
		FirstOrCreate(&link).Error; err != nil {
		return err
	}

	return nil
}
