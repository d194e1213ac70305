package constants

import "fmt"

// Role names as stored in the JWT "role" claim.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleParent  = "parent"
)

// Error message templates per role group
const (
	ErrOnlyTeachersCanAccess = "❌ Only teachers or admins may access %s."
	ErrOnlyAdminsCanAccess   = "❌ Only admins may access %s."
	ErrLoginRequired         = "❌ You must be signed in to access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLogin(feature string) string {
	return fmt.Sprintf(ErrLoginRequired, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
		RoleParent,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
