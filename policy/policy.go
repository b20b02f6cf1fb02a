// Package policy decides what a staff member may do with an issue.
// Every function here is pure: no state, no side effects.
package policy

import (
	"civicadmin-be/models"
)

// AssignmentTarget enum
type AssignmentTarget string

const (
	TargetDepartment  AssignmentTarget = "department"
	TargetWard        AssignmentTarget = "ward"
	TargetFieldWorker AssignmentTarget = "field_worker"
)

// assignmentTargets maps each role to the assignment types it may use.
var assignmentTargets = map[models.Role][]AssignmentTarget{
	models.RoleMunicipalAdmin:  {TargetDepartment, TargetWard},
	models.RoleWaterDept:       {TargetWard, TargetFieldWorker},
	models.RoleElectricityDept: {TargetWard, TargetFieldWorker},
	models.RolePWDDept:         {TargetWard, TargetFieldWorker},
	models.RoleSanitationDept:  {TargetWard, TargetFieldWorker},
	models.RoleWardSupervisor:  {TargetFieldWorker},
}

// AssignmentTargets returns the assignment types available to a role.
// Unknown roles get the conservative department-only default.
func AssignmentTargets(role models.Role) []AssignmentTarget {
	if targets, ok := assignmentTargets[role]; ok {
		return append([]AssignmentTarget(nil), targets...)
	}
	return []AssignmentTarget{TargetDepartment}
}

// CanAssign reports whether a role may use the given assignment type.
func CanAssign(role models.Role, target AssignmentTarget) bool {
	for _, t := range AssignmentTargets(role) {
		if t == target {
			return true
		}
	}
	return false
}

// CanEditStatus reports whether the staff member may change the issue's status.
// Admins always can. A department role can once the issue is assigned to that
// department (compared through the canonical department enum, not free text).
// A ward supervisor can for issues in their own ward.
func CanEditStatus(user *models.User, issue *models.Issue) bool {
	if user == nil {
		return false
	}
	if user.Role == models.RoleMunicipalAdmin {
		return true
	}
	if dept, ok := user.Role.HomeDepartment(); ok {
		assigned, matched := models.ParseDepartment(issue.AssignedDepartment)
		return matched && assigned == dept
	}
	if user.Role == models.RoleWardSupervisor {
		return user.Ward != "" && issue.Location.Ward == user.Ward
	}
	return false
}

// RecommendedDepartment suggests the department whose domain matches the
// issue's category. Advisory only; it never restricts selection.
func RecommendedDepartment(issue *models.Issue) (models.Department, bool) {
	for _, d := range Departments() {
		if d.Category() == issue.Category {
			return d, true
		}
	}
	return "", false
}

// RecommendedWard reports whether a ward is the issue's own ward.
func RecommendedWard(issue *models.Issue, ward string) bool {
	return issue.Location.Ward == ward
}
