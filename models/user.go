package models

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Role enum for municipal staff
type Role string

const (
	RoleMunicipalAdmin  Role = "municipal_admin"
	RoleWaterDept       Role = "water_dept"
	RoleElectricityDept Role = "electricity_dept"
	RolePWDDept         Role = "pwd_dept"
	RoleSanitationDept  Role = "sanitation_dept"
	RoleWardSupervisor  Role = "ward_supervisor"
)

// Department enum, canonical department names used on issue assignments
type Department string

const (
	DeptWaterSupply Department = "Water Supply"
	DeptElectricity Department = "Electricity"
	DeptPublicWorks Department = "Public Works"
	DeptSanitation  Department = "Sanitation"
)

// roleDepartments maps each department role to its canonical department.
var roleDepartments = map[Role]Department{
	RoleWaterDept:       DeptWaterSupply,
	RoleElectricityDept: DeptElectricity,
	RolePWDDept:         DeptPublicWorks,
	RoleSanitationDept:  DeptSanitation,
}

// departmentCategories maps a department to the issue category it handles.
var departmentCategories = map[Department]IssueCategory{
	DeptWaterSupply: CategoryWaterSupply,
	DeptElectricity: CategoryElectricity,
	DeptPublicWorks: CategoryRoads,
	DeptSanitation:  CategorySanitation,
}

// HomeDepartment resolves the department a role belongs to.
// The second return is false for roles without one (admin, ward supervisor).
func (r Role) HomeDepartment() (Department, bool) {
	d, ok := roleDepartments[r]
	return d, ok
}

// IsDepartment reports whether the role is one of the four department roles.
func (r Role) IsDepartment() bool {
	_, ok := roleDepartments[r]
	return ok
}

// Category returns the issue category a department is responsible for.
func (d Department) Category() IssueCategory {
	return departmentCategories[d]
}

// ParseDepartment resolves a free-text department name (as stored on an issue's
// assignedDepartment field) to the canonical Department, case-insensitively.
func ParseDepartment(name string) (Department, bool) {
	for d := range departmentCategories {
		if strings.EqualFold(string(d), name) {
			return d, true
		}
	}
	return "", false
}

// User is a municipal staff member operating the dashboard
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"-"`
	Role        Role       `json:"role"`
	Department  Department `json:"department,omitempty"`
	Ward        string     `json:"ward,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Designation string     `json:"designation,omitempty"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}
