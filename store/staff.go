package store

import (
	"civicadmin-be/models"
)

// StaffDirectory is the read-only registry of municipal staff accounts.
type StaffDirectory struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

// NewStaffDirectory builds a directory from the given accounts, hashing each
// password in place.
func NewStaffDirectory(users []models.User) (*StaffDirectory, error) {
	d := &StaffDirectory{
		byID:    make(map[string]*models.User, len(users)),
		byEmail: make(map[string]*models.User, len(users)),
	}
	for i := range users {
		u := users[i]
		if err := u.HashPassword(); err != nil {
			return nil, err
		}
		d.byID[u.ID] = &u
		d.byEmail[u.Email] = &u
	}
	return d, nil
}

// ByID looks up a staff member by identifier.
func (d *StaffDirectory) ByID(id string) (*models.User, bool) {
	u, ok := d.byID[id]
	return u, ok
}

// ByEmail looks up a staff member by login email.
func (d *StaffDirectory) ByEmail(email string) (*models.User, bool) {
	u, ok := d.byEmail[email]
	return u, ok
}

// SeedStaff returns the demo staff accounts for each role.
func SeedStaff() []models.User {
	return []models.User{
		{
			ID:          "1",
			Name:        "Municipal Commissioner",
			Email:       "admin@municipal.gov.in",
			Password:    "admin123",
			Role:        models.RoleMunicipalAdmin,
			Phone:       "+91 11 2345 6789",
			Designation: "Municipal Commissioner",
		},
		{
			ID:          "2",
			Name:        "Water Department Head",
			Email:       "water@municipal.gov.in",
			Password:    "water123",
			Role:        models.RoleWaterDept,
			Department:  models.DeptWaterSupply,
			Phone:       "+91 11 2345 6790",
			Designation: "Executive Engineer - Water",
		},
		{
			ID:          "3",
			Name:        "Electricity Department Head",
			Email:       "electricity@municipal.gov.in",
			Password:    "electricity123",
			Role:        models.RoleElectricityDept,
			Department:  models.DeptElectricity,
			Phone:       "+91 11 2345 6791",
			Designation: "Executive Engineer - Electrical",
		},
		{
			ID:          "4",
			Name:        "PWD Department Head",
			Email:       "pwd@municipal.gov.in",
			Password:    "pwd123",
			Role:        models.RolePWDDept,
			Department:  models.DeptPublicWorks,
			Phone:       "+91 11 2345 6792",
			Designation: "Executive Engineer - PWD",
		},
		{
			ID:          "5",
			Name:        "Sanitation Department Head",
			Email:       "sanitation@municipal.gov.in",
			Password:    "sanitation123",
			Role:        models.RoleSanitationDept,
			Department:  models.DeptSanitation,
			Phone:       "+91 11 2345 6793",
			Designation: "Executive Engineer - Sanitation",
		},
		{
			ID:          "6",
			Name:        "Ward Supervisor - 12",
			Email:       "ward12@municipal.gov.in",
			Password:    "ward123",
			Role:        models.RoleWardSupervisor,
			Ward:        "Ward 12",
			Phone:       "+91 11 2345 6794",
			Designation: "Ward Supervisor",
		},
	}
}
