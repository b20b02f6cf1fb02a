package policy

import (
	"civicadmin-be/models"
)

// FieldWorker is an assignable field staff member.
type FieldWorker struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}

// Departments lists the departments issues can be assigned to.
func Departments() []models.Department {
	return []models.Department{
		models.DeptWaterSupply,
		models.DeptElectricity,
		models.DeptPublicWorks,
		models.DeptSanitation,
	}
}

// Wards lists the wards issues can be assigned to.
func Wards() []string {
	return []string{"Ward 8", "Ward 12", "Ward 15", "Ward 18", "Ward 22"}
}

// FieldWorkers lists the assignable field staff.
func FieldWorkers() []FieldWorker {
	return []FieldWorker{
		{ID: "fw1", Name: "Rajesh Kumar", Specialization: "Water & Sanitation"},
		{ID: "fw2", Name: "Amit Singh", Specialization: "Electrical Work"},
		{ID: "fw3", Name: "Priya Sharma", Specialization: "Road Maintenance"},
		{ID: "fw4", Name: "Suresh Patel", Specialization: "General Maintenance"},
	}
}

// FieldWorkerByID resolves a field worker from the catalog.
func FieldWorkerByID(id string) (FieldWorker, bool) {
	for _, fw := range FieldWorkers() {
		if fw.ID == id {
			return fw, true
		}
	}
	return FieldWorker{}, false
}
