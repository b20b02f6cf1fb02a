package policy

import (
	"testing"

	"civicadmin-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentTargets(t *testing.T) {
	tests := []struct {
		role    models.Role
		targets []AssignmentTarget
	}{
		{models.RoleMunicipalAdmin, []AssignmentTarget{TargetDepartment, TargetWard}},
		{models.RoleWaterDept, []AssignmentTarget{TargetWard, TargetFieldWorker}},
		{models.RoleElectricityDept, []AssignmentTarget{TargetWard, TargetFieldWorker}},
		{models.RolePWDDept, []AssignmentTarget{TargetWard, TargetFieldWorker}},
		{models.RoleSanitationDept, []AssignmentTarget{TargetWard, TargetFieldWorker}},
		{models.RoleWardSupervisor, []AssignmentTarget{TargetFieldWorker}},
		{models.Role("intern"), []AssignmentTarget{TargetDepartment}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.targets, AssignmentTargets(tt.role), string(tt.role))
	}

	assert.True(t, CanAssign(models.RoleMunicipalAdmin, TargetWard))
	assert.False(t, CanAssign(models.RoleWardSupervisor, TargetDepartment))
}

func TestCanEditStatus(t *testing.T) {
	issue := models.Issue{
		ID:       "ISS-1",
		Category: models.CategoryWaterSupply,
		Status:   models.StatusNew,
		Location: models.Location{Ward: "Ward 12"},
	}

	admin := &models.User{Name: "Municipal Commissioner", Role: models.RoleMunicipalAdmin}
	waterHead := &models.User{Name: "Water Department Head", Role: models.RoleWaterDept}
	supervisor := &models.User{Name: "Ward Supervisor - 12", Role: models.RoleWardSupervisor, Ward: "Ward 12"}

	t.Run("admin always may", func(t *testing.T) {
		assert.True(t, CanEditStatus(admin, &issue))
	})

	t.Run("department role needs the assignment first", func(t *testing.T) {
		// Right category, but not yet assigned to Water Supply.
		assert.False(t, CanEditStatus(waterHead, &issue))

		assigned := issue
		assigned.Status = models.StatusAssigned
		assigned.AssignedDepartment = "Water Supply"
		assert.True(t, CanEditStatus(waterHead, &assigned))

		// Department comparison is canonical, not substring-based.
		assigned.AssignedDepartment = "water supply"
		assert.True(t, CanEditStatus(waterHead, &assigned))
		assigned.AssignedDepartment = "Electricity"
		assert.False(t, CanEditStatus(waterHead, &assigned))
	})

	t.Run("ward supervisor is bound to their ward", func(t *testing.T) {
		assert.True(t, CanEditStatus(supervisor, &issue))

		elsewhere := issue
		elsewhere.Location.Ward = "Ward 8"
		assert.False(t, CanEditStatus(supervisor, &elsewhere))

		noWard := &models.User{Role: models.RoleWardSupervisor}
		assert.False(t, CanEditStatus(noWard, &issue))
	})

	t.Run("nil or unknown roles may not", func(t *testing.T) {
		assert.False(t, CanEditStatus(nil, &issue))
		assert.False(t, CanEditStatus(&models.User{Role: models.Role("intern")}, &issue))
	})
}

func TestRecommendations(t *testing.T) {
	issue := models.Issue{
		Category: models.CategorySanitation,
		Location: models.Location{Ward: "Ward 22"},
	}

	dept, ok := RecommendedDepartment(&issue)
	require.True(t, ok)
	assert.Equal(t, models.DeptSanitation, dept)

	other := models.Issue{Category: models.CategoryOthers}
	_, ok = RecommendedDepartment(&other)
	assert.False(t, ok)

	assert.True(t, RecommendedWard(&issue, "Ward 22"))
	assert.False(t, RecommendedWard(&issue, "Ward 8"))
}

func TestCatalogs(t *testing.T) {
	assert.Len(t, Departments(), 4)
	assert.Contains(t, Wards(), "Ward 12")

	fw, ok := FieldWorkerByID("fw2")
	require.True(t, ok)
	assert.Equal(t, "Amit Singh", fw.Name)

	_, ok = FieldWorkerByID("fw99")
	assert.False(t, ok)
}
