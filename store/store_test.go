package store

import (
	"testing"

	"civicadmin-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminUser() *models.User {
	return &models.User{ID: "1", Name: "Municipal Commissioner", Role: models.RoleMunicipalAdmin}
}

func waterUser() *models.User {
	return &models.User{ID: "2", Name: "Water Department Head", Role: models.RoleWaterDept, Department: models.DeptWaterSupply}
}

func electricityUser() *models.User {
	return &models.User{ID: "3", Name: "Electricity Department Head", Role: models.RoleElectricityDept, Department: models.DeptElectricity}
}

func wardUser(ward string) *models.User {
	return &models.User{ID: "6", Name: "Ward Supervisor - 12", Role: models.RoleWardSupervisor, Ward: ward}
}

func str(v string) *string { return &v }

func TestListForRoleScoping(t *testing.T) {
	s := NewIssueStore(SeedIssues())

	t.Run("admin sees everything", func(t *testing.T) {
		assert.Len(t, s.ListForRole(adminUser()), 5)
	})

	t.Run("department role needs category and assignment", func(t *testing.T) {
		water := s.ListForRole(waterUser())
		require.Len(t, water, 2)
		for _, issue := range water {
			assert.Equal(t, models.CategoryWaterSupply, issue.Category)
			assert.Equal(t, string(models.DeptWaterSupply), issue.AssignedDepartment)
		}

		// ISS-2025-003 is roads category but unassigned, so the PWD head
		// does not see it yet.
		pwd := &models.User{Name: "PWD Department Head", Role: models.RolePWDDept}
		assert.Empty(t, s.ListForRole(pwd))
	})

	t.Run("ward supervisor sees only their ward", func(t *testing.T) {
		scoped := s.ListForRole(wardUser("Ward 12"))
		require.Len(t, scoped, 1)
		assert.Equal(t, "ISS-2025-001", scoped[0].ID)
	})

	t.Run("role partitions are exclusive", func(t *testing.T) {
		for _, issue := range s.ListForRole(waterUser()) {
			for _, other := range s.ListForRole(electricityUser()) {
				assert.NotEqual(t, issue.ID, other.ID)
			}
		}
	})

	t.Run("pure read returns identical results", func(t *testing.T) {
		first := s.ListForRole(waterUser())
		second := s.ListForRole(waterUser())
		assert.Equal(t, first, second)
	})

	t.Run("nil user sees nothing", func(t *testing.T) {
		assert.Empty(t, s.ListForRole(nil))
	})
}

func TestListForRoleReturnsCopies(t *testing.T) {
	s := NewIssueStore(SeedIssues())

	issues := s.ListForRole(adminUser())
	issues[0].Title = "tampered"
	issues[0].Timeline[0].Description = "tampered"

	fresh, err := s.Get(issues[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", fresh.Title)
	assert.NotEqual(t, "tampered", fresh.Timeline[0].Description)
}

func TestUpdateStatus(t *testing.T) {
	t.Run("appends exactly one event per call", func(t *testing.T) {
		s := NewIssueStore(SeedIssues())
		before, _ := s.Get("ISS-2025-003")
		baseline := len(before.Timeline)

		// Three calls, including a no-op transition to the current status,
		// append three events: the timeline logs attempts, not diffs.
		_, err := s.UpdateStatus("ISS-2025-003", models.StatusInProgress, nil, nil, adminUser())
		require.NoError(t, err)
		_, err = s.UpdateStatus("ISS-2025-003", models.StatusInProgress, nil, nil, adminUser())
		require.NoError(t, err)
		updated, err := s.UpdateStatus("ISS-2025-003", models.StatusResolved, nil, nil, adminUser())
		require.NoError(t, err)

		assert.Len(t, updated.Timeline, baseline+3)
		assert.Equal(t, models.StatusResolved, updated.Status)
	})

	t.Run("event type mirrors the new status", func(t *testing.T) {
		s := NewIssueStore(SeedIssues())

		updated, err := s.UpdateStatus("ISS-2025-003", models.StatusInProgress, nil, nil, adminUser())
		require.NoError(t, err)
		last := updated.Timeline[len(updated.Timeline)-1]
		assert.Equal(t, models.EventInProgress, last.Type)
		assert.Equal(t, "Municipal Commissioner", last.User)
		assert.Equal(t, "Status updated to in progress", last.Description)
	})

	t.Run("assigned status records a department assignment", func(t *testing.T) {
		s := NewIssueStore(SeedIssues())

		updated, err := s.UpdateStatus("ISS-2025-003", models.StatusAssigned, nil, str("Public Works"), adminUser())
		require.NoError(t, err)
		last := updated.Timeline[len(updated.Timeline)-1]
		assert.Equal(t, models.EventDepartmentAssigned, last.Type)
		assert.Equal(t, "Public Works", updated.AssignedDepartment)
	})

	t.Run("partial update leaves omitted fields untouched", func(t *testing.T) {
		s := NewIssueStore(SeedIssues())

		updated, err := s.UpdateStatus("ISS-2025-001", models.StatusResolved, nil, nil, adminUser())
		require.NoError(t, err)
		assert.Equal(t, "2", updated.AssignedTo)
		assert.Equal(t, string(models.DeptWaterSupply), updated.AssignedDepartment)
	})

	t.Run("missing actor records System", func(t *testing.T) {
		s := NewIssueStore(SeedIssues())

		updated, err := s.UpdateStatus("ISS-2025-003", models.StatusUnresolved, nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "System", updated.Timeline[len(updated.Timeline)-1].User)
	})

	t.Run("unknown id mutates nothing", func(t *testing.T) {
		s := NewIssueStore(SeedIssues())
		before := s.ListForRole(adminUser())

		_, err := s.UpdateStatus("ISS-404", models.StatusResolved, nil, nil, adminUser())
		assert.ErrorIs(t, err, ErrIssueNotFound)
		assert.Equal(t, before, s.ListForRole(adminUser()))
	})
}

func TestAddComment(t *testing.T) {
	t.Run("appends one comment", func(t *testing.T) {
		s := NewIssueStore(SeedIssues())
		before, _ := s.Get("ISS-2025-001")

		updated, err := s.AddComment("ISS-2025-001", "Looks fixed", waterUser())
		require.NoError(t, err)
		require.Len(t, updated.Comments, len(before.Comments)+1)

		last := updated.Comments[len(updated.Comments)-1]
		assert.Equal(t, "Looks fixed", last.Message)
		assert.Equal(t, "Water Department Head", last.User)

		// Status and timeline are untouched.
		assert.Equal(t, before.Status, updated.Status)
		assert.Len(t, updated.Timeline, len(before.Timeline))
	})

	t.Run("blank message is rejected before any change", func(t *testing.T) {
		s := NewIssueStore(SeedIssues())
		before, _ := s.Get("ISS-2025-001")

		_, err := s.AddComment("ISS-2025-001", "  ", waterUser())
		assert.ErrorIs(t, err, ErrEmptyComment)

		after, _ := s.Get("ISS-2025-001")
		assert.Len(t, after.Comments, len(before.Comments))
	})

	t.Run("missing actor records User", func(t *testing.T) {
		s := NewIssueStore(SeedIssues())

		updated, err := s.AddComment("ISS-2025-001", "Checked on site", nil)
		require.NoError(t, err)
		assert.Equal(t, "User", updated.Comments[len(updated.Comments)-1].User)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		s := NewIssueStore(SeedIssues())

		_, err := s.AddComment("ISS-404", "hello", waterUser())
		assert.ErrorIs(t, err, ErrIssueNotFound)
	})
}

func TestGetForRole(t *testing.T) {
	s := NewIssueStore(SeedIssues())

	// Out-of-scope issues are indistinguishable from missing ones.
	_, err := s.GetForRole("ISS-2025-002", waterUser())
	assert.ErrorIs(t, err, ErrIssueNotFound)

	issue, err := s.GetForRole("ISS-2025-001", waterUser())
	require.NoError(t, err)
	assert.Equal(t, "ISS-2025-001", issue.ID)
}

func TestStats(t *testing.T) {
	s := NewIssueStore(SeedIssues())

	admin := s.Stats(adminUser())
	assert.Equal(t, models.DashboardStats{
		Total: 5, Resolved: 1, Pending: 3, InProgress: 1, Unresolved: 0, Emergency: 1,
	}, admin)

	water := s.Stats(waterUser())
	assert.Equal(t, models.DashboardStats{
		Total: 2, Resolved: 1, Pending: 0, InProgress: 1, Unresolved: 0, Emergency: 1,
	}, water)
}
