package intake

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"civicadmin-be/models"
	"civicadmin-be/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReports(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/core/issue/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"title": "Fallen tree", "description": "Tree blocking service road", "image": "https://example.com/tree.jpg"},
			{"title": "Broken signal", "description": "Traffic signal stuck on red"}
		]`))
	}))
	defer server.Close()

	reports, err := NewClient(server.URL).FetchReports(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "Fallen tree", reports[0].Title)
	assert.Equal(t, "https://example.com/tree.jpg", reports[0].Image)
	assert.Empty(t, reports[1].Image)
}

func TestFetchReportsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).FetchReports(context.Background())
	assert.Error(t, err)
}

func TestImportMergesIntoStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title": "Fallen tree", "description": "Tree blocking service road"}]`))
	}))
	defer server.Close()

	issues := store.NewIssueStore(store.SeedIssues())
	admin := &models.User{Name: "Municipal Commissioner", Role: models.RoleMunicipalAdmin}
	before := len(issues.ListForRole(admin))

	Import(issues, server.URL)

	assert.Len(t, issues.ListForRole(admin), before+1)
}

func TestImportFailureLeavesLocalDataUsable(t *testing.T) {
	issues := store.NewIssueStore(store.SeedIssues())
	admin := &models.User{Name: "Municipal Commissioner", Role: models.RoleMunicipalAdmin}
	before := issues.ListForRole(admin)

	// Nothing is listening on this address.
	Import(issues, "http://127.0.0.1:1")

	assert.Equal(t, before, issues.ListForRole(admin))
}
