package summary

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	return NewHandlers(fixture.App), fixture
}

func TestDashboard_NoData(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	req := fixture.Request(t, http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	h.Dashboard(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestDashboard(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.LoadCSV(t, "grades.csv", "name,grade,age\nAlice,A,25\nBob,B,\nCarol,A,31\n")

	req := fixture.Request(t, http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	h.Dashboard(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>Dashboard - Data Cleaner</title>")
	assert.Contains(t, body, "grades.csv", "source file shown in chrome")

	// profile table lists every column
	assert.Contains(t, body, "name")
	assert.Contains(t, body, "grade")
	assert.Contains(t, body, "age")

	// preview carries cell values
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "Carol")
}

func TestDashboard_ShowsHistory(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.LoadCSV(t, "grades.csv", "name,grade\nAlice,A\n")

	_, err := fixture.App.History.Record(fixture.Token, "rename", "grade", "grade -> mark", 1)
	assert.NoError(t, err)

	req := fixture.Request(t, http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	h.Dashboard(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Operation history")
	assert.Contains(t, body, "grade -&gt; mark")
}
