package cleaning

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features"
)

const testCSV = "name,age,score\nAlice,25,90.5\nBob,,80\nCarol,31,\n"

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	return NewHandlers(fixture.App), fixture
}

func TestCleaningPage_NoData(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	req := fixture.Request(t, http.MethodGet, "/cleaning", nil)
	rec := httptest.NewRecorder()

	h.CleaningPage(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestCleaningPage(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.LoadCSV(t, "people.csv", testCSV)

	req := fixture.Request(t, http.MethodGet, "/cleaning", nil)
	rec := httptest.NewRecorder()

	h.CleaningPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Handle missing data")
	assert.Contains(t, body, "age")
	assert.Contains(t, body, "ALL_NUMERIC")
}

func TestApply_DropRows(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.LoadCSV(t, "people.csv", testCSV)

	form := url.Values{"action": {"drop_rows"}}
	req := fixture.FormRequest(t, "/cleaning", form)
	rec := httptest.NewRecorder()

	h.Apply(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cleaning", rec.Header().Get("Location"))

	sum, err := fixture.Session().Summary()
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Rows, "only the complete row survives")

	ops, err := fixture.App.History.BySession(fixture.Token, 0)
	require.NoError(t, err)
	require.NotEmpty(t, ops)
	assert.Equal(t, "drop_rows", ops[0].Kind)
}

func TestApply_FillMean(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.LoadCSV(t, "people.csv", testCSV)

	form := url.Values{"action": {"fill_mean"}, "target": {"age"}}
	req := fixture.FormRequest(t, "/cleaning", form)
	rec := httptest.NewRecorder()

	h.Apply(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)

	sum, err := fixture.Session().Summary()
	require.NoError(t, err)
	for _, col := range sum.Columns {
		if col.Name == "age" {
			assert.Equal(t, 0, col.Missing)
		}
	}
}

func TestApply_FillMean_NonNumericTarget(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.LoadCSV(t, "people.csv", testCSV)

	form := url.Values{"action": {"fill_mean"}, "target": {"name"}}
	req := fixture.FormRequest(t, "/cleaning", form)
	rec := httptest.NewRecorder()

	h.Apply(rec, req)

	// rejected with a flash, dataset untouched
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cleaning", rec.Header().Get("Location"))

	ops, err := fixture.App.History.BySession(fixture.Token, 0)
	require.NoError(t, err)
	for _, op := range ops {
		assert.NotEqual(t, "fill_mean", op.Kind, "failed strategy must not be recorded")
	}
}

func TestApply_UnknownStrategy(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.LoadCSV(t, "people.csv", testCSV)

	form := url.Values{"action": {"vaporize"}}
	req := fixture.FormRequest(t, "/cleaning", form)
	rec := httptest.NewRecorder()

	h.Apply(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/cleaning", rec.Header().Get("Location"))
}

func TestApply_NoData(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	form := url.Values{"action": {"drop_rows"}}
	req := fixture.FormRequest(t, "/cleaning", form)
	rec := httptest.NewRecorder()

	h.Apply(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
