package export

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features"
)

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()
	fixture := features.SetupTestFixture(t)
	return NewHandlers(fixture.App), fixture
}

func TestDownload_NoData(t *testing.T) {
	h, fixture := setupTestHandlers(t)

	req := fixture.Request(t, http.MethodGet, "/download", nil)
	rec := httptest.NewRecorder()

	h.Download(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestDownload(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.LoadCSV(t, "grades.csv", "name,grade\nAlice,A\nBob,B\n")

	req := fixture.Request(t, http.MethodGet, "/download", nil)
	rec := httptest.NewRecorder()

	h.Download(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="grades_modified.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "name,grade\nAlice,A\nBob,B\n", rec.Body.String())

	// the modified file lands next to the original
	saved, err := os.ReadFile(filepath.Join(fixture.App.DataDir, "grades_modified.csv"))
	require.NoError(t, err)
	assert.Equal(t, "name,grade\nAlice,A\nBob,B\n", string(saved))
}

func TestDownload_ReflectsEdits(t *testing.T) {
	h, fixture := setupTestHandlers(t)
	fixture.LoadCSV(t, "grades.csv", "name,grade\nAlice,A\nBob,B\n")

	_, err := fixture.Session().RenameColumn("grade", "mark")
	require.NoError(t, err)

	req := fixture.Request(t, http.MethodGet, "/download", nil)
	rec := httptest.NewRecorder()

	h.Download(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "name,mark\n")
}
