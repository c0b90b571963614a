// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/history"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/session"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/testutil"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/common"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/notifier"
)

// TestFixture holds all dependencies needed for UI handler tests,
// plus a pre-minted session token so tests can reach a known
// transform session.
type TestFixture struct {
	App   *common.App
	Token string
}

// SetupTestFixture creates a complete test fixture: session manager,
// in-memory history store, cookie store and a temp data directory.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	logger := testutil.NewTestLogger(t)

	hist, err := history.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = hist.Close() })

	mgr := session.NewManager(logger)
	app := &common.App{
		Sessions:       mgr,
		History:        hist,
		Store:          sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!")),
		Notifier:       notifier.New(),
		Logger:         logger,
		DataDir:        t.TempDir(),
		MaxUploadBytes: 16 << 20,
		UniqueLimit:    50,
	}

	return &TestFixture{App: app, Token: mgr.NewToken()}
}

// Session returns the transform session behind the fixture's token.
func (f *TestFixture) Session() *session.Session {
	return f.App.Sessions.Get(f.Token)
}

// Request builds a request carrying the fixture's session cookie, so
// handlers resolve to the fixture's transform session.
func (f *TestFixture) Request(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()

	seed := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	cs, _ := f.App.Store.Get(seed, common.CookieName)
	cs.Values[common.TokenKey] = f.Token
	require.NoError(t, cs.Save(seed, rec))

	req := httptest.NewRequest(method, target, body)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// FormRequest builds a POST request with form-encoded values and the
// fixture's session cookie.
func (f *TestFixture) FormRequest(t *testing.T, target string, form url.Values) *http.Request {
	t.Helper()
	req := f.Request(t, http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// WriteCSV drops a CSV file into the fixture's data directory and
// returns its path.
func (f *TestFixture) WriteCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.App.DataDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// LoadCSV writes a CSV file and loads it into the fixture's transform
// session.
func (f *TestFixture) LoadCSV(t *testing.T, name, content string) {
	t.Helper()
	path := f.WriteCSV(t, name, content)
	_, err := f.Session().Load(context.Background(), path, name)
	require.NoError(t, err)
}
