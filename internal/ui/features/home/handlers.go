package home

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/common"
)

// Handlers provides HTTP handlers for the upload feature.
type Handlers struct {
	app *common.App
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(app *common.App) *Handlers {
	return &Handlers{app: app}
}

// HomePage renders the upload page with the loadable files in the
// data directory.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	h.app.RenderPage(w, r, "home.html", "Upload", "home", HomeData{
		Samples: h.listCSVFiles(),
	})
}

// Upload accepts a CSV file, stores it in the data directory and
// loads it into the caller's session.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.app.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.app.MaxUploadBytes); err != nil {
		h.app.Flash(w, r, "danger", fmt.Sprintf("Upload failed: %v", err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.app.Flash(w, r, "warning", "No file selected.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer func() { _ = file.Close() }()

	name := filepath.Base(header.Filename)
	if name == "" || name == "." || !strings.HasSuffix(strings.ToLower(name), ".csv") {
		h.app.Flash(w, r, "warning", "Only CSV files are allowed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	dest := filepath.Join(h.app.DataDir, name)
	out, err := os.Create(dest)
	if err != nil {
		h.app.Flash(w, r, "danger", fmt.Sprintf("Could not store upload: %v", err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if _, err := io.Copy(out, file); err != nil {
		_ = out.Close()
		h.app.Flash(w, r, "danger", fmt.Sprintf("Could not store upload: %v", err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := out.Close(); err != nil {
		h.app.Flash(w, r, "danger", fmt.Sprintf("Could not store upload: %v", err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.load(w, r, dest, name)
}

// LoadExisting loads a CSV file already present in the data
// directory.
func (h *Handlers) LoadExisting(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(r.FormValue("file"))
	if name == "" || name == "." || !strings.HasSuffix(strings.ToLower(name), ".csv") {
		h.app.Flash(w, r, "warning", "Only CSV files are allowed.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.load(w, r, filepath.Join(h.app.DataDir, name), name)
}

func (h *Handlers) load(w http.ResponseWriter, r *http.Request, path, name string) {
	sess, token := h.app.Session(w, r)

	res, err := sess.Load(r.Context(), path, name)
	if err != nil {
		h.app.Flash(w, r, "danger", fmt.Sprintf("Error loading file: %v", err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.app.RecordOp(token, "load", "", res.Message, res.Affected)
	h.app.Notifier.Broadcast()
	h.app.Flash(w, r, "success", "File uploaded and analyzed successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// listCSVFiles returns the CSV files in the data directory, sorted.
func (h *Handlers) listCSVFiles() []string {
	entries, err := os.ReadDir(h.app.DataDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
