// Package export provides the modified-CSV download handler.
package export

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/common"
)

// Handlers provides HTTP handlers for the export feature.
type Handlers struct {
	app *common.App
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(app *common.App) *Handlers {
	return &Handlers{app: app}
}

// Download saves the current dataset as "<base>_modified.csv" in the
// data directory and serves it as an attachment, uncached so repeated
// downloads always reflect the latest state.
func (h *Handlers) Download(w http.ResponseWriter, r *http.Request) {
	sess, token := h.app.Session(w, r)
	if !sess.HasData() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	original := sess.Source()
	if original == "" {
		original = "dataset.csv"
	}
	base := strings.TrimSuffix(original, filepath.Ext(original))
	name := base + "_modified.csv"
	dest := filepath.Join(h.app.DataDir, name)

	if err := sess.SaveCSV(dest); err != nil {
		h.app.Flash(w, r, "danger", fmt.Sprintf("Error saving file: %v", err))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	h.app.RecordOp(token, "export", "", fmt.Sprintf("Saved %s.", name), 0)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Cache-Control", "no-store")
	http.ServeFile(w, r, dest)
}
