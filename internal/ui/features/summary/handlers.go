package summary

import (
	"net/http"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/common"
)

// previewRows is how many rows the dashboard preview shows.
const previewRows = 5

// historyLimit caps the operations listed on the dashboard.
const historyLimit = 20

// Handlers provides HTTP handlers for the dashboard feature.
type Handlers struct {
	app *common.App
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(app *common.App) *Handlers {
	return &Handlers{app: app}
}

// Dashboard renders the dataset profile, a short preview and the
// recent operation history.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, token := h.app.Session(w, r)
	if !sess.HasData() {
		h.app.Flash(w, r, "info", "Please upload a dataset first.")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sum, err := sess.Summary()
	if err != nil {
		h.app.Flash(w, r, "danger", err.Error())
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	headers, preview, err := sess.Preview(previewRows)
	if err != nil {
		h.app.Flash(w, r, "danger", err.Error())
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := DashboardData{
		Summary: sum,
		Headers: headers,
		Preview: preview,
	}
	if h.app.History != nil {
		ops, err := h.app.History.BySession(token, historyLimit)
		if err != nil {
			h.app.Logger.Error("failed to load history", "error", err)
		} else {
			data.History = ops
		}
	}

	h.app.RenderPage(w, r, "dashboard.html", "Dashboard", "dashboard", data)
}
