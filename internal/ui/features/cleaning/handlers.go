package cleaning

import (
	"net/http"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/session"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/common"
)

// Handlers provides HTTP handlers for the cleaning feature.
type Handlers struct {
	app *common.App
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(app *common.App) *Handlers {
	return &Handlers{app: app}
}

// CleaningPage renders the missing-data strategy picker.
func (h *Handlers) CleaningPage(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.app.Session(w, r)
	if !sess.HasData() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.app.RenderPage(w, r, "cleaning.html", "Cleaning", "cleaning", CleaningData{
		Columns:        sess.ColumnNames(),
		NumericColumns: sess.NumericColumnNames(),
	})
}

// Apply runs the selected cleaning strategy and redirects back with a
// flash describing the outcome.
func (h *Handlers) Apply(w http.ResponseWriter, r *http.Request) {
	sess, token := h.app.Session(w, r)
	if !sess.HasData() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	strategy, err := session.ParseCleanStrategy(r.FormValue("action"))
	if err != nil {
		h.app.Flash(w, r, "danger", err.Error())
		http.Redirect(w, r, "/cleaning", http.StatusSeeOther)
		return
	}
	target := r.FormValue("target")

	res, err := sess.CleanMissing(strategy, target)
	if err != nil {
		h.app.Flash(w, r, "danger", err.Error())
		http.Redirect(w, r, "/cleaning", http.StatusSeeOther)
		return
	}

	h.app.RecordOp(token, strategy.String(), target, res.Message, res.Affected)
	h.app.Notifier.Broadcast()
	h.app.Flash(w, r, "success", res.Message)
	http.Redirect(w, r, "/cleaning", http.StatusSeeOther)
}
