package transform

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/session"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/features/common"
)

// mapFieldPrefix prefixes the per-value form fields of the manual
// remap picker; the suffix is the original value.
const mapFieldPrefix = "map_origin_"

// Handlers provides HTTP handlers for the transform feature.
type Handlers struct {
	app *common.App
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(app *common.App) *Handlers {
	return &Handlers{app: app}
}

// TransformPage renders the transform page.
func (h *Handlers) TransformPage(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.app.Session(w, r)
	if !sess.HasData() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, TransformData{
		Columns:  sess.ColumnNames(),
		Mappings: sess.Mappings(),
	})
}

// Apply dispatches the transform page's form actions.
func (h *Handlers) Apply(w http.ResponseWriter, r *http.Request) {
	sess, token := h.app.Session(w, r)
	if !sess.HasData() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.app.Flash(w, r, "danger", fmt.Sprintf("Bad form data: %v", err))
		http.Redirect(w, r, "/transform", http.StatusSeeOther)
		return
	}

	switch action := r.FormValue("action"); action {
	case "rename":
		h.rename(w, r, sess, token)
	case "encode":
		h.encode(w, r, sess, token)
	case "fetch_values":
		h.fetchValues(w, r, sess)
	case "apply_mapping":
		h.applyMapping(w, r, sess, token)
	default:
		h.app.Flash(w, r, "danger", fmt.Sprintf("Unknown action %q.", action))
		http.Redirect(w, r, "/transform", http.StatusSeeOther)
	}
}

func (h *Handlers) rename(w http.ResponseWriter, r *http.Request, sess *session.Session, token string) {
	oldName := r.FormValue("old_name")
	newName := strings.TrimSpace(r.FormValue("new_name"))
	if newName == "" {
		h.app.Flash(w, r, "warning", "New column name must not be empty.")
		http.Redirect(w, r, "/transform", http.StatusSeeOther)
		return
	}

	res, err := sess.RenameColumn(oldName, newName)
	if err != nil {
		h.app.Flash(w, r, "danger", err.Error())
		http.Redirect(w, r, "/transform", http.StatusSeeOther)
		return
	}

	h.app.RecordOp(token, "rename", oldName, res.Message, 1)
	h.app.Notifier.Broadcast()
	h.app.Flash(w, r, "success", res.Message)
	http.Redirect(w, r, "/transform", http.StatusSeeOther)
}

func (h *Handlers) encode(w http.ResponseWriter, r *http.Request, sess *session.Session, token string) {
	col := r.FormValue("target_col")
	method, err := session.ParseEncodingMethod(r.FormValue("method"))
	if err != nil {
		h.app.Flash(w, r, "danger", err.Error())
		http.Redirect(w, r, "/transform", http.StatusSeeOther)
		return
	}

	res, err := sess.ApplyEncoding(col, method)
	if err != nil {
		h.app.Flash(w, r, "danger", err.Error())
		http.Redirect(w, r, "/transform", http.StatusSeeOther)
		return
	}

	h.app.RecordOp(token, "encode_"+method.String(), col, res.Message, res.Affected)
	h.app.Notifier.Broadcast()
	h.app.Flash(w, r, "success", res.Message)
	http.Redirect(w, r, "/transform", http.StatusSeeOther)
}

// fetchValues re-renders the transform page with the distinct values
// of the selected column so the user can fill in replacements.
func (h *Handlers) fetchValues(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	col := r.FormValue("target_col")

	values, err := sess.EnumerateUniqueValues(col, h.app.UniqueLimit)
	if err != nil {
		h.app.Flash(w, r, "danger", err.Error())
		http.Redirect(w, r, "/transform", http.StatusSeeOther)
		return
	}
	if len(values) == 0 {
		h.app.Flash(w, r, "warning",
			fmt.Sprintf("Could not fetch unique values for %q (or too many unique values).", col))
	}

	h.render(w, r, TransformData{
		Columns:        sess.ColumnNames(),
		SelectedColumn: col,
		UniqueValues:   values,
		Mappings:       sess.Mappings(),
	})
}

func (h *Handlers) applyMapping(w http.ResponseWriter, r *http.Request, sess *session.Session, token string) {
	col := r.FormValue("target_col")

	mapping := make(map[string]string)
	for key, vals := range r.PostForm {
		if !strings.HasPrefix(key, mapFieldPrefix) || len(vals) == 0 {
			continue
		}
		if replacement := strings.TrimSpace(vals[0]); replacement != "" {
			mapping[strings.TrimPrefix(key, mapFieldPrefix)] = replacement
		}
	}

	res, err := sess.ApplyValueMapping(col, mapping)
	if err != nil {
		h.app.Flash(w, r, "danger", err.Error())
		http.Redirect(w, r, "/transform", http.StatusSeeOther)
		return
	}

	h.app.RecordOp(token, "map_values", col, res.Message, res.Affected)
	h.app.Notifier.Broadcast()
	h.app.Flash(w, r, "success", res.Message)
	http.Redirect(w, r, "/transform", http.StatusSeeOther)
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, data TransformData) {
	h.app.RenderPage(w, r, "transform.html", "Transform", "transform", data)
}
