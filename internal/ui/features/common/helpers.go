package common

import (
	"encoding/gob"
	"net/http"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/session"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/templates"
)

// CookieName is the browser session cookie.
const CookieName = "datacleaner_session"

// TokenKey is the cookie-session key holding the transform session
// token.
const TokenKey = "token"

func init() {
	gob.Register(templates.Flash{})
}

// Token returns the caller's session token, minting one into the
// cookie session on first contact.
func (a *App) Token(w http.ResponseWriter, r *http.Request) string {
	cs, _ := a.Store.Get(r, CookieName)
	if tok, ok := cs.Values[TokenKey].(string); ok && tok != "" {
		return tok
	}
	tok := a.Sessions.NewToken()
	cs.Values[TokenKey] = tok
	if err := cs.Save(r, w); err != nil {
		a.Logger.Error("failed to save session cookie", "error", err)
	}
	return tok
}

// Session returns the transform session for the caller, plus its
// token for history records.
func (a *App) Session(w http.ResponseWriter, r *http.Request) (*session.Session, string) {
	tok := a.Token(w, r)
	return a.Sessions.Get(tok), tok
}

// Flash queues a one-shot message for the next rendered page.
func (a *App) Flash(w http.ResponseWriter, r *http.Request, level, message string) {
	cs, _ := a.Store.Get(r, CookieName)
	cs.AddFlash(templates.Flash{Level: level, Message: message})
	if err := cs.Save(r, w); err != nil {
		a.Logger.Error("failed to save flash", "error", err)
	}
}

// PopFlashes drains the queued flash messages.
func (a *App) PopFlashes(w http.ResponseWriter, r *http.Request) []templates.Flash {
	cs, _ := a.Store.Get(r, CookieName)
	raw := cs.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := cs.Save(r, w); err != nil {
		a.Logger.Error("failed to clear flashes", "error", err)
	}
	out := make([]templates.Flash, 0, len(raw))
	for _, f := range raw {
		if fl, ok := f.(templates.Flash); ok {
			out = append(out, fl)
		}
	}
	return out
}

// RenderPage renders a page with the standard chrome filled in.
func (a *App) RenderPage(w http.ResponseWriter, r *http.Request, name, title, active string, data any) {
	sess, _ := a.Session(w, r)
	page := templates.Page{
		Title:   title,
		Active:  active,
		HasData: sess.HasData(),
		Source:  sess.Source(),
		Flashes: a.PopFlashes(w, r),
		Data:    data,
	}
	if err := templates.Render(w, name, page); err != nil {
		a.Logger.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// RecordOp appends to the history store, logging rather than failing
// the request when the audit write goes wrong.
func (a *App) RecordOp(token, kind, column, detail string, affected int) {
	if a.History == nil {
		return
	}
	if _, err := a.History.Record(token, kind, column, detail, affected); err != nil {
		a.Logger.Error("failed to record operation", "kind", kind, "error", err)
	}
}
