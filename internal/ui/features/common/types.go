// Package common holds the shared dependencies and session/flash
// helpers used by every UI feature.
package common

import (
	"log/slog"

	"github.com/gorilla/sessions"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/history"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/session"
	"github.com/PaulBrytonRaj18/Data-cleaner/internal/ui/notifier"
)

// App bundles the dependencies handed to every feature.
type App struct {
	Sessions       *session.Manager
	History        *history.Store
	Store          sessions.Store
	Notifier       *notifier.Notifier
	Logger         *slog.Logger
	DataDir        string
	MaxUploadBytes int64
	UniqueLimit    int
}
