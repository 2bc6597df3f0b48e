package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
)

const qrSize = 320

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request, _ httprouter.Params)

	SessionHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
	QRHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params)
}

type sessionGetter interface {
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
}

type handlers struct {
	logger    *slog.Logger
	sessions  sessionGetter
	publicURL string
}

func NewHandlers(logger *slog.Logger, sessions sessionGetter, publicURL string) Handlers {
	return &handlers{
		logger:    logger.With("component", "rest"),
		sessions:  sessions,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// SessionHandler returns the stored session as JSON.
func (that *handlers) SessionHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, ok := that.lookupSession(w, r, ps)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(session); err != nil {
		that.logger.Error("failed to encode session", "sessionID", session.ID, "error", err)
	}
}

// QRHandler renders a PNG QR code pointing players at the game.
func (that *handlers) QRHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	session, ok := that.lookupSession(w, r, ps)
	if !ok {
		return
	}

	png, err := qrcode.Encode(that.shareURL(session.ID), qrcode.Medium, qrSize)
	if err != nil {
		that.logger.Error("qr generation failed", "sessionID", session.ID, "error", err)
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (that *handlers) shareURL(sessionID string) string {
	return that.publicURL + "/?game=" + url.QueryEscape(sessionID)
}

func (that *handlers) lookupSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) (*entity.Session, bool) {
	sessionID := ps.ByName("id")
	if sessionID == "" {
		http.Error(w, "missing game id", http.StatusBadRequest)
		return nil, false
	}

	session, err := that.sessions.GetSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperror.ErrSessionNotFound) {
			http.Error(w, "game not found", http.StatusNotFound)
			return nil, false
		}

		that.logger.Error("failed to get session", "sessionID", sessionID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}

	return session, true
}
