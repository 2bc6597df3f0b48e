package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
)

type stubSessions map[string]*entity.Session

func (that stubSessions) GetSession(_ context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "BROKEN" {
		return nil, errors.New("redis down")
	}

	session, ok := that[sessionID]
	if !ok {
		return nil, apperror.ErrSessionNotFound
	}

	return session, nil
}

func newTestRouter() http.Handler {
	sessions := stubSessions{
		"ABCD1234": {
			ID: "ABCD1234",
			State: &entity.GameState{
				Config: entity.BoardConfig{Size: 3, WinLength: 3, DiagonalScope: entity.DiagonalAny},
				Board:  entity.NewBoard(3),
			},
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouter(NewHandlers(logger, sessions, "https://party.example/"))
}

func serve(router http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestPingHandler(t *testing.T) {
	recorder := serve(newTestRouter(), "/ping")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestQRHandler(t *testing.T) {
	router := newTestRouter()

	t.Run("Known game", func(t *testing.T) {
		// When: requesting the QR code of a live game
		recorder := serve(router, "/games/ABCD1234/qr")

		// Then: a PNG is returned
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
		assert.Equal(t, []byte("\x89PNG"), recorder.Body.Bytes()[:4])
	})

	t.Run("Unknown game", func(t *testing.T) {
		recorder := serve(router, "/games/NOPE/qr")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Storage failure", func(t *testing.T) {
		recorder := serve(router, "/games/BROKEN/qr")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestSessionHandler(t *testing.T) {
	recorder := serve(newTestRouter(), "/games/ABCD1234")

	require.Equal(t, http.StatusOK, recorder.Code)

	var session entity.Session
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &session))
	assert.Equal(t, "ABCD1234", session.ID)
	assert.Equal(t, 3, session.State.Config.Size)
}

func TestShareURL(t *testing.T) {
	h := NewHandlers(slog.New(slog.NewTextHandler(io.Discard, nil)), stubSessions{}, "https://party.example/").(*handlers)

	assert.Equal(t, "https://party.example/?game=ABCD1234", h.shareURL("ABCD1234"))
}

func TestStart(t *testing.T) {
	h := NewHandlers(slog.New(slog.NewTextHandler(io.Discard, nil)), stubSessions{}, "")

	t.Run("Stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- Start(ctx, "0", h)
		}()

		// When: the context is cancelled
		cancel()

		// Then: Start returns without an error
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("Bad port", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		err := Start(ctx, "not-a-port", h)

		require.Error(t, err)
	})
}
