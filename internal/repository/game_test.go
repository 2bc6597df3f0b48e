package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
	"github.com/rocketscienceinc/partyboard/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(id string) *entity.Session {
	players := []entity.Player{
		{ID: 1, Name: "Ann", Symbol: "❌", Mood: entity.MoodHappy},
		{ID: 2, Name: "Bob", Symbol: "⭕", Mood: entity.MoodSad},
	}

	board := entity.NewBoard(3)
	board[1][1] = 1

	return &entity.Session{
		ID: id,
		State: &entity.GameState{
			Config:             entity.BoardConfig{Size: 3, WinLength: 3, DiagonalScope: entity.DiagonalAny},
			Players:            players,
			Board:              board,
			CurrentPlayerIndex: 1,
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, suite.SessionTTL)

	// Given: a session with a started game
	session := newSession("ABC123")

	// When: CreateOrUpdate is called
	err := sessionRepo.CreateOrUpdate(ctx, session)

	// Then: the session is stored with a ttl
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "game:ABC123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, suite.SessionTTL)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, suite.SessionTTL)

		// Given: a stored session with a challenge round
		session := newSession("ABC123")
		session.Challenge = &entity.ChallengeRound{
			Losers: session.State.Players[1:],
			Mode:   entity.ModeWaiting,
		}
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: GetByID is called with its id
		retrieved, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: the session round-trips unchanged
		require.NoError(t, err)
		assert.Equal(t, session, retrieved)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, suite.SessionTTL)

		// When: GetByID is called with an unknown id
		retrieved, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, suite.SessionTTL)

		session := newSession("ABC123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: DeleteByID is called with an existing id
		err := sessionRepo.DeleteByID(ctx, session.ID)

		// Then: the session is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, session.ID)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, suite.SessionTTL)

		err := sessionRepo.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}

func TestRosterRepository(t *testing.T) {
	ctx, st := suite.New(t)

	rosterRepo := NewRosterRepository(st.Storage, suite.SessionTTL)
	players := newSession("ABC123").State.Players

	t.Run("Save and GetByID", func(t *testing.T) {
		require.NoError(t, rosterRepo.Save(ctx, "ABC123", players))

		retrieved, err := rosterRepo.GetByID(ctx, "ABC123")

		require.NoError(t, err)
		assert.Equal(t, players, retrieved)
	})

	t.Run("Unknown roster", func(t *testing.T) {
		_, err := rosterRepo.GetByID(ctx, "nope")

		assert.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
