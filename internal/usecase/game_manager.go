package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/challenge"
	"github.com/rocketscienceinc/partyboard/internal/engine"
	"github.com/rocketscienceinc/partyboard/internal/entity"
	"github.com/rocketscienceinc/partyboard/internal/pkg"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

type rosterRepo interface {
	Save(ctx context.Context, sessionID string, players []entity.Player) error
	GetByID(ctx context.Context, sessionID string) ([]entity.Player, error)
}

// GameManager runs board games and the truth or dare round that follows them.
type GameManager struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	rosterRepo  rosterRepo

	rules     *engine.Rules
	picker    *challenge.Picker
	validator challenge.Validator

	// serialises read-modify-write of sessions
	mu sync.Mutex
}

func NewGameManager(
	logger *slog.Logger,
	sessionRepo sessionRepo,
	rosterRepo rosterRepo,
	rules *engine.Rules,
	picker *challenge.Picker,
	validator challenge.Validator,
) *GameManager {
	return &GameManager{
		logger:      logger.With("component", "game_manager"),
		sessionRepo: sessionRepo,
		rosterRepo:  rosterRepo,
		rules:       rules,
		picker:      picker,
		validator:   validator,
	}
}

// StartGame validates the roster and opens a new session with an empty board.
func (that *GameManager) StartGame(ctx context.Context, players []entity.Player) (*entity.Session, error) {
	log := that.logger.With("method", "StartGame")

	roster := make([]entity.Player, len(players))
	for i, player := range players {
		player.Normalize()
		if err := player.Validate(); err != nil {
			return nil, fmt.Errorf("invalid roster: %w", err)
		}
		roster[i] = player
	}

	config, err := that.rules.ResolveConfig(len(roster))
	if err != nil {
		return nil, fmt.Errorf("failed resolve board config: %w", err)
	}

	state, err := engine.CreateGame(roster, config)
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	session := &entity.Session{
		ID:        pkg.GenerateGameID(),
		State:     state,
		CreatedAt: time.Now().UTC(),
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err = that.rosterRepo.Save(ctx, session.ID, roster); err != nil {
		log.Warn("failed to save roster", "sessionID", session.ID, "error", err)
	}

	log.Info("game started",
		"sessionID", session.ID,
		"players", len(roster),
		"size", config.Size,
		"winLength", config.WinLength,
		"diagonalScope", config.DiagonalScope,
	)

	return session, nil
}

// Rematch starts a new game with the roster of an earlier session.
func (that *GameManager) Rematch(ctx context.Context, sessionID string) (*entity.Session, error) {
	players, err := that.rosterRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed get roster: %w", err)
	}

	return that.StartGame(ctx, players)
}

func (that *GameManager) GetSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// MakeMove plays the current player at (row, col). A rejected move returns the
// stored session untouched together with the error.
func (that *GameManager) MakeMove(ctx context.Context, sessionID string, row, col int) (*entity.Session, *entity.MoveResult, error) {
	log := that.logger.With("method", "MakeMove", "sessionID", sessionID)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	state, result, err := engine.ApplyMove(session.State, row, col)
	if err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)
		return session, nil, fmt.Errorf("failed make move: %w", err)
	}

	session.State = state

	if result.IsFinal() {
		if session.Challenge, err = challenge.NewRound(result); err != nil {
			return nil, nil, fmt.Errorf("failed open challenge round: %w", err)
		}

		log.Info("game finished", "result", result.Kind, "losers", len(result.Losers))
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed update session: %w", err)
	}

	return session, result, nil
}

func (that *GameManager) SelectChallengeMode(ctx context.Context, sessionID string, mode entity.ChallengeMode) (*entity.Session, error) {
	return that.updateChallenge(ctx, sessionID, func(round *entity.ChallengeRound) error {
		return challenge.SelectMode(round, mode)
	})
}

func (that *GameManager) ChooseChallenge(ctx context.Context, sessionID string, kind entity.ChallengeKind) (*entity.Session, error) {
	return that.updateChallenge(ctx, sessionID, func(round *entity.ChallengeRound) error {
		return challenge.Choose(round, kind, that.picker)
	})
}

func (that *GameManager) RerollChallenge(ctx context.Context, sessionID string) (*entity.Session, error) {
	return that.updateChallenge(ctx, sessionID, func(round *entity.ChallengeRound) error {
		return challenge.Reroll(round, that.picker)
	})
}

func (that *GameManager) SubmitAnswer(ctx context.Context, sessionID, answer string) (*entity.Session, error) {
	return that.updateChallenge(ctx, sessionID, func(round *entity.ChallengeRound) error {
		return challenge.Submit(round, answer, that.validator)
	})
}

// NextChallenge moves to the next loser. When the round is over the session is
// removed; the roster stays for a rematch.
func (that *GameManager) NextChallenge(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := that.updateChallenge(ctx, sessionID, challenge.Next)
	if err != nil {
		return nil, err
	}

	if session.Challenge.Finished {
		that.deleteSession(ctx, sessionID)
	}

	return session, nil
}

// EndSession abandons a game at any point.
func (that *GameManager) EndSession(ctx context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	that.logger.Info("session ended", "sessionID", sessionID)

	return nil
}

func (that *GameManager) updateChallenge(ctx context.Context, sessionID string, update func(round *entity.ChallengeRound) error) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Challenge == nil {
		return session, apperror.ErrChallengeNotAvailable
	}

	if err = update(session.Challenge); err != nil {
		return session, fmt.Errorf("failed update challenge: %w", err)
	}

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed update session: %w", err)
	}

	return session, nil
}

func (that *GameManager) deleteSession(ctx context.Context, sessionID string) {
	log := that.logger.With("method", "deleteSession", "sessionID", sessionID)

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil && !errors.Is(err, apperror.ErrSessionNotFound) {
		log.Error("failed to delete session", "error", err)
		return
	}

	log.Info("challenge round finished, session deleted")
}
