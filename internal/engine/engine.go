package engine

import (
	"fmt"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
)

// CreateGame returns a fresh game: empty board, first player to move, no outcome.
func CreateGame(players []entity.Player, config entity.BoardConfig) (*entity.GameState, error) {
	if len(players) < MinPlayers {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrNotEnoughPlayers, len(players))
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(players))
	for _, player := range players {
		if player.ID <= entity.EmptyCell {
			return nil, fmt.Errorf("%w: id must be positive, got %d", apperror.ErrInvalidPlayer, player.ID)
		}

		if _, ok := seen[player.ID]; ok {
			return nil, fmt.Errorf("%w: %d", apperror.ErrDuplicatePlayerID, player.ID)
		}
		seen[player.ID] = struct{}{}
	}

	return &entity.GameState{
		Config:             config,
		Players:            append([]entity.Player(nil), players...),
		Board:              entity.NewBoard(config.Size),
		CurrentPlayerIndex: 0,
		Outcome:            entity.Outcome{Kind: entity.OutcomeNone},
	}, nil
}

// ApplyMove plays the current player at (row, col). The given state is never
// modified; an accepted move returns a new state.
func ApplyMove(state *entity.GameState, row, col int) (*entity.GameState, *entity.MoveResult, error) {
	if err := validateMove(state, row, col); err != nil {
		return state, nil, err
	}

	next := state.Clone()
	player := next.CurrentPlayer()
	next.Board[row][col] = player.ID

	config := next.Config
	if CheckWin(next.Board, row, col, player.ID, config.WinLength, config.DiagonalScope) {
		next.Outcome = entity.Outcome{Kind: entity.OutcomeWin, WinnerID: player.ID}

		return next, &entity.MoveResult{
			Kind:   entity.ResultWin,
			Winner: &player,
			Losers: losersOf(next.Players, player.ID),
		}, nil
	}

	if next.Board.IsFull() {
		next.Outcome = entity.Outcome{Kind: entity.OutcomeDraw}

		return next, &entity.MoveResult{
			Kind:   entity.ResultDraw,
			Losers: append([]entity.Player(nil), next.Players...),
		}, nil
	}

	next.CurrentPlayerIndex = (next.CurrentPlayerIndex + 1) % len(next.Players)
	nextPlayer := next.CurrentPlayer()

	return next, &entity.MoveResult{
		Kind:       entity.ResultContinue,
		NextPlayer: &nextPlayer,
	}, nil
}

// validateMove - checks the move against a terminal game first, then bounds, then occupancy.
func validateMove(state *entity.GameState, row, col int) error {
	switch {
	case state.IsTerminal():
		return &apperror.InvalidMoveError{Reason: apperror.GameAlreadyOver, Row: row, Col: col}
	case !state.Board.InBounds(row, col):
		return &apperror.InvalidMoveError{Reason: apperror.OutOfBounds, Row: row, Col: col}
	case !state.Board.IsEmpty(row, col):
		return &apperror.InvalidMoveError{Reason: apperror.CellOccupied, Row: row, Col: col}
	default:
		return nil
	}
}

func losersOf(players []entity.Player, winnerID int) []entity.Player {
	losers := make([]entity.Player, 0, len(players)-1)
	for _, player := range players {
		if player.ID != winnerID {
			losers = append(losers, player)
		}
	}
	return losers
}
