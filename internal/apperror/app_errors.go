package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished           = errors.New("game is already finished")
	ErrCellOccupied           = errors.New("cell is already occupied")
	ErrOutOfBounds            = errors.New("cell is out of bounds")
	ErrUnsupportedPlayerCount = errors.New("unsupported player count")
	ErrNotEnoughPlayers       = errors.New("not enough players")
	ErrDuplicatePlayerID      = errors.New("duplicate player id")
	ErrInvalidPlayer          = errors.New("invalid player")
	ErrInvalidConfig          = errors.New("invalid board config")
	ErrSessionNotFound        = errors.New("session not found")

	ErrGameIsNotFinished     = errors.New("game is not finished")
	ErrModeAlreadySelected   = errors.New("challenge mode already selected")
	ErrModeNotSelected       = errors.New("challenge mode is not selected")
	ErrUnknownChallengeMode  = errors.New("unknown challenge mode")
	ErrUnknownChallengeKind  = errors.New("unknown challenge kind")
	ErrChallengeNotChosen    = errors.New("truth or dare is not chosen")
	ErrChallengeFinished     = errors.New("challenge round is finished")
	ErrEmptyChallengeBank    = errors.New("challenge bank is empty")
	ErrAnswerNotConvincing   = errors.New("answer is not convincing")
	ErrAnswerNotRequired     = errors.New("dares do not take an answer")
	ErrChallengeNotAvailable = errors.New("no challenge round for this game")
)

// MoveRejection names why a move was refused.
type MoveRejection string

const (
	OutOfBounds     MoveRejection = "OutOfBounds"
	CellOccupied    MoveRejection = "CellOccupied"
	GameAlreadyOver MoveRejection = "GameAlreadyOver"
)

// InvalidMoveError is returned by the rules engine for a refused move.
// It matches the corresponding sentinel through errors.Is.
type InvalidMoveError struct {
	Reason MoveRejection
	Row    int
	Col    int
}

func (that *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move (%d,%d): %s", that.Row, that.Col, that.Reason)
}

func (that *InvalidMoveError) Is(target error) bool {
	switch that.Reason {
	case OutOfBounds:
		return target == ErrOutOfBounds
	case CellOccupied:
		return target == ErrCellOccupied
	case GameAlreadyOver:
		return target == ErrGameFinished
	default:
		return false
	}
}

// ConfigError reports a player count the board config resolver cannot serve.
type ConfigError struct {
	PlayerCount int
}

func (that *ConfigError) Error() string {
	return fmt.Sprintf("%s: %d (supported 2-6)", ErrUnsupportedPlayerCount, that.PlayerCount)
}

func (that *ConfigError) Is(target error) bool {
	return target == ErrUnsupportedPlayerCount
}
