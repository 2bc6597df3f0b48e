package entity

import "time"

const EmptyCell = 0

// DiagonalScope selects which diagonals through a played cell can win.
type DiagonalScope string

const (
	// DiagonalAny checks every diagonal through the played cell.
	DiagonalAny DiagonalScope = "any"
	// DiagonalCorner checks only the two corner-to-corner diagonals.
	DiagonalCorner DiagonalScope = "corner"
)

type OutcomeKind string

const (
	OutcomeNone OutcomeKind = ""
	OutcomeWin  OutcomeKind = "win"
	OutcomeDraw OutcomeKind = "draw"
)

type ResultKind string

const (
	ResultContinue ResultKind = "continue"
	ResultWin      ResultKind = "win"
	ResultDraw     ResultKind = "draw"
)

type BoardConfig struct {
	Size          int           `json:"size"`
	WinLength     int           `json:"win_length"`
	DiagonalScope DiagonalScope `json:"diagonal_scope"`
}

// Board holds owner player ids by [row][col]; EmptyCell marks a free cell.
type Board [][]int

func NewBoard(size int) Board {
	board := make(Board, size)
	for i := range board {
		board[i] = make([]int, size)
	}
	return board
}

func (that Board) Size() int {
	return len(that)
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < len(that) && col >= 0 && col < len(that)
}

func (that Board) IsEmpty(row, col int) bool {
	return that[row][col] == EmptyCell
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}
	return true
}

func (that Board) Clone() Board {
	board := make(Board, len(that))
	for i, row := range that {
		board[i] = append([]int(nil), row...)
	}
	return board
}

type Outcome struct {
	Kind     OutcomeKind `json:"kind"`
	WinnerID int         `json:"winner_id,omitempty"`
}

// GameState is the whole rules state of one game. It is replaced, never patched,
// by each accepted move.
type GameState struct {
	Config             BoardConfig `json:"config"`
	Players            []Player    `json:"players"`
	Board              Board       `json:"board"`
	CurrentPlayerIndex int         `json:"current_player_index"`
	Outcome            Outcome     `json:"outcome"`
}

func (that *GameState) IsTerminal() bool {
	return that.Outcome.Kind != OutcomeNone
}

func (that *GameState) CurrentPlayer() Player {
	return that.Players[that.CurrentPlayerIndex]
}

func (that *GameState) PlayerByID(id int) (Player, bool) {
	for _, player := range that.Players {
		if player.ID == id {
			return player, true
		}
	}
	return Player{}, false
}

func (that *GameState) Clone() *GameState {
	clone := *that
	clone.Players = append([]Player(nil), that.Players...)
	clone.Board = that.Board.Clone()
	return &clone
}

// MoveResult is emitted for every accepted move.
type MoveResult struct {
	Kind       ResultKind `json:"kind"`
	Winner     *Player    `json:"winner,omitempty"`
	Losers     []Player   `json:"losers,omitempty"`
	NextPlayer *Player    `json:"next_player,omitempty"`
}

func (that *MoveResult) IsFinal() bool {
	return that.Kind == ResultWin || that.Kind == ResultDraw
}

// Session is one active game as kept by the session store.
type Session struct {
	ID        string          `json:"id"`
	State     *GameState      `json:"state"`
	Challenge *ChallengeRound `json:"challenge,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
