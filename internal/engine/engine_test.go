package engine

import (
	"testing"

	"github.com/rocketscienceinc/partyboard/internal/apperror"
	"github.com/rocketscienceinc/partyboard/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	playerX = entity.Player{ID: 1, Name: "Xena", Symbol: "❌", Mood: entity.MoodHappy}
	playerO = entity.Player{ID: 2, Name: "Otto", Symbol: "⭕", Mood: entity.MoodSad}
)

func fourPlayers() []entity.Player {
	return []entity.Player{
		{ID: 1, Name: "Ann", Symbol: "😊", Mood: entity.MoodHappy},
		{ID: 2, Name: "Bob", Symbol: "😢", Mood: entity.MoodSad},
		{ID: 3, Name: "Cid", Symbol: "😠", Mood: entity.MoodAngry},
		{ID: 4, Name: "Dee", Symbol: "😐", Mood: entity.MoodNeutral},
	}
}

func mustCreate(t *testing.T, players []entity.Player, config entity.BoardConfig) *entity.GameState {
	t.Helper()

	state, err := CreateGame(players, config)
	require.NoError(t, err)

	return state
}

func mustMove(t *testing.T, state *entity.GameState, row, col int) (*entity.GameState, *entity.MoveResult) {
	t.Helper()

	next, result, err := ApplyMove(state, row, col)
	require.NoError(t, err)
	require.NotNil(t, result)

	return next, result
}

func TestCreateGame(t *testing.T) {
	t.Run("Fresh game is empty with the first player to move", func(t *testing.T) {
		// When: creating a 2 player game
		config := entity.BoardConfig{Size: 3, WinLength: 3, DiagonalScope: entity.DiagonalAny}
		state := mustCreate(t, []entity.Player{playerX, playerO}, config)

		// Then: the state matches the initial shape
		expected := &entity.GameState{
			Config:             config,
			Players:            []entity.Player{playerX, playerO},
			Board:              entity.Board{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
			CurrentPlayerIndex: 0,
			Outcome:            entity.Outcome{Kind: entity.OutcomeNone},
		}
		require.Equal(t, expected, state)
		assert.False(t, state.IsTerminal())
	})

	t.Run("Needs at least two players", func(t *testing.T) {
		config := entity.BoardConfig{Size: 3, WinLength: 3, DiagonalScope: entity.DiagonalAny}

		_, err := CreateGame([]entity.Player{playerX}, config)

		assert.ErrorIs(t, err, apperror.ErrNotEnoughPlayers)
	})

	t.Run("Rejects duplicate ids", func(t *testing.T) {
		config := entity.BoardConfig{Size: 3, WinLength: 3, DiagonalScope: entity.DiagonalAny}
		clone := playerO
		clone.ID = playerX.ID

		_, err := CreateGame([]entity.Player{playerX, clone}, config)

		assert.ErrorIs(t, err, apperror.ErrDuplicatePlayerID)
	})

	t.Run("Rejects a win length longer than the board", func(t *testing.T) {
		config := entity.BoardConfig{Size: 3, WinLength: 4, DiagonalScope: entity.DiagonalAny}

		_, err := CreateGame([]entity.Player{playerX, playerO}, config)

		assert.ErrorIs(t, err, apperror.ErrInvalidConfig)
	})

	t.Run("Does not alias the caller's player slice", func(t *testing.T) {
		players := []entity.Player{playerX, playerO}
		config := entity.BoardConfig{Size: 3, WinLength: 3, DiagonalScope: entity.DiagonalAny}
		state := mustCreate(t, players, config)

		players[0].Name = "Renamed"

		assert.Equal(t, "Xena", state.Players[0].Name)
	})
}

func TestApplyMove_TopRowWin(t *testing.T) {
	// Given: two players on a 3x3 board needing three in a row
	state := mustCreate(t, []entity.Player{playerX, playerO}, entity.BoardConfig{Size: 3, WinLength: 3, DiagonalScope: entity.DiagonalAny})

	// When: X completes the top row
	moves := [][2]int{{0, 0}, {1, 1}, {0, 1}, {1, 0}}
	for _, move := range moves {
		var result *entity.MoveResult
		state, result = mustMove(t, state, move[0], move[1])
		require.Equal(t, entity.ResultContinue, result.Kind)
	}

	state, result := mustMove(t, state, 0, 2)

	// Then: X wins and O is the only loser
	expected := &entity.MoveResult{
		Kind:   entity.ResultWin,
		Winner: &playerX,
		Losers: []entity.Player{playerO},
	}
	require.Equal(t, expected, result)
	assert.Equal(t, entity.Outcome{Kind: entity.OutcomeWin, WinnerID: playerX.ID}, state.Outcome)
	assert.True(t, state.IsTerminal())

	t.Run("Move on a won board is rejected and changes nothing", func(t *testing.T) {
		// Given: a snapshot of the won state
		snapshot := state.Clone()

		// When: someone plays (2,2)
		after, result, err := ApplyMove(state, 2, 2)

		// Then: the game is already over
		require.ErrorIs(t, err, apperror.ErrGameFinished)

		var moveErr *apperror.InvalidMoveError
		require.ErrorAs(t, err, &moveErr)
		assert.Equal(t, apperror.GameAlreadyOver, moveErr.Reason)

		assert.Nil(t, result)
		assert.Equal(t, snapshot, state)
		assert.Equal(t, snapshot, after)
	})
}

func TestApplyMove_Rejections(t *testing.T) {
	config := entity.BoardConfig{Size: 3, WinLength: 3, DiagonalScope: entity.DiagonalAny}

	t.Run("Out of bounds", func(t *testing.T) {
		state := mustCreate(t, []entity.Player{playerX, playerO}, config)
		snapshot := state.Clone()

		for _, cell := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {7, 7}} {
			// When: playing outside the board
			_, _, err := ApplyMove(state, cell[0], cell[1])

			// Then: OutOfBounds is reported and the state is unchanged
			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
			require.Equal(t, snapshot, state)
		}
	})

	t.Run("Occupied cell", func(t *testing.T) {
		// Given: X owns the centre
		state := mustCreate(t, []entity.Player{playerX, playerO}, config)
		state, _ = mustMove(t, state, 1, 1)
		snapshot := state.Clone()

		// When: O plays the centre
		_, result, err := ApplyMove(state, 1, 1)

		// Then: CellOccupied and it is still O's turn
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Nil(t, result)
		assert.Equal(t, snapshot, state)
		assert.Equal(t, 1, state.CurrentPlayerIndex)
	})

	t.Run("Accepted move leaves the previous state untouched", func(t *testing.T) {
		state := mustCreate(t, []entity.Player{playerX, playerO}, config)
		snapshot := state.Clone()

		next, _ := mustMove(t, state, 0, 0)

		assert.Equal(t, snapshot, state)
		assert.Equal(t, playerX.ID, next.Board[0][0])
	})
}

func TestApplyMove_RoundRobin(t *testing.T) {
	// Given: three players on a 5x5 board that needs a full line
	players := []entity.Player{playerX, playerO, {ID: 3, Name: "Tri", Symbol: "△", Mood: entity.MoodNeutral}}
	state := mustCreate(t, players, entity.BoardConfig{Size: 5, WinLength: 5, DiagonalScope: entity.DiagonalAny})

	// When: ten non-winning moves are played in row-major order
	for k := 0; k < 10; k++ {
		// Then: before move k+1 it is player k mod P
		require.Equal(t, k%len(players), state.CurrentPlayerIndex, "before move %d", k+1)

		var result *entity.MoveResult
		state, result = mustMove(t, state, k/5, k%5)

		require.Equal(t, entity.ResultContinue, result.Kind)
		require.NotNil(t, result.NextPlayer)
		assert.Equal(t, players[(k+1)%len(players)], *result.NextPlayer)
	}

	assert.Equal(t, 10%len(players), state.CurrentPlayerIndex)
}

func TestApplyMove_SlidingWindowRow(t *testing.T) {
	run := [][2]int{{2, 1}, {2, 2}, {2, 3}, {2, 4}}

	for last := range run {
		// Given: a 5x5 board needing four with three cells of the run already owned by X
		state := mustCreate(t, []entity.Player{playerX, playerO}, entity.BoardConfig{Size: 5, WinLength: 4, DiagonalScope: entity.DiagonalAny})
		for i, cell := range run {
			if i != last {
				state.Board[cell[0]][cell[1]] = playerX.ID
			}
		}
		state.Board[0][0] = playerO.ID
		state.Board[4][4] = playerO.ID
		state.Board[2][0] = playerO.ID

		// When: X plays the missing cell
		_, result := mustMove(t, state, run[last][0], run[last][1])

		// Then: the run is detected immediately
		require.Equal(t, entity.ResultWin, result.Kind, "last cell %v", run[last])
		assert.Equal(t, playerX, *result.Winner)
	}
}

func TestApplyMove_OffCentreDiagonal(t *testing.T) {
	config := entity.BoardConfig{Size: 5, WinLength: 3, DiagonalScope: entity.DiagonalAny}

	// Given: X plays (1,2),(2,3) and O plays away from that diagonal
	state := mustCreate(t, []entity.Player{playerX, playerO}, config)
	state, _ = mustMove(t, state, 1, 2)
	state, _ = mustMove(t, state, 4, 0)
	state, _ = mustMove(t, state, 2, 3)
	state, _ = mustMove(t, state, 4, 1)

	// When: X completes the diagonal at (3,4)
	_, result := mustMove(t, state, 3, 4)

	// Then: X wins on a diagonal that does not touch a corner
	require.Equal(t, entity.ResultWin, result.Kind)
	assert.Equal(t, playerX, *result.Winner)

	t.Run("Corner scope ignores the same diagonal", func(t *testing.T) {
		config.DiagonalScope = entity.DiagonalCorner

		state := mustCreate(t, []entity.Player{playerX, playerO}, config)
		state, _ = mustMove(t, state, 1, 2)
		state, _ = mustMove(t, state, 4, 0)
		state, _ = mustMove(t, state, 2, 3)
		state, _ = mustMove(t, state, 4, 1)

		_, result := mustMove(t, state, 3, 4)

		assert.Equal(t, entity.ResultContinue, result.Kind)
	})
}

func TestApplyMove_FourPlayerDraw(t *testing.T) {
	// Given: four players, a 4x4 board and the capped win rule
	players := fourPlayers()
	rules := NewRules(WinRule{Policy: PolicyCapped}, entity.DiagonalAny)
	config, err := rules.ResolveConfig(len(players))
	require.NoError(t, err)
	require.Equal(t, 4, config.Size)
	require.Equal(t, 3, config.WinLength)

	// a filling with no three in a row for anybody in any direction
	owners := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}

	cells := make(map[int][][2]int)
	for row := range owners {
		for col, owner := range owners[row] {
			cells[owner] = append(cells[owner], [2]int{row, col})
		}
	}

	state := mustCreate(t, players, config)

	// When: players fill the board in turn order
	var result *entity.MoveResult
	for turn := 0; turn < 16; turn++ {
		owner := players[turn%len(players)].ID
		cell := cells[owner][turn/len(players)]

		state, result = mustMove(t, state, cell[0], cell[1])
		if turn < 15 {
			require.Equal(t, entity.ResultContinue, result.Kind, "turn %d", turn)
		}
	}

	// Then: the last move is a draw and everybody loses
	require.Equal(t, entity.ResultDraw, result.Kind)
	assert.Nil(t, result.Winner)
	assert.Equal(t, players, result.Losers)
	assert.Equal(t, entity.Outcome{Kind: entity.OutcomeDraw}, state.Outcome)

	t.Run("Draw is terminal", func(t *testing.T) {
		_, _, err := ApplyMove(state, 0, 0)
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestApplyMove_FullLineCornerVariant(t *testing.T) {
	// Given: the full-line rule with corner diagonals on a 4x4 board
	rules := NewRules(WinRule{Policy: PolicyFullLine}, entity.DiagonalCorner)
	config, err := rules.ResolveConfig(4)
	require.NoError(t, err)

	state := mustCreate(t, fourPlayers(), config)
	state.Board = entity.Board{
		{1, 0, 0, 2},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{3, 0, 0, 0},
	}

	// When: player 1 completes the main diagonal
	_, result := mustMove(t, state, 3, 3)

	// Then: the corner-to-corner line wins
	require.Equal(t, entity.ResultWin, result.Kind)
	assert.Equal(t, 1, result.Winner.ID)
	assert.Len(t, result.Losers, 3)
}
