package usecase_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-timetravel/testing/suite"
)

func TestGameManager_View(t *testing.T) {
	_, st := suite.New(t)

	// When: reading the view of a new session
	view := st.Manager.View()

	// Then: the session has a uuid and an empty game
	_, err := uuid.Parse(view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, st.Manager.SessionID(), view.SessionID)
	assert.Equal(t, entity.Board{}, view.Board)
	assert.Equal(t, 0, view.Cursor)
	assert.Equal(t, "Next player: X", view.Status.String())
	require.Len(t, view.Moves, 1)
	assert.Equal(t, "Go to game start", view.Moves[0].Description())
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Applied turn is reflected in the view", func(t *testing.T) {
		_, st := suite.New(t)

		// When: X plays the center
		view, err := st.Manager.MakeTurn(4)

		// Then: the view shows the mark and the new move
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, view.Board[4])
		assert.Equal(t, 1, view.Cursor)
		assert.Len(t, view.Moves, 2)
		assert.Contains(t, st.Logs.String(), `"msg":"turn applied"`)
	})

	t.Run("Ignored turn keeps the view", func(t *testing.T) {
		_, st := suite.New(t)
		_, err := st.Manager.MakeTurn(4)
		require.NoError(t, err)

		// When: O plays the occupied center
		view, err := st.Manager.MakeTurn(4)

		// Then: nothing changes
		require.NoError(t, err)
		assert.Equal(t, 1, view.Cursor)
		assert.Len(t, view.Moves, 2)
		assert.Contains(t, st.Logs.String(), `"msg":"turn ignored"`)
	})

	t.Run("Out of range cell is an error", func(t *testing.T) {
		_, st := suite.New(t)

		view, err := st.Manager.MakeTurn(9)

		require.ErrorIs(t, err, apperror.ErrInvalidArgument)
		assert.Nil(t, view)
		assert.Contains(t, st.Logs.String(), `"msg":"rejected turn"`)
	})

	t.Run("Finished game is logged", func(t *testing.T) {
		_, st := suite.New(t)

		var view *usecase.GameView
		for _, cell := range []int{0, 4, 1, 3, 2} {
			v, err := st.Manager.MakeTurn(cell)
			require.NoError(t, err)
			view = v
		}

		assert.Equal(t, entity.Status{Kind: entity.StatusWinner, Player: entity.PlayerX}, view.Status)
		assert.Contains(t, st.Logs.String(), `"msg":"game finished"`)
	})
}

func TestGameManager_JumpTo(t *testing.T) {
	t.Run("Jump and branch", func(t *testing.T) {
		_, st := suite.New(t)
		for _, cell := range []int{0, 4, 1, 3, 8} {
			_, err := st.Manager.MakeTurn(cell)
			require.NoError(t, err)
		}

		// When: jumping to the start and playing again
		view, err := st.Manager.JumpTo(0)
		require.NoError(t, err)
		assert.Equal(t, entity.Board{}, view.Board)
		assert.Len(t, view.Moves, 6)

		view, err = st.Manager.MakeTurn(0)

		// Then: the old branch is discarded
		require.NoError(t, err)
		assert.Len(t, view.Moves, 2)
		assert.Equal(t, 1, view.Cursor)
	})

	t.Run("Out of range move is an error", func(t *testing.T) {
		_, st := suite.New(t)

		view, err := st.Manager.JumpTo(3)

		require.ErrorIs(t, err, apperror.ErrInvalidArgument)
		assert.Nil(t, view)
		assert.Equal(t, 0, st.Manager.View().Cursor)
	})
}

func TestGameManager_ConcurrentTurns(t *testing.T) {
	_, st := suite.New(t)

	// When: every cell is played at once from separate goroutines
	var wg sync.WaitGroup
	for cell := range entity.BoardSize {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := st.Manager.MakeTurn(cell)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Then: history stays consistent, each snapshot adding exactly one mark
	view := st.Manager.View()
	for i, move := range view.Moves {
		assert.Equal(t, i, move.Number)
		assert.Equal(t, i, move.Board.Occupied())
	}
	assert.Equal(t, len(view.Moves)-1, view.Cursor)
}
