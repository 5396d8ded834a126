package usecase

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

// GameView is everything a presentation layer needs to draw one frame.
type GameView struct {
	SessionID string
	Board     entity.Board
	Cursor    int
	Status    entity.Status
	Moves     []entity.Move
}

// GameManager owns one game session. Every operation holds the mutex for its whole read-then-write.
type GameManager struct {
	logger    *slog.Logger
	sessionID string

	mu         sync.Mutex
	controller *tictactoe.GameController
}

func NewGameManager(logger *slog.Logger) *GameManager {
	sessionID := uuid.NewString()

	return &GameManager{
		logger:     logger.With("component", "game_manager", "session", sessionID),
		sessionID:  sessionID,
		controller: tictactoe.NewGameController(),
	}
}

func (that *GameManager) SessionID() string {
	return that.sessionID
}

func (that *GameManager) MakeTurn(cell int) (*GameView, error) {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	mover := that.controller.CurrentMover()

	applied, err := that.controller.ApplyMove(cell)
	if err != nil {
		log.Warn("rejected turn", "error", err)
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if !applied {
		log.Debug("turn ignored", "cursor", that.controller.Cursor(), "status", that.controller.Status().String())
		return that.viewLocked(), nil
	}

	status := that.controller.Status()
	log.Debug("turn applied", "player", mover.String(), "move", that.controller.Cursor())

	if status.IsFinished() {
		log.Info("game finished", "status", status.String(), "moves", that.controller.Cursor())
	}

	return that.viewLocked(), nil
}

func (that *GameManager) JumpTo(move int) (*GameView, error) {
	log := that.logger.With("method", "JumpTo", "move", move)

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.controller.JumpTo(move); err != nil {
		log.Warn("rejected jump", "error", err)
		return nil, fmt.Errorf("failed jump to move: %w", err)
	}

	log.Debug("jumped", "history", that.controller.Len())

	return that.viewLocked(), nil
}

func (that *GameManager) View() *GameView {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.viewLocked()
}

func (that *GameManager) viewLocked() *GameView {
	return &GameView{
		SessionID: that.sessionID,
		Board:     that.controller.CurrentSnapshot(),
		Cursor:    that.controller.Cursor(),
		Status:    that.controller.Status(),
		Moves:     slices.Collect(that.controller.Moves()),
	}
}
