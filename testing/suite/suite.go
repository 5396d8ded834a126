package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
	Logs   *bytes.Buffer

	Manager *usecase.GameManager
}

// New - builds a debug-level JSON logger writing into Logs and a fresh game session.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Logs:    logs,
		Manager: usecase.NewGameManager(logger),
	}
}
