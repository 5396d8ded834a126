package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one game session over in and out until the input ends or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	gameManager := usecase.NewGameManager(logger)
	consoleServer := console.New(logger, gameManager, conf.Console)

	log.Info("Starting game session", "session", gameManager.SessionID())

	if err := consoleServer.Start(ctx, in, out); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Game session ended", "session", gameManager.SessionID(), "status", gameManager.View().Status.String())

	return nil
}
