package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

type gameManager interface {
	MakeTurn(cell int) (*usecase.GameView, error)
	JumpTo(move int) (*usecase.GameView, error)
	View() *usecase.GameView
}

// Server is a line-oriented terminal front end for one game session.
type Server struct {
	logger  *slog.Logger
	manager gameManager

	prompt  string
	noColor bool
}

func New(logger *slog.Logger, manager gameManager, conf config.Console) *Server {
	return &Server{
		logger:  logger.With("component", "console"),
		manager: manager,
		prompt:  conf.Prompt,
		noColor: conf.NoColor,
	}
}

// Start - reads commands from in and draws the game to out until EOF, a quit command or ctx is done.
func (that *Server) Start(ctx context.Context, in io.Reader, out io.Writer) error {
	log := that.logger.With("method", "Start")

	var opts []termenv.OutputOption
	if that.noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	r := newRenderer(termenv.NewOutput(out, opts...))

	lines, scanErr := scanLines(ctx, in)

	if err := r.frame(that.manager.View()); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	for {
		if err := r.prompt(that.prompt); err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}

		select {
		case <-ctx.Done():
			log.Info("context canceled, stopping console")
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				log.Info("input closed, stopping console")
				return nil
			}

			quit, err := that.handleLine(line, r)
			if err != nil {
				return fmt.Errorf("failed to render: %w", err)
			}

			if quit {
				log.Info("quit requested")
				return nil
			}
		}
	}
}

func scanLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		scanErr <- scanner.Err()
	}()

	return lines, scanErr
}
