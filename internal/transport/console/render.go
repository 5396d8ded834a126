package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const (
	colorX = "1"
	colorO = "4"

	rowSeparator = "---+---+---"
)

type renderer struct {
	output *termenv.Output
}

func newRenderer(output *termenv.Output) *renderer {
	return &renderer{output: output}
}

// frame - draws the board, the status line and the move list of view.
func (that *renderer) frame(view *usecase.GameView) error {
	var sb strings.Builder

	line, won := entity.WinningLine(view.Board)

	for row := range 3 {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}

		cells := make([]string, 3)
		for col := range cells {
			idx := row*3 + col
			highlight := won && (idx == line[0] || idx == line[1] || idx == line[2])
			cells[col] = " " + that.cell(idx, view.Board[idx], highlight) + " "
		}
		sb.WriteString(strings.Join(cells, "|") + "\n")
	}

	sb.WriteString(that.output.String(view.Status.String()).Bold().String() + "\n")

	for _, move := range view.Moves {
		marker := "  "
		if move.Number == view.Cursor {
			marker = "> "
		}
		fmt.Fprintf(&sb, "%s%d. %s\n", marker, move.Number, move.Description())
	}

	return that.line(strings.TrimSuffix(sb.String(), "\n"))
}

func (that *renderer) cell(idx int, cell entity.Cell, highlight bool) string {
	switch cell {
	case entity.PlayerX, entity.PlayerO:
		color := colorX
		if cell == entity.PlayerO {
			color = colorO
		}

		style := that.output.String(cell.String()).Foreground(that.output.Color(color))
		if highlight {
			style = style.Bold().Underline()
		}
		return style.String()
	default:
		return that.output.String(strconv.Itoa(idx)).Faint().String()
	}
}

func (that *renderer) errorLine(err error) error {
	return that.line("error: " + err.Error())
}

func (that *renderer) prompt(prompt string) error {
	if _, err := fmt.Fprint(that.output, prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

func (that *renderer) line(text string) error {
	if _, err := fmt.Fprintln(that.output, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
