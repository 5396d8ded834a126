package entity

// Cell is the content of one board square. The zero value is an empty square.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX
	PlayerO
)

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// MoverAt - returns the player who places a mark on top of the board reached by move number.
// X always opens, so even move numbers belong to X.
func MoverAt(move int) Cell {
	if move%2 == 0 {
		return PlayerX
	}
	return PlayerO
}
