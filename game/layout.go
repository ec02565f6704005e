package game

import (
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Layout is the static board: walls, initial food and capsules, and agent start cells.
type Layout struct {
	Width    int
	Height   int
	walls    []bool // Indexed by x*Height + y
	Food     []Position
	Capsules []Position
	Starts   []Position // Indexed by agent
}

// ParseLayout reads a board drawn as text. The first line is the top row.
//
//	%  wall
//	.  food
//	o  capsule
//	1-4 start cell of agent 0-3
func ParseLayout(text string) (*Layout, error) {
	var rows []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty layout")
	}

	width := len(rows[0])
	height := len(rows)
	l := &Layout{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
	}

	starts := map[int]Position{}
	for row, line := range rows {
		if len(line) > width {
			return nil, fmt.Errorf("row %d is %d wide, expected %d", row, len(line), width)
		}
		// Trailing spaces were trimmed, pad them back
		line += strings.Repeat(" ", width-len(line))
		y := height - 1 - row
		for x, c := range line {
			p := Position{X: x, Y: y}
			switch {
			case c == '%':
				l.walls[l.index(p)] = true
			case c == '.':
				l.Food = append(l.Food, p)
			case c == 'o':
				l.Capsules = append(l.Capsules, p)
			case c >= '1' && c <= '4':
				agent := int(c - '1')
				if _, dup := starts[agent]; dup {
					return nil, fmt.Errorf("agent %d placed twice", agent+1)
				}
				starts[agent] = p
			case c == ' ':
			default:
				return nil, fmt.Errorf("unknown layout character %q at %v", c, p)
			}
		}
	}

	for agent := 0; agent < len(starts); agent++ {
		p, ok := starts[agent]
		if !ok {
			return nil, fmt.Errorf("agent %d has no start cell", agent+1)
		}
		l.Starts = append(l.Starts, p)
	}
	if len(l.Starts) != len(starts) {
		return nil, fmt.Errorf("agent start cells must be numbered from 1 without gaps")
	}

	sortPositions(l.Food)
	sortPositions(l.Capsules)
	return l, nil
}

// LoadLayout parses a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	l, err := ParseLayout(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return l, nil
}

// MustParseLayout is ParseLayout for layouts known to be valid.
func MustParseLayout(text string) *Layout {
	l, err := ParseLayout(text)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) HasWall(x, y int) bool {
	if x < 0 || y < 0 || x >= l.Width || y >= l.Height {
		return true
	}
	return l.walls[l.index(Position{X: x, Y: y})]
}

// IsRedSide reports whether p lies on the red (left) half of the board.
func (l *Layout) IsRedSide(p Position) bool {
	return p.X < l.Width/2
}

// OpenCells lists every non-wall cell in column-major order.
func (l *Layout) OpenCells() []Position {
	var cells []Position
	for x := 0; x < l.Width; x++ {
		for y := 0; y < l.Height; y++ {
			if !l.HasWall(x, y) {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

func (l *Layout) index(p Position) int {
	return p.X*l.Height + p.Y
}

// sortPositions orders column-major, the order food is listed in.
func sortPositions(ps []Position) {
	slices.SortFunc(ps, func(a, b Position) int {
		if a.X != b.X {
			return cmp.Compare(a.X, b.X)
		}
		return cmp.Compare(a.Y, b.Y)
	})
}
