package game

// Unreachable is returned for cells with no path between them (walls or closed-off regions).
const Unreachable = 1 << 20

// MazeDistancer holds all-pairs shortest path lengths over the open cells of a layout.
// It is computed once per layout and is safe for concurrent reads.
type MazeDistancer struct {
	cells map[Position]int
	dist  []int32 // Row-major by cell id, -1 when unreachable
}

// NewDistancer runs a breadth-first search from every open cell.
func NewDistancer(l *Layout) *MazeDistancer {
	open := l.OpenCells()
	d := &MazeDistancer{
		cells: make(map[Position]int, len(open)),
		dist:  make([]int32, len(open)*len(open)),
	}
	for id, p := range open {
		d.cells[p] = id
	}
	for i := range d.dist {
		d.dist[i] = -1
	}

	queue := make([]int, 0, len(open))
	for source := range open {
		row := d.dist[source*len(open) : (source+1)*len(open)]
		row[source] = 0
		queue = append(queue[:0], source)
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			p := open[current]
			for _, dir := range Directions {
				v := dir.Vector()
				next := Position{X: p.X + int(v.X), Y: p.Y + int(v.Y)}
				id, ok := d.cells[next]
				if !ok || row[id] >= 0 {
					continue
				}
				row[id] = row[current] + 1
				queue = append(queue, id)
			}
		}
	}
	return d
}

// Distance is the maze distance between two cells, or Unreachable.
func (d *MazeDistancer) Distance(a, b Position) int {
	i, ok := d.cells[a]
	if !ok {
		return Unreachable
	}
	j, ok := d.cells[b]
	if !ok {
		return Unreachable
	}
	dist := d.dist[i*len(d.cells)+j]
	if dist < 0 {
		return Unreachable
	}
	return int(dist)
}
