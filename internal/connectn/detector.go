package connectn

import "github.com/rocketscienceinc/connectn/internal/entity"

// WinLength is the number of consecutive same-player cells required to win.
const WinLength = 5

// Direction is a unit step along one of the four line orientations.
type Direction struct {
	Name string
	Row  int
	Col  int
}

var (
	Horizontal   = Direction{Name: "horizontal", Row: 0, Col: 1}
	Vertical     = Direction{Name: "vertical", Row: 1, Col: 0}
	DiagonalUp   = Direction{Name: "diagonal-up", Row: -1, Col: 1}
	DiagonalDown = Direction{Name: "diagonal-down", Row: 1, Col: 1}

	// Directions is the scan order at every origin; it decides which run is
	// reported when several exist.
	Directions = [4]Direction{Horizontal, Vertical, DiagonalUp, DiagonalDown}
)

// Run is a winning line: the player holding it and where it starts.
type Run struct {
	Player    int
	Origin    entity.Coordinate
	Direction Direction
	Length    int
}

// Coordinates lists the cells covered by the run, from its origin.
func (that Run) Coordinates() []entity.Coordinate {
	coords := make([]entity.Coordinate, that.Length)
	for i := range coords {
		coords[i] = entity.Coordinate{
			Row: that.Origin.Row + i*that.Direction.Row,
			Col: that.Origin.Col + i*that.Direction.Col,
		}
	}

	return coords
}

// extractRun returns k cells starting at origin and stepping by dir.
// Positions that fall off the grid read as empty, never wrapping around.
func extractRun(grid *entity.Grid, origin entity.Coordinate, dir Direction, k int) []entity.Cell {
	run := make([]entity.Cell, k)
	for i := range run {
		row, col := origin.Row+i*dir.Row, origin.Col+i*dir.Col
		if !grid.Contains(row, col) {
			continue
		}

		// in bounds, cannot fail
		run[i], _ = grid.Get(row, col)
	}

	return run
}

// runOwner returns the player holding every cell of run.
func runOwner(run []entity.Cell) (int, bool) {
	if len(run) == 0 {
		return 0, false
	}

	player, ok := run[0].Player()
	if !ok {
		return 0, false
	}

	for _, cell := range run[1:] {
		if cell != run[0] {
			return 0, false
		}
	}

	return player, true
}

func findWinningRun(grid *entity.Grid, k int) (Run, bool) {
	size := grid.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			origin := entity.Coordinate{Row: row, Col: col}
			for _, dir := range Directions {
				if player, ok := runOwner(extractRun(grid, origin, dir, k)); ok {
					return Run{Player: player, Origin: origin, Direction: dir, Length: k}, true
				}
			}
		}
	}

	return Run{}, false
}

// FindWinningRun scans origins in row-major order and, at each origin, the
// directions in Directions order; the first run of WinLength cells held by a
// single player is returned.
func FindWinningRun(grid *entity.Grid) (Run, bool) {
	return findWinningRun(grid, WinLength)
}

// Winner returns the player of the first winning run found, if any.
func Winner(grid *entity.Grid) (int, bool) {
	run, ok := FindWinningRun(grid)
	if !ok {
		return entity.NoPlayer, false
	}

	return run.Player, true
}

// IsTie reports whether every cell is occupied. A full board holding a
// winning run is a win, so check Winner first.
func IsTie(grid *entity.Grid) bool {
	return grid.IsFull()
}
