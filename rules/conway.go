package rules

const (
	// BirthNeighbors is the live neighbor count that brings a dead cell to life
	BirthNeighbors = 3
	// minSurvival and maxSurvival bound the neighbor counts a live cell survives with
	minSurvival = 2
	maxSurvival = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3,
every other case yields a dead cell.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= minSurvival && neighbors <= maxSurvival
	}
	return neighbors == BirthNeighbors
}
