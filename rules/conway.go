package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Outcome describes what happened to a single cell across a generation boundary
type Outcome int

const (
	Stasis Outcome = iota
	Birth
	Death
)

// Transition returns the next state of a cell and whether it was born, died or stayed as it was
func Transition(neighbors int, alive bool) (bool, Outcome) {
	next := ApplyConwayRules(neighbors, alive)
	switch {
	case alive && !next:
		return false, Death
	case !alive && next:
		return true, Birth
	}
	return next, Stasis
}
