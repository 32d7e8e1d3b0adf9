package rules

/*
ApplyConwayRules reports whether a cell is alive in the next generation, given
its alive-neighbour count and whether it is alive now.

B3/S23: a live cell survives with 2 or 3 neighbours, a dead cell is born with
exactly 3, every other cell is dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
