package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract frontends drive: advance one generation, then read the
// snapshot before the next call.
type Sim interface {
	Name() string
	Size() Size
	Advance()
	Cells() *Board
}
