package ui

import (
	"fmt"
	"strings"
)

// Status is the frontend-independent summary shown next to the board.
type Status struct {
	Name       string
	Generation int
	Population int
	TPS        int
	Paused     bool
	Loading    bool
}

// State describes the run state in one word.
func (s Status) State() string {
	switch {
	case s.Loading:
		return "loading"
	case s.Paused:
		return "paused"
	default:
		return "running"
	}
}

// Lines formats the status as label/value rows for the HUD panel.
func (s Status) Lines() [][2]string {
	if s.Loading {
		return [][2]string{{"Pattern", s.Name}, {"State", s.State()}}
	}
	return [][2]string{
		{"Pattern", s.Name},
		{"Generation", fmt.Sprint(s.Generation)},
		{"Population", fmt.Sprint(s.Population)},
		{"Steps/s", fmt.Sprint(s.TPS)},
		{"State", s.State()},
	}
}

// String renders a single status line for terminal frontends.
func (s Status) String() string {
	rows := s.Lines()
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = strings.ToLower(r[0]) + "=" + r[1]
	}
	return strings.Join(parts, " ")
}
