package y2024

import "github.com/kbukum/prelude/puzzles"

// Register adds the 2024 solvers to r.
func Register(r *puzzles.Registry) {
	r.Register(2024, 1, "Historian Hysteria", Day1)
}
