package y2025

import "github.com/kbukum/prelude/puzzles"

// Register adds the 2025 solvers to r.
func Register(r *puzzles.Registry) {
	r.Register(2025, 1, "Secret Entrance", Day1)
	r.Register(2025, 2, "Gift Shop", Day2)
	r.Register(2025, 3, "Lobby", Day3)
	r.Register(2025, 5, "Cafeteria", Day5)
	r.Register(2025, 6, "Trash Compactor", Day6)
}
