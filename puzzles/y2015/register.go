package y2015

import "github.com/kbukum/prelude/puzzles"

// Register adds the 2015 solvers to r.
func Register(r *puzzles.Registry) {
	r.Register(2015, 1, "Not Quite Lisp", Day1)
	r.Register(2015, 2, "I Was Told There Would Be No Math", Day2)
	r.Register(2015, 3, "Perfectly Spherical Houses in a Vacuum", Day3)
	r.Register(2015, 5, "Doesn't He Have Intern-Elves For This?", Day5)
	r.Register(2015, 6, "Probably a Fire Hazard", Day6)
}
