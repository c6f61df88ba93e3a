// Package puzzles is the registry of Advent of Code solvers.
//
// Solvers live in one package per event year (y2015, y2024, y2025) and are
// written against the prelude views. Each year package exposes a Register
// function that adds its days to a Registry.
package puzzles
