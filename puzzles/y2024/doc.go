// Package y2024 solves puzzles from the 2024 event.
package y2024
