// Package y2025 solves puzzles from the 2025 event.
package y2025
