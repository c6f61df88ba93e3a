// Package util provides small text and parsing helpers shared by puzzle
// solvers: whitespace trimming and splitting, column transposition of text
// grids, and integer list parsing with typed input errors.
package util
