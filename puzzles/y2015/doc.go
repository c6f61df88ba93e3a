// Package y2015 solves puzzles from the 2015 event.
package y2015
