// Package collections provides small owned containers whose zero value is
// ready to use. Each one fills itself a different way, so every strategy of
// prelude.Into has a concrete shape to target:
//
//   - Set builds itself from a whole sequence (FromSeq)
//   - Queue replaces its contents in bulk (Assign)
//   - List grows one element at a time (Append, with Reserve)
package collections
