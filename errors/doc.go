// Package errors provides the typed error taxonomy shared by the prelude
// core, the puzzle solvers, and the runner.
//
// Every failure is an *AppError carrying a machine-readable ErrorCode, so
// callers branch on the code rather than on message text:
//
//	v, err := prelude.Front(ctx, lines)
//	if errors.IsCode(err, errors.ErrCodeEmptySequence) {
//	    // no input at all
//	}
package errors
