// Package abort is the single termination path for unrecoverable memory
// failures.
//
// Allocation failure is not an error a caller can recover from: Fail logs a
// diagnostic, hands the *Error to the installed Handler and then terminates
// the process with exit status 2. Fail never returns.
//
// A program may install its own Handler to add logging or flush state before
// termination. Tests install a Handler that panics with the *Error and
// recover it, which observes the failure without exiting:
//
//	prev := abort.SetHandler(func(e *abort.Error) { panic(e) })
//	defer abort.SetHandler(prev)
package abort
