// Package pipeline drives skeleton rendering. Execute pulls template files
// from a source, hands each one to a Reader that renders its content and
// output path, and passes the result to a Writer. File mode and stream mode
// differ only in the Writer they inject.
//
// Execution is sequential and stops at the first error. Files written
// before the failure are left in place.
package pipeline
