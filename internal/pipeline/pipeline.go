package pipeline

import (
	"fmt"
	"iter"

	"github.com/skelly-dev/skelly/internal/walker"
)

// Rendered is a template file after rendering.
type Rendered struct {
	Source  walker.Entry
	Path    string // rendered path relative to the output root
	Content []byte
}

// Reader renders one template file.
type Reader func(walker.Entry) (Rendered, error)

// Writer materializes one rendered file.
type Writer func(Rendered) error

// Error describes which step failed for which path.
type Error struct {
	Op   string
	Path string
	Err  error
}

// Message is the error without its underlying cause.
func (e *Error) Message() string {
	if e.Path == "" {
		return fmt.Sprintf("unable to %s", e.Op)
	}
	return fmt.Sprintf("unable to %s %s", e.Op, e.Path)
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Message(), e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Execute reads and writes every entry of source in order. The first error
// from the source, read or write aborts the run and is returned.
func Execute(source iter.Seq2[walker.Entry, error], read Reader, write Writer) error {
	for entry, err := range source {
		if err != nil {
			return err
		}
		out, err := read(entry)
		if err != nil {
			return err
		}
		if err := write(out); err != nil {
			return err
		}
	}
	return nil
}

// Observe calls fn after every successful write of w.
func Observe(w Writer, fn func(Rendered)) Writer {
	return func(r Rendered) error {
		if err := w(r); err != nil {
			return err
		}
		fn(r)
		return nil
	}
}
