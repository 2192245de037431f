package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/skelly-dev/skelly/internal/inputs"
	"github.com/skelly-dev/skelly/internal/pipeline"
)

// printError writes err for a user. Validation errors are printed one per
// line as-is; pipeline errors drop their cause unless verbose is set.
func printError(w io.Writer, err error, verbose bool) {
	var verrs inputs.Errors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			fmt.Fprintln(w, e.Error())
		}
		return
	}

	var perr *pipeline.Error
	if !verbose && errors.As(err, &perr) {
		fmt.Fprintf(w, "Error: %s\n", perr.Message())
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
}
