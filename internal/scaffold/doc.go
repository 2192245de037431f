// Package scaffold ties the skelly pieces together: it loads a skeleton's
// config, validates the user's inputs against it and runs the render
// pipeline into an output directory or onto a stream. It powers the root
// "skelly" command and "skelly inputs".
package scaffold
