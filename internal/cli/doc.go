// Package cli defines the Cobra command tree for the skelly CLI. The root
// command renders a skeleton (or standard input); the other files each
// register one subcommand. Commands delegate to internal packages and only
// handle flag parsing, terminal detection, I/O formatting and error output.
package cli
