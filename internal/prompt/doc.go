// Package prompt asks the user for skeleton inputs that were not given on
// the command line. It backs "skelly --interactive".
package prompt
