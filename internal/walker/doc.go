// Package walker discovers the template files of a skeleton. Walk lazily
// yields every non-directory file below a root on an afero filesystem,
// together with its path relative to the root and its permission bits.
package walker
