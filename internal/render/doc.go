// Package render substitutes resolved inputs into template text. It is used
// identically for file contents and for relative output paths.
package render
