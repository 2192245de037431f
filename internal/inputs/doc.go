// Package inputs reconciles user-supplied name=value pairs against a
// skeleton's declared input definitions. Validate seeds defaults, applies
// overrides that pass the option check, and reports every missing input and
// rejected option in a single pass. The resulting Set keeps schema
// declaration order so rendering and error output are reproducible.
package inputs
