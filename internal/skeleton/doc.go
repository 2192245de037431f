// Package skeleton loads a skeleton's configuration file (skelly.toml or
// skelly.yaml). The raw document is checked against an embedded JSON Schema,
// decoded into typed input definitions with scalar defaults and options
// coerced to strings, and checked for structural invariants such as unique
// input names. Every failure is reported as a *ConfigError.
package skeleton
