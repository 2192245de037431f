// Package logging builds the zap logger shared by the CLI commands.
package logging
