// Package config manages user-level settings stored at ~/.skelly/config.yaml.
// Every setting can be overridden with a SKELLY_ environment variable, e.g.
// SKELLY_VERBOSE=true.
package config
