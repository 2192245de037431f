package skeleton

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckVersion returns an error when version does not satisfy the
// skeleton's requires constraint. Versions that are not valid semver, such
// as development builds, are not checked.
func (c *Config) CheckVersion(version string) error {
	if c.Requires == "" {
		return nil
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil
	}
	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return &ConfigError{Path: c.File, Err: fmt.Errorf("invalid version constraint %q: %w", c.Requires, err)}
	}
	if !constraint.Check(v) {
		return fmt.Errorf("skeleton %s requires skelly %s, running %s", c.Dir, c.Requires, v)
	}
	return nil
}
