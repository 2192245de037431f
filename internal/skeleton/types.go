package skeleton

import (
	"fmt"
	"strings"

	"github.com/skelly-dev/skelly/internal/inputs"
)

// DefaultTemplateDirectory is the template tree below the skeleton directory
// when the config does not name one.
const DefaultTemplateDirectory = "skeleton"

// ConfigNames are the config file names looked up in a skeleton directory,
// in order of preference.
var ConfigNames = []string{"skelly.toml", "skelly.yaml", "skelly.yml"}

// Config is a loaded skeleton configuration.
type Config struct {
	Dir               string // skeleton directory
	File              string // config file that was loaded
	TemplateDirectory string // template tree, joined onto Dir
	Requires          string // semver constraint on the skelly version, may be empty
	Exclude           []string
	Inputs            []Input
}

// Input is one declared input with its display description.
type Input struct {
	inputs.Definition
	Description string
}

// Definitions returns the input definitions in declaration order.
func (c *Config) Definitions() []inputs.Definition {
	defs := make([]inputs.Definition, len(c.Inputs))
	for i, in := range c.Inputs {
		defs[i] = in.Definition
	}
	return defs
}

// Issue is a single problem found in a config document.
type Issue struct {
	Path    string // location in the document, e.g. "/inputs/0/name"
	Message string
	Keyword string // schema keyword or validation tag that failed
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ConfigError reports a config file that could not be read, parsed or
// validated.
type ConfigError struct {
	Path   string
	Issues []Issue
	Err    error
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid skeleton config %s", e.Path)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	for _, issue := range e.Issues {
		b.WriteString("\n  ")
		b.WriteString(issue.String())
	}
	return b.String()
}

func (e *ConfigError) Unwrap() error { return e.Err }
