package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/skelly-dev/skelly/internal/inputs"
)

// Error is returned when a template cannot be parsed or references an input
// that is not defined.
type Error struct {
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("rendering template: %v", e.Err) }
func (e *Error) Unwrap() error { return e.Err }

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reserved names are builtins or keywords of text/template and are never
// registered as bare-name accessors.
var reserved = map[string]bool{
	"and": true, "break": true, "call": true, "continue": true, "define": true,
	"else": true, "end": true, "eq": true, "false": true, "ge": true, "gt": true,
	"html": true, "if": true, "index": true, "js": true, "le": true, "len": true,
	"lt": true, "ne": true, "nil": true, "not": true, "or": true, "print": true,
	"printf": true, "println": true, "range": true, "slice": true, "template": true,
	"true": true, "urlquery": true, "with": true, "block": true,
}

// Render executes text against set. Inputs are reachable as {{ .name }} and,
// when name is a plain identifier, as {{ name }}. Referencing an input that
// is not in set fails with *Error.
func Render(text string, set *inputs.Set) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}

	tmpl, err := template.New("skelly").
		Option("missingkey=error").
		Funcs(accessors(set)).
		Parse(text)
	if err != nil {
		return "", &Error{Err: err}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, set.Map()); err != nil {
		return "", &Error{Err: err}
	}
	return buf.String(), nil
}

func accessors(set *inputs.Set) template.FuncMap {
	funcs := template.FuncMap{}
	for name, value := range set.All() {
		if reserved[name] || !identifier.MatchString(name) {
			continue
		}
		v := value
		funcs[name] = func() string { return v }
	}
	return funcs
}
