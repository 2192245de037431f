package inputs

import (
	"fmt"
	"strings"
)

// ValidationError is either MissingInput or InvalidOption.
type ValidationError interface {
	error
	InputName() string
	validationError()
}

// MissingInput reports an input that ended validation without a value.
type MissingInput struct {
	Name string
}

func (e MissingInput) Error() string     { return fmt.Sprintf("Missing input '%s'.", e.Name) }
func (e MissingInput) InputName() string { return e.Name }
func (MissingInput) validationError()    {}

// InvalidOption reports a supplied value that is not among the input's options.
type InvalidOption struct {
	Name  string
	Value string
}

func (e InvalidOption) Error() string {
	return fmt.Sprintf("Invalid option '%s' to input '%s'.", e.Value, e.Name)
}
func (e InvalidOption) InputName() string { return e.Name }
func (InvalidOption) validationError()    {}

// Errors is the full list of problems found by Validate.
type Errors []ValidationError

func (e Errors) Error() string {
	lines := make([]string, len(e))
	for i, err := range e {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// Validate resolves pairs against defs. On success the returned Set holds
// exactly one value per definition, in definition order. On failure the
// error is an Errors value and no Set is returned.
//
// Pairs naming an unknown input are ignored. A pair whose value is not an
// allowed option is reported as InvalidOption and leaves any default in
// place; if there is no default the same name is also reported as
// MissingInput.
func Validate(pairs []Pair, defs []Definition) (*Set, error) {
	byName := make(map[string]int, len(defs))
	values := make([]*string, len(defs))
	for i, d := range defs {
		byName[d.Name] = i
		if d.Default != nil {
			v := *d.Default
			values[i] = &v
		}
	}

	var errs Errors
	for _, p := range pairs {
		i, ok := byName[p.Name]
		if !ok {
			continue
		}
		if !defs[i].Allows(p.Value) {
			errs = append(errs, InvalidOption{Name: p.Name, Value: p.Value})
			continue
		}
		v := p.Value
		values[i] = &v
	}

	for i, d := range defs {
		if values[i] == nil {
			errs = append(errs, MissingInput{Name: d.Name})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	set := &Set{index: make(map[string]int, len(defs))}
	for i, d := range defs {
		set.put(d.Name, *values[i])
	}
	return set, nil
}
