package inputs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func toolWithDefault() []Definition {
	return []Definition{{Name: "tool", Default: strPtr("cargo")}}
}

func TestValidate_DefaultsWhenNoUserInputs(t *testing.T) {
	set, err := Validate(nil, toolWithDefault())
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Name: "tool", Value: "cargo"}}, set.Pairs())
}

func TestValidate_UserInputOverridesDefault(t *testing.T) {
	defs := []Definition{{Name: "tool", Default: strPtr("cargo"), Options: []string{"cargo", "make"}}}

	set, err := Validate([]Pair{{Name: "tool", Value: "make"}}, defs)
	require.NoError(t, err)

	got, ok := set.Get("tool")
	assert.True(t, ok)
	assert.Equal(t, "make", got)
}

func TestValidate_IgnoresUnknownInputs(t *testing.T) {
	set, err := Validate([]Pair{{Name: "bogus", Value: "x"}}, toolWithDefault())
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Name: "tool", Value: "cargo"}}, set.Pairs())
}

func TestValidate_EmptyOptionsAcceptsAnything(t *testing.T) {
	defs := []Definition{{Name: "test", Options: []string{}}}

	set, err := Validate([]Pair{{Name: "test", Value: "invalid"}}, defs)
	require.NoError(t, err)
	assert.Equal(t, []Pair{{Name: "test", Value: "invalid"}}, set.Pairs())
}

func TestValidate_MissingRequiredInput(t *testing.T) {
	set, err := Validate(nil, []Definition{{Name: "test"}})
	assert.Nil(t, set)

	var errs Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, Errors{MissingInput{Name: "test"}}, errs)
}

// A rejected value with no default to fall back on is reported twice: once
// as the invalid option and once as the resulting missing input.
func TestValidate_InvalidOptionWithoutDefaultAlsoMissing(t *testing.T) {
	defs := []Definition{{Name: "tool", Options: []string{"cargo", "make"}}}

	_, err := Validate([]Pair{{Name: "tool", Value: "bazel"}}, defs)

	var errs Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, Errors{
		InvalidOption{Name: "tool", Value: "bazel"},
		MissingInput{Name: "tool"},
	}, errs)
}

func TestValidate_InvalidOptionKeepsDefaultButStillFails(t *testing.T) {
	defs := []Definition{{Name: "tool", Default: strPtr("cargo"), Options: []string{"cargo", "make"}}}

	set, err := Validate([]Pair{{Name: "tool", Value: "bazel"}}, defs)
	assert.Nil(t, set)

	var errs Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, Errors{InvalidOption{Name: "tool", Value: "bazel"}}, errs)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	defs := []Definition{
		{Name: "name"},
		{Name: "license", Options: []string{"mit", "apache"}},
		{Name: "ci", Options: []string{"github", "gitlab"}},
	}
	pairs := []Pair{
		{Name: "ci", Value: "jenkins"},
		{Name: "license", Value: "gpl"},
	}

	_, err := Validate(pairs, defs)

	var errs Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, Errors{
		InvalidOption{Name: "ci", Value: "jenkins"},
		InvalidOption{Name: "license", Value: "gpl"},
		MissingInput{Name: "name"},
		MissingInput{Name: "license"},
		MissingInput{Name: "ci"},
	}, errs)
}

func TestValidate_LaterValidValueWins(t *testing.T) {
	defs := []Definition{{Name: "tool", Options: []string{"cargo", "make"}}}
	pairs := []Pair{
		{Name: "tool", Value: "bazel"},
		{Name: "tool", Value: "make"},
	}

	_, err := Validate(pairs, defs)

	// The valid second value resolves the input, only the rejection remains.
	var errs Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, Errors{InvalidOption{Name: "tool", Value: "bazel"}}, errs)
}

func TestValidate_PreservesSchemaOrder(t *testing.T) {
	defs := []Definition{
		{Name: "zeta", Default: strPtr("z")},
		{Name: "alpha"},
		{Name: "mid", Default: strPtr("m")},
	}
	pairs := []Pair{
		{Name: "mid", Value: "M"},
		{Name: "alpha", Value: "A"},
	}

	for i := 0; i < 20; i++ {
		set, err := Validate(pairs, defs)
		require.NoError(t, err)
		assert.Equal(t, []Pair{
			{Name: "zeta", Value: "z"},
			{Name: "alpha", Value: "A"},
			{Name: "mid", Value: "M"},
		}, set.Pairs())
	}
}

func TestValidate_EmptySchema(t *testing.T) {
	set, err := Validate([]Pair{{Name: "x", Value: "y"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestValidate_DoesNotAliasDefaults(t *testing.T) {
	def := "cargo"
	defs := []Definition{{Name: "tool", Default: &def}}

	set, err := Validate(nil, defs)
	require.NoError(t, err)

	def = "changed"
	got, _ := set.Get("tool")
	assert.Equal(t, "cargo", got)
}

func TestErrors_Error(t *testing.T) {
	errs := Errors{
		InvalidOption{Name: "tool", Value: "bazel"},
		MissingInput{Name: "tool"},
	}
	assert.Equal(t, "Invalid option 'bazel' to input 'tool'.\nMissing input 'tool'.", errs.Error())
}
