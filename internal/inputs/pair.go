package inputs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// ParsePair splits "name=value" on the first '='.
func ParsePair(arg string) (Pair, error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return Pair{}, fmt.Errorf("invalid input %q: missing '='", arg)
	}
	if name == "" {
		return Pair{}, fmt.Errorf("invalid input %q: empty name", arg)
	}
	return Pair{Name: name, Value: value}, nil
}

// ParsePairs parses every argument with ParsePair, stopping at the first error.
func ParsePairs(args []string) ([]Pair, error) {
	pairs := make([]Pair, 0, len(args))
	for _, arg := range args {
		p, err := ParsePair(arg)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// ReadEnvFile reads name=value pairs from a dotenv file. Pairs are sorted
// by name so the result does not depend on map iteration order.
func ReadEnvFile(path string) ([]Pair, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]Pair, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, Pair{Name: name, Value: env[name]})
	}
	return pairs, nil
}
