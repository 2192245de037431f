package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/skelly-dev/skelly/internal/inputs"
	"github.com/skelly-dev/skelly/internal/skeleton"
)

// Ask prompts on w for every declared input that has no pair in supplied and
// reads the answers from r. Inputs with options get a numbered menu; an
// empty answer keeps the default and produces no pair. The returned pairs
// are in declaration order.
func Ask(defs []skeleton.Input, supplied []inputs.Pair, r io.Reader, w io.Writer) ([]inputs.Pair, error) {
	reader := bufio.NewReader(r)

	given := make(map[string]bool, len(supplied))
	for _, p := range supplied {
		given[p.Name] = true
	}

	var answers []inputs.Pair
	for _, def := range defs {
		if given[def.Name] {
			continue
		}

		var (
			value string
			ok    bool
			err   error
		)
		if len(def.Options) > 0 {
			value, ok, err = selectOption(reader, w, def)
		} else {
			value, ok, err = readValue(reader, w, def)
		}
		if err != nil {
			return nil, err
		}
		if ok {
			answers = append(answers, inputs.Pair{Name: def.Name, Value: value})
		}
	}

	return answers, nil
}

// selectOption presents the options as a numbered list and loops until the
// answer is a valid number or option value. An empty answer keeps the
// default, or picks the first option when there is none.
func selectOption(reader *bufio.Reader, w io.Writer, def skeleton.Input) (string, bool, error) {
	fmt.Fprintf(w, "\n%s\n", heading(def))
	for i, opt := range def.Options {
		marker := ""
		if def.Default != nil && *def.Default == opt {
			marker = " (default)"
		}
		fmt.Fprintf(w, "  %d) %s%s\n", i+1, opt, marker)
	}

	for {
		fmt.Fprintf(w, "Enter number [1-%d]: ", len(def.Options))

		line, err := readLine(reader, def.Name)
		if err != nil {
			return "", false, err
		}

		if line == "" {
			if def.HasDefault() {
				return "", false, nil
			}
			return def.Options[0], true, nil
		}
		if num, err := strconv.Atoi(line); err == nil && num >= 1 && num <= len(def.Options) {
			return def.Options[num-1], true, nil
		}
		if slices.Contains(def.Options, line) {
			return line, true, nil
		}
		fmt.Fprintf(w, "invalid selection %q: choose 1-%d\n", line, len(def.Options))
	}
}

// readValue asks for a free-form value, looping while a required input is
// left empty.
func readValue(reader *bufio.Reader, w io.Writer, def skeleton.Input) (string, bool, error) {
	if def.Description != "" {
		fmt.Fprintf(w, "\n%s\n", heading(def))
	}

	for {
		if def.HasDefault() {
			fmt.Fprintf(w, "%s [%s]: ", def.Name, *def.Default)
		} else {
			fmt.Fprintf(w, "%s: ", def.Name)
		}

		line, err := readLine(reader, def.Name)
		if err != nil {
			return "", false, err
		}
		if line != "" {
			return line, true, nil
		}
		if def.HasDefault() {
			return "", false, nil
		}
		fmt.Fprintf(w, "a value for %s is required\n", def.Name)
	}
}

func heading(def skeleton.Input) string {
	if def.Description == "" {
		return def.Name + ":"
	}
	return fmt.Sprintf("%s: %s", def.Name, def.Description)
}

// readLine returns the next trimmed line. A final line without a newline is
// accepted; running out of input before any answer is an error.
func readLine(reader *bufio.Reader, name string) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer for %s: %w", name, err)
	}
	return strings.TrimSpace(line), nil
}
