package scaffold

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/skelly-dev/skelly/internal/inputs"
	"github.com/skelly-dev/skelly/internal/pipeline"
	"github.com/skelly-dev/skelly/internal/skeleton"
	"github.com/skelly-dev/skelly/internal/walker"
)

// sampleValue stands in for required free-form inputs during a check.
const sampleValue = "sample"

// Check is the outcome of one diagnostic.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Report collects the checks run against a skeleton.
type Report struct {
	Dir    string
	Checks []Check
}

// Failed returns the number of failed checks.
func (r *Report) Failed() int {
	n := 0
	for _, c := range r.Checks {
		if !c.OK {
			n++
		}
	}
	return n
}

func (r *Report) add(name string, ok bool, format string, args ...interface{}) {
	r.Checks = append(r.Checks, Check{Name: name, OK: ok, Detail: fmt.Sprintf(format, args...)})
}

// Doctor checks a skeleton without writing anything: the config must load,
// the running version must satisfy `requires`, and every template must render
// with sample inputs (defaults, else the first option, else "sample").
// Unlike Generate it keeps going after a failing template.
func Doctor(fsys afero.Fs, dir, version string) *Report {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	report := &Report{Dir: dir}

	cfg, err := skeleton.Load(fsys, dir)
	if err != nil {
		report.add("config", false, "%v", err)
		return report
	}
	report.add("config", true, "%s declares %d input(s)", cfg.File, len(cfg.Inputs))

	if err := cfg.CheckVersion(version); err != nil {
		report.add("version", false, "%v", err)
	} else if cfg.Requires != "" {
		report.add("version", true, "%s satisfies %s", version, cfg.Requires)
	}

	set, err := inputs.Validate(samplePairs(cfg.Definitions()), cfg.Definitions())
	if err != nil {
		report.add("inputs", false, "%v", err)
		return report
	}

	read := pipeline.FileReader(fsys, set)
	files, binary, failed := 0, 0, 0
	for entry, err := range walker.Walk(fsys, cfg.TemplateDirectory, walker.WithExclude(cfg.Exclude...)) {
		if err != nil {
			report.add("templates", false, "%v", err)
			return report
		}
		files++
		out, err := read(entry)
		if err != nil {
			failed++
			report.add("template "+entry.RelativePath, false, "%v", err)
			continue
		}
		if !pipeline.IsText(out.Content) {
			binary++
		}
	}

	if failed == 0 {
		report.add("templates", true, "%d file(s) render, %d copied as binary", files, binary)
	}
	return report
}

func samplePairs(defs []inputs.Definition) []inputs.Pair {
	pairs := make([]inputs.Pair, 0, len(defs))
	for _, d := range defs {
		switch {
		case d.HasDefault():
			continue
		case len(d.Options) > 0:
			pairs = append(pairs, inputs.Pair{Name: d.Name, Value: d.Options[0]})
		default:
			pairs = append(pairs, inputs.Pair{Name: d.Name, Value: sampleValue})
		}
	}
	return pairs
}
