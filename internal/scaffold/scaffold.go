package scaffold

import (
	"io"
	"iter"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/skelly-dev/skelly/internal/inputs"
	"github.com/skelly-dev/skelly/internal/logging"
	"github.com/skelly-dev/skelly/internal/pipeline"
	"github.com/skelly-dev/skelly/internal/skeleton"
	"github.com/skelly-dev/skelly/internal/walker"
)

// Options configures one skeleton run.
type Options struct {
	SkeletonDir string
	OutputDir   string // defaults to "."

	// Pairs are the user inputs; a later pair for the same name wins.
	Pairs []inputs.Pair

	// Version is the running skelly version, checked against the
	// skeleton's `requires` constraint.
	Version string

	Logger *zap.SugaredLogger
	Fs     afero.Fs // defaults to the OS filesystem
}

// Result holds the outcome of a generation.
type Result struct {
	OutputDir string
	Files     []string // rendered paths relative to OutputDir, in write order
}

func (o *Options) fs() afero.Fs {
	if o.Fs == nil {
		return afero.NewOsFs()
	}
	return o.Fs
}

func (o *Options) outputDir() string {
	if o.OutputDir == "" {
		return "."
	}
	return o.OutputDir
}

// Generate renders the skeleton into the output directory. Inputs are
// validated before anything is written; after that the first failure stops
// the run and files already written are left in place.
func Generate(opts Options) (*Result, error) {
	fsys := opts.fs()
	log := logging.OrNop(opts.Logger)

	cfg, set, err := prepare(fsys, &opts, log)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: opts.outputDir()}
	write := pipeline.Observe(pipeline.FileWriter(fsys, result.OutputDir), func(r pipeline.Rendered) {
		log.Debugw("wrote file", "source", r.Source.RelativePath, "path", r.Path)
		result.Files = append(result.Files, r.Path)
	})

	err = pipeline.Execute(source(fsys, cfg), pipeline.FileReader(fsys, set), write)
	if err != nil {
		return result, err
	}

	log.Debugw("skeleton rendered", "skeleton", cfg.Dir, "output", result.OutputDir, "files", len(result.Files))
	return result, nil
}

// Stream renders the skeleton and concatenates every file onto w instead of
// writing to a directory. OutputDir is ignored.
func Stream(opts Options, w io.Writer) error {
	fsys := opts.fs()
	log := logging.OrNop(opts.Logger)

	cfg, set, err := prepare(fsys, &opts, log)
	if err != nil {
		return err
	}

	write := pipeline.Observe(pipeline.StreamWriter(w), func(r pipeline.Rendered) {
		log.Debugw("streamed file", "source", r.Source.RelativePath)
	})
	return pipeline.Execute(source(fsys, cfg), pipeline.FileReader(fsys, set), write)
}

// Describe loads the skeleton config without rendering anything.
func Describe(fsys afero.Fs, dir string) (*skeleton.Config, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return skeleton.Load(fsys, dir)
}

func prepare(fsys afero.Fs, opts *Options, log *zap.SugaredLogger) (*skeleton.Config, *inputs.Set, error) {
	cfg, err := skeleton.Load(fsys, opts.SkeletonDir)
	if err != nil {
		return nil, nil, err
	}
	log.Debugw("loaded skeleton", "config", cfg.File, "inputs", len(cfg.Inputs))

	if err := cfg.CheckVersion(opts.Version); err != nil {
		return nil, nil, err
	}

	set, err := inputs.Validate(opts.Pairs, cfg.Definitions())
	if err != nil {
		return nil, nil, err
	}
	for name, value := range set.All() {
		log.Debugw("input", "name", name, "value", value)
	}

	return cfg, set, nil
}

func source(fsys afero.Fs, cfg *skeleton.Config) iter.Seq2[walker.Entry, error] {
	return walker.Walk(fsys, cfg.TemplateDirectory, walker.WithExclude(cfg.Exclude...))
}
