package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/skelly-dev/skelly/internal/inputs"
	"github.com/skelly-dev/skelly/internal/pipeline"
	"github.com/skelly-dev/skelly/internal/prompt"
	"github.com/skelly-dev/skelly/internal/scaffold"
)

var (
	skeletonDir string
	outputDir   string
	envFile     string
	interactive bool
)

var errAmbiguousInput = errors.New("unable to decide between skeleton and standard input")

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&skeletonDir, "skeleton", "s", "", "Skeleton directory holding skelly.toml or skelly.yaml")
	f.StringVarP(&outputDir, "output", "o", ".", "Directory receiving the rendered files")
	f.StringVar(&envFile, "env-file", "", "Read inputs from a dotenv file; command-line inputs win")
	f.BoolVarP(&interactive, "interactive", "i", false, "Prompt for declared inputs that were not given")
}

type renderMode int

const (
	modeText      renderMode = iota // standard input to standard output
	modeFiles                       // skeleton to the output directory
	modeStream                      // skeleton concatenated onto standard output
	modeAmbiguous                   // skeleton given while standard input is piped
)

// dispatch picks what the root command does. An explicit --output always
// renders files; otherwise a skeleton needs an interactive standard input
// and is streamed when standard output is piped.
func dispatch(hasSkeleton, outputSet, stdinTerminal, stdoutTerminal bool) renderMode {
	switch {
	case !hasSkeleton:
		return modeText
	case outputSet:
		return modeFiles
	case !stdinTerminal:
		return modeAmbiguous
	case stdoutTerminal:
		return modeFiles
	default:
		return modeStream
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	pairs, err := collectPairs(envFile, args)
	if err != nil {
		return err
	}

	mode := dispatch(skeletonDir != "", cmd.Flags().Changed("output"),
		isTerminal(cmd.InOrStdin()), isTerminal(cmd.OutOrStdout()))

	switch mode {
	case modeText:
		log.Debugw("rendering standard input", "inputs", len(pairs))
		return pipeline.RenderText(cmd.InOrStdin(), cmd.OutOrStdout(), inputs.NewSet(pairs...))
	case modeAmbiguous:
		return errAmbiguousInput
	}

	if interactive {
		pairs, err = askMissing(cmd.InOrStdin(), cmd.ErrOrStderr(), pairs)
		if err != nil {
			return err
		}
	}

	opts := scaffold.Options{
		SkeletonDir: skeletonDir,
		OutputDir:   outputDir,
		Pairs:       pairs,
		Version:     buildVersion,
		Logger:      log,
	}

	if mode == modeStream {
		return scaffold.Stream(opts, cmd.OutOrStdout())
	}

	result, err := scaffold.Generate(opts)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), result)
	return nil
}

// collectPairs reads the env file inputs first so that command-line pairs,
// which come later, take precedence.
func collectPairs(envPath string, args []string) ([]inputs.Pair, error) {
	var pairs []inputs.Pair
	if envPath != "" {
		fromFile, err := inputs.ReadEnvFile(envPath)
		if err != nil {
			return nil, err
		}
		log.Debugw("read env file", "path", envPath, "inputs", len(fromFile))
		pairs = append(pairs, fromFile...)
	}

	fromArgs, err := inputs.ParsePairs(args)
	if err != nil {
		return nil, err
	}
	return append(pairs, fromArgs...), nil
}

// askMissing prompts on w for inputs missing from pairs. Prompts go to
// stderr so streamed output stays clean.
func askMissing(r io.Reader, w io.Writer, pairs []inputs.Pair) ([]inputs.Pair, error) {
	cfg, err := scaffold.Describe(nil, skeletonDir)
	if err != nil {
		return nil, err
	}
	answers, err := prompt.Ask(cfg.Inputs, pairs, r, w)
	if err != nil {
		return nil, err
	}
	return append(pairs, answers...), nil
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Rendered %d file(s) into %s\n", len(result.Files), result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
}
