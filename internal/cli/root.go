package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/skelly-dev/skelly/internal/branding"
	"github.com/skelly-dev/skelly/internal/config"
	"github.com/skelly-dev/skelly/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	log     = logging.Nop()
)

// isTerminal reports whether v is a file attached to a terminal.
var isTerminal = func(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [name=value...]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` renders a project skeleton into a directory.

A skeleton is a directory holding a skelly.toml (or skelly.yaml) that declares
the accepted inputs, and a skeleton/ tree of templates. Every file's content
and relative path is rendered with the given name=value inputs.

Without --skeleton, standard input is rendered to standard output.

Examples:
  skelly -s ./rust-cli -o ./hello name=hello tool=cargo
  skelly -s ./rust-cli name=hello | less
  echo 'Hello {{ name }}' | skelly name=world`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.Load()
		if err != nil {
			return err
		}
		settings := store.Settings()
		if settings.Verbose {
			verbose = true
		}

		logger, err := logging.New(&logging.Config{
			Encoding: settings.LogEncoding,
			Verbose:  verbose,
			LogsPath: settings.LogFile,
		})
		if err != nil {
			return err
		}
		log = logger
		return nil
	},
	RunE: runRender,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each step and show underlying error causes")
}

// Execute runs the root command with build info injected via ldflags. Errors
// are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err, verbose)
	}
	_ = log.Sync()
	return err
}
