package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/grader-go/internal/app"
	"github.com/quantmind-br/grader-go/internal/config"
	"github.com/quantmind-br/grader-go/internal/output"
	"github.com/quantmind-br/grader-go/internal/utils"
	"github.com/quantmind-br/grader-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v. Exiting.\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the grader command with its own viper instance so
// flag bindings do not leak between invocations.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "grader",
		Short: "Check an HTML document for required selectors",
		Long: `Grader loads a checks manifest (a JSON array of CSS selectors), parses an
HTML document from a local file or a URL, and prints a JSON report telling
which selectors matched at least one element.`,
		Example: `  grader --checks checks.json --file index.html
  grader -c checks.json -u ` + config.DefaultURL,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.grader/config.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	flags.StringP("checks", "c", config.DefaultChecksFile, "Path to checks.json")
	flags.StringP("file", "f", config.DefaultHTMLFile, "Path to index.html")
	flags.StringP("url", "u", "", "URL to index.html")
	flags.Duration("timeout", config.DefaultFetchTimeout, "Request timeout for --url")
	flags.Int("retries", config.DefaultMaxRetries, "Retries for failed --url requests")
	flags.String("user-agent", "", "Custom User-Agent for --url")
	flags.Bool("strict", false, "Fail on checks that are not valid selectors")

	_ = v.BindPFlag("checks", flags.Lookup("checks"))
	_ = v.BindPFlag("file", flags.Lookup("file"))
	_ = v.BindPFlag("url", flags.Lookup("url"))
	_ = v.BindPFlag("fetch.timeout", flags.Lookup("timeout"))
	_ = v.BindPFlag("fetch.max_retries", flags.Lookup("retries"))
	_ = v.BindPFlag("fetch.user_agent", flags.Lookup("user-agent"))
	_ = v.BindPFlag("validation.strict", flags.Lookup("strict"))

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: verbose,
	})

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return grade(ctx, cfg, log, cmd.OutOrStdout())
}

// grade runs one pass and writes the report to out. Nothing is written to
// out when grading fails.
func grade(ctx context.Context, cfg *config.Config, log *utils.Logger, out io.Writer) error {
	grader, err := app.NewGrader(app.GraderOptions{Config: cfg, Logger: log})
	if err != nil {
		return err
	}
	defer grader.Close()

	report, err := grader.Run(ctx)
	if err != nil {
		return err
	}

	return output.NewReporter(out).Write(report)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
