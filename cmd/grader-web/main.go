package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quantmind-br/grader-go/internal/config"
	"github.com/quantmind-br/grader-go/internal/server"
	"github.com/quantmind-br/grader-go/internal/utils"
	"github.com/quantmind-br/grader-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v. Exiting.\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command around v so tests can inspect the
// resolved configuration.
func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "grader-web",
		Short: "Serve index.html over HTTP",
		Long: `Grader-web serves a single HTML file at / so it can be graded with
grader --url. The port comes from --port, PORT or server.port in the
config file, in that order.`,
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
			srv, err := newServer(cmd, v)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return srv.ListenAndServe(ctx)
		},
	}

	flags := cmd.Flags()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.grader/config.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	flags.IntP("port", "p", config.DefaultPort, "Port to listen on")
	flags.String("index", config.DefaultHTMLFile, "HTML file served at /")

	_ = v.BindPFlag("server.port", flags.Lookup("port"))
	_ = v.BindPFlag("server.index_file", flags.Lookup("index"))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	})
	return cmd
}

// newServer resolves the configuration and builds the server without
// binding the port.
func newServer(cmd *cobra.Command, v *viper.Viper) (*server.Server, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: verbose,
	})

	if !utils.FileExists(cfg.Server.IndexFile) {
		log.Warn().Str("file", cfg.Server.IndexFile).Msg("Index file does not exist yet; requests will fail until it does")
	}

	return server.New(server.Options{
		Port:      cfg.Server.Port,
		IndexFile: cfg.Server.IndexFile,
		Logger:    log,
	}), nil
}
