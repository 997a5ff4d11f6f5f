package app

import (
	"context"
	"fmt"

	"github.com/quantmind-br/grader-go/internal/checker"
	"github.com/quantmind-br/grader-go/internal/config"
	"github.com/quantmind-br/grader-go/internal/document"
	"github.com/quantmind-br/grader-go/internal/domain"
	"github.com/quantmind-br/grader-go/internal/fetcher"
	"github.com/quantmind-br/grader-go/internal/manifest"
	"github.com/quantmind-br/grader-go/internal/source"
	"github.com/quantmind-br/grader-go/internal/utils"
)

// Grader runs one grading pass: obtain markup, parse it, load the checks
// and validate them against the document.
type Grader struct {
	config  *config.Config
	fetcher domain.Fetcher
	loader  *manifest.Loader
	logger  *utils.Logger
}

// GraderOptions contains options for creating a Grader
type GraderOptions struct {
	Config *config.Config
	// Fetcher is used for remote markup. When nil and a URL is configured,
	// a fetcher.Client is built from Config.Fetch.
	Fetcher domain.Fetcher
	Logger  *utils.Logger
}

// NewGrader creates a new grader with the given configuration
func NewGrader(opts GraderOptions) (*Grader, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
	}

	f := opts.Fetcher
	if f == nil && cfg.IsRemote() {
		client, err := fetcher.NewClient(fetcher.ClientOptions{
			Timeout:         cfg.Fetch.Timeout,
			MaxRetries:      cfg.Fetch.MaxRetries,
			UserAgent:       cfg.Fetch.UserAgent,
			ProxyURL:        cfg.Fetch.ProxyURL,
			FollowRedirects: cfg.Fetch.FollowRedirects,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create fetcher: %w", err)
		}
		f = client
	}

	return &Grader{
		config:  cfg,
		fetcher: f,
		loader:  manifest.NewLoader(logger),
		logger:  logger.WithComponent("grader"),
	}, nil
}

// Source returns the markup source selected by the configuration
func (g *Grader) Source() source.Source {
	if g.config.IsRemote() {
		return source.NewURLSource(g.config.URL, g.fetcher)
	}
	return source.NewFileSource(g.config.File)
}

// Run validates the inputs, obtains the markup and grades it
func (g *Grader) Run(ctx context.Context) (*checker.Report, error) {
	if err := g.config.ValidateInputs(); err != nil {
		return nil, err
	}

	src := g.Source()
	if g.config.IsRemote() {
		g.logger.Info().Str("url", src.String()).Str("checks", g.config.Checks).Msg("Checking URL")
	} else {
		g.logger.Debug().Str("file", src.String()).Msg("Reading markup")
	}

	markup, err := source.Await(ctx, src)
	if err != nil {
		g.logger.Error().Err(err).Str("source", src.String()).Msg("Could not load markup")
		return nil, err
	}

	return g.CheckMarkup(markup)
}

// CheckMarkup grades already obtained markup against the configured checks
func (g *Grader) CheckMarkup(markup *source.Markup) (*checker.Report, error) {
	doc := document.ParseWithContentType(markup.Body, markup.ContentType)

	checks, err := g.loader.Load(g.config.Checks)
	if err != nil {
		return nil, err
	}
	checks = checker.SortChecks(checks)

	if invalid := checker.InvalidChecks(checks); len(invalid) > 0 {
		if g.config.Validation.Strict {
			return nil, invalid[0]
		}
		for _, e := range invalid {
			g.logger.Warn().Str("check", e.Selector).Err(e.Err).Msg("Invalid selector will be reported as absent")
		}
	}

	report := checker.Validate(doc, checks)
	g.logger.Debug().
		Int("checks", report.Len()).
		Int("passed", report.Passed()).
		Str("title", doc.Title()).
		Msg("Validation complete")

	return report, nil
}

// Close releases the fetcher, if any
func (g *Grader) Close() error {
	if g.fetcher != nil {
		return g.fetcher.Close()
	}
	return nil
}

// CheckHTMLFile grades a local markup file against a checks manifest
func CheckHTMLFile(htmlFile, checksFile string) (*checker.Report, error) {
	cfg := config.Default()
	cfg.File = htmlFile
	cfg.Checks = checksFile

	g, err := NewGrader(GraderOptions{Config: cfg, Logger: utils.NewNopLogger()})
	if err != nil {
		return nil, err
	}
	defer g.Close()

	return g.Run(context.Background())
}
