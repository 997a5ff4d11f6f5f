package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/grader-go/internal/domain"
	"github.com/quantmind-br/grader-go/internal/utils"
	"gopkg.in/yaml.v3"
)

// Loader loads checks manifests
type Loader struct {
	logger *utils.Logger
}

// NewLoader creates a new manifest loader. A nil logger discards diagnostics.
func NewLoader(logger *utils.Logger) *Loader {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Loader{logger: logger.WithComponent("manifest")}
}

// Load reads and parses the checks manifest at path
func (l *Loader) Load(path string) ([]string, error) {
	l.logger.Info().Str("checks", path).Msg("Loading checks")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, domain.NewFileNotFoundError(path, domain.RoleChecks)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read checks file: %w", err)
	}

	checks, err := l.LoadFromBytes(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Debug().Int("count", len(checks)).Msg("Checks loaded")
	return checks, nil
}

// LoadFromBytes parses a checks manifest from raw bytes. YAML is used for
// .yaml and .yml; every other extension is decoded as JSON.
func (l *Loader) LoadFromBytes(data []byte, ext string) ([]string, error) {
	var checks []string

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &checks); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	default:
		if err := json.Unmarshal(data, &checks); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	}

	// "null" decodes without error but is not an array
	if checks == nil {
		trimmed := strings.TrimSpace(string(data))
		if trimmed != "[]" && trimmed != "" {
			return nil, fmt.Errorf("%w: got %s", ErrInvalidFormat, abbreviate(trimmed))
		}
		checks = []string{}
	}

	return checks, nil
}

func abbreviate(s string) string {
	const max = 32
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
