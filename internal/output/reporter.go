// Package output writes grading reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/grader-go/internal/checker"
)

// Indent is the indentation used for reports
const Indent = "    "

// Reporter writes reports as indented JSON
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w. A nil w writes to stdout.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{w: w}
}

// Write serializes report followed by a newline
func (r *Reporter) Write(report *checker.Report) error {
	enc := json.NewEncoder(r.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
