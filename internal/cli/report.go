package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/markerscan/markerscan/internal/discovery"
	"github.com/markerscan/markerscan/internal/errors"
)

// Version is the tool version stamped into every report
const Version = "0.3.0"

// Output formats accepted by Report.Write
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Report is the serialized output envelope consumed by the documentation
// generator: run metadata plus the three discovered path collections.
type Report struct {
	Version     string           `yaml:"version" json:"version"`
	GeneratedAt string           `yaml:"generated_at" json:"generated_at"`
	RunID       string           `yaml:"run_id" json:"run_id"`
	Discovery   discovery.Result `yaml:"discovery" json:"discovery"`
}

// NewReport wraps a discovery result with run metadata
func NewReport(result discovery.Result) Report {
	return Report{
		Version:     Version,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		RunID:       uuid.NewString(),
		Discovery:   result,
	}
}

// Write serializes the report in the requested format
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		return errors.Newf(errors.ConfigurationErrorCode, "unknown output format %q", format).
			WithSuggestion("supported formats are yaml and json")
	}
}
