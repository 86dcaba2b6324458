package cli

import (
	"path/filepath"
	"strings"

	"github.com/markerscan/markerscan/internal/errors"
)

// ScanTarget is one resolved directory argument
type ScanTarget struct {
	Dir       string // absolute directory path
	Recursive bool   // whether subdirectories are scanned
}

// DirectoryScanner resolves command-line directory arguments into scan
// targets, honoring the Go-style "./..." suffix for recursive scanning. A
// plain directory argument scans only that directory.
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ResolveTargets cleans and resolves the provided paths
func (s *DirectoryScanner) ResolveTargets(args []string) ([]ScanTarget, error) {
	targets := make([]ScanTarget, 0, len(args))
	for _, arg := range args {
		dir := arg
		recursive := false
		if strings.HasSuffix(arg, "/...") {
			recursive = true
			dir = strings.TrimSuffix(arg, "/...")
			if dir == "" {
				dir = "."
			}
		}
		cleanPath, err := filepath.Abs(dir)
		if err != nil {
			return nil, errors.Wrapf(errors.ConfigurationErrorCode, err, "cannot resolve path %s", arg)
		}
		targets = append(targets, ScanTarget{Dir: cleanPath, Recursive: recursive})
	}
	return targets, nil
}
