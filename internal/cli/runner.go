package cli

import (
	"github.com/markerscan/markerscan/internal/collector"
	"github.com/markerscan/markerscan/internal/discovery"
	"github.com/markerscan/markerscan/internal/utils"
)

// Runner ties the pipeline together: resolve targets, collect and parse
// definition files, run discovery, wrap the result in a report.
type Runner struct {
	params   discovery.Parameters
	diag     *utils.DiagnosticSystem
	scanner  *DirectoryScanner
	resolver *RootNameResolver
	rootName string // explicit root name, empty to auto-resolve
}

// NewRunner creates a runner with the given marker configuration
func NewRunner(params discovery.Parameters, diag *utils.DiagnosticSystem) *Runner {
	return &Runner{
		params:   params,
		diag:     diag,
		scanner:  NewDirectoryScanner(),
		resolver: NewRootNameResolver(),
	}
}

// SetRootName forces the namespace-root name instead of auto-resolving it
func (r *Runner) SetRootName(name string) {
	r.rootName = name
}

// Run scans the given directory arguments and returns the discovery report.
// Any failure aborts the run; there is no partial report.
func (r *Runner) Run(args []string) (Report, error) {
	targets, err := r.scanner.ResolveTargets(args)
	if err != nil {
		return Report{}, err
	}

	var files []discovery.SourceFile
	for _, target := range targets {
		rootName := r.resolver.Resolve(r.rootName, target.Dir)
		r.diag.Debug("scanning %s (recursive=%t, root=%s)", target.Dir, target.Recursive, rootName)

		c := collector.New()
		c.Recursive = target.Recursive
		collected, err := c.Collect(target.Dir, rootName)
		if err != nil {
			return Report{}, err
		}
		r.diag.Debug("collected %d definition file(s) from %s", len(collected), target.Dir)
		files = append(files, collected...)
	}

	result, err := discovery.Discover(files, r.params)
	if err != nil {
		return Report{}, err
	}

	r.diag.Info("discovered %d operation(s), %d model(s), %d response(s)",
		len(result.Operations), len(result.Models), len(result.Responses))
	return NewReport(result), nil
}
