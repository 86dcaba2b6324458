package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/markerscan/markerscan/internal/cli"
	"github.com/markerscan/markerscan/internal/discovery"
	"github.com/markerscan/markerscan/internal/errors"
	"github.com/markerscan/markerscan/internal/utils"
)

func main() {
	var (
		rootFlag     = flag.String("root-name", "", "Namespace-root name for discovered paths (defaults to the go.mod module name, then the directory name)")
		fnFlag       = flag.String("fn-marker", "", "Marker name that tags functions as operations")
		modelFlag    = flag.String("model-marker", "", "Marker name that tags data types as models")
		responseFlag = flag.String("response-marker", "", "Marker name that tags data types as responses")
		formatFlag   = flag.String("format", cli.FormatYAML, "Output format: yaml or json")
		outputFlag   = flag.String("output", "", "Write the report to a file instead of stdout")
		verboseFlag  = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag    = flag.Bool("quiet", false, "Only show errors and the final report")
		helpFlag     = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "markerscan — marker-annotation discovery for API documentation\n")
		fmt.Fprintf(os.Stderr, "Scans API definition files (*.api) for marker annotations and reports every\n")
		fmt.Fprintf(os.Stderr, "discovered operation, model and response as a fully-qualified reference path.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./specs/...        Scan specs directory and all its subdirectories\n")
		fmt.Fprintf(os.Stderr, "  ./specs/users      Scan only the specific directory (no recursion)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                                  # Scan everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --root-name api ./specs/...            # Force the namespace root\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --fn-marker route ./specs/...          # Custom function marker\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --format json --output report.json ./... \n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var diagnostics *utils.DiagnosticSystem
	switch {
	case *quietFlag:
		diagnostics = utils.NewQuietDiagnostics()
	case *verboseFlag:
		diagnostics = utils.NewVerboseDiagnostics()
	default:
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	params := discovery.Default()
	if *fnFlag != "" {
		params.FunctionMarker = *fnFlag
	}
	if *modelFlag != "" {
		params.ModelMarker = *modelFlag
	}
	if *responseFlag != "" {
		params.ResponseMarker = *responseFlag
	}

	if !*quietFlag {
		diagnostics.Section("markerscan")
	}
	if *verboseFlag {
		diagnostics.List("markers: fn=%s model=%s response=%s",
			params.FunctionMarker, params.ModelMarker, params.ResponseMarker)
	}

	runner := cli.NewRunner(params, diagnostics)
	if *rootFlag != "" {
		runner.SetRootName(*rootFlag)
	}

	report, err := runner.Run(args)
	if err != nil {
		diagnostics.Error("Discovery failed: %v", err)
		var base *errors.BaseError
		if stderrors.As(err, &base) {
			for _, hint := range base.Suggestions() {
				diagnostics.List("hint: %s", hint)
			}
		}
		os.Exit(1)
	}

	var out io.Writer = os.Stdout
	if *outputFlag != "" {
		f, err := os.Create(*outputFlag)
		if err != nil {
			diagnostics.Error("Cannot create output file: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := report.Write(out, *formatFlag); err != nil {
		diagnostics.Error("Cannot write report: %v", err)
		os.Exit(1)
	}
	if *outputFlag != "" {
		diagnostics.Success("Report written to %s", *outputFlag)
	}
}
