package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/insightdelivered/mcc-extractor/internal/api"
	"github.com/insightdelivered/mcc-extractor/internal/extractor"
	"github.com/insightdelivered/mcc-extractor/internal/models"
	"github.com/insightdelivered/mcc-extractor/internal/writer"
)

const version = "1.0.0"

const (
	defaultInput      = "mcc.pdf"
	defaultJSONOutput = "mcc_data_output.json"
	defaultCSVOutput  = "mcc_data_output.csv"
)

func main() {
	// CLI flags
	startFlag := flag.Int("start", 0, "First page to scan, 1-based (defaults to 1)")
	endFlag := flag.Int("end", 0, "Last page to scan, inclusive (defaults to the last page)")
	methodFlag := flag.String("method", "lattice", "Table detection method: lattice or stream")
	outputFlag := flag.String("output", "", "Output file path (defaults to mcc_data_output.json)")
	formatFlag := flag.String("format", "json", "Output format: json or csv")
	headerFlag := flag.Bool("header", true, "Include the MCC,Description header row in CSV output")
	serveFlag := flag.String("serve", "", "Run as an HTTP service on this address (e.g. :8080) instead of extracting")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `MCC PDF Table Extractor
by Insight Delivered (QEA AutoLens)

Extracts Merchant Category Code tables from a PDF document and writes
the code-to-description mapping as JSON (or CSV).

Usage:
  mcc-extractor [flags] [input.pdf]

The input path defaults to %s in the current directory.

Flags:
`, defaultInput)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Scan every page of mcc.pdf with ruled-line detection
  mcc-extractor

  # Explicit file and page range
  mcc-extractor -start=3 -end=7 mcc-2024.pdf

  # Whitespace-based detection for borderless tables
  mcc-extractor -method=stream mcc.pdf

  # CSV output
  mcc-extractor -format=csv -output=codes.csv mcc.pdf

  # Run as an HTTP service
  mcc-extractor -serve=:8080

Detection methods:
  lattice   - table cells delimited by visible ruling lines (default)
  stream    - cell boundaries inferred from whitespace alignment
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("mcc-extractor v%s\n", version)
		os.Exit(0)
	}

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	if *serveFlag != "" {
		runServer(*serveFlag)
		return
	}

	format := strings.ToLower(*formatFlag)
	if format != "json" && format != "csv" {
		fatalf("Unknown format %q. Supported: json, csv\n", *formatFlag)
	}

	inputPath := defaultInput
	if flag.NArg() > 0 {
		inputPath = flag.Arg(0)
	}

	// The only fatal condition: the input file must exist before any
	// work starts. Everything past this point degrades gracefully.
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		fatalf("Error: PDF file %q not found\n", inputPath)
	}

	method := models.ParseMethod(*methodFlag)

	fmt.Printf("Processing: %s\n", inputPath)
	fmt.Printf("  Method: %s\n", method)
	if *startFlag > 0 && *endFlag > 0 {
		fmt.Printf("  Page range: %d-%d\n", *startFlag, *endFlag)
	} else {
		fmt.Println("  Page range: auto-detect")
	}

	ext := extractor.New()
	start, end := ext.ResolvePageRange(inputPath, *startFlag, *endFlag)
	report := ext.Run(inputPath, start, end, method)

	saveAndReport(os.Stdout, os.Stderr, report.Codes, format, *outputFlag, *headerFlag)
}

// saveAndReport prints the closing lines around the always-performed
// save. An empty result announces itself before the file is written; a
// write failure goes to errOut and never changes the exit status.
func saveAndReport(out, errOut io.Writer, codes map[string]string, format, outputPath string, includeHeader bool) {
	if len(codes) == 0 {
		fmt.Fprintln(out, "  No MCC data extracted.")
	}

	outPath, err := saveResults(codes, format, outputPath, includeHeader)
	if err != nil {
		fmt.Fprintf(errOut, "Error saving results: %v\n", err)
	} else {
		fmt.Fprintf(out, "  Results saved to %s\n", outPath)
	}

	if len(codes) > 0 {
		fmt.Fprintf(out, "  Done. Extracted %d MCC codes.\n", len(codes))
	}
}

// saveResults writes the code mapping in the requested format and returns
// the path written to.
func saveResults(codes map[string]string, format, outputPath string, includeHeader bool) (string, error) {
	switch format {
	case "csv":
		if outputPath == "" {
			outputPath = defaultCSVOutput
		}
		w := &writer.CSVWriter{IncludeHeader: includeHeader}
		return outputPath, w.WriteToFile(outputPath, codes)
	default:
		if outputPath == "" {
			outputPath = defaultJSONOutput
		}
		w := &writer.JSONWriter{}
		return outputPath, w.WriteToFile(outputPath, codes)
	}
}

func runServer(addr string) {
	fmt.Printf("mcc-extractor v%s listening on %s\n", version, addr)
	if err := api.NewApp().Listen(addr); err != nil {
		fatalf("Server failed: %v\n", err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
