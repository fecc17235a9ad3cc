package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironbark/ordersheet/internal/config"
	"github.com/ironbark/ordersheet/internal/extract"
	"github.com/ironbark/ordersheet/internal/ocr"
	"github.com/ironbark/ordersheet/internal/pipeline"
	"github.com/ironbark/ordersheet/internal/render"
	"github.com/ironbark/ordersheet/internal/report"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("ordersheet %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		configPath = flag.String("config", "", "YAML config file (defaults apply when omitted)")
		output     = flag.String("out", "", "dispatch-schedule workbook path (overrides config)")
		dpi        = flag.Int("dpi", 0, "render DPI for PDF pages (overrides config)")
		language   = flag.String("lang", "", "Tesseract language (overrides config)")
		workers    = flag.Int("workers", 0, "concurrent page workers (overrides config)")
		jsonOut    = flag.Bool("json", false, "print extraction results as JSON instead of writing the workbook")
	)
	flag.Usage = usage
	flag.Parse()

	// Logging goes to stderr so -json output stays clean on stdout
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *dpi > 0 {
		cfg.DPI = *dpi
	}
	if *language != "" {
		cfg.Language = *language
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	if os.Getenv("ORDERSHEET_LOG_LEVEL") == "debug" {
		log.Printf("ordersheet v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Tesseract %s, %d workers, %d DPI", ocr.Version(), cfg.Workers, cfg.DPI)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := &ocr.Tesseract{Language: cfg.Language}
	writer := report.NewWriter(cfg.Output)

	failed := 0
	for _, path := range flag.Args() {
		if err := processFile(ctx, path, rec, writer, cfg, *jsonOut); err != nil {
			log.Printf("Error processing %s: %v", path, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func processFile(ctx context.Context, path string, rec pipeline.Recognizer, writer *report.Writer, cfg config.Config, jsonOut bool) error {
	src, err := render.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	doc, err := pipeline.Process(ctx, src, rec, cfg)
	if errors.Is(err, extract.ErrNoTokens) {
		return fmt.Errorf("no readable text found (blank scan?): %w", err)
	}
	if err != nil {
		return err
	}

	for _, w := range doc.Warnings {
		log.Printf("Warning for %s: %s", path, w)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	added, err := writer.Append(report.Entry{
		Date:        doc.Meta.Date,
		InvoiceNo:   doc.Meta.InvoiceNo,
		PONumber:    doc.Meta.PONumber,
		CompanyName: doc.Meta.CompanyName,
		Rows:        doc.Rows,
	})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", cfg.Output, err)
	}
	if !added {
		log.Printf("Skipping %s: invoice %s already in %s", path, doc.Meta.InvoiceNo, cfg.Output)
		return nil
	}
	log.Printf("Processed %s: %d pages, %d rows, invoice %q", path, doc.Pages, len(doc.Rows), doc.Meta.InvoiceNo)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "ordersheet - extract product tables from scanned order sheets")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: ordersheet [options] <pdf-or-image> ...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  ORDERSHEET_LOG_LEVEL=debug    Enable debug logging")
}
