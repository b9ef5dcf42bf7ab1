// Command cardscan recognizes a photographed rabbit pedigree card and prints
// the extracted records as a readable report or a tab-separated table.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ShowTails/ShowTailsOCR/observability"
	"github.com/ShowTails/ShowTailsOCR/ocr"
	"github.com/ShowTails/ShowTailsOCR/ocr/tesseract"
	"github.com/ShowTails/ShowTailsOCR/scan"
	"github.com/ShowTails/ShowTailsOCR/scripting"
)

type options struct {
	imagePath string
	languages []string
	dpi       int
	psm       int
	rulesPath string
	tsv       bool
	raw       bool
	quiet     bool
	verbose   bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cardscan: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "cardscan: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: cardscan [flags] <image>\n")
		flag.PrintDefaults()
	}
	lang := flag.String("lang", "eng", "Comma-separated OCR language hints")
	dpi := flag.Int("dpi", 300, "Assumed scan resolution")
	psm := flag.Int("psm", 0, "Tesseract page segmentation mode (0 = engine default)")
	rules := flag.String("rules", "", "JavaScript cleanup rules file")
	tsv := flag.Bool("tsv", false, "Print the tab-separated table instead of the report")
	raw := flag.Bool("raw", false, "Print the raw OCR transcription instead of the report")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	verbose := flag.Bool("v", false, "Verbose logging to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return options{}, fmt.Errorf("missing image path")
	}
	opts.imagePath = flag.Arg(0)
	opts.languages = strings.Split(*lang, ",")
	opts.dpi = *dpi
	opts.psm = *psm
	opts.rulesPath = *rules
	opts.tsv = *tsv
	opts.raw = *raw
	opts.quiet = *quiet
	opts.verbose = *verbose
	return opts, nil
}

func run(opts options) error {
	image, err := os.ReadFile(opts.imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	scanOpts := []scan.Option{
		scan.WithEngine(tesseract.NewEngine()),
		scan.WithLanguages(opts.languages...),
		scan.WithDPI(opts.dpi),
	}
	if opts.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		scanOpts = append(scanOpts, scan.WithLogger(observability.NewSlog(slog.New(handler))))
	}
	if opts.psm > 0 {
		scanOpts = append(scanOpts, scan.WithMetadata(map[string]string{
			"tessedit_pageseg_mode": fmt.Sprint(opts.psm),
		}))
	}
	if opts.rulesPath != "" {
		src, err := os.ReadFile(opts.rulesPath)
		if err != nil {
			return fmt.Errorf("read rules: %w", err)
		}
		rules := scripting.NewEngine()
		if err := rules.Load(context.Background(), string(src)); err != nil {
			return fmt.Errorf("load rules: %w", err)
		}
		scanOpts = append(scanOpts, scan.WithRules(rules))
	}

	req := scan.Request{
		ID:     filepath.Base(opts.imagePath),
		Image:  image,
		Format: formatForPath(opts.imagePath),
	}
	if !opts.quiet {
		req.Progress = func(s ocr.Status) {
			fmt.Fprintf(os.Stderr, "[%s] %s (%.0f%%)\n", s.State, s.Message, s.Progress*100)
		}
	}

	out, err := scan.New(scanOpts...).Scan(context.Background(), req)
	if err != nil {
		return err
	}

	switch {
	case opts.raw:
		fmt.Println(out.RawText)
	case opts.tsv:
		fmt.Println(out.TSV)
	default:
		fmt.Print(out.Report)
	}
	return nil
}

func formatForPath(path string) ocr.ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return ocr.ImageFormatJPEG
	case ".tif", ".tiff":
		return ocr.ImageFormatTIFF
	default:
		return ocr.ImageFormatPNG
	}
}
