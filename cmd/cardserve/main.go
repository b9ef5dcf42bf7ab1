// Command cardserve hosts the pedigree card scanner as a small web page: an
// upload form on GET /, recognition on POST /scan, and clipboard-copy
// wiring for both output renderings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShowTails/ShowTailsOCR/config"
	"github.com/ShowTails/ShowTailsOCR/observability"
	"github.com/ShowTails/ShowTailsOCR/ocr/tesseract"
	"github.com/ShowTails/ShowTailsOCR/scan"
	"github.com/ShowTails/ShowTailsOCR/scripting"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(*configPath, logger); err != nil {
		fmt.Fprintf(os.Stderr, "cardserve: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, logger *slog.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	scanOpts := []scan.Option{
		scan.WithEngine(tesseract.NewEngine()),
		scan.WithLanguages(cfg.Languages...),
		scan.WithDPI(cfg.DPI),
		scan.WithLogger(observability.NewSlog(logger)),
	}
	if cfg.RulesFile != "" {
		src, err := os.ReadFile(cfg.RulesFile)
		if err != nil {
			return fmt.Errorf("read rules: %w", err)
		}
		rules := scripting.NewEngine()
		if err := rules.Load(context.Background(), string(src)); err != nil {
			return fmt.Errorf("load rules: %w", err)
		}
		scanOpts = append(scanOpts, scan.WithRules(rules))
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           newRouter(cfg, scan.New(scanOpts...), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
