// Package app initializes and holds the long-lived application services,
// acting as a small dependency injection container shared by the CLI and
// the HTTP server.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/seolint/seolint/internal/audit"
	"github.com/seolint/seolint/internal/charset"
	"github.com/seolint/seolint/internal/config"
	"github.com/seolint/seolint/internal/fetcher"
	"github.com/seolint/seolint/internal/logging"
	"github.com/seolint/seolint/internal/metrics"
)

// App holds the shared services: logger, fetcher and the audit pipeline.
type App struct {
	cfg     config.Config
	logger  *zap.Logger
	fetcher *fetcher.Fetcher
	auditor *audit.Auditor
}

// New wires the services from configuration. It fails fast if the logger
// cannot be built; everything else is infallible construction.
func New(cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	metrics.Init()

	resolver := charset.NewResolver(charset.Options{
		CJKSiteHints:     cfg.Charset.CJKSiteHints,
		CJKFallbacks:     cfg.Charset.CJKFallbacks,
		DefaultFallbacks: cfg.Charset.DefaultFallbacks,
		DetectionWindow:  cfg.Charset.DetectionWindow,
		MinConfidence:    cfg.Charset.MinConfidence,
	})
	visibility := audit.NewVisibilityAssessor(audit.VisibilityOptions{
		StripTags:     cfg.Audit.StripTags,
		NavSelectors:  cfg.Audit.NavSelectors,
		ContentTokens: cfg.Audit.ContentTokens,
	})
	heading := audit.NewHeadingAnalyzer(cfg.Audit.StopWords)

	return &App{
		cfg:    cfg,
		logger: logger,
		fetcher: fetcher.New(fetcher.Config{
			UserAgent: cfg.HTTP.UserAgent,
			Timeout:   cfg.FetchTimeout(),
		}),
		auditor: audit.NewAuditor(resolver, visibility, heading),
	}, nil
}

// Logger returns the shared zap logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Config returns the loaded configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// Audit fetches a page and runs the full analysis pass over it.
func (a *App) Audit(ctx context.Context, pageURL string) (audit.Report, error) {
	raw, err := a.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		metrics.ObserveAudit("fetch_error")
		a.logger.Warn("fetch failed",
			zap.String("url", pageURL),
			zap.String("kind", string(fetcher.Classify(err))),
			zap.Error(err))
		return audit.Report{}, err
	}
	a.logger.Info("page fetched",
		zap.String("url", raw.URL),
		zap.Int("status", raw.StatusCode),
		zap.Int("bytes", len(raw.Body)),
		zap.Duration("duration", raw.Duration))

	rep := a.auditor.Audit(raw.Body, raw.DeclaredCharset, pageURL)
	rep.StatusCode = raw.StatusCode

	metrics.ObserveAudit("ok")
	metrics.ObserveDecode(string(rep.DecodeStage))
	for _, r := range rep.Results {
		metrics.ObserveCheck(r.Check, string(r.Status))
	}
	return rep, nil
}

// ProbeResult is one connectivity self-test outcome.
type ProbeResult struct {
	URL        string
	Reachable  bool
	StatusCode int
	Err        error
}

// Probe checks basic reachability of the configured probe URLs.
func (a *App) Probe(ctx context.Context) []ProbeResult {
	results := make([]ProbeResult, 0, len(a.cfg.Audit.ProbeURLs))
	for _, u := range a.cfg.Audit.ProbeURLs {
		raw, err := a.fetcher.Fetch(ctx, u)
		if err != nil {
			results = append(results, ProbeResult{URL: u, Err: err})
			continue
		}
		results = append(results, ProbeResult{URL: u, Reachable: true, StatusCode: raw.StatusCode})
	}
	return results
}

// Close flushes the logger. Best effort; logging may itself be failing.
func (a *App) Close() {
	_ = a.logger.Sync()
}
