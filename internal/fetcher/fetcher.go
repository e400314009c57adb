// Package fetcher retrieves a single page over HTTP using gocolly. It is
// the only place in the system that performs network I/O.
package fetcher

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// RawResponse is the immutable fetch outcome handed to the audit pipeline.
// DeclaredCharset is the charset parameter of the Content-Type header,
// empty when the server did not announce one.
type RawResponse struct {
	URL             string
	StatusCode      int
	Body            []byte
	DeclaredCharset string
	Duration        time.Duration
}

// Config controls collector behavior.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Fetcher performs single-page GETs with a cloned colly collector per call.
type Fetcher struct {
	cfg           Config
	baseCollector *colly.Collector
}

// New builds a Fetcher.
func New(cfg Config) *Fetcher {
	c := colly.NewCollector(colly.Async(false))
	c.IgnoreRobotsTxt = true
	// Non-2xx pages are still worth auditing; the report carries the code.
	c.ParseHTTPErrorResponse = true
	c.WithTransport(newHTTPTransport())
	return &Fetcher{cfg: cfg, baseCollector: c}
}

// Fetch executes a single HTTP GET. The returned error, if any, can be
// classified with Classify for user-facing advice.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (RawResponse, error) {
	collector := f.baseCollector.Clone()
	collector.IgnoreRobotsTxt = true
	collector.ParseHTTPErrorResponse = true
	if f.cfg.UserAgent != "" {
		collector.UserAgent = f.cfg.UserAgent
	}
	timeout := f.cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	collector.SetRequestTimeout(timeout)

	var (
		result   RawResponse
		fetchErr error
	)
	start := time.Now()

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		r.Headers.Set("Accept-Language", "zh-CN,zh;q=0.9,en;q=0.8")
	})
	collector.OnResponse(func(r *colly.Response) {
		result = RawResponse{
			URL:             r.Request.URL.String(),
			StatusCode:      r.StatusCode,
			Body:            append([]byte(nil), r.Body...),
			DeclaredCharset: charsetParam(r.Headers.Get("Content-Type")),
			Duration:        time.Since(start),
		}
	})
	collector.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(pageURL)
	}()

	select {
	case <-ctx.Done():
		return RawResponse{}, fmt.Errorf("fetch canceled: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return RawResponse{}, fmt.Errorf("visit %s: %w", pageURL, err)
		}
		if fetchErr != nil {
			return RawResponse{}, fmt.Errorf("fetch %s: %w", pageURL, fetchErr)
		}
		return result, nil
	}
}

// charsetParam extracts the charset parameter from a Content-Type value.
func charsetParam(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(params["charset"])
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
