package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// fetcher reads data sources from URLs or local files.
type fetcher struct {
	httpClient *http.Client
}

// newFetcher creates a fetcher whose HTTP requests time out after timeout.
// A zero timeout means no limit.
func newFetcher(timeout time.Duration) *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// fetch returns the bytes at urlOrPath. http(s) URLs are downloaded and
// anything else is read from disk. An empty urlOrPath returns nil.
func (f *fetcher) fetch(ctx context.Context, urlOrPath string) ([]byte, error) {
	if urlOrPath == "" {
		return nil, nil
	}

	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return os.ReadFile(urlOrPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlOrPath, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlOrPath, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, urlOrPath)
	}

	return io.ReadAll(resp.Body)
}
