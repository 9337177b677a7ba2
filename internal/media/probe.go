package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrNotImage = errors.New("Response is not an image")

// Checker reports whether url can be displayed as an image.
type Checker interface {
	Check(ctx context.Context, url string) error
}

type HTTPChecker struct {
	client *http.Client
}

func NewHTTPChecker(client *http.Client) *HTTPChecker {
	if client == nil {
		client = &http.Client{}
	}

	return &HTTPChecker{client: client}
}

func (c *HTTPChecker) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}

	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-0")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	resp.Body.Close()
	return resp, nil
}

func (c *HTTPChecker) Check(ctx context.Context, url string) error {
	resp, err := c.do(ctx, http.MethodHead, url)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusMethodNotAllowed || resp.StatusCode == http.StatusNotImplemented {
		if resp, err = c.do(ctx, http.MethodGet, url); err != nil {
			return err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Unexpected status %d", resp.StatusCode)
	}

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return ErrNotImage
	}

	return nil
}

type ProbeResult struct {
	URL       string    `json:"url"`
	Attempts  []string  `json:"attempts"`
	Loaded    string    `json:"loaded,omitempty"`
	State     LoadState `json:"-"`
	Exhausted bool      `json:"exhausted"`
	Err       error     `json:"-"`
}

// Prober runs the image loader server side against a Checker.
type Prober struct {
	checker Checker
	timeout time.Duration
}

func NewProber(checker Checker, timeout time.Duration) *Prober {
	return &Prober{checker: checker, timeout: timeout}
}

func (p *Prober) check(ctx context.Context, url string) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	return p.checker.Check(ctx, url)
}

func (p *Prober) Probe(ctx context.Context, url string) ProbeResult {
	result := ProbeResult{URL: url}
	loader := NewLoader(url,
		WithOnLoad(func(loaded string) { result.Loaded = loaded }),
		WithOnError(func() { result.Exhausted = true }),
	)
	defer loader.Close()

	for {
		attempt, ok := loader.Attempt()
		if !ok {
			break
		}

		result.Attempts = append(result.Attempts, attempt.URL)
		err := p.check(ctx, attempt.URL)
		if ctxErr := ctx.Err(); ctxErr != nil {
			result.Err = ctxErr
			break
		}

		if err != nil {
			slog.Debug("Image candidate failed", "url", attempt.URL, "err", err)
			result.Err = err
			loader.OnLoadFailure(attempt)
		} else {
			result.Err = nil
			loader.OnLoadSuccess(attempt)
		}
	}

	result.State = loader.State()
	return result
}

// ProbeAll probes every url with at most limit probes in flight. Results
// keep the order of urls.
func (p *Prober) ProbeAll(ctx context.Context, urls []string, limit int) []ProbeResult {
	results := make([]ProbeResult, len(urls))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, url := range urls {
		i, url := i, url
		g.Go(func() error {
			results[i] = p.Probe(ctx, url)
			return nil
		})
	}

	g.Wait()
	return results
}
