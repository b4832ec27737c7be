package kindle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"reading-tracker/core/reconcile"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxBodyBytes = 20 << 20

var (
	// daysReadPattern matches the days_read array embedded in the insights page.
	daysReadPattern = regexp.MustCompile(`(?s)"days_read":\s*(\[.*?\])(?:,|\s*[,}\]])`)
	// daysReadLoosePattern is tried when the strict pattern does not decode.
	daysReadLoosePattern = regexp.MustCompile(`(?s)"days_read":\s*\[(.*?)\]`)
)

// Client fetches the raw reading payload for one account.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger
}

// NewClient creates a new Kindle client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
	}
}

// PageURL returns the HTML insights page address.
func (c *Client) PageURL() string {
	return strings.TrimSuffix(c.cfg.InsightsURL, "/data")
}

// Fetch retrieves the insights page and JSON document and merges them.
// The JSON document is the base; a days_read list found in the page replaces
// the document's own, since the page carries the full history.
func (c *Client) Fetch(ctx context.Context, cookie string) (reconcile.Payload, error) {
	header, err := ParseCookie(cookie)
	if err != nil {
		return nil, err
	}

	var failures []error
	var pageDays []any

	c.logger.Info("Fetching insights page", zap.String("url", c.PageURL()))
	body, err := c.get(ctx, "html", c.PageURL(), header, "text/html,application/xhtml+xml")
	if err != nil {
		failures = append(failures, err)
		c.logger.Warn("Insights page unavailable", zap.Error(err))
	} else {
		pageDays = ExtractDaysRead(body)
		c.logger.Info("Parsed insights page", zap.Int("days_read", len(pageDays)))
	}

	data := reconcile.Payload{}

	c.logger.Info("Fetching insights data", zap.String("url", c.cfg.InsightsURL))
	body, err = c.get(ctx, "api", c.cfg.InsightsURL, header, "application/json, text/plain, */*")
	if err != nil {
		failures = append(failures, err)
		c.logger.Warn("Insights data unavailable", zap.Error(err))
	} else {
		var api map[string]any
		if err := json.Unmarshal(body, &api); err != nil || api == nil {
			c.logger.Warn("Insights data is not a JSON object, using page data only", zap.Error(err))
		} else {
			for k, v := range api {
				data[k] = v
			}
		}
	}

	if len(pageDays) > 0 {
		data[reconcile.FieldDaysRead] = pageDays
	}

	if len(data) == 0 {
		cause := errors.Join(failures...)
		if cause == nil {
			cause = errors.New("no reading data in page or data document")
		}
		return nil, &FetchError{Op: "fetch", URL: c.cfg.InsightsURL, Err: cause}
	}

	return data, nil
}

func (c *Client) get(ctx context.Context, op, url, cookie, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Op: op, URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", accept)
	req.Header.Set("Accept-Language", c.cfg.AcceptLanguage)
	req.Header.Set("Cookie", cookie)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &FetchError{Op: op, URL: url, Status: resp.StatusCode, Err: ErrUnauthorized}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Op: op, URL: url, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	// Expired sessions are redirected to the sign-in form with a 200.
	if resp.Request != nil && strings.Contains(resp.Request.URL.Path, "/ap/signin") {
		return nil, &FetchError{Op: op, URL: url, Status: resp.StatusCode, Err: ErrUnauthorized}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Op: op, URL: url, Status: resp.StatusCode, Err: err}
	}
	return body, nil
}

// ExtractDaysRead finds the embedded days_read array in the insights page.
// It returns nil when the page has none or it cannot be decoded.
func ExtractDaysRead(page []byte) []any {
	if m := daysReadPattern.FindSubmatch(page); m != nil {
		var days []any
		if err := json.Unmarshal(m[1], &days); err == nil {
			return days
		}
	}
	if m := daysReadLoosePattern.FindSubmatch(page); m != nil {
		var days []any
		raw := append(append([]byte{'['}, m[1]...), ']')
		if err := json.Unmarshal(raw, &days); err == nil {
			return days
		}
	}
	return nil
}
