package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// FetchOptions tunes the paginated fetcher for one endpoint family. The two
// observed retry regimes are the long-running export (unbounded retries,
// never give up a page) and the short export (three attempts, then skip the
// page and move on).
type FetchOptions struct {
	// PageParam defaults to "page".
	PageParam string
	// SizeParam is the page-size parameter name ("pageSize", "page_size"
	// or "size" depending on the endpoint family). Empty omits it.
	SizeParam string
	PageSize  int

	// Retries is the per-page budget for auth and transient failures.
	// Negative means retry forever.
	Retries int
	// Backoff between attempts on the same page. Defaults to 5s.
	Backoff time.Duration
	// PageDelay is a self-imposed rate limit between successive pages.
	PageDelay time.Duration

	// EndOn404 treats 404 as the past-last-page sentinel instead of an error.
	EndOn404 bool
	// SkipPageOnExhaust advances past a page whose retry budget ran out
	// instead of failing the whole fetch.
	SkipPageOnExhaust bool
	// StopOnShortPage ends pagination after a page smaller than PageSize.
	StopOnShortPage bool
}

func (o *FetchOptions) fillDefaults() {
	if o.PageParam == "" {
		o.PageParam = "page"
	}
	if o.Backoff == 0 {
		o.Backoff = 5 * time.Second
	}
}

// unwrapResults decodes the {"results": [...]} page shape used by the main
// API; unwrapItems decodes the LPR API's {"items": [...]} shape.
func unwrapResults[T any](body []byte) ([]T, error) {
	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}

func unwrapItems[T any](body []byte) ([]T, error) {
	var page struct {
		Items []T `json:"items"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

type pageOutcome int

const (
	pageOK pageOutcome = iota
	pageEnd
	pageSkipped
)

// fetchAllPages walks an endpoint page by page, sequentially, preserving
// the vendor's ordering and performing no dedup. On error the records
// accumulated so far are returned alongside it.
func fetchAllPages[T any](c *Client, path string, params map[string]string, opts FetchOptions, unwrap func([]byte) ([]T, error)) ([]T, error) {
	opts.fillDefaults()

	var out []T
	for page := 1; ; page++ {
		items, outcome, err := fetchPage(c, path, params, page, opts, unwrap)
		if err != nil {
			return out, err
		}
		if outcome == pageEnd {
			return out, nil
		}
		if outcome == pageOK {
			if len(items) == 0 {
				return out, nil
			}
			out = append(out, items...)
			if opts.StopOnShortPage && len(items) < opts.PageSize {
				return out, nil
			}
		}
		// The rate limit applies between pages even when the previous page
		// was skipped.
		if opts.PageDelay > 0 {
			time.Sleep(opts.PageDelay)
		}
	}
}

// fetchPage retries a single page until it succeeds, terminates pagination
// or exhausts its budget.
func fetchPage[T any](c *Client, path string, params map[string]string, page int, opts FetchOptions, unwrap func([]byte) ([]T, error)) ([]T, pageOutcome, error) {
	attempts := 0
	budgetLeft := func() bool {
		attempts++
		return opts.Retries < 0 || attempts <= opts.Retries
	}

	for {
		req := c.HTTP.R().SetQueryParams(params).
			SetQueryParam(opts.PageParam, strconv.Itoa(page))
		if opts.SizeParam != "" {
			req.SetQueryParam(opts.SizeParam, strconv.Itoa(opts.PageSize))
		}

		resp, err := req.Get(path)

		retryable := false
		refresh := false
		switch {
		case err != nil:
			retryable = true // transient network failure
		case resp.StatusCode() == http.StatusUnauthorized:
			retryable = true
			refresh = true
		case resp.StatusCode() == http.StatusNotFound && opts.EndOn404:
			return nil, pageEnd, nil
		case resp.StatusCode() >= 500:
			retryable = true
		case resp.IsError():
			return nil, pageOK, apiErr(resp)
		}

		if retryable {
			if !budgetLeft() {
				if opts.SkipPageOnExhaust {
					return nil, pageSkipped, nil
				}
				return nil, pageOK, fmt.Errorf("page %d of %s: retries exhausted", page, path)
			}
			// A successful refresh retries immediately; everything else
			// waits out the fixed backoff first.
			if refresh && c.refreshCredential() {
				continue
			}
			time.Sleep(opts.Backoff)
			continue
		}

		items, err := unwrap(resp.Body())
		if err != nil {
			return nil, pageOK, fmt.Errorf("decode page %d of %s: %w", page, path, err)
		}
		return items, pageOK, nil
	}
}
