// Package siteinfo talks to the backend's tenant-scoped site-info endpoint.
package siteinfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"dealersite/pkg/metrics"
	"dealersite/pkg/tenants"
)

// DefaultTimeout bounds a single upstream call when none is configured.
const DefaultTimeout = 3 * time.Second

const maxBody = 1 << 20

// ErrUpstreamStatus is wrapped into Result.Err for non-2xx responses.
var ErrUpstreamStatus = errors.New("site-info: unexpected status")

// Failure tags why an upstream call did not produce a usable document.
type Failure string

const (
	FailureNone    Failure = ""
	FailureNetwork Failure = "network"
	FailureTimeout Failure = "timeout"
	FailureStatus  Failure = "status"
	FailureDecode  Failure = "decode"
)

// Result is the outcome of one site-info call. Exactly one of Raw or
// Failure is meaningful: check OK() before reading Raw.
type Result struct {
	Raw        map[string]any
	StatusCode int
	Failure    Failure
	Err        error
}

func (r Result) OK() bool { return r.Failure == FailureNone }

// Client issues site-info requests. It is safe for concurrent use and holds
// no per-tenant state.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
}

// Options configures NewClient.
type Options struct {
	BaseURL   string        // e.g. http://web:5000/api/v1
	Timeout   time.Duration // per call; DefaultTimeout when zero
	Transport http.RoundTripper
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	rt := opts.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		http:    &http.Client{Transport: otelhttp.NewTransport(rt)},
	}
}

// Fetch performs GET {base}/site-info[?slug=] for the target. The call is
// bounded by the client timeout and abandoned if ctx is cancelled. purpose
// labels metrics ("config" or "status").
func (c *Client) Fetch(ctx context.Context, purpose string, req tenants.Request, target tenants.Target) Result {
	start := time.Now()
	res := c.fetch(ctx, req, target)
	outcome := string(res.Failure)
	if res.OK() {
		outcome = "ok"
	}
	metrics.UpstreamRequests.WithLabelValues(purpose, outcome).Inc()
	metrics.UpstreamDuration.WithLabelValues(purpose).Observe(time.Since(start).Seconds())
	return res
}

func (c *Client) fetch(ctx context.Context, req tenants.Request, target tenants.Target) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	full := c.baseURL + "/site-info"
	if target.Slug != "" {
		full += "?slug=" + url.QueryEscape(target.Slug)
	}
	upReq, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return Result{Failure: FailureNetwork, Err: fmt.Errorf("build site-info request: %w", err)}
	}
	// The backend is host-multi-tenant too; make it resolve the same tenant.
	if target.Host != "" {
		upReq.Host = target.Host
		upReq.Header.Set("X-Forwarded-Host", target.Host)
	}
	if req.Cookie != "" {
		upReq.Header.Set("Cookie", req.Cookie)
	}
	if req.RequestID != "" {
		upReq.Header.Set("X-Request-Id", req.RequestID)
	}
	upReq.Header.Set("Accept", "application/json")
	upReq.Header.Set("Cache-Control", "no-store")
	upReq.Header.Set("Pragma", "no-cache")

	resp, err := c.http.Do(upReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Result{Failure: FailureTimeout, Err: fmt.Errorf("site-info %s: %w", target.Host, err)}
		}
		return Result{Failure: FailureNetwork, Err: fmt.Errorf("site-info %s: %w", target.Host, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return Result{
			StatusCode: resp.StatusCode,
			Failure:    FailureStatus,
			Err:        fmt.Errorf("%w %d from %s", ErrUpstreamStatus, resp.StatusCode, target.Host),
		}
	}
	var raw map[string]any
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&raw); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Result{StatusCode: resp.StatusCode, Failure: FailureTimeout, Err: fmt.Errorf("site-info %s: %w", target.Host, err)}
		}
		return Result{StatusCode: resp.StatusCode, Failure: FailureDecode, Err: fmt.Errorf("decode site-info: %w", err)}
	}
	if raw == nil {
		return Result{StatusCode: resp.StatusCode, Failure: FailureDecode, Err: errors.New("decode site-info: body is null")}
	}
	return Result{Raw: raw, StatusCode: resp.StatusCode}
}
