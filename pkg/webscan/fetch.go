package webscan

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"golang.org/x/sync/errgroup"
)

// maxBodySize caps how much of a page is read, large enough for any
// realistic landing page
const maxBodySize = 4 << 20

// Page is the already-retrieved input to extraction: extraction itself is
// synchronous and does no I/O.
type Page struct {
	URL        string
	Headers    http.Header
	Body       string
	PolicyBody string
}

// Fetcher retrieves a page and, when one is linked, its privacy policy page.
// Network concerns (timeout, proxy) live here, outside the scoring pipeline.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// FetcherOption configures a Fetcher
type FetcherOption func(*Fetcher)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithProxy routes requests through an HTTP proxy
func WithProxy(proxyURL string) FetcherOption {
	return func(f *Fetcher) {
		if u, err := url.Parse(proxyURL); err == nil {
			f.client.Transport = &http.Transport{Proxy: http.ProxyURL(u)}
		}
	}
}

// NewFetcher creates a Fetcher with a 15 second default timeout
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: 15 * time.Second},
		userAgent: "tikun13-scanner/1.0",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// wellKnownPolicyPaths are fallback locations for the policy document, tried
// when the linked page cannot be fetched or turns out to be a stub
var wellKnownPolicyPaths = []string{"/privacy-policy", "/privacy"}

// Fetch retrieves the page and, if a privacy policy link is discoverable in
// the body, fetches the linked policy page and the well-known policy paths
// concurrently. An unreachable policy page is not fatal; coverage simply
// stays unverified. A cancelled context is fatal.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		pageURL = "https://" + pageURL
	}

	body, headers, err := f.get(ctx, pageURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch page", goerr.V("url", pageURL))
	}

	page := &Page{
		URL:     pageURL,
		Headers: headers,
		Body:    body,
	}

	policyURL := resolvePolicyLink(pageURL, body)
	if policyURL != "" {
		candidates := policyCandidates(pageURL, policyURL)
		bodies := make([]string, len(candidates))

		eg, egCtx := errgroup.WithContext(ctx)
		for i, candidate := range candidates {
			eg.Go(func() error {
				candidateBody, _, err := f.get(egCtx, candidate)
				if err != nil {
					if egCtx.Err() != nil {
						return egCtx.Err()
					}
					return nil
				}
				bodies[i] = candidateBody
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, goerr.Wrap(err, "page fetch cancelled", goerr.V("url", pageURL))
		}

		page.PolicyBody = selectPolicyBody(bodies)
	}

	return page, nil
}

// policyCandidates returns the linked policy URL followed by the well-known
// policy paths resolved against the page, with duplicates of the link removed
func policyCandidates(pageURL, policyURL string) []string {
	candidates := []string{policyURL}
	base, err := url.Parse(pageURL)
	if err != nil {
		return candidates
	}
	for _, path := range wellKnownPolicyPaths {
		resolved := base.ResolveReference(&url.URL{Path: path}).String()
		if resolved != policyURL {
			candidates = append(candidates, resolved)
		}
	}
	return candidates
}

// selectPolicyBody prefers the linked policy page; when that fetch came back
// empty it falls back to the well-known path whose text covers the most
// policy topics. Fallbacks covering nothing are discarded, since any page
// that resolves (a soft 404, a catch-all route) would otherwise pass for a
// policy document.
func selectPolicyBody(bodies []string) string {
	if bodies[0] != "" {
		return bodies[0]
	}
	var best string
	bestCoverage := 0
	for _, candidate := range bodies[1:] {
		if c := len(coverTopics(candidate)); c > bestCoverage {
			best, bestCoverage = candidate, c
		}
	}
	return best
}

func (f *Fetcher) get(ctx context.Context, target string) (string, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", nil, goerr.Wrap(err, "invalid request", goerr.V("url", target))
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "he, en;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return "", nil, goerr.New("unexpected response status",
			goerr.V("url", target), goerr.V("status", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to read response body")
	}
	return string(data), resp.Header, nil
}

// resolvePolicyLink finds the first privacy-policy-looking link in the body
// and resolves it against the page URL
func resolvePolicyLink(pageURL, body string) string {
	sig := Extract(pageURL, nil, body, "")
	if sig.PolicyLink == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(sig.PolicyLink)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// Scan is the full pipeline: fetch, extract, score. Fetch failures yield an
// error-marked result rather than an error, so callers can always render.
func (f *Fetcher) Scan(ctx context.Context, pageURL string) *model.WebScanResult {
	page, err := f.Fetch(ctx, pageURL)
	if err != nil {
		return Failed(pageURL, err)
	}
	sig := Extract(page.URL, page.Headers, page.Body, page.PolicyBody)
	return Score(page.URL, sig)
}
