// Package github implements the ListingFetcher and ChecksumFetcher ports against the
// GitHub releases API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.trai.ch/pyrelgen/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	userAgent     = "pyrelgen"
	acceptHeader  = "application/vnd.github+json"
	apiVersion    = "2022-11-28"
	maxChecksumSz = 4 << 10
)

// Client talks to the release hosting API and downloads checksum resources.
type Client struct {
	apiURL     string
	repository string
	perPage    int
	maxPages   int
	token      string
	httpClient *http.Client
}

// NewClient creates a Client for the repository and limits in cfg.
// An empty token sends unauthenticated requests.
func NewClient(cfg *domain.Config, token string) *Client {
	return newClientWithHTTP(cfg, token, &http.Client{Timeout: cfg.Timeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(cfg *domain.Config, token string, client *http.Client) *Client {
	return &Client{
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		repository: cfg.Repository,
		perPage:    cfg.PerPage,
		maxPages:   cfg.MaxPages,
		token:      token,
		httpClient: client,
	}
}

// releaseResponse matches the subset of the releases API payload that is used.
type releaseResponse struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// FetchListing retrieves every release page, following Link rel="next" headers.
func (c *Client) FetchListing(ctx context.Context) ([]domain.Release, error) {
	next := fmt.Sprintf("%s/repos/%s/releases?per_page=%d", c.apiURL, c.repository, c.perPage)

	var releases []domain.Release
	for page := 0; next != ""; page++ {
		if page >= c.maxPages {
			return nil, zerr.With(domain.ErrTooManyPages, "max_pages", c.maxPages)
		}

		batch, nextURL, err := c.fetchPage(ctx, next)
		if err != nil {
			return nil, err
		}
		releases = append(releases, batch...)
		next = nextURL
	}

	return releases, nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) ([]domain.Release, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, "", zerr.Wrap(err, domain.ErrListingFetchFailed.Error())
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", zerr.With(zerr.Wrap(err, domain.ErrListingFetchFailed.Error()), "url", pageURL)
	}
	defer func() { _ = resp.Body.Close() }()

	if isRateLimited(resp) {
		return nil, "", rateLimitError(resp.Header)
	}
	if resp.StatusCode != http.StatusOK {
		apiErr := zerr.With(domain.ErrListingFetchFailed, "status_code", resp.StatusCode)
		return nil, "", zerr.With(apiErr, "url", pageURL)
	}

	var payload []releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, "", zerr.With(zerr.Wrap(err, domain.ErrListingDecodeFailed.Error()), "url", pageURL)
	}

	releases := make([]domain.Release, 0, len(payload))
	for _, r := range payload {
		release := domain.Release{
			TagName: r.TagName,
			Assets:  make([]domain.Asset, 0, len(r.Assets)),
		}
		for _, a := range r.Assets {
			release.Assets = append(release.Assets, domain.Asset{Name: a.Name, URL: a.BrowserDownloadURL})
		}
		releases = append(releases, release)
	}

	return releases, parseLinkNext(resp.Header.Get("Link")), nil
}

// FetchChecksum downloads the checksum resource at url and returns its trimmed body.
func (c *Client) FetchChecksum(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrChecksumFetchFailed.Error())
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrChecksumFetchFailed.Error()), "url", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fetchErr := zerr.With(domain.ErrChecksumFetchFailed, "status_code", resp.StatusCode)
		return "", zerr.With(fetchErr, "url", url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxChecksumSz+1))
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrChecksumFetchFailed.Error()), "url", url)
	}
	if len(body) > maxChecksumSz {
		oversized := zerr.With(domain.ErrChecksumFetchFailed, "limit_bytes", maxChecksumSz)
		return "", zerr.With(oversized, "url", url)
	}

	return strings.TrimSpace(string(body)), nil
}

// parseLinkNext extracts the URL with rel="next" from an RFC 5988 Link header.
// Returns an empty string if no next link is present.
func parseLinkNext(header string) string {
	for part := range strings.SplitSeq(header, ",") {
		target, params, ok := strings.Cut(strings.TrimSpace(part), ";")
		if !ok || !strings.Contains(params, `rel="next"`) {
			continue
		}
		target = strings.TrimSpace(target)
		if strings.HasPrefix(target, "<") && strings.HasSuffix(target, ">") {
			return target[1 : len(target)-1]
		}
	}
	return ""
}
