// Package debian searches the Debian package index for installable
// programs.
package debian

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	searchURL     = "https://packages.debian.org/search"
	suite         = "bookworm"
	maxResults    = 30
	searchTimeout = 10 * time.Second
)

// Package is one search hit from the Debian package index.
type Package struct {
	Name        string
	Description string
}

// Search queries packages.debian.org by package name and returns up to 30
// hits.
func Search(ctx context.Context, query string) ([]Package, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.HTTPClient.Timeout = searchTimeout
	client.Logger = nil

	params := url.Values{
		"keywords": {query},
		"searchon": {"names"},
		"suite":    {suite},
		"section":  {"all"},
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search packages: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("package search returned status %d", resp.StatusCode)
	}

	return parseResults(resp.Body)
}

// parseResults extracts package names and descriptions from the search
// result page. Each hit is an h3 "Package <name>" heading followed by a
// list of matching suites.
func parseResults(r io.Reader) ([]Package, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	var packages []Package
	doc.Find("h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		name := strings.TrimSpace(strings.TrimPrefix(h.Text(), "Package "))
		if name == "" || !strings.HasPrefix(h.Text(), "Package ") {
			return true
		}

		desc := ""
		if li := h.NextFiltered("ul").Find("li").First(); li.Length() > 0 {
			text := li.Text()
			if i := strings.LastIndex(text, ": "); i >= 0 {
				desc = strings.TrimSpace(text[i+2:])
			}
			if len(desc) > 100 {
				desc = desc[:100] + "..."
			}
		}

		packages = append(packages, Package{Name: name, Description: desc})
		return len(packages) < maxResults
	})

	return packages, nil
}

// InstallCommand renders the apt-get invocation for the selected packages.
func InstallCommand(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "sudo apt-get update && sudo apt-get install -y " + strings.Join(names, " ")
}
