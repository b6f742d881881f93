// Package features looks up installable devcontainer features from the
// public containers.dev index.
package features

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// IndexURL is the machine readable index behind containers.dev.
const IndexURL = "https://containers.dev/static/devcontainer-index.json"

const fetchTimeout = 10 * time.Second

// Feature describes one installable devcontainer feature.
type Feature struct {
	Name       string
	Reference  string // OCI reference, e.g. ghcr.io/devcontainers/features/go:1
	Maintainer string
	Version    string
}

// index mirrors the parts of the containers.dev index we care about.
type index struct {
	Collections []struct {
		SourceInformation struct {
			Name string `json:"name"`
		} `json:"sourceInformation"`
		Features []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"features"`
	} `json:"collections"`
}

// Fetch downloads the feature index. On any failure the static fallback
// list is returned along with the error, so the wizard can continue
// offline.
func Fetch(ctx context.Context) ([]Feature, error) {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.HTTPClient.Timeout = fetchTimeout
	client.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, IndexURL, nil)
	if err != nil {
		return Fallback(), fmt.Errorf("failed to build index request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Fallback(), fmt.Errorf("failed to fetch feature index: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Fallback(), fmt.Errorf("feature index returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Fallback(), fmt.Errorf("failed to read feature index: %w", err)
	}

	features, err := Parse(body)
	if err != nil {
		return Fallback(), err
	}
	return features, nil
}

// Parse decodes the raw index document into a sorted feature list.
func Parse(raw []byte) ([]Feature, error) {
	var idx index
	if err := json.Unmarshal(raw, &idx); err != nil {
		return nil, fmt.Errorf("failed to decode feature index: %w", err)
	}

	var features []Feature
	for _, col := range idx.Collections {
		for _, f := range col.Features {
			if f.ID == "" {
				continue
			}
			name := f.Name
			if name == "" {
				name = f.ID
			}
			ref := f.ID
			if f.Version != "" {
				ref = fmt.Sprintf("%s:%s", f.ID, f.Version)
			}
			features = append(features, Feature{
				Name:       name,
				Reference:  ref,
				Maintainer: col.SourceInformation.Name,
				Version:    f.Version,
			})
		}
	}

	sort.Slice(features, func(i, j int) bool { return features[i].Name < features[j].Name })
	return features, nil
}

// Fallback returns a short list of popular features used when the index
// is unreachable.
func Fallback() []Feature {
	return []Feature{
		{Name: "Node.js (via nvm)", Reference: "ghcr.io/devcontainers/features/node:1", Maintainer: "devcontainers", Version: "1"},
		{Name: "Python", Reference: "ghcr.io/devcontainers/features/python:1", Maintainer: "devcontainers", Version: "1"},
		{Name: "Docker (Docker-in-Docker)", Reference: "ghcr.io/devcontainers/features/docker-in-docker:2", Maintainer: "devcontainers", Version: "2"},
		{Name: "Git (from source)", Reference: "ghcr.io/devcontainers/features/git:1", Maintainer: "devcontainers", Version: "1"},
		{Name: "GitHub CLI", Reference: "ghcr.io/devcontainers/features/github-cli:1", Maintainer: "devcontainers", Version: "1"},
		{Name: "Go", Reference: "ghcr.io/devcontainers/features/go:1", Maintainer: "devcontainers", Version: "1"},
		{Name: "Rust", Reference: "ghcr.io/devcontainers/features/rust:1", Maintainer: "devcontainers", Version: "1"},
		{Name: "Java (via SDKMAN!)", Reference: "ghcr.io/devcontainers/features/java:1", Maintainer: "devcontainers", Version: "1"},
	}
}
