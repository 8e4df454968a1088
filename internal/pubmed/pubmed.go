// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed resolves search queries to PubMed identifiers (esearch) and
// identifiers to raw metadata records (esummary) over the NCBI E-utilities
// XML API. Requests are issued one at a time; there is no retry, rate
// limiting, or caching.
package pubmed

import (
	"net/http"
	"net/url"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchURL  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	esummaryURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
)

// MaxResults caps the number of identifiers a single search returns.
const MaxResults = 100

const defaultDatabase = "pubmed"

// NewHTTPClient returns the single client shared by every request of a run.
func NewHTTPClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// baseParams returns the query parameters common to both endpoints.
func baseParams(cfg types.PubMedConfig) url.Values {
	db := cfg.Database
	if db == "" {
		db = defaultDatabase
	}
	v := url.Values{}
	v.Set("db", db)
	v.Set("retmode", "xml")
	if cfg.APIKey != "" {
		v.Set("api_key", cfg.APIKey)
	}
	if cfg.Email != "" {
		v.Set("email", cfg.Email)
	}
	if cfg.Tool != "" {
		v.Set("tool", cfg.Tool)
	}
	return v
}
