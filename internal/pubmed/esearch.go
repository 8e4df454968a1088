// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Resolver turns a query in PubMed search syntax into an ordered list of
// identifiers with a single esearch call.
type Resolver struct {
	Client *http.Client
	Config types.PubMedConfig
	Logger *zap.Logger
}

// NewResolver returns a Resolver that uses client for every request.
func NewResolver(client *http.Client, cfg types.PubMedConfig, logger *zap.Logger) *Resolver {
	return &Resolver{Client: client, Config: cfg, Logger: logger}
}

// Resolve runs the query and returns identifiers in the order the service
// returned them, capped at MaxResults. Zero matches is an empty slice, not an
// error. The query is passed through unvalidated.
func (r *Resolver) Resolve(ctx context.Context, query string) ([]string, error) {
	params := baseParams(r.Config)
	params.Set("term", query)
	params.Set("retmax", strconv.Itoa(MaxResults))

	body, err := httputil.Get(ctx, r.Client, esearchURL+"?"+params.Encode(), r.Config.UserAgent)
	if err != nil {
		return nil, transportError("esearch", "", err)
	}

	ids, countText, err := parseSearchResult(body)
	if err != nil {
		return nil, &ParseError{Op: "esearch", Err: err}
	}
	count, err := strconv.Atoi(countText)
	if err != nil {
		r.logger().Debug("esearch Count not numeric", zap.String("count", countText), zap.Error(err))
	}

	r.logger().Debug("esearch complete",
		zap.String("query", query),
		zap.Int("count", count),
		zap.Int("returned", len(ids)))
	return ids, nil
}

func (r *Resolver) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// eSearchResult is the esearch XML document.
type eSearchResult struct {
	XMLName xml.Name `xml:"eSearchResult"`
	Count   string   `xml:"Count"`
	IDs     []string `xml:"IdList>Id"`
	Error   string   `xml:"ERROR"`
}

// parseSearchResult extracts identifiers and the raw total match count. A
// top-level ERROR element means the service rejected the request.
func parseSearchResult(body []byte) ([]string, string, error) {
	var res eSearchResult
	if err := xml.Unmarshal(body, &res); err != nil {
		return nil, "", err
	}
	if msg := strings.TrimSpace(res.Error); msg != "" {
		return nil, "", fmt.Errorf("service error: %s", msg)
	}

	ids := make([]string, 0, len(res.IDs))
	for _, id := range res.IDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, "", errors.New("empty Id element")
		}
		ids = append(ids, id)
	}

	return ids, strings.TrimSpace(res.Count), nil
}
