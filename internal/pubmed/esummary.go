// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/xml"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/get-papers-list/internal/httputil"
	"github.com/pdiddy/get-papers-list/pkg/types"
)

// Fetcher resolves identifiers to raw records with one esummary call per
// identifier, strictly in input order.
type Fetcher struct {
	Client *http.Client
	Config types.PubMedConfig
	Logger *zap.Logger
}

// NewFetcher returns a Fetcher that uses client for every request.
func NewFetcher(client *http.Client, cfg types.PubMedConfig, logger *zap.Logger) *Fetcher {
	return &Fetcher{Client: client, Config: cfg, Logger: logger}
}

// FetchDetails fetches each identifier in turn. Identifiers whose response
// has no DocSum contribute no record. By default the first TransportError or
// ParseError aborts the batch and no records are returned; with
// ContinueOnError the failure is recorded in FetchOutput.Failures and the
// remaining identifiers are still fetched.
func (f *Fetcher) FetchDetails(ctx context.Context, ids []string) (types.FetchOutput, error) {
	var out types.FetchOutput
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return types.FetchOutput{}, ctx.Err()
		default:
		}

		rec, ok, err := f.FetchDetail(ctx, id)
		if err != nil {
			if !f.Config.ContinueOnError {
				return types.FetchOutput{}, err
			}
			f.logger().Warn("skipping identifier", zap.String("pmid", id), zap.Error(err))
			out.Failures = append(out.Failures, types.FetchFailure{PubmedID: id, Err: err})
			continue
		}
		if !ok {
			f.logger().Debug("no DocSum in response", zap.String("pmid", id))
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// FetchDetail fetches one identifier. ok is false when the response is
// well-formed but carries no DocSum.
func (f *Fetcher) FetchDetail(ctx context.Context, id string) (types.RawRecord, bool, error) {
	params := baseParams(f.Config)
	params.Set("id", id)

	body, err := httputil.Get(ctx, f.Client, esummaryURL+"?"+params.Encode(), f.Config.UserAgent)
	if err != nil {
		return types.RawRecord{}, false, transportError("esummary", id, err)
	}

	rec, ok, err := parseSummary(body, id)
	if err != nil {
		return types.RawRecord{}, false, &ParseError{Op: "esummary", PubmedID: id, Err: err}
	}
	return rec, ok, nil
}

func (f *Fetcher) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

// esummary XML structures. Items nest: list items such as AuthorList carry
// child Item elements.
type eSummaryResult struct {
	XMLName xml.Name `xml:"eSummaryResult"`
	DocSums []docSum `xml:"DocSum"`
}

type docSum struct {
	ID    string        `xml:"Id"`
	Items []summaryItem `xml:"Item"`
}

type summaryItem struct {
	Name  string        `xml:"Name,attr"`
	Type  string        `xml:"Type,attr"`
	Text  string        `xml:",chardata"`
	Items []summaryItem `xml:"Item"`
}

// parseSummary maps the first DocSum's named items onto a RawRecord tagged
// with id. Items are visited depth-first in document order; a repeated name
// overwrites the earlier value.
func parseSummary(body []byte, id string) (types.RawRecord, bool, error) {
	var res eSummaryResult
	if err := xml.Unmarshal(body, &res); err != nil {
		return types.RawRecord{}, false, err
	}
	if len(res.DocSums) == 0 {
		return types.RawRecord{}, false, nil
	}

	rec := types.RawRecord{PubmedID: id}
	walkItems(res.DocSums[0].Items, func(it summaryItem) {
		switch it.Name {
		case "Title":
			rec.Title = types.Str(it.Text)
		case "Source":
			rec.Journal = types.Str(it.Text)
		case "PubDate":
			rec.PubDate = types.Str(it.Text)
		case "AuthorList":
			rec.Authors = authorList(it)
		case "CorrespondingAuthor":
			rec.CorrespondingAuthorEmail = types.Str(it.Text)
		}
	})
	return rec, true, nil
}

func walkItems(items []summaryItem, fn func(summaryItem)) {
	for _, it := range items {
		fn(it)
		walkItems(it.Items, fn)
	}
}

// authorList splits the AuthorList text on ", ". When the item carries no
// text of its own but has child Author items, their texts are used in
// order. The result is never nil, so a present-but-empty AuthorList stays
// distinguishable from an absent one.
func authorList(it summaryItem) []string {
	if text := strings.TrimSpace(it.Text); text != "" {
		return strings.Split(text, types.ListSeparator)
	}
	authors := []string{}
	for _, child := range it.Items {
		if t := strings.TrimSpace(child.Text); t != "" {
			authors = append(authors, t)
		}
	}
	return authors
}
